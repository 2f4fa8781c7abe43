//
// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package main is a command line tool that expands range expressions such as "1-3,5-8".
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/apstndb/rangeparser"
	"github.com/apstndb/rangeparser/enums"
	"github.com/apstndb/rangeparser/internal/parser"
)

type globalOptions struct {
	RangeParser rangeParserOptions `group:"rangeparser"`
}

// We can't use `default` because the config file and the command line are processed by different flags.Parser.
type rangeParserOptions struct {
	ValueSeparator *string `long:"value-separator" short:"s" description:"Separator between values and ranges." default-mask:","`
	RangeSeparator *string `long:"range-separator" short:"r" description:"Separator between the endpoints of a range." default-mask:"-"`
	Type           *string `long:"type" short:"t" description:"Element type (int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64)." default-mask:"int64"`
	Format         *string `long:"format" short:"f" description:"Output format (TEXT, JSON, YAML, TABLE)." default-mask:"TEXT"`
	File           string  `long:"file" description:"Read expressions from the file, one per line."`
	Limit          int     `long:"limit" description:"Maximum number of values per expression. 0 means unlimited."`
	Debug          bool    `long:"debug" description:"Write debug logs to stderr."`
	Help           bool    `long:"help" short:"h" hidden:"true"`
}

// Expressions starting with the range separator look like options, so they go after "--".
const usage = "[OPTIONS] [--] EXPRESSION..."

const (
	defaultType   = enums.ElementTypeInt64
	defaultFormat = enums.OutputFormatText
)

var (
	elementTypeParser = parser.NewEnumParser(lo.SliceToMap(enums.ElementTypeValues(),
		func(t enums.ElementType) (string, enums.ElementType) { return string(t), t }))

	outputFormatParser = parser.NewEnumParser(lo.SliceToMap(enums.OutputFormatValues(),
		func(f enums.OutputFormat) (string, enums.OutputFormat) { return string(f), f }))

	limitParser = parser.NewNumberParser[int]().WithMin(0)
)

func main() {
	stdin := lo.Ternary(isPiped(os.Stdin), io.Reader(os.Stdin), nil)
	err := run(os.Args[1:], stdin, os.Stdout, os.Stderr, afero.NewOsFs())

	var exitCodeErr *ExitCodeError
	if err != nil && !errors.As(err, &exitCodeErr) {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	}
	os.Exit(GetExitCode(err))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, fs afero.Fs) error {
	var gopts globalOptions

	// process config files at first
	configFileParser := flags.NewParser(&gopts, flags.Default)
	if err := readConfigFile(fs, configFileParser, configFilePaths()); err != nil {
		return fmt.Errorf("invalid config file format: %w", err)
	}

	// then, process command line options with higher precedence than configuration files
	flagParser := flags.NewParser(&gopts, flags.PassDoubleDash)
	parserForHelp := flags.NewParser(&globalOptions{}, flags.Default)
	parserForHelp.Usage = usage

	rest, err := flagParser.ParseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		parserForHelp.WriteHelp(stderr)
		return NewExitCodeError(exitCodeUsage)
	}

	opts := gopts.RangeParser
	if opts.Help {
		parserForHelp.WriteHelp(stderr)
		return nil
	}

	typ, err := elementTypeParser.ParseAndValidate(lo.FromPtrOr(opts.Type, string(defaultType)))
	if err != nil {
		return newUsageError(fmt.Errorf("invalid --type: %w", err))
	}

	format, err := outputFormatParser.ParseAndValidate(lo.FromPtrOr(opts.Format, string(defaultFormat)))
	if err != nil {
		return newUsageError(fmt.Errorf("invalid --format: %w", err))
	}

	if err := limitParser.Validate(opts.Limit); err != nil {
		return newUsageError(fmt.Errorf("invalid --limit: %w", err))
	}

	logger, err := newLogger(opts.Debug)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	exprs, err := readExpressions(fs, rest, opts.File, stdin)
	if err != nil {
		return err
	}
	if len(exprs) == 0 {
		parserForHelp.WriteHelp(stderr)
		return newUsageError(errors.New("no expression is given"))
	}

	cfg := expandConfig{
		valueSeparator: lo.FromPtrOr(opts.ValueSeparator, rangeparser.DefaultValueSeparator),
		rangeSeparator: lo.FromPtrOr(opts.RangeSeparator, rangeparser.DefaultRangeSeparator),
		limit:          opts.Limit,
	}

	logger.Debug("expanding expressions",
		zap.Int("expressions", len(exprs)),
		zap.String("type", string(typ)),
		zap.String("format", string(format)),
		zap.String("value_separator", cfg.valueSeparator),
		zap.String("range_separator", cfg.rangeSeparator),
		zap.Int("limit", cfg.limit))

	expansions, err := expand(typ, exprs, cfg, logger)
	if err != nil {
		return err
	}

	return writeExpansions(stdout, format, expansions, cfg.valueSeparator)
}

func newLogger(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}

	zapDevelopmentConfig := zap.NewDevelopmentConfig()
	zapDevelopmentConfig.DisableCaller = true
	logger, err := zapDevelopmentConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

const cnfFileName = ".rangeparser.cnf"

func configFilePaths() []string {
	var cnfFiles []string
	if currentUser, err := user.Current(); err == nil {
		cnfFiles = append(cnfFiles, filepath.Join(currentUser.HomeDir, cnfFileName))
	}

	cwd, _ := os.Getwd() // ignore err
	cnfFiles = append(cnfFiles, filepath.Join(cwd, cnfFileName))
	return cnfFiles
}

func readConfigFile(fs afero.Fs, parser *flags.Parser, cnfFiles []string) error {
	iniParser := flags.NewIniParser(parser)
	for _, cnfFile := range cnfFiles {
		// skip if missing
		if _, err := fs.Stat(cnfFile); err != nil {
			continue
		}

		f, err := fs.Open(cnfFile)
		if err != nil {
			return err
		}
		err = iniParser.Parse(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", cnfFile, err)
		}
	}

	return nil
}

func isPiped(f *os.File) bool {
	stat, err := f.Stat()
	return err == nil && (stat.Mode()&os.ModeCharDevice) == 0
}
