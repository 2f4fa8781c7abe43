package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// readExpressions collects expressions from args, then the file, then stdin if nothing else was given.
// Lines that are blank or start with '#' are skipped in file and stdin input.
func readExpressions(fs afero.Fs, args []string, file string, stdin io.Reader) ([]string, error) {
	exprs := lo.Filter(args, func(arg string, _ int) bool { return arg != "" })

	if file != "" {
		f, err := fs.Open(file)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", file, err)
		}
		defer f.Close()

		lines, err := readLines(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		exprs = append(exprs, lines...)
	}

	if len(exprs) == 0 && stdin != nil {
		lines, err := readLines(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		exprs = lines
	}

	return exprs, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
