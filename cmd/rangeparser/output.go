package main

// Output formatters for expanded expressions.
// Formats that need the whole result are built in a buffer so nothing is written on error.

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/goccy/go-yaml"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/samber/lo"

	"github.com/apstndb/rangeparser/enums"
)

// writeBuffered writes to a temporary buffer first, and only writes to out if no error occurs.
func writeBuffered(out io.Writer, buildFunc func(out io.Writer) error) error {
	var buf strings.Builder
	if err := buildFunc(&buf); err != nil {
		return err
	}

	if buf.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(out, buf.String())
	return err
}

// FormatFunc writes expansions to out.
type FormatFunc func(out io.Writer, expansions []expansion, valueSeparator string) error

var formatters = map[enums.OutputFormat]FormatFunc{
	enums.OutputFormatText:  formatText,
	enums.OutputFormatJSON:  formatJSON,
	enums.OutputFormatYAML:  formatYAML,
	enums.OutputFormatTable: formatTable,
}

func writeExpansions(out io.Writer, format enums.OutputFormat, expansions []expansion, valueSeparator string) error {
	f, ok := formatters[format]
	if !ok {
		return fmt.Errorf("unsupported format: %s", format)
	}
	return f(out, expansions, valueSeparator)
}

// formatText writes one value per line.
func formatText(out io.Writer, expansions []expansion, _ string) error {
	return writeBuffered(out, func(out io.Writer) error {
		for _, e := range expansions {
			for _, v := range e.Values {
				if _, err := fmt.Fprintln(out, v); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func formatJSON(out io.Writer, expansions []expansion, _ string) error {
	return writeBuffered(out, func(out io.Writer) error {
		enc := jsontext.NewEncoder(out, jsontext.Expand(true), jsontext.WithIndent("  "))
		if err := json.MarshalEncode(enc, expansions); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	})
}

func formatYAML(out io.Writer, expansions []expansion, _ string) error {
	return writeBuffered(out, func(out io.Writer) error {
		if err := yaml.NewEncoder(out, yaml.IndentSequence(true)).Encode(expansions); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return nil
	})
}

// formatTable writes one row per expression with the expanded values joined by valueSeparator.
func formatTable(out io.Writer, expansions []expansion, valueSeparator string) error {
	return writeBuffered(out, func(out io.Writer) error {
		table := tablewriter.NewTable(out,
			tablewriter.WithRenderer(
				renderer.NewBlueprint(tw.Rendition{Symbols: tw.NewSymbols(tw.StyleASCII)})),
			tablewriter.WithHeaderAlignment(tw.AlignLeft),
			tablewriter.WithTrimSpace(tw.Off),
			tablewriter.WithHeaderAutoFormat(tw.Off),
		)

		table.Header([]string{"Expression", "Count", "Values"})

		for _, e := range expansions {
			values := lo.Map(e.Values, func(v any, _ int) string { return fmt.Sprint(v) })
			row := []string{e.Expression, strconv.Itoa(len(values)), strings.Join(values, valueSeparator)}
			if err := table.Append(row); err != nil {
				return fmt.Errorf("failed to append row: %w", err)
			}
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
		return nil
	})
}
