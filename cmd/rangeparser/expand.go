package main

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/sourcegraph/conc/iter"
	"go.uber.org/zap"

	"github.com/apstndb/rangeparser"
	"github.com/apstndb/rangeparser/enums"
)

// expansion is the result for one expression.
type expansion struct {
	Expression string `json:"expression" yaml:"expression"`
	Values     []any  `json:"values" yaml:"values"`
}

type expandConfig struct {
	valueSeparator string
	rangeSeparator string
	limit          int
}

type expandFunc func(exprs []string, cfg expandConfig, logger *zap.Logger) ([]expansion, error)

var expanders = map[enums.ElementType]expandFunc{
	enums.ElementTypeInt:     expandAll[int],
	enums.ElementTypeInt8:    expandAll[int8],
	enums.ElementTypeInt16:   expandAll[int16],
	enums.ElementTypeInt32:   expandAll[int32],
	enums.ElementTypeInt64:   expandAll[int64],
	enums.ElementTypeUint:    expandAll[uint],
	enums.ElementTypeUint8:   expandAll[uint8],
	enums.ElementTypeUint16:  expandAll[uint16],
	enums.ElementTypeUint32:  expandAll[uint32],
	enums.ElementTypeUint64:  expandAll[uint64],
	enums.ElementTypeFloat32: expandAll[float32],
	enums.ElementTypeFloat64: expandAll[float64],
}

func expand(typ enums.ElementType, exprs []string, cfg expandConfig, logger *zap.Logger) ([]expansion, error) {
	f, ok := expanders[typ]
	if !ok {
		return nil, fmt.Errorf("unsupported element type: %s", typ)
	}
	return f(exprs, cfg, logger)
}

// expandAll parses exprs concurrently. Results keep the order of exprs and
// the first failing expression in that order is reported.
func expandAll[T rangeparser.Number](exprs []string, cfg expandConfig, logger *zap.Logger) ([]expansion, error) {
	p, err := rangeparser.New(rangeparser.Builtin[T](),
		rangeparser.WithValueSeparator(cfg.valueSeparator),
		rangeparser.WithRangeSeparator(cfg.rangeSeparator),
		rangeparser.WithLimit(cfg.limit))
	if err != nil {
		return nil, err
	}

	type result struct {
		expansion
		err error
	}

	results := iter.Map(exprs, func(expr *string) result {
		values, err := p.Parse(*expr)
		if err != nil {
			return result{err: fmt.Errorf("%s: %w", *expr, err)}
		}

		logger.Debug("expanded expression",
			zap.String("expression", *expr),
			zap.Int("count", len(values)))

		return result{expansion: expansion{
			Expression: *expr,
			Values:     lo.Map(values, func(v T, _ int) any { return v }),
		}}
	})

	expansions := make([]expansion, 0, len(results))
	for _, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		expansions = append(expansions, r.expansion)
	}
	return expansions, nil
}
