package dataset

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ColumnSummary aggregates one numeric column.
type ColumnSummary struct {
	Column  string
	NonZero int
	Sum     float64
	Mean    float64
	Max     float64
}

// Summarize computes a ColumnSummary for every numeric column of t.
func Summarize(t *Table) []ColumnSummary {
	columns := t.NumericColumns()
	out := make([]ColumnSummary, 0, len(columns))

	values := make([]float64, t.Len())
	for _, col := range columns {
		s := ColumnSummary{Column: col}
		for i := range values {
			n, _ := t.Value(i, col).Int64()
			values[i] = float64(n)
			if n != 0 {
				s.NonZero++
			}
		}
		if len(values) > 0 {
			s.Sum = floats.Sum(values)
			s.Mean = stat.Mean(values, nil)
			s.Max = floats.Max(values)
		}
		out = append(out, s)
	}
	return out
}
