package panels

import (
	"fmt"
	"strings"

	"github.com/bsmietanka/interactive-map/internal/dataset"
)

// Bounds of a fitted column width, and the padding around cell text.
const (
	minColumnWidth = 48
	maxColumnWidth = 360
	cellPadding    = 24
)

func headerText(column string, dir dataset.SortDirection) string {
	switch dir {
	case dataset.SortAscending:
		return column + " ▲"
	case dataset.SortDescending:
		return column + " ▼"
	default:
		return column
	}
}

func pageText(page, count int) string {
	return fmt.Sprintf("Strona %d z %d", page+1, count)
}

// columnWidth returns the width fitting the header and every value, within
// [minColumnWidth, maxColumnWidth].
func columnWidth(header string, values []string, measure func(string) float32) float32 {
	w := measure(header)
	for _, v := range values {
		if vw := measure(v); vw > w {
			w = vw
		}
	}
	w += cellPadding
	if w < minColumnWidth {
		return minColumnWidth
	}
	if w > maxColumnWidth {
		return maxColumnWidth
	}
	return w
}

// summaryText renders one "column: sum (n plots)" entry per numeric column.
func summaryText(summary []dataset.ColumnSummary) string {
	parts := make([]string, 0, len(summary))
	for _, s := range summary {
		parts = append(parts, fmt.Sprintf("%s: Σ %s, śr. %s, maks. %s (%d dz.)",
			s.Column, formatNumber(s.Sum), formatNumber(s.Mean), formatNumber(s.Max), s.NonZero))
	}
	return strings.Join(parts, "   ")
}

// formatNumber prints whole numbers without a fraction and others with two
// decimals.
func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%.2f", f)
}
