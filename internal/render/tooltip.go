package render

import (
	"html"
	"strings"

	"github.com/bsmietanka/interactive-map/internal/dataset"
)

// Field is one line of a tooltip.
type Field struct {
	Name  string
	Value string
}

// TooltipFields picks the fields of a row worth showing on hover: every
// column in table order except ID and points, skipping values that are null,
// empty, zero or false.
func TooltipFields(columns []string, cells []dataset.Value) []Field {
	var fields []Field
	for i, name := range columns {
		if name == dataset.ColumnID || name == dataset.ColumnPoints || i >= len(cells) {
			continue
		}
		if !cells[i].Truthy() {
			continue
		}
		fields = append(fields, Field{Name: name, Value: cells[i].String()})
	}
	return fields
}

// FormatTooltip renders fields as "<b>Name: value</b><br>" lines. No fields
// give the empty string. Names and values are HTML-escaped, so a value
// holding markup such as "<i>" or "&" reads differently from the raw form.
func FormatTooltip(fields []Field) string {
	var sb strings.Builder
	for _, f := range fields {
		sb.WriteString("<b>")
		sb.WriteString(html.EscapeString(f.Name))
		sb.WriteString(": ")
		sb.WriteString(html.EscapeString(f.Value))
		sb.WriteString("</b><br>")
	}
	return sb.String()
}
