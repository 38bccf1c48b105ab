// Package dataset loads the plot annotations and their descriptions and joins
// them into one immutable table.
package dataset

import "errors"

// Column names of the unified table.
const (
	ColumnKey    = "Numer" // join key; the row key, not a column
	ColumnType   = "Typ"
	ColumnDesc   = "Opis"
	ColumnID     = "ID"
	ColumnPoints = "points"
)

// annotationColumns is the fixed prefix of every unified table.
var annotationColumns = []string{ColumnType, ColumnDesc, ColumnID, ColumnPoints}

var (
	// ErrMissingField is returned when a required field is absent from a document.
	ErrMissingField = errors.New("missing required field")
	// ErrMalformedPoints is returned when an annotation's points are not (x, y) pairs.
	ErrMalformedPoints = errors.New("malformed points")
	// ErrInvalidKey is returned when a description key is neither text nor a number.
	ErrInvalidKey = errors.New("invalid description key")
)

// Schema names the description fields the loader treats specially.
type Schema struct {
	// KeyField holds the (possibly comma-separated) join key of a description.
	KeyField string `mapstructure:"key_field" yaml:"key_field"`
	// NumericColumns are coerced to non-negative integers.
	NumericColumns []string `mapstructure:"numeric_columns" yaml:"numeric_columns"`
}

// DefaultSchema returns the schema of the 1820 Wąwolnica land register.
func DefaultSchema() Schema {
	return Schema{
		KeyField: "Nr bieżący",
		NumericColumns: []string{
			"Szerokość pręty",
			"Szerokość stopy",
			"Powierzchnia morgi",
			"Powierzchnia pręty",
			"Powierzchnia stopy",
		},
	}
}

func (s Schema) isNumeric(column string) bool {
	for _, c := range s.NumericColumns {
		if c == column {
			return true
		}
	}
	return false
}
