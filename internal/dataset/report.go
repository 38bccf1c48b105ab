package dataset

import "fmt"

// WarningKind classifies a recoverable data problem.
type WarningKind string

const (
	// WarnEmptyKeyFragment: a multi-key held an empty fragment, e.g. "12,,13".
	WarnEmptyKeyFragment WarningKind = "empty_key_fragment"
	// WarnDuplicateKey: two description records share a join key; the first wins.
	WarnDuplicateKey WarningKind = "duplicate_key"
	// WarnNumericJunk: a numeric column held text that is not a number.
	WarnNumericJunk WarningKind = "numeric_junk"
)

// Warning is a data problem that was repaired while loading.
type Warning struct {
	Kind WarningKind
	// Record is the index of the description record involved.
	Record int
	Key    string
	Column string
	Value  string
}

func (w Warning) String() string {
	switch w.Kind {
	case WarnEmptyKeyFragment:
		return fmt.Sprintf("description %d: empty fragment in key %q dropped", w.Record, w.Value)
	case WarnDuplicateKey:
		return fmt.Sprintf("description %d: duplicate key %q dropped", w.Record, w.Key)
	case WarnNumericJunk:
		return fmt.Sprintf("description %d: %s=%q is not a number, using 0", w.Record, w.Column, w.Value)
	default:
		return fmt.Sprintf("description %d: %s", w.Record, w.Kind)
	}
}

// Report summarizes a load.
type Report struct {
	Annotations  int
	Descriptions int
	// Exploded is the number of description rows after splitting multi-keys.
	Exploded  int
	Matched   int
	Unmatched int
	Warnings  []Warning
}
