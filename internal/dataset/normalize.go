package dataset

import (
	"math"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// maxInt64Float is 2^63, the first float64 above the int64 range.
const maxInt64Float = float64(1 << 63)

// SanitizeInt coerces v to a finite, non-negative integer. Missing, null,
// infinite, NaN and unparseable values become 0, fractions are truncated
// toward zero and negatives clamp to 0.
func SanitizeInt(v Value) int64 {
	n, _ := sanitizeInt(v)
	return n
}

// sanitizeInt is SanitizeInt that also reports whether v held something that
// is neither null nor a number.
func sanitizeInt(v Value) (int64, bool) {
	switch v.Kind() {
	case KindNull:
		return 0, false
	case KindInt:
		i, _ := v.Int64()
		if i < 0 {
			return 0, false
		}
		return i, false
	case KindNumber, KindString:
		f, ok := v.Float()
		if !ok {
			return 0, v.Kind() == KindString && v.String() != ""
		}
		return clampFloat(f), false
	default:
		return 0, true
	}
}

func clampFloat(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	f = math.Trunc(f)
	if f <= 0 || f >= maxInt64Float {
		return 0
	}
	return int64(f)
}

// NormalizeRecords returns copies of records with every numeric column of
// schema present and coerced by SanitizeInt. Values that had to be thrown away
// are reported.
func NormalizeRecords(records []DescriptionRecord, schema Schema) ([]DescriptionRecord, []Warning) {
	var warnings []Warning

	out := make([]DescriptionRecord, len(records))
	for i, rec := range records {
		fields := orderedmap.New[string, Value]()
		for pair := rec.Fields.Oldest(); pair != nil; pair = pair.Next() {
			v := pair.Value
			if schema.isNumeric(pair.Key) {
				n, junk := sanitizeInt(v)
				if junk {
					warnings = append(warnings, Warning{
						Kind:   WarnNumericJunk,
						Record: rec.Index,
						Key:    rec.Key.String(),
						Column: pair.Key,
						Value:  v.String(),
					})
				}
				v = Int(n)
			}
			fields.Set(pair.Key, v)
		}
		out[i] = DescriptionRecord{Index: rec.Index, Key: rec.Key, Fields: fields}
	}
	return out, warnings
}
