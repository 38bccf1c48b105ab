package dataset

import (
	"encoding/json"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DescriptionRecord is one entry of the description document. Fields keeps
// the record's columns in document order, without the key field.
type DescriptionRecord struct {
	// Index is the position of the record in the document.
	Index  int
	Key    Value
	Fields *orderedmap.OrderedMap[string, Value]
}

// ExplodedRecord is a description record attached to a single join key.
// Records exploded from the same multi-key share Fields.
type ExplodedRecord struct {
	Key    string
	Record int
	Fields *orderedmap.OrderedMap[string, Value]
}

// ParseDescriptions decodes a description document: a JSON array of objects,
// each carrying schema.KeyField.
func ParseDescriptions(data []byte, schema Schema) ([]DescriptionRecord, error) {
	data = replaceNonFiniteLiterals(data)

	var doc []*orderedmap.OrderedMap[string, json.RawMessage]
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode descriptions: %w", err)
	}

	records := make([]DescriptionRecord, 0, len(doc))
	for i, obj := range doc {
		if obj == nil {
			return nil, fmt.Errorf("description %d: %w: %s", i, ErrMissingField, schema.KeyField)
		}
		rec, err := parseDescription(i, obj, schema)
		if err != nil {
			return nil, fmt.Errorf("description %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseDescription(index int, obj *orderedmap.OrderedMap[string, json.RawMessage], schema Schema) (DescriptionRecord, error) {
	rec := DescriptionRecord{
		Index:  index,
		Fields: orderedmap.New[string, Value](),
	}

	found := false
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		v, err := decodeValue(pair.Value)
		if err != nil {
			return DescriptionRecord{}, fmt.Errorf("field %q: %w", pair.Key, err)
		}
		if pair.Key == schema.KeyField {
			rec.Key = v
			found = true
			continue
		}
		rec.Fields.Set(pair.Key, v)
	}

	// NaN and Infinity keys were read as null and fail here too.
	if !found || rec.Key.IsNull() {
		return DescriptionRecord{}, fmt.Errorf("%w: %s", ErrMissingField, schema.KeyField)
	}
	switch rec.Key.Kind() {
	case KindString, KindNumber:
	default:
		return DescriptionRecord{}, fmt.Errorf("%w: %s", ErrInvalidKey, rec.Key)
	}
	return rec, nil
}

// KeyFragments splits a description key into join keys. Text keys are split
// on "," and trimmed; a numeric key is a single fragment holding its source
// text.
func KeyFragments(key Value) []string {
	if key.Kind() != KindString {
		return []string{key.String()}
	}
	parts := strings.Split(key.String(), ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// Explode expands every record into one ExplodedRecord per key fragment.
// Fragments that are empty after trimming are dropped and reported.
func Explode(records []DescriptionRecord) ([]ExplodedRecord, []Warning) {
	var (
		out      = make([]ExplodedRecord, 0, len(records))
		warnings []Warning
	)
	for _, rec := range records {
		for _, key := range KeyFragments(rec.Key) {
			if key == "" {
				warnings = append(warnings, Warning{
					Kind:   WarnEmptyKeyFragment,
					Record: rec.Index,
					Value:  rec.Key.String(),
				})
				continue
			}
			out = append(out, ExplodedRecord{
				Key:    key,
				Record: rec.Index,
				Fields: rec.Fields,
			})
		}
	}
	return out, warnings
}
