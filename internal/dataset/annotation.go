package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/bsmietanka/interactive-map/pkg/geometry"
)

// Annotation is one hand-drawn region on the map.
type Annotation struct {
	// ID is the key of the annotation in the source document.
	ID string
	// Key is the join key ("Numer"), taken from the comment field.
	Key string

	Type Value // "Typ", from the label field
	Desc Value // "Opis", from the desc field

	// Points are (x%, y%) pairs relative to the source image size.
	Points geometry.Polygon
	// PointsRaw is the points array as compact JSON.
	PointsRaw Value
}

type rawAnnotation struct {
	Comment json.RawMessage `json:"comment"`
	Label   json.RawMessage `json:"label"`
	Desc    json.RawMessage `json:"desc"`
	Points  json.RawMessage `json:"points"`
}

// ParseAnnotations decodes an annotations document: a JSON object mapping
// annotation id to {comment, label, desc, points}. Annotations are returned in
// document order.
func ParseAnnotations(data []byte) ([]Annotation, error) {
	data = replaceNonFiniteLiterals(data)

	doc := orderedmap.New[string, rawAnnotation]()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("decode annotations: %w", err)
	}

	annotations := make([]Annotation, 0, doc.Len())
	for pair := doc.Oldest(); pair != nil; pair = pair.Next() {
		ann, err := parseAnnotation(pair.Key, pair.Value)
		if err != nil {
			return nil, fmt.Errorf("annotation %q: %w", pair.Key, err)
		}
		annotations = append(annotations, ann)
	}
	return annotations, nil
}

func parseAnnotation(id string, raw rawAnnotation) (Annotation, error) {
	required := []struct {
		name string
		data json.RawMessage
	}{
		{"comment", raw.Comment},
		{"label", raw.Label},
		{"desc", raw.Desc},
		{"points", raw.Points},
	}
	for _, field := range required {
		if len(field.data) == 0 {
			return Annotation{}, fmt.Errorf("%w: %s", ErrMissingField, field.name)
		}
	}

	comment, err := decodeValue(raw.Comment)
	if err != nil {
		return Annotation{}, fmt.Errorf("comment: %w", err)
	}
	label, err := decodeValue(raw.Label)
	if err != nil {
		return Annotation{}, fmt.Errorf("label: %w", err)
	}
	desc, err := decodeValue(raw.Desc)
	if err != nil {
		return Annotation{}, fmt.Errorf("desc: %w", err)
	}
	points, err := parsePoints(raw.Points)
	if err != nil {
		return Annotation{}, err
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw.Points); err != nil {
		return Annotation{}, fmt.Errorf("points: %w", err)
	}
	if compact.String() == "null" {
		compact.Reset()
		compact.WriteString("[]")
	}

	return Annotation{
		ID:        id,
		Key:       comment.String(),
		Type:      label,
		Desc:      desc,
		Points:    points,
		PointsRaw: Raw(compact.String()),
	}, nil
}

// parsePoints reads an array of [x, y] pairs. A null array is an empty polygon.
func parsePoints(raw json.RawMessage) (geometry.Polygon, error) {
	var pairs [][]*float64
	if err := json.Unmarshal(raw, &pairs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPoints, err)
	}

	points := make(geometry.Polygon, 0, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: point %d has %d coordinates", ErrMalformedPoints, i, len(pair))
		}
		var p geometry.Point2D
		if pair[0] != nil {
			p.X = *pair[0]
		}
		if pair[1] != nil {
			p.Y = *pair[1]
		}
		points = append(points, p)
	}
	return points, nil
}
