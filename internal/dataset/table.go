package dataset

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"

	"github.com/bsmietanka/interactive-map/pkg/geometry"
)

// Row is one annotation joined with its description.
type Row struct {
	// Key is the join key, shown as "Numer".
	Key    string
	ID     string
	Points geometry.Polygon
	// Cells holds one value per table column.
	Cells []Value
}

// Table is the unified, read-only dataset: one row per annotation in
// annotation document order.
type Table struct {
	columns []string
	index   map[string]int
	numeric map[string]bool
	rows    []Row
	byKey   map[string]int
}

// NewTable assembles a table. Every row must have len(columns) cells.
func NewTable(columns []string, numeric []string, rows []Row) *Table {
	t := &Table{
		columns: columns,
		index:   make(map[string]int, len(columns)),
		numeric: make(map[string]bool, len(numeric)),
		rows:    rows,
		byKey:   make(map[string]int, len(rows)),
	}
	for i, c := range columns {
		t.index[c] = i
	}
	for _, c := range numeric {
		t.numeric[c] = true
	}
	for i, r := range rows {
		if _, ok := t.byKey[r.Key]; !ok {
			t.byKey[r.Key] = i
		}
	}
	return t
}

// Columns returns the column names in display order. ColumnKey is not among
// them.
func (t *Table) Columns() []string { return append([]string(nil), t.columns...) }

// NumericColumns returns the integer columns in table order.
func (t *Table) NumericColumns() []string {
	var out []string
	for _, c := range t.columns {
		if t.numeric[c] {
			out = append(out, c)
		}
	}
	return out
}

// IsNumeric reports whether column holds sanitized integers.
func (t *Table) IsNumeric(column string) bool { return t.numeric[column] }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Row returns row i.
func (t *Table) Row(i int) Row { return t.rows[i] }

// Value returns the cell of row i in column. ColumnKey yields the row key;
// unknown columns yield null.
func (t *Table) Value(i int, column string) Value {
	if column == ColumnKey {
		return String(t.rows[i].Key)
	}
	c, ok := t.index[column]
	if !ok {
		return Null()
	}
	return t.rows[i].Cells[c]
}

// Lookup returns the index of the first row with the given key.
func (t *Table) Lookup(key string) (int, bool) {
	i, ok := t.byKey[key]
	return i, ok
}

// Record returns row i as an ordered map, ColumnKey first.
func (t *Table) Record(i int) *orderedmap.OrderedMap[string, Value] {
	rec := orderedmap.New[string, Value]()
	rec.Set(ColumnKey, String(t.rows[i].Key))
	for c, name := range t.columns {
		rec.Set(name, t.rows[i].Cells[c])
	}
	return rec
}

// MarshalJSON encodes the table as an array of objects in row order, each
// with ColumnKey followed by the columns in table order.
func (t *Table) MarshalJSON() ([]byte, error) {
	records := make([]*orderedmap.OrderedMap[string, Value], t.Len())
	for i := range records {
		records[i] = t.Record(i)
	}
	return json.Marshal(records)
}

// MarshalYAML encodes the table as a sequence of mappings in the same order as
// MarshalJSON.
func (t *Table) MarshalYAML() (interface{}, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for i := range t.rows {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for pair := t.Record(i).Oldest(); pair != nil; pair = pair.Next() {
			var val yaml.Node
			if err := val.Encode(pair.Value); err != nil {
				return nil, err
			}
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: pair.Key},
				&val,
			)
		}
		seq.Content = append(seq.Content, m)
	}
	return seq, nil
}

// Join left-joins annotations with exploded description records on the join
// key. Every annotation yields exactly one row; when several records share a
// key the first one is used and the rest are reported.
func Join(annotations []Annotation, exploded []ExplodedRecord, schema Schema) (*Table, []Warning) {
	var warnings []Warning

	byKey := make(map[string]int, len(exploded))
	for i, rec := range exploded {
		if _, dup := byKey[rec.Key]; dup {
			warnings = append(warnings, Warning{Kind: WarnDuplicateKey, Record: rec.Record, Key: rec.Key})
			continue
		}
		byKey[rec.Key] = i
	}

	descCols := descriptionColumns(exploded, schema)
	annCols, descNames := resolveCollisions(descCols)

	columns := make([]string, 0, len(annCols)+len(descNames))
	columns = append(columns, annCols...)
	columns = append(columns, descNames...)

	var numeric []string
	numericAt := make([]bool, len(descCols))
	for i, c := range descCols {
		if schema.isNumeric(c) {
			numeric = append(numeric, descNames[i])
			numericAt[i] = true
		}
	}

	rows := make([]Row, len(annotations))
	for i, ann := range annotations {
		cells := make([]Value, 0, len(columns))
		cells = append(cells, ann.Type, ann.Desc, String(ann.ID), ann.PointsRaw)

		j, matched := byKey[ann.Key]
		for c, name := range descCols {
			v := Null()
			if matched {
				v, _ = exploded[j].Fields.Get(name)
			}
			if numericAt[c] {
				v = Int(SanitizeInt(v))
			}
			cells = append(cells, v)
		}

		rows[i] = Row{Key: ann.Key, ID: ann.ID, Points: ann.Points, Cells: cells}
	}

	return NewTable(columns, numeric, rows), warnings
}

// descriptionColumns lists description columns in order of first appearance,
// followed by numeric columns no record carries.
func descriptionColumns(exploded []ExplodedRecord, schema Schema) []string {
	seen := make(map[string]bool)
	var cols []string

	lastRecord := -1
	for _, rec := range exploded {
		if rec.Record == lastRecord {
			continue
		}
		lastRecord = rec.Record
		for pair := rec.Fields.Oldest(); pair != nil; pair = pair.Next() {
			if pair.Key == schema.KeyField || seen[pair.Key] {
				continue
			}
			seen[pair.Key] = true
			cols = append(cols, pair.Key)
		}
	}
	for _, c := range schema.NumericColumns {
		if !seen[c] {
			seen[c] = true
			cols = append(cols, c)
		}
	}
	return cols
}

// resolveCollisions suffixes annotation columns that a description also
// carries with "_x" and the description's copy with "_y".
func resolveCollisions(descCols []string) (annCols, descNames []string) {
	clash := make(map[string]bool)
	for _, c := range descCols {
		for _, a := range annotationColumns {
			if c == a {
				clash[c] = true
			}
		}
	}

	annCols = make([]string, len(annotationColumns))
	for i, a := range annotationColumns {
		annCols[i] = a
		if clash[a] {
			annCols[i] = a + "_x"
		}
	}
	descNames = make([]string, len(descCols))
	for i, c := range descCols {
		descNames[i] = c
		if clash[c] {
			descNames[i] = c + "_y"
		}
	}
	return annCols, descNames
}
