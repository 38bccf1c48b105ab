package dataset

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultPageSize is the number of rows per page of a View.
const DefaultPageSize = 50

// SortDirection is the sort state of a view column.
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAscending
	SortDescending
)

func (d SortDirection) String() string {
	switch d {
	case SortAscending:
		return "asc"
	case SortDescending:
		return "desc"
	default:
		return "none"
	}
}

// next cycles ascending, descending, unsorted.
func (d SortDirection) next() SortDirection {
	switch d {
	case SortNone:
		return SortAscending
	case SortAscending:
		return SortDescending
	default:
		return SortNone
	}
}

// View is a sorted, paginated window onto a Table with at most one selected
// row. A View is not safe for concurrent use.
type View struct {
	table    *Table
	collator *collate.Collator

	order   []int
	sortCol string
	sortDir SortDirection

	page     int
	pageSize int
	selected int

	hidden map[string]bool
}

// NewView returns an unsorted view of t on its first page. A non-positive
// pageSize selects DefaultPageSize.
func NewView(t *Table, pageSize int) *View {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	v := &View{
		table:    t,
		collator: collate.New(language.Polish),
		pageSize: pageSize,
		selected: -1,
		hidden:   map[string]bool{ColumnID: true, ColumnPoints: true},
	}
	v.resetOrder()
	return v
}

// Table returns the underlying table.
func (v *View) Table() *Table { return v.table }

func (v *View) resetOrder() {
	v.order = make([]int, v.table.Len())
	for i := range v.order {
		v.order[i] = i
	}
}

// Columns returns the visible columns, ColumnKey first.
func (v *View) Columns() []string {
	cols := []string{ColumnKey}
	for _, c := range v.table.Columns() {
		if !v.hidden[c] {
			cols = append(cols, c)
		}
	}
	return cols
}

// Sort returns the current sort column and direction.
func (v *View) Sort() (string, SortDirection) { return v.sortCol, v.sortDir }

// ToggleSort advances the sort state of column and re-sorts. Switching to a
// different column starts it ascending. The view returns to its first page.
func (v *View) ToggleSort(column string) SortDirection {
	dir := SortAscending
	if column == v.sortCol {
		dir = v.sortDir.next()
	}
	v.SetSort(column, dir)
	return dir
}

// SetSort sorts by column in the given direction. SortNone restores table
// order.
func (v *View) SetSort(column string, dir SortDirection) {
	v.sortCol, v.sortDir = column, dir
	if dir == SortNone {
		v.sortCol = ""
	}
	v.page = 0
	v.resetOrder()
	if dir == SortNone {
		return
	}

	keys := make([]sortKey, v.table.Len())
	for i := range keys {
		keys[i] = v.keyFor(i, column)
	}
	sort.SliceStable(v.order, func(a, b int) bool {
		ka, kb := keys[v.order[a]], keys[v.order[b]]
		if ka.null || kb.null {
			return !ka.null && kb.null
		}
		c := v.compare(ka, kb)
		if dir == SortDescending {
			return c > 0
		}
		return c < 0
	})
}

type sortKey struct {
	null    bool
	numeric bool
	num     float64
	text    string
}

func (v *View) keyFor(row int, column string) sortKey {
	val := v.table.Value(row, column)
	if val.IsNull() {
		return sortKey{null: true}
	}
	k := sortKey{text: val.String()}
	if v.table.IsNumeric(column) || val.IsNumeric() || column == ColumnKey {
		if f, ok := val.Float(); ok {
			k.numeric, k.num = true, f
		}
	}
	return k
}

// compare orders numbers before text, numbers numerically and text by Polish
// collation.
func (v *View) compare(a, b sortKey) int {
	switch {
	case a.numeric && b.numeric:
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
		return 0
	case a.numeric:
		return -1
	case b.numeric:
		return 1
	}
	return v.collator.CompareString(a.text, b.text)
}

// PageSize returns the number of rows per page.
func (v *View) PageSize() int { return v.pageSize }

// SetPageSize changes the page size and returns to the first page.
func (v *View) SetPageSize(n int) {
	if n <= 0 {
		n = DefaultPageSize
	}
	v.pageSize = n
	v.page = 0
}

// PageCount returns the number of pages; an empty table has one empty page.
func (v *View) PageCount() int {
	n := (len(v.order) + v.pageSize - 1) / v.pageSize
	if n < 1 {
		return 1
	}
	return n
}

// Page returns the zero-based current page.
func (v *View) Page() int { return v.page }

// SetPage moves to page p, clamped to the valid range.
func (v *View) SetPage(p int) {
	if p < 0 {
		p = 0
	}
	if last := v.PageCount() - 1; p > last {
		p = last
	}
	v.page = p
}

// PageRows returns the table row indices shown on the current page.
func (v *View) PageRows() []int {
	start := v.page * v.pageSize
	end := start + v.pageSize
	if end > len(v.order) {
		end = len(v.order)
	}
	return append([]int(nil), v.order[start:end]...)
}

// Select makes row the selected row. Selecting the selected row clears the
// selection. It reports whether row is selected afterwards.
func (v *View) Select(row int) bool {
	if row < 0 || row >= v.table.Len() || row == v.selected {
		v.selected = -1
		return false
	}
	v.selected = row
	return true
}

// ClearSelection deselects any row.
func (v *View) ClearSelection() { v.selected = -1 }

// Selected returns the selected table row.
func (v *View) Selected() (int, bool) { return v.selected, v.selected >= 0 }

// PageOf returns the page that shows table row.
func (v *View) PageOf(row int) int {
	for pos, r := range v.order {
		if r == row {
			return pos / v.pageSize
		}
	}
	return 0
}
