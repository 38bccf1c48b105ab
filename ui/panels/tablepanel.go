// Package panels provides UI panels for the application.
package panels

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/bsmietanka/interactive-map/internal/app"
	"github.com/bsmietanka/interactive-map/internal/dataset"
	"github.com/bsmietanka/interactive-map/internal/logger"
)

// Page sizes offered by the pager.
var pageSizes = []int{10, 25, 50, 100}

// checkColumnWidth is the width of the selection checkbox column.
const checkColumnWidth = 40

// TablePanel shows the unified table as a sortable, paginated grid with a
// single-row selection checkbox.
type TablePanel struct {
	state *app.State
	view  *dataset.View
	lggr  logger.Logger

	table     *widget.Table
	pageLabel *widget.Label
	prevBtn   *widget.Button
	nextBtn   *widget.Button
	sizeSel   *widget.Select
	summary   *widget.Label
	container *fyne.Container

	pageSize int
	rows     []int // table rows on the current page

	onPageSizeChange func(size int)
}

// NewTablePanel creates a table panel bound to state. It follows dataset
// loads and selection changes made elsewhere.
func NewTablePanel(state *app.State, pageSize int, lggr logger.Logger) *TablePanel {
	if pageSize <= 0 {
		pageSize = dataset.DefaultPageSize
	}
	tp := &TablePanel{
		state:    state,
		lggr:     lggr,
		pageSize: pageSize,
	}

	tp.table = widget.NewTableWithHeaders(
		tp.size,
		func() fyne.CanvasObject {
			return container.NewStack(widget.NewCheck("", nil), widget.NewLabel(""))
		},
		tp.updateCell,
	)
	tp.table.ShowHeaderColumn = false
	tp.table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewButton("", nil)
	}
	tp.table.UpdateHeader = tp.updateHeader
	tp.table.OnSelected = func(id widget.TableCellID) {
		tp.table.Unselect(id)
		if id.Row >= 0 && id.Row < len(tp.rows) && id.Col > 0 {
			tp.toggleRow(tp.rows[id.Row])
		}
	}

	tp.pageLabel = widget.NewLabel("")
	tp.prevBtn = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		tp.setPage(tp.view.Page() - 1)
	})
	tp.nextBtn = widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() {
		tp.setPage(tp.view.Page() + 1)
	})

	options := make([]string, len(pageSizes))
	for i, n := range pageSizes {
		options[i] = strconv.Itoa(n)
	}
	tp.sizeSel = widget.NewSelect(options, nil)
	tp.sizeSel.SetSelected(strconv.Itoa(pageSize))
	tp.sizeSel.OnChanged = func(s string) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return
		}
		tp.SetPageSize(n)
	}

	tp.summary = widget.NewLabel("")
	tp.summary.Wrapping = fyne.TextWrapWord

	pager := container.NewHBox(
		tp.prevBtn, tp.pageLabel, tp.nextBtn,
		widget.NewSeparator(),
		widget.NewLabel("Wierszy na stronę:"), tp.sizeSel,
	)
	tp.container = container.NewBorder(
		nil,
		container.NewVBox(pager, tp.summary),
		nil, nil,
		tp.table,
	)

	state.On(app.EventDatasetLoaded, func(data interface{}) {
		if snap, ok := data.(*app.Snapshot); ok {
			tp.setSnapshot(snap)
		}
	})
	state.On(app.EventSelectionChanged, func(data interface{}) {
		if row, ok := data.(int); ok {
			tp.showSelection(row)
		}
	})

	if snap := state.Snapshot(); snap != nil {
		tp.setSnapshot(snap)
	} else {
		tp.refresh()
	}
	return tp
}

// Container returns the panel container.
func (tp *TablePanel) Container() fyne.CanvasObject {
	return tp.container
}

// View returns the view behind the grid, nil before a dataset is loaded.
func (tp *TablePanel) View() *dataset.View {
	return tp.view
}

// OnPageSizeChange sets a callback for page size changes made in the pager.
func (tp *TablePanel) OnPageSizeChange(callback func(size int)) {
	tp.onPageSizeChange = callback
}

// SetPageSize changes the number of rows per page.
func (tp *TablePanel) SetPageSize(n int) {
	if n <= 0 || n == tp.pageSize {
		return
	}
	tp.pageSize = n
	if tp.view != nil {
		tp.view.SetPageSize(n)
	}
	tp.sizeSel.SetSelected(strconv.Itoa(n))
	tp.refresh()
	if tp.onPageSizeChange != nil {
		tp.onPageSizeChange(n)
	}
}

// ToggleSort advances the sort of column and shows the first page.
func (tp *TablePanel) ToggleSort(column string) {
	if tp.view == nil {
		return
	}
	dir := tp.view.ToggleSort(column)
	tp.lggr.Debugw("Table sorted", "column", column, "direction", dir)
	tp.refresh()
}

func (tp *TablePanel) setSnapshot(snap *app.Snapshot) {
	if snap == nil || snap.Table == nil {
		tp.view = nil
	} else {
		tp.view = dataset.NewView(snap.Table, tp.pageSize)
		tp.summary.SetText(summaryText(snap.Summary))
	}
	tp.refresh()
	tp.fitColumns()
}

func (tp *TablePanel) setPage(p int) {
	if tp.view == nil {
		return
	}
	tp.view.SetPage(p)
	tp.refresh()
}

// toggleRow selects row, or clears the selection when row is selected.
func (tp *TablePanel) toggleRow(row int) {
	if selected, ok := tp.state.Selected(); ok && selected == row {
		tp.state.Select(-1)
		return
	}
	tp.state.Select(row)
}

// showSelection mirrors a selection made anywhere and turns to its page.
func (tp *TablePanel) showSelection(row int) {
	if tp.view == nil {
		return
	}
	if row < 0 {
		tp.view.ClearSelection()
	} else if selected, _ := tp.view.Selected(); selected != row {
		tp.view.Select(row)
		tp.view.SetPage(tp.view.PageOf(row))
	}
	tp.refresh()
}

func (tp *TablePanel) refresh() {
	if tp.view == nil {
		tp.rows = nil
		tp.pageLabel.SetText(pageText(0, 1))
		tp.prevBtn.Disable()
		tp.nextBtn.Disable()
		tp.table.Refresh()
		return
	}

	tp.rows = tp.view.PageRows()
	page, count := tp.view.Page(), tp.view.PageCount()
	tp.pageLabel.SetText(pageText(page, count))
	if page > 0 {
		tp.prevBtn.Enable()
	} else {
		tp.prevBtn.Disable()
	}
	if page < count-1 {
		tp.nextBtn.Enable()
	} else {
		tp.nextBtn.Disable()
	}
	tp.table.Refresh()
}

// size reports the grid dimensions: the current page by the checkbox
// column plus the visible columns.
func (tp *TablePanel) size() (int, int) {
	if tp.view == nil {
		return 0, 0
	}
	return len(tp.rows), len(tp.view.Columns()) + 1
}

func (tp *TablePanel) updateCell(id widget.TableCellID, obj fyne.CanvasObject) {
	stack := obj.(*fyne.Container)
	check := stack.Objects[0].(*widget.Check)
	label := stack.Objects[1].(*widget.Label)

	if tp.view == nil || id.Row < 0 || id.Row >= len(tp.rows) {
		check.Hide()
		label.SetText("")
		return
	}
	row := tp.rows[id.Row]

	if id.Col == 0 {
		label.Hide()
		check.Show()
		selected, _ := tp.view.Selected()
		// recycled cells must not report the state they are given
		check.OnChanged = nil
		check.SetChecked(selected == row)
		check.OnChanged = func(bool) { tp.toggleRow(row) }
		return
	}

	check.Hide()
	label.Show()
	columns := tp.view.Columns()
	if id.Col-1 >= len(columns) {
		label.SetText("")
		return
	}
	label.SetText(tp.view.Table().Value(row, columns[id.Col-1]).String())
}

func (tp *TablePanel) updateHeader(id widget.TableCellID, obj fyne.CanvasObject) {
	btn := obj.(*widget.Button)
	if tp.view == nil || id.Col == 0 {
		btn.SetText("")
		btn.OnTapped = nil
		return
	}
	columns := tp.view.Columns()
	if id.Col-1 >= len(columns) {
		btn.SetText("")
		btn.OnTapped = nil
		return
	}
	column := columns[id.Col-1]
	sortCol, dir := tp.view.Sort()
	if sortCol != column {
		dir = dataset.SortNone
	}
	btn.SetText(headerText(column, dir))
	btn.OnTapped = func() { tp.ToggleSort(column) }
}

// fitColumns sizes every column to its widest cell over the whole table.
func (tp *TablePanel) fitColumns() {
	tp.table.SetColumnWidth(0, checkColumnWidth)
	if tp.view == nil {
		return
	}

	measure := func(s string) float32 {
		return fyne.MeasureText(s, theme.TextSize(), fyne.TextStyle{}).Width
	}
	t := tp.view.Table()
	values := make([]string, t.Len())
	for c, column := range tp.view.Columns() {
		for i := range values {
			values[i] = t.Value(i, column).String()
		}
		w := columnWidth(headerText(column, dataset.SortAscending), values, measure)
		tp.table.SetColumnWidth(c+1, w)
	}
}
