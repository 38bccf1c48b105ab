// Package dialogs provides application dialogs.
package dialogs

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/bsmietanka/interactive-map/internal/dataset"
	"github.com/bsmietanka/interactive-map/internal/render"
)

// PlotDialog shows every field of one plot. It is read-only; the register
// is never edited from the application.
type PlotDialog struct {
	table  *dataset.Table
	row    int
	window fyne.Window

	onShowOnMap func(row int)
}

// NewPlotDialog creates a dialog for table row.
func NewPlotDialog(table *dataset.Table, row int, window fyne.Window) *PlotDialog {
	return &PlotDialog{table: table, row: row, window: window}
}

// OnShowOnMap sets the action of the "show on map" button. Without it the
// button is not shown.
func (d *PlotDialog) OnShowOnMap(callback func(row int)) {
	d.onShowOnMap = callback
}

// Show displays the dialog.
func (d *PlotDialog) Show() {
	form := widget.NewForm()
	for _, f := range PlotFields(d.table, d.row) {
		value := widget.NewLabel(f.Value)
		value.Wrapping = fyne.TextWrapWord
		form.Append(f.Name, value)
	}
	content := container.NewVScroll(form)

	var dlg dialog.Dialog
	closeBtn := widget.NewButton("Zamknij", func() { dlg.Hide() })
	buttons := container.NewHBox(closeBtn)
	if d.onShowOnMap != nil {
		showBtn := widget.NewButton("Pokaż na mapie", func() {
			dlg.Hide()
			d.onShowOnMap(d.row)
		})
		showBtn.Importance = widget.HighImportance
		buttons.Add(showBtn)
	}

	dlg = dialog.NewCustomWithoutButtons(
		"Działka nr "+d.table.Row(d.row).Key,
		container.NewBorder(nil, container.NewCenter(buttons), nil, nil, content),
		d.window,
	)
	dlg.Resize(fyne.NewSize(480, 560))
	dlg.Show()
}

// PlotFields lists the fields of a row in table order, ColumnKey first.
// Unlike a tooltip it keeps empty values and the annotation id; only the
// raw polygon is left out.
func PlotFields(table *dataset.Table, row int) []render.Field {
	if row < 0 || row >= table.Len() {
		return nil
	}
	var fields []render.Field
	for pair := table.Record(row).Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key == dataset.ColumnPoints {
			continue
		}
		fields = append(fields, render.Field{Name: pair.Key, Value: pair.Value.String()})
	}
	return fields
}
