package canvas

import (
	"html"
	"strings"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/bsmietanka/interactive-map/internal/render"
	"github.com/bsmietanka/interactive-map/pkg/colorutil"
)

// Offset of the tooltip from the pointer.
const tooltipOffset = 16

// tooltip is drawn in a layer above the scroll container rather than in a
// pop-up, which would swallow the pointer events of the map.
type tooltip struct {
	text  *widget.RichText
	box   *fyne.Container
	layer *fyne.Container
	row   int
}

func newTooltip() *tooltip {
	t := &tooltip{text: widget.NewRichText(), row: -1}
	border := fynecanvas.NewRectangle(colorutil.White)
	border.StrokeColor = colorutil.Outline
	border.StrokeWidth = 1
	t.box = container.NewStack(border, container.NewPadded(t.text))
	t.box.Hide()
	t.layer = container.NewWithoutLayout(t.box)
	return t
}

// tooltipSegments turns the "<b>Name: value</b><br>" markup of a region
// into bold paragraphs. Values are escaped in the markup, so a literal
// "<br>" inside one cannot split a line.
func tooltipSegments(markup string) []widget.RichTextSegment {
	style := widget.RichTextStyleStrong
	style.Inline = false

	var segments []widget.RichTextSegment
	for _, line := range strings.Split(markup, "<br>") {
		line = strings.TrimSuffix(strings.TrimPrefix(line, "<b>"), "</b>")
		if line == "" {
			continue
		}
		segments = append(segments, &widget.TextSegment{Text: html.UnescapeString(line), Style: style})
	}
	return segments
}

// tooltipPosition places a box of size tip next to the pointer at pos,
// flipping it to the other side when it would leave view.
func tooltipPosition(pos fyne.Position, tip, view fyne.Size) fyne.Position {
	x := pos.X + tooltipOffset
	y := pos.Y + tooltipOffset
	if x+tip.Width > view.Width {
		x = pos.X - tooltipOffset - tip.Width
	}
	if y+tip.Height > view.Height {
		y = pos.Y - tooltipOffset - tip.Height
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return fyne.NewPos(x, y)
}

// show displays r's tooltip next to pos, given relative to the map view.
func (t *tooltip) show(r *render.Region, pos fyne.Position, view fyne.Size) {
	if t.row != r.Row {
		t.row = r.Row
		t.text.Segments = tooltipSegments(r.Tooltip)
		t.text.Refresh()
	}
	size := t.box.MinSize()
	t.box.Resize(size)
	t.box.Move(tooltipPosition(pos, size, view))
	t.box.Show()
	t.layer.Refresh()
}

func (t *tooltip) hide() {
	if !t.box.Visible() {
		return
	}
	t.box.Hide()
	t.row = -1
	t.layer.Refresh()
}
