// Package canvas provides the map view: the scanned map with pan, zoom,
// hover tooltips and click-to-select over the annotated regions.
package canvas

import (
	"image"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/bsmietanka/interactive-map/internal/render"
)

const (
	minZoom  = 0.1
	maxZoom  = 10.0
	zoomStep = 1.25
)

// MapCanvas displays a render.Scene. Zoom 1 shows the display copy of the
// map at its own size.
type MapCanvas struct {
	widget.BaseWidget

	scene   *render.Scene
	overlay func() render.Overlay

	raster *fynecanvas.Raster
	zoom   float64

	scroll  *zoomScroll
	content *mapContent
	imgSize fyne.Size

	fitToWindow    bool
	lastScrollSize fyne.Size

	hoverRow int
	tooltip  *tooltip

	onZoomChange func(zoom float64)
	onHover      func(row int)
	onTap        func(row int)
}

// zoomScroll is a widget that wraps a scroll container but intercepts wheel for zoom.
type zoomScroll struct {
	widget.BaseWidget
	scroll *container.Scroll
	canvas *MapCanvas
}

func newZoomScroll(content fyne.CanvasObject, canvas *MapCanvas) *zoomScroll {
	scroll := container.NewScroll(content)
	scroll.Direction = container.ScrollBoth
	zs := &zoomScroll{scroll: scroll, canvas: canvas}
	zs.ExtendBaseWidget(zs)
	return zs
}

func (zs *zoomScroll) Scrolled(ev *fyne.ScrollEvent) {
	zs.canvas.wheel(ev)
}

func (zs *zoomScroll) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(zs.scroll)
}

// Size returns the scroll container's size.
func (zs *zoomScroll) Size() fyne.Size {
	return zs.scroll.Size()
}

func (zs *zoomScroll) Resize(size fyne.Size) {
	zs.scroll.Resize(size)
	zs.BaseWidget.Resize(size)
}

// mapContent wraps the raster to receive pointer events. Event positions
// are relative to the content, so they are already in zoomed map units.
type mapContent struct {
	widget.BaseWidget
	canvas *MapCanvas
	raster *fynecanvas.Raster
}

var (
	_ desktop.Hoverable = (*mapContent)(nil)
	_ fyne.Draggable    = (*mapContent)(nil)
	_ fyne.Tappable     = (*mapContent)(nil)
)

func newMapContent(mc *MapCanvas, raster *fynecanvas.Raster) *mapContent {
	c := &mapContent{canvas: mc, raster: raster}
	c.ExtendBaseWidget(c)
	return c
}

func (c *mapContent) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.raster)
}

func (c *mapContent) MinSize() fyne.Size {
	return c.raster.MinSize()
}

func (c *mapContent) Scrolled(ev *fyne.ScrollEvent) {
	c.canvas.wheel(ev)
}

// Dragged pans the map.
func (c *mapContent) Dragged(ev *fyne.DragEvent) {
	c.canvas.tooltip.hide()
	s := c.canvas.scroll.scroll
	s.Offset = clampOffset(
		fyne.NewPos(s.Offset.X-ev.Dragged.DX, s.Offset.Y-ev.Dragged.DY),
		c.canvas.imgSize, s.Size(),
	)
	s.Refresh()
}

func (c *mapContent) DragEnd() {}

// Tapped selects the region under the pointer, or clears the selection on
// bare map.
func (c *mapContent) Tapped(ev *fyne.PointEvent) {
	if c.canvas.onTap == nil {
		return
	}
	size := c.Size()
	if ev.Position.X < 0 || ev.Position.Y < 0 ||
		ev.Position.X > size.Width || ev.Position.Y > size.Height {
		return
	}
	c.canvas.onTap(c.canvas.rowAt(ev.Position))
}

func (c *mapContent) MouseIn(ev *desktop.MouseEvent) {
	c.canvas.hover(ev.Position)
}

func (c *mapContent) MouseMoved(ev *desktop.MouseEvent) {
	c.canvas.hover(ev.Position)
}

func (c *mapContent) MouseOut() {
	c.canvas.setHover(-1)
	c.canvas.tooltip.hide()
}

// NewMapCanvas creates an empty map canvas.
func NewMapCanvas() *MapCanvas {
	mc := &MapCanvas{
		zoom:     1.0,
		hoverRow: -1,
		tooltip:  newTooltip(),
		imgSize:  fyne.NewSize(400, 300),
		overlay:  func() render.Overlay { return render.NoOverlay },
	}

	mc.raster = fynecanvas.NewRaster(mc.draw)
	mc.raster.ScaleMode = fynecanvas.ImageScaleSmooth
	mc.raster.SetMinSize(mc.imgSize)

	mc.content = newMapContent(mc, mc.raster)
	mc.scroll = newZoomScroll(mc.content, mc)

	mc.ExtendBaseWidget(mc)
	return mc
}

// Container returns the canvas for embedding in layouts: the scrolled map
// with the tooltip layer above it.
func (mc *MapCanvas) Container() fyne.CanvasObject {
	return mc
}

// SetScene replaces the displayed scene. A nil scene shows a blank canvas.
func (mc *MapCanvas) SetScene(scene *render.Scene) {
	mc.scene = scene
	mc.hoverRow = -1
	mc.tooltip.hide()
	mc.updateContentSize()
	if mc.fitToWindow {
		mc.FitToWindow()
	}
}

// Scene returns the displayed scene.
func (mc *MapCanvas) Scene() *render.Scene {
	return mc.scene
}

// SetOverlaySource sets the function consulted on every redraw for the
// outlines, the hovered and the selected region.
func (mc *MapCanvas) SetOverlaySource(source func() render.Overlay) {
	mc.overlay = source
}

// SetZoom sets the zoom level.
func (mc *MapCanvas) SetZoom(zoom float64) {
	mc.zoom = clampZoom(zoom)
	mc.tooltip.hide()
	mc.updateContentSize()

	if mc.onZoomChange != nil {
		mc.onZoomChange(mc.zoom)
	}
}

// Zoom returns the current zoom level.
func (mc *MapCanvas) Zoom() float64 {
	return mc.zoom
}

// ZoomIn increases the zoom level.
func (mc *MapCanvas) ZoomIn() {
	mc.SetZoom(mc.zoom * zoomStep)
}

// ZoomOut decreases the zoom level.
func (mc *MapCanvas) ZoomOut() {
	mc.SetZoom(mc.zoom / zoomStep)
}

// ActualSize zooms so one map pixel covers one screen unit.
func (mc *MapCanvas) ActualSize() {
	if mc.scene == nil || mc.scene.Scale <= 0 {
		mc.SetZoom(1)
		return
	}
	mc.SetZoom(1 / mc.scene.Scale)
}

// FitToWindow adjusts zoom to fit the map in the visible area.
func (mc *MapCanvas) FitToWindow() {
	if mc.scene == nil {
		return
	}
	b := mc.scene.Display.Bounds()
	zoom, ok := fitZoom(b.Dx(), b.Dy(), mc.scroll.Size())
	if !ok {
		return
	}
	mc.SetZoom(zoom)
}

// SetFitToWindow enables or disables auto-fit on resize.
func (mc *MapCanvas) SetFitToWindow(fit bool) {
	mc.fitToWindow = fit
	if fit {
		mc.FitToWindow()
	}
}

// FitToWindowEnabled returns the current fit-to-window state.
func (mc *MapCanvas) FitToWindowEnabled() bool {
	return mc.fitToWindow
}

// CheckResize checks if scroll container was resized and auto-fits if enabled.
func (mc *MapCanvas) CheckResize(size fyne.Size) {
	if !mc.fitToWindow {
		return
	}
	if size.Width > 0 && size.Height > 0 && size != mc.lastScrollSize {
		mc.lastScrollSize = size
		mc.FitToWindow()
	}
}

// ScrollToRow scrolls the view so the region of row is centred.
func (mc *MapCanvas) ScrollToRow(row int) {
	if mc.scene == nil {
		return
	}
	r, ok := mc.scene.Region(row)
	if !ok || r.Polygon.IsDegenerate() {
		return
	}
	c := mc.scene.DisplayPolygon(r, mc.zoom).Bounds().Center()
	view := mc.scroll.Size()

	s := mc.scroll.scroll
	s.Offset = clampOffset(
		fyne.NewPos(float32(c.X)-view.Width/2, float32(c.Y)-view.Height/2),
		mc.imgSize, view,
	)
	s.Refresh()
}

// OnZoomChange sets a callback for zoom changes.
func (mc *MapCanvas) OnZoomChange(callback func(zoom float64)) {
	mc.onZoomChange = callback
}

// OnHover sets a callback for the table row under the pointer, -1 when the
// pointer is over bare map or outside it.
func (mc *MapCanvas) OnHover(callback func(row int)) {
	mc.onHover = callback
}

// OnTap sets a callback for clicks, with the row hit or -1.
func (mc *MapCanvas) OnTap(callback func(row int)) {
	mc.onTap = callback
}

// Refresh redraws the map and its overlay.
func (mc *MapCanvas) Refresh() {
	mc.raster.Refresh()
}

func (mc *MapCanvas) wheel(ev *fyne.ScrollEvent) {
	mc.fitToWindow = false
	if ev.Scrolled.DY > 0 {
		mc.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		mc.ZoomOut()
	}
}

func (mc *MapCanvas) rowAt(pos fyne.Position) int {
	if mc.scene == nil {
		return -1
	}
	b := mc.scene.Display.Bounds()
	x, y := contentToDisplay(pos, mc.imgSize, b.Dx(), b.Dy())
	r, ok := mc.scene.RegionAtDisplay(x, y)
	if !ok {
		return -1
	}
	return r.Row
}

// hover updates the hovered row and the tooltip for pos on the content.
func (mc *MapCanvas) hover(pos fyne.Position) {
	row := mc.rowAt(pos)
	mc.setHover(row)
	if row < 0 {
		mc.tooltip.hide()
		return
	}

	r, ok := mc.scene.Region(row)
	if !ok || r.Tooltip == "" {
		mc.tooltip.hide()
		return
	}
	mc.tooltip.show(r, pos.Subtract(mc.scroll.scroll.Offset), mc.scroll.Size())
}

func (mc *MapCanvas) setHover(row int) {
	if row == mc.hoverRow {
		return
	}
	mc.hoverRow = row
	if mc.onHover != nil {
		mc.onHover(row)
	}
}

// updateContentSize updates the content size based on the display copy and zoom.
func (mc *MapCanvas) updateContentSize() {
	if mc.scene == nil {
		mc.imgSize = fyne.NewSize(400, 300)
	} else {
		mc.imgSize = contentSize(mc.scene.Display.Bounds(), mc.zoom)
	}

	mc.raster.SetMinSize(mc.imgSize)
	mc.raster.Resize(mc.imgSize)
	if mc.content != nil {
		mc.content.Resize(mc.imgSize)
		mc.content.Refresh()
	}
	mc.raster.Refresh()
	if mc.scroll != nil {
		mc.scroll.scroll.Refresh()
	}
}

func contentSize(display image.Rectangle, zoom float64) fyne.Size {
	return fyne.NewSize(float32(float64(display.Dx())*zoom), float32(float64(display.Dy())*zoom))
}

// CreateRenderer implements fyne.Widget.
func (mc *MapCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &mapCanvasRenderer{canvas: mc}
}

type mapCanvasRenderer struct {
	canvas *MapCanvas
}

func (r *mapCanvasRenderer) Layout(size fyne.Size) {
	r.canvas.scroll.Resize(size)
	r.canvas.tooltip.layer.Resize(size)
	r.canvas.CheckResize(size)
}

func (r *mapCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(100, 100)
}

func (r *mapCanvasRenderer) Refresh() {
	r.canvas.raster.Refresh()
}

func (r *mapCanvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.canvas.scroll, r.canvas.tooltip.layer}
}

func (r *mapCanvasRenderer) Destroy() {}
