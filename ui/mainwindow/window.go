// Package mainwindow provides the main application window.
package mainwindow

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/bsmietanka/interactive-map/internal/app"
	mapimage "github.com/bsmietanka/interactive-map/internal/image"
	"github.com/bsmietanka/interactive-map/internal/logger"
	"github.com/bsmietanka/interactive-map/internal/version"
	"github.com/bsmietanka/interactive-map/ui/canvas"
	"github.com/bsmietanka/interactive-map/ui/dialogs"
	"github.com/bsmietanka/interactive-map/ui/panels"
	"github.com/bsmietanka/interactive-map/ui/prefs"
)

// Title is the window title.
const Title = "Mapa Wąwolnicy z roku 1820"

const (
	defaultWidth  = 1280
	defaultHeight = 800
)

// MainWindow is the primary application window: the map tab and the table
// tab sharing one app.State.
type MainWindow struct {
	fyne.Window
	app   fyne.App
	state *app.State
	prefs *prefs.Prefs
	lggr  logger.Logger

	canvas     *canvas.MapCanvas
	tablePanel *panels.TablePanel
	tabs       *container.AppTabs
	statusBar  *widget.Label
	zoomLabel  *widget.Label
	outlines   *widget.Check

	// Menu items that need state tracking
	fitToWindowItem *fyne.MenuItem
	outlinesItem    *fyne.MenuItem

	watcher *app.DataWatcher
	reload  reloadPrompt
}

// New creates the main window. The dataset is expected to be loaded into
// state already; later loads are followed through events.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs, lggr logger.Logger) *MainWindow {
	win := fyneApp.NewWindow(Title)

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  p,
		lggr:   lggr,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()
	mw.restorePreferences()

	if snap := state.Snapshot(); snap != nil {
		mw.showSnapshot(snap)
	}

	win.SetCloseIntercept(func() {
		mw.SavePreferences()
		win.Close()
	})
	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.NewMapCanvas()
	mw.canvas.SetOverlaySource(mw.state.Overlay)

	pageSize := mw.prefs.Int(prefs.KeyPageSize, mw.state.Config.Table.PageSize)
	mw.tablePanel = panels.NewTablePanel(mw.state, pageSize, mw.lggr.Named("table"))

	mw.statusBar = widget.NewLabel("Gotowe")

	mapArea := container.NewBorder(
		mw.createToolbar(),    // top
		nil,                   // bottom
		nil,                   // left
		nil,                   // right
		mw.canvas.Container(), // center
	)

	mw.tabs = container.NewAppTabs(
		container.NewTabItem(app.TabMap.String(), mapArea),
		container.NewTabItem(app.TabTable.String(), mw.tablePanel.Container()),
	)
	mw.tabs.OnSelected = func(item *container.TabItem) {
		mw.state.SetTab(tabOf(item.Text))
	}

	content := container.NewBorder(
		nil,                               // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		mw.tabs,                           // center
	)
	mw.SetContent(content)
	mw.Resize(fyne.NewSize(
		float32(mw.prefs.Int(prefs.KeyWindowWidth, defaultWidth)),
		float32(mw.prefs.Int(prefs.KeyWindowHeight, defaultHeight)),
	))
}

// createToolbar creates the toolbar with zoom controls and the outline toggle.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	zoomOutBtn := widget.NewButton("−", mw.onZoomOut)
	zoomInBtn := widget.NewButton("+", mw.onZoomIn)
	fitBtn := widget.NewButton("Dopasuj", mw.onToggleFitToWindow)
	actualBtn := widget.NewButton("1:1", mw.onActualSize)
	mw.zoomLabel = widget.NewLabel(zoomText(1, 1))

	mw.outlines = widget.NewCheck("Granice działek", func(on bool) {
		mw.state.SetOutlines(on)
	})

	return container.NewHBox(
		widget.NewLabel("Powiększenie:"),
		zoomOutBtn,
		zoomInBtn,
		fitBtn,
		actualBtn,
		mw.zoomLabel,
		widget.NewSeparator(),
		mw.outlines,
	)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("Plik",
		fyne.NewMenuItem("Otwórz mapę...", mw.onOpenMap),
		fyne.NewMenuItem("Wczytaj dane ponownie", mw.onReload),
	)

	mw.fitToWindowItem = fyne.NewMenuItem("Dopasuj do okna", mw.onToggleFitToWindow)
	mw.outlinesItem = fyne.NewMenuItem("Granice działek", func() {
		mw.outlines.SetChecked(!mw.outlines.Checked)
	})

	viewMenu := fyne.NewMenu("Widok",
		fyne.NewMenuItem("Powiększ", mw.onZoomIn),
		fyne.NewMenuItem("Pomniejsz", mw.onZoomOut),
		mw.fitToWindowItem,
		fyne.NewMenuItem("Rzeczywisty rozmiar", mw.onActualSize),
		fyne.NewMenuItemSeparator(),
		mw.outlinesItem,
		fyne.NewMenuItem("Pokaż zaznaczoną działkę", mw.onShowSelected),
		fyne.NewMenuItem("Szczegóły działki...", mw.onPlotDetails),
	)

	helpMenu := fyne.NewMenu("Pomoc",
		fyne.NewMenuItem("O programie", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, helpMenu))
}

// setupEventHandlers connects the canvas and the state.
func (mw *MainWindow) setupEventHandlers() {
	mw.canvas.OnHover(mw.state.Hover)
	mw.canvas.OnZoomChange(func(float64) { mw.updateZoomLabel() })
	mw.canvas.OnTap(func(row int) {
		if selected, ok := mw.state.Selected(); ok && selected == row {
			mw.state.Select(-1)
			return
		}
		mw.state.Select(row)
	})

	mw.state.On(app.EventDatasetLoaded, func(data interface{}) {
		if snap, ok := data.(*app.Snapshot); ok {
			mw.showSnapshot(snap)
		}
	})
	mw.state.On(app.EventSelectionChanged, func(data interface{}) {
		mw.canvas.Refresh()
		row, _ := data.(int)
		mw.updateStatus(mw.selectionStatus(row))
	})
	mw.state.On(app.EventHoverChanged, func(interface{}) {
		mw.canvas.Refresh()
	})
	mw.state.On(app.EventOutlinesToggled, func(data interface{}) {
		on, _ := data.(bool)
		mw.outlinesItem.Checked = on
		mw.canvas.Refresh()
	})
}

// showSnapshot puts a newly loaded dataset on screen.
func (mw *MainWindow) showSnapshot(snap *app.Snapshot) {
	mw.canvas.SetScene(snap.Scene)
	mw.updateZoomLabel()
	mw.updateStatus(statusText(snap))
}

// StartWatching offers a reload whenever an input file changes, until ctx
// is done.
func (mw *MainWindow) StartWatching(ctx context.Context, interval time.Duration) {
	mw.watcher = app.NewDataWatcher(interval, mw.watchedPaths()...)
	mw.reload.ask = func(message string, answer func(ok bool)) {
		dialog.ShowConfirm("Zmienione dane", message, answer, mw.Window)
	}
	mw.watcher.OnChange(func(changed []string) {
		mw.lggr.Infow("Input files changed", "files", changed)
		mw.reload.offer(changed, mw.onReload)
	})
	mw.watcher.Start(ctx)
}

func (mw *MainWindow) updateZoomLabel() {
	scale := 1.0
	if scene := mw.canvas.Scene(); scene != nil {
		scale = scene.Scale
	}
	mw.zoomLabel.SetText(zoomText(mw.canvas.Zoom(), scale))
}

// watchedPaths lists the input files of the current configuration.
func (mw *MainWindow) watchedPaths() []string {
	cfg := mw.state.Config
	return []string{cfg.MapPath, cfg.AnnotationsPath, cfg.DescriptionPath}
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

func (mw *MainWindow) selectionStatus(row int) string {
	snap := mw.state.Snapshot()
	if snap == nil {
		return ""
	}
	if row < 0 || row >= snap.Table.Len() {
		return statusText(snap)
	}
	return fmt.Sprintf("Zaznaczono działkę nr %s", snap.Table.Row(row).Key)
}

func tabOf(text string) app.Tab {
	if text == app.TabTable.String() {
		return app.TabTable
	}
	return app.TabMap
}

// restorePreferences applies the saved zoom, outline, tab and window state.
func (mw *MainWindow) restorePreferences() {
	fit := mw.prefs.Bool(prefs.KeyFitToWindow, true)
	if fit {
		mw.canvas.SetFitToWindow(true)
	} else {
		mw.canvas.SetZoom(mw.prefs.Float(prefs.KeyZoom, 1))
	}
	mw.fitToWindowItem.Checked = fit

	mw.outlines.SetChecked(mw.prefs.Bool(prefs.KeyOutlines, false))

	if tabOf(mw.prefs.String(prefs.KeyTab, app.TabMap.String())) == app.TabTable {
		mw.tabs.SelectIndex(1)
	}

	mw.tablePanel.OnPageSizeChange(func(size int) {
		mw.prefs.SetInt(prefs.KeyPageSize, size)
	})
}

// SavePreferences writes the current view state to the preferences file.
func (mw *MainWindow) SavePreferences() {
	mw.prefs.SetFloat(prefs.KeyZoom, mw.canvas.Zoom())
	mw.prefs.SetBool(prefs.KeyFitToWindow, mw.canvas.FitToWindowEnabled())
	mw.prefs.SetBool(prefs.KeyOutlines, mw.state.Outlines())
	mw.prefs.SetString(prefs.KeyTab, mw.state.Tab().String())

	size := mw.Canvas().Size()
	if size.Width > 0 && size.Height > 0 {
		mw.prefs.SetInt(prefs.KeyWindowWidth, int(size.Width))
		mw.prefs.SetInt(prefs.KeyWindowHeight, int(size.Height))
	}

	if err := mw.prefs.Save(); err != nil {
		mw.lggr.Warnw("Failed to save preferences", "path", mw.prefs.Path(), "err", err)
	}
}

// Menu action handlers

func (mw *MainWindow) onReload() {
	if err := mw.state.Load(); err != nil {
		mw.lggr.Errorw("Reload failed", "err", err)
		dialog.ShowError(err, mw.Window)
		return
	}
	if mw.watcher != nil {
		mw.watcher.ResetBaseline()
	}
}

func (mw *MainWindow) onOpenMap() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		path := reader.URI().Path()
		if !mapimage.IsSupportedFormat(path) {
			dialog.ShowError(fmt.Errorf("nieobsługiwany format obrazu: %s", filepath.Ext(path)), mw.Window)
			return
		}

		previous := mw.state.Config.MapPath
		mw.state.Config.MapPath = path
		if err := mw.state.Load(); err != nil {
			mw.state.Config.MapPath = previous
			dialog.ShowError(err, mw.Window)
			return
		}
		if mw.watcher != nil {
			mw.watcher.SetPaths(mw.watchedPaths()...)
		}
	}, mw.Window)

	fd.SetFilter(storage.NewExtensionFileFilter(mapimage.SupportedFormats()))
	if dir, err := storage.ListerForURI(storage.NewFileURI(filepath.Dir(mw.state.Config.MapPath))); err == nil {
		fd.SetLocation(dir)
	}
	fd.Show()
}

func (mw *MainWindow) onZoomIn() {
	mw.disableFitToWindow()
	mw.canvas.ZoomIn()
}

func (mw *MainWindow) onZoomOut() {
	mw.disableFitToWindow()
	mw.canvas.ZoomOut()
}

func (mw *MainWindow) onToggleFitToWindow() {
	enabled := !mw.canvas.FitToWindowEnabled()
	mw.canvas.SetFitToWindow(enabled)
	mw.fitToWindowItem.Checked = enabled
}

func (mw *MainWindow) onActualSize() {
	mw.disableFitToWindow()
	mw.canvas.ActualSize()
}

func (mw *MainWindow) disableFitToWindow() {
	if mw.canvas.FitToWindowEnabled() {
		mw.canvas.SetFitToWindow(false)
		mw.fitToWindowItem.Checked = false
	}
}

func (mw *MainWindow) onShowSelected() {
	if row, ok := mw.state.Selected(); ok {
		mw.showOnMap(row)
	}
}

func (mw *MainWindow) showOnMap(row int) {
	mw.state.Select(row)
	mw.tabs.SelectIndex(0)
	mw.disableFitToWindow()
	mw.canvas.ScrollToRow(row)
}

func (mw *MainWindow) onPlotDetails() {
	snap := mw.state.Snapshot()
	row, ok := mw.state.Selected()
	if snap == nil || !ok {
		dialog.ShowInformation("Szczegóły działki", "Najpierw zaznacz działkę na mapie lub w tabeli.", mw.Window)
		return
	}
	d := dialogs.NewPlotDialog(snap.Table, row, mw.Window)
	d.OnShowOnMap(mw.showOnMap)
	d.Show()
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("O programie",
		fmt.Sprintf("%s\n\n"+
			"Interaktywna mapa działek z opisami z rejestru.\n\n"+
			"%s", Title, version.String()),
		mw.Window)
}
