// Package app holds the application state shared by the windows and the
// events they exchange.
package app

import (
	"fmt"
	"sync"

	"github.com/bsmietanka/interactive-map/internal/config"
	"github.com/bsmietanka/interactive-map/internal/dataset"
	mapimage "github.com/bsmietanka/interactive-map/internal/image"
	"github.com/bsmietanka/interactive-map/internal/logger"
	"github.com/bsmietanka/interactive-map/internal/render"
)

// Tab identifies a main window tab.
type Tab int

const (
	TabMap Tab = iota
	TabTable
)

func (t Tab) String() string {
	switch t {
	case TabMap:
		return "Mapa"
	case TabTable:
		return "Tabela"
	default:
		return "Unknown"
	}
}

// EventType identifies different application events.
type EventType int

const (
	// EventDatasetLoaded carries the *Snapshot that was loaded.
	EventDatasetLoaded EventType = iota
	// EventSelectionChanged carries the selected table row, -1 for none.
	EventSelectionChanged
	// EventHoverChanged carries the hovered table row, -1 for none.
	EventHoverChanged
	// EventTabChanged carries the active Tab.
	EventTabChanged
	// EventOutlinesToggled carries whether region outlines are shown.
	EventOutlinesToggled
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// Snapshot is one load of the input files. It is never modified; a reload
// produces a new Snapshot.
type Snapshot struct {
	Layer   *mapimage.Layer
	Table   *dataset.Table
	Report  *dataset.Report
	Scene   *render.Scene
	Summary []dataset.ColumnSummary
}

// LoadSnapshot reads the map, the annotations and the descriptions named by
// cfg and builds the scene.
func LoadSnapshot(cfg *config.Config, lggr logger.Logger) (*Snapshot, error) {
	layer, err := mapimage.Load(cfg.MapPath)
	if err != nil {
		return nil, err
	}
	table, report, err := dataset.Load(cfg.Paths(), cfg.Schema, lggr.Named("dataset"))
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	scene := render.BuildScene(layer.Image, table, cfg.RenderOptions(), lggr.Named("render"))

	return &Snapshot{
		Layer:   layer,
		Table:   table,
		Report:  report,
		Scene:   scene,
		Summary: dataset.Summarize(table),
	}, nil
}

// State holds the loaded data and the view state shared by the map and the
// table.
type State struct {
	mu sync.RWMutex

	Config *config.Config

	snapshot *Snapshot
	selected int
	hovered  int
	tab      Tab
	outlines bool

	listeners map[EventType][]EventListener
	lggr      logger.Logger
}

// NewState creates an empty application state.
func NewState(cfg *config.Config, lggr logger.Logger) *State {
	return &State{
		Config:    cfg,
		selected:  -1,
		hovered:   -1,
		listeners: make(map[EventType][]EventListener),
		lggr:      lggr,
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Load reads the input files and replaces the current snapshot. The
// selection is cleared. On error the previous snapshot is kept.
func (s *State) Load() error {
	snap, err := LoadSnapshot(s.Config, s.lggr)
	if err != nil {
		return err
	}
	s.SetSnapshot(snap)
	return nil
}

// SetSnapshot installs snap and notifies listeners.
func (s *State) SetSnapshot(snap *Snapshot) {
	s.mu.Lock()
	s.snapshot = snap
	s.selected = -1
	s.hovered = -1
	s.mu.Unlock()

	s.Emit(EventDatasetLoaded, snap)
}

// Snapshot returns the loaded data, or nil before the first load.
func (s *State) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Select selects table row, or clears the selection for -1. Listeners are
// only told about actual changes.
func (s *State) Select(row int) {
	s.mu.Lock()
	if s.snapshot == nil || row < 0 || row >= s.snapshot.Table.Len() {
		row = -1
	}
	changed := row != s.selected
	s.selected = row
	s.mu.Unlock()

	if changed {
		s.Emit(EventSelectionChanged, row)
	}
}

// Selected returns the selected table row.
func (s *State) Selected() (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected, s.selected >= 0
}

// Hover records the table row under the pointer, -1 for none.
func (s *State) Hover(row int) {
	s.mu.Lock()
	changed := row != s.hovered
	s.hovered = row
	s.mu.Unlock()

	if changed {
		s.Emit(EventHoverChanged, row)
	}
}

// Hovered returns the hovered table row.
func (s *State) Hovered() (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hovered, s.hovered >= 0
}

// SetTab records the active tab.
func (s *State) SetTab(tab Tab) {
	s.mu.Lock()
	changed := tab != s.tab
	s.tab = tab
	s.mu.Unlock()

	if changed {
		s.Emit(EventTabChanged, tab)
	}
}

// Tab returns the active tab.
func (s *State) Tab() Tab {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tab
}

// SetOutlines shows or hides region outlines on the map.
func (s *State) SetOutlines(show bool) {
	s.mu.Lock()
	changed := show != s.outlines
	s.outlines = show
	s.mu.Unlock()

	if changed {
		s.Emit(EventOutlinesToggled, show)
	}
}

// Outlines reports whether region outlines are shown.
func (s *State) Outlines() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.outlines
}

// Overlay returns what the map should draw for the current state.
func (s *State) Overlay() render.Overlay {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return render.Overlay{Outlines: s.outlines, Selected: s.selected, Hovered: s.hovered}
}
