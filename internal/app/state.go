// Package app provides the application state, its events and the theme.
package app

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"know-your-pins/internal/history"
	"know-your-pins/internal/pinout"
)

// ErrUnknownCategory is returned when a category key is not one of the legend categories.
var ErrUnknownCategory = errors.New("unknown category")

// State holds the interaction state: current selection, navigation history,
// filter toggles and the category highlight. The catalog itself is read-only.
type State struct {
	mu sync.RWMutex

	// Catalog is the static pin table, shared by every view.
	Catalog *pinout.Catalog

	history *history.History

	// Current view
	selected    string          // Selected pin id, "" when a category or nothing is shown
	highlighted pinout.Category // Category whose pins are highlighted, "" for none

	// Filter toggles from the legend
	filters pinout.CategorySet

	// Event listeners
	listeners map[EventType][]EventListener
}

// EventType identifies different application events.
type EventType int

const (
	EventPinSelected EventType = iota
	EventCategoryShown
	EventHighlightCleared
	EventHistoryChanged
	EventFiltersChanged
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// CategoryView is the payload of EventCategoryShown.
type CategoryView struct {
	Category pinout.Category
	Pins     []pinout.Pin
}

// NavState is the payload of EventHistoryChanged.
type NavState struct {
	CanGoBack    bool
	CanGoForward bool
}

// NewState creates the state for a catalog.
func NewState(catalog *pinout.Catalog) *State {
	return &State{
		Catalog:   catalog,
		history:   history.New(),
		filters:   pinout.NewCategorySet(),
		listeners: make(map[EventType][]EventListener),
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

// SelectPin shows the pin with the given id and records it in history.
// An unknown id leaves the state untouched and is logged.
func (s *State) SelectPin(id string) error {
	pin, err := s.Catalog.Lookup(id)
	if err != nil {
		log.Printf("select pin: %v", err)
		return err
	}

	s.mu.Lock()
	s.history.Select(history.PinEntry(id))
	s.mu.Unlock()

	s.showPin(pin)
	s.emitNav()
	return nil
}

// ShowCategory lists and highlights every pin of a category and records it in history.
func (s *State) ShowCategory(cat pinout.Category) error {
	if !cat.Valid() {
		err := fmt.Errorf("%w: %q", ErrUnknownCategory, cat)
		log.Printf("show category: %v", err)
		return err
	}

	s.mu.Lock()
	s.history.Select(history.CategoryEntry(string(cat)))
	s.mu.Unlock()

	s.showCategory(cat)
	s.emitNav()
	return nil
}

// GoBack returns to the previous view without recording a new history entry.
func (s *State) GoBack() bool {
	s.mu.Lock()
	entry, ok := s.history.Back()
	s.mu.Unlock()
	if !ok {
		return false
	}
	s.display(entry)
	s.emitNav()
	return true
}

// GoForward moves to the next view without recording a new history entry.
func (s *State) GoForward() bool {
	s.mu.Lock()
	entry, ok := s.history.Forward()
	s.mu.Unlock()
	if !ok {
		return false
	}
	s.display(entry)
	s.emitNav()
	return true
}

// CanGoBack reports whether there is a previous view.
func (s *State) CanGoBack() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.CanGoBack()
}

// CanGoForward reports whether there is a next view.
func (s *State) CanGoForward() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.CanGoForward()
}

// Selected returns the id of the selected pin.
func (s *State) Selected() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected, s.selected != ""
}

// Highlighted returns the category whose pins are highlighted.
func (s *State) Highlighted() (pinout.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.highlighted, s.highlighted != ""
}

// ClearHighlights removes the category highlight. The detail panel and the
// selected pin are left as they are.
func (s *State) ClearHighlights() {
	s.mu.Lock()
	had := s.highlighted != ""
	s.highlighted = ""
	s.mu.Unlock()

	if had {
		s.Emit(EventHighlightCleared, nil)
	}
}

// SetFilter turns a legend filter toggle on or off.
func (s *State) SetFilter(cat pinout.Category, on bool) {
	s.mu.Lock()
	if on == s.filters.Has(cat) {
		s.mu.Unlock()
		return
	}
	if on {
		s.filters[cat] = struct{}{}
	} else {
		delete(s.filters, cat)
	}
	s.mu.Unlock()

	s.Emit(EventFiltersChanged, s.VisiblePins())
}

// ClearFilters turns every filter toggle off, showing all pins.
func (s *State) ClearFilters() {
	s.mu.Lock()
	if len(s.filters) == 0 {
		s.mu.Unlock()
		return
	}
	s.filters = pinout.NewCategorySet()
	s.mu.Unlock()

	s.Emit(EventFiltersChanged, s.VisiblePins())
}

// ActiveFilters returns a copy of the active filter toggles.
func (s *State) ActiveFilters() pinout.CategorySet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return pinout.NewCategorySet(s.filters.Sorted()...)
}

// VisiblePins returns the ids of the pins that pass the active filters.
func (s *State) VisiblePins() pinout.PinSet {
	return s.Catalog.VisiblePins(s.ActiveFilters())
}

// display renders a history entry.
func (s *State) display(entry history.Entry) {
	switch entry.Kind {
	case history.KindCategory:
		s.showCategory(pinout.Category(entry.ID))
	default:
		pin, err := s.Catalog.Lookup(entry.ID)
		if err != nil {
			log.Printf("history: %v", err)
			return
		}
		s.showPin(pin)
	}
}

func (s *State) showPin(pin pinout.Pin) {
	s.mu.Lock()
	s.selected = pin.ID
	hadHighlight := s.highlighted != ""
	s.highlighted = ""
	s.mu.Unlock()

	if hadHighlight {
		s.Emit(EventHighlightCleared, nil)
	}
	s.Emit(EventPinSelected, pin)
}

func (s *State) showCategory(cat pinout.Category) {
	s.mu.Lock()
	s.selected = ""
	s.highlighted = cat
	s.mu.Unlock()

	s.Emit(EventCategoryShown, CategoryView{
		Category: cat,
		Pins:     s.Catalog.FilterByCategory(cat),
	})
}

func (s *State) emitNav() {
	s.Emit(EventHistoryChanged, NavState{
		CanGoBack:    s.CanGoBack(),
		CanGoForward: s.CanGoForward(),
	})
}
