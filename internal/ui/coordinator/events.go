package coordinator

import (
	"sort"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// EventKind classifies coordinator notifications.
type EventKind string

const (
	// EventLayoutChanged follows every committed structural, size or floating
	// window change.
	EventLayoutChanged EventKind = "layout_changed"
	// EventGestureChanged follows transient drag and resize updates.
	EventGestureChanged EventKind = "gesture_changed"
	// EventPanelContentChanged follows an out-of-band content change of one panel.
	EventPanelContentChanged EventKind = "panel_content_changed"
)

// Event is delivered to subscribers after the state was replaced.
type Event struct {
	Kind  EventKind
	State entity.LayoutState
	// PanelID is set for EventPanelContentChanged.
	PanelID entity.PanelID
}

// Listener receives coordinator events. It runs on the goroutine that caused
// the change and may call back into the coordinator.
type Listener func(Event)

// Subscribe registers listener and returns its unsubscribe function.
func (c *LayoutCoordinator) Subscribe(listener Listener) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return func() {}
	}
	id := c.nextID
	c.nextID++
	c.listeners[id] = listener

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

func (c *LayoutCoordinator) emit(e Event) {
	c.mu.Lock()
	ids := make([]int, 0, len(c.listeners))
	for id := range c.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	listeners := make([]Listener, 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, c.listeners[id])
	}
	c.mu.Unlock()

	for _, l := range listeners {
		l(e)
	}
}

func (c *LayoutCoordinator) onPanelUpdated(panelID entity.PanelID) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	state := c.state
	c.mu.Unlock()

	c.logger.Debug().Str("panel_id", string(panelID)).Msg("panel content changed")
	c.emit(Event{Kind: EventPanelContentChanged, State: state, PanelID: panelID})
}
