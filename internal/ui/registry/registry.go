// Package registry provides the panel content registry each editor hands to
// its layout engine.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
)

// Panel describes one registered panel.
type Panel struct {
	ID          entity.PanelID
	Title       string
	HideHeader  bool
	DefaultSize entity.Size
	Content     port.RenderableContent
}

// Registry is an explicit panel registry. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	panels    map[entity.PanelID]Panel
	listeners map[int]port.PanelUpdateListener
	nextID    int
}

// New creates a registry holding panels.
func New(panels ...Panel) *Registry {
	r := &Registry{
		panels:    make(map[entity.PanelID]Panel, len(panels)),
		listeners: make(map[int]port.PanelUpdateListener),
	}
	for _, p := range panels {
		r.panels[p.ID] = p
	}
	return r
}

// Register adds or replaces a panel and notifies subscribers.
func (r *Registry) Register(p Panel) {
	r.mu.Lock()
	r.panels[p.ID] = p
	r.mu.Unlock()

	r.Notify(p.ID)
}

// Clear removes every panel and listener.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.panels = make(map[entity.PanelID]Panel)
	r.listeners = make(map[int]port.PanelUpdateListener)
}

// SetContent replaces the content of a registered panel and notifies
// subscribers. Unknown panels are ignored.
func (r *Registry) SetContent(panelID entity.PanelID, content port.RenderableContent) {
	r.mu.Lock()
	p, ok := r.panels[panelID]
	if ok {
		p.Content = content
		r.panels[panelID] = p
	}
	r.mu.Unlock()

	if ok {
		r.Notify(panelID)
	}
}

// IDs returns the registered panel ids in sorted order.
func (r *Registry) IDs() []entity.PanelID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]entity.PanelID, 0, len(r.panels))
	for id := range r.panels {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Has reports whether panelID is registered.
func (r *Registry) Has(panelID entity.PanelID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.panels[panelID]
	return ok
}

// GetPanelContent returns the panel content, or a placeholder for unknown ids.
func (r *Registry) GetPanelContent(panelID entity.PanelID) port.RenderableContent {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.panels[panelID]
	if !ok || p.Content == nil {
		return Text(placeholder(panelID))
	}
	return p.Content
}

// GetPanelTitle returns the panel title. Unknown ids get the placeholder text.
func (r *Registry) GetPanelTitle(panelID entity.PanelID) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.panels[panelID]
	if !ok {
		return placeholder(panelID)
	}
	if p.Title == "" {
		return string(panelID)
	}
	return p.Title
}

// IsPanelHeaderVisible reports whether the panel shows a header. Unknown
// panels show one so the placeholder is identifiable.
func (r *Registry) IsPanelHeaderVisible(panelID entity.PanelID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.panels[panelID]
	return !ok || !p.HideHeader
}

// GetPanelDefaultSize returns the preferred floating size, zero when unknown.
func (r *Registry) GetPanelDefaultSize(panelID entity.PanelID) entity.Size {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.panels[panelID].DefaultSize
}

// SubscribeToPanelUpdates registers listener for content changes.
func (r *Registry) SubscribeToPanelUpdates(listener port.PanelUpdateListener) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.listeners[id] = listener

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.listeners, id)
			r.mu.Unlock()
		})
	}
}

// Notify tells subscribers that panelID's content changed.
// Listeners run outside the lock so they may call back into the registry.
func (r *Registry) Notify(panelID entity.PanelID) {
	r.mu.RLock()
	ids := make([]int, 0, len(r.listeners))
	for id := range r.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	listeners := make([]port.PanelUpdateListener, 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, r.listeners[id])
	}
	r.mu.RUnlock()

	for _, l := range listeners {
		l(panelID)
	}
}

func placeholder(panelID entity.PanelID) string {
	return fmt.Sprintf("Unknown panel: %s", panelID)
}

// Text is static panel content.
type Text string

// Render wraps the text to width and cuts it at height lines.
func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Width(width).
		MaxWidth(width).
		MaxHeight(height).
		Render(string(t))
}
