package port

import "github.com/bnema/dockyard/internal/domain/entity"

// RenderableContent is what a panel displays. The engine never inspects it;
// UI layers render it into the rectangle the layout assigns to the panel.
type RenderableContent interface {
	// Render draws the content into a width x height text surface.
	Render(width, height int) string
}

// PanelUpdateListener is notified when a panel's content changed out of band.
type PanelUpdateListener func(panelID entity.PanelID)

// PanelRegistry resolves opaque panel ids to content and presentation hints.
// Unknown ids must resolve to placeholder content rather than fail.
type PanelRegistry interface {
	// GetPanelContent returns the content shown for panelID.
	GetPanelContent(panelID entity.PanelID) RenderableContent
	// GetPanelTitle returns the title shown in the panel header.
	GetPanelTitle(panelID entity.PanelID) string
	// IsPanelHeaderVisible reports whether the panel shows a header.
	IsPanelHeaderVisible(panelID entity.PanelID) bool
	// GetPanelDefaultSize returns the size used when the panel floats.
	GetPanelDefaultSize(panelID entity.PanelID) entity.Size
}

// PanelUpdateSource is optionally implemented by registries that can notify
// about content changes. Subscribe returns the unsubscribe function.
type PanelUpdateSource interface {
	SubscribeToPanelUpdates(listener PanelUpdateListener) (unsubscribe func())
}
