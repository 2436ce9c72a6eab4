// Package editor holds the three editor presets that share the layout engine.
// A preset only differs in its storage key, default layout and panel catalog.
package editor

import (
	"fmt"
	"strings"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/ui/registry"
)

// Kind names an editor.
type Kind string

const (
	Sprite Kind = "sprite"
	Video  Kind = "video"
	Image  Kind = "image"
)

// Preset configures one editor instance of the layout engine.
type Preset struct {
	Kind       Kind
	Title      string
	StorageKey entity.StorageKey
	// DefaultFloatingSize is used for panels without their own default size.
	DefaultFloatingSize entity.Size

	defaultLayout func() *entity.LayoutNode
	panels        []registry.Panel
}

// DefaultLayout returns a fresh copy of the preset's default tree.
func (p Preset) DefaultLayout() *entity.LayoutNode {
	return p.defaultLayout()
}

// Panels returns the panel catalog.
func (p Preset) Panels() []registry.Panel {
	out := make([]registry.Panel, len(p.panels))
	copy(out, p.panels)
	return out
}

// NewRegistry builds a registry holding the preset's panel catalog.
func (p Preset) NewRegistry() *registry.Registry {
	return registry.New(p.panels...)
}

// All returns every preset in a stable order.
func All() []Preset {
	return []Preset{spritePreset(), videoPreset(), imagePreset()}
}

// Kinds returns the editor names accepted by Lookup.
func Kinds() []string {
	all := All()
	out := make([]string, len(all))
	for i, p := range all {
		out[i] = string(p.Kind)
	}
	return out
}

// Lookup finds a preset by name, case-insensitively.
func Lookup(name string) (Preset, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(name)))
	for _, p := range All() {
		if p.Kind == kind {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown editor %q (want one of %s)", name, strings.Join(Kinds(), ", "))
}

// panel is a shorthand for a panel node carrying a minimum size.
func panel(id entity.PanelID, minSize float64) *entity.LayoutNode {
	n := entity.NewPanelNode("n-"+string(id), id)
	n.MinSize = minSize
	return n
}
