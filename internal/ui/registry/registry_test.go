package registry_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/ui/registry"
)

var (
	_ port.PanelRegistry     = (*registry.Registry)(nil)
	_ port.PanelUpdateSource = (*registry.Registry)(nil)
)

func newVideoRegistry() *registry.Registry {
	return registry.New(
		registry.Panel{ID: "preview", Title: "Preview", HideHeader: true, Content: registry.Text("frame 1/240")},
		registry.Panel{ID: "timeline", Title: "Timeline", DefaultSize: entity.Size{Width: 640, Height: 200}},
	)
}

func TestRegistry_KnownPanels(t *testing.T) {
	r := newVideoRegistry()

	assert.Equal(t, "Preview", r.GetPanelTitle("preview"))
	assert.False(t, r.IsPanelHeaderVisible("preview"))
	assert.True(t, r.IsPanelHeaderVisible("timeline"))
	assert.Equal(t, entity.Size{Width: 640, Height: 200}, r.GetPanelDefaultSize("timeline"))
	assert.Equal(t, entity.Size{}, r.GetPanelDefaultSize("preview"))
	assert.Contains(t, r.GetPanelContent("preview").Render(20, 1), "frame 1/240")
	assert.Equal(t, []entity.PanelID{"preview", "timeline"}, r.IDs())
	assert.True(t, r.Has("timeline"))
}

func TestRegistry_UnknownPanelPlaceholder(t *testing.T) {
	r := newVideoRegistry()

	assert.Equal(t, "Unknown panel: ghost", r.GetPanelTitle("ghost"))
	assert.True(t, r.IsPanelHeaderVisible("ghost"))
	assert.Equal(t, entity.Size{}, r.GetPanelDefaultSize("ghost"))
	assert.Contains(t, r.GetPanelContent("ghost").Render(40, 2), "Unknown panel: ghost")

	// Registered panels without content get the placeholder too.
	assert.Contains(t, r.GetPanelContent("timeline").Render(40, 2), "Unknown panel: timeline")
}

func TestRegistry_SubscribeAndNotify(t *testing.T) {
	r := newVideoRegistry()

	var got []entity.PanelID
	unsubscribe := r.SubscribeToPanelUpdates(func(id entity.PanelID) { got = append(got, id) })

	r.SetContent("preview", registry.Text("frame 2/240"))
	r.SetContent("ghost", registry.Text("ignored"))
	r.Register(registry.Panel{ID: "effects", Title: "Effects"})

	assert.Equal(t, []entity.PanelID{"preview", "effects"}, got)
	assert.Contains(t, r.GetPanelContent("preview").Render(20, 1), "frame 2/240")

	unsubscribe()
	unsubscribe()
	r.Notify("preview")
	assert.Len(t, got, 2)
}

func TestRegistry_ListenerMayReenter(t *testing.T) {
	r := newVideoRegistry()

	var title string
	r.SubscribeToPanelUpdates(func(id entity.PanelID) { title = r.GetPanelTitle(id) })
	r.Notify("timeline")

	assert.Equal(t, "Timeline", title)
}

func TestRegistry_Clear(t *testing.T) {
	r := newVideoRegistry()
	calls := 0
	r.SubscribeToPanelUpdates(func(entity.PanelID) { calls++ })

	r.Clear()
	r.Notify("preview")

	assert.Empty(t, r.IDs())
	assert.Zero(t, calls)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := newVideoRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unsub := r.SubscribeToPanelUpdates(func(entity.PanelID) {})
			r.SetContent("preview", registry.Text("x"))
			_ = r.GetPanelTitle("preview")
			unsub()
		}()
	}
	wg.Wait()
}

func TestText_Render(t *testing.T) {
	text := registry.Text("one two three four five six")

	out := text.Render(9, 2)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	for _, l := range lines {
		assert.LessOrEqual(t, len(l), 9)
	}
	assert.Empty(t, text.Render(0, 3))
}
