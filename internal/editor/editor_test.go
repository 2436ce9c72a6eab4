package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/editor"
)

func TestPresets_DefaultLayoutsAreValid(t *testing.T) {
	seen := make(map[entity.StorageKey]bool)
	for _, p := range editor.All() {
		t.Run(string(p.Kind), func(t *testing.T) {
			root := p.DefaultLayout()
			require.NoError(t, entity.NewLayoutState(root).Validate())

			assert.False(t, seen[p.StorageKey], "storage keys are unique")
			seen[p.StorageKey] = true

			reg := p.NewRegistry()
			for _, id := range entity.PanelIDs(root) {
				assert.True(t, reg.Has(id), "panel %s is in the catalog", id)
			}
		})
	}
}

func TestPresets_DefaultLayoutIsFresh(t *testing.T) {
	p, err := editor.Lookup("video")
	require.NoError(t, err)

	a := p.DefaultLayout()
	a.Sizes[0] = 1

	assert.Equal(t, []float64{68, 32}, p.DefaultLayout().Sizes)
}

func TestVideoDefault(t *testing.T) {
	p, err := editor.Lookup("video")
	require.NoError(t, err)

	root := p.DefaultLayout()
	assert.Equal(t, entity.SplitVertical, root.Direction)
	assert.Equal(t, []entity.PanelID{"preview", "timeline"}, entity.PanelIDs(root))
	assert.Equal(t, entity.StorageKey("video-editor-layout"), p.StorageKey)
}

func TestLookup(t *testing.T) {
	p, err := editor.Lookup(" Sprite ")
	require.NoError(t, err)
	assert.Equal(t, editor.Sprite, p.Kind)

	_, err = editor.Lookup("audio")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sprite, video, image")
}

func TestPanels_ReturnsCopy(t *testing.T) {
	p, err := editor.Lookup("image")
	require.NoError(t, err)

	panels := p.Panels()
	panels[0].Title = "changed"

	assert.NotEqual(t, "changed", p.Panels()[0].Title)
	assert.False(t, p.NewRegistry().IsPanelHeaderVisible("tools"))
}
