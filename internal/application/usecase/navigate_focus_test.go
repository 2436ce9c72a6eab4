package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
)

// spriteRects is a tools column, a canvas, and a right column split in two.
func spriteRects() []entity.PanelRect {
	return []entity.PanelRect{
		{PanelID: "tools", Rect: entity.Rect{X: 0, Y: 0, W: 200, H: 800}},
		{PanelID: "canvas", Rect: entity.Rect{X: 200, Y: 0, W: 600, H: 800}},
		{PanelID: "layers", Rect: entity.Rect{X: 800, Y: 0, W: 200, H: 400}},
		{PanelID: "palette", Rect: entity.Rect{X: 800, Y: 400, W: 200, H: 400}},
	}
}

func TestNavigateFocus(t *testing.T) {
	tests := []struct {
		name      string
		active    entity.PanelID
		direction usecase.NavigateDirection
		want      entity.PanelID
		found     bool
	}{
		{name: "right of tools", active: "tools", direction: usecase.NavRight, want: "canvas", found: true},
		{name: "right of canvas tie keeps order", active: "canvas", direction: usecase.NavRight, want: "layers", found: true},
		{name: "down within column", active: "layers", direction: usecase.NavDown, want: "palette", found: true},
		{name: "left from palette", active: "palette", direction: usecase.NavLeft, want: "canvas", found: true},
		{name: "nothing left of tools", active: "tools", direction: usecase.NavLeft},
		{name: "nothing above canvas", active: "canvas", direction: usecase.NavUp},
		{name: "up from palette stays in column", active: "palette", direction: usecase.NavUp, want: "layers", found: true},
		{name: "diagonal layers is not below tools", active: "tools", direction: usecase.NavDown},
		{name: "unknown active", active: "nope", direction: usecase.NavRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := usecase.NavigateFocus(testCtx(), tt.active, spriteRects(), tt.direction)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNavigateFocus_SkipsDiagonalPanels(t *testing.T) {
	rects := []entity.PanelRect{
		{PanelID: "a", Rect: entity.Rect{X: 0, Y: 0, W: 100, H: 100}},
		// Diagonal but closer.
		{PanelID: "diag", Rect: entity.Rect{X: 110, Y: 110, W: 50, H: 50}},
		// Same row but farther.
		{PanelID: "row", Rect: entity.Rect{X: 400, Y: 0, W: 100, H: 100}},
	}

	got, found := usecase.NavigateFocus(testCtx(), "a", rects, usecase.NavRight)

	assert.True(t, found)
	assert.Equal(t, entity.PanelID("row"), got)

	// Only the diagonal panel lies below: nothing shares the column.
	got, found = usecase.NavigateFocus(testCtx(), "row", rects, usecase.NavDown)
	assert.False(t, found)
	assert.Empty(t, got)
}
