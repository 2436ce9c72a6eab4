package model

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// One terminal cell stands for this many layout pixels.
const (
	cellWidthPx  = 8.0
	cellHeightPx = 16.0
)

type cellStyle uint8

const (
	styleNone cellStyle = iota
	styleBorder
	styleFocus
	styleHeader
	styleText
	styleFloating
	styleFloatingActive
	styleDrop
	styleGuide
)

// cellRect is a rectangle in terminal cells.
type cellRect struct {
	X, Y, W, H int
}

func (r cellRect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// toCells maps a pixel rectangle onto the cell grid. Edges are rounded
// independently so neighbouring rectangles keep sharing their boundary.
func toCells(r entity.Rect) cellRect {
	x0 := int(math.Round(r.X / cellWidthPx))
	y0 := int(math.Round(r.Y / cellHeightPx))
	x1 := int(math.Round(r.Right() / cellWidthPx))
	y1 := int(math.Round(r.Bottom() / cellHeightPx))
	return cellRect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// cellCenter returns the pixel point at the center of cell (x, y).
func cellCenter(x, y int) entity.Point {
	return entity.Point{
		X: float64(x)*cellWidthPx + cellWidthPx/2,
		Y: float64(y)*cellHeightPx + cellHeightPx/2,
	}
}

// canvas is a grid of runes with one style per cell, composited back to
// front and rendered row by row.
type canvas struct {
	w, h   int
	runes  [][]rune
	styles [][]cellStyle
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: max(w, 0), h: max(h, 0)}
	c.runes = make([][]rune, c.h)
	c.styles = make([][]cellStyle, c.h)
	for y := range c.runes {
		c.runes[y] = []rune(strings.Repeat(" ", c.w))
		c.styles[y] = make([]cellStyle, c.w)
	}
	return c
}

func (c *canvas) set(x, y int, r rune, s cellStyle) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.runes[y][x] = r
	c.styles[y][x] = s
}

func (c *canvas) text(x, y int, s string, maxW int, st cellStyle) {
	i := 0
	for _, r := range s {
		if i >= maxW {
			return
		}
		c.set(x+i, y, r, st)
		i++
	}
}

func (c *canvas) fill(r cellRect, ru rune, st cellStyle) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			c.set(x, y, ru, st)
		}
	}
}

func (c *canvas) restyle(r cellRect, st cellStyle) {
	for y := max(r.Y, 0); y < min(r.Y+r.H, c.h); y++ {
		for x := max(r.X, 0); x < min(r.X+r.W, c.w); x++ {
			c.styles[y][x] = st
		}
	}
}

func (c *canvas) box(r cellRect, b lipgloss.Border, st cellStyle) {
	if r.W < 2 || r.H < 2 {
		c.fill(r, '▪', st)
		return
	}
	right, bottom := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < right; x++ {
		c.set(x, r.Y, firstRune(b.Top), st)
		c.set(x, bottom, firstRune(b.Bottom), st)
	}
	for y := r.Y + 1; y < bottom; y++ {
		c.set(r.X, y, firstRune(b.Left), st)
		c.set(right, y, firstRune(b.Right), st)
	}
	c.set(r.X, r.Y, firstRune(b.TopLeft), st)
	c.set(right, r.Y, firstRune(b.TopRight), st)
	c.set(r.X, bottom, firstRune(b.BottomLeft), st)
	c.set(right, bottom, firstRune(b.BottomRight), st)
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

// render joins runs of equally styled cells and renders each run once.
func (c *canvas) render(styles map[cellStyle]lipgloss.Style) string {
	lines := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		var sb strings.Builder
		start := 0
		for x := 1; x <= c.w; x++ {
			if x < c.w && c.styles[y][x] == c.styles[y][start] {
				continue
			}
			run := string(c.runes[y][start:x])
			if st, ok := styles[c.styles[y][start]]; ok {
				run = st.Render(run)
			}
			sb.WriteString(run)
			start = x
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
