package model

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/editor"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/coordinator"
	"github.com/bnema/dockyard/internal/ui/geometry"
	"github.com/bnema/dockyard/internal/ui/overlay"
)

const (
	// handleSizePx is two cells wide and one cell tall, so a handle covers the
	// cells on both sides of a boundary.
	handleSizePx = 16
	// resizeStepPct is how far grow and shrink move a handle.
	resizeStepPct = 5.0
	// moveStepPx is how far the move keys shift a floating window.
	moveStepPx = 4 * cellWidthPx
)

type gestureMode int

const (
	gestureNone gestureMode = iota
	gestureResize
	gestureDrag
)

// layoutEventMsg carries a coordinator event that happened outside Update.
type layoutEventMsg coordinator.Event

// LayoutModel is the Bubble Tea model of the interactive layout shell. It
// draws one editor's layout and turns keys and mouse gestures into
// coordinator operations.
type LayoutModel struct {
	help     help.Model
	keys     styles.LayoutKeyMap
	showHelp bool

	width    int
	height   int
	geometry *geometry.Geometry

	focused      entity.PanelID
	activeWindow string
	gesture      gestureMode
	status       string

	ctx         context.Context
	coord       *coordinator.LayoutCoordinator
	preset      editor.Preset
	theme       *styles.Theme
	styles      map[cellStyle]lipgloss.Style
	events      chan coordinator.Event
	unsubscribe func()
}

// NewLayoutModel creates the layout shell for the editor preset driven by coord.
func NewLayoutModel(ctx context.Context, coord *coordinator.LayoutCoordinator, preset editor.Preset, theme *styles.Theme) LayoutModel {
	events := make(chan coordinator.Event, 16)
	unsubscribe := coord.Subscribe(func(e coordinator.Event) {
		if e.Kind != coordinator.EventPanelContentChanged {
			return
		}
		select {
		case events <- e:
		default:
			// A redraw is already pending.
		}
	})

	m := LayoutModel{
		help:        styles.NewStyledHelp(theme),
		keys:        styles.DefaultLayoutKeyMap(),
		width:       80,
		height:      24,
		ctx:         ctx,
		coord:       coord,
		preset:      preset,
		theme:       theme,
		styles:      cellStyles(theme),
		events:      events,
		unsubscribe: unsubscribe,
	}
	if coord.LoadedFromDefault() {
		m.status = "default layout"
	} else {
		m.status = "restored layout"
	}
	m.measure()
	return m
}

func cellStyles(t *styles.Theme) map[cellStyle]lipgloss.Style {
	// Boxes are drawn cell by cell, so only the border colors of the pane
	// and window styles apply.
	borderOf := func(st lipgloss.Style) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(st.GetBorderTopForeground())
	}
	return map[cellStyle]lipgloss.Style{
		styleBorder:         borderOf(t.Pane),
		styleFocus:          borderOf(t.PaneFocused),
		styleHeader:         t.PaneHeader,
		styleText:           t.Normal,
		styleFloating:       borderOf(t.Floating),
		styleFloatingActive: borderOf(t.FloatingActive).Bold(true),
		styleDrop:           t.DropHighlight,
		styleGuide:          t.ResizeGuide,
	}
}

// Focused returns the embedded panel that receives keyboard commands.
func (m LayoutModel) Focused() entity.PanelID {
	return m.focused
}

// ActiveWindow returns the floating window that receives keyboard commands.
func (m LayoutModel) ActiveWindow() string {
	return m.activeWindow
}

// Init implements tea.Model.
func (m LayoutModel) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func waitForEvent(events <-chan coordinator.Event) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-events
		if !ok {
			return nil
		}
		return layoutEventMsg(e)
	}
}

// Update implements tea.Model.
func (m LayoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.measure()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		m = m.handleMouseMsg(msg)
		m.measure()
		return m, nil

	case layoutEventMsg:
		m.status = fmt.Sprintf("%s updated", m.coord.Registry().GetPanelTitle(msg.PanelID))
		return m, waitForEvent(m.events)
	}

	return m, nil
}

func (m LayoutModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := m.ctx
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.coord.IsGestureActive() {
			m.coord.CancelGesture(ctx)
		}
		m.unsubscribe()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp

	case key.Matches(msg, m.keys.Cancel):
		if m.coord.IsGestureActive() {
			m.coord.CancelGesture(ctx)
			m.status = "gesture cancelled"
		}
		m.gesture = gestureNone

	case key.Matches(msg, m.keys.FocusLeft):
		m.navigate(usecase.NavLeft)
	case key.Matches(msg, m.keys.FocusRight):
		m.navigate(usecase.NavRight)
	case key.Matches(msg, m.keys.FocusUp):
		m.navigate(usecase.NavUp)
	case key.Matches(msg, m.keys.FocusDown):
		m.navigate(usecase.NavDown)

	case key.Matches(msg, m.keys.MoveLeft):
		m.moveWindow(-moveStepPx, 0)
	case key.Matches(msg, m.keys.MoveRight):
		m.moveWindow(moveStepPx, 0)
	case key.Matches(msg, m.keys.MoveUp):
		m.moveWindow(0, -cellHeightPx)
	case key.Matches(msg, m.keys.MoveDown):
		m.moveWindow(0, cellHeightPx)

	case key.Matches(msg, m.keys.Grow):
		m.resizeFocused(resizeStepPct)
	case key.Matches(msg, m.keys.Shrink):
		m.resizeFocused(-resizeStepPct)

	case key.Matches(msg, m.keys.Undock):
		m.undockFocused()
	case key.Matches(msg, m.keys.Dock):
		m.dockActive()
	case key.Matches(msg, m.keys.Float):
		m.openNextPanel()
	case key.Matches(msg, m.keys.Close):
		m.closeTarget()

	case key.Matches(msg, m.keys.Minimize):
		if m.activeWindow != "" {
			m.coord.ToggleMinimize(ctx, m.activeWindow)
		}
	case key.Matches(msg, m.keys.Cycle):
		m.cycleWindows()
	case key.Matches(msg, m.keys.Snap):
		if m.activeWindow != "" {
			m.coord.AcceptSnap(ctx, m.activeWindow)
		}

	case key.Matches(msg, m.keys.Reset):
		m.coord.ResetLayout(ctx)
		m.activeWindow = ""
		m.gesture = gestureNone
		m.status = "layout reset"
	}

	m.measure()
	return m, nil
}

// measure lays the current tree out in the body area and hands the result to
// the coordinator for undock placement, drop targets and snapping.
func (m *LayoutModel) measure() {
	state := m.coord.GetLayoutState()
	viewport := entity.Rect{
		W: float64(max(m.width, 1)) * cellWidthPx,
		H: float64(max(m.bodyHeight(), 1)) * cellHeightPx,
	}
	m.geometry = geometry.Measure(state.Root, viewport, geometry.Options{HandleSize: handleSizePx})
	m.coord.SetGeometry(m.geometry)

	if !state.IsEmbedded(m.focused) {
		m.focused = ""
		if rects := m.geometry.PanelRects(); len(rects) > 0 {
			m.focused = rects[0].PanelID
		}
	}
	if m.activeWindow != "" && state.FindWindow(m.activeWindow) < 0 {
		m.activeWindow = ""
	}
}

func (m LayoutModel) bodyHeight() int {
	return m.height - lipgloss.Height(m.footer())
}

func (m *LayoutModel) navigate(dir usecase.NavigateDirection) {
	m.activeWindow = ""
	if next, ok := usecase.NavigateFocus(m.ctx, m.focused, m.geometry.PanelRects(), dir); ok {
		m.focused = next
	}
}

func (m *LayoutModel) resizeFocused(deltaPct float64) {
	state := m.coord.GetLayoutState()
	node := entity.FindPanel(state.Root, m.focused)
	if node == nil {
		return
	}
	parent, idx := entity.FindParent(state.Root, node.ID)
	if parent == nil {
		m.status = "nothing to resize"
		return
	}
	size, ok := m.geometry.ContainerSize(parent.ID)
	if !ok {
		return
	}

	// The last child grows by pulling the handle before it backwards.
	handle, delta := idx, size*deltaPct/100
	if idx == len(parent.Children)-1 {
		handle, delta = idx-1, -delta
	}
	if !m.coord.StartResize(m.ctx, parent.ID, handle, 0) {
		m.status = "resize not available"
		return
	}
	m.coord.UpdateResize(m.ctx, delta)
	m.coord.EndResize(m.ctx)
}

func (m *LayoutModel) moveWindow(dx, dy float64) {
	state := m.coord.GetLayoutState()
	idx := state.FindWindow(m.activeWindow)
	if idx < 0 {
		return
	}
	w := state.FloatingWindows[idx]
	if w.IsMinimized {
		bar := w.Rect(m.coord.TitleBarHeight())
		m.coord.SetMinimizedPosition(m.ctx, w.ID, entity.Point{X: bar.X + dx, Y: bar.Y + dy})
		return
	}
	m.coord.MoveFloatingWindow(m.ctx, w.ID, entity.Point{X: w.Position.X + dx, Y: w.Position.Y + dy})
}

func (m *LayoutModel) undockFocused() {
	if m.focused == "" {
		return
	}
	panelID := m.focused
	m.coord.UndockPanel(m.ctx, string(panelID))

	state := m.coord.GetLayoutState()
	if idx := state.FindWindowByPanel(panelID); idx >= 0 {
		m.activeWindow = state.FloatingWindows[idx].ID
		m.status = fmt.Sprintf("%s undocked", m.title(panelID))
	}
}

func (m *LayoutModel) dockActive() {
	if m.activeWindow == "" || m.focused == "" {
		m.status = "select a window with tab first"
		return
	}
	state := m.coord.GetLayoutState()
	idx := state.FindWindow(m.activeWindow)
	if idx < 0 {
		return
	}
	panelID := state.FloatingWindows[idx].PanelID
	m.coord.DockWindow(m.ctx, m.activeWindow, m.focused, entity.DropRight)
	if m.coord.GetLayoutState().IsEmbedded(panelID) {
		m.activeWindow = ""
		m.focused = panelID
		m.status = fmt.Sprintf("%s docked", m.title(panelID))
	}
}

// openNextPanel floats the first catalog panel the layout does not show yet.
func (m *LayoutModel) openNextPanel() {
	state := m.coord.GetLayoutState()
	for _, p := range m.preset.Panels() {
		if state.HasPanel(p.ID) {
			continue
		}
		m.coord.OpenFloatingWindow(m.ctx, p.ID, nil)
		if idx := m.coord.GetLayoutState().FindWindowByPanel(p.ID); idx >= 0 {
			m.activeWindow = m.coord.GetLayoutState().FloatingWindows[idx].ID
			m.status = fmt.Sprintf("%s opened", p.Title)
		}
		return
	}
	m.status = "every panel is open"
}

func (m *LayoutModel) closeTarget() {
	if m.activeWindow != "" {
		m.coord.CloseFloatingWindow(m.ctx, m.activeWindow)
		m.activeWindow = ""
		return
	}
	if m.focused != "" {
		m.coord.RemovePanel(m.ctx, string(m.focused))
	}
}

// cycleWindows walks the floating windows in stacking order and then back to
// the embedded panels.
func (m *LayoutModel) cycleWindows() {
	windows := m.coord.GetLayoutState().FloatingWindows
	if len(windows) == 0 {
		m.activeWindow = ""
		return
	}
	next := 0
	if m.activeWindow != "" {
		for i, w := range windows {
			if w.ID == m.activeWindow {
				next = i + 1
				break
			}
		}
	}
	if next >= len(windows) {
		m.activeWindow = ""
		return
	}
	m.activeWindow = windows[next].ID
	m.coord.FocusWindow(m.ctx, m.activeWindow)
}

func (m LayoutModel) handleMouseMsg(msg tea.MouseMsg) LayoutModel {
	p := cellCenter(msg.X, msg.Y)
	ctx := m.ctx

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		m.press(msg.X, msg.Y, p)

	case tea.MouseActionMotion:
		switch m.gesture {
		case gestureDrag:
			m.coord.UpdateDrag(ctx, p)
		case gestureResize:
			if rs := m.coord.GetLayoutState().ResizeState; rs != nil {
				m.coord.UpdateResize(ctx, axisPosition(rs.Direction, p))
			}
		}

	case tea.MouseActionRelease:
		switch m.gesture {
		case gestureDrag:
			state := m.coord.GetLayoutState()
			var panelID entity.PanelID
			if idx := state.FindWindow(m.activeWindow); idx >= 0 {
				panelID = state.FloatingWindows[idx].PanelID
			}
			outcome := m.coord.EndDrag(ctx)
			if outcome == usecase.DragOutcomeDocked {
				m.activeWindow = ""
				m.focused = panelID
			}
			m.status = fmt.Sprintf("drag %s", outcome)
		case gestureResize:
			m.coord.EndResize(ctx)
		}
		m.gesture = gestureNone
	}
	return m
}

func (m *LayoutModel) press(x, y int, p entity.Point) {
	ctx := m.ctx
	log := logging.FromContext(ctx)
	state := m.coord.GetLayoutState()

	if w, titleBar, ok := m.windowAt(state, x, y); ok {
		m.activeWindow = w.ID
		m.coord.FocusWindow(ctx, w.ID)
		if titleBar && m.coord.StartDrag(ctx, w.ID, p) {
			m.gesture = gestureDrag
			log.Debug().Str("window_id", w.ID).Msg("title bar drag started")
		}
		return
	}

	if h, ok := m.geometry.HandleAt(p); ok {
		if m.coord.StartResize(ctx, h.SplitID, h.HandleIndex, axisPosition(h.Direction, p)) {
			m.gesture = gestureResize
		}
		return
	}

	if pr, ok := m.geometry.PanelAt(p); ok {
		m.focused = pr.PanelID
		m.activeWindow = ""
	}
}

// windowAt returns the topmost floating window under cell (x, y) and whether
// the cell is on its title bar.
func (m LayoutModel) windowAt(state entity.LayoutState, x, y int) (entity.FloatingWindow, bool, bool) {
	windows := byZIndex(state.FloatingWindows)
	for i := len(windows) - 1; i >= 0; i-- {
		w := windows[i]
		r := m.windowCells(w)
		if r.contains(x, y) {
			return w, y == r.Y, true
		}
	}
	return entity.FloatingWindow{}, false, false
}

func (m LayoutModel) windowCells(w entity.FloatingWindow) cellRect {
	r := toCells(w.Rect(m.coord.TitleBarHeight()))
	if w.IsMinimized {
		r.H = 1
	}
	return r
}

func axisPosition(dir entity.SplitDirection, p entity.Point) float64 {
	if dir == entity.SplitHorizontal {
		return p.X
	}
	return p.Y
}

func byZIndex(windows []entity.FloatingWindow) []entity.FloatingWindow {
	sorted := append([]entity.FloatingWindow(nil), windows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ZIndex < sorted[j].ZIndex
	})
	return sorted
}

func (m LayoutModel) title(panelID entity.PanelID) string {
	return m.coord.Registry().GetPanelTitle(panelID)
}

// View implements tea.Model.
func (m LayoutModel) View() string {
	state := m.coord.GetLayoutState()
	c := newCanvas(m.width, m.bodyHeight())

	for _, pr := range m.geometry.PanelRects() {
		m.drawPanel(c, pr)
	}

	rects := m.geometry.PanelRects()
	if r, ok := overlay.DropHighlight(state.IsDragging, state.DropTarget, rects); ok {
		c.restyle(toCells(r), styleDrop)
	}
	if h, ok := overlay.ResizeGuide(state.ResizeState, m.geometry.Handles()); ok {
		m.drawGuide(c, h)
	}

	for _, w := range byZIndex(state.FloatingWindows) {
		m.drawWindow(c, w)
	}

	return c.render(m.styles) + "\n" + m.footer()
}

func (m LayoutModel) drawPanel(c *canvas, pr entity.PanelRect) {
	reg := m.coord.Registry()
	r := toCells(pr.Rect)
	border, st := lipgloss.NormalBorder(), styleBorder
	if pr.PanelID == m.focused && m.activeWindow == "" {
		border, st = lipgloss.ThickBorder(), styleFocus
	}
	c.box(r, border, st)
	if reg.IsPanelHeaderVisible(pr.PanelID) {
		c.text(r.X+2, r.Y, " "+reg.GetPanelTitle(pr.PanelID)+" ", r.W-4, styleHeader)
	}
	m.drawContent(c, pr.PanelID, cellRect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2})
}

func (m LayoutModel) drawWindow(c *canvas, w entity.FloatingWindow) {
	r := m.windowCells(w)
	st := styleFloating
	if w.ID == m.activeWindow {
		st = styleFloatingActive
	}
	title := " " + m.title(w.PanelID) + " "

	if w.IsMinimized {
		c.fill(r, '─', st)
		c.text(r.X+1, r.Y, title, r.W-2, st)
		return
	}

	c.fill(r, ' ', styleNone)
	c.box(r, lipgloss.RoundedBorder(), st)
	c.text(r.X+2, r.Y, title, r.W-4, st)
	m.drawContent(c, w.PanelID, cellRect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2})
}

func (m LayoutModel) drawContent(c *canvas, panelID entity.PanelID, inner cellRect) {
	if inner.W <= 0 || inner.H <= 0 {
		return
	}
	content := m.coord.Registry().GetPanelContent(panelID)
	if content == nil {
		return
	}
	lines := strings.Split(content.Render(inner.W, inner.H), "\n")
	for i := 0; i < len(lines) && i < inner.H; i++ {
		c.text(inner.X, inner.Y+i, lines[i], inner.W, styleText)
	}
}

func (m LayoutModel) drawGuide(c *canvas, h entity.HandleRect) {
	r := toCells(h.Rect)
	if h.Direction == entity.SplitHorizontal {
		x := r.X + r.W/2
		for y := r.Y; y < r.Y+r.H; y++ {
			c.set(x, y, '┃', styleGuide)
		}
		return
	}
	y := r.Y + r.H/2
	for x := r.X; x < r.X+r.W; x++ {
		c.set(x, y, '━', styleGuide)
	}
}

func (m LayoutModel) footer() string {
	state := m.coord.GetLayoutState()

	parts := []string{m.theme.Badge.Render(m.preset.Title)}
	target := string(m.focused)
	if m.focused != "" {
		target = m.title(m.focused)
	}
	if idx := state.FindWindow(m.activeWindow); idx >= 0 {
		w := state.FloatingWindows[idx]
		target = m.title(w.PanelID) + " (floating)"
		if !w.SnapInfo.Empty() {
			target += " · snap available"
		}
	}
	if target != "" {
		parts = append(parts, target)
	}
	switch {
	case state.IsDragging:
		parts = append(parts, "dragging")
	case state.ResizeState != nil:
		parts = append(parts, "resizing")
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}

	status := m.theme.StatusBar.Width(max(m.width, 1)).MaxHeight(1).Render(strings.Join(parts, "  "))
	return status + "\n" + m.help.View(m.keys)
}
