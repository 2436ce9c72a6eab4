package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// LayoutKeyMap defines keybindings for the interactive layout shell.
type LayoutKeyMap struct {
	FocusLeft  key.Binding
	FocusRight key.Binding
	FocusUp    key.Binding
	FocusDown  key.Binding
	MoveLeft   key.Binding
	MoveRight  key.Binding
	MoveUp     key.Binding
	MoveDown   key.Binding
	Grow       key.Binding
	Shrink     key.Binding
	Undock     key.Binding
	Dock       key.Binding
	Float      key.Binding
	Close      key.Binding
	Minimize   key.Binding
	Cycle      key.Binding
	Snap       key.Binding
	Reset      key.Binding
	Cancel     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k LayoutKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusLeft, k.Grow, k.Undock, k.Dock, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k LayoutKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FocusLeft, k.FocusRight, k.FocusUp, k.FocusDown},
		{k.MoveLeft, k.MoveRight, k.MoveUp, k.MoveDown},
		{k.Grow, k.Shrink, k.Reset},
		{k.Undock, k.Dock, k.Float, k.Close},
		{k.Cycle, k.Minimize, k.Snap, k.Cancel},
		{k.Help, k.Quit},
	}
}

// DefaultLayoutKeyMap returns the default layout shell keybindings.
func DefaultLayoutKeyMap() LayoutKeyMap {
	return LayoutKeyMap{
		FocusLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "focus left"),
		),
		FocusRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "focus right"),
		),
		FocusUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "focus up"),
		),
		FocusDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "focus down"),
		),
		MoveLeft: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "move window left"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "move window right"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K", "move window up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J"),
			key.WithHelp("J", "move window down"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "grow pane"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "shrink pane"),
		),
		Undock: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undock pane"),
		),
		Dock: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dock window"),
		),
		Float: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open panel"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close"),
		),
		Minimize: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "minimize"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next window"),
		),
		Snap: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "accept snap"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset layout"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel gesture"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
