package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuChoice is an entry of the session menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuScores
	MenuQuit
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Choice MenuChoice
	Title  string
}

// DefaultMenuItems returns the entries of the session menu.
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{Choice: MenuPlay, Title: "Play"},
		{Choice: MenuScores, Title: "High scores"},
		{Choice: MenuQuit, Title: "Quit"},
	}
}

// MenuModel is the Bubble Tea model for the session menu.
// It does not quit the program itself; the owner reads Selected.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	player    string
	best      int
	keyMapper *KeyMapper
	selected  MenuChoice
}

// NewMenuModel creates a new menu model. best is the player's personal best,
// 0 if unknown.
func NewMenuModel(player string, best, width, height int) MenuModel {
	return MenuModel{
		items:     DefaultMenuItems(),
		width:     width,
		height:    height,
		player:    player,
		best:      best,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.selected = MenuQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			m.selected = m.items[m.cursor].Choice
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff145b"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	top := max((m.height-len(m.items)-8)/2, 0)
	b.WriteString(strings.Repeat("\n", top))
	b.WriteString(centerText(titleStyle.Render("S P E E D   T Y P I N G"), m.width))
	b.WriteString("\n\n")

	greeting := fmt.Sprintf("Hello, %s", m.player)
	if m.best > 0 {
		greeting += fmt.Sprintf("  (best: %d)", m.best)
	}
	b.WriteString(centerText(dim.Render(greeting), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.Title, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dim.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, or MenuNone.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}
