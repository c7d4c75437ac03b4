package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/petals-kitchen/menubook/pkg/types"
)

// detailsState holds the selected item by value. It is a snapshot taken at
// selection time; the screen never re-queries the store.
type detailsState struct {
	item types.MenuItem
}

func (m model) updateDetails(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "esc", "b", "q":
		// Single back transition, always to My Menu.
		m.scr = screenMenu
		return m, nil
	}
	return m, nil
}

func (m model) viewDetails() string {
	item := m.details.item

	body := m.theme.Badge.Render(strings.ToUpper(item.Course.String())) + "\n\n" +
		m.theme.Title.Render(item.Name) + "\n\n" +
		m.theme.ItemDesc.Render(item.Description) + "\n\n" +
		m.theme.Label.Render("Price") + "  " + m.theme.Price.Render(m.price(item.Price)) + "\n\n" +
		m.theme.Help.Render("esc/b back to menu")

	return m.theme.Card.Render(body)
}
