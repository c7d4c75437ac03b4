// Package tui implements the interactive menu builder: three tab
// destinations (Home, Create, My Menu) over one injected session store, plus
// an item details screen reachable only from My Menu. All store calls happen
// inline in Update; one key event runs to completion before the next.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screen int

const (
	screenHome screen = iota
	screenCreate
	screenMenu
	screenDetails
)

// tabs are the three peer destinations, in bar order. Details is not a tab;
// it is reachable only from My Menu.
var tabs = []struct {
	scr   screen
	icon  string
	label string
}{
	{screenHome, "⌂", "Home"},
	{screenCreate, "✚", "Create"},
	{screenMenu, "☰", "My Menu"},
}

type model struct {
	theme Theme
	deps  Deps

	scr   screen
	width int

	home    homeState
	form    formState
	menu    menuState
	details detailsState

	// total mirrors the store's TotalCount, refreshed after every add.
	total int
}

// Run starts the TUI and blocks until the user quits.
func Run(deps Deps) error {
	p := tea.NewProgram(wrapSafe(newModel(deps), deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	m := model{
		theme: DefaultTheme(),
		deps:  deps,
		scr:   screenHome,
		home:  newHomeState(deps.Catalog),
		form:  newFormState(deps.Config.FormCourse()),
	}
	m.refreshTotal()
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "tab", "shift+tab":
			if m.scr == screenDetails {
				break
			}
			return m.switchTab(msg.String() == "tab"), nil
		}
	}

	switch m.scr {
	case screenHome:
		return m.updateHome(msg)
	case screenCreate:
		return m.updateForm(msg)
	case screenMenu:
		return m.updateMenu(msg)
	case screenDetails:
		return m.updateDetails(msg)
	}
	return m, nil
}

// switchTab cycles through the three tab destinations. Entering My Menu
// re-reads the store so the grouped list is current.
func (m model) switchTab(forward bool) model {
	step := 1
	if !forward {
		step = len(tabs) - 1
	}
	for i, t := range tabs {
		if t.scr == m.scr {
			m.scr = tabs[(i+step)%len(tabs)].scr
			break
		}
	}
	if m.scr == screenMenu {
		m.refreshMenu()
	}
	return m
}

// refreshTotal re-reads the dish count shown in the header.
func (m *model) refreshTotal() {
	total, err := m.deps.Store.TotalCount()
	if err != nil {
		m.logError("store.total_count", err)
		return
	}
	m.total = total
}

func (m *model) logError(op string, err error) {
	if m.deps.Logger != nil {
		m.deps.Logger.Error(op, "error", err)
	}
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	header := m.theme.Title.Render("🍓 Pink & White Cuisine") + "  " +
		m.theme.Subtitle.Render(fmt.Sprintf("Dishes: %d", m.total))

	var body string
	switch m.scr {
	case screenHome:
		body = m.viewHome()
	case screenCreate:
		body = m.viewForm()
	case screenMenu:
		body = m.viewMenu()
	case screenDetails:
		body = m.viewDetails()
	}

	return wrap.Render(header + "\n" + m.viewTabBar() + "\n\n" + body)
}

func (m model) viewTabBar() string {
	if m.scr == screenDetails {
		return m.theme.Subtitle.Render("ItemDetails")
	}

	parts := make([]string, len(tabs))
	for i, t := range tabs {
		label := t.icon + " " + t.label
		if t.scr == m.scr {
			parts[i] = m.theme.TabActive.Render(label)
		} else {
			parts[i] = m.theme.TabInactive.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts[0], "   ", parts[1], "   ", parts[2])
}
