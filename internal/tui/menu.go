package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/petals-kitchen/menubook/pkg/types"
)

// courseGroup is one section of the grouped list: a course plus its items in
// insertion order.
type courseGroup struct {
	course types.Course
	items  []*types.MenuItem
}

// menuState is the grouped list viewer. groups holds one section per course
// with items; flat is the same items in display order for cursor movement.
type menuState struct {
	groups []courseGroup
	flat   []*types.MenuItem
	cursor int
}

// refreshMenu re-reads the store into the grouped view. Called when the
// My Menu tab is entered, so the list always reflects the current session.
func (m *model) refreshMenu() {
	m.refreshTotal()

	var groups []courseGroup
	var flat []*types.MenuItem
	for _, course := range types.Courses() {
		items, err := m.deps.Store.ItemsByCourse(course)
		if err != nil {
			m.logError("store.items_by_course", err)
			return
		}
		if len(items) == 0 {
			continue
		}
		groups = append(groups, courseGroup{course: course, items: items})
		flat = append(flat, items...)
	}

	m.menu.groups = groups
	m.menu.flat = flat
	if m.menu.cursor >= len(flat) {
		m.menu.cursor = 0
	}
}

func (m model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		if m.menu.cursor > 0 {
			m.menu.cursor--
		}

	case "down", "j":
		if m.menu.cursor < len(m.menu.flat)-1 {
			m.menu.cursor++
		}

	case "enter":
		if m.menu.cursor >= len(m.menu.flat) {
			break
		}
		// Details carries the item by value: a snapshot, never re-queried.
		m.details = detailsState{item: *m.menu.flat[m.menu.cursor]}
		m.scr = screenDetails
	}

	return m, nil
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Your Selected Dishes 🍓") + "  " +
		m.theme.Subtitle.Render(fmt.Sprintf("%d total", m.total)) + "\n\n")

	if m.total == 0 {
		b.WriteString(m.theme.Label.Render("No dishes yet") + "\n")
		b.WriteString(m.theme.ItemDesc.Render("Start by adding some dishes from the Home screen.") + "\n")
		b.WriteString("\n" + m.theme.Help.Render("tab next screen • q quit"))
		return m.theme.Card.Render(b.String())
	}

	row := 0
	for _, group := range m.menu.groups {
		b.WriteString(m.theme.CourseHeader.Render(group.course.String()) + "  " +
			m.theme.CountBadge.Render(fmt.Sprintf("%d items", len(group.items))) + "\n")

		for _, item := range group.items {
			cursor := "  "
			if row == m.menu.cursor {
				cursor = m.theme.Cursor.Render("> ")
			}
			b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor,
				m.theme.ItemName.Render(item.Name),
				m.theme.Price.Render(m.price(item.Price))))
			b.WriteString("    " + m.theme.ItemDesc.Render(clampString(item.Description, 60)) + "\n")
			row++
		}
		b.WriteString("\n")
	}

	b.WriteString(m.theme.Help.Render("↑/↓ move • enter details • tab next screen • q quit"))
	return m.theme.Card.Render(b.String())
}
