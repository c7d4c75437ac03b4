package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/petals-kitchen/menubook/pkg/types"
)

// filterAll is the extra filter tab shown before the three courses.
const filterAll = "All"

// homeState is the catalog browser: a local course filter over the static
// catalog plus a cursor. The filter never touches the store.
type homeState struct {
	catalog   []types.Candidate
	filters   []string
	filterIdx int
	cursor    int
	toast     string
}

func newHomeState(catalog []types.Candidate) homeState {
	filters := []string{filterAll}
	for _, c := range types.Courses() {
		filters = append(filters, c.String())
	}
	return homeState{catalog: catalog, filters: filters}
}

// filtered returns the catalog entries visible under the active filter.
// Pure: same filter, same catalog, same result.
func (h homeState) filtered() []types.Candidate {
	if h.filters[h.filterIdx] == filterAll {
		return h.catalog
	}
	course := types.Course(h.filters[h.filterIdx])
	var out []types.Candidate
	for _, e := range h.catalog {
		if e.Course == course {
			out = append(out, e)
		}
	}
	return out
}

func (m model) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	visible := m.home.filtered()

	switch key.String() {
	case "q":
		return m, tea.Quit

	case "left", "h":
		m.home.filterIdx = (m.home.filterIdx + len(m.home.filters) - 1) % len(m.home.filters)
		m.home.cursor = 0

	case "right", "l":
		m.home.filterIdx = (m.home.filterIdx + 1) % len(m.home.filters)
		m.home.cursor = 0

	case "up", "k":
		if m.home.cursor > 0 {
			m.home.cursor--
		}

	case "down", "j":
		if m.home.cursor < len(visible)-1 {
			m.home.cursor++
		}

	case "enter", "a", "+":
		// Exactly one add per press; repeats are allowed and produce
		// distinct items.
		if m.home.cursor >= len(visible) {
			break
		}
		entry := visible[m.home.cursor]
		item, err := m.deps.Store.Add(entry)
		if err != nil {
			m.logError("store.add", err)
			m.home.toast = "Could not add " + entry.Name
			break
		}
		m.refreshTotal()
		m.home.toast = fmt.Sprintf("Added %s to your menu", item.Name)
	}

	return m, nil
}

func (m model) viewHome() string {
	var b strings.Builder

	// Course filter tabs.
	parts := make([]string, len(m.home.filters))
	for i, f := range m.home.filters {
		if i == m.home.filterIdx {
			parts[i] = m.theme.FilterActive.Render(f)
		} else {
			parts[i] = m.theme.FilterInactive.Render(f)
		}
	}
	b.WriteString(strings.Join(parts, "  "))
	b.WriteString("\n\n")

	for i, entry := range m.home.filtered() {
		cursor := "  "
		if i == m.home.cursor {
			cursor = m.theme.Cursor.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor,
			m.theme.ItemName.Render(entry.Name),
			m.theme.Price.Render(m.price(entry.Price))))
		b.WriteString("    " + m.theme.ItemDesc.Render(clampString(entry.Description, 60)) + "\n")
	}

	if m.home.toast != "" {
		b.WriteString("\n" + m.theme.Success.Render(m.home.toast) + "\n")
	}

	b.WriteString("\n" + m.theme.Help.Render("↑/↓ move • ←/→ course • enter add • tab next screen • q quit"))
	return m.theme.Card.Render(b.String())
}

// price renders an integer amount with the configured currency symbol.
func (m model) price(amount int64) string {
	return fmt.Sprintf("%s %d", m.deps.Config.Currency, amount)
}
