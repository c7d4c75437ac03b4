package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petals-kitchen/menubook/internal/catalog"
	"github.com/petals-kitchen/menubook/internal/logging"
	"github.com/petals-kitchen/menubook/internal/store"
	"github.com/petals-kitchen/menubook/pkg/types"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	s := store.New()
	require.NoError(t, s.Open())
	t.Cleanup(func() { _ = s.Close() })

	return newModel(Deps{
		Store:   s,
		Catalog: catalog.Entries(),
		Config:  types.Config{Currency: "R", DefaultCourse: "Mains", LogLevel: "info"},
		Logger:  logging.Discard(),
	})
}

// press feeds one key event through Update and returns the resulting model.
func press(t *testing.T, m model, key string) model {
	t.Helper()

	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		msg = tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}

	next, _ := m.Update(msg)
	got, ok := next.(model)
	require.True(t, ok, "Update must return the app model")
	return got
}

func TestTabRouting(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, screenHome, m.scr)

	m = press(t, m, "tab")
	assert.Equal(t, screenCreate, m.scr)
	m = press(t, m, "tab")
	assert.Equal(t, screenMenu, m.scr)
	m = press(t, m, "tab")
	assert.Equal(t, screenHome, m.scr)

	m = press(t, m, "shift+tab")
	assert.Equal(t, screenMenu, m.scr)
}

func TestHomeFilterIsPure(t *testing.T) {
	h := newHomeState(catalog.Entries())

	assert.Len(t, h.filtered(), 12, "All shows the whole catalog")

	h.filterIdx = 1 // Breakfast
	breakfast := h.filtered()
	require.Len(t, breakfast, 4)
	for _, e := range breakfast {
		assert.Equal(t, types.CourseBreakfast, e.Course)
	}

	// Filtering twice gives the same answer; nothing is consumed.
	assert.Equal(t, breakfast, h.filtered())
}

func TestHomeAddPerformsExactlyOneAdd(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "enter")
	count, err := m.deps.Store.TotalCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, m.total)

	// Same entry again: allowed, distinct item.
	m = press(t, m, "enter")
	items, err := m.deps.Store.List()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, items[0].Name, items[1].Name)
	assert.NotEqual(t, items[0].ItemID, items[1].ItemID)
}

func TestFormInputCheck(t *testing.T) {
	tests := []struct {
		name    string
		input   formInput
		wantErr error
	}{
		{name: "valid", input: formInput{Name: "Tart", Description: "Sweet", Price: "90"}},
		{name: "fractional price parses", input: formInput{Name: "Tart", Description: "Sweet", Price: "89.5"}},
		{name: "empty name", input: formInput{Name: "", Description: "Good", Price: "50"}, wantErr: types.ErrMissingField},
		{name: "whitespace name", input: formInput{Name: "  ", Description: "Good", Price: "50"}, wantErr: types.ErrMissingField},
		{name: "empty description", input: formInput{Name: "Tart", Description: "", Price: "50"}, wantErr: types.ErrMissingField},
		{name: "empty price", input: formInput{Name: "Tart", Description: "Sweet", Price: " "}, wantErr: types.ErrMissingField},
		{name: "non-numeric price", input: formInput{Name: "Tart", Description: "Sweet", Price: "abc"}, wantErr: types.ErrInvalidPrice},
		{name: "zero price", input: formInput{Name: "Tart", Description: "Sweet", Price: "0"}, wantErr: types.ErrInvalidPrice},
		{name: "negative price", input: formInput{Name: "Tart", Description: "Sweet", Price: "-4"}, wantErr: types.ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.check()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormAmountRounds(t *testing.T) {
	assert.Equal(t, int64(90), formInput{Price: "90"}.amount())
	assert.Equal(t, int64(90), formInput{Price: "89.6"}.amount())
	assert.Equal(t, int64(89), formInput{Price: "89.4"}.amount())
	assert.Equal(t, int64(0), formInput{Price: "0.4"}.amount())
}

func TestFormSubmitSuccess(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "tab") // Create

	m.form.inputs[0].SetValue("Tart")
	m.form.inputs[1].SetValue("Sweet")
	m.form.inputs[2].SetValue("90")
	m.form.setFocus(focusSubmit)

	m = press(t, m, "enter")

	items, err := m.deps.Store.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Tart", items[0].Name)
	assert.Equal(t, types.CourseMains, items[0].Course, "course defaults to Mains unless changed")
	assert.Equal(t, int64(90), items[0].Price)

	assert.Contains(t, m.form.success, "Tart")
	assert.Empty(t, m.form.inputs[0].Value(), "fields reset after success")
	assert.Empty(t, m.form.inputs[2].Value())
	assert.Equal(t, courseIndex(types.CourseMains), m.form.courseIdx)
}

func TestFormSubmitBlockedMissingField(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "tab")

	m.form.inputs[0].SetValue("")
	m.form.inputs[1].SetValue("Good")
	m.form.inputs[2].SetValue("50")
	m.form.setFocus(focusSubmit)

	m = press(t, m, "enter")

	assert.Equal(t, msgMissingInfo, m.form.errTitle)
	count, err := m.deps.Store.TotalCount()
	require.NoError(t, err)
	assert.Equal(t, 0, count, "blocked submit must not mutate the store")
}

func TestFormSubmitBlockedInvalidPrice(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "tab")

	m.form.inputs[0].SetValue("Tart")
	m.form.inputs[1].SetValue("Sweet")
	m.form.inputs[2].SetValue("0")
	m.form.setFocus(focusSubmit)

	m = press(t, m, "enter")

	assert.Equal(t, msgInvalidPrice, m.form.errTitle)
	count, err := m.deps.Store.TotalCount()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestFormCourseSelection(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "tab")
	m.form.setFocus(focusCourse)

	require.Equal(t, types.CourseMains, m.form.course())
	m = press(t, m, "right")
	assert.Equal(t, types.CourseDesserts, m.form.course())
	m = press(t, m, "left")
	m = press(t, m, "left")
	assert.Equal(t, types.CourseBreakfast, m.form.course())
}

func TestMenuEmptyState(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "tab")
	m = press(t, m, "tab") // My Menu

	view := m.viewMenu()
	assert.Contains(t, view, "No dishes yet")
	assert.Contains(t, view, "0 total")
}

func TestMenuGroupsAndDetails(t *testing.T) {
	m := newTestModel(t)

	// Add one dish per course straight through the store.
	for _, c := range []types.Candidate{
		{Name: "Vanilla Tart", Description: "Crispy base", Course: types.CourseDesserts, Price: 90},
		{Name: "Berry Pancakes", Description: "Soft pancakes", Course: types.CourseBreakfast, Price: 110},
		{Name: "Pink Pasta", Description: "Creamy beetroot pasta", Course: types.CourseMains, Price: 230},
	} {
		_, err := m.deps.Store.Add(c)
		require.NoError(t, err)
	}

	m = press(t, m, "tab")
	m = press(t, m, "tab") // My Menu refreshes on entry
	require.Equal(t, screenMenu, m.scr)
	require.Len(t, m.menu.flat, 3)

	// Sections follow course display order regardless of insertion order.
	require.Len(t, m.menu.groups, 3)
	assert.Equal(t, types.CourseBreakfast, m.menu.groups[0].course)
	assert.Equal(t, types.CourseMains, m.menu.groups[1].course)
	assert.Equal(t, types.CourseDesserts, m.menu.groups[2].course)

	view := m.viewMenu()
	assert.Contains(t, view, "1 items")
	assert.Contains(t, view, "3 total")

	// Select the first row and open details.
	m = press(t, m, "enter")
	require.Equal(t, screenDetails, m.scr)
	assert.Equal(t, "Berry Pancakes", m.details.item.Name)
	assert.Contains(t, m.viewDetails(), "Berry Pancakes")
	assert.Contains(t, m.viewDetails(), fmt.Sprintf("R %d", 110))

	// Single back transition returns to My Menu.
	m = press(t, m, "esc")
	assert.Equal(t, screenMenu, m.scr)
}

func TestClampString(t *testing.T) {
	assert.Equal(t, "short", clampString("short", 10))
	assert.Equal(t, "exact", clampString("exact", 5))
	assert.Equal(t, "abc…", clampString("abcdef", 3))
	assert.Equal(t, "", clampString("anything", 0))
}
