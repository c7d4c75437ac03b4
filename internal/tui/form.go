package tui

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/petals-kitchen/menubook/pkg/types"
)

// Form focus order mirrors the original layout: name, description, course,
// price, then the submit control.
const (
	focusName = iota
	focusDesc
	focusCourse
	focusPrice
	focusSubmit
	focusCount
)

// Blocking message titles, one per validation class.
const (
	msgMissingInfo  = "Missing Information"
	msgInvalidPrice = "Invalid Price"
)

// formState is the dish creation form: three text inputs, a course selector
// defaulting to the configured course, and a submit control that stays
// disabled while validation fails.
type formState struct {
	inputs    [3]textinput.Model // name, description, price
	courseIdx int
	focus     int

	defaultCourse types.Course
	errTitle      string // blocking message title, "" when none
	errDetail     string
	success       string
}

func newFormState(defaultCourse types.Course) formState {
	name := textinput.New()
	name.Placeholder = "Enter dish name"
	name.CharLimit = 64
	name.Width = 40
	name.Focus()

	desc := textinput.New()
	desc.Placeholder = "Describe your dish..."
	desc.CharLimit = 120
	desc.Width = 40

	price := textinput.New()
	price.Placeholder = "0"
	price.CharLimit = 10
	price.Width = 10

	f := formState{
		inputs:        [3]textinput.Model{name, desc, price},
		defaultCourse: defaultCourse,
	}
	f.courseIdx = courseIndex(defaultCourse)
	return f
}

func courseIndex(c types.Course) int {
	for i, course := range types.Courses() {
		if course == c {
			return i
		}
	}
	return 0
}

// formInput is the raw text state of the form, extracted for validation.
type formInput struct {
	Name        string
	Description string
	Price       string
}

// check classifies the form against the two submission rules: all fields
// non-empty after trimming, and price parsing strictly greater than zero.
// Returns nil when the form is submittable.
func (f formInput) check() error {
	if strings.TrimSpace(f.Name) == "" ||
		strings.TrimSpace(f.Description) == "" ||
		strings.TrimSpace(f.Price) == "" {
		return types.ErrMissingField
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
	if err != nil || v <= 0 {
		return types.ErrInvalidPrice
	}
	return nil
}

// amount converts the price text to a whole currency amount, rounding
// fractional input the way the form always has.
func (f formInput) amount() int64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
	if err != nil {
		return 0
	}
	return int64(math.Round(v))
}

func (f formState) input() formInput {
	return formInput{
		Name:        f.inputs[0].Value(),
		Description: f.inputs[1].Value(),
		Price:       f.inputs[2].Value(),
	}
}

func (f formState) course() types.Course {
	return types.Courses()[f.courseIdx]
}

// inputIndex maps a focus position to its text input, or -1 for the course
// selector and submit control.
func inputIndex(focus int) int {
	switch focus {
	case focusName:
		return 0
	case focusDesc:
		return 1
	case focusPrice:
		return 2
	}
	return -1
}

func (f *formState) setFocus(focus int) {
	f.focus = focus
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	if idx := inputIndex(focus); idx >= 0 {
		f.inputs[idx].Focus()
	}
}

// reset clears all fields back to their defaults after a successful submit.
func (f *formState) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.courseIdx = courseIndex(f.defaultCourse)
	f.setFocus(focusName)
}

func (m model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch key.String() {
		case "esc":
			m.form.errTitle = ""
			m.form.errDetail = ""
			m.form.success = ""
			return m, nil

		case "up":
			m.form.setFocus((m.form.focus + focusCount - 1) % focusCount)
			return m, nil

		case "down":
			m.form.setFocus((m.form.focus + 1) % focusCount)
			return m, nil

		case "left", "right":
			if m.form.focus == focusCourse {
				n := len(types.Courses())
				if key.String() == "left" {
					m.form.courseIdx = (m.form.courseIdx + n - 1) % n
				} else {
					m.form.courseIdx = (m.form.courseIdx + 1) % n
				}
				return m, nil
			}

		case "enter":
			if m.form.focus == focusSubmit || m.form.focus == focusPrice {
				return m.submitForm(), nil
			}
			m.form.setFocus(m.form.focus + 1)
			return m, nil
		}
	}

	// Everything else goes to the focused text input.
	if idx := inputIndex(m.form.focus); idx >= 0 {
		var cmd tea.Cmd
		m.form.inputs[idx], cmd = m.form.inputs[idx].Update(msg)
		return m, cmd
	}
	return m, nil
}

// submitForm runs the two validation rules, then hands the candidate to the
// store. A failed check blocks with a message naming the failed class and
// never touches the store.
func (m model) submitForm() model {
	m.form.success = ""
	m.form.errTitle = ""
	m.form.errDetail = ""

	in := m.form.input()
	if err := in.check(); err != nil {
		m.form.errTitle, m.form.errDetail = blockingMessage(err)
		return m
	}

	item, err := m.deps.Store.Add(types.Candidate{
		Name:        in.Name,
		Description: in.Description,
		Course:      m.form.course(),
		Price:       in.amount(),
	})
	if err != nil {
		// The store re-checks the same rules; a rounded-to-zero price
		// lands here as ErrInvalidPrice.
		m.form.errTitle, m.form.errDetail = blockingMessage(err)
		m.logError("store.add", err)
		return m
	}

	m.refreshTotal()
	m.form.success = fmt.Sprintf("Success! %s has been added to your menu.", item.Name)
	m.form.reset()
	return m
}

// blockingMessage maps a validation error to the title and detail of the
// blocking user message.
func blockingMessage(err error) (title, detail string) {
	switch {
	case errors.Is(err, types.ErrMissingField):
		return msgMissingInfo, "Please fill in all fields."
	case errors.Is(err, types.ErrInvalidPrice):
		return msgInvalidPrice, "Please enter a valid price."
	default:
		return "Error", err.Error()
	}
}

func (m model) viewForm() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("🍓 Create New Dish") + "\n\n")

	labels := [...]string{"Dish Name", "Description", "Course", fmt.Sprintf("Price (%s)", m.deps.Config.Currency), ""}
	for focus := 0; focus < focusCount; focus++ {
		marker := "  "
		if focus == m.form.focus {
			marker = m.theme.Cursor.Render("> ")
		}

		switch focus {
		case focusCourse:
			b.WriteString(marker + m.theme.Label.Render(labels[focus]) + "\n")
			b.WriteString("    " + m.viewCourseSelector() + "\n")

		case focusSubmit:
			b.WriteString("\n" + marker + m.viewSubmit() + "\n")

		default:
			b.WriteString(marker + m.theme.Label.Render(labels[focus]) + "\n")
			b.WriteString("    " + m.form.inputs[inputIndex(focus)].View() + "\n")
		}
	}

	if m.form.errTitle != "" {
		b.WriteString("\n" + m.theme.Error.Render(m.form.errTitle+" — "+m.form.errDetail) + "\n")
	}
	if m.form.success != "" {
		b.WriteString("\n" + m.theme.Success.Render(m.form.success) + "\n")
	}

	b.WriteString("\n" + m.theme.Help.Render("↑/↓ field • ←/→ course • enter next/submit • tab next screen • ctrl+c quit"))
	return m.theme.Card.Render(b.String())
}

func (m model) viewCourseSelector() string {
	parts := make([]string, 0, len(types.Courses()))
	for i, course := range types.Courses() {
		label := course.String()
		if i == m.form.courseIdx {
			parts = append(parts, m.theme.FilterActive.Render("["+label+"]"))
		} else {
			parts = append(parts, m.theme.FilterInactive.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}

// viewSubmit renders the submit control, disabled while validation fails.
func (m model) viewSubmit() string {
	if m.form.input().check() != nil {
		return m.theme.Disabled.Render("[ Add Dish ]")
	}
	return m.theme.Badge.Render("Add Dish")
}
