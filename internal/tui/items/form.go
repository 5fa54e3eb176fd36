package items

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"studyorg/internal/items/data"
	"studyorg/internal/items/selection"
	"studyorg/internal/tui/theme"
)

const (
	fieldName = iota
	fieldMonth
	fieldDay
	fieldScore
	fieldCount
)

// FormModel is the sidebar: item type selector, name and detail inputs, status line.
type FormModel struct {
	palette  theme.Palette
	category data.Category
	inputs   [fieldCount]textinput.Model
	focusIdx int
	focused  bool
	width    int
}

// NewFormModel creates a blurred form showing the fields for category.
func NewFormModel(category data.Category, palette theme.Palette) FormModel {
	m := FormModel{palette: palette, category: category, width: 34}

	placeholders := [fieldCount]string{
		fieldName:  "Item Name...",
		fieldMonth: "Month (1-12)",
		fieldDay:   "Day (1-31)",
		fieldScore: "Score (0-100)",
	}
	limits := [fieldCount]int{fieldName: 128, fieldMonth: 8, fieldDay: 8, fieldScore: 16}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = limits[i]
		ti.Prompt = ""
		m.inputs[i] = ti
	}
	m.SetWidth(m.width)
	return m
}

// Category returns the item type the form adds.
func (m *FormModel) Category() data.Category {
	return m.category
}

// SetCategory swaps the detail inputs to match c.
func (m *FormModel) SetCategory(c data.Category) {
	m.category = c
	if !m.isVisible(m.focusIdx) {
		m.focusIdx = fieldName
	}
	if m.focused {
		m.focusCurrent()
	}
}

// SetPalette switches colours.
func (m *FormModel) SetPalette(p theme.Palette) {
	m.palette = p
}

// SetWidth sets the sidebar width and sizes the inputs to fit.
func (m *FormModel) SetWidth(w int) {
	m.width = w
	inner := w - 4 - 8
	if inner < 8 {
		inner = 8
	}
	for i := range m.inputs {
		m.inputs[i].Width = inner
	}
}

// Width returns the sidebar width.
func (m *FormModel) Width() int {
	return m.width
}

// Values returns the current field contents.
func (m *FormModel) Values() selection.Form {
	return selection.Form{
		Name: m.inputs[fieldName].Value(),
		RawInput: data.RawInput{
			Month: m.inputs[fieldMonth].Value(),
			Day:   m.inputs[fieldDay].Value(),
			Score: m.inputs[fieldScore].Value(),
		},
	}
}

// Clear empties every field.
func (m *FormModel) Clear() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
}

// Fill clears the fields, then loads a selection into them.
func (m *FormModel) Fill(fields selection.DisplayFields) {
	m.Clear()
	m.SetCategory(fields.Category)
	m.inputs[fieldName].SetValue(fields.Name)
	m.inputs[fieldMonth].SetValue(fields.Month)
	m.inputs[fieldDay].SetValue(fields.Day)
	m.inputs[fieldScore].SetValue(fields.Score)
}

// Focused reports whether the form is taking keystrokes.
func (m *FormModel) Focused() bool {
	return m.focused
}

// Focus starts editing at the name field.
func (m *FormModel) Focus() tea.Cmd {
	m.focused = true
	m.focusIdx = fieldName
	return m.focusCurrent()
}

// Blur stops editing.
func (m *FormModel) Blur() {
	m.focused = false
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

func (m *FormModel) isVisible(field int) bool {
	switch field {
	case fieldName:
		return true
	case fieldMonth, fieldDay:
		return m.category.UsesDate()
	case fieldScore:
		return !m.category.UsesDate()
	}
	return false
}

func (m *FormModel) focusCurrent() tea.Cmd {
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == m.focusIdx {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

func (m *FormModel) moveFocus(delta int) tea.Cmd {
	for n := 0; n < fieldCount; n++ {
		m.focusIdx = (m.focusIdx + delta + fieldCount) % fieldCount
		if m.isVisible(m.focusIdx) {
			break
		}
	}
	return m.focusCurrent()
}

// Update handles field navigation and typing. Submit keys are handled by the caller.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			return m, m.moveFocus(1)
		case "shift+tab", "up":
			return m, m.moveFocus(-1)
		case "ctrl+k":
			m.SetCategory(m.category.Next())
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
	return m, cmd
}

// View renders the sidebar.
func (m FormModel) View(greeting string, status selection.Status, selected string) string {
	p := m.palette
	label := lipgloss.NewStyle().Foreground(p.Secondary).Width(8)

	var b strings.Builder
	b.WriteString(p.Title().Render(greeting))
	b.WriteString("\n\n")

	b.WriteString(label.Render("Type:"))
	for _, c := range data.Categories {
		if c == m.category {
			b.WriteString(p.TabActive().Render(c.String()))
		} else {
			b.WriteString(p.TabInactive().Render(c.String()))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n\n")

	field := func(name string, idx int) {
		b.WriteString(label.Render(name))
		b.WriteString(m.inputs[idx].View())
		b.WriteString("\n")
	}
	field("Name:", fieldName)
	if m.category.UsesDate() {
		field("Month:", fieldMonth)
		field("Day:", fieldDay)
	} else {
		field("Score:", fieldScore)
	}
	b.WriteString("\n")

	if selected != "" {
		b.WriteString(p.Selected().Render("Editing: " + selected))
	} else {
		b.WriteString(p.Muted().Render("No item selected"))
	}
	b.WriteString("\n\n")

	if m.focused {
		b.WriteString(p.Muted().Render("enter:add  ctrl+s:modify\ntab:next field  ctrl+k:type  esc:done"))
	} else {
		b.WriteString(p.Muted().Render("a:edit form  e:modify  d:delete"))
	}
	b.WriteString("\n\n")
	b.WriteString(StatusLine(p, status, m.width-4))

	return p.Panel(m.focused).Width(m.width - 2).Render(b.String())
}
