package items

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"studyorg/internal/tui/theme"
)

// TextInputModel wraps bubbles/textinput with validation
type TextInputModel struct {
	Input     textinput.Model
	Prompt    string
	Validator func(string) error
	Error     string
	Width     int
	palette   theme.Palette
}

// TextInputResultMsg is sent when input is confirmed or cancelled
type TextInputResultMsg struct {
	Value     string
	Cancelled bool
}

// NewTextInput creates a new text input component
func NewTextInput(prompt, placeholder string, validator func(string) error, palette theme.Palette) *TextInputModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 128
	return &TextInputModel{
		Input:     ti,
		Prompt:    prompt,
		Validator: validator,
		palette:   palette,
	}
}

// NewNameInput creates the prompt used to set the student's name.
func NewNameInput(palette theme.Palette) *TextInputModel {
	return NewTextInput("Your name", "Enter your name...", nil, palette)
}

// Update handles key events
func (m *TextInputModel) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			// Validate before accepting
			if m.Validator != nil {
				if err := m.Validator(m.Input.Value()); err != nil {
					m.Error = err.Error()
					return nil
				}
			}
			value := m.Input.Value()
			return func() tea.Msg {
				return TextInputResultMsg{Value: value}
			}

		case "esc":
			return func() tea.Msg {
				return TextInputResultMsg{Cancelled: true}
			}
		}
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)

	// Clear error when user types
	m.Error = ""

	return cmd
}

// View renders the input box
func (m *TextInputModel) View() string {
	p := m.palette
	var content string

	content += lipgloss.NewStyle().Foreground(p.Secondary).Render(m.Prompt+": ") + m.Input.View() + "\n"

	if m.Error != "" {
		content += p.Error().Render("Error: "+m.Error) + "\n"
	}

	content += p.Muted().Render("[enter] confirm  [esc] cancel")

	return p.ModalBox().Padding(0, 1).Width(m.Width).Render(content)
}

// Value returns the current input value
func (m *TextInputModel) Value() string {
	return m.Input.Value()
}

// SetValue sets the input value
func (m *TextInputModel) SetValue(v string) {
	m.Input.SetValue(v)
}

// SetWidth sets both the outer box and inner input widths
func (m *TextInputModel) SetWidth(w int) {
	// Account for border (2) and padding (2)
	m.Width = w - 4
	// Inner input accounts for prompt text
	m.Input.Width = m.Width - lipgloss.Width(m.Prompt+": ")
}
