package items

import (
	tea "github.com/charmbracelet/bubbletea"

	"studyorg/internal/tui/theme"
)

// ConfirmationModal displays a simple yes/no confirmation dialog
type ConfirmationModal struct {
	Message string // Primary question
	Details string // Additional context (optional)
	Width   int    // Modal width
	palette theme.Palette
}

// ConfirmationResultMsg is sent when the user confirms or cancels
type ConfirmationResultMsg struct {
	Confirmed bool
}

// NewConfirmationModal creates a new confirmation modal
func NewConfirmationModal(message, details string, width int, palette theme.Palette) *ConfirmationModal {
	return &ConfirmationModal{
		Message: message,
		Details: details,
		Width:   width,
		palette: palette,
	}
}

// Update handles key events for the confirmation modal
func (m *ConfirmationModal) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "enter":
		return func() tea.Msg {
			return ConfirmationResultMsg{Confirmed: true}
		}
	case "n", "esc":
		return func() tea.Msg {
			return ConfirmationResultMsg{Confirmed: false}
		}
	}
	return nil
}

// View renders the confirmation modal
func (m *ConfirmationModal) View() string {
	p := m.palette
	var content string

	content += p.ModalTitle().Render(m.Message) + "\n"

	if m.Details != "" {
		content += "\n" + p.Plain().Render(m.Details) + "\n"
	}

	content += "\n"
	content += p.Ok().Render("[y]") + " Yes  "
	content += p.Error().Render("[n/esc]") + " No"

	return p.ModalBox().Width(m.Width).Render(content)
}
