package messages

import (
	tea "github.com/charmbracelet/bubbletea"

	"studyorg/internal/items/data"
)

// SwitchTabMsg is sent by child views to show a different category
type SwitchTabMsg struct {
	Category data.Category
}

// SelectItemMsg asks the root model to put an item in the selection slot
type SelectItemMsg struct {
	ID string
}

func SwitchTab(c data.Category) tea.Cmd {
	return func() tea.Msg {
		return SwitchTabMsg{Category: c}
	}
}

func SelectItem(id string) tea.Cmd {
	return func() tea.Msg {
		return SelectItemMsg{ID: id}
	}
}
