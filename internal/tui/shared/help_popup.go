package shared

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"studyorg/internal/tui/theme"
)

// HelpBind represents a single keybind entry
type HelpBind struct {
	Key  string
	Desc string
}

// HelpSection represents a group of related keybinds
type HelpSection struct {
	Title string
	Binds []HelpBind
}

// RenderHelpPopup renders a centered help popup with the given sections
func RenderHelpPopup(p theme.Palette, sections []HelpSection, width, height int) string {
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(p.Secondary)
	descStyle := p.Plain()

	line := func(key, desc string) string {
		return "  " + keyStyle.Width(14).Render(key) + descStyle.Render(desc)
	}

	var content string
	for i, section := range sections {
		if i > 0 {
			content += "\n"
		}
		content += p.Title().Render(section.Title) + "\n"
		for _, bind := range section.Binds {
			content += line(bind.Key, bind.Desc) + "\n"
		}
	}

	content += "\n" + p.Muted().Render("Press any key to close")

	// Trim trailing newline before boxing
	content = strings.TrimRight(content, "\n")

	box := p.ModalBox().Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
