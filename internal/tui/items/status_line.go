package items

import (
	"github.com/charmbracelet/lipgloss"

	"studyorg/internal/items/selection"
	"studyorg/internal/tui/theme"
)

// StatusLine renders the last controller status in its level colour.
func StatusLine(p theme.Palette, st selection.Status, width int) string {
	if st.Text == "" {
		return ""
	}
	style := statusStyle(p, st.Level)
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(st.Text)
}

// statusStyle is red for errors and neutral for everything else.
func statusStyle(p theme.Palette, level selection.Level) lipgloss.Style {
	if level == selection.LevelError {
		return p.Error()
	}
	return p.Muted()
}

// Hints returns the key hints for the bottom bar.
func Hints(formFocused, searching bool) string {
	switch {
	case searching:
		return "type to filter  up/down:navigate  enter:done  esc:clear"
	case formFocused:
		return "enter:add  ctrl+s:modify  tab:next field  ctrl+k:type  esc:leave form"
	}
	return "1/2/3:tabs  j/k:move  enter:select  a:form  e:modify  d:delete  n:name  /:search  t:theme  ?:help  q:quit"
}

// AverageHeader renders the line shown above the grade list.
func AverageHeader(p theme.Palette, average string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(p.Text).Render("Current Average Grade: " + average)
}
