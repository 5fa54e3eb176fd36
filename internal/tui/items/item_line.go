package items

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"studyorg/internal/items/data"
	"studyorg/internal/tui/theme"
)

// RowColor is the category colour used for a row.
func RowColor(p theme.Palette, c data.Category) lipgloss.Color {
	switch c {
	case data.CategoryExam:
		return p.ExamRow
	case data.CategoryGrade:
		return p.GradeRow
	}
	return p.AssignmentRow
}

// ItemLine renders "N. NAME - DETAILS" (1-based index).
func ItemLine(index int, it data.Item) string {
	return fmt.Sprintf("%d. %s", index+1, it.String())
}

// StyledItemLine renders an item row, highlighted when it holds the selection slot.
func StyledItemLine(p theme.Palette, index int, it data.Item, selected bool) string {
	style := lipgloss.NewStyle().Foreground(RowColor(p, it.Category))
	line := style.Render(ItemLine(index, it))
	if selected {
		line = p.SelectedBg().Render(ItemLine(index, it)) + " " + p.Selected().Render("*")
	}
	return line
}
