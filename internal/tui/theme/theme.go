package theme

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Palette
// ---------------------------------------------------------------------------

// Palette is the full set of colours the render layer draws with.
type Palette struct {
	Name string

	Text       lipgloss.Color
	TextMuted  lipgloss.Color
	TextBright lipgloss.Color

	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Danger    lipgloss.Color
	Surface   lipgloss.Color
	Border    lipgloss.Color

	// row colours per category
	AssignmentRow lipgloss.Color
	ExamRow       lipgloss.Color
	GradeRow      lipgloss.Color
}

// Dark is the default palette (ANSI 0-15 + one 256-colour surface).
func Dark() Palette {
	return Palette{
		Name:          "dark",
		Text:          lipgloss.Color("7"),
		TextMuted:     lipgloss.Color("8"),
		TextBright:    lipgloss.Color("15"),
		Primary:       lipgloss.Color("4"),
		Secondary:     lipgloss.Color("6"),
		Accent:        lipgloss.Color("5"),
		Success:       lipgloss.Color("2"),
		Warning:       lipgloss.Color("3"),
		Danger:        lipgloss.Color("1"),
		Surface:       lipgloss.Color("236"),
		Border:        lipgloss.Color("8"),
		AssignmentRow: lipgloss.Color("250"),
		ExamRow:       lipgloss.Color("9"),
		GradeRow:      lipgloss.Color("10"),
	}
}

// Light suits terminals with a pale background.
func Light() Palette {
	return Palette{
		Name:          "light",
		Text:          lipgloss.Color("0"),
		TextMuted:     lipgloss.Color("245"),
		TextBright:    lipgloss.Color("232"),
		Primary:       lipgloss.Color("25"),
		Secondary:     lipgloss.Color("30"),
		Accent:        lipgloss.Color("90"),
		Success:       lipgloss.Color("28"),
		Warning:       lipgloss.Color("130"),
		Danger:        lipgloss.Color("124"),
		Surface:       lipgloss.Color("254"),
		Border:        lipgloss.Color("250"),
		AssignmentRow: lipgloss.Color("238"),
		ExamRow:       lipgloss.Color("88"),
		GradeRow:      lipgloss.Color("22"),
	}
}

// For returns the palette named name, falling back to Dark.
func For(name string) Palette {
	if name == "light" {
		return Light()
	}
	return Dark()
}

// Toggle returns the other palette.
func (p Palette) Toggle() Palette {
	if p.Name == "light" {
		return Dark()
	}
	return Light()
}

// ---------------------------------------------------------------------------
// Semantic text styles
// ---------------------------------------------------------------------------

func (p Palette) Title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(p.Primary)
}

func (p Palette) Subtitle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(p.Secondary)
}

func (p Palette) Muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.TextMuted)
}

func (p Palette) Plain() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Text)
}

func (p Palette) Error() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(p.Danger)
}

func (p Palette) Ok() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(p.Success)
}

func (p Palette) Cursor() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(p.Success)
}

func (p Palette) Selected() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(p.Warning)
}

func (p Palette) SelectedBg() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.TextBright).Background(p.Surface)
}

// ---------------------------------------------------------------------------
// Reusable component helpers
// ---------------------------------------------------------------------------

func (p Palette) ModalBox() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(1, 2)
}

func (p Palette) ModalTitle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(p.Warning)
}

func (p Palette) Panel(focused bool) lipgloss.Style {
	border := p.Border
	if focused {
		border = p.Primary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

func (p Palette) StatusBar() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.TextMuted).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(p.Border)
}

func (p Palette) TabActive() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(p.Primary).Underline(true)
}

func (p Palette) TabInactive() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.TextMuted)
}

func (p Palette) TabBar() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(p.Border).
		PaddingLeft(1)
}
