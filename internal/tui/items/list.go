package items

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"studyorg/internal/items/data"
	"studyorg/internal/tui/messages"
	"studyorg/internal/tui/theme"
)

// ItemListModel shows one category sequence with a cursor and an optional fuzzy filter.
type ItemListModel struct {
	category data.Category
	palette  theme.Palette

	// Data
	items   []data.Item
	visible []int // indexes into items, in display order

	// Navigation
	cursor       int
	scrollOffset int
	selectedID   string

	// Inline search
	searchActive bool
	searchInput  textinput.Model
	query        string

	// Dimensions
	width  int
	height int
}

// NewItemListModel creates an empty list for category.
func NewItemListModel(category data.Category, palette theme.Palette) ItemListModel {
	si := textinput.New()
	si.Placeholder = "search names"
	si.CharLimit = 64
	return ItemListModel{
		category:    category,
		palette:     palette,
		searchInput: si,
		width:       60,
		height:      20,
	}
}

// Category returns the category this list shows.
func (m *ItemListModel) Category() data.Category {
	return m.category
}

// SetItems replaces the rows, keeping the cursor in range.
func (m *ItemListModel) SetItems(items []data.Item) {
	m.items = items
	m.refreshVisible()
}

// SetSize updates the dimensions
func (m *ItemListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureCursorVisible()
}

// SetPalette switches colours.
func (m *ItemListModel) SetPalette(p theme.Palette) {
	m.palette = p
}

// SetSelectedID marks the row holding the selection slot.
func (m *ItemListModel) SetSelectedID(id string) {
	m.selectedID = id
}

// IsSearching reports whether the search line is taking keystrokes.
func (m *ItemListModel) IsSearching() bool {
	return m.searchActive
}

// Query returns the active fuzzy filter, or "".
func (m *ItemListModel) Query() string {
	return m.query
}

// Visible returns the items currently shown, in display order.
func (m *ItemListModel) Visible() []data.Item {
	out := make([]data.Item, len(m.visible))
	for i, idx := range m.visible {
		out[i] = m.items[idx]
	}
	return out
}

// Current returns the item under the cursor.
func (m *ItemListModel) Current() (data.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return data.Item{}, false
	}
	return m.items[m.visible[m.cursor]], true
}

// FocusItem moves the cursor to the item with the given id, if visible.
func (m *ItemListModel) FocusItem(id string) {
	for i, idx := range m.visible {
		if m.items[idx].ID == id {
			m.cursor = i
			m.ensureCursorVisible()
			return
		}
	}
}

// FocusLast moves the cursor to the last row.
func (m *ItemListModel) FocusLast() {
	m.cursor = len(m.visible) - 1
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

// Update handles navigation and search keys.
func (m ItemListModel) Update(msg tea.Msg) (ItemListModel, tea.Cmd) {
	if m.searchActive {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			return m.handleSearchKeys(msg)
		default:
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			return m, cmd
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "j", "down":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.FocusLast()
	case "enter":
		if it, ok := m.Current(); ok {
			return m, messages.SelectItem(it.ID)
		}
	case "/":
		m.searchActive = true
		m.searchInput.SetValue(m.query)
		return m, m.searchInput.Focus()
	case "esc":
		if m.query != "" {
			m.clearSearch()
		}
	}
	m.ensureCursorVisible()
	return m, nil
}

func (m ItemListModel) handleSearchKeys(msg tea.KeyMsg) (ItemListModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchActive = false
		m.searchInput.Blur()
		return m, nil
	case "esc":
		m.clearSearch()
		return m, nil
	case "down", "ctrl+n":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		m.ensureCursorVisible()
		return m, nil
	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
		m.ensureCursorVisible()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if q := m.searchInput.Value(); q != m.query {
		m.query = q
		m.cursor = 0
		m.refreshVisible()
	}
	return m, cmd
}

func (m *ItemListModel) clearSearch() {
	m.searchActive = false
	m.searchInput.Blur()
	m.searchInput.SetValue("")
	m.query = ""
	m.refreshVisible()
}

func (m *ItemListModel) refreshVisible() {
	m.visible = m.visible[:0]
	if strings.TrimSpace(m.query) == "" {
		for i := range m.items {
			m.visible = append(m.visible, i)
		}
	} else {
		names := make([]string, len(m.items))
		for i, it := range m.items {
			names[i] = it.Name
		}
		for _, match := range fuzzy.Find(m.query, names) {
			m.visible = append(m.visible, match.Index)
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

func (m *ItemListModel) visibleRows() int {
	rows := m.height
	if m.searchActive || m.query != "" {
		rows--
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *ItemListModel) ensureCursorVisible() {
	rows := m.visibleRows()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+rows {
		m.scrollOffset = m.cursor - rows + 1
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}

// View renders the rows.
func (m ItemListModel) View() string {
	var b strings.Builder
	p := m.palette

	if m.searchActive {
		b.WriteString(p.Ok().Render("/") + m.searchInput.View() + "\n")
	} else if m.query != "" {
		b.WriteString(p.Muted().Render("filter: \""+m.query+"\"  esc:clear") + "\n")
	}

	if len(m.visible) == 0 {
		if m.query != "" {
			b.WriteString(p.Muted().Render("No matching " + strings.ToLower(m.category.Plural()) + "."))
		} else {
			b.WriteString(p.Muted().Render("No " + strings.ToLower(m.category.Plural()) + " yet."))
		}
		return b.String()
	}

	end := m.scrollOffset + m.visibleRows()
	if end > len(m.visible) {
		end = len(m.visible)
	}
	for i := m.scrollOffset; i < end; i++ {
		idx := m.visible[i]
		it := m.items[idx]
		prefix := "  "
		if i == m.cursor {
			prefix = p.Cursor().Render("> ")
		}
		b.WriteString(prefix + StyledItemLine(p, idx, it, it.ID == m.selectedID) + "\n")
	}
	return b.String()
}
