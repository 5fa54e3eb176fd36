package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"studyorg/internal/config"
	"studyorg/internal/items/data"
	"studyorg/internal/items/selection"
	"studyorg/internal/logs"
	itemview "studyorg/internal/tui/items"
	"studyorg/internal/tui/messages"
	"studyorg/internal/tui/shared"
	"studyorg/internal/tui/theme"
)

const (
	sidebarWidth  = 38
	statusHeight  = 2
	tabBarHeight  = 2
	averageHeight = 2
)

// AppModel is the root model: a form sidebar plus one list per category
type AppModel struct {
	ctrl      *selection.Controller
	palette   theme.Palette
	activeTab data.Category
	lists     [3]itemview.ItemListModel
	form      itemview.FormModel
	status    selection.Status

	// overlays
	confirm   *itemview.ConfirmationModal
	nameInput *itemview.TextInputModel
	showHelp  bool

	width  int
	height int
	ready  bool
}

// NewAppModel creates the root application model
func NewAppModel(cfg *config.Config, ctrl *selection.Controller) AppModel {
	palette := theme.For(cfg.Theme)
	tab := cfg.Tab()

	m := AppModel{
		ctrl:      ctrl,
		palette:   palette,
		activeTab: tab,
		form:      itemview.NewFormModel(tab, palette),
	}
	for _, c := range data.Categories {
		m.lists[c] = itemview.NewItemListModel(c, palette)
	}
	m.refresh()
	return m
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

// ActiveTab returns the category currently shown.
func (m AppModel) ActiveTab() data.Category {
	return m.activeTab
}

// Status returns the last status shown in the sidebar.
func (m AppModel) Status() selection.Status {
	return m.status
}

func (m *AppModel) refresh() {
	svc := m.ctrl.Service()
	for _, c := range data.Categories {
		m.lists[c].SetItems(svc.List(c))
		m.lists[c].SetSelectedID(m.ctrl.SelectedID())
	}
}

func (m *AppModel) setPalette(p theme.Palette) {
	m.palette = p
	m.form.SetPalette(p)
	for _, c := range data.Categories {
		m.lists[c].SetPalette(p)
	}
}

func (m *AppModel) layout() {
	side := sidebarWidth
	if m.width < side*2 {
		side = m.width / 2
	}
	m.form.SetWidth(side)

	contentHeight := m.height - statusHeight
	for _, c := range data.Categories {
		listHeight := contentHeight - tabBarHeight
		if c == data.CategoryGrade {
			listHeight -= averageHeight
		}
		m.lists[c].SetSize(m.width-side, listHeight)
	}
}

func (m *AppModel) setStatus(st selection.Status) {
	m.status = st
	if st.IsError() {
		log := logs.Component("tui")
		log.Info().Err(st.Err).Str("status", st.Text).Msg("rejected")
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case messages.SwitchTabMsg:
		m.activeTab = msg.Category
		return m, nil

	case messages.SelectItemMsg:
		m.selectItem(msg.ID)
		return m, nil

	case itemview.ConfirmationResultMsg:
		m.confirm = nil
		if msg.Confirmed {
			m.setStatus(m.ctrl.Delete())
			m.refresh()
		}
		return m, nil

	case itemview.TextInputResultMsg:
		m.nameInput = nil
		if !msg.Cancelled {
			m.setStatus(m.ctrl.SetStudentName(msg.Value))
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Forward everything else (cursor blink) to whatever owns the cursor
	var cmd tea.Cmd
	switch {
	case m.nameInput != nil:
		cmd = m.nameInput.Update(msg)
	case m.form.Focused():
		m.form, cmd = m.form.Update(msg)
	default:
		m.lists[m.activeTab], cmd = m.lists[m.activeTab].Update(msg)
	}
	return m, cmd
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys: ctrl+c always quits
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Dismiss help overlay on any key
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.confirm != nil {
		return m, m.confirm.Update(msg)
	}
	if m.nameInput != nil {
		return m, m.nameInput.Update(msg)
	}
	if m.form.Focused() {
		return m.handleFormKey(msg)
	}
	if m.lists[m.activeTab].IsSearching() {
		var cmd tea.Cmd
		m.lists[m.activeTab], cmd = m.lists[m.activeTab].Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "?":
		m.showHelp = true
		return m, nil
	case "1", "2", "3":
		return m, messages.SwitchTab(data.Categories[int(msg.String()[0]-'1')])
	case "tab", "l", "right":
		m.activeTab = m.activeTab.Next()
		return m, nil
	case "shift+tab", "h", "left":
		m.activeTab = m.activeTab.Prev()
		return m, nil
	case "a", "i":
		return m, m.form.Focus()
	case "ctrl+k":
		m.form.SetCategory(m.form.Category().Next())
		return m, nil
	case "e":
		m.modify()
		return m, nil
	case "d", "x":
		return m, m.requestDelete()
	case "n":
		m.nameInput = itemview.NewNameInput(m.palette)
		m.nameInput.SetWidth(min(50, m.width))
		return m, m.nameInput.Input.Focus()
	case "t":
		m.setPalette(m.palette.Toggle())
		return m, nil
	}

	var cmd tea.Cmd
	m.lists[m.activeTab], cmd = m.lists[m.activeTab].Update(msg)
	return m, cmd
}

func (m AppModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form.Blur()
		return m, nil
	case "enter":
		m.add()
		return m, nil
	case "ctrl+s":
		m.modify()
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m *AppModel) add() {
	category := m.form.Category()
	it, st := m.ctrl.Add(category, m.form.Values())
	m.setStatus(st)
	if st.IsError() {
		return
	}
	m.form.Clear()
	m.activeTab = category
	m.refresh()
	m.lists[category].FocusItem(it.ID)
}

func (m *AppModel) modify() {
	it, st := m.ctrl.Modify(m.form.Values())
	m.setStatus(st)
	if it != nil || errors.Is(st.Err, data.ErrNotFound) {
		m.form.Clear()
	}
	m.refresh()
}

func (m *AppModel) requestDelete() tea.Cmd {
	it, ok := m.ctrl.Selected()
	if !ok {
		// reports "Select an item to delete first." and clears a stale slot
		m.setStatus(m.ctrl.Delete())
		m.refresh()
		return nil
	}
	m.confirm = itemview.NewConfirmationModal(
		fmt.Sprintf("Delete %s?", strings.ToLower(it.Category.String())),
		it.String(),
		min(50, m.width),
		m.palette,
	)
	return nil
}

func (m *AppModel) selectItem(id string) {
	fields, st := m.ctrl.Select(id)
	m.setStatus(st)
	if !st.IsError() {
		m.form.Fill(fields)
	}
	m.refresh()
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return shared.RenderHelpPopup(m.palette, helpSections(), m.width, m.height)
	}

	contentHeight := m.height - statusHeight

	var overlay string
	switch {
	case m.confirm != nil:
		overlay = m.confirm.View()
	case m.nameInput != nil:
		overlay = m.nameInput.View()
	}
	if overlay != "" {
		body := lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, overlay)
		return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBar())
	}

	selectedName := ""
	if it, ok := m.ctrl.Selected(); ok {
		selectedName = it.Name
	}
	sidebar := m.form.View(m.ctrl.Greeting(), m.status, selectedName)
	sidebar = shared.FitHeight(sidebar, contentHeight)

	main := lipgloss.NewStyle().Width(m.width - m.form.Width()).Render(
		shared.FitHeight(m.renderMain(), contentHeight),
	)

	content := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)
	return lipgloss.JoinVertical(lipgloss.Left, content, m.renderStatusBar())
}

func (m AppModel) renderMain() string {
	p := m.palette
	var tabs []string
	for _, c := range data.Categories {
		label := fmt.Sprintf("%d %s (%d)", int(c)+1, c.Plural(), m.ctrl.Service().Count(c))
		if c == m.activeTab {
			tabs = append(tabs, p.TabActive().Render(label))
		} else {
			tabs = append(tabs, p.TabInactive().Render(label))
		}
	}

	var b strings.Builder
	b.WriteString(p.TabBar().Width(m.width - m.form.Width() - 1).Render(strings.Join(tabs, "   ")))
	b.WriteString("\n")
	if m.activeTab == data.CategoryGrade {
		b.WriteString(itemview.AverageHeader(p, m.ctrl.Average()))
		b.WriteString("\n\n")
	}
	b.WriteString(m.lists[m.activeTab].View())
	return b.String()
}

func (m AppModel) renderStatusBar() string {
	hints := itemview.Hints(m.form.Focused(), m.lists[m.activeTab].IsSearching())
	return m.palette.StatusBar().Width(m.width).Render(m.palette.Muted().Render(hints))
}

func helpSections() []shared.HelpSection {
	return []shared.HelpSection{
		{
			Title: "Lists",
			Binds: []shared.HelpBind{
				{Key: "1 / 2 / 3", Desc: "Assignments / Exams / Grades"},
				{Key: "tab / h / l", Desc: "Next / previous tab"},
				{Key: "j / k", Desc: "Move cursor"},
				{Key: "enter", Desc: "Select item for editing"},
				{Key: "/", Desc: "Fuzzy search names"},
			},
		},
		{
			Title: "Editing",
			Binds: []shared.HelpBind{
				{Key: "a / i", Desc: "Focus the form"},
				{Key: "enter", Desc: "Add item (in form)"},
				{Key: "ctrl+s / e", Desc: "Modify selected item"},
				{Key: "d / x", Desc: "Delete selected item"},
				{Key: "ctrl+k", Desc: "Cycle item type"},
				{Key: "n", Desc: "Set your name"},
			},
		},
		{
			Title: "General",
			Binds: []shared.HelpBind{
				{Key: "t", Desc: "Toggle light/dark"},
				{Key: "?", Desc: "Show this help"},
				{Key: "q / ctrl+c", Desc: "Quit"},
			},
		},
	}
}
