package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"masterfile/internal/client"
	"masterfile/internal/console"
	"masterfile/internal/domain/employee"
	"masterfile/internal/platform/config"
)

// Model is the terminal front end over the console controller. All record
// state lives in the controller; the model only holds widgets and layout.
// The controller is single-owner: every call to it happens inside Update on
// the event loop, and commands returned to bubbletea carry no shared state.
type Model struct {
	ctx        context.Context
	controller *console.Controller

	tbl    table.Model
	search textinput.Model
	detail viewport.Model
	input  textinput.Model
	styles Styles
	keymap KeyMap

	fieldNames []string
	formCursor int
	searching  bool

	note    *console.Notification
	noteSeq int

	termWidth  int
	termHeight int
}

type loadMsg struct{}

type noteExpiredMsg struct{ seq int }

func newModel(ctx context.Context) *Model {
	m := &Model{
		ctx:        ctx,
		styles:     NewStyles(),
		keymap:     DefaultKeyMap(),
		fieldNames: employee.FieldNames(),
	}

	m.search = textinput.New()
	m.search.Placeholder = "search any field"
	m.search.Prompt = "/"
	m.search.CharLimit = 128

	m.input = textinput.New()
	m.input.CharLimit = 256

	m.detail = viewport.New(80, 20)

	m.tbl = table.New(table.WithFocused(true), table.WithHeight(20))
	m.tbl.SetColumns(tableColumns())
	ts := table.DefaultStyles()
	ts.Selected = m.styles.Selected
	m.tbl.SetStyles(ts)

	return m
}

func tableColumns() []table.Column {
	return []table.Column{
		{Title: " ", Width: 2},
		{Title: "ID", Width: 10},
		{Title: "Name", Width: 26},
		{Title: "Department", Width: 16},
		{Title: "Position", Width: 18},
		{Title: "Hired", Width: 10},
		{Title: "Active", Width: 6},
	}
}

// Run connects the console to the backend and starts the program.
func Run(ctx context.Context, cfg config.Config) error {
	m := newModel(ctx)
	store := client.New(cfg.APIBaseURL, cfg.HTTPTimeout)
	m.controller = console.New(store, console.NotifierFunc(m.pushNote))

	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) pushNote(n console.Notification) {
	note := n
	m.note = &note
	m.noteSeq++
}

// noteCmd schedules dismissal of the currently shown notification. A newer
// notification bumps the sequence so stale timers are ignored.
func (m *Model) noteCmd() tea.Cmd {
	if m.note == nil {
		return nil
	}
	seq := m.noteSeq
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg { return noteExpiredMsg{seq: seq} })
}

func (m *Model) Init() tea.Cmd {
	return func() tea.Msg { return loadMsg{} }
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth, m.termHeight = msg.Width, msg.Height
		h := msg.Height - 4
		if h < 3 {
			h = 3
		}
		m.tbl.SetHeight(h)
		m.tbl.SetWidth(msg.Width)
		m.detail.Width = msg.Width - 10
		m.detail.Height = msg.Height - 8
		return m, nil

	case loadMsg:
		m.controller.Refresh(m.ctx)
		m.rebuildRows()
		return m, m.noteCmd()

	case noteExpiredMsg:
		if msg.seq == m.noteSeq {
			m.note = nil
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.controller.ConfirmingDelete {
		switch msg.String() {
		case "y", "enter":
			m.controller.ConfirmDelete(m.ctx)
			m.rebuildRows()
			return m, m.noteCmd()
		case "n", "esc":
			m.controller.CancelDelete()
		}
		return m, nil
	}

	if m.controller.FormVisible && m.controller.Form != nil {
		return m.handleFormKey(msg)
	}

	if m.controller.DetailVisible {
		switch msg.String() {
		case "esc", "q", "enter":
			m.controller.CloseDetail()
			return m, nil
		}
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	if m.searching {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			m.searching = false
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.controller.SetSearchTerm(m.search.Value())
		m.rebuildRows()
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Search):
		m.searching = true
		m.search.Focus()
		return m, nil

	case key.Matches(msg, m.keymap.Select):
		if id := m.cursorEmpID(); id != "" {
			m.controller.ToggleSelect(id)
			m.rebuildRows()
		}
		return m, nil

	case key.Matches(msg, m.keymap.Clear):
		m.controller.ClearSelection()
		m.rebuildRows()
		return m, nil

	case key.Matches(msg, m.keymap.Add):
		m.controller.Add()
		m.openForm()
		return m, nil

	case key.Matches(msg, m.keymap.Edit):
		m.controller.Edit()
		if m.controller.FormVisible {
			m.openForm()
		}
		return m, m.noteCmd()

	case key.Matches(msg, m.keymap.View):
		m.controller.View()
		if m.controller.DetailVisible && m.controller.Viewed != nil {
			m.detail.SetContent(m.renderDetailBody(*m.controller.Viewed))
			m.detail.GotoTop()
		}
		return m, m.noteCmd()

	case key.Matches(msg, m.keymap.Delete):
		m.controller.Delete()
		return m, m.noteCmd()

	case key.Matches(msg, m.keymap.Refresh):
		m.controller.Refresh(m.ctx)
		m.rebuildRows()
		return m, m.noteCmd()

	case key.Matches(msg, m.keymap.Export):
		m.controller.Download()
		return m, m.noteCmd()

	case key.Matches(msg, m.keymap.Sheet):
		m.controller.ExportSheet()
		return m, m.noteCmd()
	}

	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.controller.CloseForm()
		return m, nil

	case "up":
		m.saveField()
		if m.formCursor > 0 {
			m.formCursor--
		}
		m.loadField()
		return m, nil

	case "down", "enter", "tab":
		m.saveField()
		if m.formCursor < len(m.fieldNames)-1 {
			m.formCursor++
		}
		m.loadField()
		return m, nil

	case "ctrl+s":
		m.saveField()
		m.controller.SubmitForm(m.ctx)
		m.rebuildRows()
		if m.controller.FormVisible && m.controller.Form != nil {
			// a failed submit keeps the form open with input intact
			m.loadField()
		}
		return m, m.noteCmd()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) openForm() {
	m.formCursor = 0
	m.loadField()
}

func (m *Model) saveField() {
	if m.controller.Form == nil {
		return
	}
	m.controller.Form.Set(m.fieldNames[m.formCursor], m.input.Value())
}

func (m *Model) loadField() {
	if m.controller.Form == nil {
		return
	}
	m.input.SetValue(m.controller.Form.Values[m.fieldNames[m.formCursor]])
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *Model) cursorEmpID() string {
	idx := m.tbl.Cursor()
	if idx < 0 || idx >= len(m.controller.Filtered) {
		return ""
	}
	return m.controller.Filtered[idx].EmpID
}

func (m *Model) isSelected(empID string) bool {
	for _, id := range m.controller.Selection {
		if id == empID {
			return true
		}
	}
	return false
}

func (m *Model) rebuildRows() {
	rows := make([]table.Row, 0, len(m.controller.Filtered))
	for _, e := range m.controller.Filtered {
		marker := " "
		if m.isSelected(e.EmpID) {
			marker = "*"
		}
		name := strings.TrimSpace(e.LastName + ", " + e.FirstName)
		name = strings.TrimSuffix(name, ",")
		rows = append(rows, table.Row{
			marker,
			e.EmpID,
			name,
			e.Department,
			e.Position,
			employee.FormatDate(e.DateHired),
			employee.YesNo(e.Active),
		})
	}
	m.tbl.SetRows(rows)
	if n := len(rows); n > 0 && m.tbl.Cursor() >= n {
		m.tbl.SetCursor(n - 1)
	}
}

func (m *Model) View() string {
	if m.controller.ConfirmingDelete {
		return m.renderModal(m.renderConfirm())
	}
	if m.controller.FormVisible && m.controller.Form != nil {
		return m.renderModal(m.renderForm())
	}
	if m.controller.DetailVisible {
		return m.renderModal(m.renderDetail())
	}

	status := m.renderStatus()
	help := m.styles.Help.Render("a add  e edit  v view  d delete  space select  / search  r refresh  x csv  p pdf  q quit")

	if m.searching {
		return lipgloss.JoinVertical(lipgloss.Left, m.tbl.View(), m.search.View(), status, help)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.tbl.View(), status, help)
}

func (m *Model) renderStatus() string {
	if m.note != nil {
		line := m.note.Summary + ": " + m.note.Detail
		switch m.note.Severity {
		case console.SeveritySuccess:
			return m.styles.Success.Render(line)
		case console.SeverityWarning:
			return m.styles.Warn.Render(line)
		default:
			return m.styles.Error.Render(line)
		}
	}

	parts := fmt.Sprintf("%d/%d employees  %d selected", len(m.controller.Filtered), len(m.controller.Employees), len(m.controller.Selection))
	if m.controller.SearchTerm != "" {
		parts += fmt.Sprintf("  filter: %q", m.controller.SearchTerm)
	}
	if selected := m.controller.SelectedRecords(); len(selected) > 0 {
		if last := selected[len(selected)-1].LastUpdated; last != "" {
			parts += "  last updated: " + last
		}
	}
	return m.styles.Status.Render(parts)
}

func (m *Model) renderModal(content string) string {
	box := m.styles.ModalBox.Render(content)
	w, h := m.termWidth, m.termHeight
	if w <= 0 {
		w = 100
	}
	if h <= 0 {
		h = 30
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) renderConfirm() string {
	n := len(m.controller.Selection)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.ModalTitle.Render("Confirm Delete"),
		"",
		fmt.Sprintf("Delete %d selected employee(s)?", n),
		"",
		m.styles.Help.Render("y confirm  n cancel"),
	)
}

func (m *Model) renderForm() string {
	title := "New Employee"
	if m.controller.Form.Mode == console.FormEdit {
		title = "Edit Employee " + m.controller.Form.EmpID()
	}

	visible := m.termHeight - 10
	if visible < 8 {
		visible = 8
	}
	start := m.formCursor - visible/2
	if start > len(m.fieldNames)-visible {
		start = len(m.fieldNames) - visible
	}
	if start < 0 {
		start = 0
	}
	end := start + visible
	if end > len(m.fieldNames) {
		end = len(m.fieldNames)
	}

	lines := make([]string, 0, end-start+4)
	lines = append(lines, m.styles.ModalTitle.Render(title), "")
	for i := start; i < end; i++ {
		name := m.fieldNames[i]
		label := m.styles.Label.Render(name)
		if i == m.formCursor {
			lines = append(lines, m.styles.Cursor.Render("> ")+label+m.input.View())
			continue
		}
		lines = append(lines, "  "+label+m.controller.Form.Values[name])
	}
	lines = append(lines, "", m.styles.Help.Render("enter/tab next  up/down move  ctrl+s save  esc cancel"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderDetail() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.ModalTitle.Render("Employee Details"),
		"",
		m.detail.View(),
		"",
		m.styles.Help.Render("esc close"),
	)
}

func (m *Model) renderDetailBody(e employee.Employee) string {
	var b strings.Builder
	for _, section := range employee.DetailSections(e) {
		b.WriteString(m.styles.Section.Render(section.Title))
		b.WriteString("\n")
		for _, field := range section.Fields {
			b.WriteString(m.styles.Label.Render(field.Label))
			b.WriteString(field.Value)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
