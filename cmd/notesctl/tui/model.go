// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quickly-notes/notebook"
)

// Mode is what the screen is currently doing
type Mode int

const (
	ModeBrowse Mode = iota
	ModeNoteForm
	ModeProjectForm
	ModeConfirmDelete
)

type pane int

const (
	paneProjects pane = iota
	paneNotes
)

// Messages
type settledMsg struct {
	settle notebook.Settle
	// next runs after a successful settle
	next   func() notebook.Task
}

type tickMsg time.Time

// Model is the Bubbletea model of the interactive notebook
type Model struct {
	ctrl    *notebook.Controller
	ctx     context.Context
	timeout time.Duration

	mode     Mode
	pane     pane
	projects list.Model
	notes    list.Model

	// Note form
	editing     int64 // 0 creates a new note
	titleInput  textinput.Model
	contentArea textarea.Model
	formFocus   int
	formErrs    notebook.FormErrors

	// Project form
	projectInput    textinput.Model
	renamingProject int64

	pending int
	width   int
	height  int
	now     func() time.Time
}

// NewModel creates the notebook UI over ctrl
func NewModel(ctx context.Context, ctrl *notebook.Controller, timeout time.Duration) Model {
	projects := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	projects.Title = "Projects"
	projects.SetShowHelp(false)
	projects.SetShowStatusBar(false)
	projects.Styles.Title = titleStyle

	notes := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	notes.Title = "Notes"
	notes.SetShowHelp(false)
	notes.SetStatusBarItemName("note", "notes")
	notes.Styles.Title = titleStyle

	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.CharLimit = 200

	ta := textarea.New()
	ta.Placeholder = "Content"
	ta.SetHeight(8)

	pi := textinput.New()
	pi.Placeholder = "Project name"
	pi.CharLimit = 100

	return Model{
		ctrl:         ctrl,
		ctx:          ctx,
		timeout:      timeout,
		projects:     projects,
		notes:        notes,
		titleInput:   ti,
		contentArea:  ta,
		projectInput: pi,
		now:          time.Now,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.run(m.ctrl.Refresh()), tick())
}

// Mode reports the current screen
func (m Model) Mode() Mode {
	return m.mode
}

// run sends the network half of a task off the UI goroutine; the result
// comes back as a settledMsg
func (m *Model) run(task notebook.Task) tea.Cmd {
	return m.runThen(task, nil)
}

func (m *Model) runThen(task notebook.Task, next func() notebook.Task) tea.Cmd {
	if task == nil {
		return nil
	}
	m.pending++

	ctx, timeout := m.ctx, m.timeout
	return func() tea.Msg {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return settledMsg{settle: task(ctx), next: next}
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case settledMsg:
		m.pending--
		// Failures are recorded in ctrl.Err
		if err := msg.settle(); err == nil && msg.next != nil {
			cmd := m.run(msg.next())
			return m, tea.Batch(m.sync(), cmd)
		}
		return m, m.sync()

	case tickMsg:
		return m, tick()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case ModeNoteForm:
			return m.updateNoteForm(msg)
		case ModeProjectForm:
			return m.updateProjectForm(msg)
		case ModeConfirmDelete:
			return m.updateConfirm(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	return m.forward(msg)
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Let an active filter have every key
	if m.activeList().FilterState() == list.Filtering {
		return m.forward(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab", "shift+tab":
		if m.pane == paneProjects {
			m.pane = paneNotes
		} else {
			m.pane = paneProjects
		}
		return m, nil
	case "x":
		m.ctrl.DismissError()
		return m, nil
	case "r":
		return m, m.run(m.ctrl.Refresh())
	case "p":
		m.openProjectForm(0, "")
		return m, textinput.Blink
	}

	if m.pane == paneProjects {
		item, ok := m.projects.SelectedItem().(projectItem)
		switch msg.String() {
		case "enter":
			if ok {
				return m, m.run(m.ctrl.SelectProject(item.project.ID))
			}
			return m, nil
		case "R":
			if ok {
				m.openProjectForm(item.project.ID, item.project.Name)
				return m, textinput.Blink
			}
			return m, nil
		case "D":
			if ok {
				m.mode = ModeConfirmDelete
			}
			return m, nil
		}
	} else {
		item, ok := m.notes.SelectedItem().(noteItem)
		switch msg.String() {
		case "n":
			m.openNoteForm(0, "", "")
			return m, textinput.Blink
		case "enter", "e":
			if ok && item.note.ID > 0 {
				m.openNoteForm(item.note.ID, item.note.Title, item.note.Content)
				return m, textinput.Blink
			}
			return m, nil
		case "d":
			if ok && item.note.ID > 0 {
				cmd := m.run(m.ctrl.RemoveNote(item.note.ID))
				return m, tea.Batch(cmd, m.sync())
			}
			return m, nil
		}
	}

	return m.forward(msg)
}

func (m Model) updateNoteForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeForms()
		return m, nil
	case "tab", "shift+tab":
		m.formFocus = 1 - m.formFocus
		m.focusForm()
		return m, nil
	case "ctrl+s":
		return m.submitNote()
	case "enter":
		if m.formFocus == 0 {
			return m.submitNote()
		}
	}

	var cmd tea.Cmd
	if m.formFocus == 0 {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.contentArea, cmd = m.contentArea.Update(msg)
	}
	return m, cmd
}

func (m Model) submitNote() (tea.Model, tea.Cmd) {
	title := m.titleInput.Value()
	content := m.contentArea.Value()

	var (
		task notebook.Task
		errs notebook.FormErrors
	)
	if m.editing == 0 {
		task, errs = m.ctrl.AddNote(title, content)
	} else {
		task, errs = m.ctrl.EditNote(m.editing, title, content)
	}

	m.formErrs = errs
	if !errs.OK() {
		return m, nil
	}

	m.closeForms()
	cmd := m.run(task)
	return m, tea.Batch(cmd, m.sync())
}

func (m Model) updateProjectForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeForms()
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.projectInput.Value())
		if name == "" {
			return m, nil
		}
		var task notebook.Task
		if m.renamingProject == 0 {
			task = m.ctrl.AddProject(name)
		} else {
			task = m.ctrl.RenameProject(m.renamingProject, name)
		}
		m.closeForms()
		return m, m.run(task)
	}

	var cmd tea.Cmd
	m.projectInput, cmd = m.projectInput.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = ModeBrowse
	if msg.String() != "y" {
		return m, nil
	}
	item, ok := m.projects.SelectedItem().(projectItem)
	if !ok {
		return m, nil
	}

	// Reload afterwards so another project gets selected
	return m, m.runThen(m.ctrl.RemoveProject(item.project.ID), m.ctrl.Refresh)
}

func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.pane == paneProjects {
		m.projects, cmd = m.projects.Update(msg)
	} else {
		m.notes, cmd = m.notes.Update(msg)
	}
	return m, cmd
}

func (m *Model) activeList() *list.Model {
	if m.pane == paneProjects {
		return &m.projects
	}
	return &m.notes
}

// sync copies the notebook state into the lists
func (m *Model) sync() tea.Cmd {
	st := m.ctrl.State
	return tea.Batch(
		m.projects.SetItems(projectItems(st.Projects, st.SelectedProject)),
		m.notes.SetItems(noteItems(st.Notes)),
	)
}

func (m *Model) openNoteForm(id int64, title, content string) {
	m.mode = ModeNoteForm
	m.editing = id
	m.formErrs = notebook.FormErrors{}
	m.titleInput.SetValue(title)
	m.contentArea.SetValue(content)
	m.formFocus = 0
	m.focusForm()
}

func (m *Model) openProjectForm(id int64, name string) {
	m.mode = ModeProjectForm
	m.renamingProject = id
	m.projectInput.SetValue(name)
	m.projectInput.Focus()
}

func (m *Model) focusForm() {
	if m.formFocus == 0 {
		m.titleInput.Focus()
		m.contentArea.Blur()
	} else {
		m.titleInput.Blur()
		m.contentArea.Focus()
	}
}

func (m *Model) closeForms() {
	m.mode = ModeBrowse
	m.titleInput.Reset()
	m.titleInput.Blur()
	m.contentArea.Reset()
	m.contentArea.Blur()
	m.projectInput.Reset()
	m.projectInput.Blur()
}

func (m *Model) resize() {
	left := m.width / 3
	right := m.width - left - 4
	listHeight := m.height - 8
	if listHeight < 5 {
		listHeight = 5
	}

	m.projects.SetSize(left-4, listHeight)
	m.notes.SetSize(right-4, listHeight)
	m.titleInput.Width = right - 6
	m.contentArea.SetWidth(right - 6)
}

// View renders the notebook
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Quickly Notes"))
	b.WriteString("  ")
	b.WriteString(m.statusLine())
	b.WriteString("\n")

	if m.ctrl.Err != "" {
		b.WriteString(errorStyle.Render(m.ctrl.Err + "  " + FormatKey("x", "dismiss")))
		b.WriteString("\n")
	}

	left := boxStyle
	right := boxStyle
	if m.pane == paneProjects {
		left = activeBoxStyle
	} else {
		right = activeBoxStyle
	}

	var main string
	switch m.mode {
	case ModeNoteForm:
		main = activeBoxStyle.Render(m.noteFormView())
	case ModeProjectForm:
		main = activeBoxStyle.Render(m.projectFormView())
	case ModeConfirmDelete:
		main = errorStyle.Render(m.confirmView())
	default:
		main = right.Render(m.notes.View())
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left.Render(m.projects.View()), main))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpLine()))

	return b.String()
}

func (m Model) statusLine() string {
	if m.pending > 0 {
		return pendingStyle.Render("syncing…")
	}
	synced := m.ctrl.State.LastSynced
	if synced.IsZero() {
		return mutedStyle.Render("not synced")
	}
	return syncedStyle.Render("synced " + humanize.RelTime(synced, m.now(), "ago", "from now"))
}

func (m Model) noteFormView() string {
	var b strings.Builder

	heading := "New note"
	if m.editing != 0 {
		heading = "Edit note"
	}
	b.WriteString(titleStyle.Render(heading))
	b.WriteString("\n\n")
	b.WriteString(m.titleInput.View())
	b.WriteString("\n")
	if m.formErrs.Title != "" {
		b.WriteString(fieldErrorStyle.Render(m.formErrs.Title))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.contentArea.View())
	b.WriteString("\n")
	if m.formErrs.Content != "" {
		b.WriteString(fieldErrorStyle.Render(m.formErrs.Content))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) projectFormView() string {
	heading := "New project"
	if m.renamingProject != 0 {
		heading = "Rename project"
	}
	return titleStyle.Render(heading) + "\n\n" + m.projectInput.View()
}

func (m Model) confirmView() string {
	item, _ := m.projects.SelectedItem().(projectItem)
	return "Delete project " + item.project.Name + " and all of its notes?\n\n" +
		FormatKey("y", "delete") + " • " + FormatKey("any other key", "cancel")
}

func (m Model) helpLine() string {
	switch m.mode {
	case ModeNoteForm:
		return FormatKey("tab", "switch field") + " • " + FormatKey("ctrl+s", "save") + " • " + FormatKey("esc", "cancel")
	case ModeProjectForm:
		return FormatKey("enter", "save") + " • " + FormatKey("esc", "cancel")
	case ModeConfirmDelete:
		return ""
	}

	keys := []string{FormatKey("tab", "switch pane")}
	if m.pane == paneProjects {
		keys = append(keys, FormatKey("enter", "open"), FormatKey("p", "new"), FormatKey("R", "rename"), FormatKey("D", "delete"))
	} else {
		keys = append(keys, FormatKey("n", "new"), FormatKey("e", "edit"), FormatKey("d", "delete"), FormatKey("/", "filter"))
	}
	keys = append(keys, FormatKey("r", "refresh"), FormatKey("q", "quit"))
	return strings.Join(keys, " • ")
}

// Run starts the interactive notebook
func Run(ctx context.Context, ctrl *notebook.Controller, timeout time.Duration) error {
	p := tea.NewProgram(NewModel(ctx, ctrl, timeout), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
