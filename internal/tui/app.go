package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/modalkit/internal/config"
	"github.com/jask/modalkit/internal/store"
	"github.com/jask/modalkit/modal"
	"github.com/jask/modalkit/modal/components"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	doneStyle   = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("241"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

type tasksLoadedMsg struct {
	tasks []store.Task
	err   error
}

type mutatedMsg struct{ err error }

// pendingAction links a live modal id to what its result should do.
type pendingAction struct {
	kind   string
	taskID string
}

// App is the demo model. It owns the modal manager and a task store and
// opens a modal for every mutation: add/rename use Input, category uses
// Picker, delete uses Confirm.
type App struct {
	ctx     context.Context
	cfg     config.Config
	tasks   *store.TaskStore
	modals  *modal.Manager
	list    []store.Task
	pending map[string]pendingAction
	cursor  int
	status  string
	width   int
	height  int
	quit    bool
}

func New(ctx context.Context, cfg config.Config, tasks *store.TaskStore) *App {
	return &App{
		ctx:     ctx,
		cfg:     cfg,
		tasks:   tasks,
		modals:  modal.NewManager(),
		pending: make(map[string]pendingAction),
		status:  "Ready",
		width:   100,
		height:  32,
	}
}

func (a *App) Init() tea.Cmd {
	a.modals.Mount()
	return a.loadTasks()
}

func (a *App) loadTasks() tea.Cmd {
	return func() tea.Msg {
		tasks, err := a.tasks.List(a.ctx)
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil

	case tasksLoadedMsg:
		if msg.err != nil {
			a.status = "error: " + msg.err.Error()
			return a, nil
		}
		a.list = msg.tasks
		if a.cursor >= len(a.list) {
			a.cursor = maxInt(0, len(a.list)-1)
		}
		return a, nil

	case mutatedMsg:
		if msg.err != nil {
			a.status = "error: " + msg.err.Error()
			return a, nil
		}
		return a, a.loadTasks()

	case modal.DismissMsg:
		return a, a.modals.Update(msg)

	case modal.CreatedMsg:
		_, cmd := a.modals.Present()
		return a, cmd

	case modal.DismissedMsg:
		return a, a.applyResult(msg)

	case modal.ActiveChangedMsg:
		if !msg.Active {
			a.status = "Ready"
		}
		return a, nil

	case tea.KeyMsg:
		if a.modals.Active() {
			return a, a.modals.Update(msg)
		}
		return a, a.handleKey(msg)
	}
	return a, a.modals.Update(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		a.quit = true
		return tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.list)-1 {
			a.cursor++
		}
	case "a":
		return a.open("add", "", components.NewInput("New task"), modal.Props{"placeholder": "title"})
	case "r":
		if t, ok := a.current(); ok {
			return a.open("rename", t.ID, components.NewInput("Rename task"), modal.Props{"value": t.Title})
		}
	case "c":
		if t, ok := a.current(); ok {
			return a.openCategoryPicker(t)
		}
	case "d":
		if t, ok := a.current(); ok {
			msg := fmt.Sprintf("Delete %q?", t.Title)
			return a.open("delete", t.ID, components.NewConfirm("Delete task", msg), nil)
		}
	case "x":
		if t, ok := a.current(); ok {
			return a.mutate(func() error { return a.tasks.Toggle(a.ctx, t.ID) })
		}
	}
	return nil
}

// open creates a modal and records which action its dismissal result feeds.
func (a *App) open(kind, taskID string, comp modal.Component, props modal.Props) tea.Cmd {
	_, cmd := a.modals.Create(comp, props)
	ids := a.modals.IDs()
	if len(ids) > 0 {
		a.pending[ids[len(ids)-1]] = pendingAction{kind: kind, taskID: taskID}
	}
	a.status = fmt.Sprintf("%d modal(s) open", a.modals.Len())
	return cmd
}

func (a *App) openCategoryPicker(t store.Task) tea.Cmd {
	cats, err := a.tasks.Categories(a.ctx)
	if err != nil {
		a.status = "error: " + err.Error()
		return nil
	}
	items := make([]components.Item, 0, len(cats)+1)
	for _, c := range cats {
		items = append(items, components.Item{ID: c, Label: c})
	}
	items = append(items, components.Item{ID: "", Label: "(none)"})
	return a.open("category", t.ID, components.NewPicker("Category", items), nil)
}

// applyResult consumes a dismissal notification: looks up the pending action
// for the modal id and turns the carried result into a store mutation.
func (a *App) applyResult(msg modal.DismissedMsg) tea.Cmd {
	act, ok := a.pending[msg.ID]
	if !ok {
		return nil
	}
	delete(a.pending, msg.ID)

	switch act.kind {
	case "add":
		title, ok := msg.Result.(string)
		if !ok || title == "" {
			return nil
		}
		return a.mutate(func() error {
			_, err := a.tasks.Add(a.ctx, title, "")
			return err
		})
	case "rename":
		title, ok := msg.Result.(string)
		if !ok || title == "" {
			return nil
		}
		return a.mutate(func() error { return a.tasks.Rename(a.ctx, act.taskID, title) })
	case "category":
		item, ok := msg.Result.(components.Item)
		if !ok {
			return nil
		}
		return a.mutate(func() error { return a.tasks.SetCategory(a.ctx, act.taskID, item.ID) })
	case "delete":
		if confirmed, _ := msg.Result.(bool); confirmed {
			return a.mutate(func() error { return a.tasks.Delete(a.ctx, act.taskID) })
		}
	}
	return nil
}

func (a *App) mutate(fn func() error) tea.Cmd {
	return func() tea.Msg { return mutatedMsg{err: fn()} }
}

func (a *App) current() (store.Task, bool) {
	if a.cursor < 0 || a.cursor >= len(a.list) {
		return store.Task{}, false
	}
	return a.list[a.cursor], true
}

// Modals exposes the manager so a parent model could stack its own modals.
func (a *App) Modals() *modal.Manager { return a.modals }

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
