package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/modalkit/internal/config"
	"github.com/jask/modalkit/internal/store"
	"github.com/jask/modalkit/modal/components"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := store.RunMigrationsWithDB(db, filepath.Join("..", "store", "migrations")); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	cfg := config.Config{UI: config.UIConfig{Cascade: true}}
	a := New(context.Background(), cfg, store.NewTaskStore(db))
	drive(t, a, a.Init()())
	return a
}

// drive feeds msg and every message produced by the resulting commands back
// into the model until the machine settles. Cursor blink messages are
// dropped so the pump terminates.
func drive(t *testing.T, a *App, msg tea.Msg) {
	t.Helper()
	queue := []tea.Msg{msg}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 100 {
			t.Fatalf("update loop did not settle")
		}
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		if _, ok := next.(cursor.BlinkMsg); ok {
			continue
		}
		_, cmd := a.Update(next)
		queue = append(queue, expand(cmd)...)
	}
}

func expand(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, expand(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func pressKey(t *testing.T, a *App, k tea.KeyMsg) {
	t.Helper()
	drive(t, a, k)
}

func typeRunes(t *testing.T, a *App, s string) {
	t.Helper()
	drive(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestAddTaskThroughInputModal(t *testing.T) {
	a := newTestApp(t)

	pressKey(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	if !a.modals.Active() {
		t.Fatalf("expected input modal on stack")
	}
	if a.status != "1 modal(s) open" {
		t.Fatalf("status = %q", a.status)
	}

	typeRunes(t, a, "water plants")
	pressKey(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	if a.modals.Active() {
		t.Fatalf("modal still active after enter")
	}
	if len(a.list) != 1 || a.list[0].Title != "water plants" {
		t.Fatalf("list = %+v, want the added task", a.list)
	}
	if a.status != "Ready" {
		t.Fatalf("status = %q, want Ready after aggregate change", a.status)
	}
}

func TestDeleteConfirmRespectsResult(t *testing.T) {
	a := newTestApp(t)
	if _, err := a.tasks.Add(a.ctx, "keep me", ""); err != nil {
		t.Fatalf("seed: %v", err)
	}
	drive(t, a, a.loadTasks()())

	// esc resolves the confirm to false, the task stays
	pressKey(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	pressKey(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	if len(a.list) != 1 {
		t.Fatalf("list = %+v, want task kept", a.list)
	}

	// enter accepts the default Yes, the task goes
	pressKey(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	pressKey(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	if len(a.list) != 0 {
		t.Fatalf("list = %+v, want empty after confirmed delete", a.list)
	}
}

func TestRenameThroughInputModal(t *testing.T) {
	a := newTestApp(t)
	if _, err := a.tasks.Add(a.ctx, "draft", ""); err != nil {
		t.Fatalf("seed: %v", err)
	}
	drive(t, a, a.loadTasks()())

	pressKey(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	typeRunes(t, a, " v2")
	pressKey(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	if len(a.list) != 1 || a.list[0].Title != "draft v2" {
		t.Fatalf("list = %+v, want renamed task", a.list)
	}
}

func TestModalsStack(t *testing.T) {
	a := newTestApp(t)
	if _, err := a.tasks.Add(a.ctx, "task", ""); err != nil {
		t.Fatalf("seed: %v", err)
	}
	drive(t, a, a.loadTasks()())

	pressKey(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	// stack a confirm over the rename input through the manager API
	drive(t, a, expandOne(a.open("delete", a.list[0].ID, components.NewConfirm("Delete task", "sure?"), nil)))
	if a.modals.Len() != 2 {
		t.Fatalf("stack len = %d, want 2", a.modals.Len())
	}

	view := a.View()
	if !strings.Contains(view, "Delete task") {
		t.Fatalf("top modal missing from view")
	}
	// the cascade keeps the lower card's border corner visible
	if got := strings.Count(view, "╭"); got != 2 {
		t.Fatalf("visible card corners = %d, want 2", got)
	}

	// esc dismisses only the top modal
	pressKey(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.modals.Len() != 1 {
		t.Fatalf("stack len = %d, want 1 after top dismissal", a.modals.Len())
	}
	if len(a.list) != 1 {
		t.Fatalf("cancelled confirm mutated the store: %+v", a.list)
	}
}

func TestViewWithoutModals(t *testing.T) {
	a := newTestApp(t)
	view := a.View()
	if !strings.Contains(view, "modaldemo") {
		t.Fatalf("header missing")
	}
	if !strings.Contains(view, "No tasks") {
		t.Fatalf("empty state missing")
	}
}

func expandOne(cmd tea.Cmd) tea.Msg {
	msgs := expand(cmd)
	if len(msgs) == 0 {
		return nil
	}
	return msgs[0]
}
