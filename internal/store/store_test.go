package store

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *TaskStore {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := RunMigrationsWithDB(db, "migrations"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewTaskStore(db)
}

func TestAddAndList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.Add(ctx, "water plants", "garden")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.Add(ctx, "file taxes", ""); err != nil {
		t.Fatalf("add: %v", err)
	}

	tasks, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("tasks = %d, want 2", len(tasks))
	}
	if tasks[0].Title != "water plants" && tasks[1].Title != "water plants" {
		t.Fatalf("added task missing from list: %+v", tasks)
	}
	if len(first.ID) == 0 {
		t.Fatalf("expected generated id")
	}
}

func TestRenameCategoryToggleDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	task, err := s.Add(ctx, "draft", "")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Rename(ctx, task.ID, "draft v2"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if err := s.SetCategory(ctx, task.ID, "writing"); err != nil {
		t.Fatalf("set category: %v", err)
	}
	if err := s.Toggle(ctx, task.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	tasks, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	got := tasks[0]
	if got.Title != "draft v2" || got.Category != "writing" || !got.Done {
		t.Fatalf("task = %+v, want renamed/categorized/done", got)
	}

	cats, err := s.Categories(ctx)
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(cats) != 1 || cats[0] != "writing" {
		t.Fatalf("categories = %v, want [writing]", cats)
	}

	if err := s.Delete(ctx, task.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	tasks, _ = s.List(ctx)
	if len(tasks) != 0 {
		t.Fatalf("tasks after delete = %d, want 0", len(tasks))
	}
}
