package memory

import (
	"context"
	"testing"
	"time"

	"crorepati-quiz-service/internal/domain"
)

func TestQuestionStoreListsInCreationOrder(t *testing.T) {
	ctx := context.Background()
	store := NewQuestionStore()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	newer := domain.Question{ID: "teacher-b", Text: "b", CreatedAt: base.Add(time.Hour)}
	older := domain.Question{ID: "teacher-a", Text: "a", CreatedAt: base}
	if err := store.Put(ctx, newer); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Put(ctx, older); err != nil {
		t.Fatalf("put: %v", err)
	}

	listed, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 || listed[0].ID != "teacher-a" || listed[1].ID != "teacher-b" {
		t.Fatalf("unexpected order: %+v", listed)
	}

	// same ID replaces the stored question
	newer.Text = "updated"
	if err := store.Put(ctx, newer); err != nil {
		t.Fatalf("replace: %v", err)
	}
	listed, _ = store.List(ctx)
	if len(listed) != 2 || listed[1].Text != "updated" {
		t.Fatalf("expected in-place update, got %+v", listed)
	}

	if err := store.Delete(ctx, "teacher-a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(ctx, "teacher-a"); err != nil {
		t.Fatalf("repeat delete must not fail: %v", err)
	}
	listed, _ = store.List(ctx)
	if len(listed) != 1 || listed[0].ID != "teacher-b" {
		t.Fatalf("unexpected questions after delete: %+v", listed)
	}
}

func TestSettingsStoreCopiesCustomAmounts(t *testing.T) {
	ctx := context.Background()
	store := NewSettingsStore(domain.Settings{DefaultTimeLimit: 30})

	saved := domain.Settings{DefaultTimeLimit: 45, CustomPrizeAmounts: []int64{300, 750}}
	if err := store.SaveSettings(ctx, saved); err != nil {
		t.Fatalf("save: %v", err)
	}
	saved.CustomPrizeAmounts[0] = 999

	loaded, err := store.Settings(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.DefaultTimeLimit != 45 || loaded.CustomPrizeAmounts[0] != 300 {
		t.Fatalf("caller mutation leaked into the store: %+v", loaded)
	}

	loaded.CustomPrizeAmounts[1] = 111
	again, _ := store.Settings(ctx)
	if again.CustomPrizeAmounts[1] != 750 {
		t.Fatalf("returned slice must be a copy, got %+v", again)
	}
}
