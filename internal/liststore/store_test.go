package liststore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/deskpin/deskpin/internal/mirror"
	"github.com/deskpin/deskpin/internal/model"
)

// memPersister is an in-memory Persister with injectable save failures.
type memPersister struct {
	mu      sync.Mutex
	values  map[string]string
	saves   int
	saveErr error
}

func newMemPersister() *memPersister {
	return &memPersister{values: make(map[string]string)}
}

func (p *memPersister) Load(key string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.values[key], nil
}

func (p *memPersister) Save(key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.saveErr != nil {
		return p.saveErr
	}
	p.saves++
	p.values[key] = value
	return nil
}

func (p *memPersister) saveCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.saves
}

// erringMirror fails every call with the configured error.
type erringMirror struct {
	err error
}

func (m *erringMirror) GetAll(ctx context.Context, kind model.ItemKind) ([]model.Item, error) {
	return nil, m.err
}

func (m *erringMirror) Add(ctx context.Context, kind model.ItemKind, draft model.Draft, snapshot []model.Item) (mirror.AddResult, error) {
	return mirror.AddResult{}, m.err
}

func (m *erringMirror) Delete(ctx context.Context, kind model.ItemKind, id string, snapshot []model.Item) ([]model.Item, error) {
	return nil, m.err
}

func (m *erringMirror) Update(ctx context.Context, kind model.ItemKind, id string, patch model.ItemPatch, snapshot []model.Item) ([]model.Item, error) {
	return nil, m.err
}

func (m *erringMirror) ClearAll(ctx context.Context, kind model.ItemKind) ([]model.Item, error) {
	return nil, m.err
}

// seedPersisted writes a list document for the store's kind and loads it.
func seedPersisted(t *testing.T, store *Store, persister *memPersister, texts ...string) {
	t.Helper()

	items := make([]model.Item, len(texts))
	for i, text := range texts {
		items[i] = model.Item{ID: fmt.Sprintf("id-%d", i), Text: text, CreatedAt: int64(i)}
	}
	data, err := json.Marshal(items)
	if err != nil {
		t.Fatalf("Failed to marshal seed items: %v", err)
	}
	persister.values[store.Kind().StorageKey()] = string(data)
	store.Load(context.Background())
}

func TestStore_LoadPrefersPersisted(t *testing.T) {
	persister := newMemPersister()
	store := New(model.KindTask, mirror.NewStore(), persister)

	renders := 0
	store.SetOnChange(func([]model.Item) { renders++ })

	seedPersisted(t, store, persister, "persisted a", "persisted b")

	items := store.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items after Load, got %d", len(items))
	}
	if items[0].Text != "persisted a" || items[1].Text != "persisted b" {
		t.Errorf("loaded order = [%s, %s], expected persisted order", items[0].Text, items[1].Text)
	}
	if renders != 1 {
		t.Errorf("Load fired %d renders, expected 1", renders)
	}
}

func TestStore_LoadFallsBackToMirror(t *testing.T) {
	ctx := context.Background()

	authoritative := mirror.NewStore()
	result, err := authoritative.Add(ctx, model.KindClipboard, model.Draft{Text: "from mirror"}, nil)
	if err != nil {
		t.Fatalf("mirror Add() returned error: %v", err)
	}

	tests := []struct {
		name      string
		persisted string
	}{
		{"empty document", ""},
		{"invalid document", "{not json"},
	}

	for _, test := range tests {
		persister := newMemPersister()
		if test.persisted != "" {
			persister.values[model.KindClipboard.StorageKey()] = test.persisted
		}
		store := New(model.KindClipboard, authoritative, persister)
		store.Load(ctx)

		items := store.Items()
		if len(items) != 1 || items[0].ID != result.Saved.ID {
			t.Errorf("%s: Load did not adopt mirror list, got %d items", test.name, len(items))
		}
	}
}

func TestStore_LoadNeverFailsOutward(t *testing.T) {
	persister := newMemPersister()
	store := New(model.KindTask, &erringMirror{err: errors.New("mirror down")}, persister)

	renders := 0
	store.SetOnChange(func([]model.Item) { renders++ })

	store.Load(context.Background())

	if len(store.Items()) != 0 {
		t.Errorf("snapshot after failed Load has %d items, expected 0", len(store.Items()))
	}
	if renders != 1 {
		t.Errorf("failed Load fired %d renders, expected 1", renders)
	}
}

func TestStore_AddAdoptsMirrorReply(t *testing.T) {
	persister := newMemPersister()
	store := New(model.KindClipboard, mirror.NewStore(), persister)

	renders := 0
	store.SetOnChange(func([]model.Item) { renders++ })

	outcome, err := store.Add(context.Background(), model.Draft{Text: "copied"})
	if err != nil {
		t.Fatalf("Add() returned error: %v", err)
	}
	if outcome.Duplicate {
		t.Error("first Add() reported duplicate")
	}
	if outcome.Item.ID == "" {
		t.Error("Add() outcome has empty item ID")
	}

	items := store.Items()
	if len(items) != 1 || items[0].Text != "copied" {
		t.Fatalf("snapshot after Add = %+v, expected single %q item", items, "copied")
	}
	if persister.saveCount() != 1 {
		t.Errorf("Add() persisted %d times, expected 1", persister.saveCount())
	}
	if renders != 1 {
		t.Errorf("Add() fired %d renders, expected 1", renders)
	}
}

func TestStore_AddDuplicateKeepsSnapshot(t *testing.T) {
	persister := newMemPersister()
	store := New(model.KindClipboard, mirror.NewStore(), persister)
	ctx := context.Background()

	first, err := store.Add(ctx, model.Draft{Text: "same"})
	if err != nil {
		t.Fatalf("Add() returned error: %v", err)
	}

	second, err := store.Add(ctx, model.Draft{Text: "same"})
	if err != nil {
		t.Fatalf("duplicate Add() returned error: %v", err)
	}
	if !second.Duplicate {
		t.Error("expected Duplicate=true on second identical add")
	}
	if second.Item.ID != first.Item.ID {
		t.Errorf("duplicate reported ID %s, expected existing %s", second.Item.ID, first.Item.ID)
	}
	if len(store.Items()) != 1 {
		t.Errorf("duplicate add changed snapshot length to %d, expected 1", len(store.Items()))
	}
	if persister.saveCount() != 1 {
		t.Errorf("duplicate add persisted, save count %d, expected 1", persister.saveCount())
	}
}

func TestStore_RapidAddsBothLand(t *testing.T) {
	store := New(model.KindClipboard, mirror.NewStore(), newMemPersister())
	ctx := context.Background()

	var wg sync.WaitGroup
	for _, text := range []string{"first", "second"} {
		wg.Add(1)
		go func(text string) {
			defer wg.Done()
			if _, err := store.Add(ctx, model.Draft{Text: text}); err != nil {
				t.Errorf("Add(%q) returned error: %v", text, err)
			}
		}(text)
	}
	wg.Wait()

	items := store.Items()
	if len(items) != 2 {
		t.Fatalf("expected both rapid adds to land, got %d items", len(items))
	}
	if items[0].ID == items[1].ID {
		t.Errorf("rapid adds produced duplicate ID %s", items[0].ID)
	}
	texts := map[string]bool{items[0].Text: true, items[1].Text: true}
	if !texts["first"] || !texts["second"] {
		t.Errorf("rapid adds lost an update, texts = %v", texts)
	}
}

func TestStore_MirrorFailureLeavesSnapshot(t *testing.T) {
	persister := newMemPersister()
	store := New(model.KindTask, &erringMirror{err: errors.New("mirror down")}, persister)
	seedPersisted(t, store, persister, "keep me")

	var notified error
	store.SetOnError(func(err error) { notified = err })

	before := store.Items()
	savesBefore := persister.saveCount()

	if _, err := store.Add(context.Background(), model.Draft{Text: "new"}); err == nil {
		t.Error("Add() with failing mirror returned nil error")
	}
	if err := store.Delete(context.Background(), "id-0"); err == nil {
		t.Error("Delete() with failing mirror returned nil error")
	}
	if err := store.ClearAll(context.Background()); err == nil {
		t.Error("ClearAll() with failing mirror returned nil error")
	}

	after := store.Items()
	if len(after) != len(before) || after[0].Text != "keep me" {
		t.Errorf("snapshot changed after mirror failures: %+v", after)
	}
	if persister.saveCount() != savesBefore {
		t.Error("mirror failure still persisted a write")
	}
	if notified == nil {
		t.Error("error callback was not fired")
	}
}

func TestStore_PersistFailureLoggedOnly(t *testing.T) {
	persister := newMemPersister()
	persister.saveErr = errors.New("disk full")
	store := New(model.KindClipboard, mirror.NewStore(), persister)

	renders := 0
	store.SetOnChange(func([]model.Item) { renders++ })

	if _, err := store.Add(context.Background(), model.Draft{Text: "survives"}); err != nil {
		t.Fatalf("Add() failed on persist error: %v", err)
	}
	if len(store.Items()) != 1 {
		t.Errorf("snapshot has %d items, expected in-memory add to survive persist failure", len(store.Items()))
	}
	if renders != 1 {
		t.Errorf("render fired %d times, expected 1 despite persist failure", renders)
	}
}

func TestStore_ReorderMovesItem(t *testing.T) {
	persister := newMemPersister()
	store := New(model.KindTask, mirror.NewStore(), persister)
	seedPersisted(t, store, persister, "0", "1", "2", "3", "4")

	store.Reorder(0, 3)

	expected := []string{"1", "2", "3", "0", "4"}
	items := store.Items()
	for i, want := range expected {
		if items[i].Text != want {
			t.Fatalf("order after Reorder(0,3) = %v, expected %v", itemTexts(items), expected)
		}
	}
	if persister.saveCount() != 1 {
		t.Errorf("Reorder persisted %d times, expected 1", persister.saveCount())
	}

	// The persisted document carries the new order too
	var persisted []model.Item
	if err := json.Unmarshal([]byte(persister.values[model.KindTask.StorageKey()]), &persisted); err != nil {
		t.Fatalf("Failed to decode persisted document: %v", err)
	}
	if persisted[3].Text != "0" {
		t.Errorf("persisted order = %v, expected %v", itemTexts(persisted), expected)
	}
}

func TestStore_ReorderSameIndexIsNoOp(t *testing.T) {
	persister := newMemPersister()
	store := New(model.KindTask, mirror.NewStore(), persister)
	seedPersisted(t, store, persister, "a", "b", "c")

	renders := 0
	store.SetOnChange(func([]model.Item) { renders++ })

	store.Reorder(1, 1)

	items := store.Items()
	if items[0].Text != "a" || items[1].Text != "b" || items[2].Text != "c" {
		t.Errorf("Reorder(1,1) changed order to %v", itemTexts(items))
	}
	if persister.saveCount() != 0 {
		t.Errorf("Reorder(1,1) persisted %d times, expected 0", persister.saveCount())
	}
	if renders != 0 {
		t.Errorf("Reorder(1,1) fired %d renders, expected 0", renders)
	}
}

func TestStore_ReorderOutOfRangeIgnored(t *testing.T) {
	persister := newMemPersister()
	store := New(model.KindTask, mirror.NewStore(), persister)
	seedPersisted(t, store, persister, "a", "b")

	store.Reorder(-1, 1)
	store.Reorder(0, 5)
	store.Reorder(7, 0)

	items := store.Items()
	if len(items) != 2 || items[0].Text != "a" || items[1].Text != "b" {
		t.Errorf("out-of-range reorders changed the list: %v", itemTexts(items))
	}
	if persister.saveCount() != 0 {
		t.Errorf("out-of-range reorders persisted %d times, expected 0", persister.saveCount())
	}
}

func TestStore_UpdateAppliesPatch(t *testing.T) {
	store := New(model.KindTask, mirror.NewStore(), newMemPersister())
	ctx := context.Background()

	outcome, err := store.Add(ctx, model.Draft{Text: "task"})
	if err != nil {
		t.Fatalf("Add() returned error: %v", err)
	}

	done := true
	if err := store.Update(ctx, outcome.Item.ID, model.ItemPatch{Completed: &done}); err != nil {
		t.Fatalf("Update() returned error: %v", err)
	}
	if !store.Items()[0].Completed {
		t.Error("Update() did not mark the task completed")
	}
}

func TestStore_DeleteRemovesItem(t *testing.T) {
	store := New(model.KindTask, mirror.NewStore(), newMemPersister())
	ctx := context.Background()

	first, err := store.Add(ctx, model.Draft{Text: "keep"})
	if err != nil {
		t.Fatalf("Add() returned error: %v", err)
	}
	second, err := store.Add(ctx, model.Draft{Text: "remove"})
	if err != nil {
		t.Fatalf("Add() returned error: %v", err)
	}

	if err := store.Delete(ctx, second.Item.ID); err != nil {
		t.Fatalf("Delete() returned error: %v", err)
	}

	items := store.Items()
	if len(items) != 1 || items[0].ID != first.Item.ID {
		t.Errorf("snapshot after Delete = %v, expected only %q", itemTexts(items), "keep")
	}
}

func TestStore_ClearAllEmptiesList(t *testing.T) {
	persister := newMemPersister()
	store := New(model.KindClipboard, mirror.NewStore(), persister)
	ctx := context.Background()

	for _, text := range []string{"a", "b", "c"} {
		if _, err := store.Add(ctx, model.Draft{Text: text}); err != nil {
			t.Fatalf("Add() returned error: %v", err)
		}
	}

	if err := store.ClearAll(ctx); err != nil {
		t.Fatalf("ClearAll() returned error: %v", err)
	}
	if len(store.Items()) != 0 {
		t.Errorf("snapshot after ClearAll has %d items, expected 0", len(store.Items()))
	}

	var persisted []model.Item
	if err := json.Unmarshal([]byte(persister.values[model.KindClipboard.StorageKey()]), &persisted); err != nil {
		t.Fatalf("Failed to decode persisted document: %v", err)
	}
	if len(persisted) != 0 {
		t.Errorf("persisted document still has %d items after ClearAll", len(persisted))
	}
}

func itemTexts(items []model.Item) []string {
	texts := make([]string, len(items))
	for i, it := range items {
		texts[i] = it.Text
	}
	return texts
}
