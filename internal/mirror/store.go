package mirror

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/deskpin/deskpin/internal/model"
)

// Store is the in-memory authoritative copy of every list. It starts empty at
// process start and reconciles each request against the caller's snapshot.
// A single mutex serializes requests, so they apply in arrival order.
type Store struct {
	mu    sync.Mutex
	lists map[model.ItemKind][]model.Item
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		lists: make(map[model.ItemKind][]model.Item),
	}
}

// GetAll returns the stored list for the kind
func (s *Store) GetAll(ctx context.Context, kind model.ItemKind) ([]model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneItems(s.lists[kind]), nil
}

// Add reconciles a draft against the caller's snapshot. A natural-key
// collision returns the snapshot unchanged with the existing item flagged
// duplicate; otherwise the draft is saved with a fresh ID and timestamp,
// prepended, and the list truncated to the kind's cap.
func (s *Store) Add(ctx context.Context, kind model.ItemKind, draft model.Draft, snapshot []model.Item) (AddResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if kind == model.KindLink {
		if err := model.ValidateLinkURL(draft.URL); err != nil {
			return AddResult{}, fmt.Errorf("add link: %w", err)
		}
	}

	items := cloneItems(snapshot)

	if kind.HasNaturalKey() {
		key := kind.DraftKey(draft)
		for _, existing := range items {
			if kind.NaturalKey(existing) == key {
				return AddResult{Items: items, Saved: existing, Duplicate: true}, nil
			}
		}
	}

	saved := model.Item{
		ID:        newItemID(),
		CreatedAt: time.Now().UnixMilli(),
	}
	switch kind {
	case model.KindLink:
		saved.Name = strings.TrimSpace(draft.Name)
		saved.URL = strings.TrimSpace(draft.URL)
	default:
		saved.Text = draft.Text
	}

	// Most-recent-first; the tail holds the oldest inserts, so the cap drops
	// those silently
	items = append([]model.Item{saved}, items...)
	if limit := kind.Cap(); limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	s.lists[kind] = cloneItems(items)
	return AddResult{Items: items, Saved: saved}, nil
}

// Delete removes the item with the given ID from the snapshot and stores the
// result. Deleting an absent ID is not an error; the list is returned as is.
func (s *Store) Delete(ctx context.Context, kind model.ItemKind, id string, snapshot []model.Item) ([]model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]model.Item, 0, len(snapshot))
	for _, it := range snapshot {
		if it.ID != id {
			items = append(items, it)
		}
	}

	s.lists[kind] = cloneItems(items)
	return items, nil
}

// Update merges the patch into the item with the given ID and stores the
// result
func (s *Store) Update(ctx context.Context, kind model.ItemKind, id string, patch model.ItemPatch, snapshot []model.Item) ([]model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := cloneItems(snapshot)
	found := false
	for i := range items {
		if items[i].ID == id {
			items[i].Apply(patch)
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("update %s: item %s not found", kind, id)
	}

	s.lists[kind] = cloneItems(items)
	return items, nil
}

// ClearAll empties the kind's list
func (s *Store) ClearAll(ctx context.Context, kind model.ItemKind) ([]model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lists[kind] = nil
	return []model.Item{}, nil
}

func cloneItems(items []model.Item) []model.Item {
	out := make([]model.Item, len(items))
	copy(out, items)
	return out
}

// newItemID generates a unique item ID using UUID v7 for better uniqueness and time ordering
func newItemID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf("item-%d", time.Now().UnixNano())
	}
	return id.String()
}
