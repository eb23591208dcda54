package liststore

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/deskpin/deskpin/internal/mirror"
	"github.com/deskpin/deskpin/internal/model"
)

// AddOutcome reports how the mirror resolved an add: the stored item, or the
// already-present one when Duplicate is set.
type AddOutcome struct {
	Item      model.Item
	Duplicate bool
}

// Store owns the UI-side ordered snapshot for one item kind. Every mutation
// round-trips through the mirror service, adopts the returned list, persists
// it, and fires the render callback; reorders are resolved locally and
// persisted without a round-trip.
type Store struct {
	kind      model.ItemKind
	service   mirror.Service
	persister Persister

	mu       sync.RWMutex
	snapshot []model.Item

	// opMu serializes mutating operations across the whole round-trip, so
	// rapid calls queue up instead of dropping
	opMu sync.Mutex

	onChange func([]model.Item)
	onError  func(error)
}

// New creates a store for one kind. The snapshot starts empty until Load.
func New(kind model.ItemKind, service mirror.Service, persister Persister) *Store {
	return &Store{
		kind:      kind,
		service:   service,
		persister: persister,
	}
}

// SetOnChange sets the render callback fired after every snapshot change
func (s *Store) SetOnChange(callback func([]model.Item)) {
	s.onChange = callback
}

// SetOnError sets the callback fired when a mirror round-trip fails
func (s *Store) SetOnError(callback func(error)) {
	s.onError = callback
}

// Kind returns the item kind this store manages
func (s *Store) Kind() model.ItemKind {
	return s.kind
}

// Items returns a copy of the current snapshot
func (s *Store) Items() []model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Item, len(s.snapshot))
	copy(out, s.snapshot)
	return out
}

// Load populates the snapshot at startup: the persisted document wins when
// present and decodable, otherwise the mirror's list is adopted. Load never
// fails outward; on error the snapshot stays empty and the render still fires.
func (s *Store) Load(ctx context.Context) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	raw, err := s.persister.Load(s.kind.StorageKey())
	if err != nil {
		log.Printf("Failed to read persisted %s list: %v", s.kind, err)
	} else if raw != "" {
		var items []model.Item
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			log.Printf("Failed to decode persisted %s list: %v", s.kind, err)
		} else {
			s.apply(items, false)
			return
		}
	}

	items, err := s.service.GetAll(ctx, s.kind)
	if err != nil {
		log.Printf("Failed to fetch %s list from mirror: %v", s.kind, err)
		s.apply([]model.Item{}, false)
		return
	}
	s.apply(items, false)
}

// Add sends the draft with the current snapshot to the mirror. On a duplicate
// the snapshot is left untouched and the existing item is reported so the UI
// can highlight it.
func (s *Store) Add(ctx context.Context, draft model.Draft) (AddOutcome, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	result, err := s.service.Add(ctx, s.kind, draft, s.Items())
	if err != nil {
		s.fail("add", err)
		return AddOutcome{}, err
	}
	if result.Duplicate {
		return AddOutcome{Item: result.Saved, Duplicate: true}, nil
	}

	s.apply(result.Items, true)
	return AddOutcome{Item: result.Saved}, nil
}

// Delete removes the item with the given ID
func (s *Store) Delete(ctx context.Context, id string) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	items, err := s.service.Delete(ctx, s.kind, id, s.Items())
	if err != nil {
		s.fail("delete", err)
		return err
	}

	s.apply(items, true)
	return nil
}

// Update merges a partial patch into the item with the given ID
func (s *Store) Update(ctx context.Context, id string, patch model.ItemPatch) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	items, err := s.service.Update(ctx, s.kind, id, patch, s.Items())
	if err != nil {
		s.fail("update", err)
		return err
	}

	s.apply(items, true)
	return nil
}

// Reorder moves the item at from to position to, where to indexes the list
// after removal. The move is resolved locally and persisted without a mirror
// round-trip. Reorder(i, i) and out-of-range indices change nothing.
func (s *Store) Reorder(from, to int) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	items := s.Items()
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) {
		log.Printf("Warning: %s reorder ignored, out of range: from=%d to=%d len=%d",
			s.kind, from, to, len(items))
		return
	}
	if from == to {
		return
	}

	moved := items[from]
	items = append(items[:from], items[from+1:]...)
	items = append(items[:to], append([]model.Item{moved}, items[to:]...)...)

	s.apply(items, true)
}

// ClearAll empties the list
func (s *Store) ClearAll(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	items, err := s.service.ClearAll(ctx, s.kind)
	if err != nil {
		s.fail("clear", err)
		return err
	}

	s.apply(items, true)
	return nil
}

// apply is the single reducer every snapshot change flows through: adopt the
// list, persist it, then fire the render callback
func (s *Store) apply(items []model.Item, persist bool) {
	s.mu.Lock()
	s.snapshot = items
	s.mu.Unlock()

	if persist {
		s.persist(items)
	}
	if s.onChange != nil {
		s.onChange(s.Items())
	}
}

// persist writes the snapshot through the persister. Failures are logged and
// never block the in-memory state or the render.
func (s *Store) persist(items []model.Item) {
	data, err := json.Marshal(items)
	if err != nil {
		log.Printf("Failed to encode %s list: %v", s.kind, err)
		return
	}
	if err := s.persister.Save(s.kind.StorageKey(), string(data)); err != nil {
		log.Printf("Failed to persist %s list: %v", s.kind, err)
	}
}

func (s *Store) fail(op string, err error) {
	log.Printf("Mirror %s failed for %s list: %v", op, s.kind, err)
	if s.onError != nil {
		s.onError(err)
	}
}
