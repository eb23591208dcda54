package mirror

import (
	"context"

	"github.com/deskpin/deskpin/internal/model"
)

// AddResult is the mirror's reply to an add request. Items is the reconciled
// list the caller should adopt; Saved is the stored item, or the existing one
// when Duplicate is set.
type AddResult struct {
	Items     []model.Item
	Saved     model.Item
	Duplicate bool
}

// Service defines the interface for the authoritative list store. Mutating
// calls carry the caller's current snapshot and return the reconciled list to
// adopt, so callers never mutate state locally first.
type Service interface {
	GetAll(ctx context.Context, kind model.ItemKind) ([]model.Item, error)
	Add(ctx context.Context, kind model.ItemKind, draft model.Draft, snapshot []model.Item) (AddResult, error)
	Delete(ctx context.Context, kind model.ItemKind, id string, snapshot []model.Item) ([]model.Item, error)
	Update(ctx context.Context, kind model.ItemKind, id string, patch model.ItemPatch, snapshot []model.Item) ([]model.Item, error)
	ClearAll(ctx context.Context, kind model.ItemKind) ([]model.Item, error)
}
