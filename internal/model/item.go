package model

import (
	"strings"
	"time"
)

// Item is a single entry in one of the widget's ordered lists. Payload fields
// are kind-specific: clipboard entries carry Text, favorite links carry Name
// and URL, tasks carry Text and Completed. Identity is the opaque ID minted by
// the mirror store; duplicate detection uses the kind's natural key instead
// (see ItemKind.NaturalKey).
type Item struct {
	ID        string `json:"id"`
	Text      string `json:"text,omitempty"`
	Name      string `json:"name,omitempty"`
	URL       string `json:"url,omitempty"`
	Completed bool   `json:"completed,omitempty"`
	CreatedAt int64  `json:"created_at"` // unix milliseconds
}

// Draft carries the natural-key-bearing fields of a candidate item before the
// mirror assigns its ID and timestamp.
type Draft struct {
	Text string
	Name string
	URL  string
}

// ItemPatch is a partial update applied to an existing item; nil fields are
// left unchanged.
type ItemPatch struct {
	Text      *string
	Completed *bool
}

// CreatedTime returns the creation timestamp as time.Time
func (it Item) CreatedTime() time.Time {
	return time.UnixMilli(it.CreatedAt)
}

// DisplayLabel returns the text shown in list rows: the link name when set,
// then the link URL, otherwise the item text collapsed to a single line
func (it Item) DisplayLabel() string {
	if it.Name != "" {
		return it.Name
	}
	if it.URL != "" {
		return it.URL
	}

	// Collapse whitespace so multi-line clipboard captures stay one row tall
	text := strings.ReplaceAll(it.Text, "\n", " ")
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\t", " ")
	return strings.TrimSpace(text)
}

// Apply merges the non-nil patch fields into the item
func (it *Item) Apply(patch ItemPatch) {
	if patch.Text != nil {
		it.Text = *patch.Text
	}
	if patch.Completed != nil {
		it.Completed = *patch.Completed
	}
}
