package model

// ItemKind identifies which ordered list an item belongs to
type ItemKind string

const (
	// KindClipboard is the clipboard history list
	KindClipboard ItemKind = "clipboard"

	// KindLink is the favorite links list
	KindLink ItemKind = "link"

	// KindTask is the task list
	KindTask ItemKind = "task"
)

// List size caps. Inserts beyond the cap silently drop the oldest items by
// insertion order. Links are uncapped.
const (
	ClipboardCap = 50
	TaskCap      = 100
)

// String returns the string representation of ItemKind
func (k ItemKind) String() string {
	return string(k)
}

// Cap returns the maximum list length for the kind, or 0 when unbounded
func (k ItemKind) Cap() int {
	switch k {
	case KindClipboard:
		return ClipboardCap
	case KindTask:
		return TaskCap
	default:
		return 0
	}
}

// HasNaturalKey reports whether the kind deduplicates on insert
func (k ItemKind) HasNaturalKey() bool {
	return k == KindClipboard || k == KindLink
}

// NaturalKey returns the duplicate-detection key for an item of this kind:
// the exact text for clipboard entries, the normalized URL for links. Kinds
// without dedup return an empty key.
func (k ItemKind) NaturalKey(it Item) string {
	switch k {
	case KindClipboard:
		return it.Text
	case KindLink:
		return NormalizeLinkURL(it.URL)
	default:
		return ""
	}
}

// DraftKey returns the natural key carried by a candidate draft, mirroring
// NaturalKey for stored items
func (k ItemKind) DraftKey(d Draft) string {
	switch k {
	case KindClipboard:
		return d.Text
	case KindLink:
		return NormalizeLinkURL(d.URL)
	default:
		return ""
	}
}

// StorageKey returns the preferences key holding the kind's persisted list
func (k ItemKind) StorageKey() string {
	switch k {
	case KindClipboard:
		return "clipboard_items"
	case KindLink:
		return "favorite_links"
	case KindTask:
		return "task_items"
	default:
		return "items_" + string(k)
	}
}
