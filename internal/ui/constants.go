package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconChat     = "💬"
	IconCopy     = "📋"
	IconLink     = "🔗"
	IconDelete   = "🗑"
	IconClose    = "×"
	IconError    = "❌"
	IconTimer    = "⏱"
	IconSend     = "➤"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing (rows / lists)
const (
	RowMinWidth  float32 = 260
	RowMinHeight float32 = 34

	// Insertion marker line drawn between rows during a drag
	MarkerThickness float32 = 3

	ChatWindowWidth  float32 = 380
	ChatWindowHeight float32 = 480

	ImagePreviewMin float32 = 240
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 280
	ToastHeight   float32 = 110
	ToastMargin   float32 = 16
	ToastAutoHide         = 5 * time.Second
)

// Notice behavior
const (
	// NoticeAutoHide clears transient panel notices (duplicate warnings,
	// mirror failures)
	NoticeAutoHide = 3 * time.Second

	// HighlightDuration is how long an existing row flashes after a
	// duplicate insert attempt
	HighlightDuration = 1200 * time.Millisecond
)
