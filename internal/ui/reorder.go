package ui

// DropPosition identifies which side of a candidate row an insertion marker
// sits on during a drag.
type DropPosition int

const (
	DropBefore DropPosition = iota
	DropAfter
)

// String returns the position name for logging
func (p DropPosition) String() string {
	if p == DropBefore {
		return "before"
	}
	return "after"
}

// Reorder geometry constants
const (
	// ReorderDeadZoneRatio is the fraction of a row's height around its
	// midpoint where the insertion side is resolved by a plain midpoint
	// comparison instead of the outer bands. Keeps the marker from
	// flickering while the pointer sits near the middle of a row.
	ReorderDeadZoneRatio float32 = 0.3
)

// ReorderHandler translates a vertical pointer drag over a rendered list into
// a single (fromIndex, toIndex) move instruction. It is pure index/geometry
// logic; rendering the drag and marker styles is left to the callbacks, so the
// handler itself carries no widget references.
//
// Lifecycle: Begin on drag start, Hover for every pointer move over a
// candidate row, Drop when the pointer is released over a candidate, End on
// every drag termination including cancellation.
type ReorderHandler struct {
	dragging      bool
	originalIndex int

	// Last marker placed by Hover, consumed by DropAtMarker
	markedIndex    int
	markedPosition DropPosition
	hasMark        bool

	onMark       func(index int, position DropPosition)
	onClearMarks func()
	onMove       func(fromIndex, toIndex int)
}

// NewReorderHandler creates a reorder handler that reports resolved moves
// through onMove
func NewReorderHandler(onMove func(fromIndex, toIndex int)) *ReorderHandler {
	return &ReorderHandler{
		originalIndex: -1,
		onMove:        onMove,
	}
}

// SetMarkCallbacks sets the visual marker callbacks. onMark is fired when a
// candidate row gains an insertion marker; onClearMarks must clear the marker
// on every row. At most one row carries a marker at a time.
func (rh *ReorderHandler) SetMarkCallbacks(onMark func(index int, position DropPosition), onClearMarks func()) {
	rh.onMark = onMark
	rh.onClearMarks = onClearMarks
}

// Begin records the dragged row and its original index
func (rh *ReorderHandler) Begin(elementIndex int) {
	rh.dragging = true
	rh.originalIndex = elementIndex
	rh.hasMark = false
}

// Dragging reports whether a drag is in progress
func (rh *ReorderHandler) Dragging() bool {
	return rh.dragging
}

// DragIndex returns the original index of the dragged row, -1 when idle
func (rh *ReorderHandler) DragIndex() int {
	if !rh.dragging {
		return -1
	}
	return rh.originalIndex
}

// ResolveDropPosition decides which side of a candidate row the pointer sits
// on. Outside the dead zone the outer bands decide; inside it the plain
// midpoint comparison does. Every pointer position resolves to a side, so a
// hovered candidate always carries a marker.
func ResolveDropPosition(pointerY, candidateTop, candidateHeight float32) DropPosition {
	mid := candidateTop + candidateHeight/2
	threshold := candidateHeight * ReorderDeadZoneRatio

	if pointerY < mid-threshold {
		return DropBefore
	}
	if pointerY > mid+threshold {
		return DropAfter
	}

	// Dead zone: midpoint split
	if pointerY < mid {
		return DropBefore
	}
	return DropAfter
}

// Hover resolves the insertion side for the hovered candidate and moves the
// marker there, clearing any marker on other rows first.
func (rh *ReorderHandler) Hover(pointerY, candidateTop, candidateHeight float32, candidateIndex int) {
	if !rh.dragging {
		return
	}

	position := ResolveDropPosition(pointerY, candidateTop, candidateHeight)
	if rh.hasMark && rh.markedIndex == candidateIndex && rh.markedPosition == position {
		return
	}

	if rh.onClearMarks != nil {
		rh.onClearMarks()
	}
	rh.markedIndex = candidateIndex
	rh.markedPosition = position
	rh.hasMark = true
	if rh.onMark != nil {
		rh.onMark(candidateIndex, position)
	}
}

// Drop computes the final insertion index for a release over the candidate
// and emits the move. Inserting after the candidate targets candidateIndex+1;
// removing the dragged row from its original slot shifts every later index
// down by one, so the target is decremented when the row moves forward.
// A resolved index equal to the original one, including a drop on the dragged
// row itself, is a no-op.
func (rh *ReorderHandler) Drop(candidateIndex int, position DropPosition) {
	if !rh.dragging {
		return
	}

	newIndex := candidateIndex
	if position == DropAfter {
		newIndex = candidateIndex + 1
	}
	if rh.originalIndex < newIndex {
		newIndex--
	}

	if newIndex != rh.originalIndex && rh.onMove != nil {
		rh.onMove(rh.originalIndex, newIndex)
	}
}

// DropAtMarker releases the drag onto the marker placed by the last Hover.
// Without a marker the drop is a no-op.
func (rh *ReorderHandler) DropAtMarker() {
	if !rh.hasMark {
		return
	}
	rh.Drop(rh.markedIndex, rh.markedPosition)
}

// End clears the drag state and all markers. It must run on every drag
// termination, including cancellation, so no row is left styled as dragging.
func (rh *ReorderHandler) End() {
	rh.dragging = false
	rh.originalIndex = -1
	rh.hasMark = false
	if rh.onClearMarks != nil {
		rh.onClearMarks()
	}
}
