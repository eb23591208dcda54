package ui

import (
	"testing"
)

func TestResolveDropPosition(t *testing.T) {
	tests := []struct {
		name     string
		pointerY float32
		top      float32
		height   float32
		expected DropPosition
	}{
		{"well above midpoint", 10, 0, 100, DropBefore},
		{"well below midpoint", 90, 0, 100, DropAfter},
		{"dead zone above midpoint", 45, 0, 100, DropBefore},
		{"dead zone below midpoint", 55, 0, 100, DropAfter},
		{"exactly at midpoint", 50, 0, 100, DropAfter},
		{"offset row above", 210, 200, 40, DropBefore},
		{"offset row below", 235, 200, 40, DropAfter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDropPosition(tt.pointerY, tt.top, tt.height)
			if got != tt.expected {
				t.Errorf("ResolveDropPosition(%v, %v, %v) = %s, expected %s",
					tt.pointerY, tt.top, tt.height, got, tt.expected)
			}
		})
	}
}

func TestReorderHandler_DropIndexCorrection(t *testing.T) {
	tests := []struct {
		name           string
		originalIndex  int
		candidateIndex int
		position       DropPosition
		expectMove     bool
		expectedFrom   int
		expectedTo     int
	}{
		// Dragging index 0 after candidate 3: newIndex=4, shifted down to 3
		{"forward move after", 0, 3, DropAfter, true, 0, 3},
		{"forward move before", 0, 3, DropBefore, true, 0, 2},
		{"backward move before", 4, 1, DropBefore, true, 4, 1},
		{"backward move after", 4, 1, DropAfter, true, 4, 2},
		{"drop before self", 2, 2, DropBefore, false, 0, 0},
		{"drop after self", 2, 2, DropAfter, false, 0, 0},
		{"drop before next row resolves to self", 2, 3, DropBefore, false, 0, 0},
		{"drop after previous row resolves to self", 2, 1, DropAfter, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moved := false
			var gotFrom, gotTo int
			rh := NewReorderHandler(func(from, to int) {
				moved = true
				gotFrom, gotTo = from, to
			})

			rh.Begin(tt.originalIndex)
			rh.Drop(tt.candidateIndex, tt.position)
			rh.End()

			if moved != tt.expectMove {
				t.Fatalf("move emitted = %v, expected %v", moved, tt.expectMove)
			}
			if moved && (gotFrom != tt.expectedFrom || gotTo != tt.expectedTo) {
				t.Errorf("move = (%d, %d), expected (%d, %d)", gotFrom, gotTo, tt.expectedFrom, tt.expectedTo)
			}
		})
	}
}

// Dragging index 0 of [0 1 2 3 4] and dropping after candidate 3 must yield
// [1 2 3 0 4] once the move is applied.
func TestReorderHandler_FiveItemScenario(t *testing.T) {
	items := []int{0, 1, 2, 3, 4}

	rh := NewReorderHandler(func(from, to int) {
		moved := items[from]
		items = append(items[:from], items[from+1:]...)
		items = append(items[:to], append([]int{moved}, items[to:]...)...)
	})

	rh.Begin(0)
	rh.Drop(3, DropAfter)
	rh.End()

	expected := []int{1, 2, 3, 0, 4}
	for i := range expected {
		if items[i] != expected[i] {
			t.Fatalf("final order = %v, expected %v", items, expected)
		}
	}
}

func TestReorderHandler_MarkerExclusivity(t *testing.T) {
	clears := 0
	var marks []int
	rh := NewReorderHandler(nil)
	rh.SetMarkCallbacks(
		func(index int, position DropPosition) { marks = append(marks, index) },
		func() { clears++ },
	)

	rh.Begin(0)
	rh.Hover(10, 0, 40, 1)
	rh.Hover(50, 40, 40, 2)
	rh.Hover(90, 80, 40, 3)

	if len(marks) != 3 {
		t.Fatalf("expected 3 marker placements, got %d", len(marks))
	}
	// Every new marker clears the previous one first
	if clears != 3 {
		t.Errorf("expected 3 clears before placements, got %d", clears)
	}
	if marks[0] != 1 || marks[1] != 2 || marks[2] != 3 {
		t.Errorf("marker indices = %v, expected [1 2 3]", marks)
	}
}

func TestReorderHandler_HoverSameSideIsStable(t *testing.T) {
	marks := 0
	rh := NewReorderHandler(nil)
	rh.SetMarkCallbacks(func(int, DropPosition) { marks++ }, func() {})

	rh.Begin(0)
	rh.Hover(5, 0, 40, 1)
	rh.Hover(6, 0, 40, 1)
	rh.Hover(7, 0, 40, 1)

	if marks != 1 {
		t.Errorf("repeated hovers on the same side re-marked %d times, expected 1", marks)
	}
}

func TestReorderHandler_EndClearsState(t *testing.T) {
	clears := 0
	rh := NewReorderHandler(func(int, int) { t.Fatal("move emitted after End") })
	rh.SetMarkCallbacks(func(int, DropPosition) {}, func() { clears++ })

	rh.Begin(2)
	rh.Hover(10, 0, 40, 0)
	rh.End()

	if rh.Dragging() {
		t.Error("handler still dragging after End")
	}
	if rh.DragIndex() != -1 {
		t.Errorf("DragIndex() = %d after End, expected -1", rh.DragIndex())
	}
	if clears < 2 {
		t.Errorf("End did not clear markers (clears=%d)", clears)
	}

	// Terminated drags ignore late drops
	rh.Drop(0, DropBefore)
	rh.DropAtMarker()
}

func TestReorderHandler_DropAtMarker(t *testing.T) {
	var gotFrom, gotTo int
	moved := false
	rh := NewReorderHandler(func(from, to int) {
		moved = true
		gotFrom, gotTo = from, to
	})
	rh.SetMarkCallbacks(func(int, DropPosition) {}, func() {})

	rh.Begin(0)
	// Hover below the midpoint of row 3 (top 120, height 40)
	rh.Hover(155, 120, 40, 3)
	rh.DropAtMarker()
	rh.End()

	if !moved {
		t.Fatal("expected a move from DropAtMarker")
	}
	if gotFrom != 0 || gotTo != 3 {
		t.Errorf("move = (%d, %d), expected (0, 3)", gotFrom, gotTo)
	}
}
