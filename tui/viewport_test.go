// ABOUTME: Tests for ViewportManager scrolling logic
// ABOUTME: Verifies cursor-to-middle vim-style scrolling behavior

package tui

import "testing"

func TestViewportManager_TopRegion(t *testing.T) {
	// Viewport with 10 lines, 50 total items
	vm := NewViewportManager(10, 0, 50)

	tests := []struct {
		name       string
		cursorPos  int
		wantOffset int
	}{
		{"cursor at 0", 0, 0},
		{"cursor at 1", 1, 0},
		{"cursor at 4 (just before middle)", 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm.cursorPos = tt.cursorPos

			offset := vm.CalculateOffset()
			if offset != tt.wantOffset {
				t.Errorf("CalculateOffset() = %d, want %d", offset, tt.wantOffset)
			}
		})
	}
}

func TestViewportManager_MiddleRegion(t *testing.T) {
	// Viewport with 10 lines, 50 total items
	// Middle = 5, bottom threshold = 50 - 10 + 5 = 45
	vm := NewViewportManager(10, 0, 50)

	tests := []struct {
		name       string
		cursorPos  int
		wantOffset int
	}{
		{"cursor at 5 (middle start)", 5, 0},
		{"cursor at 10", 10, 5},
		{"cursor at 25 (middle of list)", 25, 20},
		{"cursor at 44 (just before bottom threshold)", 44, 39},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm.cursorPos = tt.cursorPos

			offset := vm.CalculateOffset()
			if offset != tt.wantOffset {
				t.Errorf("CalculateOffset() = %d, want %d (cursor at middle should give offset = cursorPos - 5)", offset, tt.wantOffset)
			}
		})
	}
}

func TestViewportManager_BottomRegion(t *testing.T) {
	// Viewport with 10 lines, 50 total items
	// Bottom threshold = 50 - 10 + 5 = 45
	// Max offset = 50 - 10 = 40
	vm := NewViewportManager(10, 0, 50)

	tests := []struct {
		name       string
		cursorPos  int
		wantOffset int
	}{
		{"cursor at 45 (bottom threshold)", 45, 40},
		{"cursor at 48", 48, 40},
		{"cursor at 49 (last item)", 49, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm.cursorPos = tt.cursorPos

			offset := vm.CalculateOffset()
			if offset != tt.wantOffset {
				t.Errorf("CalculateOffset() = %d, want %d", offset, tt.wantOffset)
			}
		})
	}
}

func TestViewportManager_SmallList(t *testing.T) {
	// Viewport with 10 lines, only 5 total items (smaller than viewport)
	vm := NewViewportManager(10, 0, 5)

	tests := []struct {
		name       string
		cursorPos  int
		wantOffset int
	}{
		{"cursor at 0", 0, 0},
		{"cursor at 2", 2, 0},
		{"cursor at 4 (last)", 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm.cursorPos = tt.cursorPos

			offset := vm.CalculateOffset()
			if offset != tt.wantOffset {
				t.Errorf("CalculateOffset() = %d, want %d (small list should never scroll)", offset, tt.wantOffset)
			}
		})
	}
}

func TestViewportManager_EdgeCases(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		vm := NewViewportManager(10, 0, 0)

		offset := vm.CalculateOffset()
		if offset != 0 {
			t.Errorf("Empty list should return offset 0, got %d", offset)
		}
	})

	t.Run("zero height viewport", func(t *testing.T) {
		vm := NewViewportManager(0, 5, 50)

		offset := vm.CalculateOffset()
		if offset != 0 {
			t.Errorf("Zero height viewport should return offset 0, got %d", offset)
		}
	})

	t.Run("single item list", func(t *testing.T) {
		vm := NewViewportManager(10, 0, 1)

		offset := vm.CalculateOffset()
		if offset != 0 {
			t.Errorf("Single item should return offset 0, got %d", offset)
		}
	})
}

func TestViewportManager_HeightUpdate(t *testing.T) {
	vm := NewViewportManager(10, 25, 50)

	// Initially cursor at 25 should scroll to offset 20
	initialOffset := vm.CalculateOffset()
	if initialOffset != 20 {
		t.Errorf("Initial offset = %d, want 20", initialOffset)
	}

	// Update height to 20
	vm.height = 20

	// Middle now = 10, cursor at 25 should give offset 15
	newOffset := vm.CalculateOffset()
	if newOffset != 15 {
		t.Errorf("After height change, offset = %d, want 15", newOffset)
	}
}

func TestViewportManager_ExactFitList(t *testing.T) {
	// List with exactly viewport height items
	vm := NewViewportManager(10, 0, 10)

	tests := []struct {
		name       string
		cursorPos  int
		wantOffset int
	}{
		{"cursor at 0", 0, 0},
		{"cursor at 5 (middle)", 5, 0},
		{"cursor at 9 (last)", 9, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm.cursorPos = tt.cursorPos

			offset := vm.CalculateOffset()
			if offset != tt.wantOffset {
				t.Errorf("CalculateOffset() = %d, want %d (exact fit should never scroll)", offset, tt.wantOffset)
			}
		})
	}
}

func TestViewportManager_ScrollTransitions(t *testing.T) {
	// Test smooth transitions as the cursor sweeps the whole list
	vm := NewViewportManager(10, 0, 50)

	// Track offset as cursor moves from top to bottom
	var offsets []int

	for pos := 0; pos < 50; pos++ {
		vm.cursorPos = pos
		offsets = append(offsets, vm.CalculateOffset())
	}

	// Verify offsets never decrease (monotonic increase or stay same)
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			t.Errorf("Offset decreased from %d to %d at position %d (should be monotonic)", offsets[i-1], offsets[i], i)
		}
	}

	// Positions 0-4 keep the view pinned to the top
	for i := 0; i < 5; i++ {
		if offsets[i] != 0 {
			t.Errorf("Position %d near top has offset %d, want 0", i, offsets[i])
		}
	}

	// Positions 5-44 keep the cursor centered
	for i := 5; i < 45; i++ {
		expectedOffset := i - 5
		if offsets[i] != expectedOffset {
			t.Errorf("Position %d in middle has offset %d, want %d", i, offsets[i], expectedOffset)
		}
	}

	// Positions 45-49 pin the view to the bottom (maxOffset 40)
	for i := 45; i < 50; i++ {
		if offsets[i] != 40 {
			t.Errorf("Position %d near bottom has offset %d, want 40", i, offsets[i])
		}
	}
}
