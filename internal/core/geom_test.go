package core

import "testing"

func TestBoxIntersects(t *testing.T) {
	player := NewBox(0, 0, 0.5, 0.5)

	tests := []struct {
		name     string
		other    Box
		expected bool
	}{
		{"same position", NewBox(0, 0, 0.5, 0.5), true},
		{"partial overlap", NewBox(0.25, 0, 0.5, 0.5), true},
		{"far right", NewBox(2, 0, 0.5, 0.5), false},
		{"touching right edge", NewBox(0.5, 0, 0.5, 0.5), false},
		{"touching top edge", NewBox(0, 0.5, 0.5, 0.5), false},
		{"corner overlap", NewBox(0.375, 0.375, 0.5, 0.5), true},
		{"small box inside", NewBox(0, 0, 0.125, 0.125), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := player.Intersects(tc.other); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.other.Intersects(player); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(0, 0, 0.5, 0.25)

	if b.Left() != -0.25 || b.Right() != 0.25 {
		t.Errorf("horizontal edges = (%v, %v), expected (-0.25, 0.25)", b.Left(), b.Right())
	}
	if b.Top() != 0.125 || b.Bottom() != -0.125 {
		t.Errorf("vertical edges = (%v, %v), expected (0.125, -0.125)", b.Top(), b.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %v, expected 1", got)
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
