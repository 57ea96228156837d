package num

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{"below", -0.5, 0},
		{"lower bound", 0, 0},
		{"inside", 0.25, 0.25},
		{"upper bound", 1, 1},
		{"above", 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(0, tt.value, 1); got != tt.expected {
				t.Errorf("Clamp(0, %v, 1) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestIsInRange(t *testing.T) {
	if !IsInRange(0, 1, 2) {
		t.Error("1 is in [0, 2]")
	}
	if IsInRange(0, 3, 2) {
		t.Error("3 is not in [0, 2]")
	}
	if !IsInRange(0, 0, 0) {
		t.Error("bounds are inclusive")
	}
}
