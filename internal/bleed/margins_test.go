package bleed

import "testing"

func TestCalculate(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		want   Margins
	}{
		{"poker card 300dpi", 750, 1050, Margins{Top: 36, Bottom: 36, Left: 36, Right: 36}},
		{"small card", 100, 140, Margins{Top: 4, Bottom: 4, Left: 4, Right: 4}},
		{"poker card 600dpi", 1500, 2100, Margins{Top: 72, Bottom: 72, Left: 72, Right: 72}},
		{"wide crop", 200, 140, Margins{Top: 4, Bottom: 4, Left: 9, Right: 9}},
		{"fractions truncate", 103, 141, Margins{Top: 4, Bottom: 4, Left: 4, Right: 4}},
		{"just above zero", 21, 29, Margins{Top: 1, Bottom: 1, Left: 1, Right: 1}},
		{"too small for bleed", 20, 28, Margins{Top: 0, Bottom: 0, Left: 0, Right: 0}},
		{"single pixel", 1, 1, Margins{Top: 0, Bottom: 0, Left: 0, Right: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.width, tt.height)
			if got != tt.want {
				t.Errorf("Calculate(%d, %d) = %+v, want %+v", tt.width, tt.height, got, tt.want)
			}
		})
	}
}

func TestCalculate_Symmetry(t *testing.T) {
	m := Calculate(637, 911)
	if m.Top != m.Bottom {
		t.Errorf("Top %d != Bottom %d", m.Top, m.Bottom)
	}
	if m.Left != m.Right {
		t.Errorf("Left %d != Right %d", m.Left, m.Right)
	}
}

func TestCalculate_NonNegative(t *testing.T) {
	for size := 1; size <= 500; size++ {
		m := Calculate(size, size)
		if m.Top < 0 || m.Bottom < 0 || m.Left < 0 || m.Right < 0 {
			t.Fatalf("Calculate(%d, %d) produced a negative margin: %+v", size, size, m)
		}
	}
}
