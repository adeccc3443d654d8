package term

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgressBar_Update(t *testing.T) {
	var buf bytes.Buffer
	bar := NewProgressBar(&buf, 10)

	bar.Update(5, "card.png")

	out := buf.String()
	if got := strings.Count(out, "█"); got != 15 {
		t.Errorf("filled cells: got %d, want 15", got)
	}
	if got := strings.Count(out, "░"); got != 15 {
		t.Errorf("empty cells: got %d, want 15", got)
	}
	if !strings.Contains(out, " 50%") {
		t.Errorf("output %q missing percentage", out)
	}
	if !strings.Contains(out, "(5/10)") {
		t.Errorf("output %q missing counts", out)
	}
	if !strings.Contains(out, "card.png") {
		t.Errorf("output %q missing label", out)
	}
}

func TestProgressBar_Complete(t *testing.T) {
	var buf bytes.Buffer
	bar := NewProgressBar(&buf, 4)

	bar.Update(4, "done.png")

	out := buf.String()
	if got := strings.Count(out, "█"); got != barWidth {
		t.Errorf("filled cells: got %d, want %d", got, barWidth)
	}
	if strings.Contains(out, "░") {
		t.Error("complete bar should have no empty cells")
	}
	if !strings.Contains(out, "100%") {
		t.Errorf("output %q missing 100%%", out)
	}
}

func TestProgressBar_ClampsOutOfRange(t *testing.T) {
	var over, under bytes.Buffer

	NewProgressBar(&over, 10).Update(15, "x")
	if !strings.Contains(over.String(), "(10/10)") {
		t.Errorf("over-total update %q should clamp to the total", over.String())
	}

	NewProgressBar(&under, 10).Update(-3, "x")
	if !strings.Contains(under.String(), "(0/10)") {
		t.Errorf("negative update %q should clamp to zero", under.String())
	}
}

func TestProgressBar_ZeroTotal(t *testing.T) {
	var buf bytes.Buffer
	bar := NewProgressBar(&buf, 0)

	bar.Update(1, "x")

	if buf.Len() != 0 {
		t.Errorf("zero-total bar wrote %q", buf.String())
	}
}

func TestProgressBar_Done(t *testing.T) {
	var buf bytes.Buffer
	bar := NewProgressBar(&buf, 3)

	bar.Update(1, "a.png")
	bar.Done()

	if !strings.HasSuffix(buf.String(), "\r\033[K") {
		t.Error("Done should clear the bar line")
	}
}

func TestTruncateLabel(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		width int
		want  string
	}{
		{"short", "card.png", 30, "card.png"},
		{"exact", strings.Repeat("a", 30), 30, strings.Repeat("a", 30)},
		{"long", strings.Repeat("a", 35), 30, strings.Repeat("a", 27) + "..."},
		{"multibyte", strings.Repeat("ä", 35), 30, strings.Repeat("ä", 27) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateLabel(tt.s, tt.width)
			if got != tt.want {
				t.Errorf("truncateLabel(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
			}
		})
	}
}
