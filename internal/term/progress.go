package term

import (
	"fmt"
	"io"
	"strings"
)

const (
	barWidth   = 30
	labelWidth = 30
)

// ProgressBar renders a fixed-width block progress bar on a single
// rewritten terminal line.
type ProgressBar struct {
	w     io.Writer
	total int
}

// NewProgressBar returns a bar counting up to total that writes to w.
func NewProgressBar(w io.Writer, total int) *ProgressBar {
	return &ProgressBar{w: w, total: total}
}

// Update redraws the bar at current completed steps with a trailing label,
// typically the name of the file just finished. Out-of-range values are
// clamped; a bar with a non-positive total draws nothing.
func (p *ProgressBar) Update(current int, label string) {
	if p.total <= 0 {
		return
	}
	if current < 0 {
		current = 0
	}
	if current > p.total {
		current = p.total
	}

	filled := barWidth * current / p.total
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	fmt.Fprintf(p.w, "\r\033[K%s%s%s %3d%% (%d/%d) %s",
		Blue, bar, Reset, 100*current/p.total, current, p.total, truncateLabel(label, labelWidth))
}

// Done clears the bar line.
func (p *ProgressBar) Done() {
	fmt.Fprint(p.w, "\r\033[K")
}

// truncateLabel shortens s to at most width runes, marking the cut with an
// ellipsis.
func truncateLabel(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}
