package term

import (
	"fmt"
	"io"
	"strings"
)

// ANSI escape sequences for the interactive output.
const (
	Reset     = "\033[0m"
	Bold      = "\033[1m"
	Underline = "\033[4m"
	Red       = "\033[91m"
	Green     = "\033[92m"
	Yellow    = "\033[93m"
	Blue      = "\033[94m"
	Magenta   = "\033[95m"
	Cyan      = "\033[96m"
)

const bannerWidth = 60

// Success prints a green check line.
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s✓ %s%s\n", Green, fmt.Sprintf(format, args...), Reset)
}

// Failure prints a red cross line.
func Failure(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s✗ %s%s\n", Red, fmt.Sprintf(format, args...), Reset)
}

// Warn prints a yellow notice line.
func Warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s%s%s\n", Yellow, fmt.Sprintf(format, args...), Reset)
}

// Info prints a cyan line.
func Info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s%s%s\n", Cyan, fmt.Sprintf(format, args...), Reset)
}

// Banner prints the boxed program banner: the title centered between two
// rules, then the subtitle on its own line.
func Banner(w io.Writer, title, subtitle string) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintf(w, "%s%s%s%s\n", Cyan, Bold, rule, Reset)
	fmt.Fprintf(w, "%s%s%s%s\n", Cyan, Bold, centerText(title, bannerWidth), Reset)
	fmt.Fprintf(w, "%s%s%s%s\n", Cyan, Bold, rule, Reset)
	if subtitle != "" {
		fmt.Fprintf(w, "%s\n", subtitle)
	}
	fmt.Fprintln(w)
}

// centerText left-pads s so it sits centered in width columns.
func centerText(s string, width int) string {
	pad := width - len([]rune(s))
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad/2) + s
}
