package term

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// spinnerFrames are the braille animation frames.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 100 * time.Millisecond

// Spinner animates a braille glyph next to a message on a single rewritten
// terminal line until stopped. Start and the stop methods must be paired
// and called from the same goroutine.
type Spinner struct {
	w       io.Writer
	message string
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewSpinner returns a spinner that writes to w.
func NewSpinner(w io.Writer, message string) *Spinner {
	return &Spinner{w: w, message: message}
}

// Start draws the first frame and begins animating on a background
// goroutine.
func (s *Spinner) Start() {
	s.done = make(chan struct{})
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()
		for i := 0; ; i++ {
			fmt.Fprintf(s.w, "\r%s%s%s %s", Cyan, spinnerFrames[i%len(spinnerFrames)], Reset, s.message)
			select {
			case <-s.done:
				return
			case <-ticker.C:
			}
		}
	}()
}

// Stop ends the animation and replaces the spinner line with a green check
// and the given message.
func (s *Spinner) Stop(message string) {
	s.halt()
	fmt.Fprintf(s.w, "\r\033[K%s✓%s %s\n", Green, Reset, message)
}

// Fail ends the animation and replaces the spinner line with a red cross
// and the given message.
func (s *Spinner) Fail(message string) {
	s.halt()
	fmt.Fprintf(s.w, "\r\033[K%s✗%s %s\n", Red, Reset, message)
}

func (s *Spinner) halt() {
	close(s.done)
	s.wg.Wait()
}
