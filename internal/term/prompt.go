package term

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// PromptFolder asks for a folder path on w and reads answers from r until
// one is usable. Surrounding quotes are stripped so paths dragged in from
// a file manager work as typed. With mustExist set the answer has to name
// an existing directory.
//
// r is a shared buffered reader so consecutive prompts on the same input
// never lose buffered bytes. PromptFolder returns io.EOF when the input
// ends before a usable answer arrives.
func PromptFolder(r *bufio.Reader, w io.Writer, prompt string, mustExist bool) (string, error) {
	for {
		fmt.Fprintf(w, "%s%s%s ", Bold, prompt, Reset)

		line, err := r.ReadString('\n')
		path := strings.Trim(strings.TrimSpace(line), `"'`)
		if path == "" && err != nil {
			if errors.Is(err, io.EOF) {
				return "", io.EOF
			}
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		if path == "" {
			Warn(w, "Please enter a folder path.")
			continue
		}
		if mustExist {
			info, statErr := os.Stat(path)
			if statErr != nil {
				Failure(w, "Folder not found: %s", path)
				continue
			}
			if !info.IsDir() {
				Failure(w, "Not a folder: %s", path)
				continue
			}
		}
		return path, nil
	}
}

// Confirm prints prompt and waits for the user to press Enter. Any typed
// input counts as confirmation; Confirm returns io.EOF if the input ends
// without any.
func Confirm(r *bufio.Reader, w io.Writer, prompt string) error {
	fmt.Fprintf(w, "%s%s%s", Bold, prompt, Reset)

	line, err := r.ReadString('\n')
	if line == "" && err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
