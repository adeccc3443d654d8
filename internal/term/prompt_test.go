package term

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func promptInput(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func TestPromptFolder(t *testing.T) {
	var out bytes.Buffer
	got, err := PromptFolder(promptInput("/cards/input"), &out, "Input folder:", false)
	if err != nil {
		t.Fatalf("PromptFolder failed: %v", err)
	}
	if got != "/cards/input" {
		t.Errorf("path: got %q, want %q", got, "/cards/input")
	}
	if !strings.Contains(out.String(), "Input folder:") {
		t.Errorf("output %q missing the prompt", out.String())
	}
}

func TestPromptFolder_StripsQuotes(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"double quotes", `"/cards/my deck"`, "/cards/my deck"},
		{"single quotes", "'/cards/other'", "/cards/other"},
		{"whitespace", "  /cards/padded  ", "/cards/padded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := PromptFolder(promptInput(tt.line), &out, ">", false)
			if err != nil {
				t.Fatalf("PromptFolder failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("path: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPromptFolder_ReasksOnEmpty(t *testing.T) {
	var out bytes.Buffer
	got, err := PromptFolder(promptInput("", "  ", "/cards/finally"), &out, ">", false)
	if err != nil {
		t.Fatalf("PromptFolder failed: %v", err)
	}
	if got != "/cards/finally" {
		t.Errorf("path: got %q, want %q", got, "/cards/finally")
	}
	if got := strings.Count(out.String(), "Please enter a folder path."); got != 2 {
		t.Errorf("warned %d times, want 2", got)
	}
}

func TestPromptFolder_MustExist(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	got, err := PromptFolder(promptInput("/definitely/not/here", dir), &out, ">", true)
	if err != nil {
		t.Fatalf("PromptFolder failed: %v", err)
	}
	if got != dir {
		t.Errorf("path: got %q, want %q", got, dir)
	}
	if !strings.Contains(out.String(), "Folder not found") {
		t.Errorf("output %q missing the not-found notice", out.String())
	}
}

func TestPromptFolder_RejectsRegularFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "card.png")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	var out bytes.Buffer
	got, err := PromptFolder(promptInput(file, dir), &out, ">", true)
	if err != nil {
		t.Fatalf("PromptFolder failed: %v", err)
	}
	if got != dir {
		t.Errorf("path: got %q, want %q", got, dir)
	}
	if !strings.Contains(out.String(), "Not a folder") {
		t.Errorf("output %q missing the not-a-folder notice", out.String())
	}
}

func TestPromptFolder_EOF(t *testing.T) {
	var out bytes.Buffer
	_, err := PromptFolder(bufio.NewReader(strings.NewReader("")), &out, ">", false)
	if !errors.Is(err, io.EOF) {
		t.Errorf("error: got %v, want io.EOF", err)
	}
}

func TestPromptFolder_SharedReaderKeepsRemainingInput(t *testing.T) {
	// Two prompts on one reader: the second must see the second line.
	r := promptInput("/first", "/second")
	var out bytes.Buffer

	first, err := PromptFolder(r, &out, ">", false)
	if err != nil {
		t.Fatalf("first PromptFolder failed: %v", err)
	}
	second, err := PromptFolder(r, &out, ">", false)
	if err != nil {
		t.Fatalf("second PromptFolder failed: %v", err)
	}

	if first != "/first" || second != "/second" {
		t.Errorf("got %q and %q, want /first and /second", first, second)
	}
}

func TestConfirm(t *testing.T) {
	var out bytes.Buffer
	if err := Confirm(promptInput(""), &out, "Press Enter to start..."); err != nil {
		t.Errorf("Confirm failed: %v", err)
	}
	if !strings.Contains(out.String(), "Press Enter to start...") {
		t.Errorf("output %q missing the prompt", out.String())
	}
}

func TestConfirm_EOF(t *testing.T) {
	var out bytes.Buffer
	err := Confirm(bufio.NewReader(strings.NewReader("")), &out, ">")
	if !errors.Is(err, io.EOF) {
		t.Errorf("error: got %v, want io.EOF", err)
	}
}
