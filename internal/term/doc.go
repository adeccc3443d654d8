// Package term implements the small ANSI terminal layer the command-line
// flow is built on: colored status lines, a braille spinner, a block
// progress bar, and folder prompts. Everything writes to an injectable
// io.Writer so tests can capture output exactly.
package term
