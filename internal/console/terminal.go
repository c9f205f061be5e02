// internal/console/terminal.go
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Terminal implements Output on top of stdin/stdout/stderr.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
	err io.Writer
}

// NewTerminal creates a Terminal bound to the process's standard streams.
func NewTerminal() *Terminal {
	return &Terminal{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
		err: os.Stderr,
	}
}

// Log shows a normal message and a newline.
func (t *Terminal) Log(format string, args ...any) {
	fmt.Fprintf(t.out, format+"\n", args...)
}

// Error shows an error message and a newline.
func (t *Terminal) Error(format string, args ...any) {
	fmt.Fprintf(t.err, format+"\n", args...)
}

// Busy prints the message and returns a stop function. The remote calls in
// this program are strictly sequential, so a static line instead of an
// animated spinner keeps the output replayable in scripts and logs.
func (t *Terminal) Busy(message string) func() {
	fmt.Fprintf(t.out, "%s...\n", message)
	return func() {}
}

// Menu renders the options as a numbered list and reads the user's choice.
// An empty line picks the pre-selected option. Returns false on cancellation.
func (t *Terminal) Menu(opts MenuOpts) (int, bool) {
	for i, option := range opts.Options {
		marker := " "
		if i == opts.Selected {
			marker = "*"
		}
		fmt.Fprintf(t.out, "%s %d: %s\n", marker, i+1, option)
	}
	for {
		fmt.Fprintf(t.out, "Choice [%d]: ", opts.Selected+1)
		line, err := t.in.ReadString('\n')
		if err != nil && line == "" {
			return 0, false
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return opts.Selected, true
		}
		n, convErr := strconv.Atoi(line)
		if convErr == nil && n >= 1 && n <= len(opts.Options) {
			return n - 1, true
		}
	}
}

// Input reads one line from the terminal. Returns false on cancellation.
func (t *Terminal) Input(opts InputOpts) (string, bool) {
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	line = strings.TrimSpace(line)
	if line == "" && opts.Default != "" {
		return opts.Default, true
	}
	return line, true
}
