// internal/console/console.go
package console

import "context"

// MenuOpts configures a single-choice menu.
type MenuOpts struct {
	Options  []string
	Selected int // Index of the pre-selected option, chosen on empty input
}

// InputOpts configures a line-input prompt.
type InputOpts struct {
	Default string // Returned when the user enters an empty line
}

// Output is the interaction sink for all commands. The second return value
// of Menu and Input is false when the user cancelled (end of input); callers
// must treat that as an abort signal, not as an error from the terminal.
type Output interface {
	// Log shows a normal message and a newline.
	Log(format string, args ...any)
	// Error shows an error message and a newline.
	Error(format string, args ...any)
	// Busy shows a busy indicator with the given message; the returned
	// function stops the indicator.
	Busy(message string) func()
	// Menu has the user select one of the options. Returns the chosen index,
	// or false when cancelled.
	Menu(opts MenuOpts) (int, bool)
	// Input has the user enter a value manually. Returns false when cancelled.
	Input(opts InputOpts) (string, bool)
}

// BusyWhile runs fn under a busy indicator and returns its result.
func BusyWhile[T any](ctx context.Context, out Output, message string, fn func(context.Context) (T, error)) (T, error) {
	done := out.Busy(message)
	defer done()
	return fn(ctx)
}
