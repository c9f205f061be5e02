// internal/console/script.go
package console

import "fmt"

// Script implements Output with pre-recorded user input and captured output.
// It backs the workflow and command tests: queue the inputs and menu choices
// up front, run the command, then assert on Logs and Errors. An exhausted
// input or menu queue behaves as a cancellation, exactly like the user
// closing the terminal mid-prompt.
type Script struct {
	Inputs      []string // Consumed by Input, one per call
	MenuChoices []int    // Consumed by Menu, one per call

	Logs   []string
	Errors []string
	Busies []string
}

// Log records a formatted message.
func (s *Script) Log(format string, args ...any) {
	s.Logs = append(s.Logs, fmt.Sprintf(format, args...))
}

// Error records a formatted error message.
func (s *Script) Error(format string, args ...any) {
	s.Errors = append(s.Errors, fmt.Sprintf(format, args...))
}

// Busy records the busy message; the stop function is a no-op.
func (s *Script) Busy(message string) func() {
	s.Busies = append(s.Busies, message)
	return func() {}
}

// Menu pops the next scripted choice, or reports cancellation when none are
// left.
func (s *Script) Menu(opts MenuOpts) (int, bool) {
	if len(s.MenuChoices) == 0 {
		return 0, false
	}
	choice := s.MenuChoices[0]
	s.MenuChoices = s.MenuChoices[1:]
	return choice, true
}

// Input pops the next scripted line, or reports cancellation when none are
// left.
func (s *Script) Input(opts InputOpts) (string, bool) {
	if len(s.Inputs) == 0 {
		return "", false
	}
	line := s.Inputs[0]
	s.Inputs = s.Inputs[1:]
	if line == "" && opts.Default != "" {
		return opts.Default, true
	}
	return line, true
}
