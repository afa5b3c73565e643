package dialogs

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"hidenb/internal/ports"
)

// Terminal implements ports.Dialogs with a y/N prompt
type Terminal struct {
	in  *bufio.Reader
	out io.Writer

	// AssumeYes answers every confirmation without prompting
	AssumeYes bool
}

// Ensure Terminal implements ports.Dialogs
var _ ports.Dialogs = (*Terminal)(nil)

// NewTerminal prompts on stdin and writes to stderr
func NewTerminal() *Terminal {
	return NewTerminalIO(os.Stdin, os.Stderr)
}

// NewTerminalIO prompts on in and writes to out
func NewTerminalIO(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Confirm prints message and waits for an answer; anything but y/yes is Cancel
func (t *Terminal) Confirm(ctx context.Context, message string) (bool, error) {
	if t.AssumeYes {
		return true, nil
	}
	fmt.Fprintf(t.out, "%s [y/N] ", message)

	answer := make(chan string, 1)
	go func() {
		line, _ := t.in.ReadString('\n')
		answer <- line
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(t.out)
		return false, ctx.Err()
	case line := <-answer:
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		}
		return false, nil
	}
}

// Notify prints message on its own line
func (t *Terminal) Notify(_ context.Context, message string) error {
	_, err := fmt.Fprintln(t.out, message)
	return err
}
