package debugger

import (
	"fmt"
	"os"

	"github.com/pkg/term"
)

// ttyTerminal reads raw bytes from a real terminal device and does its
// own line editing (backspace, enter), the same division of labour as
// the teacher's colorterm/easyterm wrapper around github.com/pkg/term's
// termios control (debugger/terminal/colorterm/easyterm/suspend.go).
type ttyTerminal struct {
	t *term.Term
}

func newTTYTerminal() (*ttyTerminal, error) {
	t, err := term.Open("/dev/tty", term.RawMode)
	if err != nil {
		return nil, err
	}
	return &ttyTerminal{t: t}, nil
}

func (t *ttyTerminal) ReadLine(prompt string) (string, error) {
	fmt.Fprint(t.t, prompt)

	var line []byte
	buf := make([]byte, 1)
	for {
		n, err := t.t.Read(buf)
		if err != nil {
			return "", err
		}
		if n == 0 {
			continue
		}
		switch b := buf[0]; b {
		case '\r', '\n':
			fmt.Fprint(t.t, "\r\n")
			return string(line), nil
		case 127, '\b':
			if len(line) > 0 {
				line = line[:len(line)-1]
				fmt.Fprint(t.t, "\b \b")
			}
		case 3:
			return "", fmt.Errorf("debugger: interrupted")
		default:
			line = append(line, b)
			t.t.Write(buf[:1])
		}
	}
}

func (t *ttyTerminal) WriteLine(s string) {
	fmt.Fprintf(t.t, "%s\r\n", s)
}

func (t *ttyTerminal) Close() error {
	t.t.Restore()
	return t.t.Close()
}

// NewTerminal picks a raw terminal when stdin is a real tty, falling
// back to a plain cooked-mode scanner otherwise (piped input, tests,
// non-interactive CI) — the same fallback the teacher's debugger makes
// between colorterm and plainterm.
func NewTerminal() Terminal {
	if isRealTerminal(os.Stdin) {
		if tt, err := newTTYTerminal(); err == nil {
			return tt
		}
	}
	return newPlainTerminal(os.Stdin, os.Stdout)
}
