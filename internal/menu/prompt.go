package menu

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"
)

// Prompter reads console input. Passwords are read without echo when
// stdin is a terminal, and as plain lines otherwise (piped input,
// tests).
type Prompter struct {
	in    *bufio.Reader
	isTTY bool
}

// NewPrompter creates a Prompter over stdin.
func NewPrompter() *Prompter {
	return &Prompter{
		in:    bufio.NewReader(os.Stdin),
		isTTY: term.IsTerminal(int(syscall.Stdin)),
	}
}

// Line prints the label and reads one trimmed line.
func (p *Prompter) Line(label string) string {
	fmt.Print(label)
	line, _ := p.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// Int prints the label and reads one integer.
func (p *Prompter) Int(label string) (int, error) {
	return strconv.Atoi(p.Line(label))
}

// Password prints the label and reads a password, suppressing echo on a
// terminal.
func (p *Prompter) Password(label string) string {
	fmt.Print(label)
	if p.isTTY {
		b, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err == nil {
			return string(b)
		}
	}
	line, _ := p.in.ReadString('\n')
	return strings.TrimSpace(line)
}
