// Package prompt implements the line-oriented questions asked while building
// an issue: free text, numbered menus, confirmations and a calendar.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/duailibe/jcli-create/internal/ui"
)

// ErrInputClosed is returned once the input stream is exhausted, so that no
// prompt keeps asking a closed terminal.
var ErrInputClosed = errors.New("input closed")

type Prompter struct {
	in  *bufio.Reader
	out *ui.Printer
}

func New(in io.Reader, out *ui.Printer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

func (p *Prompter) Printer() *ui.Printer {
	return p.out
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			p.out.Println()
			return "", ErrInputClosed
		}
	}
	return strings.TrimSpace(line), nil
}

// Input shows label, with def in brackets when set, and returns the trimmed
// answer or def when the answer is empty.
func (p *Prompter) Input(label, def string) (string, error) {
	if def != "" {
		p.out.Printf("%s [%s]: ", label, def)
	} else {
		p.out.Printf("%s: ", label)
	}

	answer, err := p.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// Required repeats Input until the answer is non-empty.
func (p *Prompter) Required(label, missing string) (string, error) {
	for {
		answer, err := p.Input(label, "")
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		p.out.Error(missing)
	}
}

// Select shows items as a 1-based menu and returns the chosen entry. An
// empty answer picks items[defaultIndex].
func (p *Prompter) Select(title string, items []string, defaultIndex int) (string, error) {
	if len(items) == 0 {
		return "", errors.New("no options to choose from")
	}
	if defaultIndex < 0 || defaultIndex >= len(items) {
		defaultIndex = 0
	}

	p.out.Title(title)
	p.out.Println(strings.Repeat("-", 40))
	for i, item := range items {
		marker := " "
		if i == defaultIndex {
			marker = p.out.Accent("→")
		}
		p.out.Printf("%s %d. %s\n", marker, i+1, item)
	}

	for {
		p.out.Printf("\nEnter choice (1-%d) [%d]: ", len(items), defaultIndex+1)
		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		if answer == "" {
			return items[defaultIndex], nil
		}

		n, convErr := strconv.Atoi(answer)
		if convErr != nil {
			p.out.Error("Please enter a valid number")
			continue
		}
		if n < 1 || n > len(items) {
			p.out.Error(fmt.Sprintf("Please enter a number between 1 and %d", len(items)))
			continue
		}
		return items[n-1], nil
	}
}

// Confirm asks a yes/no question defaulting to yes.
func (p *Prompter) Confirm(label string) (bool, error) {
	answer, err := p.Input(label+" (y/n)", "y")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
