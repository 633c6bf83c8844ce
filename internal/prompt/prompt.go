// Package prompt asks the user how to resolve a duplicate pair on a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"bibmerge/internal/dedupe"
)

// ErrNoChoice is returned when input ends before a valid choice is read.
var ErrNoChoice = errors.New("no choice entered before end of input")

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiCyan  = "\x1b[36m"
	ansiRed   = "\x1b[31m"
)

const (
	questionSuffix = "are similar. Do you wish to keep the first (1), the second (2) or both (3)?"
	repeatPrompt   = "Enter your choice: "
	invalidChoice  = "The value must be either 1, 2 or 3."
)

// Terminal reads choices line by line from in and writes prompts to out.
// It implements dedupe.Chooser.
type Terminal struct {
	in       *bufio.Reader
	out      io.Writer
	colorize bool
}

var _ dedupe.Chooser = (*Terminal)(nil)

// NewTerminal builds a Terminal. Color is used only when out is a terminal.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:       bufio.NewReader(in),
		out:      out,
		colorize: shouldColorize(out),
	}
}

// Choose shows both renderings and blocks until the user enters 1, 2 or 3.
func (t *Terminal) Choose(first, second string) (int, error) {
	if _, err := io.WriteString(t.out, t.question(first, second)); err != nil {
		return 0, fmt.Errorf("write prompt: %w", err)
	}
	for {
		line, err := t.in.ReadString('\n')
		if choice, ok := parseChoice(line); ok {
			return choice, nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, ErrNoChoice
			}
			return 0, fmt.Errorf("read choice: %w", err)
		}
		if _, err := io.WriteString(t.out, t.paint(ansiRed, invalidChoice)+"\n"+repeatPrompt); err != nil {
			return 0, fmt.Errorf("write prompt: %w", err)
		}
	}
}

func (t *Terminal) question(first, second string) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(t.paint(ansiBold, "Entries:"))
	b.WriteString("\n\n")
	b.WriteString(t.paint(ansiCyan, "1-"))
	b.WriteString(" ")
	b.WriteString(first)
	b.WriteString("\n\n")
	b.WriteString(t.paint(ansiCyan, "2-"))
	b.WriteString(" ")
	b.WriteString(second)
	b.WriteString("\n\n")
	b.WriteString(questionSuffix)
	b.WriteString("\n")
	b.WriteString(repeatPrompt)
	return b.String()
}

func (t *Terminal) paint(color, s string) string {
	if !t.colorize {
		return s
	}
	return color + s + ansiReset
}

func parseChoice(line string) (int, bool) {
	value, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, false
	}
	switch value {
	case dedupe.ChoiceFirst, dedupe.ChoiceSecond, dedupe.ChoiceBoth:
		return value, true
	}
	return 0, false
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
