// Package prompt asks for text answers on a line-oriented terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Prompter asks questions on Out and reads answers from In.
//
// Answers are read through one buffered reader, so several prompts in a row
// can share piped input.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// New returns a Prompter over in and out. Nil values fall back to
// os.Stdin and os.Stdout.
func New(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{reader: bufio.NewReader(in), out: out}
}

// Ask prints message with defaultValue as a hint and returns the trimmed
// answer. A blank answer, or end of input, returns defaultValue.
//
// Example:
//
//	name := p.Ask("Input file", "customdata.csv")
//	// Displays: Input file (customdata.csv): _
func (p *Prompter) Ask(message, defaultValue string) string {
	if defaultValue != "" {
		fmt.Fprint(p.out, promptStyle.Render(message)+" "+
			hintStyle.Render(fmt.Sprintf("(%s)", defaultValue))+": ")
	} else {
		fmt.Fprint(p.out, promptStyle.Render(message)+": ")
	}

	answer, err := p.reader.ReadString('\n')
	if err != nil && answer == "" {
		return defaultValue
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return defaultValue
	}
	return answer
}
