package selector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ginjaninja78/CSV-to-YAML-inputs/internal/keys"
	"github.com/ginjaninja78/CSV-to-YAML-inputs/internal/types"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	checkedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	uncheckedMark = "[ ]"
	checkedMark   = "[x]"
)

// headerLines is the number of lines View prints above the key list.
const headerLines = 4

// Interactive lets the user toggle keys in a terminal checklist.
//
// Keys: up/k and down/j move the cursor (wrapping), space toggles the key
// under the cursor, enter confirms, esc or ctrl+c aborts.
//
// The terminal is put in raw mode only while Select runs and is restored on
// every exit path, including context cancellation. Signals are not handled
// here: callers cancel ctx on SIGINT/SIGTERM.
type Interactive struct {
	// Title is shown above the checklist.
	Title string

	// Input and Output default to the process terminal when nil.
	Input  io.Reader
	Output io.Writer
}

// Select runs the checklist over keys and returns the confirmed selection in
// discovery order. Aborting returns a KindAborted error.
func (s *Interactive) Select(ctx context.Context, discovered []string) ([]string, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithoutSignalHandler()}
	if s.Input != nil {
		opts = append(opts, tea.WithInput(s.Input))
	}
	if s.Output != nil {
		opts = append(opts, tea.WithOutput(s.Output))
	}

	p := tea.NewProgram(newModel(s.Title, discovered), opts...)
	finalModel, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
			return nil, types.NewError(types.KindAborted, "key selection cancelled", nil)
		}
		return nil, fmt.Errorf("failed to run key selector: %w", err)
	}

	result := finalModel.(model)
	if result.aborted {
		return nil, types.NewError(types.KindAborted, "key selection cancelled", nil)
	}

	return result.selection.Selected(), nil
}

// model is the BubbleTea model for the checklist. tea.Program delivers key
// presses to Update one at a time, in arrival order; Update is the only
// place the selection changes.
type model struct {
	title     string
	selection *keys.Selection
	height    int
	confirmed bool
	aborted   bool
}

func newModel(title string, discovered []string) model {
	if title == "" {
		title = "Select the keys to include"
	}
	return model{
		title:     title,
		selection: keys.NewSelection(discovered),
	}
}

// Init initializes the checklist model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update handles keyboard input.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height

	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit

		case msg.Type == tea.KeyEnter:
			m.confirmed = true
			return m, tea.Quit

		case msg.Type == tea.KeyUp || msg.String() == "k":
			m.selection.MoveUp()

		case msg.Type == tea.KeyDown || msg.String() == "j":
			m.selection.MoveDown()

		case msg.Type == tea.KeySpace || msg.String() == " ":
			m.selection.Toggle()
		}
	}

	return m, nil
}

// View renders the checklist. Once the program is done it renders nothing,
// so the menu is cleared from the terminal.
func (m model) View() string {
	if m.confirmed || m.aborted {
		return ""
	}

	var b strings.Builder

	selected := len(m.selection.Selected())
	total := m.selection.Len()

	b.WriteString(titleStyle.Render(m.title) + "\n")
	b.WriteString(mutedStyle.Render("[↑/↓] Navigate    [Space] Toggle    [Enter] Confirm    [Esc] Cancel") + "\n")
	if selected == 0 {
		b.WriteString(warningStyle.Render("No keys selected") + "\n\n")
	} else {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%d of %d selected", selected, total)) + "\n\n")
	}

	names := m.selection.Keys()
	start, end := m.visibleRange()
	for i := start; i < end; i++ {
		key := names[i]

		mark := uncheckedMark
		if m.selection.IsSelected(i) {
			mark = checkedStyle.Render(checkedMark)
		}

		if i == m.selection.Cursor() {
			b.WriteString(cursorStyle.Render("> ") + mark + " " + cursorStyle.Render(key) + "\n")
		} else {
			b.WriteString("  " + mark + " " + key + "\n")
		}
	}

	return b.String()
}

// visibleRange returns the window of keys that fits the terminal, keeping
// the cursor in view.
func (m model) visibleRange() (int, int) {
	total := m.selection.Len()
	rows := m.height - headerLines
	if m.height <= 0 || rows >= total {
		return 0, total
	}
	if rows < 1 {
		rows = 1
	}

	start := m.selection.Cursor() - rows/2
	if start < 0 {
		start = 0
	}
	if start+rows > total {
		start = total - rows
	}
	return start, start + rows
}
