// Package prompt implements the interactive prompts switchy uses: a
// filterable select list, single-line text input, and yes/no confirmation.
//
// Each prompt runs as a small bubbletea program on stderr, so prompts stay
// visible while command output on stdout composes with pipelines. Aborting a
// prompt (ctrl+c or esc) returns ErrCancelled; bubbletea's teardown restores
// the terminal, cursor included.
package prompt

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user aborts a prompt. Callers treat it
// as a clean exit, not a failure.
var ErrCancelled = errors.New("prompt cancelled")

var (
	markStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	answerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// runProgram runs a prompt model to completion on stderr.
func runProgram(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m, tea.WithOutput(os.Stderr)).Run()
}

// isAbort reports whether a key aborts the prompt.
func isAbort(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "esc":
		return true
	}
	return false
}

// header renders the "? Title" prefix shared by all prompts.
func header(title string) string {
	return markStyle.Render("?") + " " + titleStyle.Render(title)
}

// answered renders the collapsed line shown once a prompt is resolved.
func answered(title, answer string) string {
	return header(title) + " " + answerStyle.Render(answer) + "\n"
}
