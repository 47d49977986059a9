package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Input prompts for a single line of text and returns it with surrounding
// whitespace trimmed. The result may be empty; validation is the caller's.
func Input(title string) (string, error) {
	final, err := runProgram(newInputModel(title))
	if err != nil {
		return "", err
	}

	m := final.(inputModel)
	if m.cancelled {
		return "", ErrCancelled
	}
	return strings.TrimSpace(m.input.Value()), nil
}

type inputModel struct {
	title     string
	input     textinput.Model
	done      bool
	cancelled bool
}

func newInputModel(title string) inputModel {
	input := textinput.New()
	input.Prompt = ""
	input.Focus()
	return inputModel{
		title: title,
		input: input,
	}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case isAbort(keyMsg):
			m.cancelled = true
			return m, tea.Quit
		case keyMsg.String() == "enter":
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.cancelled {
		return ""
	}
	if m.done {
		return answered(m.title, strings.TrimSpace(m.input.Value()))
	}
	return header(m.title) + " " + m.input.View() + "\n"
}
