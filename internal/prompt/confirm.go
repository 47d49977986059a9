package prompt

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Confirm asks a yes/no question. Enter accepts the preset answer.
func Confirm(question string, preset bool) (bool, error) {
	final, err := runProgram(confirmModel{question: question, answer: preset})
	if err != nil {
		return false, err
	}

	m := final.(confirmModel)
	if m.cancelled {
		return false, ErrCancelled
	}
	return m.answer, nil
}

type confirmModel struct {
	question  string
	answer    bool
	done      bool
	cancelled bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case isAbort(keyMsg):
		m.cancelled = true
		return m, tea.Quit
	case keyMsg.String() == "y" || keyMsg.String() == "Y":
		m.answer = true
		m.done = true
		return m, tea.Quit
	case keyMsg.String() == "n" || keyMsg.String() == "N":
		m.answer = false
		m.done = true
		return m, tea.Quit
	case keyMsg.String() == "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.cancelled {
		return ""
	}
	if m.done {
		if m.answer {
			return answered(m.question, "yes")
		}
		return answered(m.question, "no")
	}

	hint := "(y/N)"
	if m.answer {
		hint = "(Y/n)"
	}
	return header(m.question) + " " + hintStyle.Render(hint) + " \n"
}
