package prompt

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SelectOption configures a Select prompt.
type SelectOption func(*selectModel)

// WithDefault places the initial cursor on the option at index i.
func WithDefault(i int) SelectOption {
	return func(m *selectModel) {
		m.defaultIndex = i
	}
}

// WithFilter lets the user narrow the options by typing.
func WithFilter() SelectOption {
	return func(m *selectModel) {
		m.filter = true
	}
}

// WithInitial seeds the filter query. Implies WithFilter.
func WithInitial(query string) SelectOption {
	return func(m *selectModel) {
		m.filter = true
		m.initial = query
	}
}

// Select prompts the user to pick one of options and returns its index into
// the options slice as passed in, regardless of filtering.
func Select(title string, options []string, opts ...SelectOption) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("nothing to select from")
	}

	final, err := runProgram(newSelectModel(title, options, opts...))
	if err != nil {
		return 0, err
	}

	m := final.(selectModel)
	if m.cancelled {
		return 0, ErrCancelled
	}
	return m.choice, nil
}

type selectModel struct {
	title        string
	options      []string
	filter       bool
	initial      string
	defaultIndex int

	input   textinput.Model
	visible []int // indices into options, best match first
	cursor  int   // position within visible

	choice    int
	done      bool
	cancelled bool
}

func newSelectModel(title string, options []string, opts ...SelectOption) selectModel {
	m := selectModel{
		title:   title,
		options: options,
	}
	for _, opt := range opts {
		opt(&m)
	}

	input := textinput.New()
	input.Prompt = ""
	input.SetValue(m.initial)
	input.Focus()
	m.input = input

	m.rebuild()

	// Start on the requested default when it survives the initial query.
	for pos, idx := range m.visible {
		if idx == m.defaultIndex {
			m.cursor = pos
			break
		}
	}
	return m
}

// rebuild refreshes the visible list from the current query.
func (m *selectModel) rebuild() {
	query := ""
	if m.filter {
		query = m.input.Value()
	}
	m.visible = filterOptions(m.options, query)

	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m selectModel) Init() tea.Cmd {
	if m.filter {
		return textinput.Blink
	}
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case isAbort(keyMsg):
		m.cancelled = true
		return m, tea.Quit
	case keyMsg.String() == "enter":
		if len(m.visible) == 0 {
			return m, nil
		}
		m.choice = m.visible[m.cursor]
		m.done = true
		return m, tea.Quit
	case keyMsg.String() == "up" || keyMsg.String() == "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case keyMsg.String() == "down" || keyMsg.String() == "ctrl+n":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		return m, nil
	}

	if !m.filter {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.rebuild()
	return m, cmd
}

func (m selectModel) View() string {
	if m.cancelled {
		return ""
	}
	if m.done {
		return answered(m.title, m.options[m.choice])
	}

	view := header(m.title)
	if m.filter {
		view += " " + m.input.View()
	}
	view += "\n"

	for pos, idx := range m.visible {
		if pos == m.cursor {
			view += cursorStyle.Render("> ") + activeStyle.Render(m.options[idx]) + "\n"
		} else {
			view += "  " + m.options[idx] + "\n"
		}
	}
	if len(m.visible) == 0 {
		view += hintStyle.Render("  no matches") + "\n"
	}
	return view
}
