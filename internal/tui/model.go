package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputModel is the single input line under the printed conversation. It is
// hidden until the first promptMsg.
type inputModel struct {
	input     textinput.Model
	prompting bool
	quitting  bool

	submit func(line string)
}

func newInputModel(userID string, submit func(line string)) inputModel {
	ti := textinput.New()
	ti.Prompt = userID + "> "
	ti.PromptStyle = userPromptStyle

	return inputModel{input: ti, submit: submit}
}

func (m inputModel) Init() tea.Cmd {
	return nil
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case promptMsg:
		m.prompting = true
		return m, m.input.Focus()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.eof) && m.input.Value() == "":
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.submit):
			if !m.prompting {
				return m, nil
			}
			line := m.input.Value()
			m.input.Reset()
			m.submit(line)
			return m, tea.Println(userPromptStyle.Render(m.input.Prompt) + line)
		}
	}

	if !m.prompting {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.quitting || !m.prompting {
		return ""
	}
	return m.input.View()
}
