package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func update(t *testing.T, m inputModel, msg tea.Msg) (inputModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(inputModel)
	require.True(t, ok)
	return updated, cmd
}

func TestInputModel_HiddenUntilPrompt(t *testing.T) {
	m := newInputModel("u1", func(string) {})

	assert.Empty(t, m.View())

	m, _ = update(t, m, promptMsg{})

	assert.Contains(t, m.View(), "u1> ")
}

func TestInputModel_Submit(t *testing.T) {
	var submitted []string
	m := newInputModel("u1", func(line string) { submitted = append(submitted, line) })

	m, _ = update(t, m, promptMsg{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hello")})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []string{"hello"}, submitted)
	assert.Empty(t, m.input.Value())
	assert.NotNil(t, cmd, "submitted line is echoed")
}

func TestInputModel_EnterBeforePrompt_Ignored(t *testing.T) {
	called := false
	m := newInputModel("u1", func(string) { called = true })

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, called)
	assert.Nil(t, cmd)
}

func TestInputModel_QuitKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{name: "ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}},
		{name: "esc", msg: tea.KeyMsg{Type: tea.KeyEsc}},
		{name: "ctrl+d on empty line", msg: tea.KeyMsg{Type: tea.KeyCtrlD}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newInputModel("u1", func(string) {})
			m, _ = update(t, m, promptMsg{})

			m, cmd := update(t, m, tt.msg)

			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.Empty(t, m.View())
		})
	}
}

func TestInputModel_CtrlD_WithText_DoesNotQuit(t *testing.T) {
	m := newInputModel("u1", func(string) {})
	m, _ = update(t, m, promptMsg{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})

	assert.False(t, m.quitting)
}
