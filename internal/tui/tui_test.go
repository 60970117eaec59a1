// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/bot-console/internal/config"
	"github.com/MKhiriev/bot-console/internal/logger"
	"github.com/MKhiriev/bot-console/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eventually = time.Second

// fakeProgram records what the terminal asks of the program.
type fakeProgram struct {
	mu      sync.Mutex
	printed []string
	sent    []tea.Msg
	quits   int

	quit     chan struct{}
	quitOnce sync.Once
}

func newFakeProgram() *fakeProgram {
	return &fakeProgram{quit: make(chan struct{})}
}

func (p *fakeProgram) Run() (tea.Model, error) {
	<-p.quit
	return nil, nil
}

func (p *fakeProgram) Println(args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.printed = append(p.printed, fmt.Sprint(args...))
}

func (p *fakeProgram) Send(msg tea.Msg) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, msg)
}

func (p *fakeProgram) Quit() {
	p.mu.Lock()
	p.quits++
	p.mu.Unlock()
	p.quitOnce.Do(func() { close(p.quit) })
}

// lines returns every printed line, multi-line prints split.
func (p *fakeProgram) lines() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []string
	for _, text := range p.printed {
		out = append(out, strings.Split(text, "\n")...)
	}
	return out
}

func (p *fakeProgram) quitCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.quits
}

func newTestTUI(t *testing.T) (*TUI, *fakeProgram) {
	t.Helper()
	tu := newTUI("bot1", logger.Nop())
	fp := newFakeProgram()
	tu.program = fp
	t.Cleanup(func() {
		tu.output.stop()
		tu.input.stop()
	})
	return tu, fp
}

func TestNew_UsesConfiguredIdentity(t *testing.T) {
	tu, err := New(&config.ClientConfig{BotID: "bot1", User: models.ChannelAccount{ID: "u1"}}, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, tu.program)
	t.Cleanup(func() {
		tu.output.stop()
		tu.input.stop()
	})

	assert.Contains(t, tu.render.botPrompt, "bot1> ")
}

func TestTUI_ShowMessage_TextOnly(t *testing.T) {
	tu, fp := newTestTUI(t)

	tu.ShowMessage(models.Activity{Type: models.ActivityTypeMessage, Text: "hi there"})

	require.Eventually(t, func() bool { return len(fp.lines()) == 1 }, eventually, 5*time.Millisecond)
	assert.Contains(t, fp.lines()[0], "hi there")
}

func TestTUI_ShowMessage_Nothing_PrintsNothing(t *testing.T) {
	tu, fp := newTestTUI(t)

	tu.ShowMessage(models.Activity{Type: models.ActivityTypeMessage})
	tu.ShowInfo("marker")

	require.Eventually(t, func() bool { return len(fp.lines()) == 1 }, eventually, 5*time.Millisecond)
	assert.Equal(t, []string{"marker"}, fp.lines())
}

func TestTUI_OutputKeepsCallOrder(t *testing.T) {
	tu, fp := newTestTUI(t)

	tu.ShowInfo("Connection Status: Online")
	tu.JumpLine()
	tu.ShowError("Error posting activity: boom")
	tu.ShowHandoff(models.Activity{Type: models.ActivityTypeHandoff})
	tu.Close()

	require.Eventually(t, func() bool { return fp.quitCount() == 1 }, eventually, 5*time.Millisecond)

	lines := fp.lines()
	require.Len(t, lines, 5)
	assert.Equal(t, "Connection Status: Online", lines[0])
	assert.Empty(t, lines[1])
	assert.Contains(t, lines[2], "Error posting activity: boom")
	assert.Equal(t, "Handoff data: null", lines[3])
	assert.Equal(t, "Conversation transcript: null", lines[4])
}

func TestTUI_PromptUser_SendsPromptMsg(t *testing.T) {
	tu, fp := newTestTUI(t)

	tu.PromptUser()

	require.Eventually(t, func() bool {
		fp.mu.Lock()
		defer fp.mu.Unlock()
		return len(fp.sent) == 1
	}, eventually, 5*time.Millisecond)
	assert.IsType(t, promptMsg{}, fp.sent[0])
}

func TestTUI_Close_StopsOutputAndRunReturns(t *testing.T) {
	tu, fp := newTestTUI(t)

	done := make(chan error, 1)
	go func() { done <- tu.Run() }()

	tu.Close()
	tu.Close()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(eventually):
		t.Fatal("Run did not return after Close")
	}

	tu.ShowInfo("after close")
	tu.PromptUser()
	time.Sleep(20 * time.Millisecond)

	assert.Empty(t, fp.lines())
	assert.Equal(t, 1, fp.quitCount())
}

func TestTUI_OnUserMessage_EveryHandlerCalled(t *testing.T) {
	tu, _ := newTestTUI(t)

	var mu sync.Mutex
	var got []string
	record := func(prefix string) func(string) {
		return func(line string) {
			mu.Lock()
			defer mu.Unlock()
			got = append(got, prefix+line)
		}
	}

	tu.OnUserMessage(record("a:"))
	tu.OnUserMessage(record("b:"))

	tu.submit("one")
	tu.submit("two")

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 4
	}, eventually, 5*time.Millisecond)

	assert.Equal(t, []string{"a:one", "b:one", "a:two", "b:two"}, got)
}

func TestTUI_Run_SubmitsPipedLinesThenCloses(t *testing.T) {
	tu, fp := newTestTUI(t)
	tu.lines = strings.NewReader("hello\n\nworld")

	var mu sync.Mutex
	var got []string
	tu.OnUserMessage(func(line string) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, line)
	})

	done := make(chan error, 1)
	go func() { done <- tu.Run() }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(eventually):
		t.Fatal("Run did not return at end of input")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"hello", "", "world"}, got)
	assert.Equal(t, 1, fp.quitCount())
}

func TestNew_StdinNotATerminal_ReadsLines(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)

	origStdin, origIsTerminal := os.Stdin, isTerminal
	os.Stdin = r
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() {
		os.Stdin, isTerminal = origStdin, origIsTerminal
		_ = r.Close()
	})

	tu, err := New(&config.ClientConfig{BotID: "bot1", User: models.ChannelAccount{ID: "u1"}}, logger.Nop())
	require.NoError(t, err)
	require.Equal(t, r, tu.lines)

	fp := newFakeProgram()
	tu.program = fp

	lines := make(chan string, 1)
	tu.OnUserMessage(func(line string) { lines <- line })

	_, err = w.WriteString("hi\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	done := make(chan error, 1)
	go func() { done <- tu.Run() }()

	select {
	case line := <-lines:
		assert.Equal(t, "hi", line)
	case <-time.After(eventually):
		t.Fatal("piped line never submitted")
	}
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(eventually):
		t.Fatal("Run did not return after stdin closed")
	}
}
