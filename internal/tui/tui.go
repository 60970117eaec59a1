// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the line-based chat terminal: bot output is printed above a
// single input line, styled with lipgloss, and every submitted line is handed
// to the registered handlers.
package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/bot-console/internal/config"
	"github.com/MKhiriev/bot-console/internal/logger"
	"github.com/MKhiriev/bot-console/models"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

var isTerminal = term.IsTerminal

// program is the part of *tea.Program the terminal drives.
type program interface {
	Run() (tea.Model, error)
	Println(args ...any)
	Send(msg tea.Msg)
	Quit()
}

// TUI prints bot output above the input line. Output calls may come from any
// goroutine; they are applied in call order.
type TUI struct {
	program program
	render  renderer

	// lines is read line by line when standard input is not a terminal
	lines io.Reader

	// output feeds the program, input feeds the handlers
	output *opQueue
	input  *opQueue

	mu       sync.Mutex
	handlers []func(line string)

	closed atomic.Bool
	logger *logger.Logger
}

// New builds the terminal for the configured bot and user. Nothing is shown
// until Run is called. When standard input is not a terminal, each line read
// from it is a submitted line and end of input closes the terminal.
func New(cfg *config.ClientConfig, log *logger.Logger) (*TUI, error) {
	t := newTUI(cfg.BotID, log)

	var opts []tea.ProgramOption
	if !isTerminal(int(os.Stdin.Fd())) {
		opts = append(opts, tea.WithInput(nil))
		t.lines = os.Stdin
	}
	t.program = tea.NewProgram(newInputModel(cfg.User.ID, t.submit), opts...)

	return t, nil
}

func newTUI(botID string, log *logger.Logger) *TUI {
	return &TUI{
		render: newRenderer(botID),
		output: newOpQueue(),
		input:  newOpQueue(),
		logger: log.GetChildLogger("tui"),
	}
}

// Run blocks until the terminal is closed by Close or by the user
// (Ctrl+C, Esc, or Ctrl+D on an empty line).
func (t *TUI) Run() error {
	if t.lines != nil {
		go t.readLines(t.lines)
	}

	_, err := t.program.Run()

	t.closed.Store(true)
	t.output.stop()
	t.input.stop()

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run terminal: %w", err)
	}

	t.logger.Debug().Msg("terminal closed")
	return nil
}

// OnUserMessage registers handler. Every handler is called once per submitted
// line, in registration order.
func (t *TUI) OnUserMessage(handler func(line string)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.handlers = append(t.handlers, handler)
}

func (t *TUI) ShowInfo(text string) {
	t.print(text)
}

func (t *TUI) ShowError(text string) {
	t.print(errorStyle.Render(text))
}

// ShowMessage prints the text, attachments and suggested actions of a bot
// message.
func (t *TUI) ShowMessage(activity models.Activity) {
	t.print(t.render.message(activity)...)
}

// ShowHandoff prints the raw channel data and transcript of a handoff.
func (t *TUI) ShowHandoff(activity models.Activity) {
	t.print(t.render.handoff(activity)...)
}

// PromptUser shows the input line.
func (t *TUI) PromptUser() {
	if t.closed.Load() {
		return
	}
	t.output.push(func() { t.program.Send(promptMsg{}) })
}

func (t *TUI) JumpLine() {
	t.print("")
}

// Close quits the program once everything printed so far is out.
func (t *TUI) Close() {
	if t.closed.Swap(true) {
		return
	}
	t.output.push(func() { t.program.Quit() })
}

func (t *TUI) print(lines ...string) {
	if len(lines) == 0 || t.closed.Load() {
		return
	}

	text := strings.Join(lines, "\n")
	t.output.push(func() { t.program.Println(text) })
}

func (t *TUI) submit(line string) {
	t.input.push(func() {
		t.mu.Lock()
		handlers := append([]func(string){}, t.handlers...)
		t.mu.Unlock()

		for _, handler := range handlers {
			handler(line)
		}
	})
}

// readLines submits every line of r, then closes the terminal once the
// handlers have seen them all.
func (t *TUI) readLines(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		t.submit(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.logger.Error().Err(err).Msg("read input")
	}

	t.input.push(t.Close)
}
