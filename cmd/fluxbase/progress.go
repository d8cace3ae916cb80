package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fluxbase/fluxbase/internal/fluxcodec"
)

const progressBarWidth = 40

var (
	barFilledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	barEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	labelStyle     = lipgloss.NewStyle().Bold(true)
)

// progressMsg wraps a fluxcodec.Progress update for bubbletea's Update
// loop.
type progressMsg fluxcodec.Progress

// doneMsg signals the streaming goroutine finished, carrying its error
// (nil on success).
type doneMsg struct{ err error }

type progressModel struct {
	label   string
	ch      <-chan fluxcodec.Progress
	done    <-chan error
	current fluxcodec.Progress
	err     error
	closed  bool
}

func newProgressModel(label string, ch <-chan fluxcodec.Progress, done <-chan error) progressModel {
	return progressModel{label: label, ch: ch, done: done}
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(waitForProgress(m.ch), waitForDone(m.done))
}

func waitForProgress(ch <-chan fluxcodec.Progress) tea.Cmd {
	return func() tea.Msg {
		p, ok := <-ch
		if !ok {
			return nil
		}
		return progressMsg(p)
	}
}

func waitForDone(done <-chan error) tea.Cmd {
	return func() tea.Msg {
		return doneMsg{err: <-done}
	}
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.current = fluxcodec.Progress(msg)
		return m, waitForProgress(m.ch)
	case doneMsg:
		m.err = msg.err
		m.closed = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.closed {
		return ""
	}
	return fmt.Sprintf("%s %s\n", labelStyle.Render(m.label), renderBar(m.current))
}

func renderBar(p fluxcodec.Progress) string {
	if p.BytesTotal <= 0 {
		return fmt.Sprintf("%d bytes", p.BytesDone)
	}
	frac := float64(p.BytesDone) / float64(p.BytesTotal)
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(progressBarWidth))
	bar := barFilledStyle.Render(strings.Repeat("#", filled)) +
		barEmptyStyle.Render(strings.Repeat("-", progressBarWidth-filled))
	return fmt.Sprintf("[%s] %d/%d bytes", bar, p.BytesDone, p.BytesTotal)
}

// runWithProgress drives work (a blocking streaming call) in a
// goroutine and, while it runs, shows a bubbletea progress bar fed by
// progressCh. work must send on progressCh itself (via
// fluxcodec.Options.Progress) and must not close it; runWithProgress
// closes progressCh once work returns, then sends work's error on done.
func runWithProgress(label string, progressCh chan fluxcodec.Progress, work func() error) error {
	done := make(chan error, 1)
	go func() {
		err := work()
		close(progressCh)
		done <- err
	}()

	model := newProgressModel(label, progressCh, done)
	program := tea.NewProgram(model)
	finalModel, err := program.Run()
	if err != nil {
		return err
	}
	if fm, ok := finalModel.(progressModel); ok {
		return fm.err
	}
	return nil
}
