package controller

import (
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/mapconv/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
	mu      sync.Mutex
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(options ...StartOption) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return fmt.Errorf("ui already started")
	}

	cfg := newStartConfig(options)
	t.program = tea.NewProgram(newConvertModel(cfg.mode), tea.WithOutput(t.output), tea.WithInput(nil))
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		_, _ = t.program.Run()
	}()

	return nil
}

// Close stops the program and waits for the final frame to be drawn.
func (t *TUI) Close() {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program = nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// DisplayPlan shows the files about to be processed.
func (t *TUI) DisplayPlan(sources []m.Source, threads int) {
	t.send(planMsg{sources: sources, threads: threads})
}

// DisplayStarted marks a file as in progress.
func (t *TUI) DisplayStarted(source m.Source) {
	t.send(startedMsg{source: source})
}

// DisplayCompleted records the outcome of one file.
func (t *TUI) DisplayCompleted(report m.Report) {
	t.send(completedMsg{report: report})
}

// DisplaySummary renders the final summary and ends the program.
func (t *TUI) DisplaySummary(reports []m.Report) error {
	t.send(summaryMsg{reports: reports})
	return nil
}

// DisplayStats prints the statistics of a single mapping file. It needs no
// interaction, so it is rendered once without a program.
func (t *TUI) DisplayStats(path m.Path, stats m.Stats) error {
	_, err := fmt.Fprint(t.output, renderStats(path, stats))
	return err
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}
