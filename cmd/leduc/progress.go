package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/chrisculver/postflop-solver/solver"
)

// display receives solver progress snapshots while a solve runs.
type display interface {
	Start()
	Progress(p solver.Progress)
	Stop()
}

// newDisplay picks the live progress rendering: nothing when quiet, a
// bubbletea meter on color terminals, plain dots otherwise.
func newDisplay(quiet bool, maxIterations int, cancel func()) display {
	if quiet {
		return noDisplay{}
	}
	if termenv.ColorProfile() == termenv.Ascii {
		return newDotDisplay(maxIterations)
	}
	return newMeterDisplay(maxIterations, cancel)
}

type noDisplay struct{}

func (noDisplay) Start()                   {}
func (noDisplay) Progress(solver.Progress) {}
func (noDisplay) Stop()                    {}

// dotDisplay prints a dot per snapshot, fifty to a line, for terminals
// without color support.
type dotDisplay struct {
	mu            sync.Mutex
	maxIterations int
	dots          int
	dotsPerLine   int
}

func newDotDisplay(maxIterations int) *dotDisplay {
	return &dotDisplay{maxIterations: maxIterations, dotsPerLine: 50}
}

func (d *dotDisplay) Start() {}

func (d *dotDisplay) Progress(p solver.Progress) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if p.Iteration == 0 {
		return
	}
	fmt.Fprint(os.Stderr, ".")
	d.dots++
	if d.dots%d.dotsPerLine == 0 {
		fmt.Fprintf(os.Stderr, " %d/%d (%.2e)\n", p.Iteration, d.maxIterations, p.Exploitability)
	}
}

func (d *dotDisplay) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.dots%d.dotsPerLine != 0 {
		fmt.Fprintln(os.Stderr)
	}
}

// meterDisplay renders a live progress bar through bubbletea. The
// solver pushes snapshots in through Send from its own goroutine.
type meterDisplay struct {
	program *tea.Program
}

type progressMsg solver.Progress

type solveDoneMsg struct{}

func newMeterDisplay(maxIterations int, cancel func()) *meterDisplay {
	model := meterModel{
		bar:           progress.New(progress.WithDefaultGradient()),
		maxIterations: maxIterations,
		cancel:        cancel,
	}
	return &meterDisplay{
		program: tea.NewProgram(model, tea.WithOutput(os.Stderr)),
	}
}

func (d *meterDisplay) Start() {
	go func() {
		if _, err := d.program.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running progress display: %v\n", err)
		}
	}()
}

func (d *meterDisplay) Progress(p solver.Progress) {
	d.program.Send(progressMsg(p))
}

func (d *meterDisplay) Stop() {
	d.program.Send(solveDoneMsg{})
	d.program.Wait()
}

type meterModel struct {
	bar           progress.Model
	maxIterations int
	cancel        func()
	last          solver.Progress
}

func (m meterModel) Init() tea.Cmd { return nil }

func (m meterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.last = solver.Progress(msg)
		return m, nil
	case solveDoneMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.cancel()
		}
		return m, nil
	case tea.WindowSizeMsg:
		w := msg.Width - 30
		if w > 60 {
			w = 60
		}
		if w > 0 {
			m.bar.Width = w
		}
		return m, nil
	}
	return m, nil
}

func (m meterModel) View() string {
	pct := float64(m.last.Iteration) / float64(m.maxIterations)
	if pct > 1 {
		pct = 1
	}
	stats := fmt.Sprintf("iteration %d/%d   exploitability %.2e   %s",
		m.last.Iteration,
		m.maxIterations,
		m.last.Exploitability,
		m.last.Elapsed.Round(time.Millisecond),
	)
	return fmt.Sprintf("\n  %s %3.0f%%\n  %s\n", m.bar.ViewAs(pct), pct*100, infoStyle.Render(stats))
}
