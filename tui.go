package genfix

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

type spinner struct {
	frames []string
	index  int
}

func newSpinner() spinner {
	return spinner{frames: []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}}
}
func (s *spinner) tick()       { s.index = (s.index + 1) % len(s.frames) }
func (s spinner) View() string { return s.frames[s.index] }

type TUI struct {
	app         *App
	noAnimation bool
	spinner     spinner
	mu          sync.Mutex
	cur, total  int
}

func NewTUI(app *App, noAnimation bool) *TUI {
	return &TUI{app: app, noAnimation: noAnimation, spinner: newSpinner()}
}

func (t *TUI) Run() error {
	if t.noAnimation {
		summary, err := t.app.Execute()
		if err == nil {
			fmt.Print(FormatSummary(summary))
		}
		return err
	}

	t.app.SetProgressCallback(func(c, tot int) {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.cur, t.total = c, tot
	})

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case <-time.After(100 * time.Millisecond):
				t.spinner.tick()
				t.renderProgress()
			}
		}
	}()

	summary, err := t.app.Execute()
	close(done)
	fmt.Print("\r\x1b[K")

	if err == nil {
		fmt.Print(FormatSummary(summary))
	}
	return err
}

func (t *TUI) renderProgress() {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Printf("\r%s Scanning... %d/%d\x1b[K", t.spinner.View(), t.cur, t.total)
}

func FormatSummary(s Summary) string {
	var b strings.Builder
	if s.Message != "" {
		b.WriteString(headerStyle.Render(s.Message) + "\n")
	}

	if len(s.Fixed) > 0 {
		b.WriteString(successStyle.Render("Fixed:") + "\n")
		for _, f := range s.Fixed {
			b.WriteString(fmt.Sprintf("  %s\n", f))
		}
	}

	if s.AlreadyPatched > 0 || s.NoMatch > 0 {
		b.WriteString(skippedStyle.Render(
			fmt.Sprintf("Skipped: %d already patched, %d without matching imports", s.AlreadyPatched, s.NoMatch)) + "\n")
	}

	return b.String()
}
