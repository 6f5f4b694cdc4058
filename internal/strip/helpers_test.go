package strip

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func label(s string, _ int) string { return s }

// recordingScheduler fires immediately and remembers every requested delay.
type recordingScheduler struct {
	delays []time.Duration
}

func (r *recordingScheduler) schedule(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	r.delays = append(r.delays, d)
	return func() tea.Msg { return fn(time.Time{}) }
}

type recordingScroller struct {
	reqs []ScrollRequest
}

func (r *recordingScroller) ScrollTo(req ScrollRequest) {
	r.reqs = append(r.reqs, req)
}

// drain runs cmd and flattens batches into the messages they produce.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func scrollMsgs(msgs []tea.Msg) []scrollMsg {
	var out []scrollMsg
	for _, msg := range msgs {
		if s, ok := msg.(scrollMsg); ok {
			out = append(out, s)
		}
	}
	return out
}

// settle steps the strip's frame loop until nothing moves.
func settle[T any](t *testing.T, m *Model[T]) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if !m.Animating() {
			return
		}
		m.Update(frameMsg{id: m.id})
	}
	t.Fatalf("strip still animating after 1000 frames: indicator=%v target=%v", m.Indicator(), m.Geometry())
}

// plainLines renders the strip without ANSI styling, one entry per row.
func plainLines[T any](m *Model[T]) []string {
	v := m.View()
	if v == "" {
		return nil
	}
	return strings.Split(ansi.Strip(v), "\n")
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}
