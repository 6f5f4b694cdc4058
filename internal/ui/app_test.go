package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"stripkit/internal/strip"
	"stripkit/internal/telemetry"
)

func newTestApp(t *testing.T, selected int) (*appModelAdapter, *tracetest.SpanRecorder, *int) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	sel := selected
	a := NewAppModel(Options{
		Sections:   NewSections([]string{"Overview", "Layout", "Indicator"}),
		Config:     strip.DefaultConfig[Section](),
		Selection:  strip.BindInt(&sel),
		Recorder:   telemetry.NewRecorder(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))),
		MaxVisible: 2,
	})
	adapter := a.AsTeaModel().(*appModelAdapter)
	adapter.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return adapter, sr, &sel
}

// send feeds msg to the app, then feeds back any message its command returns directly.
func send(a *appModelAdapter, msg tea.Msg) {
	_, cmd := a.Update(msg)
	if cmd == nil {
		return
	}
	switch m := cmd().(type) {
	case CycleStyleMsg, CycleShapeMsg, FlipEdgeMsg, ToggleFullWidthMsg, ResetSelectionMsg, ToggleHelpMsg:
		a.Update(m)
	}
}

func spanSources(sr *tracetest.SpanRecorder) []string {
	var out []string
	for _, s := range sr.Ended() {
		for _, kv := range s.Attributes() {
			if kv.Key == attribute.Key("stripkit.source") {
				out = append(out, kv.Value.AsString())
			}
		}
	}
	return out
}

func TestNewAppModel_ShowsInitialSection(t *testing.T) {
	a, sr, _ := newTestApp(t, 1)

	assert.Equal(t, 1, a.Strip.ActiveIndex())
	assert.Equal(t, "Layout", a.Body.Section().Title)
	assert.Empty(t, sr.Ended(), "initial selection is not a change")
	assert.Contains(t, a.View(), "Layout")
}

func TestApp_TapUpdatesBodyAndRecords(t *testing.T) {
	a, sr, sel := newTestApp(t, 0)

	send(a, keyMsg("l"))

	assert.Equal(t, 1, a.Strip.ActiveIndex())
	assert.Equal(t, 1, *sel)
	assert.Equal(t, "Layout", a.Body.Section().Title)
	assert.Equal(t, []string{"tap"}, spanSources(sr))
}

func TestApp_ClickSelectsTab(t *testing.T) {
	a, _, _ := newTestApp(t, 0)

	r, ok := a.Strip.Bounds().Lookup(2, strip.BoundsItemContainer)
	require.True(t, ok)
	send(a, tea.MouseMsg{
		X:      r.X - a.Strip.ScrollOffset(),
		Y:      stripTop + r.Y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})

	assert.Equal(t, 2, a.Strip.ActiveIndex())
	assert.Equal(t, "Indicator", a.Body.Section().Title)
}

func TestApp_ResetSelectionIsExternal(t *testing.T) {
	a, sr, sel := newTestApp(t, 2)

	send(a, ResetSelectionMsg{})

	assert.Equal(t, 0, *sel)
	assert.Equal(t, 0, a.Strip.ActiveIndex())
	assert.Equal(t, "Overview", a.Body.Section().Title)
	assert.Equal(t, []string{"external"}, spanSources(sr))

	send(a, ResetSelectionMsg{})
	assert.Len(t, sr.Ended(), 1, "repeated value must not fire again")
}

func TestApp_LeaderCyclesConfig(t *testing.T) {
	a, _, _ := newTestApp(t, 0)

	for _, k := range []string{" ", "c", "i"} {
		send(a, keyMsg(k))
	}
	assert.Equal(t, strip.Box(0), a.Strip.Config().IndicatorShape())
	assert.False(t, a.KeyHandler.LeaderWaiting)

	for _, k := range []string{" ", "c", "s"} {
		send(a, keyMsg(k))
	}
	assert.Equal(t, strip.Fit(2), a.Strip.Config().LayoutStyle())

	for _, k := range []string{" ", "c", "e"} {
		send(a, keyMsg(k))
	}
	assert.Equal(t, strip.EdgeTop, a.Strip.Config().IndicatorEdge())

	for _, k := range []string{" ", "c", "w"} {
		send(a, keyMsg(k))
	}
	assert.True(t, a.Strip.Config().FullWidthIndicator())
	assert.NotNil(t, a.Strip.Config().OnItemSelected(), "callback survives reconfiguration")
}

func TestApp_ShapeCycle(t *testing.T) {
	shapes := []strip.IndicatorShape{strip.Bar(), strip.Box(0), strip.Box(1), strip.Capsule(), strip.Bar()}
	for i := 0; i < len(shapes)-1; i++ {
		assert.Equal(t, shapes[i+1], nextShape(shapes[i]), "after %s", shapes[i])
	}
}

func TestApp_BodyFillsRemainingHeight(t *testing.T) {
	a, _, _ := newTestApp(t, 0)
	barHeight := a.Strip.Height()
	assert.Equal(t, 24-stripTop-barHeight-1, a.Body.Height())

	send(a, CycleShapeMsg{})
	require.Greater(t, a.Strip.Height(), barHeight, "outlined shapes add frame rows")
	assert.Equal(t, 24-stripTop-a.Strip.Height()-1, a.Body.Height())
}

func TestApp_HelpMode(t *testing.T) {
	a, _, _ := newTestApp(t, 0)

	send(a, keyMsg("?"))
	assert.Equal(t, ModeHelp, a.Mode)
	view := a.View()
	assert.Contains(t, view, "previous")
	assert.Contains(t, view, "scroll")

	send(a, keyMsg("l"))
	assert.Equal(t, 0, a.Strip.ActiveIndex(), "strip keys are ignored in help mode")

	send(a, keyMsg("esc"))
	assert.Equal(t, ModeBrowse, a.Mode)
}

func TestApp_QuitKeys(t *testing.T) {
	a, _, _ := newTestApp(t, 0)
	for _, k := range []string{"q", "ctrl+c"} {
		msg := keyMsg(k)
		if k == "ctrl+c" {
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		}
		_, cmd := a.Update(msg)
		require.NotNil(t, cmd, k)
		assert.IsType(t, tea.QuitMsg{}, cmd(), k)
	}
}

func TestApp_LeaderHelpInFooter(t *testing.T) {
	a, _, _ := newTestApp(t, 0)
	assert.Contains(t, a.View(), "SPC commands")

	send(a, keyMsg(" "))
	view := a.View()
	assert.Contains(t, view, "Config")
	assert.NotContains(t, view, "SPC commands")
}
