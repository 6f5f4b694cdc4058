package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"stripkit/internal/strip"
	"stripkit/internal/telemetry"
	"stripkit/internal/ui/textutil"
)

// StripName identifies the section strip in persistence and telemetry.
const StripName = "sections"

// stripTop is the row the strip starts on; the title occupies row 0.
const stripTop = 1

// Options configures NewAppModel.
type Options struct {
	Sections   []Section
	Config     strip.Config[Section]
	Selection  strip.Binding       // nil = in-memory
	Recorder   *telemetry.Recorder // nil = no telemetry
	MaxVisible int                 // fit style used by SPC c s; defaults to 4
}

// AppModel is the root model: a section strip above a scrollable body.
type AppModel struct {
	Mode       AppMode
	Strip      *strip.Model[Section]
	Body       *SectionView
	KeyHandler *KeyHandler
	Selection  strip.Binding
	Recorder   *telemetry.Recorder

	maxVisible int
	previous   int
	width      int
	height     int
}

// NewAppModel creates the root application model.
func NewAppModel(opts Options) *AppModel {
	a := &AppModel{
		Mode:       ModeBrowse,
		Body:       NewSectionView(),
		Selection:  opts.Selection,
		Recorder:   opts.Recorder,
		maxVisible: opts.MaxVisible,
	}
	if a.Selection == nil {
		a.Selection = strip.BindInt(nil)
	}
	if a.maxVisible < 1 {
		a.maxVisible = 4
	}
	a.KeyHandler = NewKeyHandler(newRegistry())

	cfg := opts.Config.WithOnItemSelected(a.onSectionSelected)
	a.Strip = strip.New(opts.Sections, a.Selection, RenderTab, cfg)
	a.Strip.SetOrigin(0, stripTop)
	a.previous = a.Strip.ActiveIndex()
	if s, ok := a.activeSection(); ok {
		a.Body.SetSection(s)
	}
	return a
}

func newRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	msg := func(m tea.Msg) tea.Cmd { return func() tea.Msg { return m } }
	browse := []AppMode{ModeBrowse}

	reg.Bind("q", tea.Quit, "Quit")
	reg.Bind("ctrl+c", tea.Quit, "Quit")
	reg.Bind("?", msg(ToggleHelpMsg{}), "Help")
	reg.Bind("SPC q", tea.Quit, "Quit")
	reg.Bind("SPC ?", msg(ToggleHelpMsg{}), "Help")
	reg.BindForMode("SPC r", msg(ResetSelectionMsg{}), "Reset selection", browse)
	reg.Group("c", "Config")
	reg.BindForMode("SPC c s", msg(CycleStyleMsg{}), "Layout style", browse)
	reg.BindForMode("SPC c i", msg(CycleShapeMsg{}), "Indicator shape", browse)
	reg.BindForMode("SPC c e", msg(FlipEdgeMsg{}), "Bar edge", browse)
	reg.BindForMode("SPC c w", msg(ToggleFullWidthMsg{}), "Full width", browse)
	return reg
}

// onSectionSelected is the strip's selection callback.
func (a *AppModel) onSectionSelected(s Section, i int) {
	a.Body.SetSection(s)
	a.Recorder.RecordSelection(context.Background(), telemetry.Selection{
		Strip:    StripName,
		Index:    i,
		Previous: a.previous,
		Label:    s.Title,
		Source:   a.Strip.Source().String(),
	})
	a.previous = i
}

func (a *AppModel) activeSection() (Section, bool) {
	items, i := a.Strip.Items(), a.Strip.ActiveIndex()
	if i < 0 || i >= len(items) {
		return Section{}, false
	}
	return items[i], true
}

var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.Strip.Init(), a.Body.Init())
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		_, cmd := a.Strip.Update(msg)
		a.resize()
		return a, cmd
	case ToggleHelpMsg:
		if a.Mode == ModeHelp {
			a.Mode = ModeBrowse
		} else {
			a.Mode = ModeHelp
		}
		return a, nil
	case CycleStyleMsg:
		cfg := a.Strip.Config()
		if cfg.LayoutStyle().IsFit() {
			cfg = cfg.WithLayoutStyle(strip.Fill())
		} else {
			cfg = cfg.WithLayoutStyle(strip.Fit(a.maxVisible))
		}
		a.reconfigure(cfg)
		return a, nil
	case CycleShapeMsg:
		cfg := a.Strip.Config()
		a.reconfigure(cfg.WithIndicatorShape(nextShape(cfg.IndicatorShape())))
		return a, nil
	case FlipEdgeMsg:
		cfg := a.Strip.Config()
		edge := strip.EdgeTop
		if cfg.IndicatorEdge() == strip.EdgeTop {
			edge = strip.EdgeBottom
		}
		a.reconfigure(cfg.WithIndicatorEdge(edge))
		return a, nil
	case ToggleFullWidthMsg:
		cfg := a.Strip.Config()
		a.reconfigure(cfg.WithFullWidthIndicator(!cfg.FullWidthIndicator()))
		return a, nil
	case ResetSelectionMsg:
		a.Selection.Set(0)
		// the strip notices the external write on its next update
		_, cmd := a.Strip.Update(msg)
		return a, cmd
	case tea.KeyMsg:
		if consumed, cmd := a.KeyHandler.Handle(msg, a.Mode); consumed {
			return a, cmd
		}
		if a.Mode == ModeHelp {
			if msg.String() == "esc" {
				a.Mode = ModeBrowse
			}
			return a, nil
		}
		_, stripCmd := a.Strip.Update(msg)
		_, bodyCmd := a.Body.Update(msg)
		return a, tea.Batch(stripCmd, bodyCmd)
	case tea.MouseMsg:
		if a.Mode == ModeHelp {
			return a, nil
		}
		_, stripCmd := a.Strip.Update(msg)
		_, bodyCmd := a.Body.Update(msg)
		return a, tea.Batch(stripCmd, bodyCmd)
	}

	_, cmd := a.Strip.Update(msg)
	return a, cmd
}

// reconfigure applies cfg; the strip height may change with it.
func (a *AppModel) reconfigure(cfg strip.Config[Section]) {
	a.Strip.SetConfig(cfg)
	a.resize()
}

// resize gives the body whatever the title, strip and footer leave.
func (a *AppModel) resize() {
	if a.width == 0 || a.height == 0 {
		return
	}
	a.Body.SetSize(a.width, a.height-stripTop-a.Strip.Height()-1)
}

// nextShape cycles bar, box, rounded box, capsule.
func nextShape(s strip.IndicatorShape) strip.IndicatorShape {
	switch {
	case s.Kind == strip.ShapeBar:
		return strip.Box(0)
	case s.Kind == strip.ShapeBox && s.CornerRadius == 0:
		return strip.Box(1)
	case s.Kind == strip.ShapeBox:
		return strip.Capsule()
	default:
		return strip.Bar()
	}
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var b strings.Builder
	b.WriteString(a.header())
	b.WriteString("\n")
	if s := a.Strip.View(); s != "" {
		b.WriteString(s)
		b.WriteString("\n")
	}

	if a.Mode == ModeHelp {
		b.WriteString(RenderFullHelp(a.helpKeyMap()))
		return b.String()
	}

	b.WriteString(a.Body.View())
	b.WriteString("\n")
	if help := RenderKeybindHelp(a.KeyHandler, a.Mode); help != "" {
		b.WriteString(help)
	} else {
		b.WriteString(a.footer())
	}
	return b.String()
}

// header shows the title and, right-aligned, the active section's position.
func (a *AppModel) header() string {
	const title = "stripdemo"
	pos := fmt.Sprintf("%d/%d", a.Strip.ActiveIndex()+1, len(a.Strip.Items()))
	if s, ok := a.activeSection(); ok {
		pos = s.Title + " " + pos
	}
	if a.width <= 0 {
		return Styles.Title.Render(title) + "  " + Styles.Hint.Render(pos)
	}
	rest := max(a.width-textutil.VisualWidth(title), 0)
	return Styles.Title.Render(title) + Styles.Hint.Render(textutil.PadLeftVisual(pos, rest))
}

func (a *AppModel) footer() string {
	cfg := a.Strip.Config()
	status := fmt.Sprintf("%s · %s · %s", cfg.LayoutStyle(), cfg.IndicatorShape(), cfg.IndicatorEdge())
	if cfg.FullWidthIndicator() {
		status += " · full width"
	}
	hints := "? help  SPC commands  q quit"
	if a.width > 0 && textutil.VisualWidth(status)+2+textutil.VisualWidth(hints) > a.width {
		return Styles.Status.Render(textutil.Truncate(status, a.width))
	}
	return Styles.Status.Render(status) + "  " + Styles.Hint.Render(hints)
}

func (a *AppModel) helpKeyMap() combinedKeyMap {
	return combinedKeyMap{a.Strip.KeyMap, bodyKeys, NewKeyMap(a.KeyHandler, ModeBrowse)}
}

// bodyKeysMap documents the keys SectionView handles.
type bodyKeysMap struct {
	Scroll key.Binding
	Page   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var bodyKeys = bodyKeysMap{
	Scroll: key.NewBinding(key.WithKeys("j", "k", "up", "down"), key.WithHelp("j/k", "scroll")),
	Page:   key.NewBinding(key.WithKeys("pgdown", "pgup", "ctrl+d", "ctrl+u"), key.WithHelp("pgdn/pgup", "page")),
	Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k bodyKeysMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Help, k.Quit}
}

func (k bodyKeysMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Scroll, k.Page, k.Help, k.Quit}}
}
