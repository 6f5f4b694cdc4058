package strip

import (
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"stripkit/internal/ui/textutil"
)

// ScrollDelay is how long a tap waits before asking the Scroller to bring the item into
// view, so the tap's own relayout settles first.
const ScrollDelay = 100 * time.Millisecond

// defaultWidth is used until the first tea.WindowSizeMsg arrives.
const defaultWidth = 80

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// RenderFunc renders one item. The result may span several lines and carry ANSI styling.
type RenderFunc[T any] func(item T, index int) string

// Scheduler delivers the message built by fn after d. tea.Tick is the default.
type Scheduler func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// Source says where the latest selection change came from.
type Source int

const (
	SourceNone Source = iota
	SourceTap
	SourceExternal
)

func (s Source) String() string {
	switch s {
	case SourceTap:
		return "tap"
	case SourceExternal:
		return "external"
	default:
		return "none"
	}
}

type frameMsg struct {
	id int
}

type scrollMsg struct {
	id  int
	req ScrollRequest
}

// Model is a selectable item strip.
type Model[T any] struct {
	KeyMap KeyMap

	id        int
	items     []T
	render    RenderFunc[T]
	cfg       Config[T]
	selection Binding
	guard     changeGuard
	active    int
	source    Source

	width            int
	originX, originY int

	layout   layout
	geometry Rect
	motion   motion
	view     viewport
	scroller Scroller
	schedule Scheduler
	ticking  bool
}

// New creates a strip over items. The active index starts at selection's current value.
// A nil selection gets private storage starting at 0.
func New[T any](items []T, selection Binding, render RenderFunc[T], cfg Config[T]) *Model[T] {
	if selection == nil {
		selection = BindInt(nil)
	}
	m := &Model[T]{
		KeyMap:    DefaultKeyMap(),
		id:        nextID(),
		items:     items,
		render:    render,
		cfg:       cfg,
		selection: selection,
		width:     defaultWidth,
		motion:    newMotion(),
		view:      newViewport(),
		schedule:  tea.Tick,
	}
	m.active = selection.Get()
	m.guard = newChangeGuard(m.active)
	m.scroller = &m.view
	m.relayout()
	m.view.ScrollTo(ScrollRequest{Index: m.active, Anchor: AnchorCenter})
	return m
}

// Init implements the Bubble Tea model contract. The strip needs no startup command.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles window size, key, mouse, animation and scroll messages.
func (m *Model[T]) Update(msg tea.Msg) (*Model[T], tea.Cmd) {
	cmds := []tea.Cmd{m.SyncSelection()}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetWidth(msg.Width)
	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if i := m.hitTest(msg.X, msg.Y); i >= 0 {
				cmds = append(cmds, m.Tap(i))
			}
		}
	case frameMsg:
		if msg.id != m.id {
			return m, m.animate()
		}
		m.ticking = false
		m.motion.step()
		m.view.step()
	case scrollMsg:
		if msg.id != m.id {
			return m, m.animate()
		}
		m.scroller.ScrollTo(msg.req)
	}

	cmds = append(cmds, m.animate())
	return m, tea.Batch(cmds...)
}

func (m *Model[T]) handleKey(msg tea.KeyMsg) tea.Cmd {
	n := len(m.items)
	if n < 2 {
		return nil
	}
	cur := m.active
	if cur < 0 || cur >= n {
		cur = 0
	}
	switch {
	case key.Matches(msg, m.KeyMap.Prev):
		return m.Tap(max(cur-1, 0))
	case key.Matches(msg, m.KeyMap.Next):
		return m.Tap(min(cur+1, n-1))
	case key.Matches(msg, m.KeyMap.First):
		return m.Tap(0)
	case key.Matches(msg, m.KeyMap.Last):
		return m.Tap(n - 1)
	case key.Matches(msg, m.KeyMap.Jump):
		if i := slices.Index(m.KeyMap.Jump.Keys(), msg.String()); i >= 0 && i < n {
			return m.Tap(i)
		}
	}
	return nil
}

// Tap activates item i as if the user had clicked it. The active index and the external
// selection change synchronously; the scroll request follows after ScrollDelay, even when
// i was already active. Indices outside the items are ignored.
func (m *Model[T]) Tap(i int) tea.Cmd {
	if i < 0 || i >= len(m.items) {
		return nil
	}
	changed := i != m.active
	m.active = i
	m.guard.observe(i)
	m.selection.Set(i)
	if changed {
		m.source = SourceTap
		m.notify()
		m.retarget()
	}

	id := m.id
	req := ScrollRequest{Index: i, Anchor: AnchorCenter, Animated: true}
	scroll := m.schedule(ScrollDelay, func(time.Time) tea.Msg {
		return scrollMsg{id: id, req: req}
	})
	return tea.Batch(scroll, m.animate())
}

// SyncSelection picks up an external write to the selection. It fires the callback only
// when the binding holds a value not seen before and it differs from the active index.
// Update and View call it; hosts may call it directly after writing the binding and must
// run the returned command, which starts the indicator's transition.
func (m *Model[T]) SyncSelection() tea.Cmd {
	if !m.syncSelection() {
		return nil
	}
	return m.animate()
}

// syncSelection applies an external change without scheduling frames, so View can use it;
// the next Update schedules them.
func (m *Model[T]) syncSelection() bool {
	v := m.selection.Get()
	if !m.guard.observe(v) || v == m.active {
		return false
	}
	m.active = v
	m.source = SourceExternal
	m.notify()
	m.retarget()
	return true
}

func (m *Model[T]) notify() {
	fn := m.cfg.OnItemSelected()
	if fn == nil || m.active < 0 || m.active >= len(m.items) {
		return
	}
	fn(m.items[m.active], m.active)
}

// retarget recomputes the indicator geometry from the current bounds.
func (m *Model[T]) retarget() {
	m.geometry = geometry(m.cfg, m.layout.bounds, m.active)
	m.motion.setTarget(m.geometry)
}

// relayout runs a full measure pass. Layout changes move the indicator without easing;
// only selection changes animate.
func (m *Model[T]) relayout() {
	m.layout = measure(m.cfg, m.items, m.render, m.width)
	m.view.resize(m.layout)
	m.geometry = geometry(m.cfg, m.layout.bounds, m.active)
	m.motion.jump(m.geometry)
}

// animate schedules the next frame while anything is still moving.
func (m *Model[T]) animate() tea.Cmd {
	if m.ticking || (m.motion.settled() && m.view.settled()) {
		return nil
	}
	m.ticking = true
	id := m.id
	return m.schedule(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{id: id}
	})
}

func (m *Model[T]) hitTest(x, y int) int {
	vx, vy := x-m.originX, y-m.originY
	if vx < 0 || vx >= m.width || vy < 0 || vy >= m.layout.height {
		return -1
	}
	// bar rows belong to the item they are drawn against
	vy = min(max(vy, m.layout.hitTop), m.layout.hitTop+m.layout.hitRows-1)
	return m.layout.bounds.HitTest(vx+m.view.Offset(), vy)
}

// View renders the strip. It is empty for fewer than two items.
func (m *Model[T]) View() string {
	m.syncSelection()
	if m.layout.empty() {
		return ""
	}
	rows := paint(m.layout.rows, m.motion.rect(), m.cfg)
	off := m.view.Offset()
	for i, row := range rows {
		rows[i] = textutil.PadRightStyled(textutil.Cut(row, off, off+m.width), min(m.width, m.layout.contentWidth))
	}
	return strings.Join(rows, "\n")
}

// SetWidth sets the available width and re-runs layout.
func (m *Model[T]) SetWidth(w int) {
	m.width = max(w, 0)
	m.relayout()
}

// SetOrigin tells the strip where its top-left cell is on screen, for mouse hit-testing.
func (m *Model[T]) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

// SetItems replaces the items and re-runs layout. The active index is kept as is.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.relayout()
}

// SetConfig replaces the configuration and re-runs the full layout.
func (m *Model[T]) SetConfig(cfg Config[T]) {
	m.cfg = cfg
	m.relayout()
}

// SetScroller replaces the scroll collaborator. nil restores the built-in viewport.
func (m *Model[T]) SetScroller(s Scroller) {
	if s == nil {
		s = &m.view
	}
	m.scroller = s
}

// SetScheduler replaces the timer used for deferred scrolls and animation frames.
func (m *Model[T]) SetScheduler(s Scheduler) {
	if s == nil {
		s = tea.Tick
	}
	m.schedule = s
}

func (m *Model[T]) Config() Config[T] { return m.cfg }
func (m *Model[T]) Items() []T        { return m.items }
func (m *Model[T]) ActiveIndex() int  { return m.active }
func (m *Model[T]) Source() Source    { return m.source }
func (m *Model[T]) Bounds() Bounds    { return m.layout.bounds }
func (m *Model[T]) Height() int       { return m.layout.height }
func (m *Model[T]) Width() int        { return m.width }
func (m *Model[T]) ScrollOffset() int { return m.view.Offset() }

// Scrolls reports whether the current layout is a scrollable row.
func (m *Model[T]) Scrolls() bool {
	return !m.layout.empty() && m.layout.mode == modeScroll
}

// Geometry returns the indicator's target rectangle.
func (m *Model[T]) Geometry() Rect { return m.geometry }

// Indicator returns the indicator's current, possibly mid-animation, rectangle.
func (m *Model[T]) Indicator() Rect { return m.motion.rect() }

// Animating reports whether the indicator or the viewport is still moving.
func (m *Model[T]) Animating() bool {
	return !m.motion.settled() || !m.view.settled()
}
