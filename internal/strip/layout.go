package strip

import (
	"strings"

	"stripkit/internal/ui/textutil"
)

type layoutMode int

const (
	// modeRow places every item in a single row that never scrolls.
	modeRow layoutMode = iota
	// modeScroll places items in a row wider than the strip, viewed through a viewport.
	modeScroll
)

func (m layoutMode) String() string {
	if m == modeRow {
		return "row"
	}
	return "scroll"
}

// layout is the output of one measure pass. It holds the unpainted canvas, so painting the
// indicator never re-enters measurement.
type layout struct {
	mode         layoutMode
	width        int // available width
	contentWidth int // full row width including insets
	height       int
	itemTop      int // first row of item content
	fitWidth     int // container width in Fit styles, 0 for Fill
	hitTop       int // first row of the container bounds
	hitRows      int // rows of the container bounds
	rows         []string
	bounds       Bounds
}

// empty reports whether the pass produced nothing to render.
func (l layout) empty() bool {
	return l.height == 0
}

// indicatorRows returns how many rows a bar of the given thickness (in eighths) occupies.
func indicatorRows(eighths int) int {
	if eighths < 1 {
		eighths = 1
	}
	return (eighths + 7) / 8
}

// fitItemWidth is the container width of every item in a Fit(maxVisible) style.
func fitItemWidth(available, contentPadding, maxVisible int) int {
	if maxVisible < 1 {
		maxVisible = 1
	}
	return max((available-contentPadding)/maxVisible, 1)
}

type measuredItem struct {
	lines []string
	width int // widest line after truncation
	cw    int // container width
}

// measure runs the measure phase: every item is rendered, sized, and publishes its
// item and container rectangles. Fewer than two items produce an empty layout.
func measure[T any](cfg Config[T], items []T, render RenderFunc[T], width int) layout {
	if len(items) < 2 || render == nil {
		return layout{width: width}
	}

	style := cfg.LayoutStyle()
	pad := cfg.ItemPadding()
	inset := cfg.ContentPadding() / 2

	l := layout{width: width, mode: modeScroll}
	if style.IsFit() {
		l.fitWidth = fitItemWidth(width, cfg.ContentPadding(), style.MaxVisible())
		if style.MaxVisible() >= len(items) {
			l.mode = modeRow
		}
	}

	measured := make([]measuredItem, len(items))
	itemRows := 0
	for i, item := range items {
		content := render(item, i)
		lines := strings.Split(content, "\n")
		cw := textutil.VisualWidthStyled(content) + 2*pad
		if l.fitWidth > 0 {
			cw = l.fitWidth
		}
		// narrow fit containers give up padding before content
		p := min(pad, max(cw-1, 0)/2)
		inner := max(cw-2*p, 0)
		w := 0
		for j, line := range lines {
			lines[j] = textutil.TruncateStyled(line, inner)
			w = max(w, textutil.VisualWidthStyled(lines[j]))
		}
		measured[i] = measuredItem{lines: lines, width: w, cw: cw}
		itemRows = max(itemRows, len(lines))
	}

	shape := cfg.IndicatorShape()
	barRows := indicatorRows(cfg.IndicatorThickness())
	containerTop := 0
	switch {
	case shape.Outlined():
		// one frame row above and below
		l.itemTop = 1
		l.height = itemRows + 2
	case cfg.IndicatorEdge() == EdgeTop:
		l.itemTop = barRows
		containerTop = barRows
		l.height = itemRows + barRows
	default:
		l.height = itemRows + barRows
	}
	containerHeight := itemRows
	if shape.Outlined() {
		containerHeight = l.height
	}

	collector := newBoundsCollector(len(items))
	blocks := make([][]string, len(items))
	x := inset
	for i, mi := range measured {
		left := (mi.cw - mi.width) / 2
		collector.publish(i,
			Rect{X: x + left, Y: l.itemTop, W: mi.width, H: len(mi.lines)},
			Rect{X: x, Y: containerTop, W: mi.cw, H: containerHeight},
		)
		blocks[i] = renderBlock(mi, itemRows, left)
		x += mi.cw
	}
	l.contentWidth = x + (cfg.ContentPadding() - inset)
	l.hitTop, l.hitRows = containerTop, containerHeight
	l.bounds = collector.freeze()

	l.rows = make([]string, l.height)
	blank := strings.Repeat(" ", l.contentWidth)
	for r := range l.rows {
		ir := r - l.itemTop
		if ir < 0 || ir >= itemRows {
			l.rows[r] = blank
			continue
		}
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", inset))
		for _, block := range blocks {
			b.WriteString(block[ir])
		}
		l.rows[r] = textutil.PadRightStyled(b.String(), l.contentWidth)
	}
	return l
}

// renderBlock lays an item's lines into a container-wide block of the given height,
// offset by left columns and top-aligned.
func renderBlock(mi measuredItem, rows, left int) []string {
	block := make([]string, rows)
	prefix := strings.Repeat(" ", left)
	for r := range block {
		line := ""
		if r < len(mi.lines) {
			line = mi.lines[r]
		}
		block[r] = textutil.PadRightStyled(prefix+textutil.PadRightStyled(line, mi.width), mi.cw)
	}
	return block
}
