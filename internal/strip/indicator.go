package strip

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"stripkit/internal/ui/textutil"
)

// geometry derives the indicator rectangle from a frozen Bounds and the active index.
// A missing entry yields the zero Rect, which paints nothing.
func geometry[T any](cfg Config[T], b Bounds, active int) Rect {
	kind := cfg.BoundsKind()
	r, ok := b.Lookup(active, kind)
	if !ok {
		return Rect{}
	}
	shape := cfg.IndicatorShape()
	if shape.Outlined() {
		if kind == BoundsItem {
			// tight bounds: the frame goes on the cells around the content
			return r.Grow(1)
		}
		return r
	}

	rows := indicatorRows(cfg.IndicatorThickness())
	g := Rect{X: r.X, W: r.W, H: rows}
	if w := cfg.IndicatorWidth(); w > 0 {
		g.W = w
		g.X = r.X + (r.W-w)/2
	}
	if cfg.IndicatorEdge() == EdgeTop {
		g.Y = r.Y - rows
	} else {
		g.Y = r.Bottom()
	}
	return g
}

var (
	// upperBlocks fill a cell from the top: 2/8, 4/8, full.
	upperBlocks = []string{"▔", "▀", "█"}
	// lowerBlocks fill a cell from the bottom, indexed by eighths-1.
	lowerBlocks = []string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}
)

// barGlyph returns the glyph for row of a bar, counting rows outward from the item.
// Rows touching the item are full; the outermost row carries the remainder.
func barGlyph(edge Edge, eighths, row int) string {
	rows := indicatorRows(eighths)
	fill := 8
	if row == rows-1 {
		fill = eighths - 8*(rows-1)
	}
	if edge == EdgeTop {
		return lowerBlocks[fill-1]
	}
	switch {
	case fill <= 2:
		return upperBlocks[0]
	case fill <= 5:
		return upperBlocks[1]
	default:
		return upperBlocks[2]
	}
}

// capsuleBorder rounds both ends fully.
var capsuleBorder = lipgloss.Border{
	Top:         "─",
	Bottom:      "─",
	Left:        "(",
	Right:       ")",
	TopLeft:     "╭",
	TopRight:    "╮",
	BottomLeft:  "╰",
	BottomRight: "╯",
}

func frameBorder(shape IndicatorShape) lipgloss.Border {
	switch {
	case shape.Kind == ShapeCapsule:
		return capsuleBorder
	case shape.CornerRadius > 0:
		return lipgloss.RoundedBorder()
	default:
		return lipgloss.NormalBorder()
	}
}

// paint draws the indicator at g over a copy of rows.
func paint[T any](rows []string, g Rect, cfg Config[T]) []string {
	out := make([]string, len(rows))
	copy(out, rows)
	if g.Empty() {
		return out
	}
	style := lipgloss.NewStyle().Foreground(cfg.IndicatorColor())
	set := func(y, x int, s string) {
		if y < 0 || y >= len(out) {
			return
		}
		out[y] = textutil.Overlay(out[y], x, style.Render(s))
	}

	shape := cfg.IndicatorShape()
	if !shape.Outlined() {
		for i := 0; i < g.H; i++ {
			// i counts outward from the item
			y := g.Y + i
			if cfg.IndicatorEdge() == EdgeTop {
				y = g.Bottom() - 1 - i
			}
			set(y, g.X, strings.Repeat(barGlyph(cfg.IndicatorEdge(), cfg.IndicatorThickness(), i), g.W))
		}
		return out
	}

	if g.W < 2 || g.H < 2 {
		return out
	}
	b := frameBorder(shape)
	set(g.Y, g.X, b.TopLeft+strings.Repeat(b.Top, g.W-2)+b.TopRight)
	for y := g.Y + 1; y < g.Bottom()-1; y++ {
		set(y, g.X, b.Left)
		set(y, g.Right()-1, b.Right)
	}
	set(g.Bottom()-1, g.X, b.BottomLeft+strings.Repeat(b.Bottom, g.W-2)+b.BottomRight)
	return out
}
