package strip

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const (
	// DefaultThickness is the bar thickness in eighths of a row.
	DefaultThickness = 3
	// DefaultContentPadding is the horizontal inset of the whole row, split evenly left/right.
	DefaultContentPadding = 12
	// DefaultItemPadding is the gap between an item's content and its container on each side.
	DefaultItemPadding = 1
)

// DefaultIndicatorColor is the primary theme color.
var DefaultIndicatorColor lipgloss.TerminalColor = lipgloss.Color("205")

type layoutKind int

const (
	layoutFill layoutKind = iota
	layoutFit
)

// LayoutStyle selects how item widths are assigned.
type LayoutStyle struct {
	kind       layoutKind
	maxVisible int
}

// Fill sizes every item to its natural content width.
func Fill() LayoutStyle {
	return LayoutStyle{kind: layoutFill}
}

// Fit gives every item an equal share of the width, sized so that maxVisible items fit.
// Values below 1 are treated as 1.
func Fit(maxVisible int) LayoutStyle {
	if maxVisible < 1 {
		maxVisible = 1
	}
	return LayoutStyle{kind: layoutFit, maxVisible: maxVisible}
}

// IsFit reports whether s is a Fit style.
func (s LayoutStyle) IsFit() bool { return s.kind == layoutFit }

// MaxVisible returns the Fit item count, or 0 for Fill.
func (s LayoutStyle) MaxVisible() int { return s.maxVisible }

func (s LayoutStyle) String() string {
	if s.IsFit() {
		return fmt.Sprintf("fit(%d)", s.maxVisible)
	}
	return "fill"
}

// Edge is the side of the item bounds a bar indicator sits against.
type Edge int

const (
	EdgeBottom Edge = iota
	EdgeTop
)

func (e Edge) String() string {
	switch e {
	case EdgeBottom:
		return "bottom"
	case EdgeTop:
		return "top"
	default:
		return "unknown"
	}
}

// ShapeKind enumerates indicator shapes.
type ShapeKind int

const (
	ShapeBar ShapeKind = iota
	ShapeBox
	ShapeCapsule
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeBar:
		return "bar"
	case ShapeBox:
		return "box"
	case ShapeCapsule:
		return "capsule"
	default:
		return "unknown"
	}
}

// IndicatorShape is the indicator's visual form.
type IndicatorShape struct {
	Kind         ShapeKind
	CornerRadius int // box only
}

// Bar is a line against one edge of the active item.
func Bar() IndicatorShape { return IndicatorShape{Kind: ShapeBar} }

// Box outlines the active item. A radius above zero draws rounded corners.
func Box(cornerRadius int) IndicatorShape {
	if cornerRadius < 0 {
		cornerRadius = 0
	}
	return IndicatorShape{Kind: ShapeBox, CornerRadius: cornerRadius}
}

// Capsule outlines the active item with fully rounded ends.
func Capsule() IndicatorShape { return IndicatorShape{Kind: ShapeCapsule} }

// Outlined reports whether the shape draws a frame around the item rather than a bar.
func (s IndicatorShape) Outlined() bool {
	return s.Kind == ShapeBox || s.Kind == ShapeCapsule
}

func (s IndicatorShape) String() string {
	if s.Kind == ShapeBox {
		return fmt.Sprintf("box(%d)", s.CornerRadius)
	}
	return s.Kind.String()
}

// BoundsKind says which measured rectangle of an item a lookup refers to.
type BoundsKind int

const (
	// BoundsItem is the item's tight content bounds.
	BoundsItem BoundsKind = iota
	// BoundsItemContainer is the item's padded container bounds.
	BoundsItemContainer
)

func (k BoundsKind) String() string {
	if k == BoundsItemContainer {
		return "itemContainer"
	}
	return "item"
}

// Config is the immutable configuration of a strip. The With* methods return a modified
// copy; the receiver is never changed.
type Config[T any] struct {
	style          LayoutStyle
	color          lipgloss.TerminalColor
	thickness      int
	indicatorWidth int
	edge           Edge
	shape          IndicatorShape
	fullWidth      bool
	contentPadding int
	itemPadding    int
	onItemSelected func(item T, index int)
}

// DefaultConfig returns fill layout, a bottom bar in the primary color, default thickness
// and paddings, tight bounds and no callback.
func DefaultConfig[T any]() Config[T] {
	return Config[T]{
		style:          Fill(),
		color:          DefaultIndicatorColor,
		thickness:      DefaultThickness,
		edge:           EdgeBottom,
		shape:          Bar(),
		contentPadding: DefaultContentPadding,
		itemPadding:    DefaultItemPadding,
	}
}

func (c Config[T]) LayoutStyle() LayoutStyle                { return c.style }
func (c Config[T]) IndicatorColor() lipgloss.TerminalColor  { return c.color }
func (c Config[T]) IndicatorThickness() int                 { return c.thickness }
func (c Config[T]) IndicatorWidth() int                     { return c.indicatorWidth }
func (c Config[T]) IndicatorEdge() Edge                     { return c.edge }
func (c Config[T]) IndicatorShape() IndicatorShape          { return c.shape }
func (c Config[T]) FullWidthIndicator() bool                { return c.fullWidth }
func (c Config[T]) ContentPadding() int                     { return c.contentPadding }
func (c Config[T]) ItemPadding() int                        { return c.itemPadding }
func (c Config[T]) OnItemSelected() func(item T, index int) { return c.onItemSelected }

// BoundsKind returns the measured rectangle the indicator tracks.
func (c Config[T]) BoundsKind() BoundsKind {
	if c.fullWidth {
		return BoundsItemContainer
	}
	return BoundsItem
}

func (c Config[T]) WithLayoutStyle(s LayoutStyle) Config[T] {
	c.style = s
	return c
}

func (c Config[T]) WithIndicatorColor(color lipgloss.TerminalColor) Config[T] {
	c.color = color
	return c
}

// WithIndicatorThickness sets the bar thickness in eighths of a row, minimum 1.
func (c Config[T]) WithIndicatorThickness(eighths int) Config[T] {
	c.thickness = max(eighths, 1)
	return c
}

// WithIndicatorWidth fixes the bar width in columns. Zero uses the measured width.
func (c Config[T]) WithIndicatorWidth(w int) Config[T] {
	c.indicatorWidth = max(w, 0)
	return c
}

func (c Config[T]) WithIndicatorEdge(e Edge) Config[T] {
	c.edge = e
	return c
}

func (c Config[T]) WithIndicatorShape(s IndicatorShape) Config[T] {
	c.shape = s
	return c
}

// WithFullWidthIndicator makes the indicator track container bounds instead of content bounds.
func (c Config[T]) WithFullWidthIndicator(full bool) Config[T] {
	c.fullWidth = full
	return c
}

func (c Config[T]) WithContentPadding(p int) Config[T] {
	c.contentPadding = max(p, 0)
	return c
}

func (c Config[T]) WithItemPadding(p int) Config[T] {
	c.itemPadding = max(p, 0)
	return c
}

func (c Config[T]) WithOnItemSelected(fn func(item T, index int)) Config[T] {
	c.onItemSelected = fn
	return c
}
