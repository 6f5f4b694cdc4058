package strip

import "github.com/charmbracelet/harmonica"

// Anchor is where a scrolled-to item ends up inside the visible window.
type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorLeading
	AnchorTrailing
)

func (a Anchor) String() string {
	switch a {
	case AnchorCenter:
		return "center"
	case AnchorLeading:
		return "leading"
	case AnchorTrailing:
		return "trailing"
	default:
		return "unknown"
	}
}

// ScrollRequest asks a Scroller to bring an item into view.
type ScrollRequest struct {
	Index    int
	Anchor   Anchor
	Animated bool
}

// Scroller brings items of a strip into the visible region.
type Scroller interface {
	ScrollTo(req ScrollRequest)
}

// viewport is the strip's own horizontal Scroller. It reads container bounds from the last
// layout pass and eases its offset on the strip's frame loop.
type viewport struct {
	spring       harmonica.Spring
	width        int
	contentWidth int
	scrolls      bool
	bounds       Bounds
	offset       axis
}

var _ Scroller = (*viewport)(nil)

func newViewport() viewport {
	return viewport{spring: newSpring()}
}

// resize adopts a new layout pass, clamping the offset to the new content.
func (v *viewport) resize(l layout) {
	v.width = l.width
	v.contentWidth = l.contentWidth
	v.scrolls = l.mode == modeScroll
	v.bounds = l.bounds
	v.offset.target = v.clamp(v.offset.target)
	v.offset.pos = v.clamp(v.offset.pos)
}

func (v *viewport) maxOffset() float64 {
	if !v.scrolls {
		return 0
	}
	return float64(max(v.contentWidth-v.width, 0))
}

func (v *viewport) clamp(o float64) float64 {
	return min(max(o, 0), v.maxOffset())
}

// ScrollTo implements Scroller. Unknown indices are ignored.
func (v *viewport) ScrollTo(req ScrollRequest) {
	r, ok := v.bounds.Lookup(req.Index, BoundsItemContainer)
	if !ok {
		return
	}
	var target int
	switch req.Anchor {
	case AnchorLeading:
		target = r.X
	case AnchorTrailing:
		target = r.Right() - v.width
	default:
		target = r.CenterX() - v.width/2
	}
	v.offset.target = v.clamp(float64(target))
	if !req.Animated {
		v.offset.snap()
	}
}

func (v *viewport) step() {
	v.offset.step(v.spring)
}

func (v *viewport) settled() bool {
	return v.offset.settled()
}

// Offset returns the current leftmost visible column.
func (v *viewport) Offset() int {
	return v.offset.value()
}
