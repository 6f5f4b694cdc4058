package strip

// BoundsKey addresses one measured rectangle of one item.
type BoundsKey struct {
	Index int
	Kind  BoundsKind
}

// Bounds is the frozen result of one measure pass. It is never mutated after collection,
// so geometry derived from it is a pure function of (Bounds, active index).
type Bounds struct {
	rects map[BoundsKey]Rect
}

// Lookup returns the rectangle for (index, kind) and whether it was measured.
func (b Bounds) Lookup(index int, kind BoundsKind) (Rect, bool) {
	r, ok := b.rects[BoundsKey{Index: index, Kind: kind}]
	return r, ok
}

// Len returns the number of measured items.
func (b Bounds) Len() int {
	return len(b.rects) / 2
}

// HitTest returns the index of the item whose container contains (x, y), or -1.
func (b Bounds) HitTest(x, y int) int {
	for k, r := range b.rects {
		if k.Kind == BoundsItemContainer && r.Contains(x, y) {
			return k.Index
		}
	}
	return -1
}

// boundsCollector gathers rectangles published by items during the measure phase.
type boundsCollector struct {
	rects map[BoundsKey]Rect
}

func newBoundsCollector(n int) *boundsCollector {
	return &boundsCollector{rects: make(map[BoundsKey]Rect, 2*n)}
}

// publish records both rectangles of item index. A later publish for the same index wins.
func (c *boundsCollector) publish(index int, item, container Rect) {
	c.rects[BoundsKey{Index: index, Kind: BoundsItem}] = item
	c.rects[BoundsKey{Index: index, Kind: BoundsItemContainer}] = container
}

// freeze hands the collected rectangles over as an immutable Bounds. The collector must not
// be used afterwards.
func (c *boundsCollector) freeze() Bounds {
	b := Bounds{rects: c.rects}
	c.rects = nil
	return b
}
