// Package strip provides a selectable item strip for Bubble Tea: a horizontal row of items
// with an animated indicator that follows the active item.
//
// Layout runs in two phases. The measure phase renders every item and collects its
// content and container rectangles into an immutable Bounds value; the paint phase
// derives the indicator geometry from those bounds and the active index and draws it over
// the measured canvas.
//
// The selected index is owned by the caller through a Binding. Taps write it; external
// writes are picked up on the next Update or View with an edge trigger, so a value is only
// ever reported once.
package strip
