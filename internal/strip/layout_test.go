package strip

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitItemWidth(t *testing.T) {
	tests := []struct {
		available, padding, maxVisible int
		want                           int
	}{
		{80, 12, 3, 22},
		{80, 12, 5, 13},
		{80, 0, 1, 80},
		{10, 12, 3, 1},
		{30, 0, 0, 30},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fitItemWidth(tt.available, tt.padding, tt.maxVisible),
			"fitItemWidth(%d, %d, %d)", tt.available, tt.padding, tt.maxVisible)
	}
}

func TestIndicatorRows(t *testing.T) {
	for eighths, want := range map[int]int{0: 1, 1: 1, 3: 1, 8: 1, 9: 2, 16: 2, 17: 3} {
		assert.Equal(t, want, indicatorRows(eighths), "eighths=%d", eighths)
	}
}

func TestMeasure_PublishesItemAndContainerBounds(t *testing.T) {
	l := measure(DefaultConfig[string](), []string{"one", "three"}, label, 80)

	require.Equal(t, 2, l.bounds.Len())
	item, _ := l.bounds.Lookup(1, BoundsItem)
	container, _ := l.bounds.Lookup(1, BoundsItemContainer)
	assert.Equal(t, Rect{X: 6 + 5 + 1, Y: 0, W: 5, H: 1}, item)
	assert.Equal(t, Rect{X: 6 + 5, Y: 0, W: 7, H: 1}, container)
	assert.Equal(t, 6+5+7+6, l.contentWidth)
	assert.Equal(t, modeScroll, l.mode)
}

func TestMeasure_HeightFollowsTallestItem(t *testing.T) {
	items := []string{"a", "b\nc\nd", "e\nf"}
	l := measure(DefaultConfig[string](), items, label, 80)

	assert.Equal(t, 3+1, l.height, "tallest item plus one bar row")
	r, _ := l.bounds.Lookup(2, BoundsItem)
	assert.Equal(t, 2, r.H)
	c, _ := l.bounds.Lookup(2, BoundsItemContainer)
	assert.Equal(t, 3, c.H)
	require.Len(t, l.rows, 4)
	assert.Equal(t, strings.Repeat(" ", l.contentWidth), l.rows[3])
}

func TestMeasure_FitTruncatesWideContent(t *testing.T) {
	cfg := DefaultConfig[string]().WithLayoutStyle(Fit(2)).WithContentPadding(0)
	l := measure(cfg, []string{"abcdefghijklmnop", "x"}, label, 20)

	r, _ := l.bounds.Lookup(0, BoundsItem)
	assert.Equal(t, 8, r.W)
	assert.Contains(t, ansi.Strip(l.rows[0]), "abcdefg…")
	assert.Equal(t, modeRow, l.mode)
}

func TestMeasure_NarrowFitKeepsContentColumn(t *testing.T) {
	cfg := DefaultConfig[string]().WithLayoutStyle(Fit(3)).WithContentPadding(0).WithItemPadding(1)
	l := measure(cfg, []string{"Alpha", "Beta", "Gamma"}, label, 5)
	require.Equal(t, 1, l.fitWidth)

	for i := 0; i < 3; i++ {
		r, ok := l.bounds.Lookup(i, BoundsItem)
		require.True(t, ok)
		assert.Equal(t, 1, r.W, "item %d", i)
	}
	assert.False(t, geometry(cfg, l.bounds, 1).IsZero())
}

func TestMeasure_StyledContentMeasuresVisibleWidth(t *testing.T) {
	styled := func(s string, _ int) string { return "\x1b[1m" + s + "\x1b[0m" }
	l := measure(DefaultConfig[string](), []string{"ab", "cd"}, styled, 80)

	r, _ := l.bounds.Lookup(0, BoundsItem)
	assert.Equal(t, 2, r.W)
	assert.Equal(t, "       ab  cd       ", ansi.Strip(l.rows[0]))
}

func TestMeasure_EmptyForFewerThanTwoItems(t *testing.T) {
	assert.True(t, measure(DefaultConfig[string](), []string{"a"}, label, 80).empty())
	assert.True(t, measure[string](DefaultConfig[string](), []string{"a", "b"}, nil, 80).empty())
}

func TestBounds_HitTest(t *testing.T) {
	c := newBoundsCollector(2)
	c.publish(0, Rect{X: 1, Y: 0, W: 1, H: 1}, Rect{X: 0, Y: 0, W: 3, H: 1})
	c.publish(1, Rect{X: 4, Y: 0, W: 1, H: 1}, Rect{X: 3, Y: 0, W: 3, H: 1})
	b := c.freeze()

	assert.Equal(t, 0, b.HitTest(0, 0))
	assert.Equal(t, 1, b.HitTest(5, 0))
	assert.Equal(t, -1, b.HitTest(6, 0))
	assert.Equal(t, -1, b.HitTest(1, 1))
}
