package strip

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig[string]()

	assert.False(t, c.LayoutStyle().IsFit())
	assert.Equal(t, EdgeBottom, c.IndicatorEdge())
	assert.Equal(t, ShapeBar, c.IndicatorShape().Kind)
	assert.Equal(t, DefaultIndicatorColor, c.IndicatorColor())
	assert.Equal(t, 3, c.IndicatorThickness())
	assert.Equal(t, 12, c.ContentPadding())
	assert.Equal(t, 0, c.IndicatorWidth())
	assert.False(t, c.FullWidthIndicator())
	assert.Equal(t, BoundsItem, c.BoundsKind())
	assert.Nil(t, c.OnItemSelected())
}

func TestConfig_WithLeavesReceiverUnchanged(t *testing.T) {
	base := DefaultConfig[int]()
	derived := base.
		WithLayoutStyle(Fit(4)).
		WithIndicatorColor(lipgloss.Color("86")).
		WithIndicatorThickness(5).
		WithIndicatorWidth(6).
		WithIndicatorEdge(EdgeTop).
		WithIndicatorShape(Capsule()).
		WithFullWidthIndicator(true).
		WithContentPadding(2).
		WithItemPadding(3).
		WithOnItemSelected(func(int, int) {})

	assert.Equal(t, DefaultConfig[int]().LayoutStyle(), base.LayoutStyle())
	assert.Equal(t, EdgeBottom, base.IndicatorEdge())
	assert.Equal(t, 12, base.ContentPadding())
	assert.Nil(t, base.OnItemSelected())

	assert.Equal(t, 4, derived.LayoutStyle().MaxVisible())
	assert.Equal(t, lipgloss.Color("86"), derived.IndicatorColor())
	assert.Equal(t, 5, derived.IndicatorThickness())
	assert.Equal(t, 6, derived.IndicatorWidth())
	assert.Equal(t, EdgeTop, derived.IndicatorEdge())
	assert.Equal(t, ShapeCapsule, derived.IndicatorShape().Kind)
	assert.Equal(t, BoundsItemContainer, derived.BoundsKind())
	assert.Equal(t, 2, derived.ContentPadding())
	assert.Equal(t, 3, derived.ItemPadding())
	assert.NotNil(t, derived.OnItemSelected())
}

func TestConfig_ClampsNegativeSizes(t *testing.T) {
	c := DefaultConfig[string]().
		WithIndicatorThickness(0).
		WithIndicatorWidth(-3).
		WithContentPadding(-1).
		WithItemPadding(-1)

	assert.Equal(t, 1, c.IndicatorThickness())
	assert.Equal(t, 0, c.IndicatorWidth())
	assert.Equal(t, 0, c.ContentPadding())
	assert.Equal(t, 0, c.ItemPadding())
}

func TestStyleStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{Fill().String(), "fill"},
		{Fit(3).String(), "fit(3)"},
		{Fit(0).String(), "fit(1)"},
		{Bar().String(), "bar"},
		{Box(2).String(), "box(2)"},
		{Box(-2).String(), "box(0)"},
		{Capsule().String(), "capsule"},
		{EdgeTop.String(), "top"},
		{EdgeBottom.String(), "bottom"},
		{BoundsItem.String(), "item"},
		{BoundsItemContainer.String(), "itemContainer"},
		{AnchorCenter.String(), "center"},
		{SourceTap.String(), "tap"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.got)
	}
}
