package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBubbleSizes(t *testing.T) {
	t.Run("three-columns", func(t *testing.T) {
		// x in A, y in B, sizes in C: the reader gives two series (B and C)
		// sharing A as categories.
		c := New(makeSeries(2, 4), nil)
		c.SetChartType(Bubble)

		list := c.Series()
		require.Len(t, list, 1)
		s := list[0]
		assert.Equal(t, TagBubble, s.Tag)
		require.NotNil(t, s.BubbleSize)
		assert.False(t, s.BubbleSize.Literal())
		assert.Equal(t, 5, s.BubbleSize.Len())
		assert.Equal(t, "Sheet1!$C$1:$C$5", s.BubbleSize.Formula())
		assert.Equal(t, Point{Index: 0, Value: "101"}, s.BubbleSize.Points[0])
		assert.Equal(t, Point{Index: 1, Value: "20"}, s.BubbleSize.Points[1])

		assert.Equal(t, 5, s.Categories.Len())
		assert.Equal(t, "Sheet1!$A$1:$A$5", s.Categories.Formula())
		assert.Equal(t, "0", s.Categories.Points[0].Value)
		assert.Equal(t, "cat1", s.Categories.Points[1].Value)
		assert.Equal(t, 5, s.Values.Len())
		assert.Equal(t, "100", s.Values.Points[0].Value)
	})
	t.Run("two-columns", func(t *testing.T) {
		c := New(makeSeries(1, 4), nil)
		c.SetChartType(Bubble3D)

		list := c.Series()
		require.Len(t, list, 1)
		size := list[0].BubbleSize
		require.NotNil(t, size)
		assert.True(t, size.Literal())
		assert.Equal(t, "General", size.FormatCode)
		require.Len(t, size.Points, 5)
		for i, p := range size.Points {
			assert.Equal(t, Point{Index: i, Value: "1"}, p)
		}
		assert.True(t, *list[0].Options.Bubble3D)
	})
	t.Run("pairs", func(t *testing.T) {
		c := New(makeSeries(5, 3), nil)
		c.SetChartType(Bubble)

		list := c.Series()
		require.Len(t, list, 3)
		for i, s := range list {
			assert.Equal(t, i, s.Index)
		}
		assert.False(t, list[1].BubbleSize.Literal())
		assert.True(t, list[2].BubbleSize.Literal())
		assert.Equal(t, 4, list[2].BubbleSize.Len())
	})
	t.Run("parse-fallback", func(t *testing.T) {
		series := makeSeries(2, 3)
		series[1].Name.Points[0].Value = "size"
		c := New(series, nil)
		c.SetChartType(Bubble)

		size := c.Series()[0].BubbleSize
		assert.Equal(t, "0", size.Points[0].Value)
	})
	t.Run("no-header", func(t *testing.T) {
		series := makeSeries(2, 3)
		series[0].Name = nil
		c := New(series, nil)
		c.SetChartType(Bubble)

		s := c.Series()[0]
		assert.Equal(t, 3, s.BubbleSize.Len())
		assert.Equal(t, "Sheet1!$C$2:$C$4", s.BubbleSize.Formula())
	})
	t.Run("original-untouched", func(t *testing.T) {
		series := makeSeries(2, 3)
		c := New(series, nil)
		c.SetChartType(Bubble)

		assert.Equal(t, 3, series[0].Categories.Len())
		assert.Equal(t, "Sheet1!$A$2:$A$4", series[0].Categories.Formula())
		assert.Len(t, c.Series(), 1)
	})
}

func TestBubbleSizeCount(t *testing.T) {
	for _, n := range []int{1, 2} {
		c := New(makeSeries(n, 4), nil)
		c.SetChartType(Bubble)

		ser := plotArea(t, c).Path("c:bubbleChart", "c:ser")
		require.NotNil(t, ser)

		size := ser.Find("c:bubbleSize")
		require.NotNil(t, size)
		if cache := size.Path("c:numRef", "c:numCache"); cache != nil {
			assert.Equal(t, "Sheet1!$C$1:$C$5", size.Path("c:numRef", "c:f").Text)
			assert.Equal(t, "5", cache.Find("c:ptCount").Get("val"))
			assert.Len(t, cache.FindAll("c:pt"), 5)
		} else {
			lit := size.Find("c:numLit")
			require.NotNil(t, lit, "series %d", n)
			assert.Equal(t, "5", lit.Find("c:ptCount").Get("val"))
			assert.Len(t, lit.FindAll("c:pt"), 5)
		}
		assert.Equal(t, "5", ser.Path("c:xVal", "c:strRef", "c:strCache", "c:ptCount").Get("val"))
		assert.Equal(t, "5", ser.Path("c:yVal", "c:numRef", "c:numCache", "c:ptCount").Get("val"))
	}
}

func TestBubbleTypeTwice(t *testing.T) {
	c := New(makeSeries(4, 3), nil)
	c.SetChartType(Bubble)
	require.Len(t, c.Series(), 2)

	c.SetChartType(Bubble3D)
	list := c.Series()
	require.Len(t, list, 2)
	assert.Equal(t, 4, list[0].BubbleSize.Len())
	assert.Equal(t, "Sheet1!$C$1:$C$4", list[0].BubbleSize.Formula())
	assert.True(t, *list[1].Options.Bubble3D)
}
