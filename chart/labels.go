package chart

import (
	"github.com/midbel/chartkit/internal/slx"
)

// The setters below take 1-based indices. Indices out of range are moved to
// the nearest valid one instead of being rejected.

func (c *Chart) seriesAt(index int) *DataSeries {
	n := len(c.PlotArea.Series)
	if n == 0 {
		return nil
	}
	return c.PlotArea.Series[slx.Clamp(index, 1, n)-1]
}

func pointAt(s *DataSeries, index int) int {
	n := max(s.points(), 1)
	return slx.Clamp(index, 1, n) - 1
}

// SeriesOptions gives a copy of the options of a series.
func (c *Chart) SeriesOptions(index int) SeriesOptions {
	s := c.seriesAt(index)
	if s == nil {
		return SeriesOptions{}
	}
	return *cloneOf(&s.Options)
}

func (c *Chart) SetSeriesOptions(index int, opts SeriesOptions) {
	s := c.seriesAt(index)
	if s == nil {
		return
	}
	opts.normalize()
	s.Options = *cloneOf(&opts)
}

func (c *Chart) SetDataLabels(index int, labels DataLabels) {
	s := c.seriesAt(index)
	if s == nil {
		return
	}
	s.Labels = cloneOf(&labels)
}

// SetDataPointOptions styles one point of a series.
func (c *Chart) SetDataPointOptions(series, point int, opts SeriesOptions) {
	s := c.seriesAt(series)
	if s == nil {
		return
	}
	if s.Points == nil {
		s.Points = make(map[int]*SeriesOptions)
	}
	opts.normalize()
	s.Points[pointAt(s, point)] = cloneOf(&opts)
}

func (c *Chart) SetDataPointLabels(series, point int, labels DataLabels) {
	s := c.seriesAt(series)
	if s == nil {
		return
	}
	if s.PointLabels == nil {
		s.PointLabels = make(map[int]*DataLabels)
	}
	s.PointLabels[pointAt(s, point)] = cloneOf(&labels)
}
