package chart

import (
	"github.com/midbel/chartkit/internal/slx"
)

func (t Tag) secondary() Tag {
	switch t {
	case TagRadarPrimary:
		return TagRadarSecondary
	case TagAreaPrimary:
		return TagAreaSecondary
	case TagColumnPrimary:
		return TagColumnSecondary
	case TagBarPrimary:
		return TagBarSecondary
	case TagScatterPrimary:
		return TagScatterSecondary
	case TagLinePrimary:
		return TagLineSecondary
	default:
		return t
	}
}

// plot moves the series at index (1 based) to the chart kind tag. Nothing
// happens when the chart can not be combined or when index is out of range.
// The defaults are only used when the slot is activated. The series is moved
// to tag even when the slot was already active.
func (c *Chart) plot(index int, tag Tag, secondary bool, kind AxisKind, defaults, opts Options) {
	if !c.Kind.Combinable || index < 1 || index > len(c.PlotArea.Series) {
		return
	}
	area := &c.PlotArea
	if tag.HasAxes() && area.Axes.Resolve(secondary, kind, c.Theme) {
		tag = tag.secondary()
	}
	if area.Registry.Active(tag) {
		area.Registry.Activate(tag, opts)
	} else {
		area.Registry.Activate(tag, defaults, opts)
	}
	area.Series[index-1].Tag = tag
}

func barDefaults(dir BarDirection, display Display) *BarOptions {
	opts := BarOptions{
		Direction:  dir,
		Grouping:   slx.Ptr(display.grouping(GroupingClustered)),
		VaryColors: slx.Ptr(false),
	}
	opts.SetGapWidth(150)
	if display != DisplayNormal {
		opts.SetOverlap(100)
	}
	return &opts
}

func (c *Chart) PlotDataSeriesAsPrimaryBarChart(index int, display Display, opts *BarOptions) {
	c.plot(index, TagBarPrimary, false, AxisCategory, barDefaults(DirectionBar, display), barOptions(opts, DirectionBar))
}

func (c *Chart) PlotDataSeriesAsSecondaryBarChart(index int, display Display, opts *BarOptions) {
	c.plot(index, TagBarPrimary, true, AxisCategory, barDefaults(DirectionBar, display), barOptions(opts, DirectionBar))
}

func (c *Chart) PlotDataSeriesAsPrimaryColumnChart(index int, display Display, opts *BarOptions) {
	c.plot(index, TagColumnPrimary, false, AxisCategory, barDefaults(DirectionColumn, display), barOptions(opts, DirectionColumn))
}

func (c *Chart) PlotDataSeriesAsSecondaryColumnChart(index int, display Display, opts *BarOptions) {
	c.plot(index, TagColumnPrimary, true, AxisCategory, barDefaults(DirectionColumn, display), barOptions(opts, DirectionColumn))
}

// barOptions keeps the direction of the slot whatever the caller set.
func barOptions(opts *BarOptions, dir BarDirection) *BarOptions {
	if opts == nil {
		return nil
	}
	x := *opts
	x.Direction = dir
	return &x
}

func lineDefaults(display Display) *LineOptions {
	return &LineOptions{
		Grouping:   slx.Ptr(display.grouping(GroupingStandard)),
		VaryColors: slx.Ptr(false),
		ShowMarker: slx.Ptr(true),
	}
}

func (c *Chart) PlotDataSeriesAsPrimaryLineChart(index int, display Display, opts *LineOptions) {
	c.plot(index, TagLinePrimary, false, AxisCategory, lineDefaults(display), opts)
}

func (c *Chart) PlotDataSeriesAsSecondaryLineChart(index int, display Display, opts *LineOptions) {
	c.plot(index, TagLinePrimary, true, AxisCategory, lineDefaults(display), opts)
}

func areaDefaults(display Display) *AreaOptions {
	return &AreaOptions{
		Grouping:   slx.Ptr(display.grouping(GroupingStandard)),
		VaryColors: slx.Ptr(false),
	}
}

func (c *Chart) PlotDataSeriesAsPrimaryAreaChart(index int, display Display, opts *AreaOptions) {
	c.plot(index, TagAreaPrimary, false, AxisCategory, areaDefaults(display), opts)
}

func (c *Chart) PlotDataSeriesAsSecondaryAreaChart(index int, display Display, opts *AreaOptions) {
	c.plot(index, TagAreaPrimary, true, AxisCategory, areaDefaults(display), opts)
}

func scatterDefaults(style ScatterStyle) *ScatterOptions {
	if style == "" {
		style = ScatterStyleLineMarker
	}
	return &ScatterOptions{
		Style:      slx.Ptr(style),
		VaryColors: slx.Ptr(false),
	}
}

func (c *Chart) PlotDataSeriesAsPrimaryScatterChart(index int, style ScatterStyle, opts *ScatterOptions) {
	c.plot(index, TagScatterPrimary, false, AxisValue, scatterDefaults(style), opts)
}

func (c *Chart) PlotDataSeriesAsSecondaryScatterChart(index int, style ScatterStyle, opts *ScatterOptions) {
	c.plot(index, TagScatterPrimary, true, AxisValue, scatterDefaults(style), opts)
}

func radarDefaults(style RadarStyle) *RadarOptions {
	if style == "" {
		style = RadarMarker
	}
	return &RadarOptions{
		Style:      slx.Ptr(style),
		VaryColors: slx.Ptr(false),
	}
}

func (c *Chart) PlotDataSeriesAsPrimaryRadarChart(index int, style RadarStyle, opts *RadarOptions) {
	c.plot(index, TagRadarPrimary, false, AxisCategory, radarDefaults(style), opts)
}

func (c *Chart) PlotDataSeriesAsSecondaryRadarChart(index int, style RadarStyle, opts *RadarOptions) {
	c.plot(index, TagRadarPrimary, true, AxisCategory, radarDefaults(style), opts)
}

func (c *Chart) PlotDataSeriesAsPieChart(index int, opts *PieOptions) {
	defaults := PieOptions{
		VaryColors: slx.Ptr(true),
	}
	defaults.SetFirstSliceAngle(0)
	c.plot(index, TagPie, false, AxisCategory, &defaults, opts)
}

func (c *Chart) PlotDataSeriesAsDoughnutChart(index int, opts *DoughnutOptions) {
	defaults := DoughnutOptions{
		VaryColors: slx.Ptr(true),
	}
	defaults.SetFirstSliceAngle(0).SetHoleSize(75)
	c.plot(index, TagDoughnut, false, AxisCategory, &defaults, opts)
}

func ofPieDefaults() *OfPieOptions {
	opts := OfPieOptions{
		VaryColors:  slx.Ptr(true),
		SeriesLines: slx.Ptr(true),
	}
	opts.SetGapWidth(100).SetSecondPieSize(75)
	return &opts
}

func (c *Chart) PlotDataSeriesAsBarOfPieChart(index int, opts *OfPieOptions) {
	c.plot(index, TagBarOfPie, false, AxisCategory, ofPieDefaults(), opts)
}

func (c *Chart) PlotDataSeriesAsPieOfPieChart(index int, opts *OfPieOptions) {
	c.plot(index, TagPieOfPie, false, AxisCategory, ofPieDefaults(), opts)
}
