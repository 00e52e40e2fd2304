// Package chart composes the plot area of a spreadsheet chart: chart kinds,
// their options, the axes they are plotted against and the series they
// hold. The result is emitted as a tree of DrawingML chart elements.
package chart

import (
	"github.com/midbel/chartkit/internal/slx"
	"github.com/midbel/chartkit/style"
)

// Kind records the built-in type last selected and what it allows.
type Kind struct {
	Type       BuiltIn
	Selected   bool
	Is3D       bool
	Combinable bool
}

type Title struct {
	Text    string
	Overlay bool
	Shape   *style.ShapeProperties
}

type LegendPosition string

const (
	LegendBottom   LegendPosition = "b"
	LegendLeft     LegendPosition = "l"
	LegendRight    LegendPosition = "r"
	LegendTop      LegendPosition = "t"
	LegendTopRight LegendPosition = "tr"
)

type Legend struct {
	Position LegendPosition
	Overlay  bool
	Shape    *style.ShapeProperties
}

type DataTable struct {
	HorizontalBorder bool
	VerticalBorder   bool
	Outline          bool
	LegendKeys       bool
	Shape            *style.ShapeProperties
}

type BlanksAs string

const (
	BlanksGap  BlanksAs = "gap"
	BlanksSpan BlanksAs = "span"
	BlanksZero BlanksAs = "zero"
)

// Wall is the floor, side or back wall of a 3D chart.
type Wall struct {
	Thickness *int
	Shape     *style.ShapeProperties
}

func (w *Wall) SetThickness(n int) *Wall {
	w.Thickness = slx.ClampPtr(n, 0, 9)
	return w
}

type PlotArea struct {
	Registry  *Registry
	Series    []*DataSeries
	Axes      Axes
	DataTable *DataTable
	Shape     *style.ShapeProperties
}

type Chart struct {
	Kind     Kind
	PlotArea PlotArea

	Title            *Title
	AutoTitleDeleted bool
	Legend           *Legend
	View             *View3D
	Floor            *Wall
	SideWall         *Wall
	BackWall         *Wall

	RoundedCorners  bool
	PlotVisibleOnly bool
	BlanksAs        BlanksAs
	Shape           *style.ShapeProperties
	Theme           style.Theme
}

// New creates a chart holding series. No chart type is selected yet.
func New(series []*DataSeries, theme style.Theme) *Chart {
	if len(theme) == 0 {
		theme = style.DefaultTheme()
	}
	c := Chart{
		PlotArea: PlotArea{
			Registry: NewRegistry(),
			Series:   series,
		},
		Legend: &Legend{
			Position: LegendRight,
		},
		PlotVisibleOnly: true,
		BlanksAs:        BlanksGap,
		Theme:           theme,
	}
	for i, s := range c.PlotArea.Series {
		s.Index = i
		s.Order = i
		if len(s.Theme) == 0 {
			s.Theme = theme
		}
	}
	return &c
}

func (c *Chart) Is3D() bool {
	return c.Kind.Is3D
}

func (c *Chart) IsCombinable() bool {
	return c.Kind.Combinable
}

func (c *Chart) HasView3D() bool {
	return !c.View.Empty()
}

func (c *Chart) Series() []*DataSeries {
	return c.PlotArea.Series
}

func (c *Chart) SeriesCount() int {
	return len(c.PlotArea.Series)
}

// SetChartType selects the built-in type of the chart. The defaults of the
// type are applied first, then opts. Options not matching the family of the
// type are ignored.
func (c *Chart) SetChartType(b BuiltIn, opts ...Options) {
	p, ok := presets[b]
	if !ok {
		return
	}
	c.Kind = Kind{
		Type:       b,
		Selected:   true,
		Is3D:       p.view != nil,
		Combinable: p.combinable,
	}
	area := &c.PlotArea
	if area.Registry == nil {
		area.Registry = NewRegistry()
	}
	area.Registry.Reset()
	area.Registry.Activate(p.tag, append([]Options{p.options}, opts...)...)
	area.Axes.Reset(p.orientation, p.axis, p.depth, c.Theme)

	c.View = nil
	if p.view != nil {
		var v View3D
		v.merge(p.view)
		c.View = &v
	} else {
		c.Floor, c.SideWall, c.BackWall = nil, nil, nil
	}

	if p.tag == TagBubble && !bubbled(area.Series) {
		area.Series = transformBubble(area.Series, c.Theme)
	}
	for _, s := range area.Series {
		s.Tag = p.tag
		p.series.apply(s)
	}
}

func (p seriesPatch) apply(s *DataSeries) {
	s.Options.Explosion = slx.Override(nil, p.explosion)
	s.Options.Smooth = nil
	if p.smooth {
		s.Options.Smooth = slx.Ptr(true)
	}
	s.Options.Bubble3D = nil
	if p.bubble3D {
		s.Options.Bubble3D = slx.Ptr(true)
	}
	if s.Options.Marker != nil {
		s.Options.Marker.Symbol = ""
	}
	if p.marker != "" {
		if s.Options.Marker == nil {
			s.Options.Marker = &Marker{}
		}
		s.Options.Marker.Symbol = p.marker
	}
	if p.noLine {
		s.ShapeProperties().SetNoLine()
	}
}

// SetView3D merges v into the camera of the chart. It does nothing unless a
// 3D type is selected.
func (c *Chart) SetView3D(v View3D) {
	if !c.Kind.Is3D {
		return
	}
	if c.View == nil {
		c.View = &View3D{}
	}
	c.View.merge(&v)
}

func (c *Chart) SetTitle(text string) *Title {
	c.Title = &Title{
		Text: text,
	}
	c.AutoTitleDeleted = false
	return c.Title
}

func (c *Chart) HideTitle() {
	c.Title = nil
	c.AutoTitleDeleted = true
}

func (c *Chart) ShowLegend(pos LegendPosition, overlay bool) *Legend {
	if pos == "" {
		pos = LegendRight
	}
	c.Legend = &Legend{
		Position: pos,
		Overlay:  overlay,
	}
	return c.Legend
}

func (c *Chart) HideLegend() {
	c.Legend = nil
}

func (c *Chart) ShowDataTable(horizontal, vertical, outline, keys bool) *DataTable {
	c.PlotArea.DataTable = &DataTable{
		HorizontalBorder: horizontal,
		VerticalBorder:   vertical,
		Outline:          outline,
		LegendKeys:       keys,
	}
	return c.PlotArea.DataTable
}

func (c *Chart) HideDataTable() {
	c.PlotArea.DataTable = nil
}

func (c *Chart) SetBlanksAs(b BlanksAs) {
	c.BlanksAs = b
}

// FloorWall gives the floor of a 3D chart, nil for other charts.
func (c *Chart) FloorWall() *Wall {
	return c.wall(&c.Floor)
}

func (c *Chart) Side() *Wall {
	return c.wall(&c.SideWall)
}

func (c *Chart) Back() *Wall {
	return c.wall(&c.BackWall)
}

func (c *Chart) wall(w **Wall) *Wall {
	if !c.Kind.Is3D {
		return nil
	}
	if *w == nil {
		*w = &Wall{
			Shape: style.NewShapeProperties(c.Theme),
		}
	}
	return *w
}

func (c *Chart) PrimaryTextAxis() *Axis {
	if p := c.PlotArea.Axes.Primary; p != nil {
		return p.Text
	}
	return nil
}

func (c *Chart) PrimaryValueAxis() *Axis {
	if p := c.PlotArea.Axes.Primary; p != nil {
		return p.Value
	}
	return nil
}

func (c *Chart) SecondaryTextAxis() *Axis {
	if p := c.PlotArea.Axes.Secondary; p != nil {
		return p.Text
	}
	return nil
}

func (c *Chart) SecondaryValueAxis() *Axis {
	if p := c.PlotArea.Axes.Secondary; p != nil {
		return p.Value
	}
	return nil
}

func (c *Chart) DepthAxis() *Axis {
	return c.PlotArea.Axes.Depth
}

func (c *Chart) ShowSecondaryTextAxis() {
	c.PlotArea.Axes.ShowSecondaryText()
}

func (c *Chart) HideSecondaryTextAxis() {
	c.PlotArea.Axes.HideSecondaryText()
}
