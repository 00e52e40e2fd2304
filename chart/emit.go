package chart

import (
	"io"
	"slices"

	"github.com/midbel/chartkit/dom"
	"github.com/midbel/chartkit/internal/slx"
	"github.com/midbel/chartkit/style"
)

const (
	nsChart     = "http://schemas.openxmlformats.org/drawingml/2006/chart"
	nsDrawing   = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsRelations = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// Tree builds the element tree of the chart. Axes are reconciled first.
// The registry receives the pictures of the picture fills, it can be nil
// when none is used.
func (c *Chart) Tree(reg style.ImageRegistry) (*dom.Element, error) {
	c.PlotArea.Axes.Reconcile()
	e := emitter{
		chart: c,
		reg:   reg,
	}
	root := e.chartSpace()
	if e.err != nil {
		return nil, e.err
	}
	return root, nil
}

func (c *Chart) Encode(w io.Writer, reg style.ImageRegistry) error {
	root, err := c.Tree(reg)
	if err != nil {
		return err
	}
	return dom.Encode(w, root)
}

type emitter struct {
	chart *Chart
	reg   style.ImageRegistry
	err   error
}

func (e *emitter) invalid() bool {
	return e.err != nil
}

func (e *emitter) shape(name string, sp *style.ShapeProperties) *dom.Element {
	if e.invalid() || sp.Empty() {
		return nil
	}
	el, err := sp.Element(name, e.reg)
	if err != nil {
		e.err = err
		return nil
	}
	return el
}

func (e *emitter) chartSpace() *dom.Element {
	c := e.chart
	root := dom.New("c:chartSpace").
		Attr("xmlns:c", nsChart).
		Attr("xmlns:a", nsDrawing).
		Attr("xmlns:r", nsRelations)
	root.Append(dom.Val("c:date1904", false), dom.Val("c:roundedCorners", c.RoundedCorners))

	chart := dom.New("c:chart")
	if c.Title != nil {
		chart.Append(e.title(c.Title.Text, c.Title.Overlay, c.Title.Shape))
	}
	chart.Append(dom.Val("c:autoTitleDeleted", c.AutoTitleDeleted))
	if c.HasView3D() {
		chart.Append(e.view3D(c.View))
	}
	if c.Kind.Is3D {
		chart.Append(e.wall("c:floor", c.Floor))
		chart.Append(e.wall("c:sideWall", c.SideWall))
		chart.Append(e.wall("c:backWall", c.BackWall))
	}
	chart.Append(e.plotArea())
	if c.Legend != nil {
		chart.Append(e.legend(c.Legend))
	}
	chart.Append(dom.Val("c:plotVisOnly", c.PlotVisibleOnly))
	chart.Append(dom.Val("c:dispBlanksAs", string(c.BlanksAs)))

	root.Append(chart, e.shape("c:spPr", c.Shape))
	return root
}

func (e *emitter) title(text string, overlay bool, sp *style.ShapeProperties) *dom.Element {
	run := dom.New("a:r",
		dom.New("a:rPr").Attr("lang", "en-US"),
		dom.Text("a:t", text),
	)
	rich := dom.New("c:rich",
		dom.New("a:bodyPr"),
		dom.New("a:lstStyle"),
		dom.New("a:p", run),
	)
	return dom.New("c:title",
		dom.New("c:tx", rich),
		dom.Val("c:overlay", overlay),
		e.shape("c:spPr", sp),
	)
}

func (e *emitter) view3D(v *View3D) *dom.Element {
	el := dom.New("c:view3D")
	if v.RotX != nil {
		el.Append(dom.Val("c:rotX", *v.RotX))
	}
	if v.HeightPercent != nil {
		el.Append(dom.Val("c:hPercent", *v.HeightPercent))
	}
	if v.RotY != nil {
		el.Append(dom.Val("c:rotY", *v.RotY))
	}
	if v.DepthPercent != nil {
		el.Append(dom.Val("c:depthPercent", *v.DepthPercent))
	}
	if v.RightAngleAxes != nil {
		el.Append(dom.Val("c:rAngAx", *v.RightAngleAxes))
	}
	if v.Perspective != nil {
		el.Append(dom.Val("c:perspective", *v.Perspective))
	}
	return el
}

func (e *emitter) wall(name string, w *Wall) *dom.Element {
	el := dom.New(name)
	if w == nil {
		return el.Append(dom.Val("c:thickness", 0))
	}
	el.Append(dom.Val("c:thickness", slx.Value(w.Thickness, 0)))
	return el.Append(e.shape("c:spPr", w.Shape))
}

func (e *emitter) legend(g *Legend) *dom.Element {
	return dom.New("c:legend",
		dom.Val("c:legendPos", string(g.Position)),
		dom.Val("c:overlay", g.Overlay),
		e.shape("c:spPr", g.Shape),
	)
}

func (e *emitter) plotArea() *dom.Element {
	var (
		area  = &e.chart.PlotArea
		el    = dom.New("c:plotArea", dom.New("c:layout"))
		slots []*Slot
	)
	if area.Registry != nil {
		slots = area.Registry.Ordered()
	}
	var withAxes, withDepth, withSecondary bool
	for _, s := range slots {
		el.Append(e.fragment(s))
		withAxes = withAxes || s.Tag.HasAxes()
		withDepth = withDepth || s.Tag.HasDepth()
		withSecondary = withSecondary || s.Tag.Secondary()
	}
	if withAxes {
		axes := &area.Axes
		if p := axes.Primary; p != nil {
			el.Append(e.axis(p.Text, p.Value), e.axis(p.Value, p.Text))
		}
		if withDepth && axes.Depth != nil {
			el.Append(e.axis(axes.Depth, nil))
		}
		if p := axes.Secondary; withSecondary && p != nil {
			el.Append(e.axis(p.Text, p.Value), e.axis(p.Value, p.Text))
		}
		if t := area.DataTable; t != nil {
			el.Append(e.dataTable(t))
		}
	}
	return el.Append(e.shape("c:spPr", area.Shape))
}

func (e *emitter) dataTable(t *DataTable) *dom.Element {
	return dom.New("c:dTable",
		dom.Val("c:showHorzBorder", t.HorizontalBorder),
		dom.Val("c:showVertBorder", t.VerticalBorder),
		dom.Val("c:showOutline", t.Outline),
		dom.Val("c:showKeys", t.LegendKeys),
		e.shape("c:spPr", t.Shape),
	)
}

// seriesOf gives the series plotted with tag in legend order.
func (e *emitter) seriesOf(tag Tag) []*DataSeries {
	var list []*DataSeries
	for _, s := range e.chart.PlotArea.Series {
		if s.Tag == tag {
			list = append(list, s)
		}
	}
	slices.SortStableFunc(list, func(a, b *DataSeries) int {
		return a.Order - b.Order
	})
	return list
}

func (e *emitter) axisIds(tag Tag) []*dom.Element {
	axes := &e.chart.PlotArea.Axes
	pair := axes.pair(tag.Secondary())
	if pair == nil {
		return nil
	}
	list := []*dom.Element{
		dom.Val("c:axId", pair.Text.ID),
		dom.Val("c:axId", pair.Value.ID),
	}
	if tag.HasDepth() && axes.Depth != nil {
		list = append(list, dom.Val("c:axId", axes.Depth.ID))
	}
	return list
}

func (e *emitter) fragment(s *Slot) *dom.Element {
	var (
		el   = dom.New(s.Tag.element())
		list = e.seriesOf(s.Tag)
	)
	switch o := s.Options.(type) {
	case *BarOptions:
		e.barChart(el, s.Tag, o, list)
	case *LineOptions:
		e.lineChart(el, s.Tag, o, list)
	case *AreaOptions:
		e.areaChart(el, s.Tag, o, list)
	case *PieOptions:
		e.pieChart(el, s.Tag, o, list)
	case *DoughnutOptions:
		e.doughnutChart(el, o, list)
	case *OfPieOptions:
		e.ofPieChart(el, s.Tag, o, list)
	case *RadarOptions:
		el.Append(dom.Val("c:radarStyle", string(slx.Value(o.Style, RadarMarker))))
		el.Append(dom.Val("c:varyColors", slx.Value(o.VaryColors, false)))
		e.appendSeries(el, s.Tag, list)
	case *ScatterOptions:
		el.Append(dom.Val("c:scatterStyle", string(slx.Value(o.Style, ScatterStyleLineMarker))))
		el.Append(dom.Val("c:varyColors", slx.Value(o.VaryColors, false)))
		e.appendSeries(el, s.Tag, list)
	case *BubbleOptions:
		e.bubbleChart(el, o, list)
	case *SurfaceOptions:
		el.Append(dom.Val("c:wireframe", slx.Value(o.Wireframe, false)))
		e.appendSeries(el, s.Tag, list)
	case *StockOptions:
		e.stockChart(el, o, list)
	}
	return el.Append(e.axisIds(s.Tag)...)
}

func (e *emitter) appendSeries(el *dom.Element, tag Tag, list []*DataSeries) {
	for _, s := range list {
		el.Append(e.series(tag, s))
	}
}

func (e *emitter) barChart(el *dom.Element, tag Tag, o *BarOptions, list []*DataSeries) {
	dir := o.Direction
	switch {
	case tag == TagBarPrimary || tag == TagBarSecondary:
		dir = DirectionBar
	case tag == TagColumnPrimary || tag == TagColumnSecondary:
		dir = DirectionColumn
	case dir == "":
		dir = DirectionColumn
	}
	el.Append(dom.Val("c:barDir", string(dir)))
	el.Append(dom.Val("c:grouping", string(slx.Value(o.Grouping, GroupingClustered))))
	el.Append(dom.Val("c:varyColors", slx.Value(o.VaryColors, false)))
	e.appendSeries(el, tag, list)
	el.Append(dom.Val("c:gapWidth", slx.Value(o.GapWidth, 150)))
	if tag == TagBar3D {
		if o.GapDepth != nil {
			el.Append(dom.Val("c:gapDepth", *o.GapDepth))
		}
		el.Append(dom.Val("c:shape", string(slx.Value(o.Shape, ShapeBox))))
		return
	}
	if o.Overlap != nil {
		el.Append(dom.Val("c:overlap", *o.Overlap))
	} else if o.stacked() {
		el.Append(dom.Val("c:overlap", 100))
	}
	if o.stacked() {
		el.Append(dom.New("c:serLines"))
	}
}

func (e *emitter) lineChart(el *dom.Element, tag Tag, o *LineOptions, list []*DataSeries) {
	el.Append(dom.Val("c:grouping", string(slx.Value(o.Grouping, GroupingStandard))))
	el.Append(dom.Val("c:varyColors", slx.Value(o.VaryColors, false)))
	e.appendSeries(el, tag, list)
	if slx.Value(o.DropLines, false) {
		el.Append(dom.New("c:dropLines"))
	}
	if tag == TagLine3D {
		if o.GapDepth != nil {
			el.Append(dom.Val("c:gapDepth", *o.GapDepth))
		}
		return
	}
	if slx.Value(o.HighLowLines, false) {
		el.Append(dom.New("c:hiLowLines"))
	}
	if slx.Value(o.UpDownBars, false) {
		el.Append(e.upDownBars(o.GapWidth))
	}
	el.Append(dom.Val("c:marker", slx.Value(o.ShowMarker, true)))
	if o.Smooth != nil {
		el.Append(dom.Val("c:smooth", *o.Smooth))
	}
}

func (e *emitter) upDownBars(gap *int) *dom.Element {
	return dom.New("c:upDownBars",
		dom.Val("c:gapWidth", slx.Value(gap, 150)),
		dom.New("c:upBars"),
		dom.New("c:downBars"),
	)
}

func (e *emitter) areaChart(el *dom.Element, tag Tag, o *AreaOptions, list []*DataSeries) {
	el.Append(dom.Val("c:grouping", string(slx.Value(o.Grouping, GroupingStandard))))
	el.Append(dom.Val("c:varyColors", slx.Value(o.VaryColors, false)))
	e.appendSeries(el, tag, list)
	if slx.Value(o.DropLines, false) {
		el.Append(dom.New("c:dropLines"))
	}
	if tag == TagArea3D && o.GapDepth != nil {
		el.Append(dom.Val("c:gapDepth", *o.GapDepth))
	}
}

func (e *emitter) pieChart(el *dom.Element, tag Tag, o *PieOptions, list []*DataSeries) {
	el.Append(dom.Val("c:varyColors", slx.Value(o.VaryColors, true)))
	e.appendSeries(el, tag, list)
	if tag == TagPie {
		el.Append(dom.Val("c:firstSliceAng", slx.Value(o.FirstSliceAngle, 0)))
	}
}

func (e *emitter) doughnutChart(el *dom.Element, o *DoughnutOptions, list []*DataSeries) {
	el.Append(dom.Val("c:varyColors", slx.Value(o.VaryColors, true)))
	e.appendSeries(el, TagDoughnut, list)
	el.Append(dom.Val("c:firstSliceAng", slx.Value(o.FirstSliceAngle, 0)))
	el.Append(dom.Val("c:holeSize", slx.Value(o.HoleSize, 75)))
}

func (e *emitter) ofPieChart(el *dom.Element, tag Tag, o *OfPieOptions, list []*DataSeries) {
	kind := "pie"
	if tag == TagBarOfPie {
		kind = "bar"
	}
	el.Append(dom.Val("c:ofPieType", kind))
	el.Append(dom.Val("c:varyColors", slx.Value(o.VaryColors, true)))
	e.appendSeries(el, tag, list)
	el.Append(dom.Val("c:gapWidth", slx.Value(o.GapWidth, 100)))
	if o.SplitType != nil {
		el.Append(dom.Val("c:splitType", string(*o.SplitType)))
	}
	if o.SplitPos != nil {
		el.Append(dom.Val("c:splitPos", *o.SplitPos))
	}
	el.Append(dom.Val("c:secondPieSize", slx.Value(o.SecondPieSize, 75)))
	if slx.Value(o.SeriesLines, true) {
		el.Append(dom.New("c:serLines"))
	}
}

func (e *emitter) bubbleChart(el *dom.Element, o *BubbleOptions, list []*DataSeries) {
	el.Append(dom.Val("c:varyColors", slx.Value(o.VaryColors, false)))
	e.appendSeries(el, TagBubble, list)
	if o.Bubble3D != nil {
		el.Append(dom.Val("c:bubble3D", *o.Bubble3D))
	}
	el.Append(dom.Val("c:bubbleScale", slx.Value(o.Scale, 100)))
	el.Append(dom.Val("c:showNegBubbles", slx.Value(o.ShowNegative, false)))
	if o.SizeRepresents != nil {
		el.Append(dom.Val("c:sizeRepresents", string(*o.SizeRepresents)))
	}
}

func (e *emitter) stockChart(el *dom.Element, o *StockOptions, list []*DataSeries) {
	e.appendSeries(el, TagStock, list)
	if slx.Value(o.DropLines, false) {
		el.Append(dom.New("c:dropLines"))
	}
	if slx.Value(o.HighLowLines, true) {
		el.Append(dom.New("c:hiLowLines"))
	}
	if slx.Value(o.UpDownBars, false) {
		el.Append(e.upDownBars(o.GapWidth))
	}
}
