package chart

import (
	"github.com/midbel/chartkit/internal/slx"
)

// Options is the payload attached to a slot. Every chart family has its own
// concrete option bag; a bag only merges with one of the same family.
type Options interface {
	family() family
	merge(Options)
	normalize()
}

type Grouping string

const (
	GroupingStandard       Grouping = "standard"
	GroupingClustered      Grouping = "clustered"
	GroupingStacked        Grouping = "stacked"
	GroupingPercentStacked Grouping = "percentStacked"
)

// Display is the grouping requested when a series is plotted on another
// chart kind.
type Display int

const (
	DisplayNormal Display = iota
	DisplayStacked
	DisplayPercentStacked
)

func (d Display) grouping(normal Grouping) Grouping {
	switch d {
	case DisplayStacked:
		return GroupingStacked
	case DisplayPercentStacked:
		return GroupingPercentStacked
	default:
		return normal
	}
}

type BarDirection string

const (
	DirectionColumn BarDirection = "col"
	DirectionBar    BarDirection = "bar"
)

type BarShape string

const (
	ShapeBox          BarShape = "box"
	ShapeCylinder     BarShape = "cylinder"
	ShapeCone         BarShape = "cone"
	ShapeConeToMax    BarShape = "coneToMax"
	ShapePyramid      BarShape = "pyramid"
	ShapePyramidToMax BarShape = "pyramidToMax"
)

type BarOptions struct {
	Direction  BarDirection
	Grouping   *Grouping
	VaryColors *bool
	GapWidth   *int
	Overlap    *int
	GapDepth   *int
	Shape      *BarShape
}

func (o *BarOptions) SetGapWidth(v int) *BarOptions {
	o.GapWidth = slx.ClampPtr(v, 0, 500)
	return o
}

func (o *BarOptions) SetOverlap(v int) *BarOptions {
	o.Overlap = slx.ClampPtr(v, -100, 100)
	return o
}

func (o *BarOptions) SetGapDepth(v int) *BarOptions {
	o.GapDepth = slx.ClampPtr(v, 0, 500)
	return o
}

func (o *BarOptions) family() family {
	return familyBar
}

func (o *BarOptions) merge(other Options) {
	x, ok := other.(*BarOptions)
	if !ok || x == nil {
		return
	}
	if x.Direction != "" {
		o.Direction = x.Direction
	}
	o.Grouping = slx.Override(o.Grouping, x.Grouping)
	o.VaryColors = slx.Override(o.VaryColors, x.VaryColors)
	o.GapWidth = slx.Override(o.GapWidth, x.GapWidth)
	o.Overlap = slx.Override(o.Overlap, x.Overlap)
	o.GapDepth = slx.Override(o.GapDepth, x.GapDepth)
	o.Shape = slx.Override(o.Shape, x.Shape)
	o.normalize()
}

func (o *BarOptions) normalize() {
	o.GapWidth = clampOpt(o.GapWidth, 0, 500)
	o.Overlap = clampOpt(o.Overlap, -100, 100)
	o.GapDepth = clampOpt(o.GapDepth, 0, 500)
}

func (o *BarOptions) stacked() bool {
	g := slx.Value(o.Grouping, GroupingClustered)
	return g == GroupingStacked || g == GroupingPercentStacked
}

type LineOptions struct {
	Grouping     *Grouping
	VaryColors   *bool
	ShowMarker   *bool
	Smooth       *bool
	DropLines    *bool
	HighLowLines *bool
	UpDownBars   *bool
	GapWidth     *int
	GapDepth     *int
}

func (o *LineOptions) SetGapDepth(v int) *LineOptions {
	o.GapDepth = slx.ClampPtr(v, 0, 500)
	return o
}

func (o *LineOptions) SetUpDownGapWidth(v int) *LineOptions {
	o.GapWidth = slx.ClampPtr(v, 0, 500)
	return o
}

func (o *LineOptions) family() family {
	return familyLine
}

func (o *LineOptions) merge(other Options) {
	x, ok := other.(*LineOptions)
	if !ok || x == nil {
		return
	}
	o.Grouping = slx.Override(o.Grouping, x.Grouping)
	o.VaryColors = slx.Override(o.VaryColors, x.VaryColors)
	o.ShowMarker = slx.Override(o.ShowMarker, x.ShowMarker)
	o.Smooth = slx.Override(o.Smooth, x.Smooth)
	o.DropLines = slx.Override(o.DropLines, x.DropLines)
	o.HighLowLines = slx.Override(o.HighLowLines, x.HighLowLines)
	o.UpDownBars = slx.Override(o.UpDownBars, x.UpDownBars)
	o.GapWidth = slx.Override(o.GapWidth, x.GapWidth)
	o.GapDepth = slx.Override(o.GapDepth, x.GapDepth)
	o.normalize()
}

func (o *LineOptions) normalize() {
	o.GapWidth = clampOpt(o.GapWidth, 0, 500)
	o.GapDepth = clampOpt(o.GapDepth, 0, 500)
}

type AreaOptions struct {
	Grouping   *Grouping
	VaryColors *bool
	DropLines  *bool
	GapDepth   *int
}

func (o *AreaOptions) SetGapDepth(v int) *AreaOptions {
	o.GapDepth = slx.ClampPtr(v, 0, 500)
	return o
}

func (o *AreaOptions) family() family {
	return familyArea
}

func (o *AreaOptions) merge(other Options) {
	x, ok := other.(*AreaOptions)
	if !ok || x == nil {
		return
	}
	o.Grouping = slx.Override(o.Grouping, x.Grouping)
	o.VaryColors = slx.Override(o.VaryColors, x.VaryColors)
	o.DropLines = slx.Override(o.DropLines, x.DropLines)
	o.GapDepth = slx.Override(o.GapDepth, x.GapDepth)
	o.normalize()
}

func (o *AreaOptions) normalize() {
	o.GapDepth = clampOpt(o.GapDepth, 0, 500)
}

type PieOptions struct {
	VaryColors      *bool
	FirstSliceAngle *int
}

func (o *PieOptions) SetFirstSliceAngle(v int) *PieOptions {
	o.FirstSliceAngle = slx.ClampPtr(v, 0, 360)
	return o
}

func (o *PieOptions) family() family {
	return familyPie
}

func (o *PieOptions) merge(other Options) {
	x, ok := other.(*PieOptions)
	if !ok || x == nil {
		return
	}
	o.VaryColors = slx.Override(o.VaryColors, x.VaryColors)
	o.FirstSliceAngle = slx.Override(o.FirstSliceAngle, x.FirstSliceAngle)
	o.normalize()
}

func (o *PieOptions) normalize() {
	o.FirstSliceAngle = clampOpt(o.FirstSliceAngle, 0, 360)
}

type DoughnutOptions struct {
	VaryColors      *bool
	FirstSliceAngle *int
	HoleSize        *int
}

func (o *DoughnutOptions) SetFirstSliceAngle(v int) *DoughnutOptions {
	o.FirstSliceAngle = slx.ClampPtr(v, 0, 360)
	return o
}

func (o *DoughnutOptions) SetHoleSize(v int) *DoughnutOptions {
	o.HoleSize = slx.ClampPtr(v, 10, 90)
	return o
}

func (o *DoughnutOptions) family() family {
	return familyDoughnut
}

func (o *DoughnutOptions) merge(other Options) {
	x, ok := other.(*DoughnutOptions)
	if !ok || x == nil {
		return
	}
	o.VaryColors = slx.Override(o.VaryColors, x.VaryColors)
	o.FirstSliceAngle = slx.Override(o.FirstSliceAngle, x.FirstSliceAngle)
	o.HoleSize = slx.Override(o.HoleSize, x.HoleSize)
	o.normalize()
}

func (o *DoughnutOptions) normalize() {
	o.FirstSliceAngle = clampOpt(o.FirstSliceAngle, 0, 360)
	o.HoleSize = clampOpt(o.HoleSize, 10, 90)
}

type SplitType string

const (
	SplitAuto    SplitType = "auto"
	SplitCustom  SplitType = "cust"
	SplitPercent SplitType = "percent"
	SplitPos     SplitType = "pos"
	SplitValue   SplitType = "val"
)

type OfPieOptions struct {
	VaryColors    *bool
	GapWidth      *int
	SecondPieSize *int
	SplitType     *SplitType
	SplitPos      *float64
	SeriesLines   *bool
}

func (o *OfPieOptions) SetGapWidth(v int) *OfPieOptions {
	o.GapWidth = slx.ClampPtr(v, 0, 500)
	return o
}

func (o *OfPieOptions) SetSecondPieSize(v int) *OfPieOptions {
	o.SecondPieSize = slx.ClampPtr(v, 5, 200)
	return o
}

func (o *OfPieOptions) family() family {
	return familyOfPie
}

func (o *OfPieOptions) merge(other Options) {
	x, ok := other.(*OfPieOptions)
	if !ok || x == nil {
		return
	}
	o.VaryColors = slx.Override(o.VaryColors, x.VaryColors)
	o.GapWidth = slx.Override(o.GapWidth, x.GapWidth)
	o.SecondPieSize = slx.Override(o.SecondPieSize, x.SecondPieSize)
	o.SplitType = slx.Override(o.SplitType, x.SplitType)
	o.SplitPos = slx.Override(o.SplitPos, x.SplitPos)
	o.SeriesLines = slx.Override(o.SeriesLines, x.SeriesLines)
	o.normalize()
}

func (o *OfPieOptions) normalize() {
	o.GapWidth = clampOpt(o.GapWidth, 0, 500)
	o.SecondPieSize = clampOpt(o.SecondPieSize, 5, 200)
}

type RadarStyle string

const (
	RadarStandard RadarStyle = "standard"
	RadarMarker   RadarStyle = "marker"
	RadarFilled   RadarStyle = "filled"
)

type RadarOptions struct {
	Style      *RadarStyle
	VaryColors *bool
}

func (o *RadarOptions) family() family {
	return familyRadar
}

func (o *RadarOptions) merge(other Options) {
	x, ok := other.(*RadarOptions)
	if !ok || x == nil {
		return
	}
	o.Style = slx.Override(o.Style, x.Style)
	o.VaryColors = slx.Override(o.VaryColors, x.VaryColors)
}

func (o *RadarOptions) normalize() {}

type ScatterStyle string

const (
	ScatterStyleLineMarker   ScatterStyle = "lineMarker"
	ScatterStyleLine         ScatterStyle = "line"
	ScatterStyleMarker       ScatterStyle = "marker"
	ScatterStyleSmooth       ScatterStyle = "smooth"
	ScatterStyleSmoothMarker ScatterStyle = "smoothMarker"
	ScatterStyleNone         ScatterStyle = "none"
)

type ScatterOptions struct {
	Style      *ScatterStyle
	VaryColors *bool
}

func (o *ScatterOptions) family() family {
	return familyScatter
}

func (o *ScatterOptions) merge(other Options) {
	x, ok := other.(*ScatterOptions)
	if !ok || x == nil {
		return
	}
	o.Style = slx.Override(o.Style, x.Style)
	o.VaryColors = slx.Override(o.VaryColors, x.VaryColors)
}

func (o *ScatterOptions) normalize() {}

type SizeRepresents string

const (
	SizeArea  SizeRepresents = "area"
	SizeWidth SizeRepresents = "w"
)

type BubbleOptions struct {
	VaryColors     *bool
	Bubble3D       *bool
	Scale          *int
	ShowNegative   *bool
	SizeRepresents *SizeRepresents
}

func (o *BubbleOptions) SetScale(v int) *BubbleOptions {
	o.Scale = slx.ClampPtr(v, 0, 300)
	return o
}

func (o *BubbleOptions) family() family {
	return familyBubble
}

func (o *BubbleOptions) merge(other Options) {
	x, ok := other.(*BubbleOptions)
	if !ok || x == nil {
		return
	}
	o.VaryColors = slx.Override(o.VaryColors, x.VaryColors)
	o.Bubble3D = slx.Override(o.Bubble3D, x.Bubble3D)
	o.Scale = slx.Override(o.Scale, x.Scale)
	o.ShowNegative = slx.Override(o.ShowNegative, x.ShowNegative)
	o.SizeRepresents = slx.Override(o.SizeRepresents, x.SizeRepresents)
	o.normalize()
}

func (o *BubbleOptions) normalize() {
	o.Scale = clampOpt(o.Scale, 0, 300)
}

type SurfaceOptions struct {
	Wireframe *bool
}

func (o *SurfaceOptions) family() family {
	return familySurface
}

func (o *SurfaceOptions) merge(other Options) {
	x, ok := other.(*SurfaceOptions)
	if !ok || x == nil {
		return
	}
	o.Wireframe = slx.Override(o.Wireframe, x.Wireframe)
}

func (o *SurfaceOptions) normalize() {}

type StockOptions struct {
	HighLowLines *bool
	DropLines    *bool
	UpDownBars   *bool
	GapWidth     *int
}

func (o *StockOptions) SetGapWidth(v int) *StockOptions {
	o.GapWidth = slx.ClampPtr(v, 0, 500)
	return o
}

func (o *StockOptions) family() family {
	return familyStock
}

func (o *StockOptions) merge(other Options) {
	x, ok := other.(*StockOptions)
	if !ok || x == nil {
		return
	}
	o.HighLowLines = slx.Override(o.HighLowLines, x.HighLowLines)
	o.DropLines = slx.Override(o.DropLines, x.DropLines)
	o.UpDownBars = slx.Override(o.UpDownBars, x.UpDownBars)
	o.GapWidth = slx.Override(o.GapWidth, x.GapWidth)
	o.normalize()
}

func (o *StockOptions) normalize() {
	o.GapWidth = clampOpt(o.GapWidth, 0, 500)
}

func newOptions(f family) Options {
	switch f {
	case familyBar:
		return &BarOptions{}
	case familyLine:
		return &LineOptions{}
	case familyPie:
		return &PieOptions{}
	case familyDoughnut:
		return &DoughnutOptions{}
	case familyOfPie:
		return &OfPieOptions{}
	case familyArea:
		return &AreaOptions{}
	case familyRadar:
		return &RadarOptions{}
	case familyScatter:
		return &ScatterOptions{}
	case familyBubble:
		return &BubbleOptions{}
	case familySurface:
		return &SurfaceOptions{}
	default:
		return &StockOptions{}
	}
}

func clampOpt(v *int, lo, hi int) *int {
	if v == nil {
		return nil
	}
	return slx.ClampPtr(*v, lo, hi)
}
