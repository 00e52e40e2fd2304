package chart

import (
	"github.com/midbel/chartkit/internal/slx"
	"github.com/midbel/chartkit/style"
)

type AxisKind int

const (
	AxisCategory AxisKind = iota
	AxisDate
	AxisValue
	AxisSeries
)

func (k AxisKind) String() string {
	switch k {
	case AxisCategory:
		return "category"
	case AxisDate:
		return "date"
	case AxisValue:
		return "value"
	case AxisSeries:
		return "series"
	default:
		return "unknown"
	}
}

func (k AxisKind) element() string {
	switch k {
	case AxisDate:
		return "c:dateAx"
	case AxisValue:
		return "c:valAx"
	case AxisSeries:
		return "c:serAx"
	default:
		return "c:catAx"
	}
}

type AxisPosition string

const (
	PositionBottom AxisPosition = "b"
	PositionLeft   AxisPosition = "l"
	PositionRight  AxisPosition = "r"
	PositionTop    AxisPosition = "t"
)

func (p AxisPosition) Opposite() AxisPosition {
	switch p {
	case PositionBottom:
		return PositionTop
	case PositionTop:
		return PositionBottom
	case PositionLeft:
		return PositionRight
	default:
		return PositionLeft
	}
}

type Crosses string

const (
	CrossesAutoZero Crosses = "autoZero"
	CrossesMin      Crosses = "min"
	CrossesMax      Crosses = "max"
)

type TickMark string

const (
	TickNone    TickMark = "none"
	TickInside  TickMark = "in"
	TickOutside TickMark = "out"
	TickCross   TickMark = "cross"
)

type TickLabelPosition string

const (
	TickLabelsNextTo TickLabelPosition = "nextTo"
	TickLabelsHigh   TickLabelPosition = "high"
	TickLabelsLow    TickLabelPosition = "low"
	TickLabelsNone   TickLabelPosition = "none"
)

type TimeUnit string

const (
	TimeDays   TimeUnit = "days"
	TimeMonths TimeUnit = "months"
	TimeYears  TimeUnit = "years"
)

// Axis is one axis of the plot area. Crossing is described twice: Crosses
// and CrossesAt tell where this axis crosses its partner, the OtherAxis
// fields where the partner crosses this axis. The first are always derived
// from the partner's second ones when the axes are reconciled.
type Axis struct {
	ID        uint32
	CrossAxis uint32
	Kind      AxisKind
	Position  AxisPosition
	Delete    bool

	Title          string
	NumberFormat   string
	SourceLinked   bool
	MajorGridlines bool
	MinorGridlines bool
	MajorTick      TickMark
	MinorTick      TickMark
	TickLabels     TickLabelPosition
	Shape          *style.ShapeProperties
	Theme          style.Theme

	InReverseOrder bool
	Minimum        *float64
	Maximum        *float64
	MajorUnit      *float64
	MinorUnit      *float64
	LogBase        *float64
	LabelOffset    *int
	TickLabelSkip  *int
	TickMarkSkip   *int
	BaseTimeUnit   *TimeUnit
	CrossBetween   string

	IsCrosses bool
	Crosses   Crosses
	CrossesAt float64

	OtherAxisIsCrosses bool
	OtherAxisCrosses   Crosses
	OtherAxisCrossesAt float64

	OtherAxisIsInReverseOrder bool
	OtherAxisCrossedAtMaximum bool
}

func newAxis(id, cross uint32, kind AxisKind, pos AxisPosition, theme style.Theme) *Axis {
	a := Axis{
		ID:                 id,
		CrossAxis:          cross,
		Kind:               kind,
		Position:           pos,
		NumberFormat:       "General",
		SourceLinked:       true,
		MajorTick:          TickOutside,
		MinorTick:          TickNone,
		TickLabels:         TickLabelsNextTo,
		Theme:              theme,
		IsCrosses:          true,
		Crosses:            CrossesAutoZero,
		OtherAxisIsCrosses: true,
		OtherAxisCrosses:   CrossesAutoZero,
	}
	if kind == AxisValue {
		a.CrossBetween = "between"
	}
	return &a
}

// SetOtherAxisCrosses sets where the partner axis crosses this one.
func (a *Axis) SetOtherAxisCrosses(c Crosses) *Axis {
	a.OtherAxisIsCrosses = true
	a.OtherAxisCrosses = c
	return a
}

// SetOtherAxisCrossesAt makes the partner axis cross this one at value v.
func (a *Axis) SetOtherAxisCrossesAt(v float64) *Axis {
	a.OtherAxisIsCrosses = false
	a.OtherAxisCrossesAt = v
	return a
}

func (a *Axis) SetReverseOrder(reverse bool) *Axis {
	a.InReverseOrder = reverse
	return a
}

func (a *Axis) SetTitle(title string) *Axis {
	a.Title = title
	return a
}

func (a *Axis) SetNumberFormat(format string) *Axis {
	a.NumberFormat = format
	a.SourceLinked = format == "" || format == "General"
	return a
}

// SetScale sets the bounds of a value axis.
func (a *Axis) SetScale(minimum, maximum float64) *Axis {
	if minimum > maximum {
		minimum, maximum = maximum, minimum
	}
	a.Minimum = &minimum
	a.Maximum = &maximum
	return a
}

func (a *Axis) SetMajorUnit(v float64) *Axis {
	if v > 0 {
		a.MajorUnit = &v
	}
	return a
}

func (a *Axis) SetMinorUnit(v float64) *Axis {
	if v > 0 {
		a.MinorUnit = &v
	}
	return a
}

func (a *Axis) SetLogBase(v float64) *Axis {
	a.LogBase = slx.ClampPtr(v, 2, 1000)
	return a
}

func (a *Axis) SetLabelOffset(v int) *Axis {
	a.LabelOffset = slx.ClampPtr(v, 0, 1000)
	return a
}

func (a *Axis) SetTickLabelSkip(v int) *Axis {
	a.TickLabelSkip = slx.ClampPtr(v, 1, 32767)
	return a
}

func (a *Axis) SetTickMarkSkip(v int) *Axis {
	a.TickMarkSkip = slx.ClampPtr(v, 1, 32767)
	return a
}

func (a *Axis) SetBaseTimeUnit(u TimeUnit) *Axis {
	if a.Kind == AxisDate {
		a.BaseTimeUnit = &u
	}
	return a
}

func (a *Axis) ShowMajorGridlines(show bool) *Axis {
	a.MajorGridlines = show
	return a
}

func (a *Axis) ShowMinorGridlines(show bool) *Axis {
	a.MinorGridlines = show
	return a
}

// ShapeProperties gives the styling of the axis line, creating it with the
// theme of the axis when needed.
func (a *Axis) ShapeProperties() *style.ShapeProperties {
	if a.Shape == nil {
		a.Shape = style.NewShapeProperties(a.Theme)
	}
	return a.Shape
}

// crossesAtMaximum reports whether a crosses its partner at its maximum.
func (a *Axis) crossesAtMaximum() bool {
	return a.IsCrosses && a.Crosses == CrossesMax
}

// placement is the side the axis ends up on once the crossing with partner
// is taken into account.
func (a *Axis) placement(partner *Axis) AxisPosition {
	pos := a.Position
	if partner == nil {
		return pos
	}
	if partner.OtherAxisCrossedAtMaximum != a.OtherAxisIsInReverseOrder {
		pos = pos.Opposite()
	}
	return pos
}

func mirror(a, b *Axis) {
	a.IsCrosses = b.OtherAxisIsCrosses
	a.Crosses = b.OtherAxisCrosses
	a.CrossesAt = b.OtherAxisCrossesAt

	b.IsCrosses = a.OtherAxisIsCrosses
	b.Crosses = a.OtherAxisCrosses
	b.CrossesAt = a.OtherAxisCrossesAt

	a.OtherAxisIsInReverseOrder = b.InReverseOrder
	b.OtherAxisIsInReverseOrder = a.InReverseOrder

	a.OtherAxisCrossedAtMaximum = b.crossesAtMaximum()
	b.OtherAxisCrossedAtMaximum = a.crossesAtMaximum()
}
