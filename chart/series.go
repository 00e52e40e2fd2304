package chart

import (
	"github.com/midbel/chartkit/internal/slx"
	"github.com/midbel/chartkit/layout"
	"github.com/midbel/chartkit/style"
)

// Point is a cached value of a reference.
type Point struct {
	Index int
	Value string
}

// Reference points to the cells of a series (name, categories, values or
// bubble sizes) along with the values cached from them. A reference without
// range is a literal.
type Reference struct {
	Numeric    bool
	Range      *layout.Range
	FormatCode string
	Count      int
	Points     []Point
	// Header is the cell sitting above (or left of) the referenced cells,
	// when it was consumed as a header by the reader.
	Header *Point
}

func NewReference(rg *layout.Range, numeric bool, values ...string) *Reference {
	ref := Reference{
		Numeric: numeric,
		Range:   rg,
		Count:   len(values),
	}
	if numeric {
		ref.FormatCode = "General"
	}
	for i, v := range values {
		if v == "" {
			continue
		}
		ref.Points = append(ref.Points, Point{Index: i, Value: v})
	}
	return &ref
}

// NewLiteral creates a numeric literal of n points holding the same value.
func NewLiteral(n int, value string) *Reference {
	ref := Reference{
		Numeric:    true,
		FormatCode: "General",
		Count:      n,
	}
	for i := 0; i < n; i++ {
		ref.Points = append(ref.Points, Point{Index: i, Value: value})
	}
	return &ref
}

func (r *Reference) Literal() bool {
	return r.Range == nil
}

func (r *Reference) Formula() string {
	if r.Range == nil {
		return ""
	}
	return r.Range.Formula()
}

func (r *Reference) Len() int {
	if r == nil {
		return 0
	}
	return max(r.Count, len(r.Points))
}

// First gives the first cached point, if any.
func (r *Reference) First() (Point, bool) {
	if r == nil || len(r.Points) == 0 {
		return Point{}, false
	}
	return r.Points[0], true
}

// promote prepends p as the new first point of the reference. The cached
// indices and the start of the range move by one.
func (r *Reference) promote(p Point) {
	n := r.Len()
	for i := range r.Points {
		r.Points[i].Index++
	}
	p.Index = 0
	r.Points = append([]Point{p}, r.Points...)
	r.Count = n + 1
	if r.Range != nil {
		r.Range = r.Range.ShiftStart(-1)
	}
	r.Header = nil
}

type MarkerSymbol string

const (
	MarkerAuto     MarkerSymbol = "auto"
	MarkerNone     MarkerSymbol = "none"
	MarkerCircle   MarkerSymbol = "circle"
	MarkerDash     MarkerSymbol = "dash"
	MarkerDiamond  MarkerSymbol = "diamond"
	MarkerDot      MarkerSymbol = "dot"
	MarkerPicture  MarkerSymbol = "picture"
	MarkerPlus     MarkerSymbol = "plus"
	MarkerSquare   MarkerSymbol = "square"
	MarkerStar     MarkerSymbol = "star"
	MarkerTriangle MarkerSymbol = "triangle"
	MarkerX        MarkerSymbol = "x"
)

type Marker struct {
	Symbol MarkerSymbol
	Size   *int
	Shape  *style.ShapeProperties
}

func (m *Marker) SetSize(n int) *Marker {
	m.Size = slx.ClampPtr(n, 2, 72)
	return m
}

// SeriesOptions describes the look of a series or of one of its points.
type SeriesOptions struct {
	Shape            *style.ShapeProperties
	Marker           *Marker
	Smooth           *bool
	Explosion        *int
	InvertIfNegative *bool
	BarShape         *BarShape
	Bubble3D         *bool
}

func (o *SeriesOptions) SetExplosion(n int) *SeriesOptions {
	o.Explosion = slx.ClampPtr(n, 0, 400)
	return o
}

func (o *SeriesOptions) normalize() {
	o.Explosion = clampOpt(o.Explosion, 0, 400)
	if o.Marker != nil {
		o.Marker.Size = clampOpt(o.Marker.Size, 2, 72)
	}
}

type LabelPosition string

const (
	LabelBestFit    LabelPosition = "bestFit"
	LabelBottom     LabelPosition = "b"
	LabelCenter     LabelPosition = "ctr"
	LabelInsideBase LabelPosition = "inBase"
	LabelInsideEnd  LabelPosition = "inEnd"
	LabelLeft       LabelPosition = "l"
	LabelOutsideEnd LabelPosition = "outEnd"
	LabelRight      LabelPosition = "r"
	LabelTop        LabelPosition = "t"
)

type DataLabels struct {
	ShowLegendKey  bool
	ShowValue      bool
	ShowCategory   bool
	ShowSeriesName bool
	ShowPercent    bool
	ShowBubbleSize bool
	Separator      string
	NumberFormat   string
	Position       *LabelPosition
	Shape          *style.ShapeProperties
}

type DataSeries struct {
	Index      int
	Order      int
	Name       *Reference
	Categories *Reference
	Values     *Reference
	BubbleSize *Reference
	Tag        Tag

	Options     SeriesOptions
	Labels      *DataLabels
	Points      map[int]*SeriesOptions
	PointLabels map[int]*DataLabels
	Theme       style.Theme
}

func NewSeries(index int, theme style.Theme) *DataSeries {
	return &DataSeries{
		Index: index,
		Order: index,
		Theme: theme,
	}
}

func (s *DataSeries) SetName(ref *Reference) *DataSeries {
	s.Name = ref
	return s
}

func (s *DataSeries) SetCategories(ref *Reference) *DataSeries {
	s.Categories = ref
	return s
}

func (s *DataSeries) SetValues(ref *Reference) *DataSeries {
	s.Values = ref
	return s
}

// ShapeProperties gives the shape properties of the series, creating them
// with the theme of the series when needed.
func (s *DataSeries) ShapeProperties() *style.ShapeProperties {
	if s.Options.Shape == nil {
		s.Options.Shape = style.NewShapeProperties(s.Theme)
	}
	return s.Options.Shape
}

func (s *DataSeries) points() int {
	return max(s.Values.Len(), s.Categories.Len())
}
