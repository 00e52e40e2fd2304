// Package plan describes a chart in a YAML document and turns the description
// into calls on a chart.Chart.
package plan

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/midbel/chartkit/chart"
	"github.com/midbel/chartkit/internal/slx"
	"github.com/midbel/chartkit/style"
)

var (
	ErrType  = errors.New("unknown chart type")
	ErrValue = errors.New("invalid value")
	ErrRange = errors.New("missing range")
)

type Definition struct {
	Type    string   `yaml:"type"`
	Range   string   `yaml:"range"`
	Rows    bool     `yaml:"rows"`
	Hidden  bool     `yaml:"hidden"`
	Title   *string  `yaml:"title"`
	Legend  string   `yaml:"legend"`
	Blanks  string   `yaml:"blanks"`
	Rounded bool     `yaml:"rounded"`
	Colors  []string `yaml:"theme"`

	View3D    *View      `yaml:"view3d"`
	Options   Options    `yaml:"options"`
	Plots     []Plot     `yaml:"plots"`
	Axes      Axes       `yaml:"axes"`
	DataTable *DataTable `yaml:"datatable"`
	Series    []Series   `yaml:"series"`
	Fill      *Fill      `yaml:"fill"`
	PlotFill  *Fill      `yaml:"plotFill"`
	Floor     *Fill      `yaml:"floor"`
	Walls     *Fill      `yaml:"walls"`
}

func Load(r io.Reader) (*Definition, error) {
	var def Definition
	if err := yaml.NewDecoder(r).Decode(&def); err != nil {
		return nil, err
	}
	return &def, def.Check()
}

func LoadFile(file string) (*Definition, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return Load(r)
}

// Check validates the names used by the definition.
func (d *Definition) Check() error {
	if _, ok := chart.LookupBuiltIn(d.Type); !ok {
		return fmt.Errorf("%w: %q", ErrType, d.Type)
	}
	if d.Range == "" {
		return ErrRange
	}
	for _, p := range d.Plots {
		if _, ok := plotKinds[strings.ToLower(p.As)]; !ok {
			return fmt.Errorf("%w: plot as %q", ErrType, p.As)
		}
		if _, err := parseDisplay(p.Display); err != nil {
			return err
		}
	}
	if _, err := parseLegend(d.Legend); err != nil {
		return err
	}
	if _, err := parseBlanks(d.Blanks); err != nil {
		return err
	}
	return nil
}

func (d *Definition) BuiltIn() chart.BuiltIn {
	b, _ := chart.LookupBuiltIn(d.Type)
	return b
}

// Theme gives the default theme with the colors of the definition applied
// over it.
func (d *Definition) Theme() style.Theme {
	theme := style.DefaultTheme()
	copy(theme, d.Colors)
	return theme
}

type View struct {
	RotX           *int  `yaml:"rotX"`
	RotY           *int  `yaml:"rotY"`
	Perspective    *int  `yaml:"perspective"`
	DepthPercent   *int  `yaml:"depthPercent"`
	HeightPercent  *int  `yaml:"heightPercent"`
	RightAngleAxes *bool `yaml:"rightAngleAxes"`
}

func (v View) view() chart.View3D {
	var x chart.View3D
	if v.RotX != nil {
		x.SetRotationX(*v.RotX)
	}
	if v.RotY != nil {
		x.SetRotationY(*v.RotY)
	}
	if v.Perspective != nil {
		x.SetPerspective(*v.Perspective)
	}
	if v.DepthPercent != nil {
		x.SetDepthPercent(*v.DepthPercent)
	}
	if v.HeightPercent != nil {
		x.SetHeightPercent(*v.HeightPercent)
	}
	x.RightAngleAxes = v.RightAngleAxes
	return x
}

// Options is the flat union of every option a chart kind accepts. Only the
// fields known by the kind a bag is built for are used.
type Options struct {
	VaryColors      *bool    `yaml:"varyColors"`
	GapWidth        *int     `yaml:"gapWidth"`
	Overlap         *int     `yaml:"overlap"`
	GapDepth        *int     `yaml:"gapDepth"`
	Shape           string   `yaml:"shape"`
	Markers         *bool    `yaml:"markers"`
	Smooth          *bool    `yaml:"smooth"`
	DropLines       *bool    `yaml:"dropLines"`
	HighLowLines    *bool    `yaml:"highLowLines"`
	UpDownBars      *bool    `yaml:"upDownBars"`
	FirstSliceAngle *int     `yaml:"firstSliceAngle"`
	HoleSize        *int     `yaml:"holeSize"`
	SecondPieSize   *int     `yaml:"secondPieSize"`
	SplitType       string   `yaml:"splitType"`
	SplitPos        *float64 `yaml:"splitPos"`
	SeriesLines     *bool    `yaml:"seriesLines"`
	Bubble3D        *bool    `yaml:"bubble3d"`
	Scale           *int     `yaml:"scale"`
	ShowNegative    *bool    `yaml:"showNegative"`
	SizeRepresents  string   `yaml:"sizeRepresents"`
	Wireframe       *bool    `yaml:"wireframe"`
	Style           string   `yaml:"style"`
}

func (o Options) bar() *chart.BarOptions {
	var x chart.BarOptions
	x.VaryColors = o.VaryColors
	if o.GapWidth != nil {
		x.SetGapWidth(*o.GapWidth)
	}
	if o.Overlap != nil {
		x.SetOverlap(*o.Overlap)
	}
	if o.GapDepth != nil {
		x.SetGapDepth(*o.GapDepth)
	}
	if o.Shape != "" {
		x.Shape = slx.Ptr(chart.BarShape(o.Shape))
	}
	return &x
}

func (o Options) line() *chart.LineOptions {
	var x chart.LineOptions
	x.VaryColors = o.VaryColors
	x.ShowMarker = o.Markers
	x.Smooth = o.Smooth
	x.DropLines = o.DropLines
	x.HighLowLines = o.HighLowLines
	x.UpDownBars = o.UpDownBars
	if o.GapWidth != nil {
		x.SetUpDownGapWidth(*o.GapWidth)
	}
	if o.GapDepth != nil {
		x.SetGapDepth(*o.GapDepth)
	}
	return &x
}

func (o Options) area() *chart.AreaOptions {
	var x chart.AreaOptions
	x.VaryColors = o.VaryColors
	x.DropLines = o.DropLines
	if o.GapDepth != nil {
		x.SetGapDepth(*o.GapDepth)
	}
	return &x
}

func (o Options) pie() *chart.PieOptions {
	var x chart.PieOptions
	x.VaryColors = o.VaryColors
	if o.FirstSliceAngle != nil {
		x.SetFirstSliceAngle(*o.FirstSliceAngle)
	}
	return &x
}

func (o Options) doughnut() *chart.DoughnutOptions {
	var x chart.DoughnutOptions
	x.VaryColors = o.VaryColors
	if o.FirstSliceAngle != nil {
		x.SetFirstSliceAngle(*o.FirstSliceAngle)
	}
	if o.HoleSize != nil {
		x.SetHoleSize(*o.HoleSize)
	}
	return &x
}

func (o Options) ofPie() *chart.OfPieOptions {
	var x chart.OfPieOptions
	x.VaryColors = o.VaryColors
	x.SplitPos = o.SplitPos
	x.SeriesLines = o.SeriesLines
	if o.GapWidth != nil {
		x.SetGapWidth(*o.GapWidth)
	}
	if o.SecondPieSize != nil {
		x.SetSecondPieSize(*o.SecondPieSize)
	}
	if o.SplitType != "" {
		x.SplitType = slx.Ptr(chart.SplitType(o.SplitType))
	}
	return &x
}

func (o Options) radar() *chart.RadarOptions {
	var x chart.RadarOptions
	x.VaryColors = o.VaryColors
	if o.Style != "" {
		x.Style = slx.Ptr(chart.RadarStyle(o.Style))
	}
	return &x
}

func (o Options) scatter() *chart.ScatterOptions {
	var x chart.ScatterOptions
	x.VaryColors = o.VaryColors
	if o.Style != "" {
		x.Style = slx.Ptr(chart.ScatterStyle(o.Style))
	}
	return &x
}

func (o Options) bubble() *chart.BubbleOptions {
	var x chart.BubbleOptions
	x.VaryColors = o.VaryColors
	x.Bubble3D = o.Bubble3D
	x.ShowNegative = o.ShowNegative
	if o.Scale != nil {
		x.SetScale(*o.Scale)
	}
	if o.SizeRepresents != "" {
		x.SizeRepresents = slx.Ptr(chart.SizeRepresents(o.SizeRepresents))
	}
	return &x
}

func (o Options) stock() *chart.StockOptions {
	var x chart.StockOptions
	x.HighLowLines = o.HighLowLines
	x.DropLines = o.DropLines
	x.UpDownBars = o.UpDownBars
	if o.GapWidth != nil {
		x.SetGapWidth(*o.GapWidth)
	}
	return &x
}

// forTag gives the option bag used by the chart kind tag.
func (o Options) forTag(tag chart.Tag) chart.Options {
	switch tag {
	case chart.TagColumnPrimary, chart.TagColumnSecondary, chart.TagBarPrimary, chart.TagBarSecondary, chart.TagBar3D:
		return o.bar()
	case chart.TagLinePrimary, chart.TagLineSecondary, chart.TagLine3D:
		return o.line()
	case chart.TagAreaPrimary, chart.TagAreaSecondary, chart.TagArea3D:
		return o.area()
	case chart.TagPie, chart.TagPie3D:
		return o.pie()
	case chart.TagDoughnut:
		return o.doughnut()
	case chart.TagBarOfPie, chart.TagPieOfPie:
		return o.ofPie()
	case chart.TagRadarPrimary, chart.TagRadarSecondary:
		return o.radar()
	case chart.TagScatterPrimary, chart.TagScatterSecondary:
		return o.scatter()
	case chart.TagBubble:
		return o.bubble()
	case chart.TagSurface, chart.TagSurface3D:
		return &chart.SurfaceOptions{Wireframe: o.Wireframe}
	default:
		return o.stock()
	}
}

// Plot moves one series (1 based) to another chart kind.
type Plot struct {
	Series    int     `yaml:"series"`
	As        string  `yaml:"as"`
	Secondary bool    `yaml:"secondary"`
	Display   string  `yaml:"display"`
	Options   Options `yaml:"options"`
}

var plotKinds = map[string]struct{}{
	"bar":        {},
	"column":     {},
	"line":       {},
	"area":       {},
	"scatter":    {},
	"radar":      {},
	"pie":        {},
	"doughnut":   {},
	"bar-of-pie": {},
	"pie-of-pie": {},
}

func parseDisplay(str string) (chart.Display, error) {
	switch strings.ToLower(str) {
	case "", "normal", "clustered", "standard":
		return chart.DisplayNormal, nil
	case "stacked":
		return chart.DisplayStacked, nil
	case "percent", "percent-stacked", "100%":
		return chart.DisplayPercentStacked, nil
	default:
		return chart.DisplayNormal, fmt.Errorf("%w: display %q", ErrValue, str)
	}
}

type Axes struct {
	PrimaryText    *Axis `yaml:"primaryText"`
	PrimaryValue   *Axis `yaml:"primaryValue"`
	SecondaryText  *Axis `yaml:"secondaryText"`
	SecondaryValue *Axis `yaml:"secondaryValue"`
	Depth          *Axis `yaml:"depth"`
}

type Axis struct {
	Hidden      *bool    `yaml:"hidden"`
	Title       string   `yaml:"title"`
	Reverse     bool     `yaml:"reverse"`
	Min         *float64 `yaml:"min"`
	Max         *float64 `yaml:"max"`
	MajorUnit   *float64 `yaml:"majorUnit"`
	MinorUnit   *float64 `yaml:"minorUnit"`
	LogBase     *float64 `yaml:"logBase"`
	Format      string   `yaml:"format"`
	Crosses     string   `yaml:"crosses"`
	Gridlines   string   `yaml:"gridlines"`
	LabelOffset *int     `yaml:"labelOffset"`
	TimeUnit    string   `yaml:"timeUnit"`
	Line        *Fill    `yaml:"line"`
}

func (a *Axis) apply(x *chart.Axis) error {
	if a.Hidden != nil {
		x.Delete = *a.Hidden
	}
	return a.configure(x)
}

// configure applies everything but the visibility of the axis.
func (a *Axis) configure(x *chart.Axis) error {
	if a.Title != "" {
		x.SetTitle(a.Title)
	}
	if a.Format != "" {
		x.SetNumberFormat(a.Format)
	}
	x.SetReverseOrder(a.Reverse)
	switch {
	case a.Min != nil && a.Max != nil:
		x.SetScale(*a.Min, *a.Max)
	case a.Min != nil:
		x.Minimum = slx.Ptr(*a.Min)
	case a.Max != nil:
		x.Maximum = slx.Ptr(*a.Max)
	}
	if a.MajorUnit != nil {
		x.SetMajorUnit(*a.MajorUnit)
	}
	if a.MinorUnit != nil {
		x.SetMinorUnit(*a.MinorUnit)
	}
	if a.LogBase != nil {
		x.SetLogBase(*a.LogBase)
	}
	if a.LabelOffset != nil {
		x.SetLabelOffset(*a.LabelOffset)
	}
	if a.TimeUnit != "" {
		x.SetBaseTimeUnit(chart.TimeUnit(a.TimeUnit))
	}
	switch strings.ToLower(a.Gridlines) {
	case "":
	case "none":
		x.ShowMajorGridlines(false).ShowMinorGridlines(false)
	case "major":
		x.ShowMajorGridlines(true)
	case "minor":
		x.ShowMinorGridlines(true)
	case "both":
		x.ShowMajorGridlines(true).ShowMinorGridlines(true)
	default:
		return fmt.Errorf("%w: gridlines %q", ErrValue, a.Gridlines)
	}
	if err := a.crosses(x); err != nil {
		return err
	}
	if a.Line != nil {
		return a.Line.apply(x.ShapeProperties())
	}
	return nil
}

// crosses sets where the partner axis crosses x.
func (a *Axis) crosses(x *chart.Axis) error {
	switch c := chart.Crosses(a.Crosses); c {
	case "":
	case chart.CrossesAutoZero, chart.CrossesMin, chart.CrossesMax:
		x.SetOtherAxisCrosses(c)
	default:
		v, err := strconv.ParseFloat(a.Crosses, 64)
		if err != nil {
			return fmt.Errorf("%w: crosses %q", ErrValue, a.Crosses)
		}
		x.SetOtherAxisCrossesAt(v)
	}
	return nil
}

type DataTable struct {
	Horizontal bool `yaml:"horizontal"`
	Vertical   bool `yaml:"vertical"`
	Outline    bool `yaml:"outline"`
	Keys       bool `yaml:"keys"`
}

// Series styles one series (1 based) or some of its points.
type Series struct {
	Index     int            `yaml:"index"`
	Fill      *Fill          `yaml:"fill"`
	Explosion *int           `yaml:"explosion"`
	Smooth    *bool          `yaml:"smooth"`
	Invert    *bool          `yaml:"invertIfNegative"`
	Marker    *Marker        `yaml:"marker"`
	Labels    *Labels        `yaml:"labels"`
	Points    map[int]Series `yaml:"points"`
}

func (s Series) options(theme style.Theme, base chart.SeriesOptions) (chart.SeriesOptions, error) {
	if s.Explosion != nil {
		base.SetExplosion(*s.Explosion)
	}
	base.Smooth = slx.Override(base.Smooth, s.Smooth)
	base.InvertIfNegative = slx.Override(base.InvertIfNegative, s.Invert)
	if s.Marker != nil {
		base.Marker = s.Marker.marker()
	}
	if s.Fill != nil {
		if base.Shape == nil {
			base.Shape = style.NewShapeProperties(theme)
		}
		if err := s.Fill.apply(base.Shape); err != nil {
			return base, err
		}
	}
	return base, nil
}

type Marker struct {
	Symbol string `yaml:"symbol"`
	Size   *int   `yaml:"size"`
}

func (m Marker) marker() *chart.Marker {
	x := chart.Marker{
		Symbol: chart.MarkerSymbol(m.Symbol),
	}
	if m.Size != nil {
		x.SetSize(*m.Size)
	}
	return &x
}

type Labels struct {
	Value     bool   `yaml:"value"`
	Category  bool   `yaml:"category"`
	Name      bool   `yaml:"name"`
	Percent   bool   `yaml:"percent"`
	Size      bool   `yaml:"size"`
	LegendKey bool   `yaml:"legendKey"`
	Separator string `yaml:"separator"`
	Format    string `yaml:"format"`
	Position  string `yaml:"position"`
}

func (b Labels) labels() chart.DataLabels {
	x := chart.DataLabels{
		ShowLegendKey:  b.LegendKey,
		ShowValue:      b.Value,
		ShowCategory:   b.Category,
		ShowSeriesName: b.Name,
		ShowPercent:    b.Percent,
		ShowBubbleSize: b.Size,
		Separator:      b.Separator,
		NumberFormat:   b.Format,
	}
	if b.Position != "" {
		x.Position = slx.Ptr(chart.LabelPosition(b.Position))
	}
	return x
}

// Fill is the styling of a shape. Colors are RGB hex values or theme color
// names (accent1, dark2...).
type Fill struct {
	Color        string  `yaml:"color"`
	Transparency int     `yaml:"transparency"`
	Picture      string  `yaml:"picture"`
	Tile         bool    `yaml:"tile"`
	None         bool    `yaml:"none"`
	Line         string  `yaml:"line"`
	Width        float64 `yaml:"width"`
	Dash         string  `yaml:"dash"`
	NoLine       bool    `yaml:"noLine"`
}

func (f *Fill) apply(sp *style.ShapeProperties) error {
	switch {
	case f.None:
		sp.SetNoFill()
	case f.Picture != "":
		sp.SetPictureFill(f.Picture, f.Tile)
	case f.Color != "":
		c, err := ParseColor(f.Color)
		if err != nil {
			return err
		}
		if f.Transparency > 0 {
			c = c.WithTransparency(f.Transparency)
		}
		sp.SetSolidFill(c)
	}
	switch {
	case f.NoLine:
		sp.SetNoLine()
	case f.Line != "":
		c, err := ParseColor(f.Line)
		if err != nil {
			return err
		}
		sp.SetLine(c, f.Width)
		if f.Dash != "" {
			sp.SetDash(style.DashStyle(f.Dash))
		}
	}
	return nil
}

var themeColors = map[string]style.ThemeColor{
	"dark1":   style.Dark1,
	"light1":  style.Light1,
	"dark2":   style.Dark2,
	"light2":  style.Light2,
	"accent1": style.Accent1,
	"accent2": style.Accent2,
	"accent3": style.Accent3,
	"accent4": style.Accent4,
	"accent5": style.Accent5,
	"accent6": style.Accent6,
}

func ParseColor(str string) (style.Color, error) {
	str = strings.TrimSpace(str)
	if c, ok := themeColors[strings.ToLower(str)]; ok {
		return style.Scheme(c), nil
	}
	str = strings.TrimPrefix(str, "#")
	if len(str) != 6 {
		return style.Color{}, fmt.Errorf("%w: color %q", ErrValue, str)
	}
	if _, err := strconv.ParseUint(str, 16, 32); err != nil {
		return style.Color{}, fmt.Errorf("%w: color %q", ErrValue, str)
	}
	return style.RGB(strings.ToUpper(str)), nil
}

func parseLegend(str string) (chart.LegendPosition, error) {
	switch strings.ToLower(str) {
	case "", "right", "r":
		return chart.LegendRight, nil
	case "left", "l":
		return chart.LegendLeft, nil
	case "top", "t":
		return chart.LegendTop, nil
	case "bottom", "b":
		return chart.LegendBottom, nil
	case "top-right", "tr":
		return chart.LegendTopRight, nil
	case "none", "hidden":
		return "", nil
	default:
		return "", fmt.Errorf("%w: legend %q", ErrValue, str)
	}
}

func parseBlanks(str string) (chart.BlanksAs, error) {
	switch b := chart.BlanksAs(strings.ToLower(str)); b {
	case "":
		return chart.BlanksGap, nil
	case chart.BlanksGap, chart.BlanksSpan, chart.BlanksZero:
		return b, nil
	default:
		return "", fmt.Errorf("%w: blanks %q", ErrValue, str)
	}
}
