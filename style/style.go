// Package style builds the shape properties (fill, outline and effects) of
// chart elements.
package style

import (
	"errors"
	"fmt"
	"strings"

	"github.com/midbel/chartkit/dom"
	"github.com/midbel/chartkit/internal/slx"
)

var ErrRegistry = errors.New("no image registry")

// ImageRegistry stores the pictures used by picture fills and gives back the
// relationship id to reference them.
type ImageRegistry interface {
	AddImage(file string) (string, error)
}

const emuPerPoint = 12700

type Color struct {
	RGB          string
	Theme        *ThemeColor
	Tint         float64
	Transparency int
}

func RGB(hex string) Color {
	return Color{
		RGB: strings.ToUpper(strings.TrimPrefix(hex, "#")),
	}
}

func Scheme(c ThemeColor) Color {
	return Color{
		Theme: &c,
	}
}

func (c Color) WithTint(t float64) Color {
	c.Tint = slx.Clamp(t, -1, 1)
	return c
}

func (c Color) WithTransparency(t int) Color {
	c.Transparency = slx.Clamp(t, 0, 100)
	return c
}

func (c Color) element(theme Theme) *dom.Element {
	val := c.RGB
	if c.Theme != nil {
		val = theme.Resolve(*c.Theme)
	}
	if val == "" {
		val = theme.Resolve(Dark1)
	}
	el := dom.New("a:srgbClr").Attr("val", val)
	switch {
	case c.Tint > 0:
		el.Append(dom.Val("a:lumMod", int((1-c.Tint)*100000)))
		el.Append(dom.Val("a:lumOff", int(c.Tint*100000)))
	case c.Tint < 0:
		el.Append(dom.Val("a:lumMod", int((1+c.Tint)*100000)))
	}
	if c.Transparency > 0 {
		el.Append(dom.Val("a:alpha", (100-c.Transparency)*1000))
	}
	return el
}

type FillKind int

const (
	FillAutomatic FillKind = iota
	FillNone
	FillSolid
	FillGradient
	FillPicture
)

type GradientStop struct {
	Position int
	Color    Color
}

type Fill struct {
	Kind    FillKind
	Color   Color
	Stops   []GradientStop
	Angle   float64
	Picture string
	Tile    bool
}

type LineKind int

const (
	LineAutomatic LineKind = iota
	LineNone
	LineSolid
)

type DashStyle string

const (
	DashSolid       DashStyle = "solid"
	DashDot         DashStyle = "sysDot"
	DashDash        DashStyle = "sysDash"
	DashLongDash    DashStyle = "lgDash"
	DashDashDot     DashStyle = "dashDot"
	DashLongDashDot DashStyle = "lgDashDot"
)

type Line struct {
	Kind  LineKind
	Color Color
	Width float64
	Dash  DashStyle
}

type Shadow struct {
	Color    Color
	Blur     float64
	Distance float64
	Angle    float64
}

type Glow struct {
	Color  Color
	Radius float64
}

type ShapeProperties struct {
	Theme    Theme
	Fill     *Fill
	Line     *Line
	Shadow   *Shadow
	Glow     *Glow
	SoftEdge *float64
}

func NewShapeProperties(theme Theme) *ShapeProperties {
	return &ShapeProperties{
		Theme: theme,
	}
}

func (s *ShapeProperties) SetNoFill() *ShapeProperties {
	s.Fill = &Fill{Kind: FillNone}
	return s
}

func (s *ShapeProperties) SetSolidFill(c Color) *ShapeProperties {
	s.Fill = &Fill{
		Kind:  FillSolid,
		Color: c,
	}
	return s
}

func (s *ShapeProperties) SetGradientFill(angle float64, stops ...GradientStop) *ShapeProperties {
	for i := range stops {
		stops[i].Position = slx.Clamp(stops[i].Position, 0, 100)
	}
	s.Fill = &Fill{
		Kind:  FillGradient,
		Angle: slx.Clamp(angle, 0, 359.9),
		Stops: slx.Make(stops...),
	}
	return s
}

func (s *ShapeProperties) SetPictureFill(file string, tile bool) *ShapeProperties {
	s.Fill = &Fill{
		Kind:    FillPicture,
		Picture: file,
		Tile:    tile,
	}
	return s
}

func (s *ShapeProperties) SetNoLine() *ShapeProperties {
	s.Line = &Line{Kind: LineNone}
	return s
}

// SetLine sets a solid outline. Width is given in points.
func (s *ShapeProperties) SetLine(c Color, width float64) *ShapeProperties {
	s.Line = &Line{
		Kind:  LineSolid,
		Color: c,
		Width: slx.Clamp(width, 0, 1584),
	}
	return s
}

func (s *ShapeProperties) SetDash(d DashStyle) *ShapeProperties {
	if s.Line == nil {
		s.Line = &Line{Kind: LineSolid}
	}
	s.Line.Dash = d
	return s
}

func (s *ShapeProperties) SetShadow(c Color, blur, distance, angle float64) *ShapeProperties {
	s.Shadow = &Shadow{
		Color:    c,
		Blur:     slx.Clamp(blur, 0, 100),
		Distance: slx.Clamp(distance, 0, 200),
		Angle:    slx.Clamp(angle, 0, 359.9),
	}
	return s
}

func (s *ShapeProperties) SetGlow(c Color, radius float64) *ShapeProperties {
	s.Glow = &Glow{
		Color:  c,
		Radius: slx.Clamp(radius, 0, 150),
	}
	return s
}

func (s *ShapeProperties) SetSoftEdge(radius float64) *ShapeProperties {
	s.SoftEdge = slx.ClampPtr(radius, 0, 100)
	return s
}

func (s *ShapeProperties) Empty() bool {
	if s == nil {
		return true
	}
	fill := s.Fill == nil || s.Fill.Kind == FillAutomatic
	line := s.Line == nil || s.Line.Kind == LineAutomatic && s.Line.Dash == ""
	return fill && line && s.Shadow == nil && s.Glow == nil && s.SoftEdge == nil
}

// Element builds the element name (c:spPr most of the time) from s. Nil is
// returned for empty properties.
func (s *ShapeProperties) Element(name string, reg ImageRegistry) (*dom.Element, error) {
	if s.Empty() {
		return nil, nil
	}
	el := dom.New(name)
	if s.Fill != nil {
		fill, err := s.fill(reg)
		if err != nil {
			return nil, err
		}
		el.Append(fill)
	}
	el.Append(s.line())
	el.Append(s.effects())
	return el, nil
}

func (s *ShapeProperties) fill(reg ImageRegistry) (*dom.Element, error) {
	switch f := s.Fill; f.Kind {
	case FillNone:
		return dom.New("a:noFill"), nil
	case FillSolid:
		return dom.New("a:solidFill", f.Color.element(s.Theme)), nil
	case FillGradient:
		list := dom.New("a:gsLst")
		for _, g := range f.Stops {
			gs := dom.New("a:gs", g.Color.element(s.Theme))
			list.Append(gs.Attr("pos", dom.Format(g.Position*1000)))
		}
		lin := dom.New("a:lin").
			Attr("ang", dom.Format(int(f.Angle*60000))).
			Attr("scaled", "0")
		return dom.New("a:gradFill", list, lin).Attr("rotWithShape", "1"), nil
	case FillPicture:
		if reg == nil {
			return nil, ErrRegistry
		}
		id, err := reg.AddImage(f.Picture)
		if err != nil {
			return nil, fmt.Errorf("%w: picture fill", err)
		}
		blip := dom.New("a:blip").Attr("r:embed", id)
		mode := dom.New("a:stretch", dom.New("a:fillRect"))
		if f.Tile {
			mode = dom.New("a:tile").
				Attr("tx", "0").
				Attr("ty", "0").
				Attr("sx", "100000").
				Attr("sy", "100000").
				Attr("algn", "tl")
		}
		return dom.New("a:blipFill", blip, mode).Attr("rotWithShape", "1"), nil
	default:
		return nil, nil
	}
}

func (s *ShapeProperties) line() *dom.Element {
	if s.Line == nil || (s.Line.Kind == LineAutomatic && s.Line.Dash == "") {
		return nil
	}
	ln := dom.New("a:ln")
	if s.Line.Width > 0 {
		ln.Attr("w", dom.Format(int(s.Line.Width*emuPerPoint)))
	}
	switch s.Line.Kind {
	case LineNone:
		ln.Append(dom.New("a:noFill"))
	case LineSolid:
		ln.Append(dom.New("a:solidFill", s.Line.Color.element(s.Theme)))
	}
	if s.Line.Dash != "" {
		ln.Append(dom.Val("a:prstDash", string(s.Line.Dash)))
	}
	return ln
}

func (s *ShapeProperties) effects() *dom.Element {
	if s.Glow == nil && s.Shadow == nil && s.SoftEdge == nil {
		return nil
	}
	list := dom.New("a:effectLst")
	if g := s.Glow; g != nil {
		glow := dom.New("a:glow", g.Color.element(s.Theme))
		list.Append(glow.Attr("rad", dom.Format(int(g.Radius*emuPerPoint))))
	}
	if x := s.Shadow; x != nil {
		shadow := dom.New("a:outerShdw", x.Color.element(s.Theme)).
			Attr("blurRad", dom.Format(int(x.Blur*emuPerPoint))).
			Attr("dist", dom.Format(int(x.Distance*emuPerPoint))).
			Attr("dir", dom.Format(int(x.Angle*60000))).
			Attr("algn", "ctr").
			Attr("rotWithShape", "0")
		list.Append(shadow)
	}
	if s.SoftEdge != nil {
		soft := dom.New("a:softEdge").Attr("rad", dom.Format(int(*s.SoftEdge*emuPerPoint)))
		list.Append(soft)
	}
	return list
}
