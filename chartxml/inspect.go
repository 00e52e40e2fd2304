// Package chartxml reads back chart parts and reports how their plot area is
// laid out.
package chartxml

import (
	"errors"
	"fmt"
	"io"
	"slices"

	sax "github.com/midbel/codecs/xml"

	"github.com/midbel/chartkit/chart"
)

var ErrFragment = errors.New("unknown chart fragment")

// Fragment is one chart kind of a plot area.
type Fragment struct {
	Name    string
	Variant string
	Axes    []string
	Series  int
}

type Axis struct {
	Kind      string
	ID        string
	CrossAxis string
	Position  string
	Crosses   string
	CrossesAt string
	Deleted   bool
}

type Summary struct {
	Fragments []Fragment
	Axes      []Axis
	DataTable bool
}

var fragments = []string{
	"areaChart",
	"area3DChart",
	"lineChart",
	"line3DChart",
	"stockChart",
	"radarChart",
	"scatterChart",
	"pieChart",
	"pie3DChart",
	"doughnutChart",
	"barChart",
	"bar3DChart",
	"ofPieChart",
	"surfaceChart",
	"surface3DChart",
	"bubbleChart",
}

var axes = []string{
	"catAx",
	"valAx",
	"dateAx",
	"serAx",
}

func Inspect(r io.Reader) (*Summary, error) {
	var (
		sum Summary
		rs  = sax.NewReader(r)
	)
	for _, name := range fragments {
		rs.Element(sax.LocalName(name), func(rs *sax.Reader, _ sax.E) error {
			sum.Fragments = append(sum.Fragments, Fragment{Name: name})
			frag := &sum.Fragments[len(sum.Fragments)-1]
			rs.Element(sax.LocalName("barDir"), func(_ *sax.Reader, el sax.E) error {
				frag.Variant = el.GetAttributeValue("val")
				return nil
			})
			rs.Element(sax.LocalName("ofPieType"), func(_ *sax.Reader, el sax.E) error {
				frag.Variant = el.GetAttributeValue("val")
				return nil
			})
			rs.Element(sax.LocalName("ser"), func(_ *sax.Reader, _ sax.E) error {
				frag.Series++
				return nil
			})
			rs.Element(sax.LocalName("axId"), func(_ *sax.Reader, el sax.E) error {
				frag.Axes = append(frag.Axes, el.GetAttributeValue("val"))
				return nil
			})
			return nil
		})
	}
	for _, name := range axes {
		rs.Element(sax.LocalName(name), func(rs *sax.Reader, _ sax.E) error {
			sum.Axes = append(sum.Axes, Axis{Kind: name})
			ax := &sum.Axes[len(sum.Axes)-1]
			rs.Element(sax.LocalName("axId"), func(_ *sax.Reader, el sax.E) error {
				ax.ID = el.GetAttributeValue("val")
				return nil
			})
			rs.Element(sax.LocalName("crossAx"), func(_ *sax.Reader, el sax.E) error {
				ax.CrossAxis = el.GetAttributeValue("val")
				return nil
			})
			rs.Element(sax.LocalName("axPos"), func(_ *sax.Reader, el sax.E) error {
				ax.Position = el.GetAttributeValue("val")
				return nil
			})
			rs.Element(sax.LocalName("crosses"), func(_ *sax.Reader, el sax.E) error {
				ax.Crosses = el.GetAttributeValue("val")
				return nil
			})
			rs.Element(sax.LocalName("crossesAt"), func(_ *sax.Reader, el sax.E) error {
				ax.CrossesAt = el.GetAttributeValue("val")
				return nil
			})
			rs.Element(sax.LocalName("delete"), func(_ *sax.Reader, el sax.E) error {
				ax.Deleted = el.GetAttributeValue("val") == "1"
				return nil
			})
			return nil
		})
	}
	rs.Element(sax.LocalName("dTable"), func(_ *sax.Reader, _ sax.E) error {
		sum.DataTable = true
		return nil
	})
	if err := rs.Start(); err != nil {
		return nil, err
	}
	return &sum, nil
}

// Axis gives the axis with the given id.
func (s *Summary) Axis(id string) (Axis, bool) {
	ix := slices.IndexFunc(s.Axes, func(a Axis) bool {
		return a.ID == id
	})
	if ix < 0 {
		return Axis{}, false
	}
	return s.Axes[ix], true
}

// Tags gives the chart kind of every fragment. A fragment is on the secondary
// axes when it does not use the first axis written in the part.
func (s *Summary) Tags() ([]chart.Tag, error) {
	var primary string
	if len(s.Axes) > 0 {
		primary = s.Axes[0].ID
	}
	var list []chart.Tag
	for _, f := range s.Fragments {
		secondary := len(f.Axes) > 0 && !slices.Contains(f.Axes, primary)
		tag, ok := chart.LookupTag(f.Name, f.Variant, secondary)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrFragment, f.Name)
		}
		list = append(list, tag)
	}
	return list, nil
}

// Ordered reports whether the fragments follow the rendering order of plot
// areas.
func (s *Summary) Ordered() bool {
	tags, err := s.Tags()
	if err != nil {
		return false
	}
	return slices.IsSorted(tags)
}

// Paired reports whether every axis crosses an axis that crosses it back.
func (s *Summary) Paired() bool {
	for _, a := range s.Axes {
		other, ok := s.Axis(a.CrossAxis)
		if !ok {
			return false
		}
		if a.Kind == "serAx" {
			continue
		}
		if other.CrossAxis != a.ID {
			return false
		}
	}
	return true
}
