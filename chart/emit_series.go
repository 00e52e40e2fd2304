package chart

import (
	"maps"
	"slices"

	"github.com/midbel/chartkit/dom"
	"github.com/midbel/chartkit/internal/slx"
)

func (e *emitter) series(tag Tag, s *DataSeries) *dom.Element {
	el := dom.New("c:ser",
		dom.Val("c:idx", s.Index),
		dom.Val("c:order", s.Order),
	)
	if s.Name != nil {
		el.Append(e.seriesName(s.Name))
	}
	el.Append(e.shape("c:spPr", s.Options.Shape))

	switch tag.family() {
	case familyBar:
		el.Append(dom.Val("c:invertIfNegative", slx.Value(s.Options.InvertIfNegative, false)))
		el.Append(e.dataPoints(s)...)
		el.Append(e.dataLabels(s))
		el.Append(e.category("c:cat", s.Categories), e.values("c:val", s.Values))
		if tag == TagBar3D && s.Options.BarShape != nil {
			el.Append(dom.Val("c:shape", string(*s.Options.BarShape)))
		}
	case familyLine, familyStock:
		el.Append(e.marker(s.Options.Marker))
		el.Append(e.dataPoints(s)...)
		el.Append(e.dataLabels(s))
		el.Append(e.category("c:cat", s.Categories), e.values("c:val", s.Values))
		if tag != TagLine3D {
			el.Append(dom.Val("c:smooth", slx.Value(s.Options.Smooth, false)))
		}
	case familyPie, familyDoughnut, familyOfPie:
		if s.Options.Explosion != nil {
			el.Append(dom.Val("c:explosion", *s.Options.Explosion))
		}
		el.Append(e.dataPoints(s)...)
		el.Append(e.dataLabels(s))
		el.Append(e.category("c:cat", s.Categories), e.values("c:val", s.Values))
	case familyArea:
		el.Append(e.dataPoints(s)...)
		el.Append(e.dataLabels(s))
		el.Append(e.category("c:cat", s.Categories), e.values("c:val", s.Values))
	case familyRadar:
		el.Append(e.marker(s.Options.Marker))
		el.Append(e.dataPoints(s)...)
		el.Append(e.dataLabels(s))
		el.Append(e.category("c:cat", s.Categories), e.values("c:val", s.Values))
	case familyScatter:
		el.Append(e.marker(s.Options.Marker))
		el.Append(e.dataPoints(s)...)
		el.Append(e.dataLabels(s))
		el.Append(e.category("c:xVal", s.Categories), e.values("c:yVal", s.Values))
		el.Append(dom.Val("c:smooth", slx.Value(s.Options.Smooth, false)))
	case familyBubble:
		el.Append(dom.Val("c:invertIfNegative", slx.Value(s.Options.InvertIfNegative, false)))
		el.Append(e.dataPoints(s)...)
		el.Append(e.dataLabels(s))
		el.Append(e.category("c:xVal", s.Categories), e.values("c:yVal", s.Values))
		el.Append(e.values("c:bubbleSize", s.BubbleSize))
		if s.Options.Bubble3D != nil {
			el.Append(dom.Val("c:bubble3D", *s.Options.Bubble3D))
		}
	case familySurface:
		el.Append(e.category("c:cat", s.Categories), e.values("c:val", s.Values))
	}
	return el
}

func (e *emitter) seriesName(ref *Reference) *dom.Element {
	if ref.Literal() {
		p, _ := ref.First()
		return dom.New("c:tx", dom.Text("c:v", p.Value))
	}
	return dom.New("c:tx", e.reference(ref, false))
}

func (e *emitter) category(name string, ref *Reference) *dom.Element {
	if ref == nil {
		return nil
	}
	return dom.New(name, e.reference(ref, ref.Numeric))
}

func (e *emitter) values(name string, ref *Reference) *dom.Element {
	if ref == nil {
		return nil
	}
	return dom.New(name, e.reference(ref, true))
}

// reference gives a strRef, numRef, strLit or numLit element depending on
// the kind of values and on whether ref points to cells.
func (e *emitter) reference(ref *Reference, numeric bool) *dom.Element {
	var (
		name  = "c:strRef"
		cache = dom.New("c:strCache")
	)
	if numeric {
		format := ref.FormatCode
		if format == "" {
			format = "General"
		}
		name = "c:numRef"
		cache = dom.New("c:numCache", dom.Text("c:formatCode", format))
	}
	cache.Append(dom.Val("c:ptCount", ref.Len()))
	for _, p := range ref.Points {
		pt := dom.New("c:pt", dom.Text("c:v", p.Value)).Attr("idx", dom.Format(p.Index))
		cache.Append(pt)
	}
	if ref.Literal() {
		cache.Name = "c:strLit"
		if numeric {
			cache.Name = "c:numLit"
		}
		return cache
	}
	return dom.New(name, dom.Text("c:f", ref.Formula()), cache)
}

func (e *emitter) marker(m *Marker) *dom.Element {
	if m == nil || (m.Symbol == "" && m.Size == nil && m.Shape.Empty()) {
		return nil
	}
	el := dom.New("c:marker")
	if m.Symbol != "" {
		el.Append(dom.Val("c:symbol", string(m.Symbol)))
	}
	if m.Size != nil {
		el.Append(dom.Val("c:size", *m.Size))
	}
	return el.Append(e.shape("c:spPr", m.Shape))
}

func (e *emitter) dataPoints(s *DataSeries) []*dom.Element {
	var list []*dom.Element
	for _, ix := range slices.Sorted(maps.Keys(s.Points)) {
		o := s.Points[ix]
		pt := dom.New("c:dPt", dom.Val("c:idx", ix))
		switch s.Tag.family() {
		case familyBar, familyBubble:
			pt.Append(dom.Val("c:invertIfNegative", slx.Value(o.InvertIfNegative, false)))
		case familyLine, familyScatter, familyRadar, familyStock:
			pt.Append(e.marker(o.Marker))
		}
		if s.Tag.family() == familyBubble && o.Bubble3D != nil {
			pt.Append(dom.Val("c:bubble3D", *o.Bubble3D))
		}
		if o.Explosion != nil {
			pt.Append(dom.Val("c:explosion", *o.Explosion))
		}
		pt.Append(e.shape("c:spPr", o.Shape))
		list = append(list, pt)
	}
	return list
}

func (e *emitter) dataLabels(s *DataSeries) *dom.Element {
	if s.Labels == nil && len(s.PointLabels) == 0 {
		return nil
	}
	el := dom.New("c:dLbls")
	for _, ix := range slices.Sorted(maps.Keys(s.PointLabels)) {
		lbl := dom.New("c:dLbl", dom.Val("c:idx", ix))
		e.labelFields(lbl, s.PointLabels[ix])
		el.Append(lbl)
	}
	labels := s.Labels
	if labels == nil {
		labels = &DataLabels{}
	}
	e.labelFields(el, labels)
	return el
}

func (e *emitter) labelFields(el *dom.Element, d *DataLabels) {
	if d.NumberFormat != "" {
		nf := dom.New("c:numFmt").
			Attr("formatCode", d.NumberFormat).
			Attr("sourceLinked", "0")
		el.Append(nf)
	}
	el.Append(e.shape("c:spPr", d.Shape))
	if d.Position != nil {
		el.Append(dom.Val("c:dLblPos", string(*d.Position)))
	}
	el.Append(
		dom.Val("c:showLegendKey", d.ShowLegendKey),
		dom.Val("c:showVal", d.ShowValue),
		dom.Val("c:showCatName", d.ShowCategory),
		dom.Val("c:showSerName", d.ShowSeriesName),
		dom.Val("c:showPercent", d.ShowPercent),
		dom.Val("c:showBubbleSize", d.ShowBubbleSize),
	)
	if d.Separator != "" {
		el.Append(dom.Text("c:separator", d.Separator))
	}
}
