package chart

import (
	"github.com/midbel/chartkit/dom"
	"github.com/midbel/chartkit/internal/slx"
)

func (e *emitter) axis(a, partner *Axis) *dom.Element {
	el := dom.New(a.Kind.element(), dom.Val("c:axId", a.ID))
	el.Append(e.scaling(a))
	el.Append(dom.Val("c:delete", a.Delete))
	el.Append(dom.Val("c:axPos", string(a.placement(partner))))
	if a.MajorGridlines {
		el.Append(dom.New("c:majorGridlines"))
	}
	if a.MinorGridlines {
		el.Append(dom.New("c:minorGridlines"))
	}
	if a.Title != "" {
		el.Append(e.title(a.Title, false, nil))
	}
	format := dom.New("c:numFmt").
		Attr("formatCode", slx.Value(nonEmpty(a.NumberFormat), "General")).
		Attr("sourceLinked", dom.Format(a.SourceLinked))
	el.Append(format)
	el.Append(dom.Val("c:majorTickMark", string(a.MajorTick)))
	el.Append(dom.Val("c:minorTickMark", string(a.MinorTick)))
	el.Append(dom.Val("c:tickLblPos", string(a.TickLabels)))
	el.Append(e.shape("c:spPr", a.Shape))
	el.Append(dom.Val("c:crossAx", a.CrossAxis))
	if a.IsCrosses {
		el.Append(dom.Val("c:crosses", string(a.Crosses)))
	} else {
		el.Append(dom.Val("c:crossesAt", a.CrossesAt))
	}

	switch a.Kind {
	case AxisCategory:
		el.Append(dom.Val("c:auto", true))
		el.Append(dom.Val("c:lblAlgn", "ctr"))
		el.Append(dom.Val("c:lblOffset", slx.Value(a.LabelOffset, 100)))
		e.skips(el, a)
		el.Append(dom.Val("c:noMultiLvlLbl", false))
	case AxisDate:
		el.Append(dom.Val("c:auto", true))
		el.Append(dom.Val("c:lblOffset", slx.Value(a.LabelOffset, 100)))
		if a.BaseTimeUnit != nil {
			el.Append(dom.Val("c:baseTimeUnit", string(*a.BaseTimeUnit)))
		}
	case AxisValue:
		el.Append(dom.Val("c:crossBetween", slx.Value(nonEmpty(a.CrossBetween), "between")))
		if a.MajorUnit != nil {
			el.Append(dom.Val("c:majorUnit", *a.MajorUnit))
		}
		if a.MinorUnit != nil {
			el.Append(dom.Val("c:minorUnit", *a.MinorUnit))
		}
	case AxisSeries:
		e.skips(el, a)
	}
	return el
}

func (e *emitter) scaling(a *Axis) *dom.Element {
	el := dom.New("c:scaling")
	if a.LogBase != nil {
		el.Append(dom.Val("c:logBase", *a.LogBase))
	}
	orient := "minMax"
	if a.InReverseOrder {
		orient = "maxMin"
	}
	el.Append(dom.Val("c:orientation", orient))
	if a.Maximum != nil {
		el.Append(dom.Val("c:max", *a.Maximum))
	}
	if a.Minimum != nil {
		el.Append(dom.Val("c:min", *a.Minimum))
	}
	return el
}

func (e *emitter) skips(el *dom.Element, a *Axis) {
	if a.TickLabelSkip != nil {
		el.Append(dom.Val("c:tickLblSkip", *a.TickLabelSkip))
	}
	if a.TickMarkSkip != nil {
		el.Append(dom.Val("c:tickMarkSkip", *a.TickMarkSkip))
	}
}

func nonEmpty(str string) *string {
	if str == "" {
		return nil
	}
	return &str
}
