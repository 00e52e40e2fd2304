package chart

import (
	"strconv"

	"github.com/midbel/chartkit/style"
)

// transformBubble regroups series two by two into bubble series. The first
// series of a pair gives the x (its categories) and the y (its values), the
// second one the bubble sizes. Without a second series, every bubble gets a
// size of 1.
//
// The header row consumed by the range reader is moved back into the data so
// that x, y and sizes stay aligned row by row.
func transformBubble(list []*DataSeries, theme style.Theme) []*DataSeries {
	var res []*DataSeries
	for i := 0; i < len(list); i += 2 {
		var (
			curr = list[i]
			ds   = NewSeries(len(res), theme)
		)
		ds.Name = curr.Name.Clone()
		ds.Categories = curr.Categories.Clone()
		ds.Values = curr.Values.Clone()
		ds.Options = *cloneOf(&curr.Options)

		promote := ds.Categories.Len() >= 2 && curr.Name != nil
		if promote {
			header, _ := curr.Categories.headerPoint()
			ds.Categories.promote(header)
			if ds.Values != nil {
				ds.Values.promote(numericPoint(curr.Name))
			}
		}
		if i+1 < len(list) && list[i+1].Values != nil {
			next := list[i+1]
			ds.BubbleSize = next.Values.Clone()
			if promote {
				ds.BubbleSize.promote(numericPoint(next.Name))
			}
		} else {
			rows := max(ds.Categories.Len(), ds.Values.Len())
			ds.BubbleSize = NewLiteral(rows, "1")
		}
		res = append(res, ds)
	}
	return res
}

// bubbled reports whether the series have already been regrouped into bubble
// series.
func bubbled(list []*DataSeries) bool {
	if len(list) == 0 {
		return false
	}
	for _, s := range list {
		if s.Tag != TagBubble {
			return false
		}
	}
	return true
}

func (r *Reference) headerPoint() (Point, bool) {
	if r == nil || r.Header == nil {
		return Point{}, false
	}
	return *r.Header, true
}

// numericPoint gives the first cached point of ref when it holds a number,
// a point valued 0 otherwise.
func numericPoint(ref *Reference) Point {
	p, ok := ref.First()
	if !ok {
		return Point{Value: "0"}
	}
	if _, err := strconv.ParseFloat(p.Value, 64); err != nil {
		p.Value = "0"
	}
	return p
}
