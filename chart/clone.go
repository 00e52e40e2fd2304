package chart

import (
	"github.com/tiendc/go-deepcopy"
)

// Clone gives a copy of c sharing nothing with it.
func (c *Chart) Clone() *Chart {
	return cloneOf(c)
}

func (s *DataSeries) Clone() *DataSeries {
	return cloneOf(s)
}

func (r *Reference) Clone() *Reference {
	return cloneOf(r)
}

// cloneOf deep copies src. The chart model has no cycle nor channel so a
// failure can only come from a broken model and panics.
func cloneOf[T any](src *T) *T {
	if src == nil {
		return nil
	}
	var dst T
	if err := deepcopy.Copy(&dst, src); err != nil {
		panic(err)
	}
	return &dst
}
