package chart

import (
	"slices"
	"strings"
)

// BuiltIn is a chart type as offered by spreadsheet applications.
type BuiltIn int

const (
	ClusteredColumn BuiltIn = iota
	StackedColumn
	PercentStackedColumn
	ClusteredColumn3D
	StackedColumn3D
	PercentStackedColumn3D
	Column3D
	ClusteredCylinder
	StackedCylinder
	PercentStackedCylinder
	Cylinder3D
	ClusteredCone
	StackedCone
	PercentStackedCone
	Cone3D
	ClusteredPyramid
	StackedPyramid
	PercentStackedPyramid
	Pyramid3D

	ClusteredBar
	StackedBar
	PercentStackedBar
	ClusteredBar3D
	StackedBar3D
	PercentStackedBar3D
	ClusteredHorizontalCylinder
	StackedHorizontalCylinder
	PercentStackedHorizontalCylinder
	ClusteredHorizontalCone
	StackedHorizontalCone
	PercentStackedHorizontalCone
	ClusteredHorizontalPyramid
	StackedHorizontalPyramid
	PercentStackedHorizontalPyramid

	Line
	StackedLine
	PercentStackedLine
	LineMarkers
	StackedLineMarkers
	PercentStackedLineMarkers
	Line3D

	Pie
	Pie3D
	PieOfPie
	ExplodedPie
	ExplodedPie3D
	BarOfPie

	Area
	StackedArea
	PercentStackedArea
	Area3D
	StackedArea3D
	PercentStackedArea3D

	ScatterMarkers
	ScatterSmoothMarkers
	ScatterSmooth
	ScatterLinesMarkers
	ScatterLines

	StockHighLowClose
	StockOpenHighLowClose

	Surface3D
	WireframeSurface3D
	Contour
	WireframeContour

	Doughnut
	ExplodedDoughnut

	Bubble
	Bubble3D

	Radar
	RadarMarkers
	FilledRadar
)

func (b BuiltIn) String() string {
	p, ok := presets[b]
	if !ok {
		return "unknown"
	}
	return p.name
}

// Tag gives the internal chart kind the built-in type is plotted with.
func (b BuiltIn) Tag() Tag {
	return presets[b].tag
}

func (b BuiltIn) Is3D() bool {
	return presets[b].view != nil
}

func (b BuiltIn) Combinable() bool {
	return presets[b].combinable
}

// LookupBuiltIn finds a built-in type from its name (clustered-column,
// exploded-pie-3d...). Case and separators are not significant.
func LookupBuiltIn(name string) (BuiltIn, bool) {
	name = normalizeName(name)
	for b, p := range presets {
		if normalizeName(p.name) == name {
			return b, true
		}
	}
	return 0, false
}

// BuiltIns gives every known built-in type.
func BuiltIns() []BuiltIn {
	var list []BuiltIn
	for b := range presets {
		list = append(list, b)
	}
	slices.Sort(list)
	return list
}

func normalizeName(str string) string {
	str = strings.ToLower(strings.TrimSpace(str))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(str)
}
