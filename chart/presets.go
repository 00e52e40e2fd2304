package chart

import (
	"github.com/midbel/chartkit/internal/slx"
)

// preset describes a built-in type: the tag it plots with and the defaults
// applied when it is selected.
type preset struct {
	name        string
	tag         Tag
	combinable  bool
	orientation Orientation
	axis        AxisKind
	depth       depthMode
	options     Options
	view        *View3D
	series      seriesPatch
}

// seriesPatch holds the series defaults of a built-in type.
type seriesPatch struct {
	explosion *int
	marker    MarkerSymbol
	smooth    bool
	noLine    bool
	bubble3D  bool
}

func barPreset(name string, dir BarDirection, group Grouping, shape BarShape, threeD bool) preset {
	p := preset{
		name:        name,
		orientation: Vertical,
		axis:        AxisCategory,
	}
	if dir == DirectionBar {
		p.orientation = Horizontal
	}
	opts := BarOptions{
		Direction:  dir,
		Grouping:   slx.Ptr(group),
		VaryColors: slx.Ptr(false),
	}
	if !threeD {
		p.combinable = true
		p.tag = TagColumnPrimary
		if dir == DirectionBar {
			p.tag = TagBarPrimary
		}
		switch group {
		case GroupingClustered:
			opts.SetGapWidth(219).SetOverlap(-27)
			if dir == DirectionBar {
				opts.SetGapWidth(182).SetOverlap(0)
			}
		default:
			opts.SetGapWidth(150).SetOverlap(100)
		}
		p.options = &opts
		return p
	}
	p.tag = TagBar3D
	opts.SetGapWidth(150)
	opts.Shape = slx.Ptr(shape)
	p.options = &opts
	if group == GroupingStandard {
		p.depth = depthShown
		p.view = perspectiveView(15, 20, 30)
		opts.SetGapDepth(150)
	} else {
		p.depth = depthHidden
		p.view = rightAngleView(15, 20)
	}
	return p
}

func linePreset(name string, group Grouping, markers bool) preset {
	p := preset{
		name:       name,
		tag:        TagLinePrimary,
		combinable: true,
		axis:       AxisCategory,
		options: &LineOptions{
			Grouping:   slx.Ptr(group),
			VaryColors: slx.Ptr(false),
			ShowMarker: slx.Ptr(true),
		},
	}
	if !markers {
		p.series.marker = MarkerNone
	}
	return p
}

func areaPreset(name string, group Grouping, threeD bool) preset {
	p := preset{
		name:       name,
		tag:        TagAreaPrimary,
		combinable: !threeD,
		axis:       AxisCategory,
		options: &AreaOptions{
			Grouping:   slx.Ptr(group),
			VaryColors: slx.Ptr(false),
		},
	}
	if !threeD {
		return p
	}
	p.tag = TagArea3D
	if group == GroupingStandard {
		p.depth = depthShown
		p.view = perspectiveView(15, 20, 30)
	} else {
		p.depth = depthHidden
		p.view = rightAngleView(15, 20)
	}
	return p
}

func scatterPreset(name string, style ScatterStyle, patch seriesPatch) preset {
	return preset{
		name:       name,
		tag:        TagScatterPrimary,
		combinable: true,
		axis:       AxisValue,
		options: &ScatterOptions{
			Style:      slx.Ptr(style),
			VaryColors: slx.Ptr(false),
		},
		series: patch,
	}
}

func piePreset(name string, tag Tag, exploded bool) preset {
	p := preset{
		name:       name,
		tag:        tag,
		combinable: tag == TagPie,
		options: &PieOptions{
			VaryColors:      slx.Ptr(true),
			FirstSliceAngle: slx.Ptr(0),
		},
	}
	if tag == TagPie3D {
		p.view = &View3D{
			RotX:           slx.Ptr(30),
			RotY:           slx.Ptr(0),
			RightAngleAxes: slx.Ptr(false),
		}
	}
	if exploded {
		p.series.explosion = slx.Ptr(25)
	}
	return p
}

func ofPiePreset(name string, bar bool) preset {
	p := preset{
		name:       name,
		tag:        TagPieOfPie,
		combinable: true,
	}
	if bar {
		p.tag = TagBarOfPie
	}
	opts := OfPieOptions{
		VaryColors:  slx.Ptr(true),
		SeriesLines: slx.Ptr(true),
	}
	opts.SetGapWidth(100).SetSecondPieSize(75)
	p.options = &opts
	return p
}

func doughnutPreset(name string, exploded bool) preset {
	opts := DoughnutOptions{
		VaryColors: slx.Ptr(true),
	}
	opts.SetFirstSliceAngle(0).SetHoleSize(75)
	p := preset{
		name:       name,
		tag:        TagDoughnut,
		combinable: true,
		options:    &opts,
	}
	if exploded {
		p.series.explosion = slx.Ptr(25)
	}
	return p
}

func stockPreset(name string, open bool) preset {
	opts := StockOptions{
		HighLowLines: slx.Ptr(true),
	}
	if open {
		opts.UpDownBars = slx.Ptr(true)
		opts.SetGapWidth(150)
	}
	return preset{
		name:    name,
		tag:     TagStock,
		axis:    AxisCategory,
		options: &opts,
		series: seriesPatch{
			marker: MarkerNone,
			noLine: true,
		},
	}
}

func surfacePreset(name string, wireframe, contour bool) preset {
	p := preset{
		name:  name,
		tag:   TagSurface3D,
		axis:  AxisCategory,
		depth: depthShown,
		options: &SurfaceOptions{
			Wireframe: slx.Ptr(wireframe),
		},
		view: perspectiveView(15, 20, 30),
	}
	if contour {
		p.tag = TagSurface
		p.depth = depthHidden
		p.view = perspectiveView(90, 0, 0)
	}
	return p
}

func bubblePreset(name string, threeD bool) preset {
	opts := BubbleOptions{
		VaryColors:     slx.Ptr(false),
		Bubble3D:       slx.Ptr(threeD),
		ShowNegative:   slx.Ptr(false),
		SizeRepresents: slx.Ptr(SizeArea),
	}
	opts.SetScale(100)
	return preset{
		name:    name,
		tag:     TagBubble,
		axis:    AxisValue,
		options: &opts,
		series: seriesPatch{
			bubble3D: threeD,
		},
	}
}

func radarPreset(name string, style RadarStyle, markers bool) preset {
	p := preset{
		name:       name,
		tag:        TagRadarPrimary,
		combinable: true,
		axis:       AxisCategory,
		options: &RadarOptions{
			Style:      slx.Ptr(style),
			VaryColors: slx.Ptr(false),
		},
	}
	if !markers {
		p.series.marker = MarkerNone
	}
	return p
}

func perspectiveView(x, y, perspective int) *View3D {
	var v View3D
	v.SetRotationX(x).SetRotationY(y).SetPerspective(perspective).SetDepthPercent(100)
	v.RightAngleAxes = slx.Ptr(false)
	return &v
}

func rightAngleView(x, y int) *View3D {
	var v View3D
	v.SetRotationX(x).SetRotationY(y).SetDepthPercent(100)
	v.RightAngleAxes = slx.Ptr(true)
	return &v
}

var presets = map[BuiltIn]preset{
	ClusteredColumn:        barPreset("clustered-column", DirectionColumn, GroupingClustered, ShapeBox, false),
	StackedColumn:          barPreset("stacked-column", DirectionColumn, GroupingStacked, ShapeBox, false),
	PercentStackedColumn:   barPreset("percent-stacked-column", DirectionColumn, GroupingPercentStacked, ShapeBox, false),
	ClusteredColumn3D:      barPreset("clustered-column-3d", DirectionColumn, GroupingClustered, ShapeBox, true),
	StackedColumn3D:        barPreset("stacked-column-3d", DirectionColumn, GroupingStacked, ShapeBox, true),
	PercentStackedColumn3D: barPreset("percent-stacked-column-3d", DirectionColumn, GroupingPercentStacked, ShapeBox, true),
	Column3D:               barPreset("column-3d", DirectionColumn, GroupingStandard, ShapeBox, true),
	ClusteredCylinder:      barPreset("clustered-cylinder", DirectionColumn, GroupingClustered, ShapeCylinder, true),
	StackedCylinder:        barPreset("stacked-cylinder", DirectionColumn, GroupingStacked, ShapeCylinder, true),
	PercentStackedCylinder: barPreset("percent-stacked-cylinder", DirectionColumn, GroupingPercentStacked, ShapeCylinder, true),
	Cylinder3D:             barPreset("cylinder-3d", DirectionColumn, GroupingStandard, ShapeCylinder, true),
	ClusteredCone:          barPreset("clustered-cone", DirectionColumn, GroupingClustered, ShapeCone, true),
	StackedCone:            barPreset("stacked-cone", DirectionColumn, GroupingStacked, ShapeCone, true),
	PercentStackedCone:     barPreset("percent-stacked-cone", DirectionColumn, GroupingPercentStacked, ShapeCone, true),
	Cone3D:                 barPreset("cone-3d", DirectionColumn, GroupingStandard, ShapeCone, true),
	ClusteredPyramid:       barPreset("clustered-pyramid", DirectionColumn, GroupingClustered, ShapePyramid, true),
	StackedPyramid:         barPreset("stacked-pyramid", DirectionColumn, GroupingStacked, ShapePyramid, true),
	PercentStackedPyramid:  barPreset("percent-stacked-pyramid", DirectionColumn, GroupingPercentStacked, ShapePyramid, true),
	Pyramid3D:              barPreset("pyramid-3d", DirectionColumn, GroupingStandard, ShapePyramid, true),

	ClusteredBar:                     barPreset("clustered-bar", DirectionBar, GroupingClustered, ShapeBox, false),
	StackedBar:                       barPreset("stacked-bar", DirectionBar, GroupingStacked, ShapeBox, false),
	PercentStackedBar:                barPreset("percent-stacked-bar", DirectionBar, GroupingPercentStacked, ShapeBox, false),
	ClusteredBar3D:                   barPreset("clustered-bar-3d", DirectionBar, GroupingClustered, ShapeBox, true),
	StackedBar3D:                     barPreset("stacked-bar-3d", DirectionBar, GroupingStacked, ShapeBox, true),
	PercentStackedBar3D:              barPreset("percent-stacked-bar-3d", DirectionBar, GroupingPercentStacked, ShapeBox, true),
	ClusteredHorizontalCylinder:      barPreset("clustered-horizontal-cylinder", DirectionBar, GroupingClustered, ShapeCylinder, true),
	StackedHorizontalCylinder:        barPreset("stacked-horizontal-cylinder", DirectionBar, GroupingStacked, ShapeCylinder, true),
	PercentStackedHorizontalCylinder: barPreset("percent-stacked-horizontal-cylinder", DirectionBar, GroupingPercentStacked, ShapeCylinder, true),
	ClusteredHorizontalCone:          barPreset("clustered-horizontal-cone", DirectionBar, GroupingClustered, ShapeCone, true),
	StackedHorizontalCone:            barPreset("stacked-horizontal-cone", DirectionBar, GroupingStacked, ShapeCone, true),
	PercentStackedHorizontalCone:     barPreset("percent-stacked-horizontal-cone", DirectionBar, GroupingPercentStacked, ShapeCone, true),
	ClusteredHorizontalPyramid:       barPreset("clustered-horizontal-pyramid", DirectionBar, GroupingClustered, ShapePyramid, true),
	StackedHorizontalPyramid:         barPreset("stacked-horizontal-pyramid", DirectionBar, GroupingStacked, ShapePyramid, true),
	PercentStackedHorizontalPyramid:  barPreset("percent-stacked-horizontal-pyramid", DirectionBar, GroupingPercentStacked, ShapePyramid, true),

	Line:                      linePreset("line", GroupingStandard, false),
	StackedLine:               linePreset("stacked-line", GroupingStacked, false),
	PercentStackedLine:        linePreset("percent-stacked-line", GroupingPercentStacked, false),
	LineMarkers:               linePreset("line-markers", GroupingStandard, true),
	StackedLineMarkers:        linePreset("stacked-line-markers", GroupingStacked, true),
	PercentStackedLineMarkers: linePreset("percent-stacked-line-markers", GroupingPercentStacked, true),
	Line3D: {
		name:  "line-3d",
		tag:   TagLine3D,
		axis:  AxisCategory,
		depth: depthShown,
		options: &LineOptions{
			Grouping:   slx.Ptr(GroupingStandard),
			VaryColors: slx.Ptr(false),
		},
		view: perspectiveView(15, 20, 30),
	},

	Pie:           piePreset("pie", TagPie, false),
	Pie3D:         piePreset("pie-3d", TagPie3D, false),
	PieOfPie:      ofPiePreset("pie-of-pie", false),
	ExplodedPie:   piePreset("exploded-pie", TagPie, true),
	ExplodedPie3D: piePreset("exploded-pie-3d", TagPie3D, true),
	BarOfPie:      ofPiePreset("bar-of-pie", true),

	Area:                 areaPreset("area", GroupingStandard, false),
	StackedArea:          areaPreset("stacked-area", GroupingStacked, false),
	PercentStackedArea:   areaPreset("percent-stacked-area", GroupingPercentStacked, false),
	Area3D:               areaPreset("area-3d", GroupingStandard, true),
	StackedArea3D:        areaPreset("stacked-area-3d", GroupingStacked, true),
	PercentStackedArea3D: areaPreset("percent-stacked-area-3d", GroupingPercentStacked, true),

	ScatterMarkers:       scatterPreset("scatter-markers", ScatterStyleLineMarker, seriesPatch{noLine: true}),
	ScatterSmoothMarkers: scatterPreset("scatter-smooth-markers", ScatterStyleSmoothMarker, seriesPatch{smooth: true}),
	ScatterSmooth:        scatterPreset("scatter-smooth", ScatterStyleSmoothMarker, seriesPatch{smooth: true, marker: MarkerNone}),
	ScatterLinesMarkers:  scatterPreset("scatter-lines-markers", ScatterStyleLineMarker, seriesPatch{}),
	ScatterLines:         scatterPreset("scatter-lines", ScatterStyleLineMarker, seriesPatch{marker: MarkerNone}),

	StockHighLowClose:     stockPreset("stock-high-low-close", false),
	StockOpenHighLowClose: stockPreset("stock-open-high-low-close", true),

	Surface3D:          surfacePreset("surface-3d", false, false),
	WireframeSurface3D: surfacePreset("wireframe-surface-3d", true, false),
	Contour:            surfacePreset("contour", false, true),
	WireframeContour:   surfacePreset("wireframe-contour", true, true),

	Doughnut:         doughnutPreset("doughnut", false),
	ExplodedDoughnut: doughnutPreset("exploded-doughnut", true),

	Bubble:   bubblePreset("bubble", false),
	Bubble3D: bubblePreset("bubble-3d", true),

	Radar:        radarPreset("radar", RadarMarker, false),
	RadarMarkers: radarPreset("radar-markers", RadarMarker, true),
	FilledRadar:  radarPreset("filled-radar", RadarFilled, true),
}
