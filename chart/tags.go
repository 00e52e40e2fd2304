package chart

import (
	"strings"
)

// Tag identifies one internal chart kind of a plot area. Several built-in
// types share a tag; each tag owns at most one slot in the registry.
type Tag int

const (
	TagDoughnut Tag = iota
	TagBarOfPie
	TagPieOfPie
	TagPie
	TagRadarPrimary
	TagRadarSecondary
	TagAreaPrimary
	TagAreaSecondary
	TagColumnPrimary
	TagColumnSecondary
	TagBarPrimary
	TagBarSecondary
	TagScatterPrimary
	TagScatterSecondary
	TagLinePrimary
	TagLineSecondary
	TagArea3D
	TagBar3D
	TagBubble
	TagLine3D
	TagPie3D
	TagSurface
	TagSurface3D
	TagStock
)

// renderOrder is the order in which fragments must appear in the plot area.
var renderOrder = []Tag{
	TagDoughnut,
	TagBarOfPie,
	TagPieOfPie,
	TagPie,
	TagRadarPrimary,
	TagRadarSecondary,
	TagAreaPrimary,
	TagAreaSecondary,
	TagColumnPrimary,
	TagColumnSecondary,
	TagBarPrimary,
	TagBarSecondary,
	TagScatterPrimary,
	TagScatterSecondary,
	TagLinePrimary,
	TagLineSecondary,
	TagArea3D,
	TagBar3D,
	TagBubble,
	TagLine3D,
	TagPie3D,
	TagSurface,
	TagSurface3D,
	TagStock,
}

// RenderOrder returns the tags in plot area emission order.
func RenderOrder() []Tag {
	return append([]Tag(nil), renderOrder...)
}

var tagNames = map[Tag]string{
	TagDoughnut:         "doughnut",
	TagBarOfPie:         "bar-of-pie",
	TagPieOfPie:         "pie-of-pie",
	TagPie:              "pie",
	TagRadarPrimary:     "radar-primary",
	TagRadarSecondary:   "radar-secondary",
	TagAreaPrimary:      "area-primary",
	TagAreaSecondary:    "area-secondary",
	TagColumnPrimary:    "bar-column-primary",
	TagColumnSecondary:  "bar-column-secondary",
	TagBarPrimary:       "bar-bar-primary",
	TagBarSecondary:     "bar-bar-secondary",
	TagScatterPrimary:   "scatter-primary",
	TagScatterSecondary: "scatter-secondary",
	TagLinePrimary:      "line-primary",
	TagLineSecondary:    "line-secondary",
	TagArea3D:           "area-3d",
	TagBar3D:            "bar-3d",
	TagBubble:           "bubble",
	TagLine3D:           "line-3d",
	TagPie3D:            "pie-3d",
	TagSurface:          "surface",
	TagSurface3D:        "surface-3d",
	TagStock:            "stock",
}

func (t Tag) String() string {
	if n, ok := tagNames[t]; ok {
		return n
	}
	return "unknown"
}

// Secondary reports whether the fragment is plotted against the secondary
// axis pair.
func (t Tag) Secondary() bool {
	switch t {
	case TagRadarSecondary, TagAreaSecondary, TagColumnSecondary, TagBarSecondary, TagScatterSecondary, TagLineSecondary:
		return true
	default:
		return false
	}
}

// HasAxes reports whether the fragment references an axis pair.
func (t Tag) HasAxes() bool {
	switch t {
	case TagDoughnut, TagBarOfPie, TagPieOfPie, TagPie, TagPie3D:
		return false
	default:
		return true
	}
}

// HasDepth reports whether the fragment references a depth axis as well.
func (t Tag) HasDepth() bool {
	switch t {
	case TagArea3D, TagBar3D, TagLine3D, TagSurface, TagSurface3D:
		return true
	default:
		return false
	}
}

func (t Tag) element() string {
	switch t {
	case TagDoughnut:
		return "c:doughnutChart"
	case TagBarOfPie, TagPieOfPie:
		return "c:ofPieChart"
	case TagPie:
		return "c:pieChart"
	case TagRadarPrimary, TagRadarSecondary:
		return "c:radarChart"
	case TagAreaPrimary, TagAreaSecondary:
		return "c:areaChart"
	case TagColumnPrimary, TagColumnSecondary, TagBarPrimary, TagBarSecondary:
		return "c:barChart"
	case TagScatterPrimary, TagScatterSecondary:
		return "c:scatterChart"
	case TagLinePrimary, TagLineSecondary:
		return "c:lineChart"
	case TagArea3D:
		return "c:area3DChart"
	case TagBar3D:
		return "c:bar3DChart"
	case TagBubble:
		return "c:bubbleChart"
	case TagLine3D:
		return "c:line3DChart"
	case TagPie3D:
		return "c:pie3DChart"
	case TagSurface:
		return "c:surfaceChart"
	case TagSurface3D:
		return "c:surface3DChart"
	case TagStock:
		return "c:stockChart"
	default:
		return ""
	}
}

// LookupTag gives the chart kind of a plot area fragment. variant is the bar
// direction (bar, col) of bar charts or the type (bar, pie) of of-pie charts.
// secondary is ignored by kinds that can not be plotted on secondary axes.
func LookupTag(element, variant string, secondary bool) (Tag, bool) {
	element = "c:" + strings.TrimPrefix(element, "c:")
	for _, t := range renderOrder {
		if t.element() != element {
			continue
		}
		if t.secondary() != t || t.Secondary() {
			if t.Secondary() != secondary {
				continue
			}
		}
		switch t {
		case TagBarPrimary, TagBarSecondary, TagBarOfPie:
			if variant != "bar" {
				continue
			}
		case TagColumnPrimary, TagColumnSecondary:
			if variant == "bar" {
				continue
			}
		case TagPieOfPie:
			if variant == "bar" {
				continue
			}
		}
		return t, true
	}
	return 0, false
}

// family groups tags sharing an option bag.
type family int

const (
	familyBar family = iota
	familyLine
	familyPie
	familyDoughnut
	familyOfPie
	familyArea
	familyRadar
	familyScatter
	familyBubble
	familySurface
	familyStock
)

func (t Tag) family() family {
	switch t {
	case TagColumnPrimary, TagColumnSecondary, TagBarPrimary, TagBarSecondary, TagBar3D:
		return familyBar
	case TagLinePrimary, TagLineSecondary, TagLine3D:
		return familyLine
	case TagPie, TagPie3D:
		return familyPie
	case TagDoughnut:
		return familyDoughnut
	case TagBarOfPie, TagPieOfPie:
		return familyOfPie
	case TagAreaPrimary, TagAreaSecondary, TagArea3D:
		return familyArea
	case TagRadarPrimary, TagRadarSecondary:
		return familyRadar
	case TagScatterPrimary, TagScatterSecondary:
		return familyScatter
	case TagBubble:
		return familyBubble
	case TagSurface, TagSurface3D:
		return familySurface
	default:
		return familyStock
	}
}
