package chart

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midbel/chartkit/dom"
	"github.com/midbel/chartkit/style"
)

func plotArea(t *testing.T, c *Chart) *dom.Element {
	t.Helper()
	root, err := c.Tree(nil)
	require.NoError(t, err)
	area := root.Path("c:chart", "c:plotArea")
	require.NotNil(t, area)
	return area
}

func TestRenderOrder(t *testing.T) {
	c := New(makeSeries(3, 4), nil)
	c.SetChartType(Pie)
	c.PlotDataSeriesAsBarOfPieChart(2, nil)
	c.PlotDataSeriesAsDoughnutChart(3, nil)

	area := plotArea(t, c)
	want := []string{"c:layout", "c:doughnutChart", "c:ofPieChart", "c:pieChart"}
	assert.Equal(t, want, area.Names())

	ofPie := area.Find("c:ofPieChart")
	assert.Equal(t, "bar", ofPie.Find("c:ofPieType").Get("val"))
	assert.Len(t, ofPie.FindAll("c:ser"), 1)
}

func TestRenderOrderFollowsTags(t *testing.T) {
	c := New(makeSeries(6, 4), nil)
	c.SetChartType(Line)
	c.PlotDataSeriesAsSecondaryColumnChart(1, DisplayNormal, nil)
	c.PlotDataSeriesAsPrimaryAreaChart(2, DisplayNormal, nil)
	c.PlotDataSeriesAsPrimaryScatterChart(3, ScatterStyleMarker, nil)
	c.PlotDataSeriesAsPrimaryRadarChart(4, RadarMarker, nil)

	names := []string{
		"c:layout",
		"c:radarChart",
		"c:areaChart",
		"c:barChart",
		"c:scatterChart",
		"c:lineChart",
		"c:catAx",
		"c:valAx",
		"c:catAx",
		"c:valAx",
	}
	assert.Equal(t, names, plotArea(t, c).Names())
}

func TestEmitAxes(t *testing.T) {
	t.Run("column", func(t *testing.T) {
		c := New(makeSeries(2, 4), nil)
		c.SetChartType(ClusteredColumn)
		c.PlotDataSeriesAsSecondaryLineChart(2, DisplayNormal, nil)

		area := plotArea(t, c)
		axes := area.FindAll("c:valAx")
		require.Len(t, axes, 2)
		assert.Equal(t, "l", axes[0].Find("c:axPos").Get("val"))
		assert.Equal(t, "r", axes[1].Find("c:axPos").Get("val"))
		assert.Equal(t, "max", axes[1].Find("c:crosses").Get("val"))

		cats := area.FindAll("c:catAx")
		require.Len(t, cats, 2)
		assert.Equal(t, "1", cats[1].Find("c:delete").Get("val"))

		line := area.Find("c:lineChart")
		ids := line.FindAll("c:axId")
		require.Len(t, ids, 2)
		assert.Equal(t, cats[1].Find("c:axId").Get("val"), ids[0].Get("val"))
		assert.Equal(t, axes[1].Find("c:axId").Get("val"), ids[1].Get("val"))
	})
	t.Run("crossing", func(t *testing.T) {
		c := New(makeSeries(2, 4), nil)
		c.SetChartType(ClusteredColumn)
		c.PrimaryValueAxis().SetOtherAxisCrosses(CrossesMax)
		c.PrimaryTextAxis().SetOtherAxisCrossesAt(2)

		area := plotArea(t, c)
		cat, val := area.Find("c:catAx"), area.Find("c:valAx")
		assert.Equal(t, "max", cat.Find("c:crosses").Get("val"))
		assert.Equal(t, "t", cat.Find("c:axPos").Get("val"))
		assert.Nil(t, val.Find("c:crosses"))
		assert.Equal(t, "2", val.Find("c:crossesAt").Get("val"))
	})
	t.Run("scatter", func(t *testing.T) {
		c := New(makeSeries(2, 4), nil)
		c.SetChartType(ScatterMarkers)

		area := plotArea(t, c)
		assert.Len(t, area.FindAll("c:valAx"), 2)
		assert.Nil(t, area.Find("c:catAx"))
		ser := area.Path("c:scatterChart", "c:ser")
		require.NotNil(t, ser)
		assert.NotNil(t, ser.Find("c:xVal"))
		assert.NotNil(t, ser.Find("c:yVal"))
		assert.NotNil(t, ser.Path("c:spPr", "a:ln", "a:noFill"))
	})
	t.Run("pie", func(t *testing.T) {
		c := New(makeSeries(2, 4), nil)
		c.SetChartType(Pie)
		c.ShowDataTable(true, true, true, false)

		area := plotArea(t, c)
		assert.Equal(t, []string{"c:layout", "c:pieChart"}, area.Names())
	})
	t.Run("depth", func(t *testing.T) {
		c := New(makeSeries(2, 4), nil)
		c.SetChartType(Column3D)
		c.ShowDataTable(true, false, true, true)

		area := plotArea(t, c)
		want := []string{"c:layout", "c:bar3DChart", "c:catAx", "c:valAx", "c:serAx", "c:dTable"}
		assert.Equal(t, want, area.Names())
		assert.Len(t, area.Find("c:bar3DChart").FindAll("c:axId"), 3)
	})
}

func TestEmitChart(t *testing.T) {
	c := New(makeSeries(2, 3), nil)
	c.SetChartType(ExplodedPie3D)
	c.SetTitle("Share")
	c.Side().SetThickness(20)
	c.ShowLegend(LegendBottom, false)

	root, err := c.Tree(nil)
	require.NoError(t, err)
	chart := root.Find("c:chart")
	want := []string{
		"c:title",
		"c:autoTitleDeleted",
		"c:view3D",
		"c:floor",
		"c:sideWall",
		"c:backWall",
		"c:plotArea",
		"c:legend",
		"c:plotVisOnly",
		"c:dispBlanksAs",
	}
	assert.Equal(t, want, chart.Names())
	assert.Equal(t, "Share", chart.Path("c:title", "c:tx", "c:rich", "a:p", "a:r", "a:t").Text)
	assert.Equal(t, "9", chart.Path("c:sideWall", "c:thickness").Get("val"))
	assert.Equal(t, "30", chart.Path("c:view3D", "c:rotX").Get("val"))

	ser := chart.Path("c:plotArea", "c:pie3DChart", "c:ser")
	require.NotNil(t, ser)
	assert.Equal(t, "25", ser.Find("c:explosion").Get("val"))
	assert.Equal(t, "Sheet1!$B$1", ser.Path("c:tx", "c:strRef", "c:f").Text)
	assert.Equal(t, "Sheet1!$B$2:$B$4", ser.Path("c:val", "c:numRef", "c:f").Text)
	assert.Equal(t, "3", ser.Path("c:val", "c:numRef", "c:numCache", "c:ptCount").Get("val"))
}

func TestEmitSeriesDetails(t *testing.T) {
	c := New(makeSeries(1, 3), nil)
	c.SetChartType(LineMarkers)
	c.SetDataPointOptions(1, 2, SeriesOptions{Marker: &Marker{Symbol: MarkerDiamond}})
	c.SetDataPointLabels(1, 3, DataLabels{ShowCategory: true})
	c.SetDataLabels(1, DataLabels{ShowValue: true, Separator: "; "})

	ser := plotArea(t, c).Path("c:lineChart", "c:ser")
	require.NotNil(t, ser)
	names := strings.Join(ser.Names(), ",")
	assert.Equal(t, "c:idx,c:order,c:tx,c:dPt,c:dLbls,c:cat,c:val,c:smooth", names)
	assert.Equal(t, "diamond", ser.Path("c:dPt", "c:marker", "c:symbol").Get("val"))
	assert.Equal(t, "1", ser.Path("c:dPt", "c:idx").Get("val"))

	lbls := ser.Find("c:dLbls")
	assert.Equal(t, "2", lbls.Path("c:dLbl", "c:idx").Get("val"))
	assert.Equal(t, "1", lbls.Find("c:showVal").Get("val"))
	assert.Equal(t, "; ", lbls.Find("c:separator").Text)
}

type failingRegistry struct{}

func (failingRegistry) AddImage(string) (string, error) {
	return "", errors.New("no room left")
}

func TestEmitPictureFill(t *testing.T) {
	c := New(makeSeries(1, 3), nil)
	c.SetChartType(ClusteredColumn)
	c.Series()[0].ShapeProperties().SetPictureFill("bars.png", false)

	_, err := c.Tree(nil)
	assert.ErrorIs(t, err, style.ErrRegistry)

	_, err = c.Tree(failingRegistry{})
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	c := New(makeSeries(2, 3), nil)
	c.SetChartType(StackedBar)

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf, nil))
	str := buf.String()
	assert.True(t, strings.HasPrefix(str, "<?xml"))
	assert.Contains(t, str, `xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart"`)
	assert.Contains(t, str, `<c:barDir val="bar"></c:barDir>`)
	assert.Contains(t, str, `<c:overlap val="100"></c:overlap>`)
}
