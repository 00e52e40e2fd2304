package chartxml

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midbel/chartkit/chart"
	"github.com/midbel/chartkit/layout"
	"github.com/midbel/chartkit/style"
)

func makeChart(count int) *chart.Chart {
	var list []*chart.DataSeries
	for i := 0; i < count; i++ {
		col := layout.ColumnName(int64(i + 1))
		rg := layout.RangeFromString(fmt.Sprintf("Sheet1!%s1:%s3", col, col))
		s := chart.NewSeries(i, style.DefaultTheme())
		list = append(list, s.SetValues(chart.NewReference(rg, true, "1", "2", "3")))
	}
	return chart.New(list, style.DefaultTheme())
}

func inspect(t *testing.T, c *chart.Chart) *Summary {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf, nil))
	sum, err := Inspect(&buf)
	require.NoError(t, err)
	return sum
}

func fragmentNames(sum *Summary) []string {
	var list []string
	for _, f := range sum.Fragments {
		list = append(list, f.Name)
	}
	return list
}

func TestInspectCombination(t *testing.T) {
	c := makeChart(3)
	c.SetChartType(chart.ClusteredColumn)
	c.PlotDataSeriesAsSecondaryLineChart(3, chart.DisplayNormal, nil)
	c.PlotDataSeriesAsPrimaryAreaChart(2, chart.DisplayNormal, nil)
	c.ShowDataTable(true, true, true, false)

	sum := inspect(t, c)
	assert.Equal(t, []string{"areaChart", "barChart", "lineChart"}, fragmentNames(sum))
	assert.Equal(t, "col", sum.Fragments[1].Variant)
	for _, f := range sum.Fragments {
		assert.Equal(t, 1, f.Series, f.Name)
		assert.Len(t, f.Axes, 2, f.Name)
	}

	tags, err := sum.Tags()
	require.NoError(t, err)
	assert.Equal(t, []chart.Tag{chart.TagAreaPrimary, chart.TagColumnPrimary, chart.TagLineSecondary}, tags)
	assert.True(t, sum.Ordered())
	assert.True(t, sum.Paired())
	assert.True(t, sum.DataTable)

	require.Len(t, sum.Axes, 4)
	assert.Equal(t, []string{"catAx", "valAx", "catAx", "valAx"}, []string{sum.Axes[0].Kind, sum.Axes[1].Kind, sum.Axes[2].Kind, sum.Axes[3].Kind})
	secondText, secondValue := sum.Axes[2], sum.Axes[3]
	assert.True(t, secondText.Deleted)
	assert.False(t, secondValue.Deleted)
	assert.Equal(t, "r", secondValue.Position)
	assert.Equal(t, "max", secondValue.Crosses)
	assert.Equal(t, sum.Fragments[2].Axes, []string{secondText.ID, secondValue.ID})
}

func TestInspectPieFamily(t *testing.T) {
	c := makeChart(3)
	c.SetChartType(chart.Pie)
	c.PlotDataSeriesAsBarOfPieChart(2, nil)
	c.PlotDataSeriesAsDoughnutChart(3, nil)

	sum := inspect(t, c)
	assert.Equal(t, []string{"doughnutChart", "ofPieChart", "pieChart"}, fragmentNames(sum))
	assert.Equal(t, "bar", sum.Fragments[1].Variant)
	assert.Empty(t, sum.Axes)
	assert.False(t, sum.DataTable)

	tags, err := sum.Tags()
	require.NoError(t, err)
	assert.Equal(t, []chart.Tag{chart.TagDoughnut, chart.TagBarOfPie, chart.TagPie}, tags)
	assert.True(t, sum.Ordered())
}

func TestInspectDepth(t *testing.T) {
	c := makeChart(2)
	c.SetChartType(chart.Column3D)

	sum := inspect(t, c)
	require.Len(t, sum.Fragments, 1)
	assert.Equal(t, "bar3DChart", sum.Fragments[0].Name)
	assert.Len(t, sum.Fragments[0].Axes, 3)
	require.Len(t, sum.Axes, 3)
	assert.Equal(t, "serAx", sum.Axes[2].Kind)
	assert.True(t, sum.Paired())
}

func TestSummaryOrder(t *testing.T) {
	sum := Summary{
		Fragments: []Fragment{
			{Name: "lineChart"},
			{Name: "barChart", Variant: "col"},
		},
	}
	assert.False(t, sum.Ordered())

	sum.Fragments[0], sum.Fragments[1] = sum.Fragments[1], sum.Fragments[0]
	assert.True(t, sum.Ordered())

	sum.Fragments = append(sum.Fragments, Fragment{Name: "sunburstChart"})
	_, err := sum.Tags()
	assert.ErrorIs(t, err, ErrFragment)
	assert.False(t, sum.Ordered())
}

func TestSummaryPaired(t *testing.T) {
	sum := Summary{
		Axes: []Axis{
			{Kind: "catAx", ID: "1", CrossAxis: "2"},
			{Kind: "valAx", ID: "2", CrossAxis: "3"},
		},
	}
	assert.False(t, sum.Paired())
	sum.Axes[1].CrossAxis = "1"
	assert.True(t, sum.Paired())
}
