package plan

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"charm.land/log/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midbel/chartkit/chart"
	"github.com/midbel/chartkit/layout"
	"github.com/midbel/chartkit/style"
)

const combo = `
type: clustered-column
range: Sheet1!A1:D5
title: Sales
legend: bottom
options:
  gapWidth: 80
  overlap: 250
plots:
  - series: 3
    as: line
    secondary: true
    options:
      smooth: true
axes:
  primaryValue:
    min: 0
    max: 100
    format: "0%"
    gridlines: major
  secondaryValue:
    crosses: max
datatable:
  horizontal: true
  keys: true
series:
  - index: 1
    fill:
      color: accent2
      line: "#112233"
      width: 1.5
    labels:
      value: true
      position: outEnd
    points:
      2:
        fill:
          color: FF0000
`

func makeSeries(count, rows int) []*chart.DataSeries {
	var list []*chart.DataSeries
	for i := 0; i < count; i++ {
		col := layout.ColumnName(int64(i + 2))
		var values []string
		for j := 0; j < rows; j++ {
			values = append(values, fmt.Sprint(i*10+j))
		}
		val := chart.NewReference(layout.RangeFromString(fmt.Sprintf("Sheet1!%s2:%s%d", col, col, rows+1)), true, values...)
		s := chart.NewSeries(i, style.DefaultTheme())
		list = append(list, s.SetValues(val))
	}
	return list
}

func makeBuilder() (*Builder, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	return NewBuilder(logger), &buf
}

func TestLoad(t *testing.T) {
	def, err := Load(strings.NewReader(combo))
	require.NoError(t, err)
	assert.Equal(t, chart.ClusteredColumn, def.BuiltIn())
	assert.Equal(t, "Sheet1!A1:D5", def.Range)
	require.NotNil(t, def.Title)
	assert.Equal(t, "Sales", *def.Title)
	require.Len(t, def.Plots, 1)
	assert.Equal(t, 3, def.Plots[0].Series)
	assert.True(t, def.Plots[0].Secondary)
	require.Len(t, def.Series, 1)
	assert.Contains(t, def.Series[0].Points, 2)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		Input string
		Err   error
	}{
		{Input: "type: sunburst\nrange: A1:B2", Err: ErrType},
		{Input: "type: pie", Err: ErrRange},
		{Input: "type: pie\nrange: A1:B2\nlegend: middle", Err: ErrValue},
		{Input: "type: pie\nrange: A1:B2\nblanks: skip", Err: ErrValue},
		{Input: "type: line\nrange: A1:B2\nplots:\n  - series: 1\n    as: gantt", Err: ErrType},
		{Input: "type: line\nrange: A1:B2\nplots:\n  - series: 1\n    as: bar\n    display: sideways", Err: ErrValue},
	}
	for _, c := range tests {
		_, err := Load(strings.NewReader(c.Input))
		assert.ErrorIs(t, err, c.Err, c.Input)
	}
}

func TestBuild(t *testing.T) {
	def, err := Load(strings.NewReader(combo))
	require.NoError(t, err)

	b, _ := makeBuilder()
	c, err := b.Build(def, makeSeries(3, 4))
	require.NoError(t, err)

	tags := []chart.Tag{chart.TagColumnPrimary, chart.TagColumnPrimary, chart.TagLineSecondary}
	for i, s := range c.Series() {
		assert.Equal(t, tags[i], s.Tag, "series %d", i+1)
	}

	slot, ok := c.PlotArea.Registry.Get(chart.TagColumnPrimary)
	require.True(t, ok)
	bar, ok := slot.Options.(*chart.BarOptions)
	require.True(t, ok)
	assert.Equal(t, 80, *bar.GapWidth)
	assert.Equal(t, 100, *bar.Overlap)

	slot, ok = c.PlotArea.Registry.Get(chart.TagLineSecondary)
	require.True(t, ok)
	line, ok := slot.Options.(*chart.LineOptions)
	require.True(t, ok)
	assert.True(t, *line.Smooth)

	require.NotNil(t, c.Title)
	assert.Equal(t, "Sales", c.Title.Text)
	require.NotNil(t, c.Legend)
	assert.Equal(t, chart.LegendBottom, c.Legend.Position)
	require.NotNil(t, c.PlotArea.DataTable)
	assert.True(t, c.PlotArea.DataTable.LegendKeys)

	value := c.PrimaryValueAxis()
	require.NotNil(t, value)
	assert.Equal(t, 0.0, *value.Minimum)
	assert.Equal(t, 100.0, *value.Maximum)
	assert.Equal(t, "0%", value.NumberFormat)
	assert.False(t, value.SourceLinked)
	assert.True(t, value.MajorGridlines)

	second := c.SecondaryValueAxis()
	require.NotNil(t, second)
	assert.Equal(t, chart.CrossesMax, second.OtherAxisCrosses)

	first := c.Series()[0]
	require.NotNil(t, first.Options.Shape)
	assert.False(t, first.Options.Shape.Empty())
	require.NotNil(t, first.Labels)
	assert.True(t, first.Labels.ShowValue)
	assert.Contains(t, first.Points, 1)
}

func TestBuildWarnings(t *testing.T) {
	input := `
type: clustered-column-3d
range: A1:C4
view3d:
  rotX: 200
plots:
  - series: 1
    as: line
floor:
  color: accent1
`
	def, err := Load(strings.NewReader(input))
	require.NoError(t, err)

	b, buf := makeBuilder()
	c, err := b.Build(def, makeSeries(2, 3))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "plot ignored")
	assert.Equal(t, chart.TagBar3D, c.Series()[0].Tag)
	require.NotNil(t, c.View)
	assert.Equal(t, 90, *c.View.RotX)
	require.NotNil(t, c.Floor)
	assert.False(t, c.Floor.Shape.Empty())

	input = `
type: pie
range: A1:C4
view3d:
  rotX: 10
plots:
  - series: 5
    as: doughnut
axes:
  secondaryValue:
    title: none
`
	def, err = Load(strings.NewReader(input))
	require.NoError(t, err)

	b, buf = makeBuilder()
	_, err = b.Build(def, makeSeries(2, 3))
	require.NoError(t, err)
	for _, msg := range []string{"3d view ignored", "series out of range", "axis settings ignored"} {
		assert.Contains(t, buf.String(), msg)
	}
}

func TestBuildSecondaryTextAxis(t *testing.T) {
	input := `
type: line
range: A1:C4
legend: none
title: ""
plots:
  - series: 2
    as: column
    secondary: true
axes:
  secondaryText:
    hidden: false
    title: months
`
	def, err := Load(strings.NewReader(input))
	require.NoError(t, err)

	b, _ := makeBuilder()
	c, err := b.Build(def, makeSeries(2, 3))
	require.NoError(t, err)
	assert.Nil(t, c.Legend)
	assert.Nil(t, c.Title)
	assert.True(t, c.AutoTitleDeleted)

	text := c.SecondaryTextAxis()
	require.NotNil(t, text)
	assert.False(t, text.Delete)
	assert.Equal(t, "months", text.Title)
	assert.True(t, c.PlotArea.Axes.History.ShownSecondaryText)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		Input string
		Want  style.Color
		Fail  bool
	}{
		{Input: "accent3", Want: style.Scheme(style.Accent3)},
		{Input: "Dark1", Want: style.Scheme(style.Dark1)},
		{Input: "#4472c4", Want: style.RGB("4472C4")},
		{Input: "00FF00", Want: style.RGB("00FF00")},
		{Input: "blue", Fail: true},
		{Input: "#GGHHII", Fail: true},
	}
	for _, c := range tests {
		got, err := ParseColor(c.Input)
		if c.Fail {
			assert.ErrorIs(t, err, ErrValue, c.Input)
			continue
		}
		require.NoError(t, err, c.Input)
		assert.Equal(t, c.Want, got, c.Input)
	}
}

func TestDefinitionTheme(t *testing.T) {
	def, err := Load(strings.NewReader("type: pie\nrange: A1:B2\ntheme: [\"111111\"]"))
	require.NoError(t, err)

	theme := def.Theme()
	base := style.DefaultTheme()
	require.Len(t, theme, len(base))
	assert.Equal(t, "111111", theme[0])
	assert.Equal(t, base[1:], theme[1:])
}
