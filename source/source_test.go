package source

import (
	"io"
	"testing"

	"charm.land/log/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/midbel/chartkit/chart"
	"github.com/midbel/chartkit/style"
)

// makeBook gives a workbook with an empty corner, two series (North, South)
// and three categories (Jan, Feb, Mar).
func makeBook(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	rows := [][]any{
		{nil, "North", "South"},
		{"Jan", 10, 20},
		{"Feb", 11, 21},
		{"Mar", 12, 22},
	}
	for i, row := range rows {
		for j, v := range row {
			if v == nil {
				continue
			}
			addr, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", addr, v))
		}
	}
	return f
}

func makeReader(f *excelize.File) *Reader {
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.DebugLevel})
	return NewReader(f, logger)
}

func pointValues(ref *chart.Reference) []string {
	var list []string
	for _, p := range ref.Points {
		list = append(list, p.Value)
	}
	return list
}

func TestReadColumns(t *testing.T) {
	rs := makeReader(makeBook(t))
	list, err := rs.Read("Sheet1!A1:C4", Options{Theme: style.DefaultTheme()})
	require.NoError(t, err)
	require.Len(t, list, 2)

	first := list[0]
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, "Sheet1!$B$1", first.Name.Formula())
	assert.Equal(t, []string{"North"}, pointValues(first.Name))
	assert.Equal(t, "Sheet1!$A$2:$A$4", first.Categories.Formula())
	assert.Equal(t, []string{"Jan", "Feb", "Mar"}, pointValues(first.Categories))
	assert.False(t, first.Categories.Numeric)
	require.NotNil(t, first.Categories.Header)
	assert.Equal(t, "", first.Categories.Header.Value)
	assert.Equal(t, "Sheet1!$B$2:$B$4", first.Values.Formula())
	assert.Equal(t, []string{"10", "11", "12"}, pointValues(first.Values))
	assert.True(t, first.Values.Numeric)
	assert.Equal(t, "General", first.Values.FormatCode)

	second := list[1]
	assert.Equal(t, 1, second.Index)
	assert.Equal(t, "Sheet1!$C$2:$C$4", second.Values.Formula())
	assert.Equal(t, []string{"20", "21", "22"}, pointValues(second.Values))

	second.Categories.Points[0].Value = "changed"
	assert.Equal(t, "Jan", first.Categories.Points[0].Value)
}

func TestReadRows(t *testing.T) {
	rs := makeReader(makeBook(t))
	list, err := rs.Read("Sheet1!A1:C4", Options{Orientation: RowsAsSeries})
	require.NoError(t, err)
	require.Len(t, list, 3)

	jan := list[0]
	assert.Equal(t, "Sheet1!$A$2", jan.Name.Formula())
	assert.Equal(t, "Sheet1!$B$1:$C$1", jan.Categories.Formula())
	assert.Equal(t, []string{"North", "South"}, pointValues(jan.Categories))
	assert.Equal(t, "Sheet1!$B$2:$C$2", jan.Values.Formula())
	assert.Equal(t, []string{"10", "20"}, pointValues(jan.Values))

	assert.Equal(t, []string{"Mar"}, pointValues(list[2].Name))
}

func TestReadDefaultSheet(t *testing.T) {
	rs := makeReader(makeBook(t))
	list, err := rs.Read("A1:C4", Options{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Sheet1!$B$2:$B$4", list[0].Values.Formula())
}

func TestReadHeaders(t *testing.T) {
	t.Run("no-categories", func(t *testing.T) {
		rs := makeReader(makeBook(t))
		list, err := rs.Read("Sheet1!B1:C4", Options{})
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Nil(t, list[0].Categories)
		assert.Equal(t, []string{"North"}, pointValues(list[0].Name))
		assert.Equal(t, "Sheet1!$B$2:$B$4", list[0].Values.Formula())
	})
	t.Run("no-names", func(t *testing.T) {
		rs := makeReader(makeBook(t))
		list, err := rs.Read("Sheet1!A2:C4", Options{})
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Nil(t, list[0].Name)
		assert.Nil(t, list[0].Categories.Header)
		assert.Equal(t, "Sheet1!$A$2:$A$4", list[0].Categories.Formula())
		assert.Equal(t, "Sheet1!$B$2:$B$4", list[0].Values.Formula())
	})
	t.Run("values-only", func(t *testing.T) {
		rs := makeReader(makeBook(t))
		list, err := rs.Read("Sheet1!B2:C4", Options{})
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Nil(t, list[0].Name)
		assert.Nil(t, list[0].Categories)
		assert.Equal(t, []string{"10", "11", "12"}, pointValues(list[0].Values))
	})
}

func TestReadHidden(t *testing.T) {
	t.Run("points", func(t *testing.T) {
		f := makeBook(t)
		require.NoError(t, f.SetRowVisible("Sheet1", 3, false))
		rs := makeReader(f)

		list, err := rs.Read("Sheet1!A1:C4", Options{})
		require.NoError(t, err)
		values := list[0].Values
		assert.Equal(t, 3, values.Count)
		assert.Equal(t, []chart.Point{{Index: 0, Value: "10"}, {Index: 2, Value: "12"}}, values.Points)

		list, err = rs.Read("Sheet1!A1:C4", Options{ShowHidden: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"10", "11", "12"}, pointValues(list[0].Values))
	})
	t.Run("series", func(t *testing.T) {
		f := makeBook(t)
		require.NoError(t, f.SetColVisible("Sheet1", "B", false))
		rs := makeReader(f)

		list, err := rs.Read("Sheet1!A1:C4", Options{})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, []string{"South"}, pointValues(list[0].Name))
		assert.Equal(t, 0, list[0].Index)

		list, err = rs.Read("Sheet1!A1:C4", Options{ShowHidden: true})
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})
}

func TestReadNumberFormat(t *testing.T) {
	f := makeBook(t)
	percent, err := f.NewStyle(&excelize.Style{NumFmt: 10})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle("Sheet1", "B2", "B4", percent))

	custom := "#,##0.0 \"u\""
	other, err := f.NewStyle(&excelize.Style{CustomNumFmt: &custom})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle("Sheet1", "C2", "C4", other))

	list, err := makeReader(f).Read("Sheet1!A1:C4", Options{})
	require.NoError(t, err)
	assert.Equal(t, "0.00%", list[0].Values.FormatCode)
	assert.Equal(t, custom, list[1].Values.FormatCode)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		Range string
		Err   error
	}{
		{Range: "", Err: ErrRange},
		{Range: "Missing!A1:C4", Err: ErrSheet},
	}
	rs := makeReader(makeBook(t))
	for _, c := range tests {
		_, err := rs.Read(c.Range, Options{})
		assert.ErrorIs(t, err, c.Err, c.Range)
	}

	f := makeBook(t)
	require.NoError(t, f.SetColVisible("Sheet1", "B:C", false))
	_, err := makeReader(f).Read("Sheet1!A1:C4", Options{})
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		Input string
		Want  Orientation
		Fail  bool
	}{
		{Input: "", Want: ColumnsAsSeries},
		{Input: "columns", Want: ColumnsAsSeries},
		{Input: "rows", Want: RowsAsSeries},
		{Input: "diagonal", Fail: true},
	}
	for _, c := range tests {
		got, err := ParseOrientation(c.Input)
		if c.Fail {
			assert.Error(t, err, c.Input)
			continue
		}
		require.NoError(t, err, c.Input)
		assert.Equal(t, c.Want, got, c.Input)
	}
}

func TestReadIntoChart(t *testing.T) {
	list, err := makeReader(makeBook(t)).Read("Sheet1!A1:C4", Options{Theme: style.DefaultTheme()})
	require.NoError(t, err)

	c := chart.New(list, style.DefaultTheme())
	c.SetChartType(chart.Bubble)
	series := c.Series()
	require.Len(t, series, 1)
	assert.Equal(t, []string{"", "Jan", "Feb", "Mar"}, pointValues(series[0].Categories))
	assert.Equal(t, "Sheet1!$A$1:$A$4", series[0].Categories.Formula())
	assert.Equal(t, "Sheet1!$C$1:$C$4", series[0].BubbleSize.Formula())
	assert.Equal(t, []string{"0", "20", "21", "22"}, pointValues(series[0].BubbleSize))
}
