// Package source reads the data series of a chart from a worksheet range.
package source

import (
	"errors"
	"fmt"
	"strconv"

	"charm.land/log/v2"
	"github.com/xuri/excelize/v2"

	"github.com/midbel/chartkit/chart"
	"github.com/midbel/chartkit/layout"
	"github.com/midbel/chartkit/style"
)

var (
	ErrRange = errors.New("invalid range")
	ErrSheet = errors.New("sheet not found")
	ErrEmpty = errors.New("no data series")
)

type Orientation int

const (
	ColumnsAsSeries Orientation = iota
	RowsAsSeries
)

func ParseOrientation(str string) (Orientation, error) {
	switch str {
	case "", "columns", "cols":
		return ColumnsAsSeries, nil
	case "rows":
		return RowsAsSeries, nil
	default:
		return ColumnsAsSeries, fmt.Errorf("%s: unknown orientation", str)
	}
}

type Options struct {
	Orientation Orientation
	ShowHidden  bool
	Theme       style.Theme
}

type Reader struct {
	file   *excelize.File
	logger *log.Logger
}

func NewReader(file *excelize.File, logger *log.Logger) *Reader {
	return &Reader{
		file:   file,
		logger: logger,
	}
}

// Read gives the series found in rng. The first line (or column when rows are
// series) holds the series names when one of its cells is text, the first
// column (or line) holds the categories under the same condition. An empty
// corner cell marks both.
func (r *Reader) Read(rng string, opts Options) ([]*chart.DataSeries, error) {
	rg := layout.RangeFromString(rng)
	if rg.Open() {
		return nil, fmt.Errorf("%w: %s", ErrRange, rng)
	}
	rg = rg.Normalize()
	if rg.Sheet() == "" {
		sheet := r.file.GetSheetName(0)
		rg.Starts.Sheet = sheet
		rg.Ends.Sheet = sheet
	}
	if ix, err := r.file.GetSheetIndex(rg.Sheet()); err != nil || ix < 0 {
		return nil, fmt.Errorf("%w: %s", ErrSheet, rg.Sheet())
	}
	g, err := r.load(rg, opts.Orientation)
	if err != nil {
		return nil, err
	}
	var (
		names, cats = g.headers()
		firstSeries int
		firstPoint  int
	)
	if cats {
		firstSeries++
	}
	if names {
		firstPoint++
	}
	r.debug("headers detected", "range", rg, "names", names, "categories", cats)

	var categories *chart.Reference
	if cats {
		categories = g.reference(0, firstPoint, opts.ShowHidden, false)
		if names {
			categories.Header = &chart.Point{Value: g.at(0, 0).value}
		}
	}
	var list []*chart.DataSeries
	for i := firstSeries; i < g.series; i++ {
		if g.hiddenSeries[i] && !opts.ShowHidden {
			r.debug("skip hidden series", "range", g.line(i))
			continue
		}
		ds := chart.NewSeries(len(list), opts.Theme)
		if names {
			ds.SetName(g.name(i))
		}
		ds.SetValues(g.reference(i, firstPoint, opts.ShowHidden, true))
		if categories != nil {
			ds.SetCategories(categories.Clone())
		}
		list = append(list, ds)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, rg)
	}
	r.debug("series read", "range", rg, "count", len(list))
	return list, nil
}

func (r *Reader) debug(msg string, kv ...any) {
	if r.logger == nil {
		return
	}
	r.logger.Debug(msg, kv...)
}

type cell struct {
	value  string
	format string
}

func (c cell) empty() bool {
	return c.value == ""
}

func (c cell) text() bool {
	if c.empty() {
		return false
	}
	_, err := strconv.ParseFloat(c.value, 64)
	return err != nil
}

// grid holds the cells of a range indexed by series then by point.
type grid struct {
	rg     *layout.Range
	orient Orientation
	series int
	points int
	cells  [][]cell

	hiddenSeries []bool
	hiddenPoints []bool
}

func (r *Reader) load(rg *layout.Range, orient Orientation) (*grid, error) {
	dim := rg.Dimension()
	if orient == RowsAsSeries {
		dim = dim.Transpose()
	}
	g := grid{
		rg:     rg,
		orient: orient,
		series: int(dim.Columns),
		points: int(dim.Lines),
	}
	g.cells = make([][]cell, g.series)
	g.hiddenSeries = make([]bool, g.series)
	g.hiddenPoints = make([]bool, g.points)

	sheet := rg.Sheet()
	for i := range g.series {
		g.cells[i] = make([]cell, g.points)
		for j := range g.points {
			pos := g.position(i, j)
			addr, err := excelize.CoordinatesToCellName(int(pos.Column), int(pos.Line))
			if err != nil {
				return nil, fmt.Errorf("%w: %s", ErrRange, pos)
			}
			c, err := r.readCell(sheet, addr)
			if err != nil {
				return nil, err
			}
			g.cells[i][j] = c
		}
	}
	for i := range g.series {
		hidden, err := r.hidden(sheet, g.line(i).Starts, orient == ColumnsAsSeries)
		if err != nil {
			return nil, err
		}
		g.hiddenSeries[i] = hidden
	}
	for j := range g.points {
		hidden, err := r.hidden(sheet, g.position(0, j), orient == RowsAsSeries)
		if err != nil {
			return nil, err
		}
		g.hiddenPoints[j] = hidden
	}
	return &g, nil
}

func (r *Reader) readCell(sheet, addr string) (cell, error) {
	var (
		c   cell
		err error
	)
	c.value, err = r.file.GetCellValue(sheet, addr, excelize.Options{RawCellValue: true})
	if err != nil {
		return c, err
	}
	ix, err := r.file.GetCellStyle(sheet, addr)
	if err != nil {
		return c, err
	}
	c.format = r.numberFormat(ix)
	return c, nil
}

func (r *Reader) hidden(sheet string, pos layout.Position, column bool) (bool, error) {
	var (
		visible bool
		err     error
	)
	if column {
		visible, err = r.file.GetColVisible(sheet, layout.ColumnName(pos.Column))
	} else {
		// rows past the last stored one are reported hidden, they are empty too
		visible, err = r.file.GetRowVisible(sheet, int(pos.Line))
	}
	return !visible, err
}

func (r *Reader) numberFormat(ix int) string {
	st, err := r.file.GetStyle(ix)
	if err != nil || st == nil {
		return general
	}
	if st.CustomNumFmt != nil && *st.CustomNumFmt != "" {
		return *st.CustomNumFmt
	}
	if f, ok := builtinFormats[st.NumFmt]; ok {
		return f
	}
	return general
}

const general = "General"

var builtinFormats = map[int]string{
	0:  general,
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	9:  "0%",
	10: "0.00%",
	11: "0.00E+00",
	12: "# ?/?",
	13: "# ??/??",
	14: "mm-dd-yy",
	15: "d-mmm-yy",
	16: "d-mmm",
	17: "mmm-yy",
	18: "h:mm AM/PM",
	19: "h:mm:ss AM/PM",
	20: "h:mm",
	21: "h:mm:ss",
	22: "m/d/yy h:mm",
	37: "#,##0 ;(#,##0)",
	38: "#,##0 ;[Red](#,##0)",
	39: "#,##0.00;(#,##0.00)",
	40: "#,##0.00;[Red](#,##0.00)",
	45: "mm:ss",
	46: "[h]:mm:ss",
	47: "mmss.0",
	48: "##0.0E+0",
	49: "@",
}

func (g *grid) at(series, point int) cell {
	return g.cells[series][point]
}

func (g *grid) position(series, point int) layout.Position {
	pos := g.rg.Starts
	if g.orient == RowsAsSeries {
		return pos.Offset(int64(series), int64(point))
	}
	return pos.Offset(int64(point), int64(series))
}

// line gives the whole range of a series.
func (g *grid) line(series int) *layout.Range {
	if g.orient == RowsAsSeries {
		return g.rg.Line(int64(series))
	}
	return g.rg.Column(int64(series))
}

func (g *grid) name(series int) *chart.Reference {
	pos := g.position(series, 0)
	return chart.NewReference(layout.NewRange(pos, pos), false, g.at(series, 0).value)
}

func (g *grid) headers() (bool, bool) {
	if g.series > 1 && g.points > 1 && g.at(0, 0).empty() {
		return true, true
	}
	var names, cats bool
	for i := 1; i < g.series && !names; i++ {
		names = g.at(i, 0).text()
	}
	for j := 1; j < g.points && !cats; j++ {
		cats = g.at(0, j).text()
	}
	switch {
	case g.series == 1:
		cats = false
		names = g.points > 1 && g.at(0, 0).text()
	case g.points == 1:
		names = false
	}
	return names, cats
}

// reference gives the cells of a series starting at the point from. Values
// of hidden points are left out of the cache unless hidden is set.
func (g *grid) reference(series, from int, hidden, numeric bool) *chart.Reference {
	var (
		rg     = g.line(series)
		values []string
		number = true
		format string
	)
	if g.orient == RowsAsSeries {
		rg = rg.Shrink(0, int64(from))
	} else {
		rg = rg.Shrink(int64(from), 0)
	}
	for j := from; j < g.points; j++ {
		c := g.at(series, j)
		if g.hiddenPoints[j] && !hidden {
			c.value = ""
		}
		if c.text() {
			if numeric {
				c.value = ""
			}
			number = false
		}
		if format == "" && !c.empty() {
			format = c.format
		}
		values = append(values, c.value)
	}
	if !numeric {
		numeric = number && len(values) > 0 && !allEmpty(values)
	}
	ref := chart.NewReference(rg, numeric, values...)
	if numeric && format != "" {
		ref.FormatCode = format
	}
	return ref
}

func allEmpty(values []string) bool {
	for _, v := range values {
		if v != "" {
			return false
		}
	}
	return true
}
