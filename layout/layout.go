package layout

// Dimension is the shape of a range: Columns hold the series of a chart read
// column wise, Lines the points of each series.
type Dimension struct {
	Lines   int64
	Columns int64
}

// Transpose swaps lines and columns. Used when a range is read with rows as
// series instead of columns.
func (d Dimension) Transpose() Dimension {
	return Dimension{
		Lines:   d.Columns,
		Columns: d.Lines,
	}
}
