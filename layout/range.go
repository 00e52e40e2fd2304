package layout

import (
	"fmt"
	"strings"
)

type Range struct {
	Starts Position
	Ends   Position
}

func NewRange(starts, ends Position) *Range {
	if ends.Sheet == "" {
		ends.Sheet = starts.Sheet
	}
	return &Range{
		Starts: starts,
		Ends:   ends,
	}
}

func RangeFromString(str string) *Range {
	sheet, rest := splitSheet(strings.TrimSpace(str))
	fst, lst, ok := strings.Cut(rest, ":")
	var (
		starts Position
		ends   Position
	)
	starts = ParsePosition(fst)
	if ok {
		ends = ParsePosition(lst)
	} else {
		ends = starts
	}
	starts.Sheet = sheet
	ends.Sheet = sheet
	return NewRange(starts, ends)
}

func (r *Range) Sheet() string {
	return r.Starts.Sheet
}

func (r *Range) Open() bool {
	return r.Starts.Zero() || r.Ends.Zero()
}

func (r *Range) Contains(pos Position) bool {
	ok := pos.Line >= r.Starts.Line && pos.Line <= r.Ends.Line
	if !ok {
		return false
	}
	return pos.Column >= r.Starts.Column && pos.Column <= r.Ends.Column
}

// Lines gives the number of rows covered by the range, bounds included.
func (r *Range) Lines() int64 {
	return r.Ends.Line - r.Starts.Line + 1
}

// Columns gives the number of columns covered by the range, bounds included.
func (r *Range) Columns() int64 {
	return r.Ends.Column - r.Starts.Column + 1
}

func (r *Range) Dimension() Dimension {
	return Dimension{
		Lines:   r.Lines(),
		Columns: r.Columns(),
	}
}

func (r *Range) String() string {
	if r.Starts.Equal(r.Ends) {
		return r.Starts.Addr()
	}
	ends := r.Ends
	ends.Sheet = ""
	return fmt.Sprintf("%s:%s", r.Starts.Addr(), ends.Addr())
}

// Formula gives the text of the range as used in a chart reference: sheet
// qualified with absolute markers everywhere.
func (r *Range) Formula() string {
	x := NewRange(r.Starts.Absolute(), r.Ends.Absolute())
	return x.String()
}

func (r *Range) Normalize() *Range {
	x := NewRange(r.Starts, r.Ends)
	x.Starts.Line = min(r.Starts.Line, r.Ends.Line)
	x.Starts.Column = min(r.Starts.Column, r.Ends.Column)
	x.Ends.Line = max(r.Starts.Line, r.Ends.Line)
	x.Ends.Column = max(r.Starts.Column, r.Ends.Column)
	return x
}

// Line gives the sub range made of the nth line of r (0 based).
func (r *Range) Line(n int64) *Range {
	starts := r.Starts
	starts.Line += n
	ends := r.Ends
	ends.Line = starts.Line
	return NewRange(starts, ends)
}

// Column gives the sub range made of the nth column of r (0 based).
func (r *Range) Column(n int64) *Range {
	starts := r.Starts
	starts.Column += n
	ends := r.Ends
	ends.Column = starts.Column
	return NewRange(starts, ends)
}

// Shrink removes lines and columns from the top left corner of r.
func (r *Range) Shrink(lines, columns int64) *Range {
	x := NewRange(r.Starts, r.Ends)
	x.Starts.Line += lines
	x.Starts.Column += columns
	return x
}

// ShiftStart moves the first line of the range by n lines, keeping its end.
func (r *Range) ShiftStart(n int64) *Range {
	return r.Shrink(n, 0)
}

// Cells returns every position of the range, line by line.
func (r *Range) Cells() []Position {
	var list []Position
	for i := r.Starts.Line; i <= r.Ends.Line; i++ {
		for j := r.Starts.Column; j <= r.Ends.Column; j++ {
			pos := Position{
				Sheet:  r.Starts.Sheet,
				Line:   i,
				Column: j,
			}
			list = append(list, pos)
		}
	}
	return list
}
