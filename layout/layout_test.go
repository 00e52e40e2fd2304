package layout

import (
	"testing"
)

func TestParsePosition(t *testing.T) {
	tests := []struct {
		Input string
		Want  Position
	}{
		{
			Input: "A1",
			Want:  Position{Line: 1, Column: 1},
		},
		{
			Input: "$B$12",
			Want:  Position{Line: 12, Column: 2, AbsLine: true, AbsColumn: true},
		},
		{
			Input: "Sheet1!AA3",
			Want:  Position{Sheet: "Sheet1", Line: 3, Column: 27},
		},
		{
			Input: "'My sheet'!$C4",
			Want:  Position{Sheet: "My sheet", Line: 4, Column: 3, AbsColumn: true},
		},
		{
			Input: "'it''s'!D$9",
			Want:  Position{Sheet: "it's", Line: 9, Column: 4, AbsLine: true},
		},
	}
	for _, c := range tests {
		got := ParsePosition(c.Input)
		if got != c.Want {
			t.Errorf("%s: position mismatched! want %+v - got %+v", c.Input, c.Want, got)
		}
	}
}

func TestPositionAddr(t *testing.T) {
	tests := []struct {
		Input Position
		Want  string
	}{
		{
			Input: Position{Line: 1, Column: 1},
			Want:  "A1",
		},
		{
			Input: Position{Sheet: "Data", Line: 10, Column: 28}.Absolute(),
			Want:  "Data!$AB$10",
		},
		{
			Input: Position{Sheet: "Q1 sales", Line: 2, Column: 3},
			Want:  "'Q1 sales'!C2",
		},
		{
			Input: Position{Sheet: "2024", Line: 2, Column: 3},
			Want:  "'2024'!C2",
		},
	}
	for _, c := range tests {
		got := c.Input.Addr()
		if got != c.Want {
			t.Errorf("address mismatched! want %s - got %s", c.Want, got)
		}
	}
}

func TestRangeFormula(t *testing.T) {
	tests := []struct {
		Input string
		Want  string
	}{
		{
			Input: "Sheet1!A2:A5",
			Want:  "Sheet1!$A$2:$A$5",
		},
		{
			Input: "Sheet1!B1",
			Want:  "Sheet1!$B$1",
		},
		{
			Input: "'My sheet'!$B$1:$D$7",
			Want:  "'My sheet'!$B$1:$D$7",
		},
	}
	for _, c := range tests {
		got := RangeFromString(c.Input).Formula()
		if got != c.Want {
			t.Errorf("%s: formula mismatched! want %s - got %s", c.Input, c.Want, got)
		}
	}
}

func TestRangeShape(t *testing.T) {
	rg := RangeFromString("Sheet1!B2:D6")
	if rg.Lines() != 5 || rg.Columns() != 3 {
		t.Fatalf("dimension mismatched! want 5x3 - got %dx%d", rg.Lines(), rg.Columns())
	}
	dim := rg.Dimension().Transpose()
	if dim.Lines != 3 || dim.Columns != 5 {
		t.Errorf("transpose mismatched! want 3x5 - got %dx%d", dim.Lines, dim.Columns)
	}
	col := rg.Column(1)
	if got := col.Formula(); got != "Sheet1!$C$2:$C$6" {
		t.Errorf("column mismatched! got %s", got)
	}
	line := rg.Line(0)
	if got := line.Formula(); got != "Sheet1!$B$2:$D$2" {
		t.Errorf("line mismatched! got %s", got)
	}
	shift := col.ShiftStart(1)
	if got := shift.Formula(); got != "Sheet1!$C$3:$C$6" {
		t.Errorf("shift mismatched! got %s", got)
	}
	back := shift.ShiftStart(-1)
	if got := back.Formula(); got != col.Formula() {
		t.Errorf("shift back mismatched! want %s - got %s", col.Formula(), got)
	}
	if n := len(rg.Cells()); n != 15 {
		t.Errorf("cells count mismatched! want 15 - got %d", n)
	}
}

func TestIsAddress(t *testing.T) {
	tests := []struct {
		Input string
		Want  bool
	}{
		{Input: "A1", Want: true},
		{Input: "$A$1", Want: true},
		{Input: "Sheet1!ZZ100", Want: true},
		{Input: "A0", Want: false},
		{Input: "11", Want: false},
		{Input: "A", Want: false},
	}
	for _, c := range tests {
		if got := IsAddress(c.Input); got != c.Want {
			t.Errorf("%s: want %t - got %t", c.Input, c.Want, got)
		}
	}
}
