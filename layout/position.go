package layout

import (
	"strconv"
	"strings"
)

type Position struct {
	Sheet  string
	Line   int64
	Column int64

	AbsLine   bool
	AbsColumn bool
}

// ParsePosition parses a cell address. The address may be qualified by a sheet
// name (Sheet1!A1, 'My sheet'!A1) and carry absolute markers ($A$1).
func ParsePosition(addr string) Position {
	var pos Position
	pos.Sheet, addr = splitSheet(addr)
	if strings.HasPrefix(addr, "$") {
		pos.AbsColumn = true
		addr = addr[1:]
	}
	var offset int
	pos.Column, offset = ParseIndex(addr)
	addr = addr[offset:]
	if strings.HasPrefix(addr, "$") {
		pos.AbsLine = true
		addr = addr[1:]
	}
	pos.Line, _ = strconv.ParseInt(addr, 10, 64)
	return pos
}

func (p Position) Equal(other Position) bool {
	return p.Line == other.Line && p.Column == other.Column
}

func (p Position) Zero() bool {
	return p.Line == 0 && p.Column == 0
}

func (p Position) Addr() string {
	var buf strings.Builder
	if p.Sheet != "" {
		buf.WriteString(QuoteSheet(p.Sheet))
		buf.WriteByte('!')
	}
	buf.WriteString(p.cell())
	return buf.String()
}

func (p Position) String() string {
	return p.Addr()
}

// Absolute returns the same position with both markers set, the form used by
// chart references.
func (p Position) Absolute() Position {
	p.AbsLine = true
	p.AbsColumn = true
	return p
}

func (p Position) Offset(lines, columns int64) Position {
	p.Line += lines
	p.Column += columns
	return p
}

func (p Position) Update(other Position) Position {
	if p.Line == 0 {
		p.Line = other.Line
	}
	if p.Column == 0 {
		p.Column = other.Column
	}
	if p.Sheet == "" {
		p.Sheet = other.Sheet
	}
	return p
}

func (p Position) cell() string {
	var buf strings.Builder
	if p.AbsColumn {
		buf.WriteByte('$')
	}
	buf.WriteString(indexToString(p.Column))
	if p.AbsLine {
		buf.WriteByte('$')
	}
	buf.WriteString(strconv.FormatInt(p.Line, 10))
	return buf.String()
}

// QuoteSheet quotes a sheet name when it contains characters that are not
// allowed in an unquoted reference.
func QuoteSheet(name string) string {
	safe := true
	for i, c := range name {
		if c == '_' || c == '.' || isLetter(c) || (i > 0 && c >= '0' && c <= '9') {
			continue
		}
		safe = false
		break
	}
	if safe && name != "" {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

func splitSheet(addr string) (string, string) {
	ix := strings.LastIndexByte(addr, '!')
	if ix < 0 {
		return "", addr
	}
	sheet := addr[:ix]
	if n := len(sheet); n >= 2 && sheet[0] == '\'' && sheet[n-1] == '\'' {
		sheet = strings.ReplaceAll(sheet[1:n-1], "''", "'")
	}
	return sheet, addr[ix+1:]
}

func IsAddress(addr string) bool {
	_, addr = splitSheet(addr)
	addr = strings.ReplaceAll(addr, "$", "")
	size := len(addr)
	if size < 2 {
		return false
	}
	var offset int
	for offset < size {
		c := addr[offset]
		if c >= 'a' && c <= 'z' {
			c = c - 'a' + 'A'
		}
		if c < 'A' || c > 'Z' {
			break
		}
		offset++
	}
	if offset == 0 || offset >= size || addr[offset] == '0' {
		return false
	}
	for offset < size {
		c := addr[offset]
		if c < '0' || c > '9' {
			return false
		}
		offset++
	}
	return offset == size
}

func ParseIndex(str string) (int64, int) {
	if len(str) == 0 {
		return 0, 0
	}
	var (
		offset int
		index  int
	)
	for offset < len(str) && isLetter(rune(str[offset])) {
		delta := byte('A')
		if isLower(rune(str[offset])) {
			delta = 'a'
		}
		index = index*26 + int(str[offset]-delta+1)
		offset++
	}
	return int64(index), offset
}

func ColumnName(ix int64) string {
	return indexToString(ix)
}

func indexToString(ix int64) string {
	var result string
	for ix > 0 {
		ix--
		result = string(rune('A')+rune(ix%26)) + result
		ix /= 26
	}
	return result
}

func isLower(c rune) bool {
	return c >= 'a' && c <= 'z'
}

func isUpper(c rune) bool {
	return c >= 'A' && c <= 'Z'
}

func isLetter(c rune) bool {
	return isLower(c) || isUpper(c)
}
