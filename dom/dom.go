// Package dom holds the ordered element tree produced by the chart emitters.
//
// Element names are written verbatim, namespace prefix included (c:barChart,
// a:solidFill), so the tree serializes to the exact text a spreadsheet
// application expects.
package dom

import (
	"encoding/xml"
	"fmt"
	"io"
	"slices"
	"strconv"
)

type Attr struct {
	Name  string
	Value string
}

type Element struct {
	Name     string
	Attrs    []Attr
	Text     string
	Children []*Element
}

func New(name string, children ...*Element) *Element {
	e := Element{
		Name: name,
	}
	return e.Append(children...)
}

// Val creates an element carrying its value in a val attribute, the common
// shape of chart leaves (<c:gapWidth val="150"/>).
func Val(name string, value any) *Element {
	e := New(name)
	return e.Attr("val", Format(value))
}

func Text(name, text string) *Element {
	e := New(name)
	e.Text = text
	return e
}

func Format(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "1"
		}
		return "0"
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func (e *Element) Attr(name, value string) *Element {
	ix := slices.IndexFunc(e.Attrs, func(a Attr) bool {
		return a.Name == name
	})
	if ix >= 0 {
		e.Attrs[ix].Value = value
		return e
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

// Append adds children in order. Nil children are skipped so emitters can
// chain optional fragments.
func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		if c == nil {
			continue
		}
		e.Children = append(e.Children, c)
	}
	return e
}

func (e *Element) Get(name string) string {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

func (e *Element) Find(name string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (e *Element) FindAll(name string) []*Element {
	var list []*Element
	for _, c := range e.Children {
		if c.Name == name {
			list = append(list, c)
		}
	}
	return list
}

// Path follows a list of child names from e.
func (e *Element) Path(names ...string) *Element {
	curr := e
	for _, n := range names {
		if curr = curr.Find(n); curr == nil {
			break
		}
	}
	return curr
}

func (e *Element) Names() []string {
	var list []string
	for _, c := range e.Children {
		list = append(list, c.Name)
	}
	return list
}

// Walk visits e and its descendants depth first. Returning false from fn
// stops the descent below the current element.
func (e *Element) Walk(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	for _, c := range e.Children {
		c.Walk(fn)
	}
}

func (e *Element) MarshalXML(enc *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{
		Name: xml.Name{Local: e.Name},
	}
	for _, a := range e.Attrs {
		attr := xml.Attr{
			Name:  xml.Name{Local: a.Name},
			Value: a.Value,
		}
		start.Attr = append(start.Attr, attr)
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if e.Text != "" {
		if err := enc.EncodeToken(xml.CharData(e.Text)); err != nil {
			return err
		}
	}
	for _, c := range e.Children {
		if err := enc.Encode(c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// Encode writes the XML declaration followed by root.
func Encode(w io.Writer, root *Element) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("%w: fail to encode %s", err, root.Name)
	}
	return enc.Flush()
}
