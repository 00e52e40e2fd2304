package dom

import (
	"bytes"
	"encoding/xml"
	"slices"
	"strings"
	"testing"
)

func TestAppendSkipsNil(t *testing.T) {
	root := New("c:plotArea", New("c:layout"), nil, Val("c:gapWidth", 150))
	want := []string{"c:layout", "c:gapWidth"}
	if got := root.Names(); !slices.Equal(got, want) {
		t.Errorf("children mismatched! want %v - got %v", want, got)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		Input any
		Want  string
	}{
		{Input: true, Want: "1"},
		{Input: false, Want: "0"},
		{Input: 42, Want: "42"},
		{Input: int64(-7), Want: "-7"},
		{Input: 0.25, Want: "0.25"},
		{Input: "col", Want: "col"},
	}
	for _, c := range tests {
		if got := Format(c.Input); got != c.Want {
			t.Errorf("%v: want %s - got %s", c.Input, c.Want, got)
		}
	}
}

func TestEncode(t *testing.T) {
	root := New("c:chartSpace").Attr("xmlns:c", "urn:chart")
	root.Append(New("c:chart", Val("c:autoTitleDeleted", false), Text("c:f", "Sheet1!$A$1")))

	var buf bytes.Buffer
	if err := Encode(&buf, root); err != nil {
		t.Fatalf("fail to encode tree: %s", err)
	}
	str := buf.String()
	if !strings.HasPrefix(str, xml.Header) {
		t.Errorf("xml header missing")
	}
	for _, want := range []string{`<c:chartSpace xmlns:c="urn:chart">`, `<c:autoTitleDeleted val="0">`, `<c:f>Sheet1!$A$1</c:f>`} {
		if !strings.Contains(str, want) {
			t.Errorf("%s not found in %s", want, str)
		}
	}
}

func TestPathAndAttr(t *testing.T) {
	root := New("a", New("b", Val("c", 1)))
	leaf := root.Path("b", "c")
	if leaf == nil {
		t.Fatalf("path not found")
	}
	leaf.Attr("val", "2")
	if got := leaf.Get("val"); got != "2" {
		t.Errorf("attribute not replaced: got %s", got)
	}
	if len(leaf.Attrs) != 1 {
		t.Errorf("attribute duplicated")
	}
	if root.Path("b", "x") != nil {
		t.Errorf("unexpected element found")
	}
}
