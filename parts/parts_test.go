package parts

import (
	"bytes"
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"img/logo.png":   {Data: []byte("png")},
		"img/photo.JPEG": {Data: []byte("jpeg")},
		"notes.txt":      {Data: []byte("text")},
	}
}

func TestAddImage(t *testing.T) {
	reg := NewRegistry(testFS())
	tests := []struct {
		File string
		Id   string
		Err  error
	}{
		{File: "img/logo.png", Id: "rId1001"},
		{File: "img/photo.JPEG", Id: "rId1002"},
		{File: "img/../img/logo.png", Id: "rId1001"},
		{File: "notes.txt", Err: ErrImage},
		{File: "img/missing.png", Err: fs.ErrNotExist},
	}
	for _, c := range tests {
		id, err := reg.AddImage(c.File)
		if c.Err != nil {
			if !errors.Is(err, c.Err) {
				t.Errorf("%s: expected error %s - got %v", c.File, c.Err, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %s", c.File, err)
			continue
		}
		if id != c.Id {
			t.Errorf("%s: id mismatched: want %s - got %s", c.File, c.Id, id)
		}
	}
	if reg.Len() != 2 {
		t.Fatalf("parts count mismatched: want %d - got %d", 2, reg.Len())
	}
	parts := reg.Parts()
	if parts[1].Name != "image2.jpeg" || parts[1].ContentType != "image/jpeg" {
		t.Errorf("part mismatched: got %+v", parts[1])
	}
}

func TestEncode(t *testing.T) {
	reg := NewRegistry(testFS())
	if _, err := reg.AddImage("img/logo.png"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	var buf bytes.Buffer
	if err := reg.Encode(&buf); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	str := buf.String()
	for _, want := range []string{
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`,
		`Target="../media/image1.png"`,
		`Id="rId1001"`,
		`relationships/image"`,
	} {
		if !strings.Contains(str, want) {
			t.Errorf("relations: %s not found in %s", want, str)
		}
	}
}
