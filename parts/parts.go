// Package parts keeps track of the parts a chart refers to (the pictures of
// picture fills) and of the relationships pointing to them.
package parts

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const startIx = 1000

const (
	relationsNs  = "http://schemas.openxmlformats.org/package/2006/relationships"
	typeImageUrl = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
)

var ErrImage = errors.New("unsupported image")

var contentTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".emf":  "image/x-emf",
	".wmf":  "image/x-wmf",
}

type Part struct {
	Id          string
	Name        string
	Source      string
	ContentType string
}

type xmlRelations struct {
	XMLName   xml.Name      `xml:"Relationships"`
	Xmlns     string        `xml:"xmlns,attr"`
	Relations []xmlRelation `xml:"Relationship"`
}

type xmlRelation struct {
	XMLName xml.Name `xml:"Relationship"`
	Target  string   `xml:",attr"`
	Id      string   `xml:",attr"`
	Type    string   `xml:",attr"`
}

// Registry hands out part names and relationship ids for the files added to
// it. Files are looked up in fsys.
type Registry struct {
	fsys fs.FS
	base string

	lastUsedId int
	parts      []Part
	sources    map[string]int
}

func NewRegistry(fsys fs.FS) *Registry {
	return &Registry{
		fsys:       fsys,
		base:       "../media",
		lastUsedId: startIx,
		sources:    make(map[string]int),
	}
}

// AddImage registers file and gives the id of the relationship to use to
// reference it. Adding the same file twice gives the same id.
func (r *Registry) AddImage(file string) (string, error) {
	file = path.Clean(filepath.ToSlash(file))
	if ix, ok := r.sources[file]; ok {
		return r.parts[ix].Id, nil
	}
	ext := strings.ToLower(path.Ext(file))
	ct, ok := contentTypes[ext]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrImage, file)
	}
	if _, err := fs.Stat(r.fsys, file); err != nil {
		return "", fmt.Errorf("%w: %s", err, file)
	}
	p := Part{
		Id:          r.createFileID(),
		Source:      file,
		ContentType: ct,
	}
	p.Name = fmt.Sprintf("image%d%s", r.getFileIndex(), ext)
	r.sources[file] = len(r.parts)
	r.parts = append(r.parts, p)
	return p.Id, nil
}

func (r *Registry) Parts() []Part {
	return append([]Part(nil), r.parts...)
}

func (r *Registry) Len() int {
	return len(r.parts)
}

// Encode writes the relationship part of the chart.
func (r *Registry) Encode(w io.Writer) error {
	root := xmlRelations{
		Xmlns: relationsNs,
	}
	for _, p := range r.parts {
		rx := xmlRelation{
			Id:     p.Id,
			Type:   typeImageUrl,
			Target: r.createTarget(p.Name),
		}
		root.Relations = append(root.Relations, rx)
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	if err := xml.NewEncoder(w).Encode(&root); err != nil {
		return fmt.Errorf("%w: fail to write relations", err)
	}
	return nil
}

// Export copies the registered files into dir under their part name.
func (r *Registry) Export(dir string) error {
	if len(r.parts) == 0 {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, p := range r.parts {
		buf, err := fs.ReadFile(r.fsys, p.Source)
		if err != nil {
			return fmt.Errorf("%w: %s", err, p.Source)
		}
		if err := os.WriteFile(filepath.Join(dir, p.Name), buf, 0o644); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) createTarget(parts ...string) string {
	parts = append([]string{r.base}, parts...)
	return strings.Join(parts, "/")
}

func (r *Registry) createFileID() string {
	r.lastUsedId++
	return fmt.Sprintf("rId%d", r.lastUsedId)
}

func (r *Registry) getFileIndex() int {
	return r.lastUsedId - startIx
}
