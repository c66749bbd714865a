// Package ooxml implements just enough of Open Packaging Conventions to read,
// modify and write back WordprocessingML packages. Parts are kept as raw
// bytes until somebody asks for their XML, so untouched parts are written
// back exactly as they were read.
package ooxml

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	fixzip "github.com/hidez8891/zip"
	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"golang.org/x/net/html/charset"

	"docfmt/archive"
)

type part struct {
	data []byte
	doc  *etree.Document
}

// Package is an opened OPC package.
type Package struct {
	parts map[string]*part
	// order in which parts were stored in the source, new parts are
	// appended
	order []string
	types *etree.Document
}

// Open reads package from file.
func Open(path string) (*Package, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open package (%s): %w", path, err)
	}
	defer r.Close()
	return read(&r.Reader)
}

// Read reads package from memory.
func Read(r io.ReaderAt, size int64) (*Package, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("unable to open package: %w", err)
	}
	return read(zr)
}

func read(zr *zip.Reader) (*Package, error) {
	p := &Package{parts: make(map[string]*part)}

	err := archive.Walk(zr, "", func(name string, f *zip.File) error {
		data, err := archive.ReadFile(f)
		if err != nil {
			return err
		}
		p.parts[name] = &part{data: data}
		p.order = append(p.order, name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to read package: %w", err)
	}

	if p.types, err = p.XML(ContentTypesPart); err != nil {
		return nil, fmt.Errorf("package has no content types: %w", err)
	}
	return p, nil
}

// New creates empty package with content types part only.
func New() *Package {
	p := &Package{parts: make(map[string]*part)}

	p.types = NewXMLDocument()
	types := p.types.CreateElement("Types")
	types.CreateAttr("xmlns", NSContentTypes)
	p.parts[ContentTypesPart] = &part{doc: p.types}
	p.order = append(p.order, ContentTypesPart)

	p.EnsureDefault("rels", TypeRelationships)
	p.EnsureDefault("xml", TypeXML)
	return p
}

// NewXMLDocument returns empty document with standard XML declaration.
func NewXMLDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	return doc
}

// Has reports if part exists.
func (p *Package) Has(name string) bool {
	_, ok := p.parts[name]
	return ok
}

// Names returns all part names in natural order.
func (p *Package) Names() []string {
	names := make([]string, 0, len(p.parts))
	for name := range p.parts {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		}
		return 0
	})
	return names
}

// XML returns parsed part. Document is parsed once, all modifications are
// made on returned tree directly and will be saved with the package.
func (p *Package) XML(name string) (*etree.Document, error) {
	pt, ok := p.parts[name]
	if !ok {
		return nil, fmt.Errorf("part %q does not exist", name)
	}
	if pt.doc != nil {
		return pt.doc, nil
	}

	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
	}
	if err := doc.ReadFromBytes(pt.data); err != nil {
		return nil, fmt.Errorf("unable to parse part %q: %w", name, err)
	}
	normalizeDeclaration(doc)

	pt.doc, pt.data = doc, nil
	return doc, nil
}

// normalizeDeclaration makes XML declaration consistent with the way part
// is going to be written back: always UTF-8.
func normalizeDeclaration(doc *etree.Document) {
	for _, tok := range doc.Child {
		pi, ok := tok.(*etree.ProcInst)
		if !ok || pi.Target != "xml" {
			continue
		}
		if !strings.Contains(strings.ToLower(pi.Inst), "utf-8") && strings.Contains(pi.Inst, "encoding") {
			pi.Inst = `version="1.0" encoding="UTF-8" standalone="yes"`
		}
		return
	}
}

// PutXML creates or replaces part. When contentType is not empty Override
// entry is registered for the part.
func (p *Package) PutXML(name, contentType string, doc *etree.Document) {
	if _, exists := p.parts[name]; !exists {
		p.order = append(p.order, name)
	}
	p.parts[name] = &part{doc: doc}
	if len(contentType) > 0 {
		p.setOverride(name, contentType)
	}
}

// Remove deletes part together with its relationships part and content type
// override.
func (p *Package) Remove(name string) {
	if name == ContentTypesPart {
		return
	}
	delete(p.parts, name)
	p.order = slices.DeleteFunc(p.order, func(n string) bool { return n == name })
	p.removeOverride(name)

	if rels := RelsPartName(name); p.Has(rels) {
		p.Remove(rels)
	}
}

// ContentType returns content type of the part either from Override or
// Default entries.
func (p *Package) ContentType(name string) string {
	root := p.types.Root()
	for _, o := range root.SelectElements("Override") {
		if strings.EqualFold(o.SelectAttrValue("PartName", ""), "/"+name) {
			return o.SelectAttrValue("ContentType", "")
		}
	}
	ext := strings.TrimPrefix(path.Ext(name), ".")
	for _, d := range root.SelectElements("Default") {
		if strings.EqualFold(d.SelectAttrValue("Extension", ""), ext) {
			return d.SelectAttrValue("ContentType", "")
		}
	}
	return ""
}

// PartsOfType returns names of all parts with given content type.
func (p *Package) PartsOfType(contentType string) []string {
	var res []string
	for _, name := range p.Names() {
		if p.ContentType(name) == contentType {
			res = append(res, name)
		}
	}
	return res
}

// EnsureDefault registers Default content type for extension if it is not
// known yet.
func (p *Package) EnsureDefault(ext, contentType string) {
	root := p.types.Root()
	for _, d := range root.SelectElements("Default") {
		if strings.EqualFold(d.SelectAttrValue("Extension", ""), ext) {
			return
		}
	}
	d := etree.NewElement("Default")
	d.CreateAttr("Extension", ext)
	d.CreateAttr("ContentType", contentType)
	// Defaults go before Overrides
	if first := root.SelectElement("Override"); first != nil {
		root.InsertChildAt(first.Index(), d)
		return
	}
	root.AddChild(d)
}

func (p *Package) setOverride(name, contentType string) {
	root := p.types.Root()
	for _, o := range root.SelectElements("Override") {
		if strings.EqualFold(o.SelectAttrValue("PartName", ""), "/"+name) {
			o.CreateAttr("ContentType", contentType)
			return
		}
	}
	o := root.CreateElement("Override")
	o.CreateAttr("PartName", "/"+name)
	o.CreateAttr("ContentType", contentType)
}

func (p *Package) removeOverride(name string) {
	root := p.types.Root()
	for _, o := range root.SelectElements("Override") {
		if strings.EqualFold(o.SelectAttrValue("PartName", ""), "/"+name) {
			root.RemoveChild(o)
		}
	}
}

// NextName returns first unused part name of the form dir/baseN.ext where N
// is larger than any number already used with the same base.
func (p *Package) NextName(dir, base, ext string) string {
	last := 0
	prefix := path.Join(dir, base)
	for _, name := range p.Names() {
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ext) {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, prefix), ext)); err == nil && n > last {
			last = n
		}
	}
	return fmt.Sprintf("%s%d%s", prefix, last+1, ext)
}

// Write serializes package. Content types always go first, then parts in
// the order they were read, then new parts.
func (p *Package) Write(w io.Writer) (err error) {
	zw := zip.NewWriter(w)
	defer func() {
		err = multierr.Append(err, zw.Close())
	}()

	names := append([]string{ContentTypesPart}, slices.DeleteFunc(slices.Clone(p.order), func(n string) bool {
		return n == ContentTypesPart
	})...)
	for _, name := range names {
		data, err := p.bytes(name)
		if err != nil {
			return err
		}
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
		if err != nil {
			return fmt.Errorf("unable to create part %q: %w", name, err)
		}
		if _, err := fw.Write(data); err != nil {
			return fmt.Errorf("unable to write part %q: %w", name, err)
		}
	}
	return nil
}

func (p *Package) bytes(name string) ([]byte, error) {
	pt := p.parts[name]
	if pt.doc == nil {
		return pt.data, nil
	}
	data, err := pt.doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("unable to serialize part %q: %w", name, err)
	}
	return data, nil
}

// Bytes returns serialized package.
func (p *Package) Bytes() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := p.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes package to temporary file next to destination and renames it
// when everything is written, so failed save never leaves partial output.
// When fixZip is requested package is rewritten without data descriptors.
func (p *Package) Save(to string, fixZip bool) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(to), "."+filepath.Base(to)+".*.tmp")
	if err != nil {
		return fmt.Errorf("unable to create temporary file: %w", err)
	}
	written := tmp.Name()
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
			os.Remove(written)
		}
	}()

	if err = p.Write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("unable to close temporary file: %w", err)
	}

	if fixZip {
		written = tmp.Name() + ".fix"
		if err = copyZipWithoutDataDescriptors(tmp.Name(), written); err != nil {
			return err
		}
		os.Remove(tmp.Name())
	}

	if err = os.Rename(written, to); err != nil {
		return fmt.Errorf("unable to move result to destination (%s): %w", to, err)
	}
	return nil
}

func copyZipWithoutDataDescriptors(from, to string) (err error) {
	out, err := os.Create(to)
	if err != nil {
		return fmt.Errorf("unable to create target file (%s): %w", to, err)
	}
	defer func() {
		err = multierr.Append(err, out.Close())
	}()

	r, err := fixzip.OpenReader(from)
	if err != nil {
		return fmt.Errorf("unable to read archive file (%s): %w", from, err)
	}
	defer r.Close()

	w := fixzip.NewWriter(out)
	defer func() {
		err = multierr.Append(err, w.Close())
	}()

	for _, file := range r.File {
		// unset data descriptor flag.
		file.Flags &= ^fixzip.FlagDataDescriptor

		if err := w.CopyFile(file); err != nil {
			return fmt.Errorf("unable to write target file (%s): %w", to, err)
		}
	}
	return nil
}
