package wml

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"docfmt/ooxml"
)

// PartKind distinguishes headers from footers.
type PartKind int

const (
	Header PartKind = iota
	Footer
)

func (k PartKind) String() string {
	if k == Footer {
		return "footer"
	}
	return "header"
}

func (k PartKind) referenceTag() string { return k.String() + "Reference" }

func (k PartKind) rootTag() string {
	if k == Footer {
		return "w:ftr"
	}
	return "w:hdr"
}

func (k PartKind) relType() string {
	if k == Footer {
		return ooxml.RelFooter
	}
	return ooxml.RelHeader
}

func (k PartKind) contentType() string {
	if k == Footer {
		return ooxml.TypeFooter
	}
	return ooxml.TypeHeader
}

// HdrFtrType is the page kind header or footer is used for.
type HdrFtrType string

const (
	HdrFtrDefault HdrFtrType = "default"
	HdrFtrEven    HdrFtrType = "even"
	HdrFtrFirst   HdrFtrType = "first"
)

// HdrFtrPart is a header or footer part.
type HdrFtrPart struct {
	Name string
	RID  string
	root *etree.Element
}

// Root returns w:hdr or w:ftr element.
func (h *HdrFtrPart) Root() *etree.Element {
	return h.root
}

// Reset removes all content of the part.
func (h *HdrFtrPart) Reset() {
	for _, c := range h.root.ChildElements() {
		h.root.RemoveChild(c)
	}
}

// AddParagraph appends paragraph.
func (h *HdrFtrPart) AddParagraph(p *etree.Element) {
	h.root.AddChild(p)
}

// Paragraphs returns paragraphs of the part.
func (h *HdrFtrPart) Paragraphs() []*etree.Element {
	var res []*etree.Element
	for _, c := range h.root.ChildElements() {
		if isW(c, "p") {
			res = append(res, c)
		}
	}
	return res
}

// Text returns text of all paragraphs separated by new lines.
func (h *HdrFtrPart) Text() string {
	var lines []string
	for _, p := range h.Paragraphs() {
		lines = append(lines, paragraphText(p))
	}
	return strings.Join(lines, "\n")
}

// NewHdrFtr creates new empty header or footer part and relationship to it
// from the main document part.
func (d *Document) NewHdrFtr(kind PartKind) (*HdrFtrPart, error) {
	rels, err := d.pkg.Relationships(d.mainPart)
	if err != nil {
		return nil, err
	}

	name := d.pkg.NextName("word", kind.String(), ".xml")

	doc := ooxml.NewXMLDocument()
	root := doc.CreateElement(kind.rootTag())
	root.CreateAttr("xmlns:w", ooxml.NSWordprocessingML)
	root.CreateAttr("xmlns:r", ooxml.NSRelationships)
	d.pkg.PutXML(name, kind.contentType(), doc)

	rid := rels.Add(kind.relType(), ooxml.RelativeTarget(d.mainPart, name))
	return &HdrFtrPart{Name: name, RID: rid, root: root}, nil
}

// HdrFtr opens header or footer part by relationship id.
func (d *Document) HdrFtr(rid string) (*HdrFtrPart, error) {
	rels, err := d.pkg.Relationships(d.mainPart)
	if err != nil {
		return nil, err
	}
	rel, ok := rels.ByID(rid)
	if !ok {
		return nil, fmt.Errorf("relationship %q does not exist", rid)
	}
	name := rels.Part(rel)
	doc, err := d.pkg.XML(name)
	if err != nil {
		return nil, err
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("part %q is empty", name)
	}
	return &HdrFtrPart{Name: name, RID: rid, root: doc.Root()}, nil
}

// PruneHdrFtr removes header and footer parts no section refers to. Names of
// removed parts are returned.
func (d *Document) PruneHdrFtr() ([]string, error) {
	rels, err := d.pkg.Relationships(d.mainPart)
	if err != nil {
		return nil, err
	}

	used := make(map[string]bool)
	for _, s := range d.Sections() {
		for _, rid := range s.References() {
			used[rid] = true
		}
	}

	var removed []string
	for _, rel := range rels.All() {
		if rel.Type != ooxml.RelHeader && rel.Type != ooxml.RelFooter {
			continue
		}
		if used[rel.ID] {
			continue
		}
		name := rels.Part(rel)
		rels.Remove(rel.ID)
		d.pkg.Remove(name)
		removed = append(removed, name)
	}
	return removed, nil
}
