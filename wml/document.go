// Package wml is a small WordprocessingML document model on top of etree. It
// exposes body level paragraphs through stable handles, so structural
// changes (paragraph insertion for section breaks, TOC) never invalidate
// references obtained earlier.
package wml

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"docfmt/ooxml"
)

// ParaID is a stable handle of a body level paragraph. Handles are never
// reused, even after paragraph removal.
type ParaID int

// NoPara is returned when paragraph could not be found.
const NoPara ParaID = -1

var ErrNoParagraph = errors.New("paragraph does not exist")

// Document is an opened WordprocessingML document.
type Document struct {
	pkg      *ooxml.Package
	mainPart string
	body     *etree.Element

	arena []*etree.Element
	ids   map[*etree.Element]ParaID

	nextBookmark     int
	bookmarksScanned bool
}

// Open reads document from file.
func Open(path string) (*Document, error) {
	pkg, err := ooxml.Open(path)
	if err != nil {
		return nil, err
	}
	return Load(pkg)
}

// Load locates main document part in the package.
func Load(pkg *ooxml.Package) (*Document, error) {
	rels, err := pkg.Relationships("")
	if err != nil {
		return nil, err
	}
	main := rels.ByType(ooxml.RelOfficeDocument)
	if len(main) == 0 {
		return nil, errors.New("package has no main document part")
	}

	d := &Document{
		pkg:      pkg,
		mainPart: rels.Part(main[0]),
		ids:      make(map[*etree.Element]ParaID),
	}
	doc, err := pkg.XML(d.mainPart)
	if err != nil {
		return nil, err
	}
	if d.body = doc.FindElement("/w:document/w:body"); d.body == nil {
		return nil, fmt.Errorf("main document part %q has no body", d.mainPart)
	}
	// section properties refer to headers and footers with r:id
	if root := doc.Root(); root.SelectAttr("xmlns:r") == nil {
		root.CreateAttr("xmlns:r", ooxml.NSRelationships)
	}
	return d, nil
}

// Package returns underlying package.
func (d *Document) Package() *ooxml.Package {
	return d.pkg
}

// MainPart returns name of the main document part.
func (d *Document) MainPart() string {
	return d.mainPart
}

// Body returns w:body element.
func (d *Document) Body() *etree.Element {
	return d.body
}

// Save writes document, see ooxml.Package.Save.
func (d *Document) Save(path string, fixZip bool) error {
	return d.pkg.Save(path, fixZip)
}

func (d *Document) handle(p *etree.Element) ParaID {
	if id, ok := d.ids[p]; ok {
		return id
	}
	id := ParaID(len(d.arena))
	d.arena = append(d.arena, p)
	d.ids[p] = id
	return id
}

// Paragraphs returns handles of body level paragraphs in document order.
// Paragraph with 1-based index i is Paragraphs()[i-1].
func (d *Document) Paragraphs() []ParaID {
	var res []ParaID
	for _, c := range d.body.ChildElements() {
		if isW(c, "p") {
			res = append(res, d.handle(c))
		}
	}
	return res
}

// Count returns number of body level paragraphs.
func (d *Document) Count() int {
	n := 0
	for _, c := range d.body.ChildElements() {
		if isW(c, "p") {
			n++
		}
	}
	return n
}

// Element returns paragraph element or nil if handle is stale.
func (d *Document) Element(id ParaID) *etree.Element {
	if id < 0 || int(id) >= len(d.arena) {
		return nil
	}
	return d.arena[id]
}

// Index returns current 1-based position of the paragraph or 0.
func (d *Document) Index(id ParaID) int {
	p := d.Element(id)
	if p == nil {
		return 0
	}
	n := 0
	for _, c := range d.body.ChildElements() {
		if isW(c, "p") {
			n++
			if c == p {
				return n
			}
		}
	}
	return 0
}

// Text returns paragraph text.
func (d *Document) Text(id ParaID) string {
	p := d.Element(id)
	if p == nil {
		return ""
	}
	return paragraphText(p)
}

func paragraphText(p *etree.Element) string {
	var b strings.Builder
	for _, t := range p.FindElements(".//w:t") {
		b.WriteString(t.Text())
	}
	return b.String()
}

// StyleOf returns paragraph style id or empty string.
func (d *Document) StyleOf(id ParaID) string {
	p := d.Element(id)
	if p == nil {
		return ""
	}
	if pPr := child(p, "pPr"); pPr != nil {
		if ps := child(pPr, "pStyle"); ps != nil {
			return ps.SelectAttrValue("w:val", "")
		}
	}
	return ""
}

// SetStyle assigns paragraph style.
func (d *Document) SetStyle(id ParaID, styleID string) error {
	p := d.Element(id)
	if p == nil {
		return ErrNoParagraph
	}
	setVal(ensurePPr(p), "pStyle", orderPPr, styleID)
	return nil
}

// Properties returns paragraph properties creating them if necessary.
func (d *Document) Properties(id ParaID) (*etree.Element, error) {
	p := d.Element(id)
	if p == nil {
		return nil, ErrNoParagraph
	}
	return ensurePPr(p), nil
}

// NewParagraph creates detached empty paragraph.
func NewParagraph() *etree.Element {
	return etree.NewElement("w:p")
}

// InsertAfter places new paragraph immediately after anchor.
func (d *Document) InsertAfter(anchor ParaID, p *etree.Element) (ParaID, error) {
	a := d.Element(anchor)
	if a == nil || a.Parent() != d.body {
		return NoPara, ErrNoParagraph
	}
	d.body.InsertChildAt(a.Index()+1, p)
	return d.handle(p), nil
}

// InsertBefore places new paragraph immediately before anchor.
func (d *Document) InsertBefore(anchor ParaID, p *etree.Element) (ParaID, error) {
	a := d.Element(anchor)
	if a == nil || a.Parent() != d.body {
		return NoPara, ErrNoParagraph
	}
	d.body.InsertChildAt(a.Index(), p)
	return d.handle(p), nil
}

// InsertAtStart places new paragraph before any other body content.
func (d *Document) InsertAtStart(p *etree.Element) ParaID {
	if first := d.body.ChildElements(); len(first) > 0 {
		d.body.InsertChildAt(first[0].Index(), p)
	} else {
		d.body.AddChild(p)
	}
	return d.handle(p)
}

// Append places new paragraph after all other paragraphs, before body level
// section properties.
func (d *Document) Append(p *etree.Element) ParaID {
	if sp := d.bodySectPr(); sp != nil {
		d.body.InsertChildAt(sp.Index(), p)
	} else {
		d.body.AddChild(p)
	}
	return d.handle(p)
}

// Remove deletes paragraph from the body. Handle becomes stale.
func (d *Document) Remove(id ParaID) {
	p := d.Element(id)
	if p == nil {
		return
	}
	if p.Parent() != nil {
		p.Parent().RemoveChild(p)
	}
	delete(d.ids, p)
	d.arena[id] = nil
}
