package wml

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
)

// BreakLocation tells where section properties of a section are stored:
// either inline, in a dedicated paragraph placed after the last paragraph of
// the section, or at body level for the final section.
type BreakLocation interface {
	isBreakLocation()
}

// InlineAfter stores section properties in new empty paragraph following
// Para.
type InlineAfter struct {
	Para ParaID
}

// BodyLevel stores section properties as the last child of the body.
type BodyLevel struct{}

func (InlineAfter) isBreakLocation() {}
func (BodyLevel) isBreakLocation()   {}

var ErrBreakLocation = errors.New("invalid section break location")

// SectionBreak is a validated placement of section properties.
type SectionBreak struct {
	location BreakLocation
}

// NewSectionBreak checks that only the final section is stored at body level
// and every other section is stored inline after an existing paragraph.
func NewSectionBreak(loc BreakLocation, final bool) (SectionBreak, error) {
	switch l := loc.(type) {
	case BodyLevel:
		if !final {
			return SectionBreak{}, fmt.Errorf("non-final section at body level: %w", ErrBreakLocation)
		}
	case InlineAfter:
		if final {
			return SectionBreak{}, fmt.Errorf("final section inline: %w", ErrBreakLocation)
		}
		if l.Para < 0 {
			return SectionBreak{}, fmt.Errorf("inline section without anchor paragraph: %w", ErrBreakLocation)
		}
	default:
		return SectionBreak{}, fmt.Errorf("%T: %w", loc, ErrBreakLocation)
	}
	return SectionBreak{location: loc}, nil
}

// Location returns validated location.
func (b SectionBreak) Location() BreakLocation {
	return b.location
}

func (d *Document) bodySectPr() *etree.Element {
	kids := d.body.ChildElements()
	if len(kids) > 0 && isW(kids[len(kids)-1], "sectPr") {
		return kids[len(kids)-1]
	}
	return nil
}

// ClearSections removes all section properties from the body and its
// paragraphs. Number of removed elements is returned.
func (d *Document) ClearSections() int {
	n := 0
	for _, c := range d.body.ChildElements() {
		switch {
		case isW(c, "sectPr"):
			d.body.RemoveChild(c)
			n++
		case isW(c, "p"):
			if pPr := child(c, "pPr"); pPr != nil && child(pPr, "sectPr") != nil {
				removeChildren(pPr, "sectPr")
				n++
			}
		}
	}
	return n
}

// Sections returns all section properties in document order: inline ones
// followed by body level one.
func (d *Document) Sections() []SectPr {
	var res []SectPr
	for _, c := range d.body.ChildElements() {
		switch {
		case isW(c, "sectPr"):
			res = append(res, SectPr{el: c})
		case isW(c, "p"):
			if pPr := child(c, "pPr"); pPr != nil {
				if sp := child(pPr, "sectPr"); sp != nil {
					res = append(res, SectPr{el: sp})
				}
			}
		}
	}
	return res
}

// ApplyBreak materializes section properties at the break location. For
// inline breaks new otherwise empty paragraph is inserted after anchor and
// tagged as inserted.
func (d *Document) ApplyBreak(b SectionBreak) (SectPr, ParaID, error) {
	switch l := b.location.(type) {
	case InlineAfter:
		p := NewParagraph()
		sp := ensurePPr(p).CreateElement("w:sectPr")
		id, err := d.InsertAfter(l.Para, p)
		if err != nil {
			return SectPr{}, NoPara, fmt.Errorf("unable to place section break after paragraph %d: %w", l.Para, err)
		}
		if err := d.MarkInserted(id, InsertedBreak); err != nil {
			return SectPr{}, NoPara, err
		}
		return SectPr{el: sp}, id, nil
	case BodyLevel:
		if sp := d.bodySectPr(); sp != nil {
			return SectPr{el: sp}, NoPara, nil
		}
		return SectPr{el: d.body.CreateElement("w:sectPr")}, NoPara, nil
	default:
		return SectPr{}, NoPara, ErrBreakLocation
	}
}

// SectPr wraps w:sectPr element.
type SectPr struct {
	el *etree.Element
}

// Element returns underlying element.
func (s SectPr) Element() *etree.Element {
	return s.el
}

// SetType writes w:type, empty kind removes it.
func (s SectPr) SetType(kind string) {
	if len(kind) == 0 {
		removeChildren(s.el, "type")
		return
	}
	setVal(s.el, "type", orderSectPr, kind)
}

// Type returns section break kind or empty string.
func (s SectPr) Type() string {
	if t := child(s.el, "type"); t != nil {
		return t.SelectAttrValue("w:val", "")
	}
	return ""
}

// PageSize is in twips.
type PageSize struct {
	Width, Height int
	Landscape     bool
}

func (s SectPr) SetPageSize(ps PageSize) {
	sz := ensureChild(s.el, "pgSz", orderSectPr)
	sz.CreateAttr("w:w", strconv.Itoa(ps.Width))
	sz.CreateAttr("w:h", strconv.Itoa(ps.Height))
	if ps.Landscape {
		sz.CreateAttr("w:orient", "landscape")
	} else {
		sz.RemoveAttr("w:orient")
	}
}

// Margins are in twips.
type Margins struct {
	Top, Right, Bottom, Left int
	Header, Footer, Gutter   int
}

func (s SectPr) SetMargins(m Margins) {
	mar := ensureChild(s.el, "pgMar", orderSectPr)
	for _, a := range []struct {
		key string
		val int
	}{
		{"w:top", m.Top}, {"w:right", m.Right}, {"w:bottom", m.Bottom}, {"w:left", m.Left},
		{"w:header", m.Header}, {"w:footer", m.Footer}, {"w:gutter", m.Gutter},
	} {
		mar.CreateAttr(a.key, strconv.Itoa(a.val))
	}
}

// SetLayoutDefaults writes single column and line grid settings Word puts
// into every new section.
func (s SectPr) SetLayoutDefaults() {
	cols := ensureChild(s.el, "cols", orderSectPr)
	cols.CreateAttr("w:space", "425")
	cols.CreateAttr("w:num", "1")
	grid := ensureChild(s.el, "docGrid", orderSectPr)
	grid.CreateAttr("w:type", "lines")
	grid.CreateAttr("w:linePitch", "312")
}

// SetPageNumbering writes w:pgNumType. Nil start means numbering continues
// from previous section and w:start is not written.
func (s SectPr) SetPageNumbering(format string, start *int) {
	pn := ensureChild(s.el, "pgNumType", orderSectPr)
	pn.CreateAttr("w:fmt", format)
	if start != nil {
		pn.CreateAttr("w:start", strconv.Itoa(*start))
	} else {
		pn.RemoveAttr("w:start")
	}
}

// PageNumbering reads w:pgNumType back.
func (s SectPr) PageNumbering() (format string, start *int, ok bool) {
	pn := child(s.el, "pgNumType")
	if pn == nil {
		return "", nil, false
	}
	if a := pn.SelectAttr("w:start"); a != nil {
		if v, err := strconv.Atoi(a.Value); err == nil {
			start = &v
		}
	}
	return pn.SelectAttrValue("w:fmt", ""), start, true
}

// SetTitlePage turns on separate first page header and footer.
func (s SectPr) SetTitlePage(on bool) {
	if on {
		ensureChild(s.el, "titlePg", orderSectPr)
		return
	}
	removeChildren(s.el, "titlePg")
}

// TitlePage reports if section has separate first page.
func (s SectPr) TitlePage() bool {
	return child(s.el, "titlePg") != nil
}

// SetReference points section header or footer of given type to the part
// relationship, replacing previous reference of the same type.
func (s SectPr) SetReference(kind PartKind, which HdrFtrType, rid string) {
	tag := kind.referenceTag()
	for _, c := range s.el.ChildElements() {
		if isW(c, tag) && c.SelectAttrValue("w:type", "") == string(which) {
			c.CreateAttr("r:id", rid)
			return
		}
	}
	ref := insertChild(s.el, tag, orderSectPr)
	ref.CreateAttr("w:type", string(which))
	ref.CreateAttr("r:id", rid)
}

// Reference returns relationship id of section header or footer.
func (s SectPr) Reference(kind PartKind, which HdrFtrType) (string, bool) {
	for _, c := range s.el.ChildElements() {
		if isW(c, kind.referenceTag()) && c.SelectAttrValue("w:type", "") == string(which) {
			return c.SelectAttrValue("r:id", ""), true
		}
	}
	return "", false
}

// References returns relationship ids of all headers and footers.
func (s SectPr) References() []string {
	var res []string
	for _, c := range s.el.ChildElements() {
		if isW(c, "headerReference") || isW(c, "footerReference") {
			res = append(res, c.SelectAttrValue("r:id", ""))
		}
	}
	return res
}
