package wml

import (
	"strconv"

	"github.com/beevik/etree"

	"docfmt/ooxml"
)

const stylesPart = "word/styles.xml"

// Styles gives access to the style table.
type Styles struct {
	root *etree.Element
}

// Style wraps w:style element.
type Style struct {
	el *etree.Element
}

// Styles returns style table, creating styles part if document does not
// have one.
func (d *Document) Styles() (*Styles, error) {
	rels, err := d.pkg.Relationships(d.mainPart)
	if err != nil {
		return nil, err
	}

	var name string
	if found := rels.ByType(ooxml.RelStyles); len(found) > 0 {
		name = rels.Part(found[0])
	} else {
		name = stylesPart
		doc := ooxml.NewXMLDocument()
		root := doc.CreateElement("w:styles")
		root.CreateAttr("xmlns:w", ooxml.NSWordprocessingML)
		d.pkg.PutXML(name, ooxml.TypeStyles, doc)
		rels.Add(ooxml.RelStyles, ooxml.RelativeTarget(d.mainPart, name))
	}

	doc, err := d.pkg.XML(name)
	if err != nil {
		return nil, err
	}
	return &Styles{root: doc.Root()}, nil
}

func (s *Styles) all() []*etree.Element {
	var res []*etree.Element
	for _, c := range s.root.ChildElements() {
		if isW(c, "style") {
			res = append(res, c)
		}
	}
	return res
}

// ByID finds style by its id.
func (s *Styles) ByID(id string) (Style, bool) {
	for _, el := range s.all() {
		if el.SelectAttrValue("w:styleId", "") == id {
			return Style{el: el}, true
		}
	}
	return Style{}, false
}

// ByName finds style by its name.
func (s *Styles) ByName(name string) (Style, bool) {
	for _, el := range s.all() {
		if n := child(el, "name"); n != nil && n.SelectAttrValue("w:val", "") == name {
			return Style{el: el}, true
		}
	}
	return Style{}, false
}

// EnsureParagraphStyle looks style up by name and creates new quick format
// paragraph style if it does not exist.
func (s *Styles) EnsureParagraphStyle(id, name, basedOn string) (Style, bool) {
	if st, ok := s.ByName(name); ok {
		return st, false
	}
	if st, ok := s.ByID(id); ok {
		return st, false
	}

	el := s.root.CreateElement("w:style")
	el.CreateAttr("w:type", "paragraph")
	el.CreateAttr("w:customStyle", "1")
	el.CreateAttr("w:styleId", id)
	st := Style{el: el}
	setVal(el, "name", orderStyle, name)
	if len(basedOn) > 0 {
		if _, ok := s.ByID(basedOn); ok {
			setVal(el, "basedOn", orderStyle, basedOn)
		}
	}
	ensureChild(el, "qFormat", orderStyle)
	return st, true
}

// ID returns style id.
func (st Style) ID() string {
	return st.el.SelectAttrValue("w:styleId", "")
}

// Name returns style name.
func (st Style) Name() string {
	if n := child(st.el, "name"); n != nil {
		return n.SelectAttrValue("w:val", "")
	}
	return ""
}

// Type returns style type (paragraph, character, table, numbering).
func (st Style) Type() string {
	return st.el.SelectAttrValue("w:type", "")
}

// ParagraphProperties returns w:pPr of the style creating it if necessary.
func (st Style) ParagraphProperties() *etree.Element {
	return ensureChild(st.el, "pPr", orderStyle)
}

// RunProperties returns w:rPr of the style creating it if necessary.
func (st Style) RunProperties() *etree.Element {
	return ensureChild(st.el, "rPr", orderStyle)
}

// ResetProperties drops paragraph and run properties of the style so they
// could be written again from scratch.
func (st Style) ResetProperties() {
	removeChildren(st.el, "pPr")
	removeChildren(st.el, "rPr")
}

// OutlineLevel returns outline level of paragraph style if it has one.
func (st Style) OutlineLevel() (int, bool) {
	pPr := child(st.el, "pPr")
	if pPr == nil {
		return 0, false
	}
	lvl := child(pPr, "outlineLvl")
	if lvl == nil {
		return 0, false
	}
	v, err := strconv.Atoi(lvl.SelectAttrValue("w:val", ""))
	if err != nil {
		return 0, false
	}
	return v, true
}

// Count returns number of styles in the table.
func (s *Styles) Count() int {
	return len(s.all())
}
