package rebuild

import (
	"github.com/beevik/etree"

	"docfmt/wml"
)

type partKey struct {
	section int
	kind    wml.PartKind
	which   wml.HdrFtrType
}

// partContent is header or footer part of a section. Template text and page
// number are written by different phases, part is always rendered with text
// first so phases could be repeated.
type partContent struct {
	part   *wml.HdrFtrPart
	text   []*etree.Element
	number []*etree.Element
}

func (pc *partContent) render() {
	pc.part.Reset()
	for _, p := range pc.text {
		pc.part.AddParagraph(p)
	}
	for _, p := range pc.number {
		pc.part.AddParagraph(p)
	}
	if len(pc.text) == 0 && len(pc.number) == 0 {
		// part must have at least one paragraph
		pc.part.AddParagraph(wml.NewParagraph())
	}
}

// pageParts owns header and footer parts of written sections. Every section
// gets its own parts for every page kind in use so nothing is inherited from
// the previous section.
type pageParts struct {
	doc     *wml.Document
	evenOdd bool
	parts   map[partKey]*partContent
}

func newPageParts(doc *wml.Document, evenOdd bool) *pageParts {
	return &pageParts{doc: doc, evenOdd: evenOdd, parts: make(map[partKey]*partContent)}
}

// pageKinds returns page kinds used by section.
func (pp *pageParts) pageKinds(ws *WrittenSection) []wml.HdrFtrType {
	kinds := []wml.HdrFtrType{wml.HdrFtrDefault}
	if pp.evenOdd {
		kinds = append(kinds, wml.HdrFtrEven)
	}
	if ws.SectPr.TitlePage() {
		kinds = append(kinds, wml.HdrFtrFirst)
	}
	return kinds
}

// get returns part of the section creating it and pointing section
// reference to it when necessary.
func (pp *pageParts) get(ws *WrittenSection, kind wml.PartKind, which wml.HdrFtrType) (*partContent, error) {
	key := partKey{section: ws.Ordinal, kind: kind, which: which}
	if pc, ok := pp.parts[key]; ok {
		return pc, nil
	}
	part, err := pp.doc.NewHdrFtr(kind)
	if err != nil {
		return nil, err
	}
	ws.SectPr.SetReference(kind, which, part.RID)
	pc := &partContent{part: part}
	pc.render()
	pp.parts[key] = pc
	return pc, nil
}

// unlink gives section its own (possibly empty) parts of kind for every
// page kind it uses.
func (pp *pageParts) unlink(ws *WrittenSection, kind wml.PartKind) error {
	for _, which := range pp.pageKinds(ws) {
		if _, err := pp.get(ws, kind, which); err != nil {
			return err
		}
	}
	return nil
}
