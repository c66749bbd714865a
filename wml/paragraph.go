package wml

import (
	"math"
	"strconv"

	"github.com/beevik/etree"

	"docfmt/units"
)

// Spacing describes paragraph spacing, nil values are not touched.
type Spacing struct {
	Before *units.Points
	After  *units.Points
	Line   *units.LineSpacing
}

// Indentation describes paragraph indents, nil values are not touched.
// Negative first line indent is the same as hanging indent.
type Indentation struct {
	Left      *units.Points
	Right     *units.Points
	FirstLine *units.Points
	Hanging   *units.Points
}

// ParagraphFormat is paragraph level formatting. Empty alignment and nil
// outline level are not touched.
type ParagraphFormat struct {
	Alignment    string
	Spacing      Spacing
	Indent       Indentation
	OutlineLevel *int
}

// SetParagraphFormat overwrites paragraph properties with requested
// formatting.
func SetParagraphFormat(pPr *etree.Element, pf ParagraphFormat) {
	setSpacing(pPr, pf.Spacing)
	setIndent(pPr, pf.Indent)
	if len(pf.Alignment) > 0 {
		setVal(pPr, "jc", orderPPr, pf.Alignment)
	}
	if pf.OutlineLevel != nil {
		setVal(pPr, "outlineLvl", orderPPr, strconv.Itoa(*pf.OutlineLevel))
	}
}

func twips(p units.Points) string {
	return strconv.Itoa(p.Twips())
}

func setSpacing(pPr *etree.Element, s Spacing) {
	if s.Before == nil && s.After == nil && s.Line == nil {
		return
	}
	sp := ensureChild(pPr, "spacing", orderPPr)
	if s.Before != nil {
		sp.CreateAttr("w:before", twips(*s.Before))
		sp.RemoveAttr("w:beforeLines")
		sp.RemoveAttr("w:beforeAutospacing")
	}
	if s.After != nil {
		sp.CreateAttr("w:after", twips(*s.After))
		sp.RemoveAttr("w:afterLines")
		sp.RemoveAttr("w:afterAutospacing")
	}
	if s.Line != nil {
		if s.Line.IsMultiple() {
			// single line is 240
			sp.CreateAttr("w:line", strconv.Itoa(int(math.Round(s.Line.Multiple*240))))
			sp.CreateAttr("w:lineRule", "auto")
		} else {
			sp.CreateAttr("w:line", twips(s.Line.Exact))
			sp.CreateAttr("w:lineRule", "exact")
		}
	}
}

func setIndent(pPr *etree.Element, in Indentation) {
	if in.Left == nil && in.Right == nil && in.FirstLine == nil && in.Hanging == nil {
		return
	}
	ind := ensureChild(pPr, "ind", orderPPr)
	if in.Left != nil {
		ind.CreateAttr("w:left", twips(*in.Left))
		ind.RemoveAttr("w:leftChars")
	}
	if in.Right != nil {
		ind.CreateAttr("w:right", twips(*in.Right))
		ind.RemoveAttr("w:rightChars")
	}

	hanging := in.Hanging
	firstLine := in.FirstLine
	if firstLine != nil && *firstLine < 0 {
		h := -*firstLine
		hanging, firstLine = &h, nil
	}
	switch {
	case hanging != nil && *hanging > 0:
		ind.CreateAttr("w:hanging", twips(*hanging))
		ind.RemoveAttr("w:firstLine")
		ind.RemoveAttr("w:firstLineChars")
		ind.RemoveAttr("w:hangingChars")
	case firstLine != nil:
		ind.CreateAttr("w:firstLine", twips(*firstLine))
		ind.RemoveAttr("w:hanging")
		ind.RemoveAttr("w:firstLineChars")
		ind.RemoveAttr("w:hangingChars")
	}
}

// NewFormattedParagraph creates detached paragraph with formatting and
// optional style.
func NewFormattedParagraph(styleID string, pf ParagraphFormat) *etree.Element {
	p := NewParagraph()
	if len(styleID) == 0 && pf.Alignment == "" && pf.OutlineLevel == nil &&
		pf.Spacing == (Spacing{}) && pf.Indent == (Indentation{}) {
		return p
	}
	pPr := ensurePPr(p)
	if len(styleID) > 0 {
		setVal(pPr, "pStyle", orderPPr, styleID)
	}
	SetParagraphFormat(pPr, pf)
	return p
}
