package wml

import (
	"strconv"

	"github.com/beevik/etree"
	"golang.org/x/text/width"

	"docfmt/units"
)

// FontSlots names fonts for Latin (ascii, hAnsi and complex script slots) and
// East Asian text. Empty slot is left as is.
type FontSlots struct {
	Latin     string
	EastAsian string
}

// RunFormat is character formatting applied to runs and run properties of
// styles. Zero Size means size is not touched.
type RunFormat struct {
	Fonts  FontSlots
	Size   units.Points
	Bold   bool
	Italic bool
}

// SetFonts writes font slots to w:rFonts of run properties. Each slot is set
// independently so East Asian font survives Latin font change and the other
// way around.
func SetFonts(rPr *etree.Element, fonts FontSlots) {
	if len(fonts.Latin) == 0 && len(fonts.EastAsian) == 0 {
		return
	}
	rf := ensureChild(rPr, "rFonts", orderRPr)
	if len(fonts.Latin) > 0 {
		rf.CreateAttr("w:ascii", fonts.Latin)
		rf.CreateAttr("w:hAnsi", fonts.Latin)
		rf.CreateAttr("w:cs", fonts.Latin)
		// theme fonts take precedence over explicit ones
		rf.RemoveAttr("w:asciiTheme")
		rf.RemoveAttr("w:hAnsiTheme")
		rf.RemoveAttr("w:cstheme")
	}
	if len(fonts.EastAsian) > 0 {
		rf.CreateAttr("w:eastAsia", fonts.EastAsian)
		rf.RemoveAttr("w:eastAsiaTheme")
	}
}

// Fonts reads font slots back from run properties.
func Fonts(rPr *etree.Element) FontSlots {
	rf := child(rPr, "rFonts")
	if rf == nil {
		return FontSlots{}
	}
	return FontSlots{
		Latin:     rf.SelectAttrValue("w:ascii", ""),
		EastAsian: rf.SelectAttrValue("w:eastAsia", ""),
	}
}

// SetRunFormat overwrites run properties with requested formatting.
func SetRunFormat(rPr *etree.Element, rf RunFormat) {
	SetFonts(rPr, rf.Fonts)
	setToggle(rPr, "b", rf.Bold)
	setToggle(rPr, "bCs", rf.Bold)
	setToggle(rPr, "i", rf.Italic)
	setToggle(rPr, "iCs", rf.Italic)
	if rf.Size > 0 {
		hp := strconv.Itoa(rf.Size.HalfPoints())
		setVal(rPr, "sz", orderRPr, hp)
		setVal(rPr, "szCs", orderRPr, hp)
	}
}

func setToggle(rPr *etree.Element, tag string, on bool) {
	if on {
		ensureChild(rPr, tag, orderRPr).RemoveAttr("w:val")
		return
	}
	removeChildren(rPr, tag)
}

// HasEastAsian reports if text has wide or fullwidth characters.
func HasEastAsian(text string) bool {
	for _, r := range text {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			return true
		}
	}
	return false
}

// EncodeRun builds run with text and formatting. Runs with East Asian text
// get w:hint so ambiguous characters (quotes, dashes) are rendered with East
// Asian font.
func EncodeRun(text string, rf RunFormat) *etree.Element {
	r := NewRun(rf)
	if HasEastAsian(text) {
		rPr := ensureRPr(r)
		ensureChild(rPr, "rFonts", orderRPr).CreateAttr("w:hint", "eastAsia")
	}
	t := r.CreateElement("w:t")
	t.CreateAttr("xml:space", "preserve")
	t.SetText(text)
	return r
}

// NewRun creates empty run with formatting.
func NewRun(rf RunFormat) *etree.Element {
	r := etree.NewElement("w:r")
	if rf == (RunFormat{}) {
		return r
	}
	SetRunFormat(ensureRPr(r), rf)
	return r
}
