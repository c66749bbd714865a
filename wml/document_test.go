package wml_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/beevik/etree"

	"docfmt/units"
	"docfmt/wml"
	"docfmt/wml/wmltest"
)

func texts(d *wml.Document) []string {
	var res []string
	for _, id := range d.Paragraphs() {
		res = append(res, d.Text(id))
	}
	return res
}

func TestDocument_Paragraphs(t *testing.T) {
	d := wmltest.Document(t, "one", "two", "three")

	if d.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", d.Count())
	}
	if got := strings.Join(texts(d), ","); got != "one,two,three" {
		t.Errorf("texts = %s", got)
	}
	// handles are stable between calls
	a, b := d.Paragraphs(), d.Paragraphs()
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("handle %d changed: %d != %d", i, a[i], b[i])
		}
	}
}

func TestDocument_StableHandles(t *testing.T) {
	d := wmltest.Document(t, "one", "two", "three")
	ids := d.Paragraphs()

	// insertions in arbitrary order do not invalidate previously obtained handles
	if _, err := d.InsertAfter(ids[2], wmltest.Paragraph("after three")); err != nil {
		t.Fatal(err)
	}
	if _, err := d.InsertAfter(ids[0], wmltest.Paragraph("after one")); err != nil {
		t.Fatal(err)
	}
	if _, err := d.InsertBefore(ids[1], wmltest.Paragraph("before two")); err != nil {
		t.Fatal(err)
	}
	d.InsertAtStart(wmltest.Paragraph("start"))
	d.Append(wmltest.Paragraph("end"))

	want := "start,one,after one,before two,two,three,after three,end"
	if got := strings.Join(texts(d), ","); got != want {
		t.Errorf("texts = %s, want %s", got, want)
	}
	if d.Text(ids[1]) != "two" || d.Index(ids[1]) != 5 {
		t.Errorf("handle of 'two' resolves to %q at %d", d.Text(ids[1]), d.Index(ids[1]))
	}

	// body level section properties stay last
	kids := d.Body().ChildElements()
	if last := kids[len(kids)-1]; last.Tag != "sectPr" {
		t.Errorf("last body child = %s, want sectPr", last.Tag)
	}

	d.Remove(ids[0])
	if d.Element(ids[0]) != nil || d.Index(ids[0]) != 0 {
		t.Error("removed handle must be stale")
	}
	if _, err := d.InsertAfter(ids[0], wml.NewParagraph()); !errors.Is(err, wml.ErrNoParagraph) {
		t.Errorf("InsertAfter(stale) error = %v", err)
	}
}

func TestDocument_SetStyle(t *testing.T) {
	d := wmltest.Document(t, "one")
	id := d.Paragraphs()[0]

	if err := d.SetStyle(id, "customHeading1"); err != nil {
		t.Fatal(err)
	}
	if err := d.SetStyle(id, "customNormal"); err != nil {
		t.Fatal(err)
	}
	if d.StyleOf(id) != "customNormal" {
		t.Errorf("StyleOf() = %q", d.StyleOf(id))
	}
	pPr := d.Element(id).SelectElement("w:pPr")
	if n := len(pPr.SelectElements("w:pStyle")); n != 1 {
		t.Errorf("%d pStyle elements, want 1", n)
	}
	if err := d.SetStyle(wml.ParaID(100), "x"); !errors.Is(err, wml.ErrNoParagraph) {
		t.Errorf("SetStyle(bad) error = %v", err)
	}
}

func TestFonts(t *testing.T) {
	rPr := etree.NewElement("w:rPr")
	rPr.CreateElement("w:sz").CreateAttr("w:val", "20")

	wml.SetFonts(rPr, wml.FontSlots{Latin: "Times New Roman"})
	wml.SetFonts(rPr, wml.FontSlots{EastAsian: "宋体"})

	rf := rPr.SelectElement("w:rFonts")
	for _, attr := range []string{"w:ascii", "w:hAnsi", "w:cs"} {
		if v := rf.SelectAttrValue(attr, ""); v != "Times New Roman" {
			t.Errorf("%s = %q", attr, v)
		}
	}
	if v := rf.SelectAttrValue("w:eastAsia", ""); v != "宋体" {
		t.Errorf("eastAsia = %q", v)
	}
	if got := wml.Fonts(rPr); got.Latin != "Times New Roman" || got.EastAsian != "宋体" {
		t.Errorf("Fonts() = %+v", got)
	}
	// rFonts must precede sz
	if rPr.ChildElements()[0].Tag != "rFonts" {
		t.Errorf("first child = %s, want rFonts", rPr.ChildElements()[0].Tag)
	}
}

func TestEncodeRun(t *testing.T) {
	tests := []struct {
		text string
		hint bool
	}{
		{"Chapter 1", false},
		{"第一章 绪论", true},
		{"ＡＢＣ", true},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			r := wml.EncodeRun(tt.text, wml.RunFormat{
				Fonts: wml.FontSlots{Latin: "Arial", EastAsian: "黑体"},
				Size:  units.Points(10.5),
				Bold:  true,
			})
			if got := r.FindElement("w:t").Text(); got != tt.text {
				t.Errorf("text = %q", got)
			}
			if r.FindElement("w:t").SelectAttrValue("xml:space", "") != "preserve" {
				t.Error("text must preserve spaces")
			}
			rPr := r.SelectElement("w:rPr")
			if rPr.SelectElement("w:sz").SelectAttrValue("w:val", "") != "21" {
				t.Error("size must be written in half points")
			}
			if rPr.SelectElement("w:b") == nil {
				t.Error("bold is missing")
			}
			hint := rPr.SelectElement("w:rFonts").SelectAttrValue("w:hint", "")
			if (hint == "eastAsia") != tt.hint {
				t.Errorf("hint = %q, want east asian hint %v", hint, tt.hint)
			}
			var order []string
			for _, c := range rPr.ChildElements() {
				order = append(order, c.Tag)
			}
			if got := strings.Join(order, ","); got != "rFonts,b,bCs,sz,szCs" {
				t.Errorf("rPr children order = %s", got)
			}
		})
	}
}

func TestParagraphFormat(t *testing.T) {
	pt := func(v float64) *units.Points { p := units.Points(v); return &p }
	lvl := 1

	pPr := etree.NewElement("w:pPr")
	pPr.CreateElement("w:outlineLvl").CreateAttr("w:val", "5")
	pPr.CreateElement("w:pStyle").CreateAttr("w:val", "x")

	wml.SetParagraphFormat(pPr, wml.ParagraphFormat{
		Alignment: "center",
		Spacing: wml.Spacing{
			Before: pt(12),
			Line:   &units.LineSpacing{Multiple: 1.5},
		},
		Indent:       wml.Indentation{FirstLine: pt(-24), Left: pt(24)},
		OutlineLevel: &lvl,
	})

	if v := pPr.SelectElement("w:jc").SelectAttrValue("w:val", ""); v != "center" {
		t.Errorf("jc = %q", v)
	}
	sp := pPr.SelectElement("w:spacing")
	if sp.SelectAttrValue("w:before", "") != "240" || sp.SelectAttrValue("w:line", "") != "360" ||
		sp.SelectAttrValue("w:lineRule", "") != "auto" {
		t.Errorf("spacing = %v", sp.Attr)
	}
	if sp.SelectAttr("w:after") != nil {
		t.Error("after spacing must not be touched")
	}
	ind := pPr.SelectElement("w:ind")
	if ind.SelectAttrValue("w:hanging", "") != "480" || ind.SelectAttr("w:firstLine") != nil {
		t.Errorf("negative first line indent must become hanging: %v", ind.Attr)
	}
	if v := pPr.SelectElement("w:outlineLvl").SelectAttrValue("w:val", ""); v != "1" {
		t.Errorf("outlineLvl = %q", v)
	}
}

func TestFieldRuns(t *testing.T) {
	p := wml.NewParagraph()
	for _, r := range wml.FieldRuns(`TOC \o "1-3" \h`, "placeholder", wml.RunFormat{}, true) {
		p.AddChild(r)
	}

	var kinds []string
	for _, fc := range p.FindElements(".//w:fldChar") {
		kinds = append(kinds, fc.SelectAttrValue("w:fldCharType", ""))
	}
	if got := strings.Join(kinds, ","); got != "begin,separate,end" {
		t.Errorf("field chars = %s", got)
	}
	if p.FindElement(".//w:fldChar").SelectAttrValue("w:dirty", "") != "true" {
		t.Error("begin must be dirty")
	}
	instr := wml.FieldInstructions(p)
	if len(instr) != 1 || instr[0] != `TOC \o "1-3" \h` {
		t.Errorf("FieldInstructions() = %q", instr)
	}
	if got := p.FindElement(".//w:t").Text(); got != "placeholder" {
		t.Errorf("placeholder = %q", got)
	}
}
