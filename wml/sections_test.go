package wml_test

import (
	"errors"
	"strings"
	"testing"

	"docfmt/ooxml"
	"docfmt/wml"
	"docfmt/wml/wmltest"
)

func TestNewSectionBreak(t *testing.T) {
	tests := []struct {
		name  string
		loc   wml.BreakLocation
		final bool
		ok    bool
	}{
		{"final at body level", wml.BodyLevel{}, true, true},
		{"inline non-final", wml.InlineAfter{Para: 0}, false, true},
		{"non-final at body level", wml.BodyLevel{}, false, false},
		{"final inline", wml.InlineAfter{Para: 1}, true, false},
		{"no anchor", wml.InlineAfter{Para: wml.NoPara}, false, false},
		{"nil location", nil, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := wml.NewSectionBreak(tt.loc, tt.final)
			if (err == nil) != tt.ok {
				t.Errorf("NewSectionBreak() error = %v, want ok %v", err, tt.ok)
			}
			if err != nil && !errors.Is(err, wml.ErrBreakLocation) {
				t.Errorf("error %v is not ErrBreakLocation", err)
			}
		})
	}
}

func TestApplyBreak(t *testing.T) {
	d := wmltest.Document(t, "front", "chapter 1", "text", "chapter 2")
	ids := d.Paragraphs()

	if n := d.ClearSections(); n != 1 {
		t.Errorf("ClearSections() = %d, want 1", n)
	}

	// apply in reverse order, handles keep insertion points valid
	final, _ := wml.NewSectionBreak(wml.BodyLevel{}, true)
	second, _ := wml.NewSectionBreak(wml.InlineAfter{Para: ids[2]}, false)
	first, _ := wml.NewSectionBreak(wml.InlineAfter{Para: ids[0]}, false)

	var sects []wml.SectPr
	for _, b := range []wml.SectionBreak{final, second, first} {
		sp, _, err := d.ApplyBreak(b)
		if err != nil {
			t.Fatalf("ApplyBreak() error = %v", err)
		}
		sects = append(sects, sp)
	}
	sects[0].SetType("oddPage")
	sects[1].SetType("oddPage")
	sects[2].SetType("")

	want := "front,,chapter 1,text,,chapter 2"
	if got := strings.Join(texts(d), ","); got != want {
		t.Errorf("texts = %q, want %q", got, want)
	}

	all := d.Sections()
	if len(all) != 3 {
		t.Fatalf("Sections() = %d, want 3", len(all))
	}
	if all[0].Type() != "" || all[1].Type() != "oddPage" || all[2].Type() != "oddPage" {
		t.Errorf("types = %q %q %q", all[0].Type(), all[1].Type(), all[2].Type())
	}
	kids := d.Body().ChildElements()
	if kids[len(kids)-1] != all[2].Element() {
		t.Error("final section properties must be the last body child")
	}
}

func TestSectPr_Properties(t *testing.T) {
	d := wmltest.Document(t, "one")
	b, _ := wml.NewSectionBreak(wml.BodyLevel{}, true)
	sp, _, err := d.ApplyBreak(b)
	if err != nil {
		t.Fatal(err)
	}

	one := 1
	sp.SetReference(wml.Footer, wml.HdrFtrDefault, "rId10")
	sp.SetPageNumbering("upperRoman", &one)
	sp.SetLayoutDefaults()
	sp.SetTitlePage(true)
	sp.SetMargins(wml.Margins{Top: 1440, Right: 1800, Bottom: 1440, Left: 1800, Header: 851, Footer: 992})
	sp.SetType("nextPage")
	sp.SetReference(wml.Header, wml.HdrFtrDefault, "rId11")
	sp.SetReference(wml.Footer, wml.HdrFtrDefault, "rId12")

	var order []string
	for _, c := range sp.Element().ChildElements() {
		order = append(order, c.Tag)
	}
	want := "headerReference,footerReference,type,pgSz,pgMar,pgNumType,cols,titlePg,docGrid"
	if got := strings.Join(order, ","); got != want {
		t.Errorf("children = %s, want %s", got, want)
	}
	if rid, ok := sp.Reference(wml.Footer, wml.HdrFtrDefault); !ok || rid != "rId12" {
		t.Errorf("footer reference = %q", rid)
	}

	f, start, ok := sp.PageNumbering()
	if !ok || f != "upperRoman" || start == nil || *start != 1 {
		t.Errorf("PageNumbering() = %q %v %v", f, start, ok)
	}
	sp.SetPageNumbering("decimal", nil)
	if _, start, _ = sp.PageNumbering(); start != nil {
		t.Error("continued numbering must not have start")
	}
}

func TestHeadersFooters(t *testing.T) {
	d := wmltest.Document(t, "one")
	b, _ := wml.NewSectionBreak(wml.BodyLevel{}, true)
	sp, _, _ := d.ApplyBreak(b)

	used, err := d.NewHdrFtr(wml.Footer)
	if err != nil {
		t.Fatal(err)
	}
	orphan, err := d.NewHdrFtr(wml.Header)
	if err != nil {
		t.Fatal(err)
	}
	if used.Name != "word/footer1.xml" || orphan.Name != "word/header1.xml" {
		t.Errorf("names = %s, %s", used.Name, orphan.Name)
	}
	used.AddParagraph(wmltest.Paragraph("page"))
	sp.SetReference(wml.Footer, wml.HdrFtrDefault, used.RID)

	removed, err := d.PruneHdrFtr()
	if err != nil {
		t.Fatal(err)
	}
	if len(removed) != 1 || removed[0] != orphan.Name {
		t.Errorf("PruneHdrFtr() = %v", removed)
	}

	d = wmltest.Reopen(t, d)
	if d.Package().Has("word/header1.xml") {
		t.Error("orphan header survived save")
	}
	if ct := d.Package().ContentType("word/footer1.xml"); ct != ooxml.TypeFooter {
		t.Errorf("footer content type = %q", ct)
	}
	rid, ok := d.Sections()[0].Reference(wml.Footer, wml.HdrFtrDefault)
	if !ok {
		t.Fatal("footer reference lost")
	}
	part, err := d.HdrFtr(rid)
	if err != nil {
		t.Fatal(err)
	}
	if part.Text() != "page" {
		t.Errorf("footer text = %q", part.Text())
	}
	part.Reset()
	if len(part.Paragraphs()) != 0 {
		t.Error("Reset() must remove content")
	}
}

func TestSettings(t *testing.T) {
	d := wmltest.Document(t, "one")
	s, err := d.Settings()
	if err != nil {
		t.Fatal(err)
	}
	s.SetUpdateFields(true)
	s.SetEvenAndOddHeaders(true)
	s.SetDocVar(wml.GeneratedMarker, "first")
	s.SetDocVar(wml.GeneratedMarker, "second")

	d = wmltest.Reopen(t, d)
	if s, err = d.Settings(); err != nil {
		t.Fatal(err)
	}
	if !s.UpdateFields() || !s.EvenAndOddHeaders() {
		t.Error("flags lost")
	}
	if v, ok := s.DocVar(wml.GeneratedMarker); !ok || v != "second" {
		t.Errorf("DocVar() = %q, %v", v, ok)
	}
	if gen, _ := d.IsGenerated(); !gen {
		t.Error("IsGenerated() = false")
	}
}

func TestSettings_CreatedWhenMissing(t *testing.T) {
	p := wmltest.Package("one")
	rels, _ := p.Relationships("word/document.xml")
	for _, r := range rels.ByType(ooxml.RelSettings) {
		rels.Remove(r.ID)
	}
	p.Remove("word/settings.xml")

	d, err := wml.Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if gen, err := d.IsGenerated(); err != nil || gen {
		t.Errorf("IsGenerated() = %v, %v", gen, err)
	}
	if err := d.MarkGenerated("id"); err != nil {
		t.Fatal(err)
	}
	if !d.Package().Has("word/settings.xml") {
		t.Error("settings part was not created")
	}
}

func TestStripGenerated(t *testing.T) {
	d := wmltest.Document(t, "title", "chapter", "text")
	ids := d.Paragraphs()

	// author's own TOC and empty section break are never ours
	user := wml.NewParagraph()
	for _, r := range wml.FieldRuns(`TOC \o "1-3"`, "contents", wml.RunFormat{}, false) {
		user.AddChild(r)
	}
	userTOC, _ := d.InsertAfter(ids[1], user)
	userBreak := wml.NewParagraph()
	userBreak.CreateElement("w:pPr").CreateElement("w:sectPr")
	d.InsertAfter(userTOC, userBreak)

	// TOC block spanning two paragraphs after update by application
	tocTitle := d.InsertAtStart(wmltest.Paragraph("目录"))
	d.SetStyle(tocTitle, "customTOCTitle")
	p1 := wml.NewParagraph()
	runs := wml.FieldRuns(`TOC \o "1-3"`, "", wml.RunFormat{}, false)
	for _, r := range runs[:3] {
		p1.AddChild(r)
	}
	p2 := wml.NewParagraph()
	p2.AddChild(runs[3])
	id1, _ := d.InsertAfter(tocTitle, p1)
	d.InsertAfter(id1, p2)
	for _, id := range []wml.ParaID{tocTitle, id1} {
		if err := d.MarkInserted(id, wml.InsertedTOC); err != nil {
			t.Fatalf("MarkInserted() error = %v", err)
		}
	}

	b, _ := wml.NewSectionBreak(wml.InlineAfter{Para: ids[0]}, false)
	_, brk, err := d.ApplyBreak(b)
	if err != nil {
		t.Fatalf("ApplyBreak() error = %v", err)
	}
	if kind := d.InsertedKind(brk); kind != wml.InsertedBreak {
		t.Errorf("InsertedKind(break) = %q", kind)
	}
	if kind := d.InsertedKind(userTOC); kind != "" {
		t.Errorf("InsertedKind(user TOC) = %q", kind)
	}

	if d.Count() != 9 {
		t.Fatalf("Count() = %d, want 9", d.Count())
	}
	if n := d.StripGenerated(); n != 4 {
		t.Errorf("StripGenerated() = %d, want 4", n)
	}
	if got := strings.Join(texts(d), ","); got != "title,chapter,contents,,text" {
		t.Errorf("texts = %q", got)
	}
	if d.Element(userTOC) == nil {
		t.Error("author's TOC paragraph was removed")
	}
}

func TestMarkInserted_UniqueBookmarks(t *testing.T) {
	d := wmltest.Document(t, "one", "two")
	ids := d.Paragraphs()

	bm := d.Element(ids[0]).CreateElement("w:bookmarkStart")
	bm.CreateAttr("w:id", "7")
	bm.CreateAttr("w:name", "_Toc1")
	d.Element(ids[0]).CreateElement("w:bookmarkEnd").CreateAttr("w:id", "7")

	for _, id := range ids {
		if err := d.MarkInserted(id, wml.InsertedTOC); err != nil {
			t.Fatalf("MarkInserted() error = %v", err)
		}
	}
	seen := make(map[string]bool)
	for _, s := range d.Body().FindElements(".//w:bookmarkStart") {
		id := s.SelectAttrValue("w:id", "")
		if seen[id] {
			t.Errorf("bookmark id %s is used twice", id)
		}
		seen[id] = true
	}
	if len(seen) != 3 {
		t.Errorf("bookmarks = %d, want 3", len(seen))
	}
	if err := d.MarkInserted(wml.ParaID(100), wml.InsertedTOC); !errors.Is(err, wml.ErrNoParagraph) {
		t.Errorf("MarkInserted(missing) error = %v", err)
	}
}
