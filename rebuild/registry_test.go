package rebuild

import (
	"strings"
	"testing"

	"docfmt/common"
	"docfmt/config"
	"docfmt/units"
	"docfmt/wml"
	"docfmt/wml/wmltest"
)

func heading1(t *testing.T) StyleDefinition {
	t.Helper()
	def, err := DefinitionFromConfig(defaultConfig(t).Styles["Heading1"])
	if err != nil {
		t.Fatalf("DefinitionFromConfig() error = %v", err)
	}
	return def
}

func TestDefinitionFromConfig(t *testing.T) {
	lvl := 1
	sc := config.StyleConfig{
		Font: config.FontConfig{Latin: "Arial", EastAsian: "黑体", Size: "小四", Bold: true},
		Paragraph: config.ParagraphConfig{
			Alignment:       config.AlignmentJustify,
			LineSpacing:     "1.5倍",
			SpaceBefore:     "12pt",
			FirstLineIndent: "2字符",
			LeftIndent:      "bogus",
		},
		OutlineLevel: &lvl,
	}
	def, err := DefinitionFromConfig(sc)
	if err == nil || !strings.Contains(err.Error(), "left indent") {
		t.Errorf("expected left indent error, got %v", err)
	}
	if def.Font.Size != 12 {
		t.Errorf("size = %v, want 12", def.Font.Size)
	}
	if def.Paragraph.FirstLineIndent == nil || *def.Paragraph.FirstLineIndent != 24 {
		t.Errorf("first line indent = %v, want 24 (2 characters of 12pt)", def.Paragraph.FirstLineIndent)
	}
	if def.Paragraph.LeftIndent != nil {
		t.Error("invalid value must be left unset")
	}
	if def.Paragraph.LineSpacing == nil || def.Paragraph.LineSpacing.Multiple != 1.5 {
		t.Errorf("line spacing = %+v", def.Paragraph.LineSpacing)
	}
	if def.OutlineLevel == nil || *def.OutlineLevel != 1 {
		t.Errorf("outline level = %v", def.OutlineLevel)
	}
	lvl = 5
	if *def.OutlineLevel != 1 {
		t.Error("definition must not share outline level with configuration")
	}
}

func TestRegistry_EnsureStyleIdempotent(t *testing.T) {
	doc := wmltest.Document(t, "a")
	reg, err := NewRegistry(doc)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	before := reg.Count()
	def := heading1(t)

	id, created, warns := reg.EnsureStyle(common.RoleHeading1, def)
	if !created || id != "customHeading1" || len(warns) != 0 {
		t.Errorf("first EnsureStyle() = %q %v %v", id, created, warns)
	}
	id2, created, _ := reg.EnsureStyle(common.RoleHeading1, def)
	if created || id2 != id {
		t.Errorf("second EnsureStyle() = %q %v", id2, created)
	}
	if got := reg.Count(); got != before+1 {
		t.Errorf("style count = %d, want %d", got, before+1)
	}

	// survives serialization
	doc = wmltest.Reopen(t, doc)
	reg, _ = NewRegistry(doc)
	if _, created, _ := reg.EnsureStyle(common.RoleHeading1, def); created {
		t.Error("style must be found after reopening")
	}
	if got := reg.Count(); got != before+1 {
		t.Errorf("style count after reopen = %d, want %d", got, before+1)
	}
}

func TestRegistry_EnsureStyleProperties(t *testing.T) {
	doc := wmltest.Document(t, "a")
	reg, _ := NewRegistry(doc)
	hanging := units.Points(21)
	def := StyleDefinition{
		Font:      FontDefinition{Latin: "Arial", EastAsian: "楷体", Size: 14, Bold: true},
		Paragraph: ParagraphDefinition{Alignment: config.AlignmentCenter, HangingIndent: &hanging},
	}
	lvl := 0
	def.OutlineLevel = &lvl
	id, _, _ := reg.EnsureStyle(common.RoleReferenceItem, def)

	styles, _ := doc.Styles()
	st, ok := styles.ByID(id)
	if !ok {
		t.Fatalf("style %s not found", id)
	}
	if st.Name() != "customReferenceItem" || st.Type() != "paragraph" {
		t.Errorf("style = %s %s", st.Name(), st.Type())
	}
	if f := wml.Fonts(st.RunProperties()); f.Latin != "Arial" || f.EastAsian != "楷体" {
		t.Errorf("fonts = %+v", f)
	}
	pPr := st.ParagraphProperties()
	if ind := pPr.FindElement("w:ind"); ind == nil || ind.SelectAttrValue("w:hanging", "") != "420" {
		t.Errorf("hanging indent not written: %v", ind)
	}
	if jc := pPr.FindElement("w:jc"); jc == nil || jc.SelectAttrValue("w:val", "") != "center" {
		t.Error("alignment not written")
	}
	if got, ok := st.OutlineLevel(); !ok || got != 0 {
		t.Errorf("outline level = %d %v", got, ok)
	}

	// update drops properties no longer in definition
	def.OutlineLevel = nil
	def.Font.EastAsian = "宋体"
	reg.EnsureStyle(common.RoleReferenceItem, def)
	st, _ = styles.ByID(id)
	if _, ok := st.OutlineLevel(); ok {
		t.Error("outline level must be removed on update")
	}
	if f := wml.Fonts(st.RunProperties()); f.EastAsian != "宋体" || f.Latin != "Arial" {
		t.Errorf("fonts after update = %+v", f)
	}
}

func TestRegistry_MissingFonts(t *testing.T) {
	doc := wmltest.Document(t, "a")
	reg, _ := NewRegistry(doc)
	id, _, warns := reg.EnsureStyle(common.RoleNormal, StyleDefinition{})
	if len(warns) != 2 {
		t.Fatalf("warnings = %v, want 2", warns)
	}
	for _, w := range warns {
		if w.Kind != ConfigError {
			t.Errorf("warning kind = %s", w.Kind)
		}
	}
	styles, _ := doc.Styles()
	st, _ := styles.ByID(id)
	if f := wml.Fonts(st.RunProperties()); f.Latin != DefaultLatinFont || f.EastAsian != DefaultEastAsianFont {
		t.Errorf("fonts = %+v", f)
	}
}

func TestRegistry_ApplyStyles(t *testing.T) {
	doc := wmltest.Document(t, "title", "chapter", "text", "poem")
	reg, _ := NewRegistry(doc)
	reg.EnsureStyle(common.RoleHeading1, heading1(t))
	reg.EnsureStyle(common.RoleTitle, heading1(t))

	paras := doc.Paragraphs()
	doc.SetStyle(paras[2], "Normal")
	roles := []common.Role{common.RoleTitle, common.RoleHeading1, common.RoleUnclassified, common.RoleQuote}

	applied, warns := reg.ApplyStyles(roles, paras)
	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}
	if len(warns) != 1 || !strings.Contains(warns[0].Message, "Quote") {
		t.Errorf("warnings = %v", warns)
	}
	want := []string{"customTitle", "customHeading1", "Normal", ""}
	for i, id := range paras {
		if got := doc.StyleOf(id); got != want[i] {
			t.Errorf("paragraph %d style = %q, want %q", i+1, got, want[i])
		}
	}
}
