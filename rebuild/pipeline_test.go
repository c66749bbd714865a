package rebuild

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"docfmt/classify"
	"docfmt/common"
	"docfmt/config"
	"docfmt/ooxml"
	"docfmt/wml"
	"docfmt/wml/wmltest"
)

var scenarioTexts = []string{"My Thesis", "Introduction", "text one", "Results", "text two"}

func scenarioClassification() classify.Classification {
	var cls classify.Classification
	for i, role := range scenarioA() {
		cls = append(cls, classify.Entry{Index: i + 1, Role: role})
	}
	return cls
}

func partText(t *testing.T, doc *wml.Document, sp wml.SectPr, kind wml.PartKind, which wml.HdrFtrType) string {
	t.Helper()
	rid, ok := sp.Reference(kind, which)
	if !ok {
		t.Fatalf("section has no %s of type %s", kind, which)
	}
	part, err := doc.HdrFtr(rid)
	if err != nil {
		t.Fatalf("HdrFtr(%s) error = %v", rid, err)
	}
	return part.Text()
}

type docStats struct {
	styles, sections, toc, paragraphs, headers, footers int
}

func stats(t *testing.T, doc *wml.Document) docStats {
	t.Helper()
	reg, err := NewRegistry(doc)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	s := docStats{
		styles:     reg.Count(),
		sections:   len(doc.Sections()),
		paragraphs: doc.Count(),
		headers:    len(doc.Package().PartsOfType(ooxml.TypeHeader)),
		footers:    len(doc.Package().PartsOfType(ooxml.TypeFooter)),
	}
	for _, id := range doc.Paragraphs() {
		for _, instr := range wml.FieldInstructions(doc.Element(id)) {
			if strings.HasPrefix(instr, "TOC") {
				s.toc++
			}
		}
	}
	return s
}

func TestRun_ScenarioA(t *testing.T) {
	doc := wmltest.Document(t, scenarioTexts...)
	cfg := defaultConfig(t)

	report, err := Run(context.Background(), doc, scenarioClassification(), cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Phase() != PhaseHeadersWritten {
		t.Errorf("phase = %s", report.Phase())
	}
	if !report.TOCInserted || report.SectionsWritten != 3 || report.ParagraphsStyled != 5 {
		t.Errorf("report = %+v", report)
	}
	if len(report.NumberingApplied) != 3 || len(report.HeadersWritten) != 3 {
		t.Errorf("numbering = %v headers = %v", report.NumberingApplied, report.HeadersWritten)
	}
	if len(report.StylesCreated) != len(cfg.Styles) || len(report.StylesUpdated) != 0 {
		t.Errorf("styles created = %v updated = %v", report.StylesCreated, report.StylesUpdated)
	}
	if len(report.RunID) == 0 {
		t.Error("run id is empty")
	}
	if len(report.Warnings) != 0 {
		t.Errorf("warnings = %v", report.Warnings)
	}

	var texts []string
	for _, id := range doc.Paragraphs() {
		texts = append(texts, doc.Text(id))
	}
	want := "目录|" + cfg.TOC.Placeholder + "|My Thesis||Introduction|text one||Results|text two"
	if got := strings.Join(texts, "|"); got != want {
		t.Errorf("paragraphs = %q, want %q", got, want)
	}

	sects := checkSectionLayout(t, doc, 3)
	numbering := []struct {
		format string
		start  int
	}{{"upperRoman", 1}, {"decimal", 1}, {"decimal", 0}}
	for i, sp := range sects {
		format, start, ok := sp.PageNumbering()
		if !ok || format != numbering[i].format {
			t.Errorf("section %d numbering format = %q", i, format)
		}
		if numbering[i].start == 0 && start != nil {
			t.Errorf("section %d continues numbering but has start %d", i, *start)
		}
		if numbering[i].start != 0 && (start == nil || *start != numbering[i].start) {
			t.Errorf("section %d start = %v, want %d", i, start, numbering[i].start)
		}
	}

	if got := partText(t, doc, sects[0], wml.Header, wml.HdrFtrDefault); got != "My Thesis" {
		t.Errorf("front matter header = %q", got)
	}
	if got := partText(t, doc, sects[0], wml.Footer, wml.HdrFtrDefault); got != "1" {
		t.Errorf("front matter footer = %q", got)
	}
	if got := partText(t, doc, sects[1], wml.Header, wml.HdrFtrDefault); got != "Introduction" {
		t.Errorf("chapter 1 odd header = %q", got)
	}
	if got := partText(t, doc, sects[2], wml.Header, wml.HdrFtrDefault); got != "Results" {
		t.Errorf("chapter 2 odd header = %q", got)
	}
	if got := partText(t, doc, sects[2], wml.Header, wml.HdrFtrEven); got != "My Thesis" {
		t.Errorf("chapter 2 even header = %q", got)
	}
	if got := partText(t, doc, sects[1], wml.Footer, wml.HdrFtrEven); got != "第 1 页" {
		t.Errorf("chapter 1 even footer = %q", got)
	}

	// sections do not share parts
	seen := make(map[string]bool)
	for _, sp := range sects {
		for _, rid := range sp.References() {
			if seen[rid] {
				t.Errorf("part %s is shared between sections", rid)
			}
			seen[rid] = true
		}
	}

	settings, _ := doc.Settings()
	if !settings.EvenAndOddHeaders() || !settings.UpdateFields() {
		t.Error("document settings are not updated")
	}
	if generated, _ := doc.IsGenerated(); !generated {
		t.Error("document must be marked")
	}
}

func TestRun_ScenarioD(t *testing.T) {
	cfg := defaultConfig(t)
	log := zaptest.NewLogger(t)
	path := filepath.Join(t.TempDir(), "out.docx")

	doc := wmltest.Document(t, scenarioTexts...)
	report, err := Run(context.Background(), doc, scenarioClassification(), cfg, log)
	if err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	if err := Save(doc, report, path, false); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if report.Phase() != PhaseSaved {
		t.Errorf("phase after save = %s", report.Phase())
	}
	first := stats(t, doc)

	for range 2 {
		doc, err = wml.Open(path)
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		report, err = Run(context.Background(), doc, scenarioClassification(), cfg, log)
		if err != nil {
			t.Fatalf("repeated Run() error = %v", err)
		}
		if len(report.StylesCreated) != 0 || len(report.StylesUpdated) != len(cfg.Styles) {
			t.Errorf("repeated run created %v updated %v", report.StylesCreated, report.StylesUpdated)
		}
		if err := Save(doc, report, path, true); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		doc, err = wml.Open(path)
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		if got := stats(t, doc); got != first {
			t.Errorf("stats after repeated run = %+v, want %+v", got, first)
		}
	}
	if first.toc != 1 || first.sections != 3 || first.headers != 6 || first.footers != 6 {
		t.Errorf("stats = %+v", first)
	}
}

func TestRun_ScenarioC(t *testing.T) {
	doc := wmltest.Document(t, "one", "two", "three")
	cfg := defaultConfig(t)
	cfg.TOC.Enable = false
	cls := classify.Classification{{Index: 1, Role: common.RoleNormal}, {Index: 3, Role: common.RoleNormal}}

	report, err := Run(context.Background(), doc, cls, cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.SectionsWritten != 1 || report.TOCInserted {
		t.Errorf("report = %+v", report)
	}
	if !hasWarning(report.Warnings, StructuralInvariantViolation) {
		t.Errorf("warnings = %v", report.Warnings)
	}
	sects := checkSectionLayout(t, doc, 1)
	format, start, _ := sects[0].PageNumbering()
	if format != "decimal" || start != nil {
		t.Errorf("numbering = %s %v, want continuous decimal", format, start)
	}
	if doc.Count() != 3 {
		t.Errorf("paragraphs = %d, want 3", doc.Count())
	}
}

func TestRun_Degraded(t *testing.T) {
	doc := wmltest.Document(t, scenarioTexts...)
	cfg := defaultConfig(t)
	cfg.Numbering.Content.Template = "page"
	cfg.Page.Margins.Left = "far"
	cfg.Styles["Poem"] = config.StyleConfig{}
	delete(cfg.Styles, "Normal")

	report, err := Run(context.Background(), doc, scenarioClassification(), cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	var msgs []string
	for _, w := range report.Warnings {
		msgs = append(msgs, w.String())
	}
	all := strings.Join(msgs, "\n")
	for _, want := range []string{"left margin", `"Poem"`, "role Normal has no configured style", "has no {page}"} {
		if !strings.Contains(all, want) {
			t.Errorf("warnings do not mention %q:\n%s", want, all)
		}
	}
	if report.SectionsWritten != 3 || len(report.NumberingApplied) != 3 {
		t.Errorf("degraded run must still complete, report = %+v", report)
	}
}

func TestRun_TOCFailureIsFatal(t *testing.T) {
	doc := wmltest.Document(t, scenarioTexts...)
	cfg := defaultConfig(t)
	cfg.TOC.MaxDepth = 12

	report, err := Run(context.Background(), doc, scenarioClassification(), cfg, zaptest.NewLogger(t))
	var e *Error
	if !errors.As(err, &e) || e.Kind != FieldInjectionFailure {
		t.Fatalf("Run() error = %v, want FieldInjectionFailure", err)
	}
	if len(report.FatalError) == 0 || report.Phase() != PhasePlanned {
		t.Errorf("report = %+v phase = %s", report, report.Phase())
	}
	if err := Save(doc, report, filepath.Join(t.TempDir(), "x.docx"), false); err == nil {
		t.Error("failed run must not be saved")
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	doc := wmltest.Document(t, scenarioTexts...)
	_, err := Run(ctx, doc, scenarioClassification(), defaultConfig(t), zaptest.NewLogger(t))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestSave_PersistenceError(t *testing.T) {
	doc := wmltest.Document(t, scenarioTexts...)
	report, err := Run(context.Background(), doc, scenarioClassification(), defaultConfig(t), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	err = Save(doc, report, filepath.Join(t.TempDir(), "missing", "out.docx"), false)
	var e *Error
	if !errors.As(err, &e) || e.Kind != PersistenceError {
		t.Errorf("Save() error = %v, want PersistenceError", err)
	}
	if len(report.FatalError) == 0 {
		t.Error("report must record fatal error")
	}
}

func TestRun_RepeatedKeepsAuthorTOC(t *testing.T) {
	cfg := defaultConfig(t)
	log := zaptest.NewLogger(t)
	path := filepath.Join(t.TempDir(), "out.docx")

	doc := wmltest.Document(t, scenarioTexts...)
	own := wml.NewParagraph()
	for _, r := range wml.FieldRuns(`TOC \o "1-3"`, "contents", wml.RunFormat{}, false) {
		own.AddChild(r)
	}
	if _, err := doc.InsertAfter(doc.Paragraphs()[0], own); err != nil {
		t.Fatalf("InsertAfter() error = %v", err)
	}
	roles := []common.Role{common.RoleTitle, common.RoleNormal, common.RoleHeading1, common.RoleNormal, common.RoleHeading1, common.RoleNormal}
	var cls classify.Classification
	for i, role := range roles {
		cls = append(cls, classify.Entry{Index: i + 1, Role: role})
	}

	check := func(pass string, doc *wml.Document, report *Report) docStats {
		t.Helper()
		for _, w := range report.Warnings {
			if strings.Contains(w.String(), "does not exist") {
				t.Errorf("%s: warning %s", pass, w)
			}
		}
		var headings int
		for _, id := range doc.Paragraphs() {
			switch doc.Text(id) {
			case "Introduction", "Results":
				headings++
				if got := doc.StyleOf(id); got != StyleName(common.RoleHeading1) {
					t.Errorf("%s: heading %q style = %q", pass, doc.Text(id), got)
				}
			case "text one", "text two":
				if got := doc.StyleOf(id); got != StyleName(common.RoleNormal) {
					t.Errorf("%s: text %q style = %q", pass, doc.Text(id), got)
				}
			}
		}
		if headings != 2 {
			t.Errorf("%s: headings = %d, want 2", pass, headings)
		}
		return stats(t, doc)
	}

	report, err := Run(context.Background(), doc, cls, cfg, log)
	if err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	if err := Save(doc, report, path, false); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	first := check("first run", doc, report)
	if first.paragraphs != 10 || first.toc != 2 || first.sections != 3 {
		t.Errorf("first run stats = %+v", first)
	}

	doc, err = wml.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	report, err = Run(context.Background(), doc, cls, cfg, log)
	if err != nil {
		t.Fatalf("repeated Run() error = %v", err)
	}
	if report.ParagraphsStyled != len(roles) {
		t.Errorf("repeated run styled %d paragraphs, want %d", report.ParagraphsStyled, len(roles))
	}
	if got := check("repeated run", doc, report); got != first {
		t.Errorf("stats after repeated run = %+v, want %+v", got, first)
	}

	var kept bool
	for _, id := range doc.Paragraphs() {
		if doc.Text(id) == "contents" && doc.InsertedKind(id) == "" {
			kept = true
		}
	}
	if !kept {
		t.Error("author's TOC paragraph was removed")
	}
}
