package rebuild

import (
	"strings"

	"docfmt/utils/debug"
	"docfmt/wml"
)

const dumpTextLimit = 48

// Dump returns readable tree of the planned sections. Paragraph texts are
// taken from doc, which must be the document plan was prepared for.
func (p *Prepared) Dump(doc *wml.Document) string {
	text := func(index int) string {
		if index < 1 || index > len(p.Paragraphs) {
			return ""
		}
		t := strings.TrimSpace(doc.Text(p.Paragraphs[index-1]))
		if r := []rune(t); len(r) > dumpTextLimit {
			t = string(r[:dumpTextLimit]) + "..."
		}
		return t
	}

	tw := debug.NewTreeWriter()
	tw.Line(0, "plan: %d section(s), %d paragraph(s)", len(p.Plan), len(p.Paragraphs))
	if p.Stripped > 0 {
		tw.Attr(1, "stripped", p.Stripped)
	}
	for _, s := range p.Plan {
		kind := "chapter"
		switch {
		case s.FrontMatter:
			kind = "front matter"
		case s.Heading == 0:
			kind = "body"
		}
		tw.Line(1, "section %d (%s)", s.Ordinal, kind)
		if !s.Title.Empty() {
			tw.Attr(2, "title block", s.Title)
			tw.Attr(3, "text", text(s.Title.First))
		}
		tw.Attr(2, "content", s.Content)
		if s.Heading > 0 {
			tw.Attr(2, "chapter", s.ChapterNumber)
			tw.Attr(3, "heading", text(s.Heading))
		}
		tw.Attr(2, "break", s.Break)
		tw.Attr(2, "numbering", s.Numbering)
		dumpSpec(tw, "header", s.Headers)
		dumpSpec(tw, "footer", s.Footers)
		if s.IsFinal {
			tw.Line(2, "final")
		}
	}
	if len(p.Warnings) > 0 {
		tw.Line(0, "warnings:")
		for _, w := range p.Warnings {
			tw.Line(1, "%s", w)
		}
	}
	return tw.String()
}

func dumpSpec(tw *debug.TreeWriter, label string, s HeaderFooterSpec) {
	if s.IsEmpty() {
		return
	}
	tw.Line(2, "%s", label)
	tw.Attr(3, "odd", s.Odd)
	tw.Attr(3, "even", s.Even)
	tw.Attr(3, "first page", s.FirstPage)
}
