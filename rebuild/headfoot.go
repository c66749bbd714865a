package rebuild

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"docfmt/config"
	"docfmt/wml"
)

// HeaderOptions is formatting of header and footer text.
type HeaderOptions struct {
	Alignment config.Alignment
	Run       wml.RunFormat
}

// TemplateContext is section local data available to header and footer
// templates.
type TemplateContext struct {
	ChapterTitle  string
	ChapterNumber int
	DocumentTitle string
}

// Expand substitutes {chapter_title}, {chapter_number} and {document_title}
// tokens. Chapter number is empty for front matter.
func (tc TemplateContext) Expand(tmpl string) string {
	number := ""
	if tc.ChapterNumber > 0 {
		number = strconv.Itoa(tc.ChapterNumber)
	}
	return strings.NewReplacer(
		"{chapter_title}", tc.ChapterTitle,
		"{chapter_number}", number,
		"{document_title}", tc.DocumentTitle,
	).Replace(tmpl)
}

func (s HeaderFooterSpec) template(which wml.HdrFtrType) *string {
	switch which {
	case wml.HdrFtrEven:
		return s.Even
	case wml.HdrFtrFirst:
		return s.FirstPage
	default:
		return s.Odd
	}
}

// WriteHeadersFooters writes section own headers and footers of all kinds
// in use. Parts are unlinked from previous section first, template text
// replaces whatever text part had before so calling it again does not
// duplicate content. Page number paragraph, if any, stays after the text.
func WriteHeadersFooters(pp *pageParts, ws *WrittenSection, kinds []wml.PartKind, tc TemplateContext, opts HeaderOptions) (int, error) {
	written := 0
	for _, kind := range kinds {
		spec := ws.Headers
		if kind == wml.Footer {
			spec = ws.Footers
		}
		if err := pp.unlink(ws, kind); err != nil {
			return written, &Error{Kind: ConfigError, Section: ws.Ordinal, Err: fmt.Errorf("unable to create %s: %w", kind, err)}
		}
		for _, which := range pp.pageKinds(ws) {
			pc, err := pp.get(ws, kind, which)
			if err != nil {
				return written, &Error{Kind: ConfigError, Section: ws.Ordinal, Err: fmt.Errorf("unable to create %s: %w", kind, err)}
			}
			pc.text = nil
			if tmpl := spec.template(which); tmpl != nil {
				p := wml.NewFormattedParagraph("", wml.ParagraphFormat{Alignment: opts.Alignment.JC()})
				if text := tc.Expand(*tmpl); len(text) > 0 {
					p.AddChild(wml.EncodeRun(text, opts.Run))
				}
				pc.text = []*etree.Element{p}
				written++
			}
			pc.render()
		}
	}
	return written, nil
}
