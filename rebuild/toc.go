package rebuild

import (
	"fmt"
	"strings"

	"docfmt/config"
	"docfmt/wml"
)

// TOCOptions configures inserted table of contents.
type TOCOptions struct {
	Title            string
	TitleStyle       string
	MaxDepth         int
	Hyperlinks       bool
	HideInWebView    bool
	UseOutlineLevels bool
	Placeholder      string
}

func TOCOptionsFromConfig(tc config.TOCConfig) TOCOptions {
	return TOCOptions{
		Title:            tc.Title,
		MaxDepth:         tc.MaxDepth,
		Hyperlinks:       tc.Hyperlinks,
		HideInWebView:    tc.HideInWebView,
		UseOutlineLevels: tc.UseOutlineLevels,
		Placeholder:      tc.Placeholder,
	}
}

// Instruction returns TOC field instruction.
func (o TOCOptions) Instruction() string {
	var b strings.Builder
	fmt.Fprintf(&b, `TOC \o "1-%d"`, o.MaxDepth)
	if o.Hyperlinks {
		b.WriteString(` \h`)
	}
	if o.HideInWebView {
		b.WriteString(` \z`)
	}
	if o.UseOutlineLevels {
		b.WriteString(` \u`)
	}
	return b.String()
}

// InsertTOC puts title paragraph and TOC field paragraph at the start of the
// document and asks application to update fields on open since the field
// only has placeholder text. Handles of inserted paragraphs are returned in
// document order.
func InsertTOC(doc *wml.Document, opts TOCOptions) ([]wml.ParaID, error) {
	if opts.MaxDepth < 1 || opts.MaxDepth > 9 {
		return nil, &Error{Kind: FieldInjectionFailure, Section: 0, Err: fmt.Errorf("TOC depth %d is out of range 1-9", opts.MaxDepth)}
	}
	settings, err := doc.Settings()
	if err != nil {
		return nil, &Error{Kind: FieldInjectionFailure, Section: 0, Err: err}
	}

	field := wml.NewParagraph()
	for _, r := range wml.FieldRuns(opts.Instruction(), opts.Placeholder, wml.RunFormat{}, true) {
		field.AddChild(r)
	}
	ids := []wml.ParaID{doc.InsertAtStart(field)}

	if len(opts.Title) > 0 {
		title := wml.NewFormattedParagraph(opts.TitleStyle, wml.ParagraphFormat{})
		title.AddChild(wml.EncodeRun(opts.Title, wml.RunFormat{}))
		ids = append([]wml.ParaID{doc.InsertAtStart(title)}, ids...)
	}

	for _, id := range ids {
		if err := doc.MarkInserted(id, wml.InsertedTOC); err != nil {
			return nil, &Error{Kind: FieldInjectionFailure, Section: 0, Err: err}
		}
	}
	settings.SetUpdateFields(true)
	return ids, nil
}
