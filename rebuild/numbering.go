package rebuild

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"docfmt/config"
	"docfmt/wml"
)

const pageToken = "{page}"

// PageNumberFormat is page number paragraph layout for a group of sections.
type PageNumberFormat struct {
	Template  string
	Alignment config.Alignment
	Run       wml.RunFormat
}

// FieldRun is rendered page number paragraph.
type FieldRun struct {
	Paragraph *etree.Element
	// HasField is false when template has no page token and paragraph is
	// literal text.
	HasField bool
}

// NewFieldRun renders template into paragraph: literal prefix and suffix
// around PAGE field. Only the first page token becomes field, the rest is
// kept as text.
func NewFieldRun(pf PageNumberFormat) (FieldRun, error) {
	tmpl := strings.ReplaceAll(pf.Template, "{PAGE}", pageToken)
	if len(tmpl) == 0 {
		tmpl = pageToken
	}
	runs := func(text string) []*etree.Element {
		if len(text) == 0 {
			return nil
		}
		return []*etree.Element{wml.EncodeRun(text, pf.Run)}
	}

	p := wml.NewFormattedParagraph("", wml.ParagraphFormat{Alignment: pf.Alignment.JC()})
	prefix, suffix, found := strings.Cut(tmpl, pageToken)
	if !found {
		for _, r := range runs(tmpl) {
			p.AddChild(r)
		}
		return FieldRun{Paragraph: p}, nil
	}

	field := wml.FieldRuns("PAGE", "1", pf.Run, false)
	if len(field) == 0 {
		return FieldRun{}, errors.New("unable to build PAGE field")
	}
	for _, group := range [][]*etree.Element{runs(prefix), field, runs(suffix)} {
		for _, r := range group {
			p.AddChild(r)
		}
	}
	return FieldRun{Paragraph: p, HasField: true}, nil
}

// NumberingOptions configures page numbering.
type NumberingOptions struct {
	Location    wml.PartKind
	FrontMatter PageNumberFormat
	Content     PageNumberFormat
}

// AssignNumbering writes numbering format of the section and puts page
// number into section own header or footer. Restarted numbering carries
// explicit start value, continued numbering has no start at all.
func AssignNumbering(pp *pageParts, ws *WrittenSection, scheme NumberingScheme, opts NumberingOptions) (FieldRun, []Warning, error) {
	if err := scheme.Validate(); err != nil {
		return FieldRun{}, nil, &Error{Kind: FieldInjectionFailure, Section: ws.Ordinal, Err: err}
	}

	var start *int
	if scheme.Restart {
		start = scheme.Start
	}
	ws.SectPr.SetPageNumbering(scheme.Format.String(), start)

	pf := opts.Content
	if ws.FrontMatter {
		pf = opts.FrontMatter
	}

	var warns []Warning
	fr, err := NewFieldRun(pf)
	if err != nil {
		return FieldRun{}, nil, &Error{Kind: FieldInjectionFailure, Section: ws.Ordinal, Err: err}
	}
	if !fr.HasField {
		warns = append(warns, warning(FieldInjectionFailure, ws.Ordinal, "page number template %q has no %s, written as text", pf.Template, pageToken))
	} else if strings.Count(strings.ReplaceAll(pf.Template, "{PAGE}", pageToken), pageToken) > 1 {
		warns = append(warns, warning(ConfigError, ws.Ordinal, "page number template %q has more than one %s, only the first is used", pf.Template, pageToken))
	}

	for _, which := range pp.pageKinds(ws) {
		pc, err := pp.get(ws, opts.Location, which)
		if err != nil {
			return FieldRun{}, warns, &Error{Kind: FieldInjectionFailure, Section: ws.Ordinal, Err: fmt.Errorf("unable to create %s: %w", opts.Location, err)}
		}
		// every page kind gets its own copy of the paragraph
		pc.number = []*etree.Element{fr.Paragraph.Copy()}
		pc.render()
	}
	return fr, warns, nil
}
