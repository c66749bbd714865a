package rebuild

import (
	"fmt"

	"go.uber.org/multierr"

	"docfmt/config"
	"docfmt/units"
	"docfmt/wml"
)

// paper sizes in millimeters, portrait
var paperSizes = map[string][2]units.Points{
	"A3":     {297 * mm, 420 * mm},
	"A4":     {210 * mm, 297 * mm},
	"A5":     {148 * mm, 210 * mm},
	"B5":     {176 * mm, 250 * mm},
	"Letter": {8.5 * 72, 11 * 72},
	"Legal":  {8.5 * 72, 14 * 72},
}

const mm = units.Points(72 / 25.4)

// PageSetup is page geometry written to every section.
type PageSetup struct {
	Size    wml.PageSize
	Margins wml.Margins
}

// DefaultPageSetup is A4 portrait with Word default margins.
func DefaultPageSetup() PageSetup {
	a4 := paperSizes["A4"]
	return PageSetup{
		Size: wml.PageSize{Width: a4[0].Twips(), Height: a4[1].Twips()},
		Margins: wml.Margins{
			Top: 1440, Bottom: 1440, Left: 1800, Right: 1800,
			Header: 851, Footer: 992,
		},
	}
}

// PageSetupFromConfig converts page configuration. Values which could not be
// parsed keep defaults and are reported in returned error.
func PageSetupFromConfig(pc config.PageConfig) (PageSetup, error) {
	var (
		ps   = DefaultPageSetup()
		errs error
	)

	length := func(name, value string, dst *int) {
		if len(value) == 0 {
			return
		}
		pt, err := units.Parse(value)
		if err == nil && pt < 0 {
			err = fmt.Errorf("%q: %w", value, units.ErrInvalidValue)
		}
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", name, err))
			return
		}
		*dst = pt.Twips()
	}

	if size, ok := paperSizes[pc.Size]; ok {
		ps.Size.Width, ps.Size.Height = size[0].Twips(), size[1].Twips()
	} else if pc.Size == "custom" {
		length("page width", pc.Width, &ps.Size.Width)
		length("page height", pc.Height, &ps.Size.Height)
	} else if len(pc.Size) > 0 {
		errs = multierr.Append(errs, fmt.Errorf("unknown paper size %q", pc.Size))
	}
	if pc.Orientation == config.OrientationLandscape {
		ps.Size.Landscape = true
		if ps.Size.Width < ps.Size.Height {
			ps.Size.Width, ps.Size.Height = ps.Size.Height, ps.Size.Width
		}
	}

	m := pc.Margins
	length("top margin", m.Top, &ps.Margins.Top)
	length("bottom margin", m.Bottom, &ps.Margins.Bottom)
	length("left margin", m.Left, &ps.Margins.Left)
	length("right margin", m.Right, &ps.Margins.Right)
	length("header distance", m.Header, &ps.Margins.Header)
	length("footer distance", m.Footer, &ps.Margins.Footer)
	length("gutter", m.Gutter, &ps.Margins.Gutter)

	return ps, errs
}

// Binding ties sections of a plan to stable paragraph handles so later
// insertions do not invalidate positions.
type Binding struct {
	Plan SectionPlan
	// Last paragraph of every section, NoPara for sections without
	// paragraphs.
	Last []wml.ParaID
	// Heading paragraph of every section, NoPara for front matter.
	Heading []wml.ParaID
	// TitleBlock paragraphs of front matter.
	TitleBlock []wml.ParaID
}

// Bind resolves plan paragraph indexes against current document paragraphs.
func Bind(doc *wml.Document, plan SectionPlan) (*Binding, error) {
	paras := doc.Paragraphs()
	at := func(idx int) (wml.ParaID, error) {
		if idx < 1 || idx > len(paras) {
			return wml.NoPara, fmt.Errorf("paragraph %d does not exist (document has %d): %w", idx, len(paras), wml.ErrNoParagraph)
		}
		return paras[idx-1], nil
	}

	b := &Binding{
		Plan:    plan,
		Last:    make([]wml.ParaID, len(plan)),
		Heading: make([]wml.ParaID, len(plan)),
	}
	for i, s := range plan {
		b.Last[i], b.Heading[i] = wml.NoPara, wml.NoPara
		if r := s.Range(); !r.Empty() {
			id, err := at(r.Last)
			if err != nil {
				return nil, fmt.Errorf("section %d: %w", i, err)
			}
			b.Last[i] = id
		}
		if s.Heading > 0 {
			id, err := at(s.Heading)
			if err != nil {
				return nil, fmt.Errorf("section %d: %w", i, err)
			}
			b.Heading[i] = id
		}
		if s.FrontMatter {
			for idx := s.Title.First; idx <= s.Title.Last; idx++ {
				id, err := at(idx)
				if err != nil {
					return nil, fmt.Errorf("section %d: %w", i, err)
				}
				b.TitleBlock = append(b.TitleBlock, id)
			}
		}
	}
	return b, nil
}

// WrittenSection is a section which got its section properties.
type WrittenSection struct {
	Section
	SectPr wml.SectPr
	// BreakPara is the paragraph holding section properties, NoPara for the
	// final section.
	BreakPara wml.ParaID
}

// WriteReport describes section writing results.
type WriteReport struct {
	Sections []*WrittenSection
	Inline   int
	Skipped  []int
}

// WriteSections replaces document sections with the ones from binding.
// Properties of every section but the final one are kept in new empty
// paragraph following its last paragraph, properties of the final section
// are kept at body level. The first written section has no break kind.
func WriteSections(doc *wml.Document, b *Binding, setup PageSetup) (*WriteReport, []Warning) {
	var (
		res   = &WriteReport{}
		warns []Warning
	)

	doc.ClearSections()

	for i, s := range b.Plan {
		var loc wml.BreakLocation = wml.BodyLevel{}
		if !s.IsFinal {
			if b.Last[i] == wml.NoPara {
				warns = append(warns, warning(StructuralInvariantViolation, i, "section has no paragraphs, merged into the next one"))
				res.Skipped = append(res.Skipped, i)
				continue
			}
			loc = wml.InlineAfter{Para: b.Last[i]}
		}

		brk, err := wml.NewSectionBreak(loc, s.IsFinal)
		if err == nil {
			var (
				sp  wml.SectPr
				pid wml.ParaID
			)
			if sp, pid, err = doc.ApplyBreak(brk); err == nil {
				if len(res.Sections) == 0 {
					// boundary of the first section is implicit
					sp.SetType("")
				} else {
					sp.SetType(s.Break.String())
				}
				sp.SetPageSize(setup.Size)
				sp.SetMargins(setup.Margins)
				sp.SetLayoutDefaults()
				sp.SetTitlePage(s.Headers.FirstPage != nil || s.Footers.FirstPage != nil)

				res.Sections = append(res.Sections, &WrittenSection{Section: s, SectPr: sp, BreakPara: pid})
				if pid != wml.NoPara {
					res.Inline++
				}
				continue
			}
		}
		warns = append(warns, warning(StructuralInvariantViolation, i, "unable to write section break: %v", err))
		res.Skipped = append(res.Skipped, i)
	}
	return res, warns
}
