package rebuild

import (
	"errors"
	"fmt"

	"docfmt/common"
	"docfmt/config"
)

// ParagraphRange is inclusive range of 1-based paragraph indexes. Range is
// empty when First > Last, zero value is empty.
type ParagraphRange struct {
	First int `yaml:"first"`
	Last  int `yaml:"last"`
}

func (r ParagraphRange) Empty() bool {
	return r.First < 1 || r.First > r.Last
}

func (r ParagraphRange) Len() int {
	if r.Empty() {
		return 0
	}
	return r.Last - r.First + 1
}

func (r ParagraphRange) String() string {
	if r.Empty() {
		return "empty"
	}
	return fmt.Sprintf("%d-%d", r.First, r.Last)
}

// NumberingScheme is page numbering of a section. Section which does not
// restart numbering continues count of its predecessor and has no start.
type NumberingScheme struct {
	Format  config.NumberFormat
	Start   *int
	Restart bool
}

// NewRestart returns scheme restarting numbering at start.
func NewRestart(format config.NumberFormat, start int) NumberingScheme {
	return NumberingScheme{Format: format, Start: &start, Restart: true}
}

// Continue returns scheme continuing numbering from previous section.
func Continue(format config.NumberFormat) NumberingScheme {
	return NumberingScheme{Format: format}
}

func (n NumberingScheme) Validate() error {
	if n.Restart && n.Start == nil {
		return errors.New("restarted numbering without start value")
	}
	if !n.Restart && n.Start != nil {
		return errors.New("continued numbering with start value")
	}
	return nil
}

func (n NumberingScheme) String() string {
	if n.Restart {
		return fmt.Sprintf("%s/start=%d/restart", n.Format, *n.Start)
	}
	return fmt.Sprintf("%s/continue", n.Format)
}

// HeaderFooterSpec holds header or footer templates per page kind, nil
// means nothing is written for that kind.
type HeaderFooterSpec struct {
	Odd       *string
	Even      *string
	FirstPage *string
}

func specFromConfig(pt config.PartTemplates) HeaderFooterSpec {
	opt := func(s string) *string {
		if len(s) == 0 {
			return nil
		}
		return &s
	}
	return HeaderFooterSpec{Odd: opt(pt.Odd), Even: opt(pt.Even), FirstPage: opt(pt.FirstPage)}
}

func (s HeaderFooterSpec) IsEmpty() bool {
	return s.Odd == nil && s.Even == nil && s.FirstPage == nil
}

// Section is independently paginated part of the document.
type Section struct {
	Ordinal int
	// Title is title block of front matter, it belongs to the section but is
	// not part of its content.
	Title   ParagraphRange
	Content ParagraphRange
	// Heading is index of top level heading starting the section, 0 for
	// front matter.
	Heading       int
	ChapterNumber int
	FrontMatter   bool
	IsFinal       bool
	Break         config.BreakKind
	Numbering     NumberingScheme
	Headers       HeaderFooterSpec
	Footers       HeaderFooterSpec
}

// Range returns all paragraphs of the section.
func (s Section) Range() ParagraphRange {
	if s.Title.Empty() {
		return s.Content
	}
	if s.Content.Empty() {
		return s.Title
	}
	return ParagraphRange{First: s.Title.First, Last: s.Content.Last}
}

// SectionPlan is ordered list of sections covering the document.
type SectionPlan []Section

var ErrInvalidPlan = errors.New("invalid section plan")

// Validate checks structural invariants: plan is not empty, only the last
// section is final, only the first section has no break kind, numbering
// schemes are consistent and sections cover paragraphs contiguously.
func (p SectionPlan) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("no sections: %w", ErrInvalidPlan)
	}
	next := 1
	for i, s := range p {
		if s.IsFinal != (i == len(p)-1) {
			return fmt.Errorf("section %d: final flag mismatch: %w", i, ErrInvalidPlan)
		}
		if (s.Break == config.BreakKindNone) != (i == 0) {
			return fmt.Errorf("section %d: unexpected break kind %s: %w", i, s.Break, ErrInvalidPlan)
		}
		if err := s.Numbering.Validate(); err != nil {
			return fmt.Errorf("section %d: %w: %w", i, err, ErrInvalidPlan)
		}
		if r := s.Range(); !r.Empty() {
			if r.First != next {
				return fmt.Errorf("section %d: starts at paragraph %d, expected %d: %w", i, r.First, next, ErrInvalidPlan)
			}
			next = r.Last + 1
		}
	}
	return nil
}

// Policy drives section planning.
type Policy struct {
	TopLevelRole       common.Role
	Break              config.BreakKind
	FrontMatterFormat  config.NumberFormat
	FrontMatterStart   int
	ContentFormat      config.NumberFormat
	ContentStart       int
	FrontMatterHeaders HeaderFooterSpec
	FrontMatterFooters HeaderFooterSpec
	ContentHeaders     HeaderFooterSpec
	ContentFooters     HeaderFooterSpec
	// KeepEmptyFrontMatter keeps front matter section even when document
	// starts with top level heading, TOC is going to fill it.
	KeepEmptyFrontMatter bool
}

func PolicyFromConfig(cfg *config.DocumentConfig) Policy {
	return Policy{
		TopLevelRole:         cfg.Sections.TopLevelRole,
		Break:                cfg.Sections.Break,
		FrontMatterFormat:    cfg.Numbering.FrontMatter.Format,
		FrontMatterStart:     cfg.Numbering.FrontMatter.Start,
		ContentFormat:        cfg.Numbering.Content.Format,
		ContentStart:         cfg.Numbering.Content.Start,
		FrontMatterHeaders:   specFromConfig(cfg.HeadersFooters.FrontMatter.Header),
		FrontMatterFooters:   specFromConfig(cfg.HeadersFooters.FrontMatter.Footer),
		ContentHeaders:       specFromConfig(cfg.HeadersFooters.Content.Header),
		ContentFooters:       specFromConfig(cfg.HeadersFooters.Content.Footer),
		KeepEmptyFrontMatter: cfg.TOC.Enable,
	}
}

// Plan splits document into sections. Roles are indexed by paragraph
// position (see classify.Classification.Resolve). Every paragraph of top
// level role starts new section, paragraphs before the first one form front
// matter. Without top level headings whole document becomes single section
// with continuous decimal numbering.
func Plan(roles []common.Role, policy Policy) (SectionPlan, []Warning) {
	var (
		starts []int
		warns  []Warning
		count  = len(roles)
	)
	for i, role := range roles {
		if role == policy.TopLevelRole {
			starts = append(starts, i+1)
		}
	}

	if len(starts) == 0 {
		warns = append(warns, warning(StructuralInvariantViolation, NoSection,
			"no %s paragraphs found, document is kept as a single section", policy.TopLevelRole))
		return SectionPlan{{
			Content:   ParagraphRange{First: 1, Last: count},
			IsFinal:   true,
			Break:     config.BreakKindNone,
			Numbering: Continue(config.NumberFormatDecimal),
			Headers:   policy.ContentHeaders,
			Footers:   policy.ContentFooters,
		}}, warns
	}

	var plan SectionPlan
	if starts[0] > 1 || policy.KeepEmptyFrontMatter {
		title := 0
		for title < starts[0]-1 && roles[title].IsDocumentTitle() {
			title++
		}
		plan = append(plan, Section{
			Title:       ParagraphRange{First: 1, Last: title},
			Content:     ParagraphRange{First: title + 1, Last: starts[0] - 1},
			FrontMatter: true,
			Break:       config.BreakKindNone,
			Numbering:   NewRestart(policy.FrontMatterFormat, policy.FrontMatterStart),
			Headers:     policy.FrontMatterHeaders,
			Footers:     policy.FrontMatterFooters,
		})
	}

	for k, first := range starts {
		last := count
		if k+1 < len(starts) {
			last = starts[k+1] - 1
		}
		s := Section{
			Ordinal:       len(plan),
			Content:       ParagraphRange{First: first, Last: last},
			Heading:       first,
			ChapterNumber: k + 1,
			Break:         policy.Break,
			Numbering:     Continue(policy.ContentFormat),
			Headers:       policy.ContentHeaders,
			Footers:       policy.ContentFooters,
		}
		if k == 0 {
			s.Numbering = NewRestart(policy.ContentFormat, policy.ContentStart)
		}
		if len(plan) == 0 {
			s.Break = config.BreakKindNone
		}
		plan = append(plan, s)
	}
	plan[len(plan)-1].IsFinal = true

	for i := starts[0] - 1; i < count; i++ {
		if roles[i].IsFrontMatter() {
			warns = append(warns, warning(ConfigError, NoSection,
				"paragraph %d has front matter role %s after first %s, kept in its chapter", i+1, roles[i], policy.TopLevelRole))
		}
	}
	return plan, warns
}
