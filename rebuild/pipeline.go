package rebuild

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"docfmt/classify"
	"docfmt/common"
	"docfmt/config"
	"docfmt/wml"
)

// Prepared is document with previous run artifacts removed and classified
// paragraphs resolved into section plan.
type Prepared struct {
	Roles      []common.Role
	Paragraphs []wml.ParaID
	Plan       SectionPlan
	Stripped   int
	Warnings   []Warning
}

// Prepare brings document back to original paragraph space if we produced
// it before, resolves classification and plans sections. Document is only
// changed when it carries our marker.
func Prepare(doc *wml.Document, cls classify.Classification, cfg *config.DocumentConfig) (*Prepared, error) {
	res := &Prepared{}

	generated, err := doc.IsGenerated()
	if err != nil {
		return nil, &Error{Kind: ConfigError, Section: NoSection, Err: fmt.Errorf("unable to read settings: %w", err)}
	}
	if generated {
		res.Stripped = doc.StripGenerated()
	}

	res.Paragraphs = doc.Paragraphs()
	roles, msgs := cls.Resolve(len(res.Paragraphs))
	for _, m := range msgs {
		res.Warnings = append(res.Warnings, warning(ConfigError, NoSection, "%s", m))
	}
	res.Roles = roles

	plan, warns := Plan(roles, PolicyFromConfig(cfg))
	res.Warnings = append(res.Warnings, warns...)
	if err := plan.Validate(); err != nil {
		return nil, &Error{Kind: StructuralInvariantViolation, Section: NoSection, Err: err}
	}
	res.Plan = plan
	return res, nil
}

func configWarnings(err error, section int, style string) []Warning {
	var warns []Warning
	for _, e := range multierr.Errors(err) {
		if len(style) > 0 {
			warns = append(warns, warning(ConfigError, section, "style %s: %v", style, e))
		} else {
			warns = append(warns, warning(ConfigError, section, "%v", e))
		}
	}
	return warns
}

// Run reconstructs document structure: page setup, styles, section plan,
// table of contents, sections, page numbers and headers and footers. Failure
// to insert table of contents aborts processing, later failures are
// recorded in the report and processing continues. Document is not saved,
// see Save. Context is checked between phases.
func Run(ctx context.Context, doc *wml.Document, cls classify.Classification, cfg *config.DocumentConfig, log *zap.Logger) (*Report, error) {
	report, err := newReport()
	if err != nil {
		return nil, err
	}
	log = log.With(zap.String("run", report.RunID))

	fatal := func(err error) (*Report, error) {
		report.fail(err)
		return report, err
	}

	// page setup
	setup, err := PageSetupFromConfig(cfg.Page)
	report.warn(configWarnings(err, NoSection, "")...)

	// styles
	reg, err := NewRegistry(doc)
	if err != nil {
		return fatal(&Error{Kind: ConfigError, Section: NoSection, Err: err})
	}
	roles, unknown := cfg.StyleRoles()
	for _, name := range unknown {
		report.warn(warning(ConfigError, NoSection, "style %q does not match any known role, ignored", name))
	}
	if cfg.TOC.Enable && len(cfg.TOC.Title) > 0 {
		if _, ok := cfg.Style(common.RoleTOCTitle); !ok {
			report.warn(warning(ConfigError, NoSection, "no %s style configured, using defaults", common.RoleTOCTitle))
			roles = append(roles, common.RoleTOCTitle)
		}
	}
	for _, role := range roles {
		sc, _ := cfg.Style(role)
		def, err := DefinitionFromConfig(sc)
		report.warn(configWarnings(err, NoSection, string(role))...)
		id, created, warns := reg.EnsureStyle(role, def)
		report.warn(warns...)
		if created {
			report.StylesCreated = append(report.StylesCreated, id)
		} else {
			report.StylesUpdated = append(report.StylesUpdated, id)
		}
	}
	log.Debug("Styles ensured", zap.Int("created", len(report.StylesCreated)), zap.Int("updated", len(report.StylesUpdated)))

	if err := ctx.Err(); err != nil {
		return fatal(err)
	}

	// plan
	prep, err := Prepare(doc, cls, cfg)
	if err != nil {
		return fatal(err)
	}
	report.warn(prep.Warnings...)
	if prep.Stripped > 0 {
		log.Debug("Removed paragraphs generated by previous run", zap.Int("count", prep.Stripped))
	}

	applied, warns := reg.ApplyStyles(prep.Roles, prep.Paragraphs)
	report.ParagraphsStyled = applied
	report.warn(warns...)

	binding, err := Bind(doc, prep.Plan)
	if err != nil {
		return fatal(&Error{Kind: StructuralInvariantViolation, Section: NoSection, Err: err})
	}
	tc := make([]TemplateContext, len(prep.Plan))
	docTitle := cfg.HeadersFooters.DocumentTitle
	if len(docTitle) == 0 {
		var parts []string
		for _, id := range binding.TitleBlock {
			if t := strings.TrimSpace(doc.Text(id)); len(t) > 0 {
				parts = append(parts, t)
			}
		}
		docTitle = strings.Join(parts, " ")
	}
	report.DocumentTitle = docTitle
	for i, s := range prep.Plan {
		tc[i] = TemplateContext{ChapterNumber: s.ChapterNumber, DocumentTitle: docTitle}
		if binding.Heading[i] != wml.NoPara {
			tc[i].ChapterTitle = strings.TrimSpace(doc.Text(binding.Heading[i]))
			report.Chapters = append(report.Chapters, tc[i].ChapterTitle)
		}
	}
	log.Debug("Sections planned", zap.Int("sections", len(prep.Plan)), zap.Stringer("phase", PhasePlanned))

	report.phase = PhasePlanned
	advance := func(to Phase) error {
		if err := report.phase.Advance(to); err != nil {
			return err
		}
		log.Debug("Phase completed", zap.Stringer("phase", to))
		return ctx.Err()
	}

	// table of contents
	if cfg.TOC.Enable {
		opts := TOCOptionsFromConfig(cfg.TOC)
		opts.TitleStyle, _ = reg.StyleID(common.RoleTOCTitle)
		ids, err := InsertTOC(doc, opts)
		if err != nil {
			return fatal(err)
		}
		report.TOCInserted = true
		if binding.Last[0] == wml.NoPara {
			binding.Last[0] = ids[len(ids)-1]
		}
	}
	if err := advance(PhaseTocInserted); err != nil {
		return fatal(err)
	}

	// sections
	written, warns := WriteSections(doc, binding, setup)
	report.warn(warns...)
	report.SectionsWritten = len(written.Sections)
	if err := advance(PhaseSectionsWritten); err != nil {
		return fatal(err)
	}

	settings, err := doc.Settings()
	if err != nil {
		return fatal(&Error{Kind: ConfigError, Section: NoSection, Err: err})
	}
	evenOdd := false
	kinds := make(map[wml.PartKind]bool)
	for _, ws := range written.Sections {
		evenOdd = evenOdd || ws.Headers.Even != nil || ws.Footers.Even != nil
		kinds[wml.Header] = kinds[wml.Header] || !ws.Headers.IsEmpty()
		kinds[wml.Footer] = kinds[wml.Footer] || !ws.Footers.IsEmpty()
	}
	settings.SetEvenAndOddHeaders(evenOdd)
	pp := newPageParts(doc, evenOdd)

	// page numbers
	if cfg.Numbering.Enable {
		opts, warns := numberingOptions(&cfg.Numbering)
		report.warn(warns...)
		kinds[opts.Location] = true
		for _, ws := range written.Sections {
			_, warns, err := AssignNumbering(pp, ws, ws.Numbering, opts)
			report.warn(warns...)
			if err != nil {
				report.warn(warning(FieldInjectionFailure, ws.Ordinal, "page numbers skipped: %v", err))
				continue
			}
			report.NumberingApplied = append(report.NumberingApplied, ws.Ordinal)
		}
	}
	if err := advance(PhaseNumbersAssigned); err != nil {
		return fatal(err)
	}

	// headers and footers
	hopts := HeaderOptions{Alignment: cfg.HeadersFooters.Alignment}
	hopts.Run, err = RunFormatFromConfig(cfg.HeadersFooters.Font)
	report.warn(configWarnings(err, NoSection, "")...)
	var used []wml.PartKind
	for _, k := range []wml.PartKind{wml.Header, wml.Footer} {
		if kinds[k] {
			used = append(used, k)
		}
	}
	for _, ws := range written.Sections {
		n, err := WriteHeadersFooters(pp, ws, used, tc[ws.Ordinal], hopts)
		if err != nil {
			report.warn(warning(ConfigError, ws.Ordinal, "headers and footers skipped: %v", err))
			continue
		}
		if n > 0 {
			report.HeadersWritten = append(report.HeadersWritten, ws.Ordinal)
		}
	}
	if err := advance(PhaseHeadersWritten); err != nil {
		return fatal(err)
	}

	if err := doc.MarkGenerated(report.RunID); err != nil {
		report.warn(warning(ConfigError, NoSection, "unable to mark document: %v", err))
	}
	pruned, err := doc.PruneHdrFtr()
	if err != nil {
		report.warn(warning(ConfigError, NoSection, "unable to remove unused headers and footers: %v", err))
	}
	log.Debug("Unused header and footer parts removed", zap.Strings("parts", pruned))

	return report, nil
}

func numberingOptions(nc *config.NumberingConfig) (NumberingOptions, []Warning) {
	opts := NumberingOptions{
		Location:    wml.Footer,
		FrontMatter: PageNumberFormat{Template: nc.FrontMatter.Template, Alignment: nc.FrontMatter.Alignment},
		Content:     PageNumberFormat{Template: nc.Content.Template, Alignment: nc.Content.Alignment},
	}
	if nc.Location == config.NumberLocationHeader {
		opts.Location = wml.Header
	}

	var (
		warns []Warning
		err   error
	)
	opts.FrontMatter.Run, err = RunFormatFromConfig(nc.FrontMatter.Font)
	warns = append(warns, configWarnings(err, NoSection, "")...)
	opts.Content.Run, err = RunFormatFromConfig(nc.Content.Font)
	warns = append(warns, configWarnings(err, NoSection, "")...)
	return opts, warns
}

// Save persists reconstructed document. Save is done once, after all phases
// completed, through temporary file so failed save leaves nothing behind.
func Save(doc *wml.Document, report *Report, path string, fixZip bool) error {
	if report.phase != PhaseHeadersWritten {
		return &Error{Kind: PersistenceError, Section: NoSection, Err: fmt.Errorf("document is not ready to be saved, last phase %s", report.phase)}
	}
	if err := doc.Save(path, fixZip); err != nil {
		err = &Error{Kind: PersistenceError, Section: NoSection, Err: err}
		report.fail(err)
		return err
	}
	return report.phase.Advance(PhaseSaved)
}
