package rebuild

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"
)

// Report is the record of a single reconstruction run. It is returned to the
// caller rather than printed so results could be inspected and stored.
type Report struct {
	RunID            string    `yaml:"run_id"`
	DocumentTitle    string    `yaml:"document_title,omitempty"`
	Chapters         []string  `yaml:"chapters,omitempty"`
	StylesCreated    []string  `yaml:"styles_created"`
	StylesUpdated    []string  `yaml:"styles_updated"`
	ParagraphsStyled int       `yaml:"paragraphs_styled"`
	SectionsWritten  int       `yaml:"sections_written"`
	NumberingApplied []int     `yaml:"numbering_applied"`
	HeadersWritten   []int     `yaml:"headers_written"`
	TOCInserted      bool      `yaml:"toc_inserted"`
	Warnings         []Warning `yaml:"warnings"`
	FatalError       string    `yaml:"fatal_error,omitempty"`

	phase Phase
}

func newReport() (*Report, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("unable to generate run id: %w", err)
	}
	return &Report{RunID: id.String()}, nil
}

// Phase returns last completed pipeline phase.
func (r *Report) Phase() Phase {
	return r.phase
}

func (r *Report) warn(w ...Warning) {
	r.Warnings = append(r.Warnings, w...)
}

func (r *Report) fail(err error) {
	r.FatalError = err.Error()
}

// YAML serializes report for the debug archive.
func (r *Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}

// Log writes report summary and every warning.
func (r *Report) Log(log *zap.Logger) {
	for _, w := range r.Warnings {
		log.Warn("Reconstruction degraded", zap.Stringer("kind", w.Kind), zap.Int("section", w.Section), zap.String("details", w.Message))
	}
	if len(r.FatalError) > 0 {
		log.Error("Reconstruction failed", zap.String("run", r.RunID), zap.String("error", r.FatalError))
		return
	}
	log.Info("Reconstruction done",
		zap.String("run", r.RunID),
		zap.Int("styles created", len(r.StylesCreated)),
		zap.Int("styles updated", len(r.StylesUpdated)),
		zap.Int("paragraphs styled", r.ParagraphsStyled),
		zap.Int("sections", r.SectionsWritten),
		zap.Bool("toc", r.TOCInserted),
		zap.Int("warnings", len(r.Warnings)),
	)
}
