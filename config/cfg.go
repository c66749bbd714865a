package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"docfmt/common"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	// FontConfig describes run level formatting. Size is a unit string, see
	// units package.
	FontConfig struct {
		Latin     string `yaml:"latin,omitempty"`
		EastAsian string `yaml:"east_asian,omitempty"`
		Size      string `yaml:"size,omitempty"`
		Bold      bool   `yaml:"bold,omitempty"`
		Italic    bool   `yaml:"italic,omitempty"`
	}

	// ParagraphConfig describes paragraph level formatting, all distances are
	// unit strings.
	ParagraphConfig struct {
		Alignment       Alignment `yaml:"alignment" validate:"gte=0"`
		LineSpacing     string    `yaml:"line_spacing,omitempty"`
		SpaceBefore     string    `yaml:"space_before,omitempty"`
		SpaceAfter      string    `yaml:"space_after,omitempty"`
		FirstLineIndent string    `yaml:"first_line_indent,omitempty"`
		LeftIndent      string    `yaml:"left_indent,omitempty"`
		RightIndent     string    `yaml:"right_indent,omitempty"`
		HangingIndent   string    `yaml:"hanging_indent,omitempty"`
	}

	StyleConfig struct {
		Font         FontConfig      `yaml:"font"`
		Paragraph    ParagraphConfig `yaml:"paragraph"`
		OutlineLevel *int            `yaml:"outline_level,omitempty" validate:"omitempty,min=0,max=8"`
	}

	MarginsConfig struct {
		Top    string `yaml:"top" validate:"required"`
		Bottom string `yaml:"bottom" validate:"required"`
		Left   string `yaml:"left" validate:"required"`
		Right  string `yaml:"right" validate:"required"`
		Header string `yaml:"header" validate:"required"`
		Footer string `yaml:"footer" validate:"required"`
		Gutter string `yaml:"gutter,omitempty"`
	}

	PageConfig struct {
		Size        string        `yaml:"size" validate:"oneof=A3 A4 A5 B5 Letter Legal custom"`
		Width       string        `yaml:"width,omitempty" validate:"required_if=Size custom"`
		Height      string        `yaml:"height,omitempty" validate:"required_if=Size custom"`
		Orientation Orientation   `yaml:"orientation" validate:"gte=0"`
		Margins     MarginsConfig `yaml:"margins"`
	}

	PageNumberConfig struct {
		Format    NumberFormat `yaml:"format" validate:"gte=0"`
		Start     int          `yaml:"start" validate:"min=0"`
		Template  string       `yaml:"template"`
		Alignment Alignment    `yaml:"alignment" validate:"gte=0"`
		Font      FontConfig   `yaml:"font"`
	}

	NumberingConfig struct {
		Enable      bool             `yaml:"enable"`
		Location    NumberLocation   `yaml:"location" validate:"gte=0"`
		FrontMatter PageNumberConfig `yaml:"front_matter"`
		Content     PageNumberConfig `yaml:"content"`
	}

	// PartTemplates holds header or footer text templates, empty template
	// means nothing is written for that page kind.
	PartTemplates struct {
		Odd       string `yaml:"odd,omitempty"`
		Even      string `yaml:"even,omitempty"`
		FirstPage string `yaml:"first_page,omitempty"`
	}

	HeaderFooterConfig struct {
		Header PartTemplates `yaml:"header"`
		Footer PartTemplates `yaml:"footer"`
	}

	HeadersFootersConfig struct {
		DocumentTitle string             `yaml:"document_title,omitempty"`
		Font          FontConfig         `yaml:"font"`
		Alignment     Alignment          `yaml:"alignment" validate:"gte=0"`
		FrontMatter   HeaderFooterConfig `yaml:"front_matter"`
		Content       HeaderFooterConfig `yaml:"content"`
	}

	TOCConfig struct {
		Enable           bool   `yaml:"enable"`
		Title            string `yaml:"title" validate:"required_if=Enable true"`
		MaxDepth         int    `yaml:"max_depth" validate:"min=1,max=9"`
		Hyperlinks       bool   `yaml:"hyperlinks"`
		HideInWebView    bool   `yaml:"hide_in_web_view"`
		UseOutlineLevels bool   `yaml:"use_outline_levels"`
		Placeholder      string `yaml:"placeholder"`
	}

	SectionsConfig struct {
		TopLevelRole common.Role `yaml:"top_level_role" validate:"required"`
		Break        BreakKind   `yaml:"break" validate:"gte=1"`
	}

	DocumentConfig struct {
		FixZip                bool                   `yaml:"fix_zip"`
		OutputNameTemplate    string                 `yaml:"output_name_template"`
		FileNameTransliterate bool                   `yaml:"file_name_transliterate"`
		ClassificationSuffix  string                 `yaml:"classification_suffix" validate:"required"`
		Page                  PageConfig             `yaml:"page"`
		Styles                map[string]StyleConfig `yaml:"styles" validate:"dive"`
		Numbering             NumberingConfig        `yaml:"numbering"`
		HeadersFooters        HeadersFootersConfig   `yaml:"headers_footers"`
		TOC                   TOCConfig              `yaml:"toc"`
		Sections              SectionsConfig         `yaml:"sections"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"

	// used by CleanFileName when nothing is left of the name
	fallbackFileName = "document"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration tamplate to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}

// StyleRoles returns configured style roles in stable order. Names which do
// not correspond to known roles are returned separately so caller could
// report them.
func (conf *DocumentConfig) StyleRoles() (known []common.Role, unknown []string) {
	names := make([]string, 0, len(conf.Styles))
	for name := range conf.Styles {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		role, err := common.ParseRoleName(name)
		if err != nil || role == common.RoleUnclassified {
			unknown = append(unknown, name)
			continue
		}
		known = append(known, role)
	}
	return known, unknown
}

// Style returns style configuration for the role, lookup is tolerant to the
// case of the configured name.
func (conf *DocumentConfig) Style(role common.Role) (StyleConfig, bool) {
	if sc, ok := conf.Styles[string(role)]; ok {
		return sc, true
	}
	for name, sc := range conf.Styles {
		if strings.EqualFold(name, string(role)) {
			return sc, true
		}
	}
	return StyleConfig{}, false
}
