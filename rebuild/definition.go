package rebuild

import (
	"fmt"

	"go.uber.org/multierr"

	"docfmt/config"
	"docfmt/units"
	"docfmt/wml"
)

const (
	DefaultLatinFont     = "Times New Roman"
	DefaultEastAsianFont = "宋体"
)

// FontDefinition is character formatting of a style. Zero size leaves size
// untouched.
type FontDefinition struct {
	Latin     string
	EastAsian string
	Size      units.Points
	Bold      bool
	Italic    bool
}

// ParagraphDefinition is paragraph formatting of a style, nil distances are
// left untouched.
type ParagraphDefinition struct {
	Alignment       config.Alignment
	LineSpacing     *units.LineSpacing
	SpaceBefore     *units.Points
	SpaceAfter      *units.Points
	FirstLineIndent *units.Points
	LeftIndent      *units.Points
	RightIndent     *units.Points
	HangingIndent   *units.Points
}

// StyleDefinition is complete formatting of a role. Outline level present
// makes paragraphs of the style eligible for table of contents.
type StyleDefinition struct {
	Font         FontDefinition
	Paragraph    ParagraphDefinition
	OutlineLevel *int
}

// DefinitionFromConfig converts configured unit strings. Values which could
// not be parsed are left unset and reported together in returned error, the
// rest of definition is still usable.
func DefinitionFromConfig(sc config.StyleConfig) (StyleDefinition, error) {
	var (
		def  StyleDefinition
		errs error
	)

	def.Font = FontDefinition{
		Latin:     sc.Font.Latin,
		EastAsian: sc.Font.EastAsian,
		Bold:      sc.Font.Bold,
		Italic:    sc.Font.Italic,
	}
	if len(sc.Font.Size) > 0 {
		size, err := units.Parse(sc.Font.Size)
		if err == nil && size <= 0 {
			err = fmt.Errorf("%q: %w", sc.Font.Size, units.ErrInvalidValue)
		}
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("font size: %w", err))
		} else {
			def.Font.Size = size
		}
	}

	// character based indents are relative to the style own font size
	base := units.BaseFontSize
	if def.Font.Size > 0 {
		base = def.Font.Size
	}
	distance := func(name, value string) *units.Points {
		if len(value) == 0 {
			return nil
		}
		pt, err := units.ParseRelative(value, base)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", name, err))
			return nil
		}
		return &pt
	}

	pc := sc.Paragraph
	def.Paragraph = ParagraphDefinition{
		Alignment:       pc.Alignment,
		SpaceBefore:     distance("space before", pc.SpaceBefore),
		SpaceAfter:      distance("space after", pc.SpaceAfter),
		FirstLineIndent: distance("first line indent", pc.FirstLineIndent),
		LeftIndent:      distance("left indent", pc.LeftIndent),
		RightIndent:     distance("right indent", pc.RightIndent),
		HangingIndent:   distance("hanging indent", pc.HangingIndent),
	}
	if len(pc.LineSpacing) > 0 {
		ls, err := units.ParseLineSpacing(pc.LineSpacing)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("line spacing: %w", err))
		} else {
			def.Paragraph.LineSpacing = &ls
		}
	}

	if sc.OutlineLevel != nil {
		lvl := *sc.OutlineLevel
		def.OutlineLevel = &lvl
	}
	return def, errs
}

// RunFormatFromConfig converts font configuration used for header, footer
// and page number runs.
func RunFormatFromConfig(fc config.FontConfig) (wml.RunFormat, error) {
	def, err := DefinitionFromConfig(config.StyleConfig{Font: fc})
	return def.runFormat(), err
}

func (sd StyleDefinition) runFormat() wml.RunFormat {
	return wml.RunFormat{
		Fonts:  wml.FontSlots{Latin: sd.Font.Latin, EastAsian: sd.Font.EastAsian},
		Size:   sd.Font.Size,
		Bold:   sd.Font.Bold,
		Italic: sd.Font.Italic,
	}
}

func (sd StyleDefinition) paragraphFormat() wml.ParagraphFormat {
	p := sd.Paragraph
	return wml.ParagraphFormat{
		Alignment: p.Alignment.JC(),
		Spacing: wml.Spacing{
			Before: p.SpaceBefore,
			After:  p.SpaceAfter,
			Line:   p.LineSpacing,
		},
		Indent: wml.Indentation{
			Left:      p.LeftIndent,
			Right:     p.RightIndent,
			FirstLine: p.FirstLineIndent,
			Hanging:   p.HangingIndent,
		},
		OutlineLevel: sd.OutlineLevel,
	}
}
