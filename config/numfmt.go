package config

import "strings"

// Text marshaling is not generated, configuration accepts alias.
//go:generate go tool go-enum -f=$GOFILE --names --nocase --mustparse

// Page number format, names match OOXML ST_NumberFormat values.
// ENUM(decimal, upperRoman, lowerRoman)
type NumberFormat int

func (x NumberFormat) IsRoman() bool {
	return x == NumberFormatUpperRoman || x == NumberFormatLowerRoman
}

// ParseNumberFormatAlias is ParseNumberFormat which also takes "roman" used
// by older configurations.
func ParseNumberFormatAlias(name string) (NumberFormat, error) {
	if strings.EqualFold(strings.TrimSpace(name), "roman") {
		return NumberFormatUpperRoman, nil
	}
	return ParseNumberFormat(strings.TrimSpace(name))
}

func (x NumberFormat) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *NumberFormat) UnmarshalText(text []byte) error {
	tmp, err := ParseNumberFormatAlias(string(text))
	if err != nil {
		return err
	}
	*x = tmp
	return nil
}
