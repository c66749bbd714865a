// Package units converts distance and font size strings used in style
// configuration to typographic points and points to OOXML measurement units.
package units

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Points is a distance in typographic points (1/72 inch).
type Points float64

// BaseFontSize is used for relative units when caller does not know better.
const BaseFontSize Points = 12

var ErrInvalidValue = errors.New("invalid unit value")

// Traditional Chinese font size names.
var chineseSizes = []struct {
	name string
	pt   Points
}{
	{"初号", 42}, {"小初", 36},
	{"一号", 26}, {"小一", 24},
	{"二号", 22}, {"小二", 18},
	{"三号", 16}, {"小三", 15},
	{"四号", 14}, {"小四", 12},
	{"五号", 10.5}, {"小五", 9},
	{"六号", 7.5}, {"小六", 6.5},
	{"七号", 5.5},
	{"八号", 5},
}

var absolute = map[string]Points{
	"pt":   1,
	"磅":    1,
	"px":   0.75,
	"mm":   2.834646,
	"毫米":   2.834646,
	"cm":   28.34646,
	"厘米":   28.34646,
	"in":   72,
	"inch": 72,
	"英寸":   72,
	"pc":   12,
}

// relative units are multiplied by base font size
var relative = map[string]bool{
	"em": true,
	"字符": true,
	"字":  true,
	"倍":  true,
}

// Parse converts value to points using BaseFontSize for relative units.
func Parse(value string) (Points, error) {
	return ParseRelative(value, BaseFontSize)
}

// ParseRelative converts value to points. Value is either Chinese font size
// name ("小四"), a number with optional unit ("2.54cm", "12", "1.5倍") or
// fixed value spacing ("固定值20磅"). Number without unit is in points.
func ParseRelative(value string, base Points) (Points, error) {
	value = strings.TrimSpace(value)
	value = strings.TrimSpace(strings.TrimPrefix(value, "固定值"))
	if len(value) == 0 {
		return 0, fmt.Errorf("empty value: %w", ErrInvalidValue)
	}

	for _, cs := range chineseSizes {
		if value == cs.name {
			return cs.pt, nil
		}
	}

	num, unit := split(value)
	n, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("%q: %w", value, ErrInvalidValue)
	}
	if len(unit) == 0 {
		return Points(n), nil
	}

	unit = strings.ToLower(unit)
	if k, ok := absolute[unit]; ok {
		return Points(n) * k, nil
	}
	if relative[unit] {
		return Points(n) * base, nil
	}
	return 0, fmt.Errorf("%q: unknown unit %q: %w", value, unit, ErrInvalidValue)
}

func split(value string) (num, unit string) {
	i := strings.IndexFunc(value, func(r rune) bool {
		return !(unicode.IsDigit(r) || r == '.' || r == '-' || r == '+')
	})
	if i < 0 {
		return value, ""
	}
	return value[:i], strings.TrimSpace(value[i:])
}

// LineSpacing is either exact distance or multiple of single line.
type LineSpacing struct {
	Exact    Points
	Multiple float64
}

// IsMultiple reports if spacing is proportional.
func (ls LineSpacing) IsMultiple() bool {
	return ls.Multiple > 0
}

// ParseLineSpacing understands "1.5倍" (and "1.5x") as proportional spacing,
// everything else is treated as exact distance.
func ParseLineSpacing(value string) (LineSpacing, error) {
	v := strings.TrimSpace(value)
	for _, suffix := range []string{"倍", "x", "X"} {
		num, ok := strings.CutSuffix(v, suffix)
		if !ok {
			continue
		}
		m, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil && suffix != "倍" {
			// "px" and friends
			break
		}
		if err != nil || m <= 0 {
			return LineSpacing{}, fmt.Errorf("%q: %w", value, ErrInvalidValue)
		}
		return LineSpacing{Multiple: m}, nil
	}
	pt, err := Parse(v)
	if err != nil {
		return LineSpacing{}, err
	}
	return LineSpacing{Exact: pt}, nil
}

// Twips returns value in twentieths of a point.
func (p Points) Twips() int {
	return int(math.Round(float64(p) * 20))
}

// HalfPoints returns value in half points (run font size).
func (p Points) HalfPoints() int {
	return int(math.Round(float64(p) * 2))
}

// ChineseSizeName returns traditional size name for the value if there is
// one within half a point.
func ChineseSizeName(p Points) string {
	for _, cs := range chineseSizes {
		if math.Abs(float64(p-cs.pt)) < 0.5 {
			return cs.name
		}
	}
	return ""
}
