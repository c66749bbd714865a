package rebuild

import (
	"fmt"
	"strings"
)

// ErrorKind classifies engine failures.
type ErrorKind int

const (
	// ConfigError - missing or invalid style or template, default is used.
	ConfigError ErrorKind = iota
	// StructuralInvariantViolation - section boundary could not be found,
	// document is collapsed into single section.
	StructuralInvariantViolation
	// FieldInjectionFailure - TOC or page number field could not be built.
	FieldInjectionFailure
	// PersistenceError - document could not be saved.
	PersistenceError
)

var errorKindNames = [...]string{"ConfigError", "StructuralInvariantViolation", "FieldInjectionFailure", "PersistenceError"}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(errorKindNames) {
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
	return errorKindNames[k]
}

func (k ErrorKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// NoSection is used for errors and warnings not related to particular
// section.
const NoSection = -1

// Error is returned by the engine when reconstruction cannot continue.
type Error struct {
	Kind    ErrorKind
	Section int
	Style   string
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(strings.ToLower(e.Kind.String()[:1]) + e.Kind.String()[1:])
	if e.Section != NoSection {
		fmt.Fprintf(&b, " (section %d)", e.Section)
	}
	if len(e.Style) > 0 {
		fmt.Fprintf(&b, " (style %s)", e.Style)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Warning is a recovered failure, processing went on with degraded result.
type Warning struct {
	Kind    ErrorKind `yaml:"kind"`
	Section int       `yaml:"section"`
	Message string    `yaml:"message"`
}

func (w Warning) String() string {
	if w.Section == NoSection {
		return fmt.Sprintf("%s: %s", w.Kind, w.Message)
	}
	return fmt.Sprintf("%s: section %d: %s", w.Kind, w.Section, w.Message)
}

func warning(kind ErrorKind, section int, format string, args ...any) Warning {
	return Warning{Kind: kind, Section: section, Message: fmt.Sprintf(format, args...)}
}
