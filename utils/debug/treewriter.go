// Package debug has helpers producing human readable dumps of internal
// structures.
package debug

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// TreeWriter accumulates indented text tree, one node per line.
type TreeWriter struct {
	b      strings.Builder
	indent string
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{indent: "  "}
}

func (tw *TreeWriter) String() string {
	return tw.b.String()
}

func (tw *TreeWriter) pad(depth int) {
	for range depth {
		tw.b.WriteString(tw.indent)
	}
}

// Line writes formatted node at depth.
func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(&tw.b, format, args...)
	tw.b.WriteByte('\n')
}

// Attr writes "label: value" node. Strings are quoted, nil pointers and
// empty strings are skipped, pointers are dereferenced.
func (tw *TreeWriter) Attr(depth int, label string, value any) {
	v := reflect.ValueOf(value)
	if !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil()) {
		return
	}
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	var text string
	switch v.Kind() {
	case reflect.String:
		if v.Len() == 0 {
			return
		}
		text = strconv.Quote(v.String())
	default:
		text = fmt.Sprint(v.Interface())
	}
	tw.pad(depth)
	tw.b.WriteString(label)
	tw.b.WriteString(": ")
	tw.b.WriteString(text)
	tw.b.WriteByte('\n')
}
