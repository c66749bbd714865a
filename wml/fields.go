package wml

import (
	"strings"

	"github.com/beevik/etree"
)

// FieldRuns builds complex field: begin, instruction, separate, cached
// result (placeholder) and end runs. Dirty field is recalculated by the
// application when document is opened.
func FieldRuns(instr, placeholder string, rf RunFormat, dirty bool) []*etree.Element {
	fldChar := func(kind string) *etree.Element {
		r := NewRun(rf)
		fc := r.CreateElement("w:fldChar")
		fc.CreateAttr("w:fldCharType", kind)
		if dirty && kind == "begin" {
			fc.CreateAttr("w:dirty", "true")
		}
		return r
	}

	instrRun := NewRun(rf)
	it := instrRun.CreateElement("w:instrText")
	it.CreateAttr("xml:space", "preserve")
	it.SetText(" " + strings.TrimSpace(instr) + " ")

	runs := []*etree.Element{fldChar("begin"), instrRun, fldChar("separate")}
	if len(placeholder) > 0 {
		runs = append(runs, EncodeRun(placeholder, rf))
	}
	return append(runs, fldChar("end"))
}

// FieldInstructions returns instructions of all complex fields started in
// the paragraph.
func FieldInstructions(p *etree.Element) []string {
	var (
		res     []string
		current *strings.Builder
	)
	for _, r := range p.FindElements(".//w:r") {
		for _, c := range r.ChildElements() {
			switch {
			case isW(c, "fldChar"):
				switch c.SelectAttrValue("w:fldCharType", "") {
				case "begin":
					current = new(strings.Builder)
				case "separate", "end":
					if current != nil {
						res = append(res, strings.TrimSpace(current.String()))
						current = nil
					}
				}
			case isW(c, "instrText") && current != nil:
				current.WriteString(c.Text())
			}
		}
	}
	for _, f := range p.FindElements(".//w:fldSimple") {
		res = append(res, strings.TrimSpace(f.SelectAttrValue("w:instr", "")))
	}
	return res
}

// fieldBalance returns difference between number of started and finished
// complex fields in the paragraph.
func fieldBalance(p *etree.Element) int {
	n := 0
	for _, fc := range p.FindElements(".//w:fldChar") {
		switch fc.SelectAttrValue("w:fldCharType", "") {
		case "begin":
			n++
		case "end":
			n--
		}
	}
	return n
}
