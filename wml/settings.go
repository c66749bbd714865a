package wml

import (
	"github.com/beevik/etree"

	"docfmt/ooxml"
)

const settingsPart = "word/settings.xml"

// Settings gives access to document settings part.
type Settings struct {
	root *etree.Element
}

// Settings returns document settings, creating settings part if document
// does not have one.
func (d *Document) Settings() (*Settings, error) {
	rels, err := d.pkg.Relationships(d.mainPart)
	if err != nil {
		return nil, err
	}

	var name string
	if found := rels.ByType(ooxml.RelSettings); len(found) > 0 {
		name = rels.Part(found[0])
	} else {
		name = settingsPart
		doc := ooxml.NewXMLDocument()
		root := doc.CreateElement("w:settings")
		root.CreateAttr("xmlns:w", ooxml.NSWordprocessingML)
		d.pkg.PutXML(name, ooxml.TypeSettings, doc)
		rels.Add(ooxml.RelSettings, ooxml.RelativeTarget(d.mainPart, name))
	}

	doc, err := d.pkg.XML(name)
	if err != nil {
		return nil, err
	}
	return &Settings{root: doc.Root()}, nil
}

func (s *Settings) setFlag(tag string, on bool) {
	if on {
		ensureChild(s.root, tag, orderSettings).RemoveAttr("w:val")
		return
	}
	removeChildren(s.root, tag)
}

func (s *Settings) flag(tag string) bool {
	el := child(s.root, tag)
	if el == nil {
		return false
	}
	switch el.SelectAttrValue("w:val", "true") {
	case "0", "false", "off":
		return false
	}
	return true
}

// SetEvenAndOddHeaders turns on different headers for even and odd pages.
func (s *Settings) SetEvenAndOddHeaders(on bool) { s.setFlag("evenAndOddHeaders", on) }

func (s *Settings) EvenAndOddHeaders() bool { return s.flag("evenAndOddHeaders") }

// SetUpdateFields asks application to update fields when document is opened.
func (s *Settings) SetUpdateFields(on bool) { s.setFlag("updateFields", on) }

func (s *Settings) UpdateFields() bool { return s.flag("updateFields") }

// DocVar returns value of document variable.
func (s *Settings) DocVar(name string) (string, bool) {
	vars := child(s.root, "docVars")
	if vars == nil {
		return "", false
	}
	for _, v := range vars.ChildElements() {
		if isW(v, "docVar") && v.SelectAttrValue("w:name", "") == name {
			return v.SelectAttrValue("w:val", ""), true
		}
	}
	return "", false
}

// SetDocVar creates or updates document variable.
func (s *Settings) SetDocVar(name, val string) {
	vars := ensureChild(s.root, "docVars", orderSettings)
	for _, v := range vars.ChildElements() {
		if isW(v, "docVar") && v.SelectAttrValue("w:name", "") == name {
			v.CreateAttr("w:val", val)
			return
		}
	}
	v := vars.CreateElement("w:docVar")
	v.CreateAttr("w:name", name)
	v.CreateAttr("w:val", val)
}
