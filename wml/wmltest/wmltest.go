// Package wmltest builds small in-memory documents for tests.
package wmltest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/beevik/etree"

	"docfmt/ooxml"
	"docfmt/wml"
)

// Package creates package with main document part containing one paragraph
// per text, styles part with Normal style and settings part.
func Package(texts ...string) *ooxml.Package {
	p := ooxml.New()

	rels, _ := p.Relationships("")
	rels.Add(ooxml.RelOfficeDocument, "word/document.xml")

	doc := ooxml.NewXMLDocument()
	root := doc.CreateElement("w:document")
	root.CreateAttr("xmlns:w", ooxml.NSWordprocessingML)
	root.CreateAttr("xmlns:r", ooxml.NSRelationships)
	body := root.CreateElement("w:body")
	for _, text := range texts {
		body.AddChild(Paragraph(text))
	}
	// documents usually have body level section properties
	sp := body.CreateElement("w:sectPr")
	sz := sp.CreateElement("w:pgSz")
	sz.CreateAttr("w:w", "12240")
	sz.CreateAttr("w:h", "15840")
	p.PutXML("word/document.xml", ooxml.TypeDocument, doc)

	styles := ooxml.NewXMLDocument()
	sroot := styles.CreateElement("w:styles")
	sroot.CreateAttr("xmlns:w", ooxml.NSWordprocessingML)
	normal := sroot.CreateElement("w:style")
	normal.CreateAttr("w:type", "paragraph")
	normal.CreateAttr("w:default", "1")
	normal.CreateAttr("w:styleId", "Normal")
	normal.CreateElement("w:name").CreateAttr("w:val", "Normal")
	p.PutXML("word/styles.xml", ooxml.TypeStyles, styles)

	settings := ooxml.NewXMLDocument()
	st := settings.CreateElement("w:settings")
	st.CreateAttr("xmlns:w", ooxml.NSWordprocessingML)
	st.CreateElement("w:defaultTabStop").CreateAttr("w:val", "420")
	st.CreateElement("w:compat")
	p.PutXML("word/settings.xml", ooxml.TypeSettings, settings)

	drels, _ := p.Relationships("word/document.xml")
	drels.Add(ooxml.RelStyles, "styles.xml")
	drels.Add(ooxml.RelSettings, "settings.xml")
	return p
}

// Paragraph creates paragraph with a single run.
func Paragraph(text string) *etree.Element {
	p := etree.NewElement("w:p")
	if len(text) > 0 {
		t := p.CreateElement("w:r").CreateElement("w:t")
		t.CreateAttr("xml:space", "preserve")
		t.SetText(text)
	}
	return p
}

// Document creates document with one paragraph per text.
func Document(t testing.TB, texts ...string) *wml.Document {
	t.Helper()
	d, err := wml.Load(Package(texts...))
	if err != nil {
		t.Fatalf("unable to load test document: %v", err)
	}
	return d
}

// Reopen serializes document and reads it back.
func Reopen(t testing.TB, d *wml.Document) *wml.Document {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reopen.docx")
	if err := d.Save(path, false); err != nil {
		t.Fatalf("unable to save test document: %v", err)
	}
	res, err := wml.Open(path)
	if err != nil {
		t.Fatalf("unable to open saved test document: %v", err)
	}
	return res
}

// WriteFile saves document with one paragraph per text into dir.
func WriteFile(t testing.TB, dir, name string, texts ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	data, err := Package(texts...).Bytes()
	if err != nil {
		t.Fatalf("unable to serialize test document: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("unable to write test document: %v", err)
	}
	return path
}
