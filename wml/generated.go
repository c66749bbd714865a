package wml

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// GeneratedMarker is the name of document variable set on documents we
// produced.
const GeneratedMarker = "docfmt.generated"

// Inserted paragraphs are tagged with collapsed hidden bookmarks, names
// starting with underscore are not shown by Word and survive editing.
const bookmarkPrefix = "_docfmt_"

// Kinds of paragraphs we insert.
const (
	InsertedTOC   = "toc"
	InsertedBreak = "brk"
)

// IsGenerated reports if document was produced by us before.
func (d *Document) IsGenerated() (bool, error) {
	s, err := d.Settings()
	if err != nil {
		return false, err
	}
	_, ok := s.DocVar(GeneratedMarker)
	return ok, nil
}

// MarkGenerated stores run identifier in the marker variable.
func (d *Document) MarkGenerated(runID string) error {
	s, err := d.Settings()
	if err != nil {
		return err
	}
	s.SetDocVar(GeneratedMarker, runID)
	return nil
}

// MarkInserted tags paragraph as inserted by us, so the next run could take
// it out again without touching anything author wrote.
func (d *Document) MarkInserted(id ParaID, kind string) error {
	p := d.Element(id)
	if p == nil {
		return fmt.Errorf("%w: %d", ErrNoParagraph, id)
	}
	n := strconv.Itoa(d.nextBookmarkID())

	at := 0
	if pPr := child(p, "pPr"); pPr != nil {
		at = pPr.Index() + 1
	}
	start := etree.NewElement("w:bookmarkStart")
	start.CreateAttr("w:id", n)
	start.CreateAttr("w:name", bookmarkPrefix+kind+"_"+n)
	end := etree.NewElement("w:bookmarkEnd")
	end.CreateAttr("w:id", n)
	p.InsertChildAt(at, start)
	p.InsertChildAt(at+1, end)
	return nil
}

// InsertedKind returns kind of inserted paragraph or empty string for
// paragraphs we did not produce.
func (d *Document) InsertedKind(id ParaID) string {
	p := d.Element(id)
	if p == nil {
		return ""
	}
	return insertedKind(p)
}

func insertedKind(p *etree.Element) string {
	for _, bm := range p.ChildElements() {
		if !isW(bm, "bookmarkStart") {
			continue
		}
		name, ok := strings.CutPrefix(bm.SelectAttrValue("w:name", ""), bookmarkPrefix)
		if !ok {
			continue
		}
		if kind, _, ok := strings.Cut(name, "_"); ok {
			return kind
		}
	}
	return ""
}

// nextBookmarkID returns bookmark identifier unique in the document body.
func (d *Document) nextBookmarkID() int {
	if !d.bookmarksScanned {
		for _, bm := range d.body.FindElements(".//w:bookmarkStart") {
			if n, err := strconv.Atoi(bm.SelectAttrValue("w:id", "")); err == nil && n >= d.nextBookmark {
				d.nextBookmark = n + 1
			}
		}
		d.bookmarksScanned = true
	}
	n := d.nextBookmark
	d.nextBookmark++
	return n
}

// StripGenerated removes paragraphs added by previous formatting run so
// paragraph numbering matches original document again. Only tagged
// paragraphs are removed: TOC block (TOC paragraphs together with all
// paragraphs spanned by its field) and section break paragraphs which are
// still empty. Number of removed paragraphs is returned.
func (d *Document) StripGenerated() int {
	var (
		removed []ParaID
		paras   = d.Paragraphs()
	)
	for i := 0; i < len(paras); i++ {
		p := d.Element(paras[i])
		switch insertedKind(p) {
		case InsertedTOC:
			if !isTOCStart(p) {
				removed = append(removed, paras[i])
				continue
			}
			// field may span several paragraphs after it was updated
			balance := 0
			for ; i < len(paras); i++ {
				removed = append(removed, paras[i])
				if balance += fieldBalance(d.Element(paras[i])); balance <= 0 {
					break
				}
			}
		case InsertedBreak:
			if len(p.FindElements(".//w:t")) == 0 {
				removed = append(removed, paras[i])
			}
		}
	}
	for _, id := range removed {
		d.Remove(id)
	}
	return len(removed)
}

func isTOCStart(p *etree.Element) bool {
	for _, instr := range FieldInstructions(p) {
		if strings.HasPrefix(strings.ToUpper(instr), "TOC") {
			return true
		}
	}
	return false
}
