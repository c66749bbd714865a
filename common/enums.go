// Package common keeps enumerations shared between configuration,
// classification input and the reconstruction engine. Keeping them here
// avoids config importing engine packages and vice versa.
package common

import (
	"strconv"
	"strings"
)

//go:generate go tool go-enum -f=$GOFILE --names --nocase --mustparse

// Role is the semantic role a classifier assigns to a paragraph. The set is
// closed: names outside of it are parsed as RoleUnclassified.
// ENUM(
// Title, Heading1, Heading2, Heading3, Heading4, Heading5,
// Heading6, Heading7, Heading8, Heading9, Normal, FirstParagraph,
// AbstractTitleCN, AbstractTitleEN, AbstractContentCN, AbstractContentEN, KeywordsCN, KeywordsEN,
// TOCTitle, TOCItem, FigureCaption, TableCaption, Header, Footer,
// Footnote, Quote, Code, List, BulletList, NumberedList,
// ChapterTitle, SectionTitle, SubsectionTitle, ThesisTitle, AuthorInfo, AuthorInfoCN,
// AuthorInfoEN, Reference, ReferenceTitle, ReferenceItem, Appendix, AppendixTitle,
// Acknowledgement, AcknowledgementTitle
// )
type Role string

// RoleUnclassified marks paragraphs classifier did not assign a role to.
const RoleUnclassified Role = ""

// ParseRoleName is ParseRole which also takes the space some tools put
// between "Heading" and level ("Heading 1").
func ParseRoleName(name string) (Role, error) {
	return ParseRole(strings.ReplaceAll(strings.TrimSpace(name), " ", ""))
}

// HeadingLevel returns 1..9 for HeadingN roles and 0 for everything else.
func (r Role) HeadingLevel() int {
	s, ok := strings.CutPrefix(string(r), "Heading")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 9 {
		return 0
	}
	return n
}

// IsFrontMatter reports roles which normally appear only before the first
// chapter of a thesis-like document.
func (r Role) IsFrontMatter() bool {
	switch r {
	case RoleAbstractTitleCN, RoleAbstractTitleEN, RoleAbstractContentCN, RoleAbstractContentEN,
		RoleKeywordsCN, RoleKeywordsEN, RoleTOCTitle, RoleTOCItem, RoleThesisTitle,
		RoleAuthorInfo, RoleAuthorInfoCN, RoleAuthorInfoEN:
		return true
	}
	return false
}

// IsDocumentTitle reports roles forming the title block of the front matter.
func (r Role) IsDocumentTitle() bool {
	return r == RoleTitle || r == RoleThesisTitle
}

// UnmarshalText implements encoding.TextUnmarshaler so roles could be used
// directly as YAML map keys and values. Unknown names are an error here,
// callers which need leniency use ParseRoleName.
func (r *Role) UnmarshalText(text []byte) error {
	v, err := ParseRoleName(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r), nil
}
