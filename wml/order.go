package wml

import (
	"slices"

	"github.com/beevik/etree"
)

// Child element sequences of complex types we modify. Word refuses to open
// documents where children are out of schema order, so new elements are
// always inserted at their proper place.
var (
	orderPPr = []string{
		"pStyle", "keepNext", "keepLines", "pageBreakBefore", "framePr", "widowControl", "numPr",
		"suppressLineNumbers", "pBdr", "shd", "tabs", "suppressAutoHyphens", "kinsoku", "wordWrap",
		"overflowPunct", "topLinePunct", "autoSpaceDE", "autoSpaceDN", "bidi", "adjustRightInd",
		"snapToGrid", "spacing", "ind", "contextualSpacing", "mirrorIndents", "suppressOverlap", "jc",
		"textDirection", "textAlignment", "textboxTightWrap", "outlineLvl", "divId", "cnfStyle", "rPr",
		"sectPr", "pPrChange",
	}
	orderRPr = []string{
		"rStyle", "rFonts", "b", "bCs", "i", "iCs", "caps", "smallCaps", "strike", "dstrike", "outline",
		"shadow", "emboss", "imprint", "noProof", "snapToGrid", "vanish", "webHidden", "color", "spacing",
		"w", "kern", "position", "sz", "szCs", "highlight", "u", "effect", "bdr", "shd", "fitText",
		"vertAlign", "rtl", "cs", "em", "lang", "eastAsianLayout", "specVanish", "oMath",
	}
	orderSectPr = []string{
		"headerReference", "footerReference", "footnotePr", "endnotePr", "type", "pgSz", "pgMar",
		"paperSrc", "pgBorders", "lnNumType", "pgNumType", "cols", "formProt", "vAlign", "noEndnote",
		"titlePg", "textDirection", "bidi", "rtlGutter", "docGrid", "printerSettings", "sectPrChange",
	}
	orderStyle = []string{
		"name", "aliases", "basedOn", "next", "link", "autoRedefine", "hidden", "uiPriority",
		"semiHidden", "unhideWhenUsed", "qFormat", "locked", "personal", "personalCompose",
		"personalReply", "rsid", "pPr", "rPr", "tblPr", "trPr", "tcPr", "tblStylePr",
	}
	orderSettings = []string{
		"writeProtection", "view", "zoom", "removePersonalInformation", "removeDateAndTime",
		"doNotDisplayPageBoundaries", "displayBackgroundShape", "printPostScriptOverText",
		"printFractionalCharacterWidth", "printFormsData", "embedTrueTypeFonts", "embedSystemFonts",
		"saveSubsetFonts", "saveFormsData", "mirrorMargins", "alignBordersAndEdges",
		"bordersDoNotSurroundHeader", "bordersDoNotSurroundFooter", "gutterAtTop", "hideSpellingErrors",
		"hideGrammaticalErrors", "activeWritingStyle", "proofState", "formsDesign", "attachedTemplate",
		"linkStyles", "stylePaneFormatFilter", "stylePaneSortMethod", "documentType", "mailMerge",
		"revisionView", "trackRevisions", "doNotTrackMoves", "doNotTrackFormatting", "documentProtection",
		"autoFormatOverride", "styleLockTheme", "styleLockQFSet", "defaultTabStop", "autoHyphenation",
		"consecutiveHyphenLimit", "hyphenationZone", "doNotHyphenateCaps", "showEnvelope", "summaryLength",
		"clickAndTypeStyle", "defaultTableStyle", "evenAndOddHeaders", "bookFoldRevPrinting",
		"bookFoldPrinting", "bookFoldPrintingSheets", "drawingGridHorizontalSpacing",
		"drawingGridVerticalSpacing", "displayHorizontalDrawingGridEvery",
		"displayVerticalDrawingGridEvery", "doNotUseMarginsForDrawingGridOrigin",
		"drawingGridHorizontalOrigin", "drawingGridVerticalOrigin", "doNotShadeFormData",
		"noPunctuationKerning", "characterSpacingControl", "printTwoOnOne", "strictFirstAndLastChars",
		"noLineBreaksAfter", "noLineBreaksBefore", "savePreviewPicture", "doNotValidateAgainstSchema",
		"saveInvalidXml", "ignoreMixedContent", "alwaysShowPlaceholderText", "doNotDemarcateInvalidXml",
		"saveXmlDataOnly", "useXSLTWhenSaving", "saveThroughXslt", "showXMLTags",
		"alwaysMergeEmptyNamespace", "updateFields", "hdrShapeDefaults", "footnotePr", "endnotePr",
		"compat", "docVars", "rsids", "mathPr", "attachedSchema", "themeFontLang", "clrSchemeMapping",
		"doNotIncludeSubdocsInStats", "doNotAutoCompressPictures", "forceUpgrade", "captions",
		"readModeInkLockDown", "smartTagType", "schemaLibrary", "shapeDefaults", "doNotEmbedSmartTags",
		"decimalSymbol", "listSeparator",
	}
)

// isW checks if element is WordprocessingML element with given local name.
func isW(el *etree.Element, tag string) bool {
	return el != nil && el.Space == "w" && el.Tag == tag
}

// child returns first w: child element with local name or nil.
func child(parent *etree.Element, tag string) *etree.Element {
	for _, c := range parent.ChildElements() {
		if isW(c, tag) {
			return c
		}
	}
	return nil
}

// ensureChild returns existing w: child element or creates one at the
// position required by order.
func ensureChild(parent *etree.Element, tag string, order []string) *etree.Element {
	if c := child(parent, tag); c != nil {
		return c
	}
	return insertChild(parent, tag, order)
}

// insertChild always creates new w: element, placing it after every sibling
// which must precede it (and after siblings with the same name).
func insertChild(parent *etree.Element, tag string, order []string) *etree.Element {
	el := etree.NewElement("w:" + tag)

	rank := slices.Index(order, tag)
	if rank < 0 {
		parent.AddChild(el)
		return el
	}
	for _, c := range parent.ChildElements() {
		if c.Space != "w" {
			continue
		}
		if r := slices.Index(order, c.Tag); r > rank {
			parent.InsertChildAt(c.Index(), el)
			return el
		}
	}
	parent.AddChild(el)
	return el
}

// removeChildren deletes all w: children with local name.
func removeChildren(parent *etree.Element, tag string) {
	for _, c := range parent.ChildElements() {
		if isW(c, tag) {
			parent.RemoveChild(c)
		}
	}
}

// setVal sets w:val attribute of the (created if necessary) child.
func setVal(parent *etree.Element, tag string, order []string, val string) *etree.Element {
	c := ensureChild(parent, tag, order)
	c.CreateAttr("w:val", val)
	return c
}

// ensurePPr returns paragraph properties, creating them as the first child.
func ensurePPr(p *etree.Element) *etree.Element {
	if pPr := child(p, "pPr"); pPr != nil {
		return pPr
	}
	pPr := etree.NewElement("w:pPr")
	p.InsertChildAt(0, pPr)
	return pPr
}

// ensureRPr returns run properties, creating them as the first child.
func ensureRPr(r *etree.Element) *etree.Element {
	if rPr := child(r, "rPr"); rPr != nil {
		return rPr
	}
	rPr := etree.NewElement("w:rPr")
	r.InsertChildAt(0, rPr)
	return rPr
}
