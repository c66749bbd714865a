package ooxml

// Well known part names.
const (
	ContentTypesPart = "[Content_Types].xml"
	PackageRelsPart  = "_rels/.rels"
)

// Namespaces used when creating new parts.
const (
	NSWordprocessingML = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	NSRelationships    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	NSPackageRels      = "http://schemas.openxmlformats.org/package/2006/relationships"
	NSContentTypes     = "http://schemas.openxmlformats.org/package/2006/content-types"
)

// Relationship types.
const (
	RelOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	RelStyles         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	RelSettings       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/settings"
	RelHeader         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/header"
	RelFooter         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer"
)

// Content types.
const (
	TypeRelationships = "application/vnd.openxmlformats-package.relationships+xml"
	TypeXML           = "application/xml"
	TypeDocument      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	TypeStyles        = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	TypeSettings      = "application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"
	TypeHeader        = "application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml"
	TypeFooter        = "application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"
)
