package config

//go:generate go tool go-enum -f=$GOFILE --marshal --names --nocase --mustparse

// Section break kind. "none" is reserved for the first section of a document
// and is never written out.
// ENUM(none, oddPage, evenPage, nextPage, continuous)
type BreakKind int

// Paragraph alignment, names are configuration values, OOXML values are
// returned by JC.
// ENUM(left, center, right, justify)
type Alignment int

// JC returns value for w:jc element.
func (x Alignment) JC() string {
	switch x {
	case AlignmentCenter:
		return "center"
	case AlignmentRight:
		return "right"
	case AlignmentJustify:
		return "both"
	default:
		return "left"
	}
}

// Where page numbers are placed.
// ENUM(footer, header)
type NumberLocation int

// Page orientation.
// ENUM(portrait, landscape)
type Orientation int
