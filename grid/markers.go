package grid

// Markers holds the recognized marker strings used to identify grid
// containers. Detection rules read these values rather than hard-coded
// literals, so alternate widget families can be targeted by supplying a
// different Markers value to the Locator.
type Markers struct {
	// ClassSubstrings are matched case-sensitively against each class name;
	// a class containing any of them marks the element as a candidate.
	ClassSubstrings []string

	// FrameworkClasses are matched as whole class names, ASCII
	// case-insensitively.
	FrameworkClasses []string

	// IDSubstrings are matched case-insensitively against the id attribute.
	IDSubstrings []string

	// DataAttrPrefixes mark table elements: a table carrying an attribute
	// whose name starts with any of these prefixes is a candidate.
	DataAttrPrefixes []string

	// HeaderClassSubstrings identify header rows and cells by class when no
	// thead or th markup is present. Matched case-insensitively.
	HeaderClassSubstrings []string
}

// DefaultMarkers returns the marker set for DevExpress ASPxGridView markup.
func DefaultMarkers() Markers {
	return Markers{
		ClassSubstrings:       []string{"dxgv"},
		FrameworkClasses:      []string{"aspxgridview"},
		IDSubstrings:          []string{"grid", "gridview"},
		DataAttrPrefixes:      []string{"data-dx", "data-grid"},
		HeaderClassSubstrings: []string{"header", "dxgvheader", "gridheader"},
	}
}
