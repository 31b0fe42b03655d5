package model

// SectionKind distinguishes plain attribute rows from rows that navigate elsewhere.
type SectionKind string

const (
	SectionInfo       SectionKind = "info"
	SectionReferences SectionKind = "references"
)

// InfoItem is a label/value row describing one attribute of the subject.
type InfoItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// RefItem is a selectable row; selecting it pushes Route.
type RefItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value,omitempty"`
	Route Route  `json:"route"`
	Path  string `json:"path"`
}

// Section groups rows under a title. Only the slice matching Kind is populated.
type Section struct {
	Kind       SectionKind `json:"kind"`
	Title      string      `json:"title"`
	Info       []InfoItem  `json:"info,omitempty"`
	References []RefItem   `json:"references,omitempty"`
}

// Screen is the view model of one screen.
type Screen struct {
	Route    Route     `json:"route"`
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

// InfoSection builds an info section.
func InfoSection(title string, items []InfoItem) Section {
	return Section{Kind: SectionInfo, Title: title, Info: items}
}

// ReferenceSection builds a references section.
func ReferenceSection(title string, items []RefItem) Section {
	return Section{Kind: SectionReferences, Title: title, References: items}
}

// NewRefItem builds a reference row pointing at route.
func NewRefItem(id, label, value string, route Route) RefItem {
	return RefItem{ID: id, Label: label, Value: value, Route: route, Path: route.Path()}
}

// References returns every reference row of the screen in display order.
func (s *Screen) References() []RefItem {
	var out []RefItem
	for _, sec := range s.Sections {
		if sec.Kind == SectionReferences {
			out = append(out, sec.References...)
		}
	}
	return out
}
