package accordion

// Document abstracts the container an accordion enhances: it yields the
// ordered sections found in the markup and the ambient language. The section
// set is read once at initialisation and fixed for the accordion's lifetime.
type Document interface {
	// Lang returns the document's language attribute, or "".
	Lang() string
	// Sections returns the sections in document order.
	Sections() []SectionMarkup
}

// SectionMarkup describes one section as discovered in the document.
// HasContent and HasToggle report whether the expected sub-elements are
// present; a section missing either is left inert rather than failing the
// whole component.
type SectionMarkup struct {
	// ContentID is the stable content identifier, used as the persistence
	// key and for accessibility linkage.
	ContentID string
	// Heading is the section's visible heading text.
	Heading string
	// Summary is optional descriptive text under the heading.
	Summary string
	// Expanded is the section's initial state per the markup.
	Expanded bool
	// HasContent reports whether the content wrapper exists.
	HasContent bool
	// HasToggle reports whether the toggle affordance exists.
	HasToggle bool
}

// MemoryDocument is an in-memory Document, useful for tests and for hosts
// that build section descriptions programmatically.
type MemoryDocument struct {
	lang     string
	sections []SectionMarkup
}

var _ Document = &MemoryDocument{}

// NewMemoryDocument builds a document holding the given sections. Sections
// default to well-formed: pass HasContent/HasToggle explicitly via
// NewSection helpers or struct literals to model malformed markup.
func NewMemoryDocument(lang string, sections ...SectionMarkup) *MemoryDocument {
	return &MemoryDocument{
		lang:     lang,
		sections: append([]SectionMarkup(nil), sections...),
	}
}

// NewSection builds a well-formed collapsed section description.
func NewSection(contentID, heading, summary string) SectionMarkup {
	return SectionMarkup{
		ContentID:  contentID,
		Heading:    heading,
		Summary:    summary,
		HasContent: true,
		HasToggle:  true,
	}
}

func (d *MemoryDocument) Lang() string {
	if d == nil {
		return ""
	}
	return d.lang
}

func (d *MemoryDocument) Sections() []SectionMarkup {
	if d == nil || len(d.sections) == 0 {
		return nil
	}
	out := make([]SectionMarkup, len(d.sections))
	copy(out, d.sections)
	return out
}
