package accordion

// Section is one collapsible unit. The expanded flag lives here; the
// document's classes and attributes are projections of it via the View.
type Section struct {
	markup   SectionMarkup
	expanded bool
}

func newSection(markup SectionMarkup) *Section {
	return &Section{markup: markup, expanded: markup.Expanded}
}

// ContentID returns the section's stable content identifier.
func (s *Section) ContentID() string {
	return s.markup.ContentID
}

// Heading returns the section's heading text.
func (s *Section) Heading() string {
	return s.markup.Heading
}

// Summary returns the section's optional summary text.
func (s *Section) Summary() string {
	return s.markup.Summary
}

// Expanded reports the section's current state.
func (s *Section) Expanded() bool {
	return s.expanded
}

// malformed reports whether the section's markup lacks the sub-elements a
// state change needs. Such sections never transition.
func (s *Section) malformed() bool {
	return !s.markup.HasContent || !s.markup.HasToggle
}
