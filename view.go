package accordion

// SectionState is the render projection of one section. The accordion owns
// the expanded flag; everything here is derived from it.
type SectionState struct {
	ContentID string
	Expanded  bool
	// ToggleText is the visible action text, "Show" or "Hide" by default.
	ToggleText string
	// AriaLabel joins heading, optional summary and action text with a
	// comma surrounded by spaces, so assistive technology pauses between
	// clauses.
	AriaLabel string
	// ContentHidden mirrors !Expanded for the content wrapper.
	ContentHidden bool
	// ChevronUp is true while the section is expanded.
	ChevronUp bool
}

// AggregateState is the render projection of the "show all / hide all"
// control. It is recomputed on every section change, never stored.
type AggregateState struct {
	// AllOpen is true iff every section is expanded.
	AllOpen bool
	// Expanded is the control's displayed state and always equals AllOpen.
	Expanded bool
	// Text is the control's visible label.
	Text string
}

// View receives state projections as the accordion mutates. Implementations
// paint a real surface: markup, a terminal, a test recorder.
type View interface {
	RenderSection(SectionState)
	RenderAggregate(AggregateState)
}

// NopView discards every projection.
type NopView struct{}

var _ View = NopView{}

func (NopView) RenderSection(SectionState)     {}
func (NopView) RenderAggregate(AggregateState) {}
