// Package accordion implements the expand/collapse state machine behind a
// progressively enhanced accordion: independently collapsible sections, a
// derived "show all / hide all" control, and best-effort persistence of each
// section's state to a session-scoped store.
package accordion

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/goliatone/go-accordion/i18n"
	"github.com/goliatone/go-accordion/storage"
)

// ariaLabelSeparator joins heading, summary and action text. The spaces
// around the comma make assistive technology pause between clauses.
const ariaLabelSeparator = " , "

// Accordion drives N sections plus one derived aggregate control. All
// methods are synchronous; state mutation cannot partially fail.
type Accordion struct {
	cfg       *Config
	engine    *i18n.I18n
	sections  []*Section
	index     map[string]*Section
	view      View
	store     storage.Store
	storageOK bool
	logger    *slog.Logger
}

// New builds an accordion over the document's sections. It returns
// (nil, nil) when the document holds no sections: the component is inert and
// nothing is built, which is a no-op condition rather than an error.
func New(doc Document, opts ...Option) (*Accordion, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}

	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	markups := doc.Sections()
	if len(markups) == 0 {
		return nil, nil
	}

	engine, err := i18n.New(cfg.translationTable(),
		i18n.WithLocale(cfg.Locale),
		i18n.WithAmbientLanguage(doc.Lang()),
		i18n.WithLogger(cfg.Logger))
	if err != nil {
		return nil, err
	}

	a := &Accordion{
		cfg:    cfg,
		engine: engine,
		view:   cfg.View,
		store:  cfg.Store,
		logger: cfg.Logger,
		index:  make(map[string]*Section, len(markups)),
	}

	for _, markup := range markups {
		section := newSection(markup)
		a.sections = append(a.sections, section)
		a.index[section.ContentID()] = section
	}

	if cfg.RememberExpanded && a.store != nil {
		a.storageOK = cfg.Probe.Available(a.store)
		if !a.storageOK {
			a.logger.Warn("accordion: session store unavailable, state will not persist")
		}
	}

	// project the markup-default state, then let persisted state override it
	for _, section := range a.sections {
		if err := a.setExpanded(section, section.expanded); err != nil {
			return nil, err
		}
	}
	for _, section := range a.sections {
		if err := a.restoreState(section); err != nil {
			return nil, err
		}
	}
	if err := a.renderAggregate(); err != nil {
		return nil, err
	}

	return a, nil
}

// SectionIDs returns the content identifiers in document order.
func (a *Accordion) SectionIDs() []string {
	ids := make([]string, len(a.sections))
	for i, section := range a.sections {
		ids[i] = section.ContentID()
	}
	return ids
}

// Expanded reports the state of the section with the given content id.
func (a *Accordion) Expanded(contentID string) (bool, error) {
	section, ok := a.index[contentID]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownSection, contentID)
	}
	return section.expanded, nil
}

// AllOpen reports whether every section is expanded. The aggregate control's
// displayed state is always this value, recomputed, never stored.
func (a *Accordion) AllOpen() bool {
	for _, section := range a.sections {
		if !section.expanded {
			return false
		}
	}
	return true
}

// Toggle flips one section and persists its new state.
func (a *Accordion) Toggle(contentID string) error {
	section, ok := a.index[contentID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSection, contentID)
	}
	if err := a.setExpanded(section, !section.expanded); err != nil {
		return err
	}
	a.persistState(section)
	return nil
}

// ToggleAll drives every section to the opposite of the current aggregate
// state, persisting each. One caller action, N section updates.
func (a *Accordion) ToggleAll() error {
	nowOpen := !a.AllOpen()
	for _, section := range a.sections {
		if err := a.setExpanded(section, nowOpen); err != nil {
			return err
		}
		a.persistState(section)
	}
	return nil
}

// Reveal forces a section open outside the normal toggle path, as when the
// user agent surfaces hidden-until-found content. The state is not
// persisted; the aggregate recompute still runs.
func (a *Accordion) Reveal(contentID string) error {
	section, ok := a.index[contentID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSection, contentID)
	}
	return a.setExpanded(section, true)
}

// Restore re-applies persisted state to every section.
func (a *Accordion) Restore() error {
	for _, section := range a.sections {
		if err := a.restoreState(section); err != nil {
			return err
		}
	}
	return nil
}

// setExpanded records the section's state and projects it through the view,
// then recomputes the aggregate. Sections with incomplete markup no-op.
func (a *Accordion) setExpanded(section *Section, expanded bool) error {
	if section.malformed() {
		a.logger.Debug("accordion: section markup incomplete, skipping",
			"section", section.ContentID())
		return nil
	}

	section.expanded = expanded

	state, err := a.sectionState(section)
	if err != nil {
		return err
	}
	a.view.RenderSection(state)

	return a.renderAggregate()
}

func (a *Accordion) sectionState(section *Section) (SectionState, error) {
	toggleKey, labelKey := KeyShowSection, KeyShowSectionAriaLabel
	if section.expanded {
		toggleKey, labelKey = KeyHideSection, KeyHideSectionAriaLabel
	}

	toggleText, err := a.engine.T(toggleKey, nil)
	if err != nil {
		return SectionState{}, err
	}
	actionText, err := a.engine.T(labelKey, nil)
	if err != nil {
		return SectionState{}, err
	}

	parts := []string{section.Heading()}
	if summary := section.Summary(); summary != "" {
		parts = append(parts, summary)
	}
	parts = append(parts, actionText)

	return SectionState{
		ContentID:     section.ContentID(),
		Expanded:      section.expanded,
		ToggleText:    toggleText,
		AriaLabel:     strings.Join(parts, ariaLabelSeparator),
		ContentHidden: !section.expanded,
		ChevronUp:     section.expanded,
	}, nil
}

func (a *Accordion) renderAggregate() error {
	allOpen := a.AllOpen()

	key := KeyShowAllSections
	if allOpen {
		key = KeyHideAllSections
	}
	text, err := a.engine.T(key, nil)
	if err != nil {
		return err
	}

	a.view.RenderAggregate(AggregateState{
		AllOpen:  allOpen,
		Expanded: allOpen,
		Text:     text,
	})
	return nil
}

// persistState writes the section's state. Persistence is best effort: the
// UI transition has already happened, so write failures are only logged.
func (a *Accordion) persistState(section *Section) {
	if !a.storageOK {
		return
	}
	if err := a.store.Set(section.ContentID(), strconv.FormatBool(section.expanded)); err != nil {
		a.logger.Debug("accordion: state not persisted",
			"section", section.ContentID(), "error", err)
	}
}

// restoreState applies a previously stored state, if any. An absent value
// leaves the section untouched.
func (a *Accordion) restoreState(section *Section) error {
	if !a.storageOK {
		return nil
	}

	value, err := a.store.Get(section.ContentID())
	if err != nil {
		// absent or unreadable: either way the markup state stands
		return nil
	}
	return a.setExpanded(section, value == "true")
}
