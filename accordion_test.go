package accordion

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-accordion/storage"
)

// recordingView keeps the latest projection per section plus the aggregate,
// so tests can assert on what a real surface would paint.
type recordingView struct {
	sections         map[string]SectionState
	aggregate        AggregateState
	aggregateRenders int
}

func newRecordingView() *recordingView {
	return &recordingView{sections: make(map[string]SectionState)}
}

func (v *recordingView) RenderSection(s SectionState) {
	v.sections[s.ContentID] = s
}

func (v *recordingView) RenderAggregate(s AggregateState) {
	v.aggregate = s
	v.aggregateRenders++
}

func threeSectionDoc() *MemoryDocument {
	return NewMemoryDocument("en",
		NewSection("content-1", "Writing well for the web", ""),
		NewSection("content-2", "Writing well for specialists", "Technical content"),
		NewSection("content-3", "Know your audience", ""),
	)
}

func TestNewNilDocument(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNilDocument)
}

func TestNewZeroSectionsIsInert(t *testing.T) {
	view := newRecordingView()
	acc, err := New(NewMemoryDocument("en"), WithView(view))
	require.NoError(t, err)
	assert.Nil(t, acc)
	assert.Zero(t, view.aggregateRenders, "no controls should be built")
}

func TestInitialRender(t *testing.T) {
	view := newRecordingView()
	acc, err := New(threeSectionDoc(), WithView(view))
	require.NoError(t, err)
	require.NotNil(t, acc)

	assert.Equal(t, []string{"content-1", "content-2", "content-3"}, acc.SectionIDs())
	assert.False(t, acc.AllOpen())
	assert.Equal(t, "Show all sections", view.aggregate.Text)

	s1 := view.sections["content-1"]
	assert.False(t, s1.Expanded)
	assert.True(t, s1.ContentHidden)
	assert.Equal(t, "Show", s1.ToggleText)
	assert.Equal(t, "Writing well for the web , Show this section", s1.AriaLabel)

	// summary text slots in between heading and action
	s2 := view.sections["content-2"]
	assert.Equal(t, "Writing well for specialists , Technical content , Show this section", s2.AriaLabel)
}

func TestToggleSingleSection(t *testing.T) {
	view := newRecordingView()
	acc, err := New(threeSectionDoc(), WithView(view))
	require.NoError(t, err)

	require.NoError(t, acc.Toggle("content-2"))

	expanded, err := acc.Expanded("content-2")
	require.NoError(t, err)
	assert.True(t, expanded)

	for _, id := range []string{"content-1", "content-3"} {
		expanded, err := acc.Expanded(id)
		require.NoError(t, err)
		assert.False(t, expanded, "%s must be untouched", id)
	}

	s2 := view.sections["content-2"]
	assert.Equal(t, "Hide", s2.ToggleText)
	assert.False(t, s2.ContentHidden)
	assert.True(t, s2.ChevronUp)
	assert.Equal(t, "Writing well for specialists , Technical content , Hide this section", s2.AriaLabel)

	// aggregate stays "show all" while any section is closed
	assert.False(t, view.aggregate.AllOpen)
	assert.Equal(t, "Show all sections", view.aggregate.Text)
}

func TestTogglePairRestoresState(t *testing.T) {
	acc, err := New(threeSectionDoc(), WithRememberExpanded(false))
	require.NoError(t, err)

	require.NoError(t, acc.Toggle("content-1"))
	require.NoError(t, acc.Toggle("content-1"))

	expanded, err := acc.Expanded("content-1")
	require.NoError(t, err)
	assert.False(t, expanded)

	for _, id := range []string{"content-2", "content-3"} {
		expanded, err := acc.Expanded(id)
		require.NoError(t, err)
		assert.False(t, expanded)
	}
}

func TestAggregateIsDerived(t *testing.T) {
	view := newRecordingView()
	acc, err := New(threeSectionDoc(), WithView(view))
	require.NoError(t, err)

	require.NoError(t, acc.Toggle("content-1"))
	require.NoError(t, acc.Toggle("content-2"))
	assert.False(t, view.aggregate.AllOpen)

	require.NoError(t, acc.Toggle("content-3"))
	assert.True(t, view.aggregate.AllOpen)
	assert.True(t, view.aggregate.Expanded)
	assert.Equal(t, "Hide all sections", view.aggregate.Text)

	require.NoError(t, acc.Toggle("content-2"))
	assert.False(t, view.aggregate.AllOpen)
	assert.Equal(t, "Show all sections", view.aggregate.Text)
}

func TestToggleAll(t *testing.T) {
	view := newRecordingView()
	store := storage.NewMemoryStore()
	acc, err := New(threeSectionDoc(), WithView(view), WithStore(store))
	require.NoError(t, err)

	require.NoError(t, acc.ToggleAll())
	assert.True(t, acc.AllOpen())
	assert.Equal(t, "Hide all sections", view.aggregate.Text)

	for _, id := range acc.SectionIDs() {
		value, err := store.Get(id)
		require.NoError(t, err)
		assert.Equal(t, "true", value)
	}

	require.NoError(t, acc.ToggleAll())
	assert.False(t, acc.AllOpen())
	for _, id := range acc.SectionIDs() {
		value, err := store.Get(id)
		require.NoError(t, err)
		assert.Equal(t, "false", value)
	}
}

func TestToggleUnknownSection(t *testing.T) {
	acc, err := New(threeSectionDoc())
	require.NoError(t, err)

	assert.ErrorIs(t, acc.Toggle("nope"), ErrUnknownSection)
	_, err = acc.Expanded("nope")
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestPersistenceRoundTrip(t *testing.T) {
	doc := threeSectionDoc()
	store := storage.NewMemoryStore()

	acc, err := New(doc, WithStore(store))
	require.NoError(t, err)
	require.NoError(t, acc.Toggle("content-2"))

	// a fresh accordion over the same markup restores the stored state
	restored, err := New(doc, WithStore(store))
	require.NoError(t, err)

	expanded, err := restored.Expanded("content-2")
	require.NoError(t, err)
	assert.True(t, expanded)

	expanded, err = restored.Expanded("content-1")
	require.NoError(t, err)
	assert.False(t, expanded)
}

func TestRememberExpandedFalseIgnoresStore(t *testing.T) {
	doc := threeSectionDoc()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set("content-2", "true"))

	acc, err := New(doc, WithStore(store), WithRememberExpanded(false))
	require.NoError(t, err)

	expanded, err := acc.Expanded("content-2")
	require.NoError(t, err)
	assert.False(t, expanded, "markup default must stand when persistence is off")

	// and toggling must not write back
	require.NoError(t, acc.Toggle("content-1"))
	_, err = store.Get("content-1")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUnavailableStoreDegradesSilently(t *testing.T) {
	store := &deadStore{}
	acc, err := New(threeSectionDoc(), WithStore(store))
	require.NoError(t, err)

	// every persistence operation is a no-op for the component's lifetime
	require.NoError(t, acc.Toggle("content-1"))
	require.NoError(t, acc.ToggleAll())
	assert.Equal(t, 1, store.sets, "no writes beyond the probe's sentinel")
}

func TestPersistFailureDoesNotBlockTransition(t *testing.T) {
	store := &flakyStore{MemoryStore: storage.NewMemoryStore()}
	acc, err := New(threeSectionDoc(), WithStore(store))
	require.NoError(t, err)

	store.failWrites = true
	require.NoError(t, acc.Toggle("content-1"))

	expanded, err := acc.Expanded("content-1")
	require.NoError(t, err)
	assert.True(t, expanded, "UI transition happens even when the write fails")
}

func TestMalformedSectionIsInert(t *testing.T) {
	doc := NewMemoryDocument("en",
		NewSection("content-1", "Intact", ""),
		SectionMarkup{ContentID: "content-2", Heading: "No content wrapper", HasToggle: true},
	)

	view := newRecordingView()
	acc, err := New(doc, WithView(view))
	require.NoError(t, err)

	require.NoError(t, acc.Toggle("content-2"))
	expanded, err := acc.Expanded("content-2")
	require.NoError(t, err)
	assert.False(t, expanded, "malformed section never expands")
	assert.NotContains(t, view.sections, "content-2")

	// the aggregate can therefore never read all-open
	require.NoError(t, acc.Toggle("content-1"))
	assert.False(t, view.aggregate.AllOpen)
}

func TestRevealForcesOpenWithoutPersisting(t *testing.T) {
	store := storage.NewMemoryStore()
	acc, err := New(threeSectionDoc(), WithStore(store))
	require.NoError(t, err)

	require.NoError(t, acc.Reveal("content-3"))

	expanded, err := acc.Expanded("content-3")
	require.NoError(t, err)
	assert.True(t, expanded)

	_, err = store.Get("content-3")
	assert.ErrorIs(t, err, storage.ErrNotFound, "reveal bypasses persistence")

	assert.ErrorIs(t, acc.Reveal("nope"), ErrUnknownSection)
}

func TestCommandDispatch(t *testing.T) {
	store := storage.NewMemoryStore()
	acc, err := New(threeSectionDoc(), WithStore(store))
	require.NoError(t, err)

	require.NoError(t, acc.Handle(ToggleSectionCmd{ContentID: "content-1"}))
	expanded, err := acc.Expanded("content-1")
	require.NoError(t, err)
	assert.True(t, expanded)

	require.NoError(t, acc.Handle(ToggleAllCmd{}))
	assert.True(t, acc.AllOpen())

	require.NoError(t, acc.Handle(ToggleAllCmd{}))
	require.NoError(t, acc.Handle(RevealSectionCmd{ContentID: "content-2"}))
	expanded, err = acc.Expanded("content-2")
	require.NoError(t, err)
	assert.True(t, expanded)

	require.NoError(t, store.Set("content-3", "true"))
	require.NoError(t, acc.Handle(RestoreFromStoreCmd{}))
	expanded, err = acc.Expanded("content-3")
	require.NoError(t, err)
	assert.True(t, expanded)

	assert.Error(t, acc.Handle(nil))
}

func TestTranslationOverridesAndLocale(t *testing.T) {
	view := newRecordingView()
	doc := NewMemoryDocument("cy", NewSection("content-1", "Ysgrifennu", ""))

	acc, err := New(doc,
		WithView(view),
		WithTranslations(map[string]string{
			KeyShowSection:          "Dangos",
			KeyShowSectionAriaLabel: "Dangos yr adran hon",
			KeyShowAllSections:      "Dangos pob adran",
		}))
	require.NoError(t, err)
	require.NotNil(t, acc)

	s := view.sections["content-1"]
	assert.Equal(t, "Dangos", s.ToggleText)
	assert.Equal(t, "Ysgrifennu , Dangos yr adran hon", s.AriaLabel)
	assert.Equal(t, "Dangos pob adran", view.aggregate.Text)

	// keys left out of the override keep the English defaults
	require.NoError(t, acc.Toggle("content-1"))
	assert.Equal(t, "Hide", view.sections["content-1"].ToggleText)
}

func TestEndToEndScenario(t *testing.T) {
	doc := threeSectionDoc()
	store := storage.NewMemoryStore()
	view := newRecordingView()

	acc, err := New(doc, WithStore(store), WithView(view))
	require.NoError(t, err)

	// click section 2's header
	require.NoError(t, acc.Handle(ToggleSectionCmd{ContentID: "content-2"}))

	expanded, err := acc.Expanded("content-2")
	require.NoError(t, err)
	assert.True(t, expanded)
	for _, id := range []string{"content-1", "content-3"} {
		expanded, err := acc.Expanded(id)
		require.NoError(t, err)
		assert.False(t, expanded)
	}
	assert.Equal(t, "Show all sections", view.aggregate.Text)
	assert.Equal(t,
		"Writing well for specialists , Technical content , Hide this section",
		view.sections["content-2"].AriaLabel)

	// click the aggregate control
	require.NoError(t, acc.Handle(ToggleAllCmd{}))
	assert.True(t, acc.AllOpen())
	assert.Equal(t, "Hide all sections", view.aggregate.Text)

	// reinitialise over the same markup: state comes back from the store
	reloaded, err := New(doc, WithStore(store), WithView(newRecordingView()))
	require.NoError(t, err)
	assert.True(t, reloaded.AllOpen())
}

// deadStore rejects every write, so it never survives the probe.
type deadStore struct {
	sets int
}

func (s *deadStore) Get(string) (string, error) { return "", storage.ErrNotFound }

func (s *deadStore) Set(string, string) error {
	s.sets++
	return errors.New("storage disabled")
}

func (s *deadStore) Remove(string) error { return nil }

// flakyStore works until failWrites flips, modelling quota exhaustion after
// a successful probe.
type flakyStore struct {
	*storage.MemoryStore
	failWrites bool
}

func (s *flakyStore) Set(key, value string) error {
	if s.failWrites {
		return errors.New("quota exceeded")
	}
	return s.MemoryStore.Set(key, value)
}
