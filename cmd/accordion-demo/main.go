// Command accordion-demo drives the accordion state machine from an
// interactive terminal: sections expand and collapse, the aggregate control
// stays derived, and state persists to a session file between runs.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	accordion "github.com/goliatone/go-accordion"
	"github.com/goliatone/go-accordion/i18n"
	"github.com/goliatone/go-accordion/storage"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62")).MarginBottom(1)
	aggregateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Underline(true)
	headingStyle   = lipgloss.NewStyle().Bold(true)
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	summaryStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	toggleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	bodyStyle      = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("252"))
	errStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	ToggleAll key.Binding
	Reveal    key.Binding
	Restore   key.Binding
	Quit      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.ToggleAll, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.ToggleAll, k.Reveal, k.Restore, k.Quit},
	}
}

var keys = keyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous section")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next section")),
	Toggle:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "toggle section")),
	ToggleAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle all")),
	Reveal:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "reveal (beforematch)")),
	Restore:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restore from store")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// termView captures the accordion's projections so View can paint them.
type termView struct {
	sections  map[string]accordion.SectionState
	aggregate accordion.AggregateState
}

func newTermView() *termView {
	return &termView{sections: make(map[string]accordion.SectionState)}
}

func (v *termView) RenderSection(s accordion.SectionState) {
	v.sections[s.ContentID] = s
}

func (v *termView) RenderAggregate(s accordion.AggregateState) {
	v.aggregate = s
}

type model struct {
	acc    *accordion.Accordion
	view   *termView
	ids    []string
	bodies map[string]string
	cursor int
	help   help.Model
	err    error
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if m.cursor < len(m.ids)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.Toggle):
		m.err = m.acc.Handle(accordion.ToggleSectionCmd{ContentID: m.ids[m.cursor]})
	case key.Matches(keyMsg, keys.ToggleAll):
		m.err = m.acc.Handle(accordion.ToggleAllCmd{})
	case key.Matches(keyMsg, keys.Reveal):
		m.err = m.acc.Handle(accordion.RevealSectionCmd{ContentID: m.ids[m.cursor]})
	case key.Matches(keyMsg, keys.Restore):
		m.err = m.acc.Handle(accordion.RestoreFromStoreCmd{})
	}

	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("go-accordion demo"))
	b.WriteString("\n")
	b.WriteString(aggregateStyle.Render("[ " + m.view.aggregate.Text + " ]"))
	b.WriteString("\n\n")

	for i, id := range m.ids {
		state := m.view.sections[id]

		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		chevron := "▸"
		if state.ChevronUp {
			chevron = "▾"
		}

		b.WriteString(fmt.Sprintf("%s%s %s  %s\n",
			cursor, chevron,
			headingStyle.Render(stateHeading(state)),
			toggleStyle.Render(state.ToggleText)))

		if summary := stateSummary(state); summary != "" {
			b.WriteString("    " + summaryStyle.Render(summary) + "\n")
		}
		if !state.ContentHidden {
			b.WriteString(bodyStyle.Render(m.bodies[id]) + "\n")
		}
	}

	if m.err != nil {
		b.WriteString("\n" + errStyle.Render(m.err.Error()) + "\n")
	}

	b.WriteString("\n" + m.help.View(keys) + "\n")
	return b.String()
}

// The aria label carries "heading , summary , action"; the terminal shows
// the parts separately.
func stateHeading(s accordion.SectionState) string {
	parts := strings.Split(s.AriaLabel, " , ")
	if len(parts) == 0 {
		return s.ContentID
	}
	return parts[0]
}

func stateSummary(s accordion.SectionState) string {
	parts := strings.Split(s.AriaLabel, " , ")
	if len(parts) == 3 {
		return parts[1]
	}
	return ""
}

func main() {
	var (
		locale       = flag.String("locale", "", "locale for accordion labels (default: document language)")
		storePath    = flag.String("store", filepath.Join(os.TempDir(), "accordion-demo-session.yaml"), "session store file")
		translations = flag.String("translations", "", "optional YAML/JSON translation bundle")
		noRemember   = flag.Bool("no-remember", false, "disable expanded-state persistence")
	)
	flag.Parse()

	doc := accordion.NewMemoryDocument("en",
		accordion.NewSection("writing-web", "Writing well for the web", ""),
		accordion.NewSection("writing-specialists", "Writing well for specialists", "Technical and scientific content"),
		accordion.NewSection("know-audience", "Know your audience", ""),
		accordion.NewSection("house-style", "How people read", ""),
	)
	bodies := map[string]string{
		"writing-web":         "This is the content for Writing well for the web.",
		"writing-specialists": "Specialists expect precision. Keep sentences short anyway.",
		"know-audience":       "Research who reads the page before writing it.",
		"house-style":         "People scan. Front-load every heading and paragraph.",
	}

	opts := []accordion.Option{
		accordion.WithLocale(*locale),
		accordion.WithRememberExpanded(!*noRemember),
	}

	view := newTermView()
	opts = append(opts, accordion.WithView(view))

	store, err := storage.NewFileStore(*storePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open session store: %v\n", err)
		os.Exit(1)
	}
	opts = append(opts, accordion.WithStore(store))

	if *translations != "" {
		bundles, err := i18n.NewFileLoader(*translations).Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "load translations: %v\n", err)
			os.Exit(1)
		}
		wanted := *locale
		if wanted == "" {
			wanted = i18n.DefaultLocale
		}
		if table, ok := bundles[wanted]; ok {
			opts = append(opts, accordion.WithTranslations(table))
		}
	}

	acc, err := accordion.New(doc, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build accordion: %v\n", err)
		os.Exit(1)
	}
	if acc == nil {
		fmt.Fprintln(os.Stderr, "no sections to show")
		os.Exit(1)
	}

	m := model{
		acc:    acc,
		view:   view,
		ids:    acc.SectionIDs(),
		bodies: bodies,
		help:   help.New(),
	}

	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "run: %v\n", err)
		os.Exit(1)
	}
}
