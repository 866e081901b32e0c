package accordion

import "fmt"

// Command is a message the accordion can handle. Using explicit commands
// keeps the state machine drivable without a live event loop.
type Command interface {
	isCommand()
}

// ToggleSectionCmd flips one section's state and persists it.
type ToggleSectionCmd struct {
	ContentID string
}

// ToggleAllCmd drives every section to the opposite of the aggregate state.
type ToggleAllCmd struct{}

// RevealSectionCmd forces a section open without persisting, mirroring a
// user-agent "beforematch" reveal.
type RevealSectionCmd struct {
	ContentID string
}

// RestoreFromStoreCmd re-applies persisted state to every section.
type RestoreFromStoreCmd struct{}

func (ToggleSectionCmd) isCommand()    {}
func (ToggleAllCmd) isCommand()        {}
func (RevealSectionCmd) isCommand()    {}
func (RestoreFromStoreCmd) isCommand() {}

// Handle dispatches a command to the matching operation.
func (a *Accordion) Handle(cmd Command) error {
	switch c := cmd.(type) {
	case ToggleSectionCmd:
		return a.Toggle(c.ContentID)
	case ToggleAllCmd:
		return a.ToggleAll()
	case RevealSectionCmd:
		return a.Reveal(c.ContentID)
	case RestoreFromStoreCmd:
		return a.Restore()
	default:
		return fmt.Errorf("accordion: unknown command %T", cmd)
	}
}
