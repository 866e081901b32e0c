package accordion

import "errors"

// ErrNilDocument indicates New was called without a document.
var ErrNilDocument = errors.New("accordion: nil document")

// ErrUnknownSection indicates a command referenced a content identifier the
// accordion did not discover at initialisation.
var ErrUnknownSection = errors.New("accordion: unknown section")
