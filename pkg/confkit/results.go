package confkit

// ScreenAction describes how a settings screen ended.
type ScreenAction int

const (
	ScreenActionNone      ScreenAction = iota // Screen is still open
	ScreenActionClosed                        // Closed with nothing pending
	ScreenActionDiscarded                     // Closed after confirming that unsaved changes are dropped
)

func (a ScreenAction) String() string {
	switch a {
	case ScreenActionClosed:
		return "closed"
	case ScreenActionDiscarded:
		return "discarded"
	default:
		return "none"
	}
}

// ScreenResult is what a settings screen reports once closed.
type ScreenResult struct {
	Action          ScreenAction
	Saved           bool  // At least one save succeeded
	RestartRequired bool  // A saved option needs an application restart
	Err             error // Last save or reset error, if any
}

// Cancelled returns ErrCancelled for a screen whose changes were discarded, so
// callers running screens in a router can treat it like a back press.
func (r ScreenResult) Cancelled() error {
	if r.Action == ScreenActionDiscarded {
		return ErrCancelled
	}
	return nil
}
