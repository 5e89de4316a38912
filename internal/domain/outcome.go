package domain

import (
	"errors"
	"fmt"
)

// OutcomeKind tags the result of a resolve-and-launch cycle
type OutcomeKind int

const (
	OutcomeResolved OutcomeKind = iota
	OutcomeNoWorkspace
	OutcomeNoExecutableFound
	OutcomeUnsupportedPlatform
	OutcomeTranslationFailed
	OutcomeLaunchFailed
)

// String returns the outcome tag name
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeResolved:
		return "Resolved"
	case OutcomeNoWorkspace:
		return "NoWorkspace"
	case OutcomeNoExecutableFound:
		return "NoExecutableFound"
	case OutcomeUnsupportedPlatform:
		return "UnsupportedPlatform"
	case OutcomeTranslationFailed:
		return "TranslationFailed"
	case OutcomeLaunchFailed:
		return "LaunchFailed"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is the result of one invocation.
// Request and Async are set only for OutcomeResolved; Err only for failures.
type Outcome struct {
	Async   <-chan error // Reports asynchronous launch-facility failures, may be nil
	Err     error
	Kind    OutcomeKind
	Request *LaunchRequest
}

// Resolved builds a successful outcome
func Resolved(req LaunchRequest, async <-chan error) Outcome {
	return Outcome{Kind: OutcomeResolved, Request: &req, Async: async}
}

// Failed builds a failure outcome, deriving the tag from the wrapped sentinel error
func Failed(err error) Outcome {
	return Outcome{Kind: KindOf(err), Err: err}
}

// KindOf maps an error to its outcome tag.
// Errors not wrapping a known sentinel are treated as launch failures.
func KindOf(err error) OutcomeKind {
	switch {
	case err == nil:
		return OutcomeResolved
	case errors.Is(err, ErrUnsupportedPlatform):
		return OutcomeUnsupportedPlatform
	case errors.Is(err, ErrNoWorkspace):
		return OutcomeNoWorkspace
	case errors.Is(err, ErrTranslationFailed):
		return OutcomeTranslationFailed
	case errors.Is(err, ErrNoExecutableFound):
		return OutcomeNoExecutableFound
	default:
		return OutcomeLaunchFailed
	}
}

// OK reports whether the outcome is Resolved
func (o Outcome) OK() bool {
	return o.Kind == OutcomeResolved
}

// Message returns the single-line user-facing message for a failure outcome
func (o Outcome) Message() string {
	switch o.Kind {
	case OutcomeResolved:
		return ""
	case OutcomeNoWorkspace:
		return "Fork error: Working folder not found, open a folder and try again"
	case OutcomeUnsupportedPlatform:
		return "Fork error: Unsupported platform. Only macOS, Windows and WSL are supported."
	case OutcomeNoExecutableFound:
		return "Fork error: Fork executable not found, set fork_path and try again"
	case OutcomeTranslationFailed:
		return fmt.Sprintf("Fork error: WSL path translation failed: %v", o.Err)
	default:
		return fmt.Sprintf("Fork error: %v", o.Err)
	}
}
