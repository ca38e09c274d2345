package component

import "errors"

// Sentinel errors returned by document operations. Callers surface them to
// the user; none of them is fatal.
var (
	// ErrLinkOutOfRange is returned when a link index exceeds the link count.
	ErrLinkOutOfRange = errors.New("link index out of range")

	// ErrHeadingNotFound is returned when no heading matches an anchor.
	ErrHeadingNotFound = errors.New("heading not found")

	// ErrNoSelection is returned when an operation needs a selected link.
	ErrNoSelection = errors.New("no link selected")

	// ErrNoResults is returned when a search matches nothing.
	ErrNoResults = errors.New("no search results")
)
