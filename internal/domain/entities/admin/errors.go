package admin

import "errors"

var (
	// ErrValidation marks input that was rejected without touching the draft.
	ErrValidation = errors.New("validation failed")
	// ErrIndexOutOfRange is returned for index-addressed updates outside the list.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNotFound is returned when no list element carries the requested id or key.
	ErrNotFound = errors.New("item not found")
	// ErrUnknownField is returned for field names the target record does not have.
	ErrUnknownField = errors.New("unknown field")
	// ErrUnsupportedLanguage is returned for languages other than en and ar.
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrNotEditing is returned when a staged-edit operation runs in the Browsing state.
	ErrNotEditing = errors.New("no edit in progress")
	// ErrConfirmationRequired is returned by deletes that were not confirmed.
	ErrConfirmationRequired = errors.New("confirmation required")
)
