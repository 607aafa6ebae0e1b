package ws

import "errors"

var (
	// ErrDenied rejects a join the identity is not authorized for.
	ErrDenied = errors.New("join denied")

	// ErrEmptyMessage rejects a draft with no content, image or location.
	ErrEmptyMessage = errors.New("empty message")

	// ErrPersistenceFailed means the message could not be stored; nothing
	// was broadcast.
	ErrPersistenceFailed = errors.New("message persistence failed")
)
