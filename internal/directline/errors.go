package directline

import "errors"

var (
	// ErrNotConnected is returned by PostActivity before a conversation was joined.
	ErrNotConnected = errors.New("conversation not started")
	// ErrStreamURLMissing is returned when the service hands out no stream URL.
	ErrStreamURLMissing = errors.New("stream url missing")
)
