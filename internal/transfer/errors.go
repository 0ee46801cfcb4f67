package transfer

import (
	"errors"
	"fmt"
)

// ErrEmptySource means the imported file contained no animated channels
// at all. The operation aborts before any target writes; this usually
// means the export was not taken from a baked animation sequence.
var ErrEmptySource = errors.New("no animated channels found in source")

// MalformedChannelError reports a source channel whose key times are not
// strictly increasing. Fatal for that channel only.
type MalformedChannelError struct {
	Channel string
	Err     error
}

// Error implements error.
func (e *MalformedChannelError) Error() string {
	return fmt.Sprintf("channel %s has malformed keys: %v", e.Channel, e.Err)
}

// Unwrap returns the underlying validation error.
func (e *MalformedChannelError) Unwrap() error {
	return e.Err
}
