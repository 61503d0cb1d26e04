package svdag

import "github.com/pkg/errors"

// Error kinds surfaced by the arena, the editor and deserialization.
// Call sites attach context with errors.Wrapf; callers match with
// errors.Is. Nothing is retried internally.
var (
	ErrIndexOutOfRange = errors.New("node index out of range")
	ErrNotFound        = errors.New("child not found")
	ErrCorruptArena    = errors.New("corrupt arena")
	ErrInputRejected   = errors.New("input rejected")
)
