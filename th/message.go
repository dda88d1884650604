package th

import (
	"errors"
	"fmt"
)

// DefaultCapacity is the message capacity used when none is configured.
const DefaultCapacity = 1024

// ErrMessageTooLong is matched by every [*MessageTooLongError].
var ErrMessageTooLong = errors.New("message too long")

// MessageTooLongError is returned when a rendered message does not fit in the
// configured capacity. Messages are never truncated.
type MessageTooLongError struct {
	// Needed is the length of the fully rendered message.
	Needed int
	// Capacity is the capacity it had to fit in.
	Capacity int
}

func (e *MessageTooLongError) Error() string {
	return fmt.Sprintf("ran out of message buffer space (needed: %d, capacity: %d)", e.Needed, e.Capacity)
}

func (e *MessageTooLongError) Is(target error) bool {
	return target == ErrMessageTooLong
}

// FormatMessage renders format and args. A message fits when it is shorter
// than capacity; one byte is reserved the way a NUL-terminated buffer would.
//
// Use it to pre-render a message with computed values before handing it to
// one of the typed helpers, for example:
//
//	msg, err := th.FormatMessage(th.DefaultCapacity, "iteration %d: pointer %%p should be %%p", i)
func FormatMessage(capacity int, format string, args ...any) (string, error) {
	msg := fmt.Sprintf(format, args...)
	if err := fits(msg, capacity); err != nil {
		return "", err
	}
	return msg, nil
}

// MustFormatMessage is like FormatMessage but panics if the message does not fit.
func MustFormatMessage(capacity int, format string, args ...any) string {
	msg, err := FormatMessage(capacity, format, args...)
	if err != nil {
		panic(err)
	}
	return msg
}

func fits(msg string, capacity int) error {
	if len(msg) >= capacity {
		return &MessageTooLongError{Needed: len(msg), Capacity: capacity}
	}
	return nil
}
