package container

import "fmt"

// Error is the one error kind the container raises itself: unknown type
// names, method calls that don't exist on the target type, and parameters
// no resolution rule could satisfy. Errors coming out of user factories,
// constructors, and setters are never wrapped in an Error — they pass
// through to the caller as-is.
//
// Match it with errors.As:
//
//	var cerr *container.Error
//	if errors.As(err, &cerr) {
//	    log.Printf("container failure on %s", cerr.Key)
//	}
type Error struct {
	// Key is the binding key or type name the failure relates to.
	Key string

	msg string
}

func (e *Error) Error() string { return "container: " + e.msg }

func newErrorf(key, format string, args ...any) *Error {
	return &Error{Key: key, msg: fmt.Sprintf(format, args...)}
}
