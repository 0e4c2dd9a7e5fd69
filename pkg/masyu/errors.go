package masyu

import (
	"errors"
	"fmt"
)

// Contradiction reports that an operation would violate the puzzle rules:
// setting an edge already forbidden, bending a cell already straight, closing
// a loop that misses a circle, and so on. It is an ordinary recoverable error
// value; the clue rules and the search tree routinely attempt an operation,
// observe a Contradiction, and decide based on which branch failed.
//
// A Contradiction surfacing from Solve means the puzzle itself has no
// solution. Internal invariant violations are programming errors and panic
// instead.
type Contradiction struct {
	Reason string
}

// Error implements the error interface.
func (c *Contradiction) Error() string {
	return c.Reason
}

// IsContradiction reports whether err is, or wraps, a Contradiction.
func IsContradiction(err error) bool {
	var c *Contradiction
	return errors.As(err, &c)
}

// contradictionf builds a Contradiction with a formatted reason.
func contradictionf(format string, args ...interface{}) error {
	return &Contradiction{Reason: fmt.Sprintf(format, args...)}
}
