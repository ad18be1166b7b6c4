package inch5

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrNotConnected = errors.New("device not connected")

// ExpectError reports a reply that did not match the expected literal
// acknowledgement.
type ExpectError struct {
	Expected string
	Actual   string
}

func (e *ExpectError) Error() string {
	return fmt.Sprintf("expected %q got %q", e.Expected, e.Actual)
}

// RetryError reports a region update that was still being refused
// after the retry bound.
type RetryError struct {
	Attempts int
}

func (e *RetryError) Error() string {
	return fmt.Sprintf("panel still requests resend after %d attempts", e.Attempts)
}
