package exchange

import (
	"errors"
	"fmt"
)

var ErrMalformedResponse = errors.New("malformed exchange response")

// TransportError wraps a failure to complete a request: DNS, connect, timeout or
// an unreadable body. No status code is available when it occurs.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("exchange %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func IsTransportError(err error) (*TransportError, bool) {
	var tErr *TransportError
	ok := errors.As(err, &tErr)
	return tErr, ok
}
