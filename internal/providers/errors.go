package providers

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrProviderUnavailable is returned when no provider is wired.
var ErrProviderUnavailable = errors.New("standings provider unavailable")

// TransportError captures failed upstream exchanges: network errors, timeouts,
// non-2xx responses and bodies that are not a standings document.
type TransportError struct {
	Provider   string
	URL        string
	StatusCode int
	RetryAfter time.Duration
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	msg := fmt.Sprintf("%s: GET %s", e.Provider, e.URL)
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s: unexpected status %d", msg, e.StatusCode)
		if e.Body != "" {
			msg += ": " + e.Body
		}
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RateLimited reports whether upstream answered 429.
func (e *TransportError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// AsTransportError attempts to unwrap an error into a TransportError.
func AsTransportError(err error) (*TransportError, bool) {
	var tErr *TransportError
	if errors.As(err, &tErr) {
		return tErr, true
	}
	return nil, false
}
