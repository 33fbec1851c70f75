package catalog

import "errors"

var (
	// ErrTransient covers network failures, timeouts and non-success
	// statuses. The request is safe to retry by repeating the user action.
	ErrTransient = errors.New("catalog: transient fetch failure")

	// ErrMalformedResponse means the catalog answered but the payload did
	// not have the expected shape.
	ErrMalformedResponse = errors.New("catalog: malformed response")

	// ErrInvalidQuery is returned for queries that can't be sent at all
	ErrInvalidQuery = errors.New("catalog: invalid query")
)

// IsTransient reports whether err is a transient fetch failure
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}

// IsMalformed reports whether err is a malformed response
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedResponse)
}
