package api

import "fmt"

// Error is the transport error for non-success HTTP responses. It carries the
// numeric status and the raw response body; the body is never interpreted as
// JSON. Callers match it with errors.As.
type Error struct {
	Status int
	Body   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Body)
}
