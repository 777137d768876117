// Package errors defines domain error values shared across services
// and mapped to HTTP status codes by the handlers.
package errors

// DomainError is a stable, code-carrying error for client-visible
// failures.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}
