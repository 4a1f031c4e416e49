package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrSessionExpired signals that the refresh-token exchange failed and the
// stored credentials were cleared. Not recoverable locally; the application
// must return to the login entry point.
var ErrSessionExpired = errors.New("session expired")

// ServiceError carries a human-readable message extracted from the backend
// error envelope, or a generic one when the envelope carried none.
type ServiceError struct {
	Status  int
	Message string
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// IsUnauthorized reports whether err is a 401 service error.
func IsUnauthorized(err error) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Status == http.StatusUnauthorized
}

// IsNotFound reports whether err is a 404 service error.
func IsNotFound(err error) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Status == http.StatusNotFound
}
