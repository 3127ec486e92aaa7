// Package apperr defines the error kinds the resource services return, so the
// transport layer can map every failure to a status code without string matching.
package apperr

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidGeometry = errors.New("polygon requires at least 4 points")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrTooLarge        = errors.New("file too large")
)

// NotFoundError reports which level of the plot/bed/spatial-map hierarchy
// was missing.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

func NotFound(resource string) error { return &NotFoundError{Resource: resource} }

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Status maps an error kind to its HTTP status code. Anything outside the
// enumerated kinds is a storage failure and maps to 500.
func Status(err error) int {
	switch {
	case IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidGeometry):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrUnsupportedType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
