package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/export"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var surfaceErr *export.SurfaceError

	switch {
	case errors.Is(err, db.ErrResumeNotFound):
		return http.StatusNotFound
	case errors.Is(err, export.ErrExportInFlight):
		return http.StatusConflict
	case errors.As(err, &surfaceErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
