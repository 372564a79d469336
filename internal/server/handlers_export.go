package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/render"
)

// handleExport renders the resume's template and runs the PDF pipeline,
// streaming the result as a download. Failures are all-or-nothing: no
// partial file is ever written to the response.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.loadResume(w, r)
	if !ok {
		return
	}

	surface, err := render.Render(resume)
	if err != nil {
		var tmplErr *render.TemplateError
		if errors.As(err, &tmplErr) {
			s.errorResponse(w, http.StatusBadRequest, tmplErr.Message)
			return
		}
		s.serverError(w, err)
		return
	}

	result, err := s.exporter.Export(r.Context(), surface, resume.Title)
	if err != nil {
		switch {
		case errors.Is(err, export.ErrExportInFlight):
			s.errorResponse(w, http.StatusConflict, "An export is already in progress. Please wait and retry.")
		default:
			var surfaceErr *export.SurfaceError
			if errors.As(err, &surfaceErr) {
				s.errorResponse(w, http.StatusUnprocessableEntity, "Resume preview not found!")
				return
			}
			log.Printf("Export failed for resume %s: %v", resume.ID, err)
			s.errorResponse(w, http.StatusInternalServerError, "Failed to download PDF. Please try again.")
		}
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(result.PDF)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.PDF); err != nil {
		log.Printf("Failed to stream PDF for resume %s: %v", resume.ID, err)
	}
}
