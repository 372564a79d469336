package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/completion"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/wizard"
)

// CreateResumeRequest is the body for POST /resumes.
type CreateResumeRequest struct {
	OwnerID string `json:"owner_id"`
	Title   string `json:"title"`
}

// StepRequest is the body for the wizard navigation endpoints. Current names
// the step the client is on; validation always runs against that step.
type StepRequest struct {
	Current string `json:"current"`
}

// StepResponse reports the validation outcome and the resulting active step.
type StepResponse struct {
	Result      types.ValidationResult `json:"result"`
	Step        string                 `json:"step"`
	Progression int                    `json:"progression"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	var req CreateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Title == "" {
		s.errorResponse(w, http.StatusBadRequest, "title is required")
		return
	}

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "owner_id must be a valid UUID")
		return
	}

	resume, err := s.store.CreateResume(r.Context(), ownerID, req.Title)
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, resume)
}

func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	ownerID, err := uuid.Parse(r.URL.Query().Get("owner_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "owner_id query parameter must be a valid UUID")
		return
	}

	summaries, err := s.store.ListResumes(r.Context(), ownerID)
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"resumes": summaries})
}

func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.loadResume(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, resume)
}

// handleUpdateResume replaces the stored snapshot with the request body after
// schema validation. Progression is not recalculated here; that only happens
// through the wizard's validated step endpoints.
func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.resumeID(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if err := schemas.ValidateResumeJSON(body); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var resume types.Resume
	if err := json.Unmarshal(body, &resume); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	resume.ID = id

	if err := s.store.UpdateResume(r.Context(), &resume); err != nil {
		s.serverError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, &resume)
}

func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.resumeID(w, r)
	if !ok {
		return
	}
	if err := s.store.DeleteResume(r.Context(), id); err != nil {
		s.serverError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCompletion(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.loadResume(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, completion.Calculate(resume))
}

func (s *Server) handleCompletionLevels(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.loadResume(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, completion.StepCompletionLevels(resume))
}

func (s *Server) handleSectionCompletion(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.loadResume(w, r)
	if !ok {
		return
	}

	section := r.PathValue("section")
	if _, err := wizard.ParseSection(section); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"section":    section,
		"percentage": completion.SectionCompletion(resume, section),
	})
}

func (s *Server) handleValidateSection(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.loadResume(w, r)
	if !ok {
		return
	}

	section, err := wizard.ParseSection(r.PathValue("section"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, wizard.Validate(section, resume))
}

func (s *Server) handleStepNext(w http.ResponseWriter, r *http.Request) {
	s.handleStep(w, r, func(wz *wizard.Wizard, req *http.Request) (types.ValidationResult, error) {
		return wz.Next(req.Context())
	})
}

func (s *Server) handleStepSave(w http.ResponseWriter, r *http.Request) {
	s.handleStep(w, r, func(wz *wizard.Wizard, req *http.Request) (types.ValidationResult, error) {
		return wz.SaveAndExit(req.Context())
	})
}

func (s *Server) handleStep(w http.ResponseWriter, r *http.Request,
	advance func(*wizard.Wizard, *http.Request) (types.ValidationResult, error)) {
	resume, ok := s.loadResume(w, r)
	if !ok {
		return
	}

	var req StepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	current, err := wizard.ParseSection(req.Current)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	wz := wizard.New(resume, s.store)
	if err := wz.JumpTo(current); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := advance(wz, r)
	if err != nil {
		s.serverError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, StepResponse{
		Result:      result,
		Step:        string(wz.Current()),
		Progression: resume.Progression,
	})
}

// loadResume resolves the {id} path value and fetches the resume, writing
// the error response itself on failure.
func (s *Server) loadResume(w http.ResponseWriter, r *http.Request) (*types.Resume, bool) {
	id, ok := s.resumeID(w, r)
	if !ok {
		return nil, false
	}
	resume, err := s.store.GetResume(r.Context(), id)
	if err != nil {
		s.serverError(w, err)
		return nil, false
	}
	return resume, true
}

func (s *Server) resumeID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resume id must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

func (s *Server) serverError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("Internal error: %v", err)
		s.errorResponse(w, status, "internal server error")
		return
	}
	s.errorResponse(w, status, err.Error())
}
