package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store for handler tests.
type memStore struct {
	mu      sync.Mutex
	resumes map[uuid.UUID]*types.Resume
}

func newMemStore() *memStore {
	return &memStore{resumes: make(map[uuid.UUID]*types.Resume)}
}

func (m *memStore) CreateResume(_ context.Context, ownerID uuid.UUID, title string) (*types.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := &types.Resume{ID: uuid.New(), OwnerID: ownerID, Title: title, CreatedAt: time.Now()}
	m.resumes[r.ID] = r
	return r, nil
}

func (m *memStore) GetResume(_ context.Context, id uuid.UUID) (*types.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.resumes[id]
	if !ok {
		return nil, db.ErrResumeNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memStore) UpdateResume(_ context.Context, r *types.Resume) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.resumes[r.ID]; !ok {
		return db.ErrResumeNotFound
	}
	cp := *r
	m.resumes[r.ID] = &cp
	return nil
}

func (m *memStore) UpdateProgression(_ context.Context, id uuid.UUID, progression int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.resumes[id]
	if !ok {
		return db.ErrResumeNotFound
	}
	r.Progression = progression
	return nil
}

func (m *memStore) ListResumes(_ context.Context, ownerID uuid.UUID) ([]db.ResumeSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db.ResumeSummary
	for _, r := range m.resumes {
		if r.OwnerID == ownerID {
			out = append(out, db.ResumeSummary{ID: r.ID, Title: r.Title, Progression: r.Progression})
		}
	}
	return out, nil
}

func (m *memStore) DeleteResume(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.resumes[id]; !ok {
		return db.ErrResumeNotFound
	}
	delete(m.resumes, id)
	return nil
}

// flatRasterizer renders every document as a blank single-page bitmap.
type flatRasterizer struct{}

func (flatRasterizer) Rasterize(_ context.Context, _ string) (image.Image, error) {
	return image.NewRGBA(image.Rect(0, 0, 794, 1123)), nil
}

func newTestServer(store Store) *Server {
	return newWithStore(store, export.New(flatRasterizer{}))
}

func seedResume(t *testing.T, store *memStore, mutate func(*types.Resume)) *types.Resume {
	t.Helper()
	r, err := store.CreateResume(context.Background(), uuid.New(), "My Resume")
	require.NoError(t, err)
	if mutate != nil {
		mutate(r)
	}
	return r
}

func doRequest(s *Server, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleCreateResume(t *testing.T) {
	s := newTestServer(newMemStore())

	rec := doRequest(s, http.MethodPost, "/resumes", CreateResumeRequest{
		OwnerID: uuid.New().String(),
		Title:   "Backend Resume",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var r types.Resume
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	assert.Equal(t, "Backend Resume", r.Title)
	assert.NotEqual(t, uuid.Nil, r.ID)
}

func TestHandleCreateResume_MissingTitle(t *testing.T) {
	s := newTestServer(newMemStore())

	rec := doRequest(s, http.MethodPost, "/resumes", CreateResumeRequest{OwnerID: uuid.New().String()})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetResume_NotFound(t *testing.T) {
	s := newTestServer(newMemStore())

	rec := doRequest(s, http.MethodGet, "/resumes/"+uuid.New().String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleUpdateResume_SchemaRejected(t *testing.T) {
	store := newMemStore()
	r := seedResume(t, store, nil)
	s := newTestServer(store)

	rec := doRequest(s, http.MethodPut, "/resumes/"+r.ID.String(),
		map[string]any{"title": "x", "skills": "Go"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "skills")
}

func TestHandleUpdateResume_RoundTrip(t *testing.T) {
	store := newMemStore()
	r := seedResume(t, store, nil)
	s := newTestServer(store)

	// PUT back exactly what GET returns for a fresh resume.
	rec := doRequest(s, http.MethodGet, "/resumes/"+r.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodPut, "/resumes/"+r.ID.String(), rec.Body)
	rec = httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleCompletion(t *testing.T) {
	store := newMemStore()
	r := seedResume(t, store, func(r *types.Resume) {
		r.FullName = "Jane Doe"
		r.Designation = "Engineer"
		r.Summary = "Builds things."
	})
	s := newTestServer(store)

	rec := doRequest(s, http.MethodGet, "/resumes/"+r.ID.String()+"/completion", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var report types.CompletionReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 100, report.SectionDetails["personal"].Percentage)
	assert.Equal(t, 30, report.TotalFields)
}

func TestHandleSectionCompletion_UnknownSection(t *testing.T) {
	store := newMemStore()
	r := seedResume(t, store, nil)
	s := newTestServer(store)

	rec := doRequest(s, http.MethodGet, "/resumes/"+r.ID.String()+"/completion/bogus", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleValidateSection(t *testing.T) {
	store := newMemStore()
	r := seedResume(t, store, nil)
	s := newTestServer(store)

	rec := doRequest(s, http.MethodPost, "/resumes/"+r.ID.String()+"/validate/personal", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res types.ValidationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.False(t, res.IsValid)
	assert.Contains(t, res.Errors, "Full Name is required")
}

func TestHandleStepNext_GatesOnValidation(t *testing.T) {
	store := newMemStore()
	r := seedResume(t, store, nil)
	s := newTestServer(store)

	// Invalid personal section: step stays, progression untouched.
	rec := doRequest(s, http.MethodPost, "/resumes/"+r.ID.String()+"/steps/next",
		StepRequest{Current: "personal"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp StepResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Result.IsValid)
	assert.Equal(t, "personal", resp.Step)

	stored, err := store.GetResume(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Progression)

	// Fill the section; next advances and persists progression.
	stored.FullName = "Jane Doe"
	stored.Designation = "Engineer"
	stored.Summary = "Builds things."
	require.NoError(t, store.UpdateResume(context.Background(), stored))

	rec = doRequest(s, http.MethodPost, "/resumes/"+r.ID.String()+"/steps/next",
		StepRequest{Current: "personal"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Result.IsValid)
	assert.Equal(t, "contact", resp.Step)
	assert.Greater(t, resp.Progression, 0)

	stored, err = store.GetResume(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.Progression, stored.Progression)
}

func TestHandleStepSave_KeepsStep(t *testing.T) {
	store := newMemStore()
	r := seedResume(t, store, func(r *types.Resume) {
		r.FullName = "Jane Doe"
		r.Designation = "Engineer"
		r.Summary = "Builds things."
		require.NoError(t, store.UpdateResume(context.Background(), r))
	})
	s := newTestServer(store)

	rec := doRequest(s, http.MethodPost, "/resumes/"+r.ID.String()+"/steps/save",
		StepRequest{Current: "personal"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp StepResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Result.IsValid)
	assert.Equal(t, "personal", resp.Step)
}

func TestHandleExport(t *testing.T) {
	store := newMemStore()
	r := seedResume(t, store, func(r *types.Resume) {
		r.FullName = "Jane Doe"
		require.NoError(t, store.UpdateResume(context.Background(), r))
	})
	s := newTestServer(store)

	rec := doRequest(s, http.MethodPost, "/resumes/"+r.ID.String()+"/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "my_resume_resume.pdf")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestHandleExport_UnknownTemplate(t *testing.T) {
	store := newMemStore()
	r := seedResume(t, store, func(r *types.Resume) {
		r.Template = "brutalist"
		require.NoError(t, store.UpdateResume(context.Background(), r))
	})
	s := newTestServer(store)

	rec := doRequest(s, http.MethodPost, "/resumes/"+r.ID.String()+"/export", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleDeleteResume(t *testing.T) {
	store := newMemStore()
	r := seedResume(t, store, nil)
	s := newTestServer(store)

	rec := doRequest(s, http.MethodDelete, "/resumes/"+r.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(s, http.MethodDelete, "/resumes/"+r.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleListResumes(t *testing.T) {
	store := newMemStore()
	owner := uuid.New()
	for i := 0; i < 3; i++ {
		_, err := store.CreateResume(context.Background(), owner, fmt.Sprintf("Resume %d", i))
		require.NoError(t, err)
	}
	s := newTestServer(store)

	rec := doRequest(s, http.MethodGet, "/resumes?owner_id="+owner.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Resumes []db.ResumeSummary `json:"resumes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Resumes, 3)
}
