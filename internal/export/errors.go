package export

import (
	"errors"
	"fmt"
)

// ErrExportInFlight is returned when an export is requested while another is
// still running. The guard rejects rather than queues: the caller retries
// after the active export finishes.
var ErrExportInFlight = errors.New("an export is already in progress")

// SurfaceError indicates the visual surface was missing or empty. It is
// raised before any staging happens, so there is nothing to clean up.
type SurfaceError struct {
	Message string
}

func (e *SurfaceError) Error() string {
	return fmt.Sprintf("surface error: %s", e.Message)
}

// PipelineError wraps a failure in one of the export stages. Callers surface
// it as a single generic retry message; the stage detail is for logs.
type PipelineError struct {
	Stage string
	Cause error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("export failed at %s: %v", e.Stage, e.Cause)
}

func (e *PipelineError) Unwrap() error {
	return e.Cause
}
