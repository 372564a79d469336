package wizard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/completion"
	"github.com/jonathan/resume-builder/internal/types"
)

// ProgressionStore persists the overall completion percentage for a resume.
// The pgx-backed store implements this; tests use an in-memory fake.
type ProgressionStore interface {
	UpdateProgression(ctx context.Context, resumeID uuid.UUID, progression int) error
}

// Wizard tracks the active step for one resume and gates navigation on the
// step validator. Progression is recomputed and persisted only when the
// current section validates cleanly, so the stored value never reflects data
// the validator rejected.
type Wizard struct {
	resume *types.Resume
	store  ProgressionStore
	step   int
}

// New starts a wizard at the first step. store may be nil, in which case the
// progression is recorded on the resume but not persisted.
func New(resume *types.Resume, store ProgressionStore) *Wizard {
	return &Wizard{resume: resume, store: store}
}

// Resume returns the snapshot the wizard is editing.
func (w *Wizard) Resume() *types.Resume {
	return w.resume
}

// Current returns the active section.
func (w *Wizard) Current() Section {
	return StepOrder[w.step]
}

// JumpTo sets the active step directly. The dashboard uses this to reopen a
// resume at the section the user left off.
func (w *Wizard) JumpTo(section Section) error {
	i := stepIndex(section)
	if i < 0 {
		return fmt.Errorf("unknown section: %q", section)
	}
	w.step = i
	return nil
}

// Previous moves back one step. There is no wraparound: calling Previous on
// the first step stays on the first step. Backward navigation is never gated.
func (w *Wizard) Previous() Section {
	if w.step > 0 {
		w.step--
	}
	return w.Current()
}

// Next validates the current section and, on success, records progression and
// advances one step. On the terminal step a successful Next records
// progression without moving. A failed validation leaves the step unchanged
// and writes nothing.
func (w *Wizard) Next(ctx context.Context) (types.ValidationResult, error) {
	res := Validate(w.Current(), w.resume)
	if !res.IsValid {
		return res, nil
	}

	if err := w.recordProgression(ctx); err != nil {
		return res, err
	}

	if w.step < len(StepOrder)-1 {
		w.step++
	}
	return res, nil
}

// SaveAndExit validates the current section and, on success, records
// progression without changing the active step. A failed validation writes
// nothing.
func (w *Wizard) SaveAndExit(ctx context.Context) (types.ValidationResult, error) {
	res := Validate(w.Current(), w.resume)
	if !res.IsValid {
		return res, nil
	}

	if err := w.recordProgression(ctx); err != nil {
		return res, err
	}
	return res, nil
}

func (w *Wizard) recordProgression(ctx context.Context) error {
	report := completion.Calculate(w.resume)
	w.resume.Progression = report.Percentage

	if w.store == nil {
		return nil
	}
	if err := w.store.UpdateProgression(ctx, w.resume.ID, report.Percentage); err != nil {
		return fmt.Errorf("failed to update progression: %w", err)
	}
	return nil
}
