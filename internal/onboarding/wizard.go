// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package onboarding

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/simulate"
	"github.com/taibuivan/artistly/pkg/pointer"
	"github.com/taibuivan/artistly/pkg/query"
	"github.com/taibuivan/artistly/pkg/slice"
)

// # Steps & Phases

// Step is the index of the visible form section.
type Step int

const (
	StepPersonal Step = iota
	StepProfessional
	StepMedia
)

// lastStep is the final editable section. There is no step after it.
const lastStep = StepMedia

// Section returns the display metadata of the step.
func (s Step) Section() Section {
	return sections[s]
}

// fields lists the inputs owned by the step.
func (s Step) fields() []string {
	switch s {
	case StepPersonal:
		return []string{FieldName, FieldBio}
	case StepProfessional:
		return []string{FieldCategories, FieldLanguages, FieldFeeRange}
	case StepMedia:
		return []string{FieldLocation}
	}
	return nil
}

// Phase is where the wizard is in its lifecycle.
type Phase string

const (
	PhaseEditing    Phase = "editing"
	PhaseSubmitting Phase = "submitting"
	PhaseSuccess    Phase = "success"
	PhaseError      Phase = "error"
)

// Submission outcome messages.
const (
	MessageSubmitted    = "Your profile has been created and is pending review."
	MessageSubmitFailed = "Failed to create profile. Please try again."
	MessageSubmitError  = "An error occurred. Please try again."
)

// # Wizard

// Wizard is the persisted state of one applicant's onboarding session.
type Wizard struct {
	ID      string            `json:"id"`
	Step    Step              `json:"step"`
	Phase   Phase             `json:"phase"`
	Data    FormData          `json:"data"`
	Errors  map[string]string `json:"errors"`
	Message string            `json:"message,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewWizard starts an empty wizard on the personal step.
func NewWizard(id string, now time.Time) *Wizard {
	return &Wizard{
		ID:    id,
		Step:  StepPersonal,
		Phase: PhaseEditing,
		Data: FormData{
			Categories: []string{},
			Languages:  []string{},
		},
		Errors:    map[string]string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	Name       *string   `json:"name"`
	Bio        *string   `json:"bio"`
	Categories *[]string `json:"categories"`
	Languages  *[]string `json:"languages"`
	FeeRange   *string   `json:"fee_range"`
	Location   *string   `json:"location"`
}

// Update applies a patch and clears the errors of the fields it touches.
func (w *Wizard) Update(patch Patch) error {
	if err := w.edit(); err != nil {
		return err
	}

	w.Data.Name = pointer.Fallback(patch.Name, w.Data.Name)
	w.Data.Bio = pointer.Fallback(patch.Bio, w.Data.Bio)
	w.Data.Categories = selection(pointer.Fallback(patch.Categories, w.Data.Categories))
	w.Data.Languages = selection(pointer.Fallback(patch.Languages, w.Data.Languages))
	w.Data.FeeRange = pointer.Fallback(patch.FeeRange, w.Data.FeeRange)
	w.Data.Location = pointer.Fallback(patch.Location, w.Data.Location)

	touched := map[string]bool{
		FieldName:       patch.Name != nil,
		FieldBio:        patch.Bio != nil,
		FieldCategories: patch.Categories != nil,
		FieldLanguages:  patch.Languages != nil,
		FieldFeeRange:   patch.FeeRange != nil,
		FieldLocation:   patch.Location != nil,
	}
	for field, changed := range touched {
		if changed {
			delete(w.Errors, field)
		}
	}
	return nil
}

// Next validates the current step's fields and advances when they pass.
// On the last step it only validates. It reports whether the step changed.
func (w *Wizard) Next() (bool, error) {
	if err := w.edit(); err != nil {
		return false, err
	}

	owned := w.Step.fields()
	for _, field := range owned {
		delete(w.Errors, field)
	}

	failures := check(w.Data, owned...)
	if len(failures) > 0 {
		w.record(failures)
		return false, nil
	}

	if w.Step >= lastStep {
		return false, nil
	}
	w.Step++
	return true, nil
}

// Prev moves back one step. It never validates.
func (w *Wizard) Prev() error {
	if err := w.edit(); err != nil {
		return err
	}
	if w.Step > StepPersonal {
		w.Step--
	}
	return nil
}

// Progress is the rounded percentage of the six inputs that are filled.
func (w *Wizard) Progress() int {
	filled := slice.Count(progressFields, w.Data.filled)
	return (filled*100 + len(progressFields)/2) / len(progressFields)
}

// AttachImage replaces the profile image and returns the one it displaced.
func (w *Wizard) AttachImage(image Image) (*Image, error) {
	if err := w.edit(); err != nil {
		return nil, err
	}
	if err := CheckImage(image.ContentType, image.Size); err != nil {
		return nil, err
	}

	previous := w.Data.ProfileImage
	w.Data.ProfileImage = &image
	return previous, nil
}

// RemoveImage clears the profile image and returns it.
func (w *Wizard) RemoveImage() (*Image, error) {
	if err := w.edit(); err != nil {
		return nil, err
	}

	previous := w.Data.ProfileImage
	w.Data.ProfileImage = nil
	return previous, nil
}

// CanSubmit reports whether the whole form passes validation.
func (w *Wizard) CanSubmit() bool {
	return len(check(w.Data, progressFields...)) == 0
}

/*
Submit hands the finished profile to submitter.

Description: Allowed from the last step only. The wizard passes through the
submitting phase and ends in success, which is terminal, or in error, from
which Submit may be called again. Any other action after an error returns
the wizard to editing. A cancelled context leaves the wizard as it was.

Returns:
  - error: VALIDATION_ERROR, INVALID_STATE, OPERATION_FAILED or the context error
*/
func (w *Wizard) Submit(context context.Context, submitter Submitter, now time.Time) error {
	if err := w.editable(); err != nil {
		return err
	}
	if w.Step != lastStep {
		return apperr.InvalidState("Complete every section before submitting")
	}

	if failures := check(w.Data, progressFields...); len(failures) > 0 {
		w.record(failures)
		return apperr.ValidationError("Validation failed", failures...)
	}

	previous := w.Phase
	w.Phase = PhaseSubmitting

	err := submitter.Submit(context, w.profile(now))
	switch {
	case err == nil:
		w.Phase = PhaseSuccess
		w.Message = MessageSubmitted
		w.Errors = map[string]string{}
		return nil

	case context.Err() != nil && errors.Is(err, context.Err()):
		w.Phase = previous
		return err

	case errors.Is(err, simulate.ErrRemoteFailure):
		w.Phase = PhaseError
		w.Message = MessageSubmitFailed

	default:
		w.Phase = PhaseError
		w.Message = MessageSubmitError
	}
	return apperr.OperationFailed(w.Message, err)
}

// Profile is the payload of a finished onboarding.
type Profile struct {
	SessionID   string    `json:"session_id"`
	Name        string    `json:"name"`
	Bio         string    `json:"bio"`
	Categories  []string  `json:"categories"`
	Languages   []string  `json:"languages"`
	FeeRange    string    `json:"fee_range"`
	Location    string    `json:"location"`
	ImageURL    string    `json:"image_url,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func (w *Wizard) profile(now time.Time) Profile {
	p := Profile{
		SessionID:   w.ID,
		Name:        strings.TrimSpace(w.Data.Name),
		Bio:         strings.TrimSpace(w.Data.Bio),
		Categories:  w.Data.Categories,
		Languages:   w.Data.Languages,
		FeeRange:    w.Data.FeeRange,
		Location:    strings.TrimSpace(w.Data.Location),
		SubmittedAt: now.UTC(),
	}
	if w.Data.ProfileImage != nil {
		p.ImageURL = w.Data.ProfileImage.URL
	}
	return p
}

// editable rejects changes once the wizard is submitting or done.
func (w *Wizard) editable() error {
	switch w.Phase {
	case PhaseSuccess:
		return apperr.InvalidState("This profile has already been submitted")
	case PhaseSubmitting:
		return apperr.InvalidState("This profile is being submitted")
	}
	return nil
}

// edit guards a form change. A failed submission is left behind: the wizard
// goes back to editing and the failure message is cleared.
func (w *Wizard) edit() error {
	if err := w.editable(); err != nil {
		return err
	}
	if w.Phase == PhaseError {
		w.Phase = PhaseEditing
		w.Message = ""
	}
	return nil
}

// record keeps the first message per field.
func (w *Wizard) record(failures []apperr.FieldError) {
	if w.Errors == nil {
		w.Errors = map[string]string{}
	}
	for _, f := range failures {
		if _, exists := w.Errors[f.Field]; !exists {
			w.Errors[f.Field] = f.Message
		}
	}
}

func selection(values []string) []string {
	if picked := query.StringSlice(values...); picked != nil {
		return picked
	}
	return []string{}
}
