// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package onboarding_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artistly/internal/onboarding"
	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/simulate"
	"github.com/taibuivan/artistly/pkg/pointer"
)

const validBio = "Classically trained vocalist performing at weddings and corporate events across India."

var epoch = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

func completePatch() onboarding.Patch {
	return onboarding.Patch{
		Name:       pointer.To("Priya Sharma"),
		Bio:        pointer.To(validBio),
		Categories: pointer.To([]string{"singer", "musician"}),
		Languages:  pointer.To([]string{"hindi", "english"}),
		FeeRange:   pointer.To("₹10,000 - ₹15,000"),
		Location:   pointer.To("Pune, Maharashtra"),
	}
}

// readyWizard returns a complete wizard on the last step.
func readyWizard(t *testing.T) *onboarding.Wizard {
	t.Helper()

	w := onboarding.NewWizard("session-1", epoch)
	require.NoError(t, w.Update(completePatch()))
	for range 2 {
		advanced, err := w.Next()
		require.NoError(t, err)
		require.True(t, advanced)
	}
	require.Equal(t, onboarding.StepMedia, w.Step)
	return w
}

func TestWizard_NextValidatesOwnedFieldsOnly(t *testing.T) {
	w := onboarding.NewWizard("session-1", epoch)

	advanced, err := w.Next()
	require.NoError(t, err)
	assert.False(t, advanced)
	assert.Equal(t, onboarding.StepPersonal, w.Step)
	assert.Equal(t, map[string]string{
		onboarding.FieldName: "Name is required",
		onboarding.FieldBio:  "Bio is required",
	}, w.Errors)

	require.NoError(t, w.Update(onboarding.Patch{Name: pointer.To("P"), Bio: pointer.To("Too short")}))
	assert.Empty(t, w.Errors)

	_, _ = w.Next()
	assert.Equal(t, "Name must be at least 2 characters", w.Errors[onboarding.FieldName])
	assert.Equal(t, "Bio must be at least 50 characters", w.Errors[onboarding.FieldBio])

	require.NoError(t, w.Update(onboarding.Patch{Name: pointer.To("Priya Sharma"), Bio: pointer.To(validBio)}))
	advanced, err = w.Next()
	require.NoError(t, err)
	assert.True(t, advanced)
	assert.Equal(t, onboarding.StepProfessional, w.Step)
	assert.Empty(t, w.Errors)
}

func TestWizard_NextRejectsShortBio(t *testing.T) {
	w := onboarding.NewWizard("session-1", epoch)
	require.NoError(t, w.Update(onboarding.Patch{
		Name: pointer.To("Priya Sharma"),
		Bio:  pointer.To(strings.Repeat("b", 40)),
	}))

	advanced, err := w.Next()
	require.NoError(t, err)
	assert.False(t, advanced)
	assert.Equal(t, onboarding.StepPersonal, w.Step)
	assert.Equal(t, "Bio must be at least 50 characters", w.Errors[onboarding.FieldBio])
	assert.NotContains(t, w.Errors, onboarding.FieldName)
}

func TestWizard_ProfessionalStepRules(t *testing.T) {
	w := onboarding.NewWizard("session-1", epoch)
	require.NoError(t, w.Update(onboarding.Patch{Name: pointer.To("Priya"), Bio: pointer.To(validBio)}))
	_, _ = w.Next()

	require.NoError(t, w.Update(onboarding.Patch{
		Categories: pointer.To([]string{"singer", "dancer", "dj", "poet"}),
		Languages:  pointer.To([]string{}),
	}))

	advanced, _ := w.Next()
	assert.False(t, advanced)
	assert.Equal(t, "Please select no more than 3 categories", w.Errors[onboarding.FieldCategories])
	assert.Equal(t, "Please select at least one language", w.Errors[onboarding.FieldLanguages])
	assert.Equal(t, "Fee range is required", w.Errors[onboarding.FieldFeeRange])

	assert.Equal(t, "Priya", w.Data.Name, "earlier data is kept")
}

func TestWizard_PrevAndLastStep(t *testing.T) {
	w := readyWizard(t)

	advanced, err := w.Next()
	require.NoError(t, err)
	assert.False(t, advanced)
	assert.Equal(t, onboarding.StepMedia, w.Step)

	require.NoError(t, w.Prev())
	require.NoError(t, w.Prev())
	require.NoError(t, w.Prev())
	assert.Equal(t, onboarding.StepPersonal, w.Step)
}

func TestWizard_Progress(t *testing.T) {
	w := onboarding.NewWizard("session-1", epoch)
	assert.Equal(t, 0, w.Progress())

	require.NoError(t, w.Update(onboarding.Patch{Name: pointer.To("Priya")}))
	assert.Equal(t, 17, w.Progress())

	require.NoError(t, w.Update(onboarding.Patch{Bio: pointer.To("x"), Location: pointer.To("   ")}))
	assert.Equal(t, 33, w.Progress())

	require.NoError(t, w.Update(completePatch()))
	assert.Equal(t, 100, w.Progress())
}

func TestWizard_ProgressHalfway(t *testing.T) {
	w := onboarding.NewWizard("session-1", epoch)
	require.NoError(t, w.Update(onboarding.Patch{
		Name:       pointer.To("Priya Sharma"),
		Bio:        pointer.To(validBio),
		Categories: pointer.To([]string{"singer"}),
	}))

	assert.Equal(t, 50, w.Progress())
}

func TestWizard_AttachImage(t *testing.T) {
	w := onboarding.NewWizard("session-1", epoch)

	_, err := w.AttachImage(onboarding.Image{Key: "big", ContentType: "image/png", Size: 6 << 20})
	assert.True(t, apperr.HasCode(err, "INVALID_IMAGE"))

	_, err = w.AttachImage(onboarding.Image{Key: "doc", ContentType: "application/pdf", Size: 10})
	assert.True(t, apperr.HasCode(err, "INVALID_IMAGE"))
	assert.Nil(t, w.Data.ProfileImage)
	assert.Empty(t, w.Errors, "image errors are not field errors")

	previous, err := w.AttachImage(onboarding.Image{Key: "a", ContentType: "image/png", Size: 10})
	require.NoError(t, err)
	assert.Nil(t, previous)

	previous, err = w.AttachImage(onboarding.Image{Key: "b", ContentType: "image/jpeg", Size: 10})
	require.NoError(t, err)
	assert.Equal(t, "a", previous.Key)
	assert.Equal(t, "b", w.Data.ProfileImage.Key)

	removed, err := w.RemoveImage()
	require.NoError(t, err)
	assert.Equal(t, "b", removed.Key)
	assert.Nil(t, w.Data.ProfileImage)
}

func TestWizard_SubmitOnlyFromLastStep(t *testing.T) {
	w := onboarding.NewWizard("session-1", epoch)
	require.NoError(t, w.Update(completePatch()))
	assert.True(t, w.CanSubmit())

	err := w.Submit(context.Background(), okSubmitter(), epoch)
	assert.True(t, apperr.HasCode(err, "INVALID_STATE"))
	assert.Equal(t, onboarding.PhaseEditing, w.Phase)
}

func TestWizard_SubmitSuccessIsTerminal(t *testing.T) {
	w := readyWizard(t)

	var got onboarding.Profile
	submitter := onboarding.SubmitterFunc(func(_ context.Context, p onboarding.Profile) error {
		got = p
		return nil
	})

	require.NoError(t, w.Submit(context.Background(), submitter, epoch))
	assert.Equal(t, onboarding.PhaseSuccess, w.Phase)
	assert.Equal(t, onboarding.MessageSubmitted, w.Message)
	assert.Equal(t, "Priya Sharma", got.Name)
	assert.Equal(t, epoch, got.SubmittedAt)

	assert.True(t, apperr.HasCode(w.Update(completePatch()), "INVALID_STATE"))
	assert.True(t, apperr.HasCode(w.Prev(), "INVALID_STATE"))
	assert.True(t, apperr.HasCode(w.Submit(context.Background(), submitter, epoch), "INVALID_STATE"))
}

func TestWizard_SubmitFailureCanRetry(t *testing.T) {
	w := readyWizard(t)

	failing := onboarding.SubmitterFunc(func(context.Context, onboarding.Profile) error {
		return simulate.ErrRemoteFailure
	})
	err := w.Submit(context.Background(), failing, epoch)
	assert.True(t, apperr.HasCode(err, "OPERATION_FAILED"))
	assert.Equal(t, onboarding.PhaseError, w.Phase)
	assert.Equal(t, onboarding.MessageSubmitFailed, w.Message)

	broken := onboarding.SubmitterFunc(func(context.Context, onboarding.Profile) error {
		return errors.New("boom")
	})
	_ = w.Submit(context.Background(), broken, epoch)
	assert.Equal(t, onboarding.MessageSubmitError, w.Message)

	require.NoError(t, w.Submit(context.Background(), okSubmitter(), epoch))
	assert.Equal(t, onboarding.PhaseSuccess, w.Phase)
}

func TestWizard_ErrorReturnsToEditing(t *testing.T) {
	w := readyWizard(t)
	failing := onboarding.SubmitterFunc(func(context.Context, onboarding.Profile) error {
		return simulate.ErrRemoteFailure
	})
	require.Error(t, w.Submit(context.Background(), failing, epoch))
	require.Equal(t, onboarding.PhaseError, w.Phase)

	require.NoError(t, w.Prev())
	require.NoError(t, w.Prev())
	assert.Equal(t, onboarding.StepPersonal, w.Step)
	assert.Equal(t, onboarding.PhaseEditing, w.Phase)
	assert.Empty(t, w.Message)

	err := w.Submit(context.Background(), okSubmitter(), epoch)
	assert.True(t, apperr.HasCode(err, "INVALID_STATE"))
	assert.Equal(t, onboarding.PhaseEditing, w.Phase)

	for range 2 {
		_, err := w.Next()
		require.NoError(t, err)
	}
	require.NoError(t, w.Submit(context.Background(), okSubmitter(), epoch))
	assert.Equal(t, onboarding.PhaseSuccess, w.Phase)
}

func TestWizard_UpdateAfterErrorClearsMessage(t *testing.T) {
	w := readyWizard(t)
	_ = w.Submit(context.Background(), onboarding.SubmitterFunc(func(context.Context, onboarding.Profile) error {
		return errors.New("boom")
	}), epoch)
	require.Equal(t, onboarding.MessageSubmitError, w.Message)

	require.NoError(t, w.Update(onboarding.Patch{Location: pointer.To("Mumbai, Maharashtra")}))
	assert.Equal(t, onboarding.PhaseEditing, w.Phase)
	assert.Empty(t, w.Message)
	assert.Equal(t, onboarding.StepMedia, w.Step)
}

func TestWizard_SubmitCancelledLeavesState(t *testing.T) {
	w := readyWizard(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	remote := onboarding.NewRemoteSubmitter(simulate.Instant(), okSubmitter(), discard)
	err := w.Submit(ctx, remote, epoch)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, onboarding.PhaseEditing, w.Phase)
	assert.Empty(t, w.Message)
}

func TestWizard_SubmitIncompleteForm(t *testing.T) {
	w := readyWizard(t)
	require.NoError(t, w.Update(onboarding.Patch{Location: pointer.To("Pu")}))

	err := w.Submit(context.Background(), okSubmitter(), epoch)
	assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))
	assert.Equal(t, "Location must be at least 3 characters", w.Errors[onboarding.FieldLocation])
	assert.False(t, w.CanSubmit())
}

func TestProfile_SubmissionInput(t *testing.T) {
	p := onboarding.Profile{
		Name:       "Priya Sharma",
		Categories: []string{"dj", "singer"},
		FeeRange:   "₹10,000 - ₹15,000",
		Location:   "Pune, Maharashtra",
	}

	input := p.SubmissionInput()
	assert.Equal(t, "DJ", input.Category)
	assert.Equal(t, "Pune", input.City)
	assert.Equal(t, "₹10,000 - ₹15,000", input.Fee)

	for location, city := range map[string]string{
		", Pune":       "Pune",
		" ,  Goa, IN ": "Goa",
		"Kochi":        "Kochi",
		",,,":          ",,,",
	} {
		p.Location = location
		assert.Equal(t, city, p.SubmissionInput().City, location)
	}
}

func okSubmitter() onboarding.Submitter {
	return onboarding.SubmitterFunc(func(context.Context, onboarding.Profile) error { return nil })
}
