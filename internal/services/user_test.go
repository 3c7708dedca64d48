package services

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onewave/route-compass/internal/models"
)

type fakeInvalidator struct {
	mu    sync.Mutex
	calls []uuid.UUID
}

func (f *fakeInvalidator) Invalidate(userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, userID)
	return nil
}

func seedUser(t *testing.T, repo *fakeUserRepo, onboarded bool) uuid.UUID {
	t.Helper()
	userID := uuid.New()
	require.NoError(t, repo.Create(&models.User{
		ID:                  userID,
		Email:               "jamie@example.com",
		Nickname:            "jamie",
		OnboardingCompleted: onboarded,
		CreatedAt:           time.Now(),
	}))
	return userID
}

func TestCompleteOnboarding(t *testing.T) {
	repo := newFakeUserRepo()
	invalidator := &fakeInvalidator{}
	svc := NewUserService(repo, invalidator)
	userID := seedUser(t, repo, false)

	err := svc.CompleteOnboarding(userID, &models.OnboardingRequest{
		Job:          "FRONTEND",
		Background:   "NON_MAJOR",
		CompanySizes: []string{"STARTUP", "SME"},
		Skills:       []string{" React ", "NextJS", ""},
		Projects:     2,
		Bootcamp:     true,
	})
	require.NoError(t, err)

	details, err := repo.FindDetailsByUser(userID)
	require.NoError(t, err)
	require.NotNil(t, details)
	assert.Equal(t, models.JobFrontend, details.Job)
	assert.Equal(t, "react,nextjs", details.Skills, "skills are lowercased and trimmed")
	assert.Equal(t, "STARTUP,SME", details.CompanySizes)

	user, err := repo.FindByID(userID)
	require.NoError(t, err)
	assert.True(t, user.OnboardingCompleted)

	// Onboarding is one-shot.
	err = svc.CompleteOnboarding(userID, &models.OnboardingRequest{Job: "BACKEND", Background: "MAJOR"})
	assert.ErrorIs(t, err, ErrOnboardingDone)
}

func TestCompleteOnboarding_UnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), &fakeInvalidator{})

	err := svc.CompleteOnboarding(uuid.New(), &models.OnboardingRequest{Job: "FRONTEND", Background: "MAJOR"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile_InvalidatesAnalyses(t *testing.T) {
	repo := newFakeUserRepo()
	invalidator := &fakeInvalidator{}
	svc := NewUserService(repo, invalidator)
	userID := seedUser(t, repo, true)
	require.NoError(t, repo.CreateDetails(&models.UserDetails{
		UserID:     userID,
		Job:        models.JobFrontend,
		Background: models.BackgroundNonMajor,
		Skills:     "react",
		Projects:   1,
	}))

	projects := 4
	skills := []string{"react", "typescript"}
	err := svc.UpdateProfile(userID, &models.UserUpdateRequest{
		Projects: &projects,
		Skills:   &skills,
	})
	require.NoError(t, err)

	details, err := repo.FindDetailsByUser(userID)
	require.NoError(t, err)
	assert.Equal(t, 4, details.Projects)
	assert.Equal(t, "react,typescript", details.Skills)
	assert.Equal(t, models.JobFrontend, details.Job, "untouched fields survive a partial update")

	require.Len(t, invalidator.calls, 1)
	assert.Equal(t, userID, invalidator.calls[0])
}

func TestUpdateProfile_NoDetailsYet(t *testing.T) {
	repo := newFakeUserRepo()
	invalidator := &fakeInvalidator{}
	svc := NewUserService(repo, invalidator)
	userID := seedUser(t, repo, false)

	projects := 1
	err := svc.UpdateProfile(userID, &models.UserUpdateRequest{Projects: &projects})
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.Empty(t, invalidator.calls)
}

func TestGetMe(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, &fakeInvalidator{})
	userID := seedUser(t, repo, true)
	require.NoError(t, repo.CreateDetails(&models.UserDetails{
		UserID:       userID,
		Job:          models.JobFrontend,
		Background:   models.BackgroundNonMajor,
		CompanySizes: "STARTUP,SME",
		Skills:       "react,nextjs",
		Projects:     2,
		Bootcamp:     true,
	}))

	me, err := svc.GetMe(userID)
	require.NoError(t, err)
	assert.Equal(t, "jamie@example.com", me.Email)
	assert.True(t, me.OnboardingCompleted)
	require.NotNil(t, me.Details)
	assert.Equal(t, []string{"react", "nextjs"}, me.Details.Skills)
	assert.Equal(t, []string{"STARTUP", "SME"}, me.Details.CompanySizes)

	_, err = svc.GetMe(uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
