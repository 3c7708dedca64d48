package services

import "errors"

// Closed set of error kinds surfaced by the service layer. Handlers map these
// to HTTP statuses with errors.Is; everything else is a 500.
var (
	// Auth
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")

	// User / profile
	ErrUserNotFound         = errors.New("user not found")
	ErrProfileNotFound      = errors.New("user profile not found")
	ErrProfileIncomplete    = errors.New("user profile is incomplete")
	ErrOnboardingDone    = errors.New("onboarding already completed")

	// Routes
	ErrRouteNotFound = errors.New("route not found")
	ErrNoRoutes      = errors.New("no routes available")

	// Analysis
	ErrNoEligibleMatch   = errors.New("no route matches the profile's job category")
	ErrAnalysisNotFound  = errors.New("no analysis result found")
	ErrInsightGeneration = errors.New("insight generation failed")
)
