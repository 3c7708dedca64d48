package models

import "time"

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Nickname string `json:"nickname" validate:"omitempty,max=30"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	UserID       string `json:"user_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type OnboardingRequest struct {
	Job          string   `json:"job" validate:"required,oneof=FRONTEND BACKEND"`
	Background   string   `json:"background" validate:"required,oneof=MAJOR NON_MAJOR"`
	CompanySizes []string `json:"company_sizes" validate:"required,min=1,dive,oneof=STARTUP SME MIDSIZE ENTERPRISE"`
	Skills       []string `json:"skills" validate:"required,min=1,dive,min=1"`
	Projects     int      `json:"projects" validate:"gte=0"`
	Intern       bool     `json:"intern"`
	Bootcamp     bool     `json:"bootcamp"`
	Awards       bool     `json:"awards"`
}

// UserUpdateRequest carries a partial profile edit. Nil fields keep the
// stored value; any successful update invalidates cached analyses.
type UserUpdateRequest struct {
	Nickname     *string   `json:"nickname" validate:"omitempty,max=30"`
	Job          *string   `json:"job" validate:"omitempty,oneof=FRONTEND BACKEND"`
	Background   *string   `json:"background" validate:"omitempty,oneof=MAJOR NON_MAJOR"`
	CompanySizes *[]string `json:"company_sizes" validate:"omitempty,min=1,dive,oneof=STARTUP SME MIDSIZE ENTERPRISE"`
	Skills       *[]string `json:"skills" validate:"omitempty,min=1,dive,min=1"`
	Projects     *int      `json:"projects" validate:"omitempty,gte=0"`
	Intern       *bool     `json:"intern"`
	Bootcamp     *bool     `json:"bootcamp"`
	Awards       *bool     `json:"awards"`
}

type UserDetailsResponse struct {
	Job          string   `json:"job"`
	Background   string   `json:"background"`
	CompanySizes []string `json:"company_sizes"`
	Skills       []string `json:"skills"`
	Projects     int      `json:"projects"`
	Intern       bool     `json:"intern"`
	Bootcamp     bool     `json:"bootcamp"`
	Awards       bool     `json:"awards"`
}

type UserResponse struct {
	ID                  string               `json:"id"`
	Email               string               `json:"email"`
	Nickname            string               `json:"nickname"`
	OnboardingCompleted bool                 `json:"onboarding_completed"`
	Details             *UserDetailsResponse `json:"details,omitempty"`
}

type RouteStepResponse struct {
	StepOrder   int    `json:"step_order"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Tips        string `json:"tips,omitempty"`
}

type RouteResponse struct {
	ID               uint                `json:"id"`
	Job              string              `json:"job"`
	Background       string              `json:"background"`
	FinalCompanySize string              `json:"final_company_size"`
	Skills           []string            `json:"skills"`
	Projects         int                 `json:"projects"`
	Intern           bool                `json:"intern"`
	Bootcamp         bool                `json:"bootcamp"`
	Awards           bool                `json:"awards"`
	Summary          string              `json:"summary"`
	Steps            []RouteStepResponse `json:"steps"`
}

type MatchedRouteResponse struct {
	RouteID          uint   `json:"route_id"`
	Similarity       int    `json:"similarity"`
	Rank             int    `json:"rank"`
	Summary          string `json:"summary"`
	Job              string `json:"job"`
	FinalCompanySize string `json:"final_company_size"`
}

type AnalysisResponse struct {
	AnalysisID      string                 `json:"analysis_id"`
	MatchedRouteID  uint                   `json:"matched_route_id"`
	Similarity      int                    `json:"similarity"`
	Reason          string                 `json:"reason"`
	Strengths       []string               `json:"strengths"`
	Weaknesses      []string               `json:"weaknesses"`
	Recommendations []string               `json:"recommendations"`
	MatchedRoutes   []MatchedRouteResponse `json:"matched_routes"`
	AnalyzedAt      time.Time              `json:"analyzed_at"`
}

type AnalysisHistoryItem struct {
	AnalysisID    string    `json:"analysis_id"`
	TopRouteID    uint      `json:"top_route_id"`
	TopSimilarity int       `json:"top_similarity"`
	TopSummary    string    `json:"top_summary"`
	AnalyzedAt    time.Time `json:"analyzed_at"`
}

type PageResponse[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalCount int64 `json:"total_count"`
}
