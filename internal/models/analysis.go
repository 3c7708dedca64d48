package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// insightListSeparator joins insight list fields for storage. A plain comma
// would collide with commas inside generated sentences.
const insightListSeparator = "||"

// AnalysisResult is one completed matching + insight cycle for a user. Rows
// are immutable after creation; profile edits invalidate them by deletion.
type AnalysisResult struct {
	ID                     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID                 uuid.UUID `gorm:"type:uuid;not null;index:idx_analysis_user_created" json:"user_id"`
	InsightReason          string    `gorm:"type:text" json:"insight_reason"`
	InsightStrengths       string    `gorm:"type:text" json:"-"`
	InsightWeaknesses      string    `gorm:"type:text" json:"-"`
	InsightRecommendations string    `gorm:"type:text" json:"-"`
	CreatedAt              time.Time `gorm:"type:timestamp;default:now();index:idx_analysis_user_created" json:"created_at"`

	// Rank-ordered match breakdown, rank 1 is the best match.
	MatchedRoutes []AnalysisMatchedRoute `gorm:"foreignKey:AnalysisResultID;constraint:OnDelete:CASCADE" json:"matched_routes"`
}

func (AnalysisResult) TableName() string {
	return "analysis_results"
}

func (a *AnalysisResult) StrengthsList() []string {
	return splitInsightList(a.InsightStrengths)
}

func (a *AnalysisResult) WeaknessesList() []string {
	return splitInsightList(a.InsightWeaknesses)
}

func (a *AnalysisResult) RecommendationsList() []string {
	return splitInsightList(a.InsightRecommendations)
}

// BestMatch returns the rank-1 matched route, or nil for a malformed record.
func (a *AnalysisResult) BestMatch() *AnalysisMatchedRoute {
	for i := range a.MatchedRoutes {
		if a.MatchedRoutes[i].MatchRank == 1 {
			return &a.MatchedRoutes[i]
		}
	}
	return nil
}

// AnalysisMatchedRoute snapshots one matched route at analysis time, so the
// audit history stays meaningful even if the route is later edited.
type AnalysisMatchedRoute struct {
	ID               uint        `gorm:"primary_key" json:"id"`
	AnalysisResultID uuid.UUID   `gorm:"type:uuid;not null;index" json:"-"`
	RouteID          uint        `gorm:"not null" json:"route_id"`
	Similarity       int         `gorm:"not null" json:"similarity"`
	MatchRank        int         `gorm:"column:match_rank;not null" json:"rank"`
	Summary          string      `gorm:"type:text" json:"summary"`
	Job              Job         `gorm:"type:text" json:"job"`
	FinalCompanySize CompanySize `gorm:"type:text" json:"final_company_size"`
}

func (AnalysisMatchedRoute) TableName() string {
	return "analysis_matched_routes"
}

func JoinInsightList(items []string) string {
	return strings.Join(items, insightListSeparator)
}

func splitInsightList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return strings.Split(value, insightListSeparator)
}
