package models

import (
	"strings"
	"time"
)

type CompanySize string

const (
	SizeStartup    CompanySize = "STARTUP"
	SizeSME        CompanySize = "SME"
	SizeMidsize    CompanySize = "MIDSIZE"
	SizeEnterprise CompanySize = "ENTERPRISE"
)

// CompanySizeOrder fixes the slot order of the company-size block in feature
// vectors. Changing it changes vector semantics, so it is append-only.
var CompanySizeOrder = []CompanySize{SizeStartup, SizeSME, SizeMidsize, SizeEnterprise}

// Route is a historical success case users are matched against.
type Route struct {
	ID               uint        `gorm:"primary_key" json:"id"`
	Job              Job         `gorm:"type:text;not null" json:"job"`
	Background       Background  `gorm:"type:text;not null" json:"background"`
	FinalCompanySize CompanySize `gorm:"type:text;not null" json:"final_company_size"`
	Skills           string      `gorm:"type:text" json:"skills"`
	Projects         int         `gorm:"not null;default:0" json:"projects"`
	Intern           bool        `gorm:"not null;default:false" json:"intern"`
	Bootcamp         bool        `gorm:"not null;default:false" json:"bootcamp"`
	Awards           bool        `gorm:"not null;default:false" json:"awards"`
	Summary          string      `gorm:"type:text" json:"summary"`
	CreatedAt        time.Time   `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt        time.Time   `gorm:"type:timestamp;default:now()" json:"updated_at"`

	Steps []RouteStep `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE" json:"steps"`
}

func (Route) TableName() string {
	return "routes"
}

// SkillSet returns the normalized (trimmed, lower-cased) skill tokens.
func (r *Route) SkillSet() map[string]struct{} {
	return csvToSet(r.Skills, false)
}

// SkillList returns the skills as an ordered list for API responses.
func (r *Route) SkillList() []string {
	return SplitCSV(r.Skills)
}

// RouteStep is one milestone of a route's timeline, ordered by StepOrder.
type RouteStep struct {
	ID          uint   `gorm:"primary_key" json:"id"`
	RouteID     uint   `gorm:"not null;index" json:"route_id"`
	StepOrder   int    `gorm:"not null" json:"step_order"`
	Title       string `gorm:"type:text;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Duration    string `gorm:"type:text" json:"duration"`
	Tips        string `gorm:"type:text" json:"tips"`
}

func (RouteStep) TableName() string {
	return "route_steps"
}

// SplitCSV splits a comma-separated value into trimmed, non-blank tokens.
func SplitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// JoinCSV is the inverse of SplitCSV for persisting list fields.
func JoinCSV(values []string) string {
	return strings.Join(values, ",")
}

func csvToSet(s string, upper bool) map[string]struct{} {
	set := make(map[string]struct{})
	for _, token := range SplitCSV(s) {
		if upper {
			token = strings.ToUpper(token)
		} else {
			token = strings.ToLower(token)
		}
		set[token] = struct{}{}
	}
	return set
}
