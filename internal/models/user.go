package models

import (
	"time"

	"github.com/google/uuid"
)

type Job string

const (
	JobFrontend Job = "FRONTEND"
	JobBackend  Job = "BACKEND"
)

type Background string

const (
	BackgroundMajor    Background = "MAJOR"
	BackgroundNonMajor Background = "NON_MAJOR"
)

type User struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email               string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Password            string    `gorm:"type:text;not null" json:"-"`
	Nickname            string    `gorm:"type:text" json:"nickname"`
	OnboardingCompleted bool      `gorm:"not null;default:false" json:"onboarding_completed"`
	CreatedAt           time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt           time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UserDetails is the career profile collected during onboarding. CompanySizes
// and Skills are stored as CSV, matching how routes store them.
type UserDetails struct {
	ID           uint       `gorm:"primary_key" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Job          Job        `gorm:"type:text;not null" json:"job"`
	Background   Background `gorm:"type:text;not null" json:"background"`
	CompanySizes string     `gorm:"type:text" json:"company_sizes"`
	Skills       string     `gorm:"type:text" json:"skills"`
	Projects     int        `gorm:"not null;default:0" json:"projects"`
	Intern       bool       `gorm:"not null;default:false" json:"intern"`
	Bootcamp     bool       `gorm:"not null;default:false" json:"bootcamp"`
	Awards       bool       `gorm:"not null;default:false" json:"awards"`
	CreatedAt    time.Time  `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (UserDetails) TableName() string {
	return "user_details"
}

// SkillSet returns the normalized (trimmed, lower-cased) skill tokens.
func (d *UserDetails) SkillSet() map[string]struct{} {
	return csvToSet(d.Skills, false)
}

// CompanySizeSet returns the preferred company sizes, upper-cased.
func (d *UserDetails) CompanySizeSet() map[string]struct{} {
	return csvToSet(d.CompanySizes, true)
}

// SkillList returns the skills as an ordered list for API responses.
func (d *UserDetails) SkillList() []string {
	return SplitCSV(d.Skills)
}

// CompanySizeList returns the preferred sizes as an ordered list.
func (d *UserDetails) CompanySizeList() []string {
	return SplitCSV(d.CompanySizes)
}
