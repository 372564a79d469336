// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Resume is the root aggregate edited by the wizard. A resume starts with a
// title only; every other field is filled in section by section. Collections
// are never nil-vs-empty significant: consumers must treat a nil slice the
// same as an empty one.
type Resume struct {
	ID       uuid.UUID `json:"id"`
	OwnerID  uuid.UUID `json:"owner_id"`
	Title    string    `json:"title"`
	Template string    `json:"template,omitempty"`

	FullName    string `json:"full_name,omitempty"`
	Designation string `json:"designation,omitempty"`
	Summary     string `json:"summary,omitempty"`

	Address   string `json:"address,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`

	Skills    []string `json:"skills"`
	Languages []string `json:"languages"`
	Interests []string `json:"interests"`

	Experience     []ExperienceEntry    `json:"experience"`
	Education      []EducationEntry     `json:"education"`
	Projects       []ProjectEntry       `json:"projects"`
	Certifications []CertificationEntry `json:"certifications"`

	Progression int        `json:"progression"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// ExperienceEntry is a single work-experience row, identified by its position
// in Resume.Experience.
type ExperienceEntry struct {
	Company     string `json:"company,omitempty"`
	Role        string `json:"role,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationEntry is a single education row.
type EducationEntry struct {
	Degree    string `json:"degree,omitempty"`
	Institute string `json:"institute,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// ProjectEntry is a single project row. GitHub and Live are URLs when present.
type ProjectEntry struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	GitHub      string `json:"github,omitempty"`
	Live        string `json:"live,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
}

// CertificationEntry is a single certification row. Year is a free-text field
// that the step validator range-checks when present.
type CertificationEntry struct {
	Title string `json:"title,omitempty"`
	Year  string `json:"year,omitempty"`
	Link  string `json:"link,omitempty"`
}

// Filled reports whether s holds a non-whitespace value. Both the completion
// evaluator and the step validator count fields through this single predicate.
func Filled(s string) bool {
	return strings.TrimSpace(s) != ""
}
