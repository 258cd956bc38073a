// Package types provides type definitions for structured data used throughout the resume-wizard system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// StyleVariant selects the rendering style of the final document.
// It affects layout only, never scoring.
type StyleVariant string

// Supported rendering styles
const (
	StyleModern  StyleVariant = "modern"
	StyleClassic StyleVariant = "classic"
	StyleMinimal StyleVariant = "minimal"
)

// PersonalInfo holds the candidate's contact details. Name, email and phone
// are required for optimization, but that is a derived predicate checked by
// ValidateForOptimization, not a construction invariant.
type PersonalInfo struct {
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	GitHub    string `json:"github,omitempty"`
}

// Education represents a single education entry
type Education struct {
	ID          string `json:"id"`
	Course      string `json:"course"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Grade       string `json:"grade,omitempty"`
}

// WorkExperience represents a single work experience entry
type WorkExperience struct {
	ID               string   `json:"id"`
	Company          string   `json:"company"`
	Role             string   `json:"role"`
	Duration         string   `json:"duration"`
	Responsibilities []string `json:"responsibilities"`
	Location         string   `json:"location,omitempty"`
}

// Project represents a single project entry
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"tech_stack,omitempty"`
	GitHubURL   string   `json:"github_url,omitempty"`
	LiveURL     string   `json:"live_url,omitempty"`
	Duration    string   `json:"duration,omitempty"`
}

// Certification represents a single certification entry
type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
	URL    string `json:"url,omitempty"`
}

// ResumeRecord is the user's authored resume content. Entry IDs are opaque
// strings, unique within their sequence, assigned at creation and never
// reused. Skills keep their stored casing for display; all comparisons are
// case-insensitive.
type ResumeRecord struct {
	Personal       PersonalInfo     `json:"personal"`
	Objective      string           `json:"objective,omitempty"`
	Education      []Education      `json:"education"`
	Skills         []string         `json:"skills"`
	WorkExperience []WorkExperience `json:"work_experience"`
	Projects       []Project        `json:"projects"`
	Certifications []Certification  `json:"certifications"`
	Languages      []string         `json:"languages,omitempty"`
	Keywords       []string         `json:"keywords,omitempty"`
	Style          StyleVariant     `json:"style,omitempty"`
}

// NewResumeRecord returns the empty resume a session starts from (and returns
// to after a full reset).
func NewResumeRecord() *ResumeRecord {
	return &ResumeRecord{
		Education:      []Education{},
		Skills:         []string{},
		WorkExperience: []WorkExperience{},
		Projects:       []Project{},
		Certifications: []Certification{},
		Languages:      []string{},
		Keywords:       []string{},
		Style:          StyleModern,
	}
}

// NewEntryID returns a fresh identifier for an education, experience, project
// or certification entry.
func NewEntryID() string {
	return uuid.NewString()
}

// optimizationInput mirrors the fields the optimizer requires, expressed as
// validator constraints.
type optimizationInput struct {
	FullName  string   `validate:"required,min=1"`
	Email     string   `validate:"required,email"`
	Phone     string   `validate:"required,min=1"`
	Objective string   `validate:"required,min=1"`
	Skills    []string `validate:"required,min=1"`
}

// ValidateForOptimization checks that the resume is complete enough to
// optimize: name, email, phone, objective and at least one skill. It returns
// a validator error describing the first missing field.
func (r *ResumeRecord) ValidateForOptimization() error {
	validate := validator.New()
	return validate.Struct(&optimizationInput{
		FullName:  r.Personal.FullName,
		Email:     r.Personal.Email,
		Phone:     r.Personal.Phone,
		Objective: r.Objective,
		Skills:    r.Skills,
	})
}
