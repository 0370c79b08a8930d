// Package types provides type definitions for structured data used throughout the cv-builder system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// UpdateFieldRequest updates a single named field of one row.
type UpdateFieldRequest struct {
	Field string `json:"field" validate:"required"`
	Value any    `json:"value"`
}

// AddSkillRequest inserts one skill into the skill list.
type AddSkillRequest struct {
	Skill string `json:"skill" validate:"required,min=1"`
}

// AchievementAssistRequest requests AI-generated achievements for one experience row.
type AchievementAssistRequest struct {
	ExperienceID string `json:"experience_id" validate:"required,uuid4"`
}

// CertificationAssistRequest requests AI normalization of one certification row.
type CertificationAssistRequest struct {
	CertificationID string `json:"certification_id" validate:"required,uuid4"`
}

// ProjectAssistRequest requests AI help for one project row.
type ProjectAssistRequest struct {
	ProjectID string `json:"project_id" validate:"required,uuid4"`
}

// Validate validates the UpdateFieldRequest using the validator.
func (r *UpdateFieldRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AddSkillRequest using the validator.
func (r *AddSkillRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AchievementAssistRequest using the validator.
func (r *AchievementAssistRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CertificationAssistRequest using the validator.
func (r *CertificationAssistRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ProjectAssistRequest using the validator.
func (r *ProjectAssistRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
