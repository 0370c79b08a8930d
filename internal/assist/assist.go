// Package assist orchestrates the AI-assist operations of the CV builder:
// prerequisite checks before any remote call, committing suggestions into the
// session, and discarding resolutions that a newer call has superseded.
package assist

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/cv-builder/internal/editor"
	"github.com/jonathan/cv-builder/internal/llm"
	"github.com/jonathan/cv-builder/internal/session"
	"github.com/jonathan/cv-builder/internal/types"
)

// Service runs AI-assist operations against one shared completion client.
type Service struct {
	client llm.Client
}

// NewService creates an assist service. The client is injected once at
// construction and shared by every operation.
func NewService(client llm.Client) *Service {
	return &Service{client: client}
}

// GenerateAchievements replaces the achievement list of one experience row
// with AI-drafted bullets. Requires position and company to be filled in.
func (s *Service) GenerateAchievements(ctx context.Context, sess *session.Session, experienceID string) ([]types.WorkExperience, string, error) {
	data := sess.Snapshot()
	exp := findExperience(data.WorkExperience, experienceID)
	if exp == nil {
		return nil, "", &editor.RowNotFoundError{Section: "experience", ID: experienceID}
	}
	if strings.TrimSpace(exp.Position) == "" || strings.TrimSpace(exp.Company) == "" {
		return nil, "", &PrerequisiteError{Message: "please fill in the position and company first"}
	}

	key := session.AssistKey{RowID: experienceID, Field: "achievements"}
	gen := sess.BeginAssist(key)

	suggestions, err := llm.SuggestAchievements(ctx, s.client, exp.Position, exp.Company)
	if err != nil {
		return nil, "", &RemoteError{Op: "achievement suggestion", Cause: err}
	}
	if len(suggestions) == 0 {
		return nil, "", &RemoteError{Op: "achievement suggestion"}
	}

	updated, err := sess.MutateExperience(func(list []types.WorkExperience) ([]types.WorkExperience, error) {
		if !sess.AssistCurrent(key, gen) {
			return nil, ErrSuperseded
		}
		return editor.ReplaceAchievements(list, experienceID, suggestions)
	})
	if err != nil {
		return nil, "", err
	}
	return updated, "AI suggestions generated successfully", nil
}

// SuggestSkills merges AI-suggested skills for the CV's job title into the
// skill list. Requires the professional title to be filled in.
func (s *Service) SuggestSkills(ctx context.Context, sess *session.Session) ([]string, string, error) {
	data := sess.Snapshot()
	title := strings.TrimSpace(data.PersonalInfo.Title)
	if title == "" {
		return nil, "", &PrerequisiteError{Message: "please fill in your job title first"}
	}

	var experience []string
	for _, exp := range data.WorkExperience {
		for _, achievement := range exp.Achievements {
			if strings.TrimSpace(achievement) != "" {
				experience = append(experience, achievement)
			}
		}
	}

	key := session.AssistKey{RowID: "skills", Field: "skills"}
	gen := sess.BeginAssist(key)

	suggestions, err := llm.SuggestSkills(ctx, s.client, title, experience)
	if err != nil {
		return nil, "", &RemoteError{Op: "skill suggestion", Cause: err}
	}
	if len(suggestions) == 0 {
		return nil, "", &RemoteError{Op: "skill suggestion"}
	}

	added := 0
	updated, err := sess.MutateSkills(func(list []string) ([]string, error) {
		if !sess.AssistCurrent(key, gen) {
			return nil, ErrSuperseded
		}
		out, n := editor.MergeSuggestedSkills(list, suggestions)
		added = n
		return out, nil
	})
	if err != nil {
		return nil, "", err
	}
	return updated, fmt.Sprintf("added %d AI-suggested skills", added), nil
}

// ImproveCertification looks up the full official name and issuer of one
// certification row. Requires the name to be filled in.
func (s *Service) ImproveCertification(ctx context.Context, sess *session.Session, certificationID string) ([]types.Certification, string, error) {
	data := sess.Snapshot()
	cert := findCertification(data.Certifications, certificationID)
	if cert == nil {
		return nil, "", &editor.RowNotFoundError{Section: "certifications", ID: certificationID}
	}
	if strings.TrimSpace(cert.Name) == "" {
		return nil, "", &PrerequisiteError{Message: "please enter the certification name first"}
	}

	key := session.AssistKey{RowID: certificationID, Field: "name"}
	gen := sess.BeginAssist(key)

	lookup, err := llm.LookupCertification(ctx, s.client, cert.Name)
	if err != nil {
		return nil, "", &RemoteError{Op: "certification lookup", Cause: err}
	}
	if lookup.Name == cert.Name {
		// Nothing to improve; leave the row as typed.
		return data.Certifications, "certification already looks complete", nil
	}

	updated, err := sess.MutateCertifications(func(list []types.Certification) ([]types.Certification, error) {
		if !sess.AssistCurrent(key, gen) {
			return nil, ErrSuperseded
		}
		out, err := editor.UpdateCertificationField(list, certificationID, "name", lookup.Name)
		if err != nil {
			return nil, err
		}
		if lookup.Issuer != "" {
			out, err = editor.UpdateCertificationField(out, certificationID, "issuer", lookup.Issuer)
			if err != nil {
				return nil, err
			}
		}
		return out, nil
	})
	if err != nil {
		return nil, "", err
	}
	return updated, "certification details improved", nil
}

// EnhanceProjectDescription rewrites one project's description. Requires the
// project title to be filled in.
func (s *Service) EnhanceProjectDescription(ctx context.Context, sess *session.Session, projectID string) ([]types.Project, string, error) {
	data := sess.Snapshot()
	proj := findProject(data.Projects, projectID)
	if proj == nil {
		return nil, "", &editor.RowNotFoundError{Section: "projects", ID: projectID}
	}
	if strings.TrimSpace(proj.Title) == "" {
		return nil, "", &PrerequisiteError{Message: "please enter a project title first"}
	}

	key := session.AssistKey{RowID: projectID, Field: "description"}
	gen := sess.BeginAssist(key)

	prompt := fmt.Sprintf("Enhance this project description for a resume. Project: %q. Current description: %q. "+
		"Make it professional, concise, and highlight impact. Focus on technologies, challenges solved, and results achieved.",
		proj.Title, proj.Description)
	description, err := llm.GenerateText(ctx, s.client, prompt)
	if err != nil {
		return nil, "", &RemoteError{Op: "description enhancement", Cause: err}
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, "", &RemoteError{Op: "description enhancement"}
	}

	updated, err := sess.MutateProjects(func(list []types.Project) ([]types.Project, error) {
		if !sess.AssistCurrent(key, gen) {
			return nil, ErrSuperseded
		}
		return editor.UpdateProjectField(list, projectID, "description", description)
	})
	if err != nil {
		return nil, "", err
	}
	return updated, "project description enhanced", nil
}

// SuggestProjectTechnologies replaces one project's technology list with
// AI-suggested entries. Requires a title or a description to be filled in.
func (s *Service) SuggestProjectTechnologies(ctx context.Context, sess *session.Session, projectID string) ([]types.Project, string, error) {
	data := sess.Snapshot()
	proj := findProject(data.Projects, projectID)
	if proj == nil {
		return nil, "", &editor.RowNotFoundError{Section: "projects", ID: projectID}
	}
	if strings.TrimSpace(proj.Title) == "" && strings.TrimSpace(proj.Description) == "" {
		return nil, "", &PrerequisiteError{Message: "please enter a project title or description first"}
	}

	key := session.AssistKey{RowID: projectID, Field: "technologies"}
	gen := sess.BeginAssist(key)

	prompt := fmt.Sprintf("Based on this project: %q - %q, suggest relevant technologies, frameworks, and tools "+
		"that would typically be used. Return as a comma-separated list.", proj.Title, proj.Description)
	raw, err := llm.GenerateText(ctx, s.client, prompt)
	if err != nil {
		return nil, "", &RemoteError{Op: "technology suggestion", Cause: err}
	}

	var technologies []string
	for _, tech := range strings.Split(raw, ",") {
		if tech = strings.TrimSpace(tech); tech != "" {
			technologies = append(technologies, tech)
		}
	}
	if len(technologies) == 0 {
		return nil, "", &RemoteError{Op: "technology suggestion"}
	}

	updated, err := sess.MutateProjects(func(list []types.Project) ([]types.Project, error) {
		if !sess.AssistCurrent(key, gen) {
			return nil, ErrSuperseded
		}
		return editor.UpdateProjectField(list, projectID, "technologies", technologies)
	})
	if err != nil {
		return nil, "", err
	}
	return updated, "technologies suggested", nil
}

func findExperience(list []types.WorkExperience, id string) *types.WorkExperience {
	for i := range list {
		if list[i].ID == id {
			return &list[i]
		}
	}
	return nil
}

func findCertification(list []types.Certification, id string) *types.Certification {
	for i := range list {
		if list[i].ID == id {
			return &list[i]
		}
	}
	return nil
}

func findProject(list []types.Project, id string) *types.Project {
	for i := range list {
		if list[i].ID == id {
			return &list[i]
		}
	}
	return nil
}
