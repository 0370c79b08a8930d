package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/cv-builder/internal/editor"
	"github.com/jonathan/cv-builder/internal/types"
)

// ---------------------------------------------------------------------
// Section Handlers
// ---------------------------------------------------------------------

func (s *Server) handlePutSection(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromPath(w, r)
	if !ok {
		return
	}

	section := types.Section(r.PathValue("section"))
	if section == "personal" {
		// Routed here only when the method pattern above did not match.
		s.errorResponse(w, http.StatusBadRequest, "Unknown section: personal")
		return
	}
	if !types.ValidSection(section) {
		s.errorResponse(w, http.StatusBadRequest, "Unknown section: "+string(section))
		return
	}

	var err error
	var result any

	switch section {
	case types.SectionExperience:
		var list []types.WorkExperience
		if err = json.NewDecoder(r.Body).Decode(&list); err == nil {
			for i := range list {
				if list[i].ID == "" {
					list[i].ID = uuid.NewString()
				}
			}
			result, err = sess.MutateExperience(func([]types.WorkExperience) ([]types.WorkExperience, error) {
				return list, nil
			})
		}
	case types.SectionSkills:
		var list []string
		if err = json.NewDecoder(r.Body).Decode(&list); err == nil {
			result, err = sess.MutateSkills(func([]string) ([]string, error) {
				return list, nil
			})
		}
	case types.SectionEducation:
		var list []types.Education
		if err = json.NewDecoder(r.Body).Decode(&list); err == nil {
			for i := range list {
				if list[i].ID == "" {
					list[i].ID = uuid.NewString()
				}
			}
			result, err = sess.MutateEducation(func([]types.Education) ([]types.Education, error) {
				return list, nil
			})
		}
	case types.SectionCertifications:
		var list []types.Certification
		if err = json.NewDecoder(r.Body).Decode(&list); err == nil {
			for i := range list {
				if list[i].ID == "" {
					list[i].ID = uuid.NewString()
				}
			}
			result, err = sess.MutateCertifications(func([]types.Certification) ([]types.Certification, error) {
				return list, nil
			})
		}
	case types.SectionLanguages:
		var list []types.Language
		if err = json.NewDecoder(r.Body).Decode(&list); err == nil {
			for i := range list {
				if list[i].ID == "" {
					list[i].ID = uuid.NewString()
				}
			}
			result, err = sess.MutateLanguages(func([]types.Language) ([]types.Language, error) {
				return list, nil
			})
		}
	case types.SectionProjects:
		var list []types.Project
		if err = json.NewDecoder(r.Body).Decode(&list); err == nil {
			for i := range list {
				if list[i].ID == "" {
					list[i].ID = uuid.NewString()
				}
			}
			result, err = sess.MutateProjects(func([]types.Project) ([]types.Project, error) {
				return list, nil
			})
		}
	}

	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleAddRow(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromPath(w, r)
	if !ok {
		return
	}

	section := types.Section(r.PathValue("section"))
	var row any
	var err error

	switch section {
	case types.SectionExperience:
		_, err = sess.MutateExperience(func(list []types.WorkExperience) ([]types.WorkExperience, error) {
			updated, created := editor.AddExperience(list)
			row = created
			return updated, nil
		})
	case types.SectionEducation:
		_, err = sess.MutateEducation(func(list []types.Education) ([]types.Education, error) {
			updated, created := editor.AddEducation(list)
			row = created
			return updated, nil
		})
	case types.SectionCertifications:
		_, err = sess.MutateCertifications(func(list []types.Certification) ([]types.Certification, error) {
			updated, created := editor.AddCertification(list)
			row = created
			return updated, nil
		})
	case types.SectionLanguages:
		_, err = sess.MutateLanguages(func(list []types.Language) ([]types.Language, error) {
			updated, created := editor.AddLanguage(list)
			row = created
			return updated, nil
		})
	case types.SectionProjects:
		_, err = sess.MutateProjects(func(list []types.Project) ([]types.Project, error) {
			updated, created := editor.AddProject(list)
			row = created
			return updated, nil
		})
	case types.SectionSkills:
		s.errorResponse(w, http.StatusBadRequest, "Skills have no rows; use POST /sessions/{id}/skills")
		return
	default:
		s.errorResponse(w, http.StatusBadRequest, "Unknown section: "+string(section))
		return
	}

	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, row)
}

func (s *Server) handleUpdateRow(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromPath(w, r)
	if !ok {
		return
	}

	var req types.UpdateFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	section := types.Section(r.PathValue("section"))
	rowID := r.PathValue("row_id")
	var result any
	var err error

	switch section {
	case types.SectionExperience:
		result, err = sess.MutateExperience(func(list []types.WorkExperience) ([]types.WorkExperience, error) {
			return editor.UpdateExperienceField(list, rowID, req.Field, req.Value)
		})
	case types.SectionEducation:
		result, err = sess.MutateEducation(func(list []types.Education) ([]types.Education, error) {
			return editor.UpdateEducationField(list, rowID, req.Field, req.Value)
		})
	case types.SectionCertifications:
		result, err = sess.MutateCertifications(func(list []types.Certification) ([]types.Certification, error) {
			return editor.UpdateCertificationField(list, rowID, req.Field, req.Value)
		})
	case types.SectionLanguages:
		result, err = sess.MutateLanguages(func(list []types.Language) ([]types.Language, error) {
			return editor.UpdateLanguageField(list, rowID, req.Field, req.Value)
		})
	case types.SectionProjects:
		result, err = sess.MutateProjects(func(list []types.Project) ([]types.Project, error) {
			return editor.UpdateProjectField(list, rowID, req.Field, req.Value)
		})
	case types.SectionSkills:
		s.errorResponse(w, http.StatusBadRequest, "Skills have no rows; use POST /sessions/{id}/skills")
		return
	default:
		s.errorResponse(w, http.StatusBadRequest, "Unknown section: "+string(section))
		return
	}

	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleDeleteRow(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromPath(w, r)
	if !ok {
		return
	}

	section := types.Section(r.PathValue("section"))
	rowID := r.PathValue("row_id")
	var result any
	var err error

	switch section {
	case types.SectionExperience:
		result, err = sess.MutateExperience(func(list []types.WorkExperience) ([]types.WorkExperience, error) {
			return editor.RemoveExperience(list, rowID), nil
		})
	case types.SectionEducation:
		result, err = sess.MutateEducation(func(list []types.Education) ([]types.Education, error) {
			return editor.RemoveEducation(list, rowID), nil
		})
	case types.SectionCertifications:
		result, err = sess.MutateCertifications(func(list []types.Certification) ([]types.Certification, error) {
			return editor.RemoveCertification(list, rowID), nil
		})
	case types.SectionLanguages:
		result, err = sess.MutateLanguages(func(list []types.Language) ([]types.Language, error) {
			return editor.RemoveLanguage(list, rowID), nil
		})
	case types.SectionProjects:
		result, err = sess.MutateProjects(func(list []types.Project) ([]types.Project, error) {
			return editor.RemoveProject(list, rowID), nil
		})
	case types.SectionSkills:
		s.errorResponse(w, http.StatusBadRequest, "Skills have no rows; use DELETE /sessions/{id}/skills/{skill}")
		return
	default:
		s.errorResponse(w, http.StatusBadRequest, "Unknown section: "+string(section))
		return
	}

	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// ---------------------------------------------------------------------
// Skill Handlers
// ---------------------------------------------------------------------

func (s *Server) handleAddSkill(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromPath(w, r)
	if !ok {
		return
	}

	var req types.AddSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	var added bool
	skills, err := sess.MutateSkills(func(list []string) ([]string, error) {
		updated, ok := editor.AddSkill(list, req.Skill, s.skillPolicy)
		added = ok
		return updated, nil
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"skills": skills, "added": added})
}

func (s *Server) handleRemoveSkill(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromPath(w, r)
	if !ok {
		return
	}

	skill := r.PathValue("skill")
	skills, err := sess.MutateSkills(func(list []string) ([]string, error) {
		return editor.RemoveSkill(list, skill), nil
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"skills": skills})
}

// ---------------------------------------------------------------------
// Achievement Handlers
// ---------------------------------------------------------------------

type updateAchievementRequest struct {
	Value string `json:"value"`
}

func (s *Server) handleAddAchievement(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromPath(w, r)
	if !ok {
		return
	}

	rowID := r.PathValue("row_id")
	result, err := sess.MutateExperience(func(list []types.WorkExperience) ([]types.WorkExperience, error) {
		return editor.AddAchievement(list, rowID)
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleUpdateAchievement(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromPath(w, r)
	if !ok {
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid achievement index")
		return
	}

	var req updateAchievementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rowID := r.PathValue("row_id")
	result, err := sess.MutateExperience(func(list []types.WorkExperience) ([]types.WorkExperience, error) {
		return editor.UpdateAchievement(list, rowID, index, req.Value)
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleRemoveAchievement(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromPath(w, r)
	if !ok {
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid achievement index")
		return
	}

	rowID := r.PathValue("row_id")
	result, err := sess.MutateExperience(func(list []types.WorkExperience) ([]types.WorkExperience, error) {
		return editor.RemoveAchievement(list, rowID, index)
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}
