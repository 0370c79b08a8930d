package editor

import (
	"github.com/google/uuid"

	"github.com/jonathan/cv-builder/internal/types"
)

// PresentMarker is the literal end-date label forced by the "current" flag.
const PresentMarker = "Present"

// NewWorkExperience returns a defaulted experience row with a fresh id.
// It starts with one blank achievement so the form has a line to type into.
func NewWorkExperience() types.WorkExperience {
	return types.WorkExperience{
		ID:           uuid.NewString(),
		Achievements: []string{""},
	}
}

// AddExperience appends a defaulted row and returns the new slice plus the row.
func AddExperience(list []types.WorkExperience) ([]types.WorkExperience, types.WorkExperience) {
	exp := NewWorkExperience()
	return appendRow(list, exp), exp
}

// RemoveExperience excludes the matching row; an absent id is a no-op.
func RemoveExperience(list []types.WorkExperience, id string) []types.WorkExperience {
	return removeRow(list, id)
}

// UpdateExperienceField sets one named field of one row. Setting current to
// true forces the end date to the Present marker; setting it back to false
// does not restore the prior end date.
func UpdateExperienceField(list []types.WorkExperience, id, field string, value any) ([]types.WorkExperience, error) {
	i := findRow(list, id)
	if i < 0 {
		return nil, &RowNotFoundError{Section: "experience", ID: id}
	}

	exp := list[i]
	var err error
	switch field {
	case "position":
		exp.Position, err = asString(field, value)
	case "company":
		exp.Company, err = asString(field, value)
	case "start_date":
		exp.StartDate, err = asString(field, value)
	case "end_date":
		exp.EndDate, err = asString(field, value)
	case "current":
		exp.Current, err = asBool(field, value)
		if err == nil && exp.Current {
			exp.EndDate = PresentMarker
		}
	case "achievements":
		exp.Achievements, err = asStringSlice(field, value)
	default:
		return nil, &UnknownFieldError{Section: "experience", Field: field}
	}
	if err != nil {
		return nil, err
	}

	return replaceRow(list, i, exp), nil
}

// ReplaceAchievements swaps the full achievement list of one row.
func ReplaceAchievements(list []types.WorkExperience, id string, achievements []string) ([]types.WorkExperience, error) {
	return UpdateExperienceField(list, id, "achievements", achievements)
}

// AddAchievement appends a blank achievement line to one row.
func AddAchievement(list []types.WorkExperience, id string) ([]types.WorkExperience, error) {
	i := findRow(list, id)
	if i < 0 {
		return nil, &RowNotFoundError{Section: "experience", ID: id}
	}
	exp := list[i]
	achievements := make([]string, 0, len(exp.Achievements)+1)
	achievements = append(achievements, exp.Achievements...)
	exp.Achievements = append(achievements, "")
	return replaceRow(list, i, exp), nil
}

// UpdateAchievement sets the achievement at index on one row.
func UpdateAchievement(list []types.WorkExperience, id string, index int, value string) ([]types.WorkExperience, error) {
	i := findRow(list, id)
	if i < 0 {
		return nil, &RowNotFoundError{Section: "experience", ID: id}
	}
	exp := list[i]
	if index < 0 || index >= len(exp.Achievements) {
		return nil, &BadValueError{Field: "achievements", Message: "index out of range"}
	}
	achievements := make([]string, len(exp.Achievements))
	copy(achievements, exp.Achievements)
	achievements[index] = value
	exp.Achievements = achievements
	return replaceRow(list, i, exp), nil
}

// RemoveAchievement drops the achievement at index on one row. The last
// remaining achievement line is kept so the form never collapses to zero lines.
func RemoveAchievement(list []types.WorkExperience, id string, index int) ([]types.WorkExperience, error) {
	i := findRow(list, id)
	if i < 0 {
		return nil, &RowNotFoundError{Section: "experience", ID: id}
	}
	exp := list[i]
	if len(exp.Achievements) <= 1 {
		return list, nil
	}
	if index < 0 || index >= len(exp.Achievements) {
		return nil, &BadValueError{Field: "achievements", Message: "index out of range"}
	}
	achievements := make([]string, 0, len(exp.Achievements)-1)
	achievements = append(achievements, exp.Achievements[:index]...)
	achievements = append(achievements, exp.Achievements[index+1:]...)
	exp.Achievements = achievements
	return replaceRow(list, i, exp), nil
}
