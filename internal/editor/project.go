package editor

import (
	"github.com/google/uuid"

	"github.com/jonathan/cv-builder/internal/types"
)

// NewProject returns a defaulted project row with a fresh id.
func NewProject() types.Project {
	return types.Project{
		ID:           uuid.NewString(),
		Technologies: []string{},
	}
}

// AddProject appends a defaulted row and returns the new slice plus the row.
func AddProject(list []types.Project) ([]types.Project, types.Project) {
	proj := NewProject()
	return appendRow(list, proj), proj
}

// RemoveProject excludes the matching row; an absent id is a no-op.
func RemoveProject(list []types.Project, id string) []types.Project {
	return removeRow(list, id)
}

// UpdateProjectField sets one named field of one row.
func UpdateProjectField(list []types.Project, id, field string, value any) ([]types.Project, error) {
	i := findRow(list, id)
	if i < 0 {
		return nil, &RowNotFoundError{Section: "projects", ID: id}
	}

	proj := list[i]
	var err error
	switch field {
	case "title":
		proj.Title, err = asString(field, value)
	case "description":
		proj.Description, err = asString(field, value)
	case "technologies":
		proj.Technologies, err = asStringSlice(field, value)
	case "start_date":
		proj.StartDate, err = asString(field, value)
	case "end_date":
		proj.EndDate, err = asString(field, value)
	case "url":
		proj.URL, err = asString(field, value)
	case "github":
		proj.GitHub, err = asString(field, value)
	default:
		return nil, &UnknownFieldError{Section: "projects", Field: field}
	}
	if err != nil {
		return nil, err
	}

	return replaceRow(list, i, proj), nil
}
