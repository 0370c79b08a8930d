package editor

import (
	"github.com/google/uuid"

	"github.com/jonathan/cv-builder/internal/types"
)

// NewEducation returns a defaulted education row with a fresh id.
func NewEducation() types.Education {
	return types.Education{ID: uuid.NewString()}
}

// AddEducation appends a defaulted row and returns the new slice plus the row.
func AddEducation(list []types.Education) ([]types.Education, types.Education) {
	edu := NewEducation()
	return appendRow(list, edu), edu
}

// RemoveEducation excludes the matching row; an absent id is a no-op.
func RemoveEducation(list []types.Education, id string) []types.Education {
	return removeRow(list, id)
}

// UpdateEducationField sets one named field of one row.
func UpdateEducationField(list []types.Education, id, field string, value any) ([]types.Education, error) {
	i := findRow(list, id)
	if i < 0 {
		return nil, &RowNotFoundError{Section: "education", ID: id}
	}

	edu := list[i]
	var err error
	switch field {
	case "degree":
		edu.Degree, err = asString(field, value)
	case "institution":
		edu.Institution, err = asString(field, value)
	case "location":
		edu.Location, err = asString(field, value)
	case "start_year":
		edu.StartYear, err = asString(field, value)
	case "end_year":
		edu.EndYear, err = asString(field, value)
	default:
		return nil, &UnknownFieldError{Section: "education", Field: field}
	}
	if err != nil {
		return nil, err
	}

	return replaceRow(list, i, edu), nil
}
