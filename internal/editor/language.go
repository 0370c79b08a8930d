package editor

import (
	"slices"

	"github.com/google/uuid"

	"github.com/jonathan/cv-builder/internal/types"
)

// NewLanguage returns a defaulted language row with a fresh id. Language rows
// carry the same identifier scheme as every other section so that update and
// remove stay correct when rows are reordered or deleted mid-edit.
func NewLanguage() types.Language {
	return types.Language{ID: uuid.NewString()}
}

// AddLanguage appends a defaulted row and returns the new slice plus the row.
func AddLanguage(list []types.Language) ([]types.Language, types.Language) {
	lang := NewLanguage()
	return appendRow(list, lang), lang
}

// RemoveLanguage excludes the matching row; an absent id is a no-op.
func RemoveLanguage(list []types.Language, id string) []types.Language {
	return removeRow(list, id)
}

// UpdateLanguageField sets one named field of one row. Proficiency must be
// one of the four fixed levels (or blank while the row is being filled in).
func UpdateLanguageField(list []types.Language, id, field string, value any) ([]types.Language, error) {
	i := findRow(list, id)
	if i < 0 {
		return nil, &RowNotFoundError{Section: "languages", ID: id}
	}

	lang := list[i]
	var err error
	switch field {
	case "language":
		lang.Language, err = asString(field, value)
	case "proficiency":
		var level string
		level, err = asString(field, value)
		if err == nil && level != "" && !slices.Contains(types.ProficiencyLevels, level) {
			return nil, &BadValueError{Field: field, Message: "not a recognized proficiency level"}
		}
		lang.Proficiency = level
	default:
		return nil, &UnknownFieldError{Section: "languages", Field: field}
	}
	if err != nil {
		return nil, err
	}

	return replaceRow(list, i, lang), nil
}
