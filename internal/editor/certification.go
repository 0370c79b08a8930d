package editor

import (
	"github.com/google/uuid"

	"github.com/jonathan/cv-builder/internal/types"
)

// NewCertification returns a defaulted certification row with a fresh id.
func NewCertification() types.Certification {
	return types.Certification{ID: uuid.NewString()}
}

// AddCertification appends a defaulted row and returns the new slice plus the row.
func AddCertification(list []types.Certification) ([]types.Certification, types.Certification) {
	cert := NewCertification()
	return appendRow(list, cert), cert
}

// RemoveCertification excludes the matching row; an absent id is a no-op.
func RemoveCertification(list []types.Certification, id string) []types.Certification {
	return removeRow(list, id)
}

// UpdateCertificationField sets one named field of one row.
func UpdateCertificationField(list []types.Certification, id, field string, value any) ([]types.Certification, error) {
	i := findRow(list, id)
	if i < 0 {
		return nil, &RowNotFoundError{Section: "certifications", ID: id}
	}

	cert := list[i]
	var err error
	switch field {
	case "name":
		cert.Name, err = asString(field, value)
	case "issuer":
		cert.Issuer, err = asString(field, value)
	case "year":
		cert.Year, err = asString(field, value)
	default:
		return nil, &UnknownFieldError{Section: "certifications", Field: field}
	}
	if err != nil {
		return nil, err
	}

	return replaceRow(list, i, cert), nil
}
