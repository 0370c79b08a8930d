// Package server provides the HTTP REST API for the CV builder.
package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/cv-builder/internal/assist"
	"github.com/jonathan/cv-builder/internal/editor"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	if errors.Is(err, assist.ErrSuperseded) {
		return http.StatusConflict
	}

	switch err.(type) {
	case *editor.RowNotFoundError:
		return http.StatusNotFound
	case *editor.UnknownFieldError, *editor.BadValueError:
		return http.StatusBadRequest
	case *assist.PrerequisiteError:
		return http.StatusUnprocessableEntity
	case *assist.RemoteError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
