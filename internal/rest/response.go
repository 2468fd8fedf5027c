package rest

import (
	"errors"
	"net/http"

	"scentMatch/domain"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// statusForError maps the engine's error taxonomy onto HTTP status codes.
// All validation failures are client errors; anything else is a 500.
func statusForError(err error) int {
	var (
		unknownItem  *domain.UnknownItemError
		unknownCat   *domain.UnknownCategoryError
		invalidWt    *domain.InvalidWeightError
		invalidParam *domain.InvalidParameterError
	)
	switch {
	case errors.As(err, &unknownItem),
		errors.As(err, &unknownCat),
		errors.As(err, &invalidWt),
		errors.As(err, &invalidParam):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
