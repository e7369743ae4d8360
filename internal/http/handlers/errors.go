package handlers

import (
	"errors"
	"net/http"

	"github.com/open-sspm/open-aigov/internal/integrations"
	"github.com/open-sspm/open-aigov/internal/models"
	"github.com/open-sspm/open-aigov/internal/usecases"
	"github.com/open-sspm/open-aigov/internal/validate"
)

// ClientError is an error whose message is safe to show to the caller.
type ClientError struct {
	Status  int
	Message string
	Fields  validate.FieldErrors
}

// ClassifyError maps domain errors to a client-facing status and message.
// ok is false for errors that must be reported as internal errors.
func ClassifyError(err error) (ClientError, bool) {
	var fe validate.FieldErrors
	if errors.As(err, &fe) {
		msg := "validation failed"
		if errors.Is(err, usecases.ErrTabInvalid) {
			msg = usecases.ErrTabInvalid.Error()
		}
		return ClientError{Status: http.StatusUnprocessableEntity, Message: msg, Fields: fe}, true
	}

	switch {
	case errors.Is(err, errBadID),
		errors.Is(err, integrations.ErrNotFound),
		errors.Is(err, models.ErrNotFound),
		errors.Is(err, models.ErrApplicationNotFound),
		errors.Is(err, usecases.ErrNotFound),
		errors.Is(err, usecases.ErrApplicationNotFound),
		errors.Is(err, usecases.ErrDraftNotFound),
		errors.Is(err, usecases.ErrRiskNotFound):
		return ClientError{Status: http.StatusNotFound, Message: "not found"}, true
	case errors.Is(err, integrations.ErrCredentialsRequired),
		errors.Is(err, models.ErrDuplicate),
		errors.Is(err, usecases.ErrClosed):
		return ClientError{Status: http.StatusConflict, Message: rootMessage(err)}, true
	case errors.Is(err, usecases.ErrLastRisk),
		errors.Is(err, usecases.ErrUnknownOwner),
		errors.Is(err, usecases.ErrForwardSkip),
		errors.Is(err, usecases.ErrUnknownTab),
		errors.Is(err, errBadBody):
		return ClientError{Status: http.StatusUnprocessableEntity, Message: rootMessage(err)}, true
	}
	return ClientError{}, false
}

// rootMessage returns the message of the sentinel err wraps, dropping
// context that may name internal ids.
func rootMessage(err error) string {
	for _, sentinel := range []error{
		integrations.ErrCredentialsRequired,
		models.ErrDuplicate,
		usecases.ErrClosed,
		usecases.ErrLastRisk,
		usecases.ErrUnknownOwner,
		usecases.ErrForwardSkip,
		usecases.ErrUnknownTab,
		errBadBody,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return http.StatusText(http.StatusBadRequest)
}
