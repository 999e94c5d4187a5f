package common

import (
	"errors"
	"net/http"

	"github.com/dtnitsch/wordcalc/models"
	"github.com/dtnitsch/wordcalc/pkg/db"
	"github.com/dtnitsch/wordcalc/pkg/grammar"
	"github.com/dtnitsch/wordcalc/pkg/transform"
)

// ErrInvalidInput marks a malformed request.
var ErrInvalidInput = errors.New("invalid input")

// ErrorInfo classifies err for structured output.
func ErrorInfo(err error) *models.ErrorInfo {
	switch {
	case errors.Is(err, transform.ErrInvalidPattern):
		return models.NewInvalidPatternError(err.Error())
	case errors.Is(err, grammar.ErrServiceUnavailable):
		return models.NewServiceUnavailableError(err.Error())
	case errors.Is(err, db.ErrNotFound):
		return models.NewNotFoundError(err.Error())
	case errors.Is(err, ErrInvalidInput):
		return &models.ErrorInfo{Type: models.ErrorTypeInvalidInput, Message: err.Error()}
	case errors.Is(err, grammar.ErrMatchOutOfRange):
		return &models.ErrorInfo{
			Type:             models.ErrorTypeInvalidInput,
			Message:          err.Error(),
			SuggestedActions: []string{"Re-run the grammar check; offsets refer to the checked text"},
		}
	}
	return &models.ErrorInfo{Type: models.ErrorTypeInternal, Message: err.Error()}
}

// HTTPStatus maps an ErrorInfo type to a response status.
func HTTPStatus(info *models.ErrorInfo) int {
	switch info.Type {
	case models.ErrorTypeInvalidInput, models.ErrorTypeInvalidPattern:
		return http.StatusBadRequest
	case models.ErrorTypeNotFound:
		return http.StatusNotFound
	case models.ErrorTypeServiceUnavailable:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
