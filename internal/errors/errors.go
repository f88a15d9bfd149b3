package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrHospitalNotFound is returned when a hospital is not found.
	ErrHospitalNotFound = errors.New("Hospital não encontrado")
	// ErrSpecialtyNotFound is returned when a specialty is not found.
	ErrSpecialtyNotFound = errors.New("Especialidade não encontrada")
	// ErrNewsNotFound is returned when a news item is not found.
	ErrNewsNotFound = errors.New("Notícia não encontrada")
	// ErrAppointmentNotFound is returned when an appointment does not exist
	// or belongs to another user. Both cases share the same message so the
	// existence of other users' rows never leaks.
	ErrAppointmentNotFound = errors.New("Agendamento não encontrado")
	// ErrHealthRecordNotFound mirrors ErrAppointmentNotFound for health records.
	ErrHealthRecordNotFound = errors.New("Registro não encontrado")
	// ErrUserNotFound is returned when a user row is absent.
	ErrUserNotFound = errors.New("Usuário não encontrado")
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("Email já cadastrado")
	// ErrEmailInUse is returned when a profile update targets a taken email.
	ErrEmailInUse = errors.New("Este email já está em uso")
	// ErrEmailNotFound is returned by the forgot-password email check.
	ErrEmailNotFound = errors.New("Email não encontrado")
	// ErrSpecialtyTaken is returned on duplicate specialty names.
	ErrSpecialtyTaken = errors.New("Especialidade já cadastrada")
)

// ErrorResponse is the wire shape of every error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HTTPError carries an HTTP status alongside the end-user message.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// ToErrorResponse converts an HTTPError to its response body.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unknown is an
// internal error with a generic message; callers log the underlying detail.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrHospitalNotFound),
		errors.Is(err, ErrSpecialtyNotFound),
		errors.Is(err, ErrNewsNotFound),
		errors.Is(err, ErrAppointmentNotFound),
		errors.Is(err, ErrHealthRecordNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrEmailNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrEmailTaken), errors.Is(err, ErrSpecialtyTaken):
		return NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, ErrEmailInUse):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "Erro interno do servidor")
	}
}
