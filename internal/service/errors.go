package service

import (
	"errors"
	"fmt"

	"github.com/AHAD2911/AI-Powered-Survey-Platform/pkg/speech"
)

type ServiceError struct {
	Code    int
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) StatusCode() int {
	return e.Code
}

var (
	ErrSurveyNotFound  = &ServiceError{Code: 404, Message: "survey not found"}
	ErrSurveyCompleted = &ServiceError{Code: 409, Message: "survey is already completed"}
	ErrTurnInProgress  = &ServiceError{Code: 409, Message: "another turn is in progress for this survey"}
)

// ValidationError rejects input before any state is written.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func (e *ValidationError) StatusCode() int {
	return 400
}

// TranscriptionError is a retryable voice failure; Error is user-displayable.
type TranscriptionError struct {
	Err *speech.Error
}

func (e *TranscriptionError) Error() string {
	return e.Err.Error()
}

func (e *TranscriptionError) Unwrap() error {
	return e.Err
}

func (e *TranscriptionError) StatusCode() int {
	return 422
}

func asTranscriptionError(err error) *TranscriptionError {
	var speechErr *speech.Error
	if errors.As(err, &speechErr) {
		return &TranscriptionError{Err: speechErr}
	}
	return &TranscriptionError{Err: &speech.Error{Kind: speech.Unknown, Detail: err.Error(), Err: err}}
}
