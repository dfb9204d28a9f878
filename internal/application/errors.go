package application

import (
	"errors"
	"fmt"
	"net/http"
)

// ServiceError is what the orchestration layer hands back to the transport.
// Message is the stable "error" value of the response body; Details holds
// diagnostics such as the vendor's error body.
type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    any
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeProjectCreation = "PROJECT_CREATION_FAILED"
	ErrCodeDeployment      = "DEPLOYMENT_FAILED"
	ErrCodeInternal        = "INTERNAL_ERROR"
)

const (
	MsgPostRequired        = "POST required"
	MsgNoFileUploaded      = "No file uploaded"
	MsgFileTooLarge        = "File too large"
	MsgInvalidInput        = "Invalid input"
	MsgProjectCreateFailed = "Failed to create project"
	MsgDeploymentFailed    = "Deployment failed"
	MsgInternalError       = "Internal error"
)

func NewMethodNotAllowedError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeValidation,
		Message:    MsgPostRequired,
		HTTPStatus: http.StatusMethodNotAllowed,
	}
}

func NewNoFileUploadedError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeValidation,
		Message:    MsgNoFileUploaded,
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewFileTooLargeError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeValidation,
		Message:    MsgFileTooLarge,
		HTTPStatus: http.StatusRequestEntityTooLarge,
		Err:        err,
	}
}

func NewInvalidInputError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeValidation,
		Message:    MsgInvalidInput,
		HTTPStatus: http.StatusBadRequest,
		Details:    err.Error(),
		Err:        err,
	}
}

func NewProjectCreationError(vendorErr *VendorError) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeProjectCreation,
		Message:    MsgProjectCreateFailed,
		HTTPStatus: http.StatusInternalServerError,
		Details:    vendorErr.Details(),
		Err:        vendorErr,
	}
}

func NewDeploymentError(vendorErr *VendorError) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeDeployment,
		Message:    MsgDeploymentFailed,
		HTTPStatus: http.StatusInternalServerError,
		Details:    vendorErr.Details(),
		Err:        vendorErr,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    MsgInternalError,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}
