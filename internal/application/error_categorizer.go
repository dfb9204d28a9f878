package application

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/DanielPopoola/pages-deploy-gateway/internal/domain"
)

// ErrorCategory represents the nature of an error for logging and metrics
type ErrorCategory string

const (
	CategoryClientError    ErrorCategory = "CLIENT_ERROR"
	CategoryVendorRejected ErrorCategory = "VENDOR_REJECTED"
	CategoryTransient      ErrorCategory = "TRANSIENT"
	CategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
)

// CategorizeError determines the error category for logging purposes
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryTransient
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeValidation:
			return CategoryClientError
		case ErrCodeProjectCreation, ErrCodeDeployment:
			return CategoryVendorRejected
		}
	}

	if vendorErr, ok := IsVendorError(err); ok {
		if vendorErr.StatusCode >= 500 {
			return CategoryTransient
		}
		return CategoryVendorRejected
	}

	return CategoryInfrastructure
}

// ToHTTPStatus maps error to the response status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	return http.StatusInternalServerError
}

// ToErrorCode gives a stable code for logs
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	if domain.IsErrorCode(err, domain.ErrCodeInvalidTransition) {
		return domain.ErrCodeInvalidTransition
	}

	if vendorErr, ok := IsVendorError(err); ok && vendorErr.FirstCode() != 0 {
		return "VENDOR_" + strings.ToUpper(vendorErr.Operation)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "TIMEOUT"
	}

	return ErrCodeInternal
}
