package application

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DanielPopoola/pages-deploy-gateway/internal/domain"
)

type CreateProjectRequest struct {
	Name             string `json:"name"`
	ProductionBranch string `json:"production_branch"`
}

type Project struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Subdomain        string `json:"subdomain"`
	ProductionBranch string `json:"production_branch"`
}

type AccessApp struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Domain string `json:"domain"`
	Type   string `json:"type"`
}

type CreateAccessAppRequest struct {
	Name                   string `json:"name"`
	Domain                 string `json:"domain"`
	Type                   string `json:"type"`
	SessionDuration        string `json:"session_duration"`
	AutoRedirectToIdentity bool   `json:"auto_redirect_to_identity"`
}

type AccessPolicy struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Decision string              `json:"decision"`
	Include  []domain.AccessRule `json:"include"`
}

type AccessPolicyRequest struct {
	Name     string              `json:"name"`
	Decision string              `json:"decision"`
	Include  []domain.AccessRule `json:"include"`
}

func NewAllowPolicyRequest(include []domain.AccessRule) AccessPolicyRequest {
	return AccessPolicyRequest{
		Name:     domain.AllowedUsersPolicyName,
		Decision: domain.DecisionAllow,
		Include:  include,
	}
}

// VendorError is a non-2xx answer from the provider. Body is the response
// exactly as received.
type VendorError struct {
	Operation  string
	StatusCode int
	Errors     []VendorErrorDetail
	Body       []byte
}

type VendorErrorDetail struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *VendorError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("vendor error [%d] on %s: %s (status: %d)",
			e.Errors[0].Code, e.Operation, e.Errors[0].Message, e.StatusCode)
	}
	return fmt.Sprintf("vendor error on %s (status: %d)", e.Operation, e.StatusCode)
}

// FirstCode returns the first reported error code, or 0.
func (e *VendorError) FirstCode() int {
	if len(e.Errors) == 0 {
		return 0
	}
	return e.Errors[0].Code
}

func (e *VendorError) IsProjectNotFound() bool {
	return e.FirstCode() == domain.ProjectNotFoundCode
}

// Details returns the body for embedding in a JSON response: raw JSON when
// the provider sent JSON, otherwise the body as a string.
func (e *VendorError) Details() any {
	if len(e.Body) > 0 && json.Valid(e.Body) {
		return json.RawMessage(e.Body)
	}
	return string(e.Body)
}

func IsVendorError(err error) (*VendorError, bool) {
	var vendorErr *VendorError
	ok := errors.As(err, &vendorErr)
	return vendorErr, ok
}
