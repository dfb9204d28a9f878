package application

import (
	"context"
	"encoding/json"
)

// PagesAPI is the port for the hosting provider's project and deployment
// endpoints.
type PagesAPI interface {
	CreateDeployment(ctx context.Context, projectName string, payload []byte) (json.RawMessage, error)
	CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error)
}

// AccessAPI is the port for the provider's access-control endpoints.
// ListAccessApps returns every application on the account.
type AccessAPI interface {
	ListAccessApps(ctx context.Context) ([]AccessApp, error)
	CreateAccessApp(ctx context.Context, req CreateAccessAppRequest) (*AccessApp, error)
	ListAccessPolicies(ctx context.Context, appID string) ([]AccessPolicy, error)
	CreateAccessPolicy(ctx context.Context, appID string, req AccessPolicyRequest) (*AccessPolicy, error)
	UpdateAccessPolicy(ctx context.Context, appID, policyID string, req AccessPolicyRequest) (*AccessPolicy, error)
}

type VendorClient interface {
	PagesAPI
	AccessAPI
}
