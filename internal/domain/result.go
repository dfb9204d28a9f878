package domain

import "encoding/json"

// DeploymentResult is what a successful publish produced. Access is nil when
// no access configuration was requested.
type DeploymentResult struct {
	ProjectName       string
	URL               string
	Deployment        json.RawMessage
	ProjectCreated    bool
	Access            AccessResult
	PasswordProtected bool
	Emails            string
	Domain            string
}
