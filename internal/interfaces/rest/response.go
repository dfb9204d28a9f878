package rest

import (
	"encoding/json"

	"github.com/DanielPopoola/pages-deploy-gateway/internal/domain"
)

type DeploymentResponse struct {
	Success    bool                `json:"success"`
	URL        string              `json:"url"`
	Project    string              `json:"project"`
	Deployment json.RawMessage     `json:"deployment"`
	Access     domain.AccessResult `json:"access"`
	Protection Protection          `json:"protection"`
}

// Protection echoes what the caller asked for. Emails and Domain are null
// when the header was absent or empty.
type Protection struct {
	Password bool    `json:"password"`
	Emails   *string `json:"emails"`
	Domain   *string `json:"domain"`
}

func ToDeploymentResponse(result *domain.DeploymentResult) DeploymentResponse {
	return DeploymentResponse{
		Success:    true,
		URL:        result.URL,
		Project:    result.ProjectName,
		Deployment: result.Deployment,
		Access:     result.Access,
		Protection: Protection{
			Password: result.PasswordProtected,
			Emails:   nullable(result.Emails),
			Domain:   nullable(result.Domain),
		},
	}
}

func nullable(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
