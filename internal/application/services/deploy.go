package services

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/DanielPopoola/pages-deploy-gateway/internal/application"
	"github.com/DanielPopoola/pages-deploy-gateway/internal/domain"
)

type DeployOutcome struct {
	Deployment     json.RawMessage
	ProjectCreated bool
}

// DeployService uploads a site bundle. When the project does not exist yet
// it creates it and resends the upload once.
type DeployService struct {
	pages            application.PagesAPI
	productionBranch string
	logger           *slog.Logger
}

func NewDeployService(pages application.PagesAPI, productionBranch string, logger *slog.Logger) *DeployService {
	return &DeployService{
		pages:            pages,
		productionBranch: productionBranch,
		logger:           logger,
	}
}

func (s *DeployService) Deploy(ctx context.Context, projectName string, payload []byte) (*DeployOutcome, error) {
	attempt := domain.NewDeployAttempt(projectName)
	outcome := &DeployOutcome{}

	for !attempt.IsTerminal() {
		var err error

		switch attempt.State {
		case domain.StateAttempting, domain.StateRetrying:
			err = s.upload(ctx, attempt, payload, outcome)
		case domain.StateCreatingProject:
			err = s.createProject(ctx, attempt)
		}

		if err != nil {
			if failErr := attempt.Fail(); failErr != nil {
				return nil, application.NewInternalError(failErr)
			}
			return nil, err
		}
	}

	outcome.ProjectCreated = attempt.ProjectCreated
	return outcome, nil
}

func (s *DeployService) upload(ctx context.Context, attempt *domain.DeployAttempt, payload []byte, outcome *DeployOutcome) error {
	result, err := s.pages.CreateDeployment(ctx, attempt.ProjectName, payload)
	if err == nil {
		outcome.Deployment = result
		if err := attempt.Succeed(); err != nil {
			return application.NewInternalError(err)
		}
		return nil
	}

	vendorErr, ok := application.IsVendorError(err)
	if !ok {
		return application.NewInternalError(err)
	}

	if attempt.State == domain.StateAttempting && vendorErr.IsProjectNotFound() {
		s.logger.InfoContext(ctx, "project not found, creating it",
			"project", attempt.ProjectName,
		)
		if err := attempt.BeginProjectCreation(); err != nil {
			return application.NewInternalError(err)
		}
		return nil
	}

	s.logger.WarnContext(ctx, "deployment rejected",
		"project", attempt.ProjectName,
		"state", attempt.State,
		"vendor_code", vendorErr.FirstCode(),
		"status", vendorErr.StatusCode,
	)
	return application.NewDeploymentError(vendorErr)
}

func (s *DeployService) createProject(ctx context.Context, attempt *domain.DeployAttempt) error {
	_, err := s.pages.CreateProject(ctx, application.CreateProjectRequest{
		Name:             attempt.ProjectName,
		ProductionBranch: s.productionBranch,
	})
	if err != nil {
		vendorErr, ok := application.IsVendorError(err)
		if !ok {
			return application.NewInternalError(err)
		}
		s.logger.WarnContext(ctx, "project creation rejected",
			"project", attempt.ProjectName,
			"vendor_code", vendorErr.FirstCode(),
			"status", vendorErr.StatusCode,
		)
		return application.NewProjectCreationError(vendorErr)
	}

	if err := attempt.BeginRetry(); err != nil {
		return application.NewInternalError(err)
	}
	return nil
}
