package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/DanielPopoola/pages-deploy-gateway/internal/application"
	"github.com/DanielPopoola/pages-deploy-gateway/internal/domain"
	"github.com/go-playground/validator"
)

type Deployer interface {
	Deploy(ctx context.Context, projectName string, payload []byte) (*DeployOutcome, error)
}

type AccessConfigurator interface {
	Configure(ctx context.Context, projectName, emails, emailDomain string) domain.AccessResult
}

// OutcomeRecorder receives one deploy outcome per request and one access
// status per access configuration.
type OutcomeRecorder interface {
	RecordDeploy(outcome string)
	RecordAccess(status domain.AccessStatus)
}

const (
	OutcomeDeployed              = "deployed"
	OutcomeProjectCreated        = "project_created"
	OutcomeProjectCreationFailed = "project_creation_failed"
	OutcomeDeploymentFailed      = "deployment_failed"
	OutcomeInvalidRequest        = "invalid_request"
	OutcomeInternalError         = "internal_error"
)

type PublishService struct {
	deployer     Deployer
	configurator AccessConfigurator
	recorder     OutcomeRecorder
	pagesDomain  string
	validate     *validator.Validate
	logger       *slog.Logger
}

func NewPublishService(
	deployer Deployer,
	configurator AccessConfigurator,
	recorder OutcomeRecorder,
	pagesDomain string,
	logger *slog.Logger,
) *PublishService {
	return &PublishService{
		deployer:     deployer,
		configurator: configurator,
		recorder:     recorder,
		pagesDomain:  pagesDomain,
		validate:     validator.New(),
		logger:       logger,
	}
}

// Publish deploys the bundle and, when emails or a domain were given,
// configures access. Access failures are reported in the result and never
// undo the deployment.
func (s *PublishService) Publish(ctx context.Context, req *domain.DeploymentRequest) (*domain.DeploymentResult, error) {
	if err := s.validateRequest(req); err != nil {
		s.recorder.RecordDeploy(OutcomeInvalidRequest)
		return nil, err
	}

	outcome, err := s.deployer.Deploy(ctx, req.ProjectName, req.Payload)
	if err != nil {
		s.recorder.RecordDeploy(deployFailureOutcome(err))
		s.logger.ErrorContext(ctx, "deployment failed",
			"project", req.ProjectName,
			"category", application.CategorizeError(err),
			"code", application.ToErrorCode(err),
			"error", err,
		)
		return nil, err
	}

	if outcome.ProjectCreated {
		s.recorder.RecordDeploy(OutcomeProjectCreated)
	} else {
		s.recorder.RecordDeploy(OutcomeDeployed)
	}

	result := &domain.DeploymentResult{
		ProjectName:       req.ProjectName,
		URL:               domain.SiteURL(req.ProjectName, s.pagesDomain),
		Deployment:        outcome.Deployment,
		ProjectCreated:    outcome.ProjectCreated,
		PasswordProtected: req.Password != "",
		Emails:            req.Emails,
		Domain:            req.Domain,
	}

	if req.WantsAccess() {
		result.Access = s.configurator.Configure(ctx, req.ProjectName, req.Emails, req.Domain)
		s.recorder.RecordAccess(result.Access.Status())
	}

	s.logger.InfoContext(ctx, "site published",
		"project", result.ProjectName,
		"url", result.URL,
		"project_created", result.ProjectCreated,
		"access", accessStatus(result.Access),
	)

	return result, nil
}

func (s *PublishService) validateRequest(req *domain.DeploymentRequest) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fieldErr := range fieldErrs {
			switch fieldErr.Field() {
			case "Payload":
				return application.NewNoFileUploadedError()
			case "ProjectName":
				return application.NewInvalidInputError(domain.NewMissingRequiredFieldError("project name"))
			}
		}
	}
	return application.NewInvalidInputError(err)
}

func deployFailureOutcome(err error) string {
	svcErr, ok := application.IsServiceError(err)
	if !ok {
		return OutcomeInternalError
	}
	switch svcErr.Code {
	case application.ErrCodeProjectCreation:
		return OutcomeProjectCreationFailed
	case application.ErrCodeDeployment:
		return OutcomeDeploymentFailed
	default:
		return OutcomeInternalError
	}
}

func accessStatus(result domain.AccessResult) string {
	if result == nil {
		return "none"
	}
	return string(result.Status())
}
