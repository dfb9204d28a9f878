package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DanielPopoola/pages-deploy-gateway/internal/application"
	"github.com/DanielPopoola/pages-deploy-gateway/internal/application/services"
	"github.com/DanielPopoola/pages-deploy-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDeployer struct {
	deployFunc func(ctx context.Context, projectName string, payload []byte) (*services.DeployOutcome, error)
}

func (s *stubDeployer) Deploy(ctx context.Context, projectName string, payload []byte) (*services.DeployOutcome, error) {
	return s.deployFunc(ctx, projectName, payload)
}

type stubConfigurator struct {
	calls         int
	configureFunc func(ctx context.Context, projectName, emails, emailDomain string) domain.AccessResult
}

func (s *stubConfigurator) Configure(ctx context.Context, projectName, emails, emailDomain string) domain.AccessResult {
	s.calls++
	return s.configureFunc(ctx, projectName, emails, emailDomain)
}

type recordingRecorder struct {
	deploys  []string
	accesses []domain.AccessStatus
}

func (r *recordingRecorder) RecordDeploy(outcome string) {
	r.deploys = append(r.deploys, outcome)
}

func (r *recordingRecorder) RecordAccess(status domain.AccessStatus) {
	r.accesses = append(r.accesses, status)
}

func deployed(created bool) *stubDeployer {
	return &stubDeployer{
		deployFunc: func(ctx context.Context, projectName string, payload []byte) (*services.DeployOutcome, error) {
			return &services.DeployOutcome{
				Deployment:     json.RawMessage(`{"id":"dep-1"}`),
				ProjectCreated: created,
			}, nil
		},
	}
}

func unusedConfigurator(t *testing.T) *stubConfigurator {
	return &stubConfigurator{
		configureFunc: func(ctx context.Context, projectName, emails, emailDomain string) domain.AccessResult {
			t.Fatal("access configuration should not run")
			return nil
		},
	}
}

func TestPublish_WithoutAccess(t *testing.T) {
	recorder := &recordingRecorder{}
	svc := services.NewPublishService(deployed(false), unusedConfigurator(t), recorder, "pages.dev", discardLogger())

	req := &domain.DeploymentRequest{ProjectName: "demo", Password: "hunter2", Payload: []byte("zip")}
	result, err := svc.Publish(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "demo", result.ProjectName)
	assert.Equal(t, "https://demo.pages.dev", result.URL)
	assert.JSONEq(t, `{"id":"dep-1"}`, string(result.Deployment))
	assert.Nil(t, result.Access)
	assert.True(t, result.PasswordProtected)
	assert.False(t, result.ProjectCreated)
	assert.Equal(t, []string{services.OutcomeDeployed}, recorder.deploys)
	assert.Empty(t, recorder.accesses)
}

func TestPublish_WithAccess(t *testing.T) {
	recorder := &recordingRecorder{}
	configurator := &stubConfigurator{
		configureFunc: func(ctx context.Context, projectName, emails, emailDomain string) domain.AccessResult {
			assert.Equal(t, "demo", projectName)
			assert.Equal(t, "a@x.com", emails)
			assert.Equal(t, "@corp.com", emailDomain)
			return domain.AccessCreated{AppID: "app-1"}
		},
	}
	svc := services.NewPublishService(deployed(true), configurator, recorder, "pages.dev", discardLogger())

	req := &domain.DeploymentRequest{
		ProjectName: "demo",
		Emails:      "a@x.com",
		Domain:      "@corp.com",
		Payload:     []byte("zip"),
	}
	result, err := svc.Publish(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 1, configurator.calls)
	assert.Equal(t, domain.AccessCreated{AppID: "app-1"}, result.Access)
	assert.True(t, result.ProjectCreated)
	assert.False(t, result.PasswordProtected)
	assert.Equal(t, "a@x.com", result.Emails)
	assert.Equal(t, "@corp.com", result.Domain)
	assert.Equal(t, []string{services.OutcomeProjectCreated}, recorder.deploys)
	assert.Equal(t, []domain.AccessStatus{domain.AccessStatusCreated}, recorder.accesses)
}

func TestPublish_AccessFailureDoesNotFailRequest(t *testing.T) {
	configurator := &stubConfigurator{
		configureFunc: func(ctx context.Context, projectName, emails, emailDomain string) domain.AccessResult {
			return domain.AccessFailed{Error: "boom"}
		},
	}
	svc := services.NewPublishService(deployed(false), configurator, &recordingRecorder{}, "pages.dev", discardLogger())

	result, err := svc.Publish(context.Background(), &domain.DeploymentRequest{
		ProjectName: "demo",
		Domain:      "corp.com",
		Payload:     []byte("zip"),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.AccessStatusFailed, result.Access.Status())
}

func TestPublish_Validation(t *testing.T) {
	t.Run("empty payload", func(t *testing.T) {
		recorder := &recordingRecorder{}
		deployer := &stubDeployer{
			deployFunc: func(ctx context.Context, projectName string, payload []byte) (*services.DeployOutcome, error) {
				t.Fatal("no vendor call expected")
				return nil, nil
			},
		}
		svc := services.NewPublishService(deployer, unusedConfigurator(t), recorder, "pages.dev", discardLogger())

		_, err := svc.Publish(context.Background(), &domain.DeploymentRequest{ProjectName: "demo"})

		svcErr, ok := application.IsServiceError(err)
		require.True(t, ok)
		assert.Equal(t, application.MsgNoFileUploaded, svcErr.Message)
		assert.Equal(t, 400, svcErr.HTTPStatus)
		assert.Equal(t, []string{services.OutcomeInvalidRequest}, recorder.deploys)
	})

	t.Run("missing project name", func(t *testing.T) {
		svc := services.NewPublishService(deployed(false), unusedConfigurator(t), &recordingRecorder{}, "pages.dev", discardLogger())

		_, err := svc.Publish(context.Background(), &domain.DeploymentRequest{Payload: []byte("zip")})

		svcErr, ok := application.IsServiceError(err)
		require.True(t, ok)
		assert.Equal(t, application.ErrCodeValidation, svcErr.Code)
		assert.Equal(t, application.MsgInvalidInput, svcErr.Message)
	})
}

func TestPublish_DeployFailureOutcomes(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		outcome string
	}{
		{
			name:    "project creation",
			err:     application.NewProjectCreationError(vendorError("create_project", 400, 8000000, `{}`)),
			outcome: services.OutcomeProjectCreationFailed,
		},
		{
			name:    "deployment",
			err:     application.NewDeploymentError(vendorError("create_deployment", 400, 8000001, `{}`)),
			outcome: services.OutcomeDeploymentFailed,
		},
		{
			name:    "internal",
			err:     application.NewInternalError(errors.New("connection refused")),
			outcome: services.OutcomeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := &recordingRecorder{}
			deployer := &stubDeployer{
				deployFunc: func(ctx context.Context, projectName string, payload []byte) (*services.DeployOutcome, error) {
					return nil, tt.err
				},
			}
			svc := services.NewPublishService(deployer, unusedConfigurator(t), recorder, "pages.dev", discardLogger())

			result, err := svc.Publish(context.Background(), &domain.DeploymentRequest{
				ProjectName: "demo",
				Emails:      "a@x.com",
				Payload:     []byte("zip"),
			})

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, []string{tt.outcome}, recorder.deploys)
		})
	}
}
