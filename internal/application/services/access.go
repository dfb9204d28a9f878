package services

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/pages-deploy-gateway/internal/application"
	"github.com/DanielPopoola/pages-deploy-gateway/internal/domain"
	"github.com/samber/lo"
)

// AccessService puts an access application with a single allow policy in
// front of a deployed site. It never returns an error: every failure is
// folded into the AccessResult.
type AccessService struct {
	access          application.AccessAPI
	pagesDomain     string
	sessionDuration string
	logger          *slog.Logger
}

func NewAccessService(access application.AccessAPI, pagesDomain, sessionDuration string, logger *slog.Logger) *AccessService {
	return &AccessService{
		access:          access,
		pagesDomain:     pagesDomain,
		sessionDuration: sessionDuration,
		logger:          logger,
	}
}

func (s *AccessService) Configure(ctx context.Context, projectName, emails, emailDomain string) domain.AccessResult {
	include := domain.BuildAccessInclude(emails, emailDomain)
	appDomain := domain.SiteHost(projectName, s.pagesDomain)

	apps, err := s.access.ListAccessApps(ctx)
	if err != nil {
		return s.failed(ctx, "list access apps", err)
	}

	existing, found := lo.Find(apps, func(app application.AccessApp) bool {
		return app.Domain == appDomain || app.Name == projectName
	})
	if found {
		return s.updateExisting(ctx, existing, include)
	}

	return s.createNew(ctx, projectName, appDomain, include)
}

func (s *AccessService) updateExisting(ctx context.Context, app application.AccessApp, include []domain.AccessRule) domain.AccessResult {
	policies, err := s.access.ListAccessPolicies(ctx, app.ID)
	if err != nil {
		return s.failed(ctx, "list access policies", err)
	}

	req := application.NewAllowPolicyRequest(include)

	if len(policies) == 0 {
		// An app without policies lets nobody in; give it the allow policy.
		if _, err := s.access.CreateAccessPolicy(ctx, app.ID, req); err != nil {
			s.logger.WarnContext(ctx, "access policy creation failed",
				"app_id", app.ID,
				"error", err,
			)
			return domain.AccessPartial{AppID: app.ID, PolicyError: errorDetails(err)}
		}
		return domain.AccessUpdated{AppID: app.ID}
	}

	policy := policies[0]
	if _, err := s.access.UpdateAccessPolicy(ctx, app.ID, policy.ID, req); err != nil {
		s.logger.WarnContext(ctx, "access policy update failed",
			"app_id", app.ID,
			"policy_id", policy.ID,
			"error", err,
		)
	}

	return domain.AccessUpdated{AppID: app.ID}
}

func (s *AccessService) createNew(ctx context.Context, projectName, appDomain string, include []domain.AccessRule) domain.AccessResult {
	app, err := s.access.CreateAccessApp(ctx, application.CreateAccessAppRequest{
		Name:                   projectName,
		Domain:                 appDomain,
		Type:                   domain.AppTypeSelfHosted,
		SessionDuration:        s.sessionDuration,
		AutoRedirectToIdentity: false,
	})
	if err != nil {
		return s.failed(ctx, "create access app", err)
	}

	if _, err := s.access.CreateAccessPolicy(ctx, app.ID, application.NewAllowPolicyRequest(include)); err != nil {
		s.logger.WarnContext(ctx, "access policy creation failed",
			"app_id", app.ID,
			"error", err,
		)
		return domain.AccessPartial{AppID: app.ID, PolicyError: errorDetails(err)}
	}

	return domain.AccessCreated{AppID: app.ID}
}

func (s *AccessService) failed(ctx context.Context, step string, err error) domain.AccessResult {
	s.logger.WarnContext(ctx, "access configuration failed",
		"step", step,
		"error", err,
	)
	return domain.AccessFailed{Error: errorDetails(err)}
}

// errorDetails prefers the vendor's own error body over our wrapping.
func errorDetails(err error) any {
	if vendorErr, ok := application.IsVendorError(err); ok {
		return vendorErr.Details()
	}
	return err.Error()
}
