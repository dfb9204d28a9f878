package cloudflare

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/DanielPopoola/pages-deploy-gateway/internal/application"
)

const (
	OutcomeSuccess     = "success"
	OutcomeVendorError = "vendor_error"
	OutcomeError       = "error"
)

type CallRecorder interface {
	RecordVendorCall(operation, outcome string)
}

// InstrumentedClient counts and logs every vendor call made through inner.
// It adds no retries; the create-then-retry sequence belongs to the caller.
type InstrumentedClient struct {
	inner    application.VendorClient
	recorder CallRecorder
	logger   *slog.Logger
}

func NewInstrumentedClient(inner application.VendorClient, recorder CallRecorder, logger *slog.Logger) application.VendorClient {
	return &InstrumentedClient{
		inner:    inner,
		recorder: recorder,
		logger:   logger,
	}
}

func (c *InstrumentedClient) CreateDeployment(ctx context.Context, projectName string, payload []byte) (json.RawMessage, error) {
	return observe(c, ctx, OpCreateDeployment, func(ctx context.Context) (json.RawMessage, error) {
		return c.inner.CreateDeployment(ctx, projectName, payload)
	}, "project", projectName, "bytes", len(payload))
}

func (c *InstrumentedClient) CreateProject(ctx context.Context, req application.CreateProjectRequest) (*application.Project, error) {
	return observe(c, ctx, OpCreateProject, func(ctx context.Context) (*application.Project, error) {
		return c.inner.CreateProject(ctx, req)
	}, "project", req.Name)
}

func (c *InstrumentedClient) ListAccessApps(ctx context.Context) ([]application.AccessApp, error) {
	return observe(c, ctx, OpListAccessApps, func(ctx context.Context) ([]application.AccessApp, error) {
		return c.inner.ListAccessApps(ctx)
	})
}

func (c *InstrumentedClient) CreateAccessApp(ctx context.Context, req application.CreateAccessAppRequest) (*application.AccessApp, error) {
	return observe(c, ctx, OpCreateAccessApp, func(ctx context.Context) (*application.AccessApp, error) {
		return c.inner.CreateAccessApp(ctx, req)
	}, "domain", req.Domain)
}

func (c *InstrumentedClient) ListAccessPolicies(ctx context.Context, appID string) ([]application.AccessPolicy, error) {
	return observe(c, ctx, OpListAccessPolicies, func(ctx context.Context) ([]application.AccessPolicy, error) {
		return c.inner.ListAccessPolicies(ctx, appID)
	}, "app_id", appID)
}

func (c *InstrumentedClient) CreateAccessPolicy(ctx context.Context, appID string, req application.AccessPolicyRequest) (*application.AccessPolicy, error) {
	return observe(c, ctx, OpCreateAccessPolicy, func(ctx context.Context) (*application.AccessPolicy, error) {
		return c.inner.CreateAccessPolicy(ctx, appID, req)
	}, "app_id", appID, "rules", len(req.Include))
}

func (c *InstrumentedClient) UpdateAccessPolicy(ctx context.Context, appID, policyID string, req application.AccessPolicyRequest) (*application.AccessPolicy, error) {
	return observe(c, ctx, OpUpdateAccessPolicy, func(ctx context.Context) (*application.AccessPolicy, error) {
		return c.inner.UpdateAccessPolicy(ctx, appID, policyID, req)
	}, "app_id", appID, "policy_id", policyID, "rules", len(req.Include))
}

func observe[T any](c *InstrumentedClient, ctx context.Context, operation string, call func(ctx context.Context) (T, error), attrs ...any) (T, error) {
	start := time.Now()
	result, err := call(ctx)
	outcome := callOutcome(err)
	c.recorder.RecordVendorCall(operation, outcome)

	attrs = append(attrs,
		"operation", operation,
		"outcome", outcome,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if err != nil {
		if vendorErr, ok := application.IsVendorError(err); ok {
			attrs = append(attrs, "status", vendorErr.StatusCode, "vendor_code", vendorErr.FirstCode())
		}
		c.logger.WarnContext(ctx, "vendor call failed", append(attrs, "error", err)...)
		return result, err
	}

	c.logger.DebugContext(ctx, "vendor call", attrs...)
	return result, nil
}

func callOutcome(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	if _, ok := application.IsVendorError(err); ok {
		return OutcomeVendorError
	}
	return OutcomeError
}
