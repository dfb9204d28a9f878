package cloudflare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"

	"github.com/DanielPopoola/pages-deploy-gateway/internal/application"
	"github.com/DanielPopoola/pages-deploy-gateway/internal/config"
)

const (
	OpCreateDeployment   = "create_deployment"
	OpCreateProject      = "create_project"
	OpListAccessApps     = "list_access_apps"
	OpCreateAccessApp    = "create_access_app"
	OpListAccessPolicies = "list_access_policies"
	OpCreateAccessPolicy = "create_access_policy"
	OpUpdateAccessPolicy = "update_access_policy"
)

const (
	uploadFieldName   = "file"
	uploadFileName    = "site.zip"
	accessAppsPerPage = 50
)

var _ application.VendorClient = (*HTTPClient)(nil)

type HTTPClient struct {
	baseURL    string
	accountID  string
	apiToken   string
	httpClient *http.Client
}

func NewClient(cfg config.CloudflareConfig) *HTTPClient {
	return &HTTPClient{
		baseURL:   cfg.BaseURL,
		accountID: cfg.AccountID,
		apiToken:  cfg.APIToken,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (c *HTTPClient) accountURL(format string, args ...any) string {
	return fmt.Sprintf("%s/accounts/%s", c.baseURL, url.PathEscape(c.accountID)) + fmt.Sprintf(format, args...)
}

func (c *HTTPClient) CreateDeployment(ctx context.Context, projectName string, payload []byte) (json.RawMessage, error) {
	body, contentType, err := multipartUpload(payload)
	if err != nil {
		return nil, err
	}

	endpoint := c.accountURL("/pages/projects/%s/deployments", url.PathEscape(projectName))
	env, err := send[json.RawMessage](c, ctx, OpCreateDeployment, http.MethodPost, endpoint, body, contentType)
	if err != nil {
		return nil, err
	}
	return env.Result, nil
}

func (c *HTTPClient) CreateProject(ctx context.Context, req application.CreateProjectRequest) (*application.Project, error) {
	endpoint := c.accountURL("/pages/projects")
	return sendJSON[application.CreateProjectRequest, application.Project](c, ctx, OpCreateProject, http.MethodPost, endpoint, &req)
}

func (c *HTTPClient) ListAccessApps(ctx context.Context) ([]application.AccessApp, error) {
	var apps []application.AccessApp

	for page := 1; ; page++ {
		query := url.Values{}
		query.Set("page", strconv.Itoa(page))
		query.Set("per_page", strconv.Itoa(accessAppsPerPage))
		endpoint := c.accountURL("/access/apps") + "?" + query.Encode()

		env, err := send[[]application.AccessApp](c, ctx, OpListAccessApps, http.MethodGet, endpoint, nil, "")
		if err != nil {
			return nil, err
		}
		apps = append(apps, env.Result...)

		if env.ResultInfo == nil || page >= env.ResultInfo.TotalPages {
			return apps, nil
		}
	}
}

func (c *HTTPClient) CreateAccessApp(ctx context.Context, req application.CreateAccessAppRequest) (*application.AccessApp, error) {
	endpoint := c.accountURL("/access/apps")
	return sendJSON[application.CreateAccessAppRequest, application.AccessApp](c, ctx, OpCreateAccessApp, http.MethodPost, endpoint, &req)
}

func (c *HTTPClient) ListAccessPolicies(ctx context.Context, appID string) ([]application.AccessPolicy, error) {
	endpoint := c.accountURL("/access/apps/%s/policies", url.PathEscape(appID))
	env, err := send[[]application.AccessPolicy](c, ctx, OpListAccessPolicies, http.MethodGet, endpoint, nil, "")
	if err != nil {
		return nil, err
	}
	return env.Result, nil
}

func (c *HTTPClient) CreateAccessPolicy(ctx context.Context, appID string, req application.AccessPolicyRequest) (*application.AccessPolicy, error) {
	endpoint := c.accountURL("/access/apps/%s/policies", url.PathEscape(appID))
	return sendJSON[application.AccessPolicyRequest, application.AccessPolicy](c, ctx, OpCreateAccessPolicy, http.MethodPost, endpoint, &req)
}

func (c *HTTPClient) UpdateAccessPolicy(ctx context.Context, appID, policyID string, req application.AccessPolicyRequest) (*application.AccessPolicy, error) {
	endpoint := c.accountURL("/access/apps/%s/policies/%s", url.PathEscape(appID), url.PathEscape(policyID))
	return sendJSON[application.AccessPolicyRequest, application.AccessPolicy](c, ctx, OpUpdateAccessPolicy, http.MethodPut, endpoint, &req)
}

// multipartUpload wraps the bundle as the single "file" part of a form.
func multipartUpload(payload []byte) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, uploadFieldName, uploadFileName))
	header.Set("Content-Type", "application/zip")

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("error creating multipart part: %w", err)
	}
	if _, err := part.Write(payload); err != nil {
		return nil, "", fmt.Errorf("error writing multipart part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("error closing multipart writer: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}

func sendJSON[Req any, Resp any](c *HTTPClient, ctx context.Context, operation, method, endpoint string, reqBody *Req) (*Resp, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("error marshalling json: %w", err)
	}

	env, err := send[Resp](c, ctx, operation, method, endpoint, bytes.NewReader(jsonData), "application/json")
	if err != nil {
		return nil, err
	}
	return &env.Result, nil
}

func send[Resp any](c *HTTPClient, ctx context.Context, operation, method, endpoint string, body io.Reader, contentType string) (*envelope[Resp], error) {
	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.apiToken)
	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making %s request: %w", operation, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading %s response: %w", operation, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		vendorErr := &application.VendorError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Body:       respBody,
		}
		var errEnv errorEnvelope
		if err := json.Unmarshal(respBody, &errEnv); err == nil {
			vendorErr.Errors = errEnv.Errors
		}
		return nil, vendorErr
	}

	var env envelope[Resp]
	if err := json.Unmarshal(respBody, &env); err != nil {
		return nil, fmt.Errorf("error decoding %s response: %w", operation, err)
	}

	return &env, nil
}
