package cloudflare_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielPopoola/pages-deploy-gateway/internal/application"
	"github.com/DanielPopoola/pages-deploy-gateway/internal/config"
	"github.com/DanielPopoola/pages-deploy-gateway/internal/domain"
	"github.com/DanielPopoola/pages-deploy-gateway/internal/infrastructure/cloudflare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *cloudflare.HTTPClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return cloudflare.NewClient(config.CloudflareConfig{
		BaseURL:   server.URL,
		AccountID: "acc-1",
		APIToken:  "secret-token",
		Timeout:   5 * time.Second,
	})
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestCreateDeployment_SendsMultipartFile(t *testing.T) {
	payload := []byte("PK\x03\x04zipbytes")

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/accounts/acc-1/pages/projects/demo/deployments", r.URL.Path)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "application/zip", header.Header.Get("Content-Type"))
		got, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, payload, got)

		writeJSON(w, http.StatusOK, `{"success":true,"errors":[],"messages":[],"result":{"id":"dep-1","url":"https://abc.demo.pages.dev"}}`)
	})

	result, err := client.CreateDeployment(context.Background(), "demo", payload)

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"dep-1","url":"https://abc.demo.pages.dev"}`, string(result))
}

func TestCreateDeployment_VendorErrorKeepsBody(t *testing.T) {
	body := `{"success":false,"errors":[{"code":8000007,"message":"Project not found."}],"messages":[],"result":null}`

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, body)
	})

	_, err := client.CreateDeployment(context.Background(), "demo", []byte("zip"))

	vendorErr, ok := application.IsVendorError(err)
	require.True(t, ok)
	assert.Equal(t, cloudflare.OpCreateDeployment, vendorErr.Operation)
	assert.Equal(t, http.StatusNotFound, vendorErr.StatusCode)
	assert.True(t, vendorErr.IsProjectNotFound())
	assert.JSONEq(t, body, string(vendorErr.Body))
	assert.NotContains(t, err.Error(), "secret-token")
}

func TestCreateDeployment_NonJSONErrorBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "upstream unavailable")
	})

	_, err := client.CreateDeployment(context.Background(), "demo", []byte("zip"))

	vendorErr, ok := application.IsVendorError(err)
	require.True(t, ok)
	assert.Equal(t, 0, vendorErr.FirstCode())
	assert.Equal(t, "upstream unavailable", vendorErr.Details())
}

func TestCreateDeployment_TransportError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{}`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.CreateDeployment(ctx, "demo", []byte("zip"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	_, isVendor := application.IsVendorError(err)
	assert.False(t, isVendor)
}

func TestCreateProject(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/accounts/acc-1/pages/projects", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, map[string]string{"name": "demo", "production_branch": "main"}, req)

		writeJSON(w, http.StatusOK, `{"success":true,"result":{"id":"p-1","name":"demo","subdomain":"demo.pages.dev","production_branch":"main"}}`)
	})

	project, err := client.CreateProject(context.Background(), application.CreateProjectRequest{
		Name:             "demo",
		ProductionBranch: "main",
	})

	require.NoError(t, err)
	assert.Equal(t, "p-1", project.ID)
	assert.Equal(t, "demo.pages.dev", project.Subdomain)
}

func TestListAccessApps_WalksAllPages(t *testing.T) {
	var pages []string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/acc-1/access/apps", r.URL.Path)
		page := r.URL.Query().Get("page")
		pages = append(pages, page)

		switch page {
		case "1":
			writeJSON(w, http.StatusOK, `{"success":true,"result":[{"id":"a1","name":"one","domain":"one.pages.dev"}],"result_info":{"page":1,"per_page":1,"count":1,"total_count":2,"total_pages":2}}`)
		default:
			writeJSON(w, http.StatusOK, `{"success":true,"result":[{"id":"a2","name":"two","domain":"two.pages.dev"}],"result_info":{"page":2,"per_page":1,"count":1,"total_count":2,"total_pages":2}}`)
		}
	})

	apps, err := client.ListAccessApps(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, pages)
	require.Len(t, apps, 2)
	assert.Equal(t, "a1", apps[0].ID)
	assert.Equal(t, "two.pages.dev", apps[1].Domain)
}

func TestListAccessApps_WithoutResultInfo(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		writeJSON(w, http.StatusOK, `{"success":true,"result":[]}`)
	})

	apps, err := client.ListAccessApps(context.Background())

	require.NoError(t, err)
	assert.Empty(t, apps)
	assert.Equal(t, 1, calls)
}

func TestAccessPolicies(t *testing.T) {
	include := []domain.AccessRule{domain.NewEmailRule("a@x.com"), domain.NewEmailDomainRule("corp.com")}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/accounts/acc-1/access/apps/app-1/policies":
			writeJSON(w, http.StatusOK, `{"success":true,"result":[{"id":"pol-1","name":"Allowed Users","decision":"allow","include":[]}]}`)
		case r.Method == http.MethodPost && r.URL.Path == "/accounts/acc-1/access/apps/app-1/policies":
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"name":"Allowed Users","decision":"allow","include":[{"email":{"email":"a@x.com"}},{"email_domain":{"domain":"corp.com"}}]}`, string(body))
			writeJSON(w, http.StatusOK, `{"success":true,"result":{"id":"pol-2"}}`)
		case r.Method == http.MethodPut && r.URL.Path == "/accounts/acc-1/access/apps/app-1/policies/pol-1":
			writeJSON(w, http.StatusOK, `{"success":true,"result":{"id":"pol-1"}}`)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusTeapot)
		}
	})
	ctx := context.Background()

	policies, err := client.ListAccessPolicies(ctx, "app-1")
	require.NoError(t, err)
	require.Len(t, policies, 1)
	assert.Equal(t, "pol-1", policies[0].ID)

	created, err := client.CreateAccessPolicy(ctx, "app-1", application.NewAllowPolicyRequest(include))
	require.NoError(t, err)
	assert.Equal(t, "pol-2", created.ID)

	updated, err := client.UpdateAccessPolicy(ctx, "app-1", "pol-1", application.NewAllowPolicyRequest(include))
	require.NoError(t, err)
	assert.Equal(t, "pol-1", updated.ID)
}

func TestCreateAccessApp(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/acc-1/access/apps", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"demo","domain":"demo.pages.dev","type":"self_hosted","session_duration":"24h","auto_redirect_to_identity":false}`, string(body))
		writeJSON(w, http.StatusOK, `{"success":true,"result":{"id":"app-9","name":"demo","domain":"demo.pages.dev","type":"self_hosted"}}`)
	})

	app, err := client.CreateAccessApp(context.Background(), application.CreateAccessAppRequest{
		Name:            "demo",
		Domain:          "demo.pages.dev",
		Type:            domain.AppTypeSelfHosted,
		SessionDuration: "24h",
	})

	require.NoError(t, err)
	assert.Equal(t, "app-9", app.ID)
}
