package e2e

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/DanielPopoola/pages-deploy-gateway/internal/application"
)

const (
	testAccountID = "acc-e2e"
	testToken     = "e2e-token"
)

// FakeCloudflare is an in-memory stand-in for the v4 API covering the
// endpoints the gateway calls.
type FakeCloudflare struct {
	mu       sync.Mutex
	server   *httptest.Server
	projects map[string]bool
	apps     []application.AccessApp
	policies map[string][]application.AccessPolicy
	uploads  map[string]int
	calls    []string
	nextID   int

	// FailProjectCreation makes project creation answer 400.
	FailProjectCreation bool
	// FailPolicyWrites makes policy create/update answer 500.
	FailPolicyWrites bool
	// AppsPerPage controls access app list pagination.
	AppsPerPage int
}

func NewFakeCloudflare(t *testing.T) *FakeCloudflare {
	f := &FakeCloudflare{
		projects:    make(map[string]bool),
		policies:    make(map[string][]application.AccessPolicy),
		uploads:     make(map[string]int),
		AppsPerPage: 2,
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.server.Close)
	return f
}

func (f *FakeCloudflare) URL() string {
	return f.server.URL
}

func (f *FakeCloudflare) AddProject(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.projects[name] = true
}

func (f *FakeCloudflare) AddAccessApp(app application.AccessApp, policies ...application.AccessPolicy) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.apps = append(f.apps, app)
	f.policies[app.ID] = policies
}

func (f *FakeCloudflare) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *FakeCloudflare) Uploads(project string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.uploads[project]
}

func (f *FakeCloudflare) Policies(appID string) []application.AccessPolicy {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]application.AccessPolicy(nil), f.policies[appID]...)
}

func (f *FakeCloudflare) Apps() []application.AccessApp {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]application.AccessApp(nil), f.apps...)
}

func (f *FakeCloudflare) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if r.Header.Get("Authorization") != "Bearer "+testToken {
		writeEnvelope(w, http.StatusForbidden, nil, 10000, "Authentication error")
		return
	}

	prefix := "/accounts/" + testAccountID
	if !strings.HasPrefix(r.URL.Path, prefix) {
		writeEnvelope(w, http.StatusNotFound, nil, 7003, "Could not route")
		return
	}
	parts := strings.Split(strings.Trim(strings.TrimPrefix(r.URL.Path, prefix), "/"), "/")
	f.calls = append(f.calls, r.Method+" "+strings.Join(parts, "/"))

	switch {
	case len(parts) == 2 && parts[0] == "pages" && parts[1] == "projects" && r.Method == http.MethodPost:
		f.createProject(w, r)
	case len(parts) == 4 && parts[0] == "pages" && parts[3] == "deployments" && r.Method == http.MethodPost:
		f.createDeployment(w, r, parts[2])
	case len(parts) == 2 && parts[0] == "access" && parts[1] == "apps" && r.Method == http.MethodGet:
		f.listApps(w, r)
	case len(parts) == 2 && parts[0] == "access" && parts[1] == "apps" && r.Method == http.MethodPost:
		f.createApp(w, r)
	case len(parts) == 4 && parts[3] == "policies" && r.Method == http.MethodGet:
		writeEnvelope(w, http.StatusOK, f.policies[parts[2]], 0, "")
	case len(parts) == 4 && parts[3] == "policies" && r.Method == http.MethodPost:
		f.writePolicy(w, r, parts[2], "")
	case len(parts) == 5 && parts[3] == "policies" && r.Method == http.MethodPut:
		f.writePolicy(w, r, parts[2], parts[4])
	default:
		writeEnvelope(w, http.StatusNotFound, nil, 7003, "Could not route")
	}
}

func (f *FakeCloudflare) createProject(w http.ResponseWriter, r *http.Request) {
	var req application.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, http.StatusBadRequest, nil, 8000000, "bad json")
		return
	}
	if f.FailProjectCreation {
		writeEnvelope(w, http.StatusBadRequest, nil, 8000002, "project name is invalid")
		return
	}
	f.projects[req.Name] = true
	writeEnvelope(w, http.StatusOK, application.Project{
		ID:               f.id("proj"),
		Name:             req.Name,
		Subdomain:        req.Name + ".pages.dev",
		ProductionBranch: req.ProductionBranch,
	}, 0, "")
}

func (f *FakeCloudflare) createDeployment(w http.ResponseWriter, r *http.Request, project string) {
	if !f.projects[project] {
		writeEnvelope(w, http.StatusNotFound, nil, 8000007, "Project not found. The specified project name does not match any of your existing projects.")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeEnvelope(w, http.StatusBadRequest, nil, 8000096, "missing file")
		return
	}
	defer file.Close()
	size, _ := io.Copy(io.Discard, file)

	f.uploads[project]++
	writeEnvelope(w, http.StatusOK, map[string]any{
		"id":           f.id("dep"),
		"project_name": project,
		"url":          fmt.Sprintf("https://%s.%s.pages.dev", f.id("hash"), project),
		"size":         size,
	}, 0, "")
}

func (f *FakeCloudflare) listApps(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	perPage := f.AppsPerPage

	totalPages := (len(f.apps) + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}
	start := min((page-1)*perPage, len(f.apps))
	end := min(start+perPage, len(f.apps))

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"errors":   []any{},
		"messages": []any{},
		"result":   f.apps[start:end],
		"result_info": map[string]int{
			"page":        page,
			"per_page":    perPage,
			"count":       end - start,
			"total_count": len(f.apps),
			"total_pages": totalPages,
		},
	})
}

func (f *FakeCloudflare) createApp(w http.ResponseWriter, r *http.Request) {
	var req application.CreateAccessAppRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, http.StatusBadRequest, nil, 12000, "bad json")
		return
	}
	app := application.AccessApp{ID: f.id("app"), Name: req.Name, Domain: req.Domain, Type: req.Type}
	f.apps = append(f.apps, app)
	writeEnvelope(w, http.StatusOK, app, 0, "")
}

func (f *FakeCloudflare) writePolicy(w http.ResponseWriter, r *http.Request, appID, policyID string) {
	if f.FailPolicyWrites {
		writeEnvelope(w, http.StatusInternalServerError, nil, 12001, "policy store unavailable")
		return
	}

	var req application.AccessPolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, http.StatusBadRequest, nil, 12000, "bad json")
		return
	}

	policy := application.AccessPolicy{ID: policyID, Name: req.Name, Decision: req.Decision, Include: req.Include}
	if policyID == "" {
		policy.ID = f.id("pol")
		f.policies[appID] = append(f.policies[appID], policy)
	} else {
		for i := range f.policies[appID] {
			if f.policies[appID][i].ID == policyID {
				f.policies[appID][i] = policy
			}
		}
	}
	writeEnvelope(w, http.StatusOK, policy, 0, "")
}

func (f *FakeCloudflare) id(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%d", prefix, f.nextID)
}

func writeEnvelope(w http.ResponseWriter, status int, result any, code int, message string) {
	body := map[string]any{
		"success":  status < 300,
		"errors":   []any{},
		"messages": []any{},
		"result":   result,
	}
	if code != 0 {
		body["errors"] = []map[string]any{{"code": code, "message": message}}
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
