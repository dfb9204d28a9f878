package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/DanielPopoola/pages-deploy-gateway/internal/application"
	"github.com/DanielPopoola/pages-deploy-gateway/internal/domain"
	"github.com/DanielPopoola/pages-deploy-gateway/internal/interfaces/rest"
	"github.com/oapi-codegen/runtime"
)

const (
	HeaderProjectName = "X-Project-Name"
	HeaderPassword    = "X-Password"
	HeaderEmails      = "X-Emails"
	HeaderDomain      = "X-Domain"
)

type Publisher interface {
	Publish(ctx context.Context, req *domain.DeploymentRequest) (*domain.DeploymentResult, error)
}

// DeployParams are the optional request headers.
type DeployParams struct {
	ProjectName string
	Password    string
	Emails      string
	Domain      string
}

// DeployHandler serves every path of the public listener: OPTIONS is a
// preflight, POST publishes the body, anything else is rejected.
type DeployHandler struct {
	publisher      Publisher
	maxUploadBytes int64
	now            func() time.Time
	logger         *slog.Logger
}

func NewDeployHandler(publisher Publisher, maxUploadBytes int64, logger *slog.Logger) *DeployHandler {
	return &DeployHandler{
		publisher:      publisher,
		maxUploadBytes: maxUploadBytes,
		now:            time.Now,
		logger:         logger,
	}
}

// WithClock replaces the clock used for generated project names.
func (h *DeployHandler) WithClock(now func() time.Time) *DeployHandler {
	h.now = now
	return h
}

func (h *DeployHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusNoContent)
	case http.MethodPost:
		h.HandleDeploy(w, r)
	default:
		rest.WriteError(w, application.NewMethodNotAllowedError(), h.logger)
	}
}

func (h *DeployHandler) HandleDeploy(w http.ResponseWriter, r *http.Request) {
	params, err := bindDeployParams(r.Header)
	if err != nil {
		rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}

	payload, err := h.readPayload(w, r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	req := domain.NewDeploymentRequest(
		params.ProjectName,
		params.Password,
		params.Emails,
		params.Domain,
		payload,
		h.now(),
	)

	result, err := h.publisher.Publish(r.Context(), req)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.ToDeploymentResponse(result), h.logger)
}

func (h *DeployHandler) readPayload(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, application.NewNoFileUploadedError()
	}

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxUploadBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, application.NewFileTooLargeError(err)
		}
		return nil, application.NewInternalError(fmt.Errorf("reading upload: %w", err))
	}

	if len(payload) == 0 {
		return nil, application.NewNoFileUploadedError()
	}
	return payload, nil
}

func bindDeployParams(header http.Header) (DeployParams, error) {
	var params DeployParams

	bindings := []struct {
		name string
		dest *string
	}{
		{HeaderProjectName, &params.ProjectName},
		{HeaderPassword, &params.Password},
		{HeaderEmails, &params.Emails},
		{HeaderDomain, &params.Domain},
	}

	for _, b := range bindings {
		valueList, found := header[http.CanonicalHeaderKey(b.name)]
		if !found {
			continue
		}
		if n := len(valueList); n != 1 {
			return DeployParams{}, fmt.Errorf("expected one value for %s, got %d", b.name, n)
		}

		err := runtime.BindStyledParameterWithOptions("simple", b.name, valueList[0], b.dest, runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationHeader,
			Explode:       false,
			Required:      false,
		})
		if err != nil {
			return DeployParams{}, fmt.Errorf("invalid format for parameter %s: %w", b.name, err)
		}
	}

	return params, nil
}
