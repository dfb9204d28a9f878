package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/pages-deploy-gateway/internal/application"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
	Message string `json:"message,omitempty"`
}

// BuildErrorResponse maps an error to its status code and body. Internal
// failures carry the fault in "message"; everything else carries the
// vendor diagnostics, if any, in "details".
func BuildErrorResponse(err error) (int, ErrorResponse) {
	svcErr, ok := application.IsServiceError(err)
	if !ok {
		svcErr = application.NewInternalError(err)
	}

	if svcErr.Code == application.ErrCodeInternal {
		message := svcErr.Message
		if svcErr.Err != nil {
			message = svcErr.Err.Error()
		}
		return svcErr.HTTPStatus, ErrorResponse{
			Error:   application.MsgInternalError,
			Message: message,
		}
	}

	return svcErr.HTTPStatus, ErrorResponse{
		Error:   svcErr.Message,
		Details: svcErr.Details,
	}
}

// WriteError maps application errors to HTTP responses
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	status, response := BuildErrorResponse(err)
	WriteJSON(w, status, response, logger)
}

func WriteJSON(w http.ResponseWriter, status int, body any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}
