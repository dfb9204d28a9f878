package cloudflare

import (
	"encoding/json"

	"github.com/DanielPopoola/pages-deploy-gateway/internal/application"
)

// envelope is the v4 API wrapper around every response.
type envelope[T any] struct {
	Success    bool                            `json:"success"`
	Errors     []application.VendorErrorDetail `json:"errors"`
	Messages   []json.RawMessage               `json:"messages"`
	Result     T                               `json:"result"`
	ResultInfo *ResultInfo                     `json:"result_info,omitempty"`
}

type ResultInfo struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Count      int `json:"count"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}

// errorEnvelope is decoded from non-2xx bodies; only the error list matters.
type errorEnvelope struct {
	Errors []application.VendorErrorDetail `json:"errors"`
}
