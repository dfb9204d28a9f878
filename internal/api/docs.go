// Package api carries the description of the public HTTP contract and
// serves it on the admin listener.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var rawSpec []byte

const docName = "pages-gateway"

var (
	loadOnce sync.Once
	specJSON []byte
	loadErr  error
)

// LoadSpec parses and validates the embedded document.
func LoadSpec(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("loading openapi document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validating openapi document: %w", err)
	}
	return doc, nil
}

// SpecJSON returns the validated document rendered as JSON.
func SpecJSON() ([]byte, error) {
	loadOnce.Do(func() {
		doc, err := LoadSpec(context.Background())
		if err != nil {
			loadErr = err
			return
		}
		specJSON, loadErr = doc.MarshalJSON()
	})
	return specJSON, loadErr
}

type swaggerDoc struct{}

func (swaggerDoc) ReadDoc() string {
	doc, err := SpecJSON()
	if err != nil {
		return ""
	}
	return string(doc)
}

func init() {
	swag.Register(docName, swaggerDoc{})
}

func RegisterDocsRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /openapi.json", func(w http.ResponseWriter, r *http.Request) {
		doc, err := SpecJSON()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(doc)
	})

	mux.HandleFunc("GET /docs/doc.json", func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc(docName)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(doc))
	})
}
