// Package api holds the HTTP contract of the balance service: the embedded
// OpenAPI document, its docs routes, and the JSON request and response types.
package api

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// GetSwagger parses the embedded OpenAPI document. Each call returns a
// fresh copy the caller may modify.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}
	return doc, nil
}
