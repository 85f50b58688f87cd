// Package api holds the HTTP contract of the service: the OpenAPI document,
// the request and response bodies, and the echo routing that binds path and
// query parameters before calling a ServerInterface.
package api

import (
	_ "embed"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var rawSpec []byte

var (
	specOnce sync.Once
	spec     *openapi3.T
	specErr  error
)

// GetSwagger returns the parsed and validated OpenAPI document. The document
// is loaded once; callers must not modify it.
func GetSwagger() (*openapi3.T, error) {
	specOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(rawSpec)
		if err != nil {
			specErr = err
			return
		}
		if err = doc.Validate(loader.Context); err != nil {
			specErr = err
			return
		}
		spec = doc
	})
	return spec, specErr
}

// SpecJSON renders the document as JSON.
func SpecJSON() ([]byte, error) {
	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	return doc.MarshalJSON()
}
