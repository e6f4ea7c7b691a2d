package http

import (
	"encoding/json"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// apiDoc serves the OpenAPI document to the Swagger UI.
type apiDoc struct {
	doc string
}

func (d apiDoc) ReadDoc() string {
	return d.doc
}

var registerDocOnce sync.Once

// registerSwaggerDoc publishes swagger under the default swag instance name that
// echo-swagger reads. swag allows a single registration per process.
func registerSwaggerDoc(swagger *openapi3.T) error {
	doc, err := json.Marshal(swagger)
	if err != nil {
		return err
	}

	registerDocOnce.Do(func() {
		swag.Register(swag.Name, apiDoc{doc: string(doc)})
	})
	return nil
}
