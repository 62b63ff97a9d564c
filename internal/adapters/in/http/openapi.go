package http

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// docInstance is the swag registry name the Swagger UI reads from.
const docInstance = "marketplace"

//go:embed openapi.yaml
var openAPISpec []byte

var registerDoc sync.Once

// LoadAPIDocument parses and validates the embedded OpenAPI document.
func LoadAPIDocument(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(openAPISpec)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// apiDoc serves the document to the Swagger UI as JSON.
type apiDoc struct {
	json string
}

func (d apiDoc) ReadDoc() string { return d.json }

// mountSwagger exposes the document at /swagger/doc.json and the UI at
// /swagger/index.html. The swag registry is process wide, so the document is
// registered once.
func mountSwagger(e *echo.Echo, doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode openapi document: %w", err)
	}

	registerDoc.Do(func() {
		swag.Register(docInstance, apiDoc{json: string(raw)})
	})

	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(docInstance)))
	return nil
}

// RequestValidator checks requests against the operation they match in doc.
// Requests that match no operation are left to the router. Bearer tokens are
// verified by Authenticator, so security requirements always pass here.
func RequestValidator(doc *openapi3.T, onError func(echo.Context, error) error) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			err = openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			})
			if err != nil {
				return onError(c, err)
			}
			return next(c)
		}
	}, nil
}
