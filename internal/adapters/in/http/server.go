package http

import (
	"context"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handlers lists the use cases exposed over HTTP.
type Handlers struct {
	PromoteUser             commands.PromoteUserCommandHandler
	ApplyAsRider            commands.ApplyAsRiderCommandHandler
	ProvisionDeliveryAgency commands.ProvisionDeliveryAgencyCommandHandler
	PlaceOrder              commands.PlaceOrderCommandHandler
	TransitionOrder         commands.TransitionOrderCommandHandler
	PostDeliveryJob         commands.PostDeliveryJobCommandHandler
	AssignDelivery          commands.AssignDeliveryCommandHandler
	AdvanceDelivery         commands.AdvanceDeliveryCommandHandler
	CreateDispute           commands.CreateDisputeCommandHandler
	ResolveDispute          commands.ResolveDisputeCommandHandler

	GetOrder       queries.GetOrderQueryHandler
	GetDelivery    queries.GetDeliveryQueryHandler
	ListMyDisputes queries.ListMyDisputesQueryHandler
}

// Server implements ServerInterface on top of the application use cases.
type Server struct {
	handlers Handlers
	auth     *Authenticator
	logger   *zap.Logger
}

var _ ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, auth *Authenticator, logger *zap.Logger) *Server {
	return &Server{handlers: handlers, auth: auth, logger: logger}
}

// Register mounts /health, the Swagger UI and the authenticated /api/v1
// operations on e. Requests under /api/v1 are validated against the
// OpenAPI document after authentication.
func (s *Server) Register(e *echo.Echo) error {
	doc, err := LoadAPIDocument(context.Background())
	if err != nil {
		return err
	}
	validator, err := RequestValidator(doc, s.invalidRequest)
	if err != nil {
		return err
	}

	e.Use(RequestLogger(s.logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if err = mountSwagger(e, doc); err != nil {
		return err
	}

	api := e.Group("/api/v1", s.auth.Middleware(), validator)
	RegisterHandlers(api, s, "", s.invalidParam)
	return nil
}

func (s *Server) invalidRequest(c echo.Context, err error) error {
	return s.badRequest(c, err.Error())
}

func (s *Server) invalidParam(c echo.Context, param string, _ error) error {
	return s.badRequest(c, param+" must be a UUID")
}
