package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateDispute handles POST /api/v1/orders/:orderId/disputes.
func (s *Server) CreateDispute(c echo.Context, orderID kernel.UUID) error {
	var req CreateDisputeRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewCreateDisputeCommand(actorFrom(c).ID(), orderID, req.Reason, req.Description)
	if err != nil {
		return s.writeError(c, err)
	}

	d, err := s.handlers.CreateDispute.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, disputeResponse(d))
}

// ListMyDisputes handles GET /api/v1/me/disputes.
func (s *Server) ListMyDisputes(c echo.Context) error {
	query, err := queries.NewListMyDisputesQuery(actorFrom(c).ID())
	if err != nil {
		return s.writeError(c, err)
	}

	views, err := s.handlers.ListMyDisputes.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	resp := make([]DisputeResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, DisputeResponse{
			ID:          v.ID,
			OrderID:     v.OrderID,
			Reason:      v.Reason,
			Description: v.Description,
			Resolution:  v.Resolution,
			Status:      v.Status.String(),
			ResolvedAt:  v.ResolvedAt,
			CreatedAt:   v.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// ResolveDispute handles POST /api/v1/disputes/:disputeId/resolution.
func (s *Server) ResolveDispute(c echo.Context, disputeID kernel.UUID) error {
	var req ResolveDisputeRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewResolveDisputeCommand(actorFrom(c), disputeID, req.Resolution)
	if err != nil {
		return s.writeError(c, err)
	}

	d, err := s.handlers.ResolveDispute.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, disputeResponse(d))
}
