package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// PostDeliveryJob handles POST /api/v1/orders/:orderId/delivery.
func (s *Server) PostDeliveryJob(c echo.Context, orderID kernel.UUID) error {
	cmd, err := commands.NewPostDeliveryJobCommand(actorFrom(c), orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	d, err := s.handlers.PostDeliveryJob.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, deliveryResponse(d))
}

// GetDelivery handles GET /api/v1/deliveries/:deliveryId.
func (s *Server) GetDelivery(c echo.Context, deliveryID kernel.UUID) error {
	query, err := queries.NewGetDeliveryQuery(deliveryID, actorFrom(c))
	if err != nil {
		return s.writeError(c, err)
	}

	view, err := s.handlers.GetDelivery.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, DeliveryResponse{
		ID:              view.ID,
		OrderID:         view.OrderID,
		Status:          view.Status.String(),
		AssignedActorID: view.AssignedActorID,
		OrderStatus:     view.OrderStatus.String(),
		CreatedAt:       view.CreatedAt,
		UpdatedAt:       view.UpdatedAt,
	})
}

// AssignDelivery handles POST /api/v1/deliveries/:deliveryId/assignment.
// The caller claims the job for itself.
func (s *Server) AssignDelivery(c echo.Context, deliveryID kernel.UUID) error {
	cmd, err := commands.NewAssignDeliveryCommand(deliveryID, actorFrom(c))
	if err != nil {
		return s.writeError(c, err)
	}

	d, err := s.handlers.AssignDelivery.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, deliveryResponse(d))
}

// AdvanceDelivery handles POST /api/v1/deliveries/:deliveryId/status.
func (s *Server) AdvanceDelivery(c echo.Context, deliveryID kernel.UUID) error {
	var req AdvanceDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "invalid request body")
	}

	target, err := delivery.ParseStatus(req.Status)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewAdvanceDeliveryCommand(deliveryID, actorFrom(c).ID(), target)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.handlers.AdvanceDelivery.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	resp := deliveryResponse(result.Delivery)
	if result.Order != nil {
		resp.OrderStatus = result.Order.Status().String()
	}
	return c.JSON(http.StatusOK, resp)
}
