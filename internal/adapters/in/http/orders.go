package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(c echo.Context) error {
	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "invalid request body")
	}

	pm, err := order.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return s.writeError(c, err)
	}

	items := make([]commands.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewPlaceOrderCommand(actorFrom(c), req.VendorID, items, pm)
	if err != nil {
		return s.writeError(c, err)
	}

	o, err := s.handlers.PlaceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, orderResponse(o))
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(c echo.Context, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID, actorFrom(c))
	if err != nil {
		return s.writeError(c, err)
	}

	view, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, orderViewResponse(view))
}

// TransitionOrder handles POST /api/v1/orders/:orderId/transitions.
func (s *Server) TransitionOrder(c echo.Context, orderID kernel.UUID) error {
	var req TransitionRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "invalid request body")
	}

	target, err := order.ParseStatus(req.Status)
	if err != nil {
		return s.writeError(c, err)
	}

	var pm *order.PaymentMethod
	if req.PaymentMethod != nil {
		parsed, err := order.ParsePaymentMethod(*req.PaymentMethod)
		if err != nil {
			return s.writeError(c, err)
		}
		pm = &parsed
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, actorFrom(c), target, pm)
	if err != nil {
		return s.writeError(c, err)
	}

	o, err := s.handlers.TransitionOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, orderResponse(o))
}
