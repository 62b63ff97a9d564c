package http

import (
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists the operations of openapi.yaml under /api/v1.
// Path parameters arrive already bound.
type ServerInterface interface {
	// (POST /users/{userId}/promotions)
	PromoteUser(ctx echo.Context, userID kernel.UUID) error
	// (POST /users/{userId}/rider-application)
	ApplyAsRider(ctx echo.Context, userID kernel.UUID) error
	// (POST /admin/delivery-agencies)
	ProvisionDeliveryAgency(ctx echo.Context) error
	// (POST /orders)
	PlaceOrder(ctx echo.Context) error
	// (GET /orders/{orderId})
	GetOrder(ctx echo.Context, orderID kernel.UUID) error
	// (POST /orders/{orderId}/transitions)
	TransitionOrder(ctx echo.Context, orderID kernel.UUID) error
	// (POST /orders/{orderId}/delivery)
	PostDeliveryJob(ctx echo.Context, orderID kernel.UUID) error
	// (POST /orders/{orderId}/disputes)
	CreateDispute(ctx echo.Context, orderID kernel.UUID) error
	// (GET /deliveries/{deliveryId})
	GetDelivery(ctx echo.Context, deliveryID kernel.UUID) error
	// (POST /deliveries/{deliveryId}/assignment)
	AssignDelivery(ctx echo.Context, deliveryID kernel.UUID) error
	// (POST /deliveries/{deliveryId}/status)
	AdvanceDelivery(ctx echo.Context, deliveryID kernel.UUID) error
	// (GET /me/disputes)
	ListMyDisputes(ctx echo.Context) error
	// (POST /disputes/{disputeId}/resolution)
	ResolveDispute(ctx echo.Context, disputeID kernel.UUID) error
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// ServerInterfaceWrapper binds path parameters and hands the typed values
// to Handler. Malformed parameters go to ParamErrorHandler.
type ServerInterfaceWrapper struct {
	Handler           ServerInterface
	ParamErrorHandler func(ctx echo.Context, param string, err error) error
}

func (w *ServerInterfaceWrapper) bindID(ctx echo.Context, param string) (kernel.UUID, error) {
	var id kernel.UUID
	err := runtime.BindStyledParameterWithOptions("simple", param, ctx.Param(param), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	return id, err
}

// withID adapts a handler taking one path identifier to an echo.HandlerFunc.
func (w *ServerInterfaceWrapper) withID(param string, h func(echo.Context, kernel.UUID) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := w.bindID(ctx, param)
		if err != nil {
			return w.ParamErrorHandler(ctx, param, err)
		}
		return h(ctx, id)
	}
}

// RegisterHandlers mounts every operation of si on router. Paths are
// relative to baseURL.
func RegisterHandlers(router EchoRouter, si ServerInterface, baseURL string, paramError func(echo.Context, string, error) error) {
	w := &ServerInterfaceWrapper{Handler: si, ParamErrorHandler: paramError}

	router.POST(baseURL+"/users/:userId/promotions", w.withID("userId", si.PromoteUser))
	router.POST(baseURL+"/users/:userId/rider-application", w.withID("userId", si.ApplyAsRider))
	router.POST(baseURL+"/admin/delivery-agencies", si.ProvisionDeliveryAgency)

	router.POST(baseURL+"/orders", si.PlaceOrder)
	router.GET(baseURL+"/orders/:orderId", w.withID("orderId", si.GetOrder))
	router.POST(baseURL+"/orders/:orderId/transitions", w.withID("orderId", si.TransitionOrder))
	router.POST(baseURL+"/orders/:orderId/delivery", w.withID("orderId", si.PostDeliveryJob))
	router.POST(baseURL+"/orders/:orderId/disputes", w.withID("orderId", si.CreateDispute))

	router.GET(baseURL+"/deliveries/:deliveryId", w.withID("deliveryId", si.GetDelivery))
	router.POST(baseURL+"/deliveries/:deliveryId/assignment", w.withID("deliveryId", si.AssignDelivery))
	router.POST(baseURL+"/deliveries/:deliveryId/status", w.withID("deliveryId", si.AdvanceDelivery))

	router.GET(baseURL+"/me/disputes", si.ListMyDisputes)
	router.POST(baseURL+"/disputes/:disputeId/resolution", w.withID("disputeId", si.ResolveDispute))
}
