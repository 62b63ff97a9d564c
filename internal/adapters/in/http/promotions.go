package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/profile"
	"marketplace/internal/core/domain/model/role"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// PromoteUser handles POST /api/v1/users/:userId/promotions.
// Only the account owner may request a promotion for the account.
func (s *Server) PromoteUser(c echo.Context, userID kernel.UUID) error {
	if !actorFrom(c).Is(userID) {
		return s.writeError(c, errs.NewForbiddenError(errs.CodeNotAccountOwner, "promotions can only be requested by the account owner"))
	}

	var req PromotionRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "invalid request body")
	}

	target, err := role.Parse(req.Role)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewPromoteUserCommand(userID, target, req.details())
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.handlers.PromoteUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, promotionResponse(result))
}

// ApplyAsRider handles POST /api/v1/users/:userId/rider-application.
func (s *Server) ApplyAsRider(c echo.Context, userID kernel.UUID) error {
	if !actorFrom(c).Is(userID) {
		return s.writeError(c, errs.NewForbiddenError(errs.CodeNotAccountOwner, "rider applications can only be filed by the account owner"))
	}

	var req RiderDetailsRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewApplyAsRiderCommand(userID, profile.RiderDetails{
		VehiclePlate:  req.VehiclePlate,
		LicenseNumber: req.LicenseNumber,
	})
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.handlers.ApplyAsRider.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, promotionResponse(result))
}

// ProvisionDeliveryAgency handles POST /api/v1/admin/delivery-agencies.
func (s *Server) ProvisionDeliveryAgency(c echo.Context) error {
	var req ProvisionAgencyRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewProvisionDeliveryAgencyCommand(actorFrom(c), req.UserID, req.AgencyName, req.ServiceArea)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.handlers.ProvisionDeliveryAgency.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, promotionResponse(result))
}
