package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PromotionHandlerParams holds dependencies for PromotionHandler, injected by Fx.
type PromotionHandlerParams struct {
	fx.In

	PromotionUC usecase.PromotionUsecase
	Logger      *slog.Logger
}

// PromotionHandler serves boost plans and boost requests.
type PromotionHandler struct {
	promotionUC usecase.PromotionUsecase
	logger      *slog.Logger
}

// NewPromotionHandler is the constructor for PromotionHandler
func NewPromotionHandler(params PromotionHandlerParams) *PromotionHandler {
	return &PromotionHandler{
		promotionUC: params.PromotionUC,
		logger:      params.Logger,
	}
}

// ListBoostPlans returns the purchasable boost plans.
func (h *PromotionHandler) ListBoostPlans(c echo.Context) error {
	plans, err := h.promotionUC.ListBoostPlans(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, plans)
}

// RequestBoost files a boost request for one of the calling vendor's products.
func (h *PromotionHandler) RequestBoost(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Actor not found in context")
	}

	vendor, ok := actor.(entity.VendorActor)
	if !ok {
		return response.Forbidden(c, "FORBIDDEN", "Permission denied: require 'vendor' role")
	}

	var req usecase.RequestBoostInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid boost request input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	request, err := h.promotionUC.RequestBoost(c.Request().Context(), vendor, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, request)
}

// ApproveBoostRequest approves a pending boost request. Admin only.
func (h *PromotionHandler) ApproveBoostRequest(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid boost request ID")
	}

	request, err := h.promotionUC.ApproveBoostRequest(c.Request().Context(), requestID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request)
}

// RejectBoostRequest rejects a pending boost request. Admin only.
func (h *PromotionHandler) RejectBoostRequest(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid boost request ID")
	}

	request, err := h.promotionUC.RejectBoostRequest(c.Request().Context(), requestID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request)
}
