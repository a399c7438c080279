package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	errs "github.com/staylodge/guest-service/internal/domain/errors"
	"github.com/staylodge/guest-service/internal/usecase"
	"go.uber.org/zap"
)

// PromotionClaimer runs the promotion-claim flow.
type PromotionClaimer interface {
	Claim(ctx context.Context, params usecase.ClaimParams) (*usecase.ClaimResult, error)
}

// ClaimRequest is the payload of POST /promotions/claim.
type ClaimRequest struct {
	PromotionID string `json:"promotion_id" validate:"required,uuid4"`
	PropertyID  string `json:"property_id" validate:"required,uuid4"`
	GuestName   string `json:"guest_name" validate:"required,max=200"`
	GuestEmail  string `json:"guest_email" validate:"required,email"`
	GuestPhone  string `json:"guest_phone" validate:"omitempty,max=30"`
}

type ClaimHandler struct {
	logger    *zap.Logger
	claimer   PromotionClaimer
	validator *validator.Validate
}

func NewClaimHandler(logger *zap.Logger, claimer PromotionClaimer) *ClaimHandler {
	return &ClaimHandler{
		logger:    logger,
		claimer:   claimer,
		validator: validator.New(),
	}
}

// ClaimPromotion handles POST /api/v1/promotions/claim. The endpoint is
// public: claimants do not have an account yet.
func (h *ClaimHandler) ClaimPromotion(c echo.Context) error {
	var req ClaimRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request body",
			"code":  errs.ErrTypeBadRequest,
		})
	}

	if err := h.validator.Struct(&req); err != nil {
		h.logger.Warn("Claim request failed validation", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid claim request: " + err.Error(),
			"code":  errs.ErrTypeValidation,
		})
	}

	result, err := h.claimer.Claim(c.Request().Context(), usecase.ClaimParams{
		PromotionID: req.PromotionID,
		PropertyID:  req.PropertyID,
		GuestName:   req.GuestName,
		GuestEmail:  req.GuestEmail,
		GuestPhone:  req.GuestPhone,
	})
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// writeError maps the domain error taxonomy onto HTTP statuses. Internal
// causes are logged but never leaked in the response body.
func (h *ClaimHandler) writeError(c echo.Context, err error) error {
	var claimErr *errs.ClaimError
	if !errors.As(err, &claimErr) {
		h.logger.Error("Claim failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Internal server error",
			"code":  errs.ErrTypeInternal,
		})
	}

	switch claimErr.Type {
	case errs.ErrTypeNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": claimErr.Message,
			"code":  claimErr.Type,
		})
	case errs.ErrTypeBadRequest, errs.ErrTypeValidation:
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": claimErr.Message,
			"code":  claimErr.Type,
		})
	default:
		h.logger.Error("Claim failed",
			zap.String("type", claimErr.Type),
			zap.Error(err),
		)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Internal server error",
			"code":  errs.ErrTypeInternal,
		})
	}
}
