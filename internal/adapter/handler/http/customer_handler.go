package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/staylodge/guest-service/internal/domain/entity"
	errs "github.com/staylodge/guest-service/internal/domain/errors"
	"go.uber.org/zap"
)

// ConversationLister resolves a customer's conversations for the CRM view.
type ConversationLister interface {
	ListConversations(ctx context.Context, customerID string, archived bool) ([]entity.ConversationView, error)
}

type CustomerHandler struct {
	logger *zap.Logger
	lister ConversationLister
}

func NewCustomerHandler(logger *zap.Logger, lister ConversationLister) *CustomerHandler {
	return &CustomerHandler{
		logger: logger,
		lister: lister,
	}
}

// GetCustomerConversations handles GET /api/v1/customers/:id/conversations.
// The optional archived query parameter switches between the active and the
// archived list; it defaults to active.
func (h *CustomerHandler) GetCustomerConversations(c echo.Context) error {
	customerID := c.Param("id")
	if _, err := uuid.Parse(customerID); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Customer ID must be a valid UUID",
			"code":  errs.ErrTypeBadRequest,
		})
	}

	archived := c.QueryParam("archived") == "true"

	views, err := h.lister.ListConversations(c.Request().Context(), customerID, archived)
	if err != nil {
		var claimErr *errs.ClaimError
		if errors.As(err, &claimErr) && claimErr.Type == errs.ErrTypeNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": claimErr.Message,
				"code":  claimErr.Type,
			})
		}
		h.logger.Error("Failed to list customer conversations",
			zap.String("customer_id", customerID),
			zap.Error(err),
		)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to list conversations",
			"code":  errs.ErrTypeInternal,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"conversations": views,
		"count":         len(views),
	})
}
