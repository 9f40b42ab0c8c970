package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hsolorzn/finve_backend/internal/apperrors"
	portssvc "github.com/hsolorzn/finve_backend/internal/core/ports/services"
	"github.com/hsolorzn/finve_backend/internal/dto"
	"github.com/hsolorzn/finve_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// recurringHandler handles HTTP requests related to recurring transaction
// templates.
type recurringHandler struct {
	recurringService portssvc.RecurringSvcFacade
}

func newRecurringHandler(rs portssvc.RecurringSvcFacade) *recurringHandler {
	return &recurringHandler{recurringService: rs}
}

// RegisterRecurringRoutes registers routes related to recurring templates.
func RegisterRecurringRoutes(rg *gin.RouterGroup, recurringService portssvc.RecurringSvcFacade) {
	h := newRecurringHandler(recurringService)

	recurring := rg.Group("/recurring-transactions")
	{
		recurring.GET("", h.listRecurring)
		recurring.POST("", h.createRecurring)
		recurring.PUT("/:recurringID", h.updateRecurring)
		recurring.DELETE("/:recurringID", h.deleteRecurring)
	}
}

// listRecurring godoc
// @Summary List recurring transaction templates
// @Tags recurring-transactions
// @Produce json
// @Success 200 {array} dto.RecurringResponse
// @Security BearerAuth
// @Router /recurring-transactions [get]
func (h *recurringHandler) listRecurring(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	recs, err := h.recurringService.ListRecurring(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list recurring transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list recurring transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRecurringResponse(recs))
}

// createRecurring godoc
// @Summary Create a recurring transaction template
// @Tags recurring-transactions
// @Accept json
// @Produce json
// @Param recurring body dto.CreateRecurringRequest true "Template details"
// @Success 201 {object} dto.RecurringResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /recurring-transactions [post]
func (h *recurringHandler) createRecurring(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRecurring", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, validationErrorResponse(err))
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rec, err := h.recurringService.CreateRecurring(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating recurring transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, validationErrorResponse(err))
		} else {
			logger.Error("Failed to create recurring transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recurring transaction"})
		}
		return
	}

	logger.Info("Recurring transaction created", slog.String("recurring_id", rec.RecurringID))
	c.JSON(http.StatusCreated, dto.ToRecurringResponse(rec))
}

// updateRecurring godoc
// @Summary Update a recurring transaction template
// @Tags recurring-transactions
// @Accept json
// @Produce json
// @Param recurringID path string true "Template ID"
// @Param recurring body dto.UpdateRecurringRequest true "Fields to update"
// @Success 200 {object} dto.RecurringResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Template not found"
// @Security BearerAuth
// @Router /recurring-transactions/{recurringID} [put]
func (h *recurringHandler) updateRecurring(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recurringID := c.Param("recurringID")

	var req dto.UpdateRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateRecurring", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, validationErrorResponse(err))
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rec, err := h.recurringService.UpdateRecurring(c.Request.Context(), recurringID, userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recurring transaction not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating recurring transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, validationErrorResponse(err))
		} else {
			logger.Error("Failed to update recurring transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recurring transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRecurringResponse(rec))
}

// deleteRecurring godoc
// @Summary Delete a recurring transaction template
// @Description Physically removes the template; templates are not part of the sync protocol
// @Tags recurring-transactions
// @Param recurringID path string true "Template ID"
// @Success 204
// @Failure 404 {object} map[string]string "Template not found"
// @Security BearerAuth
// @Router /recurring-transactions/{recurringID} [delete]
func (h *recurringHandler) deleteRecurring(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recurringID := c.Param("recurringID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.recurringService.DeleteRecurring(c.Request.Context(), recurringID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recurring transaction not found"})
		} else {
			logger.Error("Failed to delete recurring transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recurring transaction"})
		}
		return
	}

	logger.Info("Recurring transaction deleted", slog.String("recurring_id", recurringID))
	c.Status(http.StatusNoContent)
}
