package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/hsolorzn/finve_backend/internal/apperrors"
	portssvc "github.com/hsolorzn/finve_backend/internal/core/ports/services"
	"github.com/hsolorzn/finve_backend/internal/dto"
	"github.com/hsolorzn/finve_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// missionHandler handles HTTP requests related to missions.
type missionHandler struct {
	missionService portssvc.MissionSvcFacade
}

func newMissionHandler(ms portssvc.MissionSvcFacade) *missionHandler {
	return &missionHandler{missionService: ms}
}

// RegisterMissionRoutes registers routes related to missions.
func RegisterMissionRoutes(rg *gin.RouterGroup, missionService portssvc.MissionSvcFacade) {
	h := newMissionHandler(missionService)

	missions := rg.Group("/missions")
	{
		missions.GET("", h.syncMissions)
		missions.POST("", h.createMission)
		missions.PUT("/:missionID", h.updateMission)
		missions.DELETE("/:missionID", h.softDeleteMission)
	}
}

// syncMissions godoc
// @Summary Incremental mission pull
// @Description Same cursor semantics as the transaction pull
// @Tags missions
// @Produce json
// @Param lastSync query string false "RFC3339 sync cursor"
// @Success 200 {object} dto.SyncResponse[dto.MissionResponse]
// @Failure 400 {object} map[string]string "Invalid cursor"
// @Security BearerAuth
// @Router /missions [get]
func (h *missionHandler) syncMissions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	lastSync, ok := parseLastSync(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lastSync must be an RFC3339 timestamp"})
		return
	}

	missions, err := h.missionService.SyncMissions(c.Request.Context(), userID, lastSync)
	if err != nil {
		logger.Error("Failed to sync missions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list missions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMissionSyncResponse(missions, time.Now().UTC()))
}

// createMission godoc
// @Summary Create a mission
// @Tags missions
// @Accept json
// @Produce json
// @Param mission body dto.CreateMissionRequest true "Mission details"
// @Success 201 {object} dto.MissionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /missions [post]
func (h *missionHandler) createMission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateMission", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, validationErrorResponse(err))
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	mission, err := h.missionService.CreateMission(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating mission", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, validationErrorResponse(err))
		} else {
			logger.Error("Failed to create mission", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create mission"})
		}
		return
	}

	logger.Info("Mission created successfully", slog.String("mission_id", mission.MissionID))
	c.JSON(http.StatusCreated, dto.ToMissionResponse(mission))
}

// updateMission godoc
// @Summary Update a mission
// @Tags missions
// @Accept json
// @Produce json
// @Param missionID path string true "Mission ID"
// @Param mission body dto.UpdateMissionRequest true "Fields to update"
// @Success 200 {object} dto.MissionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Mission not found"
// @Security BearerAuth
// @Router /missions/{missionID} [put]
func (h *missionHandler) updateMission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	missionID := c.Param("missionID")

	var req dto.UpdateMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateMission", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, validationErrorResponse(err))
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	mission, err := h.missionService.UpdateMission(c.Request.Context(), missionID, userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Mission not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating mission", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, validationErrorResponse(err))
		} else {
			logger.Error("Failed to update mission", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update mission"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMissionResponse(mission))
}

// softDeleteMission godoc
// @Summary Soft delete a mission
// @Tags missions
// @Produce json
// @Param missionID path string true "Mission ID"
// @Success 200 {object} dto.MissionResponse
// @Failure 404 {object} map[string]string "Mission not found"
// @Security BearerAuth
// @Router /missions/{missionID} [delete]
func (h *missionHandler) softDeleteMission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	missionID := c.Param("missionID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	mission, err := h.missionService.SoftDeleteMission(c.Request.Context(), missionID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Mission not found"})
		} else {
			logger.Error("Failed to delete mission", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete mission"})
		}
		return
	}

	logger.Info("Mission soft deleted", slog.String("mission_id", missionID))
	c.JSON(http.StatusOK, dto.ToMissionResponse(mission))
}
