package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ciic/internhub/internal/app/models/dto"
	"github.com/ciic/internhub/internal/app/services"
	"github.com/ciic/internhub/internal/middleware"
)

// AlertController handles admin broadcast alerts
type AlertController struct {
	alertService *services.AlertService
}

// NewAlertController creates a new AlertController
func NewAlertController(alertService *services.AlertService) *AlertController {
	return &AlertController{
		alertService: alertService,
	}
}

// CreateAlert publishes a new alert
// @Summary Publish an alert
// @Description Publishes a broadcast alert visible to all roles
// @Tags alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAlertRequest true "Alert data"
// @Success 201 {object} dto.APIResponse{data=models.Alert} "Alert published successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid alert data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /alerts [post]
func (c *AlertController) CreateAlert(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.CreateAlertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid alert data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	alert, err := c.alertService.Create(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      alert,
		Timestamp: time.Now(),
	})
}

// GetAllAlerts retrieves all alerts
// @Summary List alerts
// @Description Retrieves all broadcast alerts, newest first
// @Tags alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Alert} "Alerts retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /alerts [get]
func (c *AlertController) GetAllAlerts(ctx *gin.Context) {
	alerts, err := c.alertService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      alerts,
		Timestamp: time.Now(),
	})
}

// DeleteAlert removes an alert
// @Summary Delete an alert
// @Description Removes a broadcast alert
// @Tags alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alert ID"
// @Success 204 "Alert deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid alert ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Alert not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /alerts/{id} [delete]
func (c *AlertController) DeleteAlert(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.alertService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
