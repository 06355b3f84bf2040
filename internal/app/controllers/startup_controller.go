package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ciic/internhub/internal/app/models/dto"
	"github.com/ciic/internhub/internal/app/services"
	"github.com/ciic/internhub/internal/middleware"
)

// StartupController handles startup profile and directory endpoints
type StartupController struct {
	startupService *services.StartupService
}

// NewStartupController creates a new StartupController
func NewStartupController(startupService *services.StartupService) *StartupController {
	return &StartupController{
		startupService: startupService,
	}
}

// EnrollStartup creates a startup account on behalf of an admin
// @Summary Enroll a startup
// @Description Creates a startup account and profile on behalf of an admin
// @Tags startups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EnrollStartupRequest true "Startup enrollment data"
// @Success 201 {object} dto.APIResponse{data=dto.StartupResponse} "Startup enrolled successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid enrollment data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 409 {object} dto.ErrorResponse "Email or company name already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /startups [post]
func (c *StartupController) EnrollStartup(ctx *gin.Context) {
	var req dto.EnrollStartupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid enrollment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	startup, err := c.startupService.Enroll(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      startup,
		Timestamp: time.Now(),
	})
}

// GetMyProfile retrieves the calling startup user's own profile
// @Summary Get my startup profile
// @Description Retrieves the calling startup user's own profile
// @Tags startups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StartupResponse} "Profile retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Startup profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /startups/me [get]
func (c *StartupController) GetMyProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	startup, err := c.startupService.GetProfile(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      startup,
		Timestamp: time.Now(),
	})
}

// UpdateMyProfile updates the calling startup user's own profile
// @Summary Update my startup profile
// @Description Updates the calling startup user's own profile
// @Tags startups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateStartupProfileRequest true "Updated profile data"
// @Success 200 {object} dto.APIResponse{data=dto.StartupResponse} "Profile updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid profile data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Startup profile not found"
// @Failure 409 {object} dto.ErrorResponse "Company name already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /startups/me [put]
func (c *StartupController) UpdateMyProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.UpdateStartupProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid profile data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	startup, err := c.startupService.UpdateProfile(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      startup,
		Timestamp: time.Now(),
	})
}

// GetStartupByID retrieves a startup dossier
// @Summary Get startup by ID
// @Description Retrieves a startup dossier
// @Tags startups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Startup ID"
// @Success 200 {object} dto.APIResponse{data=dto.StartupResponse} "Startup retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid startup ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Startup not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /startups/{id} [get]
func (c *StartupController) GetStartupByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	startup, err := c.startupService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      startup,
		Timestamp: time.Now(),
	})
}

// GetAllStartups retrieves the startup directory
// @Summary List startups
// @Description Retrieves the startup directory ordered by company name
// @Tags startups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.StartupResponse} "Startups retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /startups [get]
func (c *StartupController) GetAllStartups(ctx *gin.Context) {
	startups, err := c.startupService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      startups,
		Timestamp: time.Now(),
	})
}
