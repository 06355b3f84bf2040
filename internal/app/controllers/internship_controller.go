package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ciic/internhub/internal/app/models/dto"
	"github.com/ciic/internhub/internal/app/services"
	"github.com/ciic/internhub/internal/middleware"
)

// InternshipController handles internship catalog and posting operations
type InternshipController struct {
	internshipService *services.InternshipService
}

// NewInternshipController creates a new InternshipController
func NewInternshipController(internshipService *services.InternshipService) *InternshipController {
	return &InternshipController{
		internshipService: internshipService,
	}
}

func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID")
		errorDetail = errorDetail.WithDetails("ID must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// GetCatalog retrieves the active internship catalog
// @Summary Browse internships
// @Description Retrieves active internships filtered by domain and search text, optionally sorted
// @Tags internships
// @Accept json
// @Produce json
// @Param domain query string false "Domain key (ALL for no filter)"
// @Param search query string false "Case-insensitive substring match on title or company name"
// @Param sort query string false "Sort key" Enums(newest, stipend)
// @Success 200 {object} dto.APIResponse{data=[]dto.InternshipResponse} "Catalog retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /internships [get]
func (c *InternshipController) GetCatalog(ctx *gin.Context) {
	filter := services.CatalogFilter{
		Domain: ctx.Query("domain"),
		Search: ctx.Query("search"),
		Sort:   ctx.Query("sort"),
	}

	internships, err := c.internshipService.GetCatalog(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      internships,
		Timestamp: time.Now(),
	})
}

// GetInternshipByID retrieves a single internship
// @Summary Get internship by ID
// @Description Retrieves a single internship posting with its startup label
// @Tags internships
// @Accept json
// @Produce json
// @Param id path int true "Internship ID"
// @Success 200 {object} dto.APIResponse{data=dto.InternshipResponse} "Internship retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid internship ID"
// @Failure 404 {object} dto.ErrorResponse "Internship not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /internships/{id} [get]
func (c *InternshipController) GetInternshipByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	internship, err := c.internshipService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      internship,
		Timestamp: time.Now(),
	})
}

// CreateInternship posts a new internship for the calling startup
// @Summary Post an internship
// @Description Creates a new internship posting owned by the calling startup
// @Tags internships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateInternshipRequest true "Internship data"
// @Success 201 {object} dto.APIResponse{data=dto.InternshipResponse} "Internship created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid internship data or unknown domain"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /internships [post]
func (c *InternshipController) CreateInternship(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.CreateInternshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid internship data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	internship, err := c.internshipService.Create(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      internship,
		Timestamp: time.Now(),
	})
}

// UpdateInternship edits an internship owned by the calling startup
// @Summary Update an internship
// @Description Updates an internship posting owned by the calling startup
// @Tags internships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Internship ID"
// @Param request body dto.UpdateInternshipRequest true "Updated internship data"
// @Success 200 {object} dto.APIResponse{data=dto.InternshipResponse} "Internship updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid internship data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Internship belongs to another startup"
// @Failure 404 {object} dto.ErrorResponse "Internship not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /internships/{id} [put]
func (c *InternshipController) UpdateInternship(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateInternshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid internship data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	internship, err := c.internshipService.Update(ctx, userID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      internship,
		Timestamp: time.Now(),
	})
}

// SetInternshipActive toggles catalog visibility
// @Summary Toggle internship visibility
// @Description Activates or deactivates an internship posting owned by the calling startup
// @Tags internships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Internship ID"
// @Param request body dto.SetInternshipActiveRequest true "Visibility flag"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Visibility updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Internship belongs to another startup"
// @Failure 404 {object} dto.ErrorResponse "Internship not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /internships/{id}/active [patch]
func (c *InternshipController) SetInternshipActive(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.SetInternshipActiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.internshipService.SetActive(ctx, userID, id, *req.IsActive); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Internship visibility updated"},
		Timestamp: time.Now(),
	})
}

// DeleteInternship removes an internship posting
// @Summary Delete an internship
// @Description Deletes an internship posting; applications cascade with it
// @Tags internships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Internship ID"
// @Success 204 "Internship deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid internship ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Internship belongs to another startup"
// @Failure 404 {object} dto.ErrorResponse "Internship not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /internships/{id} [delete]
func (c *InternshipController) DeleteInternship(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	role := middleware.GetRoleType(ctx)
	if err := c.internshipService.Delete(ctx, userID, role, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetMyInternships retrieves the calling startup's postings
// @Summary List my internships
// @Description Retrieves all postings owned by the calling startup, newest first
// @Tags internships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.InternshipResponse} "Internships retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Startup profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /internships/mine [get]
func (c *InternshipController) GetMyInternships(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	internships, err := c.internshipService.GetMine(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      internships,
		Timestamp: time.Now(),
	})
}
