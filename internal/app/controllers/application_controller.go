package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ciic/internhub/internal/app/models"
	"github.com/ciic/internhub/internal/app/models/dto"
	"github.com/ciic/internhub/internal/app/repositories"
	"github.com/ciic/internhub/internal/app/services"
	"github.com/ciic/internhub/internal/middleware"
)

// ApplicationController handles the application lifecycle endpoints
type ApplicationController struct {
	applicationService *services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService *services.ApplicationService) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
	}
}

// Apply submits an application for the calling student
// @Summary Apply to an internship
// @Description Creates exactly one application for the calling student
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ApplyInternshipRequest true "Internship to apply to"
// @Success 201 {object} dto.APIResponse{data=dto.ApplicationResponse} "Application submitted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Internship not found"
// @Failure 409 {object} dto.ErrorResponse "Already applied"
// @Failure 422 {object} dto.ErrorResponse "Internship inactive or deadline passed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications [post]
func (c *ApplicationController) Apply(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.ApplyInternshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid application data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	application, err := c.applicationService.Apply(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      application,
		Timestamp: time.Now(),
	})
}

// GetMyApplications retrieves the calling student's applications
// @Summary List my applications
// @Description Retrieves the calling student's applications, newest first
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ApplicationResponse} "Applications retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/mine [get]
func (c *ApplicationController) GetMyApplications(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	applications, err := c.applicationService.GetMine(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      applications,
		Timestamp: time.Now(),
	})
}

// Withdraw deletes the calling student's own application
// @Summary Withdraw an application
// @Description Deletes the calling student's own application unless it is completed
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 204 "Application withdrawn successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid application ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Application belongs to another student"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 422 {object} dto.ErrorResponse "Completed applications cannot be withdrawn"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/{id} [delete]
func (c *ApplicationController) Withdraw(ctx *gin.Context) {
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

	if err := c.applicationService.Withdraw(ctx, userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetAllApplications retrieves all applications matching the admin filter
// @Summary List all applications
// @Description Retrieves all applications with AND-combined filters
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param status query string false "Application status (aliases accepted)"
// @Param domain query string false "Internship domain key"
// @Param department query string false "Student department"
// @Param startupId query int false "Startup ID"
// @Param from query string false "Applications created on or after (RFC 3339)"
// @Param to query string false "Applications created on or before (RFC 3339)"
// @Success 200 {object} dto.APIResponse{data=[]dto.ApplicationResponse} "Applications retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications [get]
func (c *ApplicationController) GetAllApplications(ctx *gin.Context) {
	filter := repositories.ApplicationFilter{
		Status:     models.ApplicationStatus(ctx.Query("status")),
		Domain:     ctx.Query("domain"),
		Department: ctx.Query("department"),
	}

	if startupIDStr := ctx.Query("startupId"); startupIDStr != "" {
		startupID, err := strconv.ParseInt(startupIDStr, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid startup ID")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.StartupID = startupID
	}

	var ok bool
	if filter.From, ok = parseTimeQuery(ctx, "from"); !ok {
		return
	}
	if filter.To, ok = parseTimeQuery(ctx, "to"); !ok {
		return
	}

	applications, err := c.applicationService.GetAll(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      applications,
		Timestamp: time.Now(),
	})
}

// GetInternshipApplications retrieves applications for a posting owned by
// the calling startup
// @Summary List applications for an internship
// @Description Retrieves all applications for a posting owned by the calling startup
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Internship ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ApplicationResponse} "Applications retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid internship ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Internship belongs to another startup"
// @Failure 404 {object} dto.ErrorResponse "Internship not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /internships/{id}/applications [get]
func (c *ApplicationController) GetInternshipApplications(ctx *gin.Context) {
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

	applications, err := c.applicationService.GetForInternship(ctx, userID, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      applications,
		Timestamp: time.Now(),
	})
}

// UpdateApplicationStatus moves an application along its lifecycle
// @Summary Update application status
// @Description Transitions an application; alias spellings REVIEWING and ACCEPTED are accepted. Startups may only transition applications on their own postings.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body dto.UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationResponse} "Status updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Unknown status or invalid transition"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Application belongs to another startup's posting"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/{id}/status [patch]
func (c *ApplicationController) UpdateApplicationStatus(ctx *gin.Context) {
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

	var req dto.UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid status data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	application, err := c.applicationService.UpdateStatus(ctx, userID, middleware.GetRoleType(ctx), id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      application,
		Timestamp: time.Now(),
	})
}

// IssueCertificate attaches a certificate to a completed application
// @Summary Issue a certificate
// @Description Attaches a certificate URL to a completed application and notifies the student
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body dto.IssueCertificateRequest true "Certificate URL"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Certificate issued successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 422 {object} dto.ErrorResponse "Application is not completed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/{id}/certificate [post]
func (c *ApplicationController) IssueCertificate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.IssueCertificateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid certificate data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.applicationService.IssueCertificate(ctx, id, req.CertificateURL); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Certificate issued"},
		Timestamp: time.Now(),
	})
}

// parseTimeQuery reads an optional RFC 3339 or date-only query parameter
func parseTimeQuery(ctx *gin.Context, name string) (*time.Time, bool) {
	value := ctx.Query(name)
	if value == "" {
		return nil, true
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t, err = time.Parse("2006-01-02", value)
	}
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid date filter")
		errorDetail = errorDetail.WithDetails(name + " must be an RFC 3339 timestamp or YYYY-MM-DD date")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return nil, false
	}

	return &t, true
}
