package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ciic/internhub/internal/app/models/dto"
	"github.com/ciic/internhub/internal/app/services"
	"github.com/ciic/internhub/internal/middleware"
)

// MetaController serves portal metadata such as the domain taxonomy
type MetaController struct {
	domainService *services.DomainService
}

// NewMetaController creates a new MetaController
func NewMetaController(domainService *services.DomainService) *MetaController {
	return &MetaController{
		domainService: domainService,
	}
}

// GetInternshipDomains retrieves the domain taxonomy
// @Summary List internship domains
// @Description Retrieves all internship domain key/label pairs
// @Tags meta
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.InternshipDomainResponse} "Domains retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /meta/internship-domains [get]
func (c *MetaController) GetInternshipDomains(ctx *gin.Context) {
	domains, err := c.domainService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      domains,
		Timestamp: time.Now(),
	})
}

// CreateInternshipDomain registers a new domain
// @Summary Add an internship domain
// @Description Registers a new domain key/label pair
// @Tags meta
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDomainRequest true "Domain data"
// @Success 201 {object} dto.APIResponse{data=dto.InternshipDomainResponse} "Domain created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid domain data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 409 {object} dto.ErrorResponse "Domain key already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /meta/internship-domains [post]
func (c *MetaController) CreateInternshipDomain(ctx *gin.Context) {
	var req dto.CreateDomainRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid domain data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	domain, err := c.domainService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      domain,
		Timestamp: time.Now(),
	})
}

// DeleteInternshipDomain removes a domain by key
// @Summary Delete an internship domain
// @Description Removes a domain key/label pair
// @Tags meta
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Domain key"
// @Success 204 "Domain deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Domain not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /meta/internship-domains/{key} [delete]
func (c *MetaController) DeleteInternshipDomain(ctx *gin.Context) {
	if err := c.domainService.Delete(ctx, ctx.Param("key")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
