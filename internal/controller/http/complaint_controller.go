package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
	"github.com/jrjohn/smart-waste-go/internal/domain/service"
	"github.com/jrjohn/smart-waste-go/internal/dto/request"
	"github.com/jrjohn/smart-waste-go/internal/dto/response"
	"github.com/jrjohn/smart-waste-go/internal/middleware"
)

// ComplaintController handles complaint endpoints
type ComplaintController struct {
	complaintService service.ComplaintService
	authMiddleware   *middleware.AuthMiddleware
}

// NewComplaintController creates a new ComplaintController instance
func NewComplaintController(complaintService service.ComplaintService, authMiddleware *middleware.AuthMiddleware) *ComplaintController {
	return &ComplaintController{
		complaintService: complaintService,
		authMiddleware:   authMiddleware,
	}
}

// RegisterRoutes registers the complaint routes
func (c *ComplaintController) RegisterRoutes(router *gin.RouterGroup) {
	complaints := router.Group("/complaints")
	{
		complaints.POST("", c.authMiddleware.Protect(entity.RoleUser), c.Create)
		complaints.GET("", c.List)
		complaints.PUT("/:complaintId", c.authMiddleware.Protect(entity.RoleAdmin), c.UpdateStatus)
	}
}

// Create files a complaint
// @Summary File a complaint
// @Tags Complaints
// @Accept json
// @Produce json
// @Param request body request.CreateComplaintRequest true "Complaint"
// @Success 201 {object} response.Envelope[entity.Complaint]
// @Failure 400 {object} response.Envelope[any]
// @Router /api/complaints [post]
func (c *ComplaintController) Create(ctx *gin.Context) {
	var req request.CreateComplaintRequest
	if !bindJSON(ctx, &req) {
		return
	}

	complaint, err := c.complaintService.Create(ctx.Request.Context(), &req)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, response.OK(complaint, "Complaint created successfully"))
}

// List returns every complaint
// @Summary List complaints
// @Tags Complaints
// @Produce json
// @Success 200 {object} response.Envelope[[]entity.Complaint]
// @Router /api/complaints [get]
func (c *ComplaintController) List(ctx *gin.Context) {
	complaints, err := c.complaintService.List(ctx.Request.Context())
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.WithData(complaints))
}

// UpdateStatus moves a complaint to another status
// @Summary Update complaint status
// @Tags Complaints
// @Accept json
// @Produce json
// @Param complaintId path int true "Complaint ID"
// @Param request body request.UpdateComplaintStatusRequest true "Status"
// @Success 200 {object} response.Envelope[entity.Complaint]
// @Failure 400 {object} response.Envelope[any]
// @Failure 404 {object} response.Envelope[any]
// @Router /api/complaints/{complaintId} [put]
func (c *ComplaintController) UpdateStatus(ctx *gin.Context) {
	id, ok := pathID(ctx, "complaintId", service.ErrComplaintNotFound)
	if !ok {
		return
	}

	var req request.UpdateComplaintStatusRequest
	if !bindJSON(ctx, &req) {
		return
	}

	complaint, err := c.complaintService.UpdateStatus(ctx.Request.Context(), id, req.Status)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.OK(complaint, "Complaint status updated"))
}
