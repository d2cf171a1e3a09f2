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

// WorkController handles driver work reports
type WorkController struct {
	workService    service.WorkService
	authMiddleware *middleware.AuthMiddleware
}

// NewWorkController creates a new WorkController instance
func NewWorkController(workService service.WorkService, authMiddleware *middleware.AuthMiddleware) *WorkController {
	return &WorkController{
		workService:    workService,
		authMiddleware: authMiddleware,
	}
}

// RegisterRoutes registers the work routes
func (c *WorkController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/work", c.authMiddleware.Protect(entity.RoleDriver), c.Create)
	router.GET("/find", c.authMiddleware.Protect(entity.RoleAdmin), c.List)
}

// Create records a driver's report for an area
// @Summary Submit work
// @Tags Work
// @Accept json
// @Produce json
// @Param request body request.CreateWorkRequest true "Work"
// @Success 201 {object} response.Envelope[entity.Work]
// @Failure 400 {object} response.Envelope[any]
// @Router /api/work [post]
func (c *WorkController) Create(ctx *gin.Context) {
	var req request.CreateWorkRequest
	if !bindJSON(ctx, &req) {
		return
	}

	work, err := c.workService.Create(ctx.Request.Context(), &req)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, response.OK(work, "Work submitted to the database successfully"))
}

// List returns every work entry
// @Summary List work
// @Tags Work
// @Produce json
// @Success 200 {object} response.Envelope[[]entity.Work]
// @Router /api/find [get]
func (c *WorkController) List(ctx *gin.Context) {
	works, err := c.workService.List(ctx.Request.Context())
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.WithData(works))
}
