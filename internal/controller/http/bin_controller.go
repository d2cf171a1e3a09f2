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

// BinController handles bin endpoints
type BinController struct {
	binService     service.BinService
	authMiddleware *middleware.AuthMiddleware
}

// NewBinController creates a new BinController instance
func NewBinController(binService service.BinService, authMiddleware *middleware.AuthMiddleware) *BinController {
	return &BinController{
		binService:     binService,
		authMiddleware: authMiddleware,
	}
}

// RegisterRoutes registers the bin routes
func (c *BinController) RegisterRoutes(router *gin.RouterGroup) {
	admin := c.authMiddleware.Protect(entity.RoleAdmin)

	bins := router.Group("/bins")
	{
		bins.GET("/", c.List)
		bins.GET("/geojson", c.Map)
		bins.GET("/:area", c.authMiddleware.Protect(entity.RoleDriver), c.FindByArea)
		bins.POST("/create", admin, c.Create)
		bins.PUT("/:id", admin, c.Update)
		bins.DELETE("/:id", admin, c.Delete)
	}
}

// List returns every bin
// @Summary List bins
// @Tags Bins
// @Produce json
// @Success 200 {object} response.Envelope[[]entity.Bin]
// @Router /api/bins/ [get]
func (c *BinController) List(ctx *gin.Context) {
	bins, err := c.binService.List(ctx.Request.Context())
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.WithData(bins))
}

// Map returns located bins as a GeoJSON feature collection
// @Summary Bin map
// @Tags Bins
// @Produce json
// @Success 200 {object} object "GeoJSON FeatureCollection"
// @Router /api/bins/geojson [get]
func (c *BinController) Map(ctx *gin.Context) {
	fc, err := c.binService.Map(ctx.Request.Context())
	if err != nil {
		renderError(ctx, err)
		return
	}

	body, err := fc.MarshalJSON()
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "application/geo+json", body)
}

// FindByArea returns bins whose locality or landmark matches area
// @Summary Find bins in an area
// @Tags Bins
// @Produce json
// @Param area path string true "Area"
// @Success 200 {object} response.Envelope[[]entity.Bin]
// @Failure 404 {object} response.Envelope[any]
// @Router /api/bins/{area} [get]
func (c *BinController) FindByArea(ctx *gin.Context) {
	bins, err := c.binService.FindByArea(ctx.Request.Context(), ctx.Param("area"))
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.WithData(bins))
}

// Create adds a bin
// @Summary Create a bin
// @Tags Bins
// @Accept json
// @Produce json
// @Param request body request.BinRequest true "Bin"
// @Success 201 {object} response.Envelope[entity.Bin]
// @Failure 400 {object} response.Envelope[any]
// @Router /api/bins/create [post]
func (c *BinController) Create(ctx *gin.Context) {
	var req request.BinRequest
	if !bindJSON(ctx, &req) {
		return
	}

	bin, err := c.binService.Create(ctx.Request.Context(), &req)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, response.OK(bin, "Bin created successfully"))
}

// Update changes a bin and geocodes its address
// @Summary Update a bin
// @Tags Bins
// @Accept json
// @Produce json
// @Param id path int true "Bin ID"
// @Param request body request.BinRequest true "Bin"
// @Success 200 {object} response.Envelope[response.BinUpdateResponse]
// @Failure 400 {object} response.Envelope[any]
// @Failure 404 {object} response.Envelope[any]
// @Router /api/bins/{id} [put]
func (c *BinController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", service.ErrBinNotFound)
	if !ok {
		return
	}

	var req request.BinRequest
	if !bindJSON(ctx, &req) {
		return
	}

	result, err := c.binService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		renderError(ctx, err)
		return
	}

	message := "Bin updated"
	if result.Fallback {
		message = "Bin updated (fallback)"
	}
	ctx.JSON(http.StatusOK, response.OK(result, message))
}

// Delete removes a bin
// @Summary Delete a bin
// @Tags Bins
// @Produce json
// @Param id path int true "Bin ID"
// @Success 200 {object} response.Envelope[any]
// @Failure 404 {object} response.Envelope[any]
// @Router /api/bins/{id} [delete]
func (c *BinController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", service.ErrBinNotFound)
	if !ok {
		return
	}

	if err := c.binService.Delete(ctx.Request.Context(), id); err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.OK[any](nil, "Bin deleted successfully"))
}
