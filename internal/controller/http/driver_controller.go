package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
	"github.com/jrjohn/smart-waste-go/internal/domain/service"
	"github.com/jrjohn/smart-waste-go/internal/dto/request"
	"github.com/jrjohn/smart-waste-go/internal/dto/response"
	"github.com/jrjohn/smart-waste-go/internal/middleware"
	"github.com/jrjohn/smart-waste-go/internal/security"
)

// DriverController handles driver login and administration
type DriverController struct {
	accountService service.AccountService
	driverService  service.DriverService
	cookie         *security.SessionCookie
	authMiddleware *middleware.AuthMiddleware
	throttle       *middleware.LoginThrottle
}

// NewDriverController creates a new DriverController instance
func NewDriverController(
	accountService service.AccountService,
	driverService service.DriverService,
	cookie *security.SessionCookie,
	authMiddleware *middleware.AuthMiddleware,
	throttle *middleware.LoginThrottle,
) *DriverController {
	return &DriverController{
		accountService: accountService,
		driverService:  driverService,
		cookie:         cookie,
		authMiddleware: authMiddleware,
		throttle:       throttle,
	}
}

// RegisterRoutes registers the driver routes
func (c *DriverController) RegisterRoutes(router *gin.RouterGroup) {
	admin := c.authMiddleware.Protect(entity.RoleAdmin)

	drivers := router.Group("/drivers")
	{
		drivers.POST("/login", c.throttle.Handler(), c.Login)
		drivers.POST("/logout", c.Logout)
		drivers.POST("", admin, c.Create)
		drivers.GET("", admin, c.List)
		drivers.GET("/email/:email", c.authMiddleware.Protect(entity.RoleDriver), c.GetByEmail)
		drivers.PUT("/:id", admin, c.Update)
		drivers.DELETE("/:id", admin, c.Delete)
	}
}

// Login authenticates a driver
// @Summary Log in as a driver
// @Tags Drivers
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Login request"
// @Success 200 {object} response.Envelope[response.AccountResponse]
// @Failure 400 {object} response.Envelope[any]
// @Router /api/drivers/login [post]
func (c *DriverController) Login(ctx *gin.Context) {
	login(ctx, c.accountService, c.cookie, entity.RoleDriver)
}

// Logout clears the session cookie
// @Summary Log out
// @Tags Drivers
// @Produce json
// @Success 200 {object} response.Envelope[any]
// @Router /api/drivers/logout [post]
func (c *DriverController) Logout(ctx *gin.Context) {
	logout(ctx, c.cookie)
}

// Create adds a driver
// @Summary Create a driver
// @Tags Drivers
// @Accept json
// @Produce json
// @Param request body request.CreateDriverRequest true "Driver"
// @Success 201 {object} response.Envelope[entity.Driver]
// @Failure 400 {object} response.Envelope[any]
// @Router /api/drivers [post]
func (c *DriverController) Create(ctx *gin.Context) {
	var req request.CreateDriverRequest
	if !bindJSON(ctx, &req) {
		return
	}

	driver, err := c.driverService.Create(ctx.Request.Context(), &req)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, response.OK(driver, "Driver created successfully."))
}

// List returns every driver
// @Summary List drivers
// @Tags Drivers
// @Produce json
// @Success 200 {object} response.Envelope[[]entity.Driver]
// @Router /api/drivers [get]
func (c *DriverController) List(ctx *gin.Context) {
	drivers, err := c.driverService.List(ctx.Request.Context())
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.WithData(drivers))
}

// GetByEmail returns the first driver whose email contains the parameter
// @Summary Find a driver by email
// @Tags Drivers
// @Produce json
// @Param email path string true "Email fragment"
// @Success 200 {object} response.Envelope[entity.Driver]
// @Failure 404 {object} response.Envelope[any]
// @Router /api/drivers/email/{email} [get]
func (c *DriverController) GetByEmail(ctx *gin.Context) {
	driver, err := c.driverService.FindByEmail(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.WithData(driver))
}

// Update changes a driver addressed by system id or driver id
// @Summary Update a driver
// @Tags Drivers
// @Accept json
// @Produce json
// @Param id path string true "System id or driver id"
// @Param request body request.UpdateDriverRequest true "Driver changes"
// @Success 200 {object} response.Envelope[entity.Driver]
// @Failure 404 {object} response.Envelope[any]
// @Router /api/drivers/{id} [put]
func (c *DriverController) Update(ctx *gin.Context) {
	var req request.UpdateDriverRequest
	if !bindJSON(ctx, &req) {
		return
	}

	driver, err := c.driverService.Update(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.OK(driver, "Driver updated successfully"))
}

// Delete removes a driver addressed by system id or driver id
// @Summary Delete a driver
// @Tags Drivers
// @Produce json
// @Param id path string true "System id or driver id"
// @Success 200 {object} response.Envelope[any]
// @Failure 404 {object} response.Envelope[any]
// @Router /api/drivers/{id} [delete]
func (c *DriverController) Delete(ctx *gin.Context) {
	if err := c.driverService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.OK[any](nil, "Driver deleted successfully"))
}
