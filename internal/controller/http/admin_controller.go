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

// AdminController handles administrator account endpoints
type AdminController struct {
	accountService service.AccountService
	cookie         *security.SessionCookie
	authMiddleware *middleware.AuthMiddleware
	throttle       *middleware.LoginThrottle
}

// NewAdminController creates a new AdminController instance
func NewAdminController(
	accountService service.AccountService,
	cookie *security.SessionCookie,
	authMiddleware *middleware.AuthMiddleware,
	throttle *middleware.LoginThrottle,
) *AdminController {
	return &AdminController{
		accountService: accountService,
		cookie:         cookie,
		authMiddleware: authMiddleware,
		throttle:       throttle,
	}
}

// RegisterRoutes registers the admin routes
func (c *AdminController) RegisterRoutes(router *gin.RouterGroup) {
	admins := router.Group("/admins")
	{
		admins.POST("/signup", c.Signup)
		admins.POST("/login", c.throttle.Handler(), c.Login)
		admins.POST("/logout", c.Logout)
		admins.GET("/", c.authMiddleware.Protect(entity.RoleAdmin), c.List)
	}
}

// Signup creates an administrator and opens a session
// @Summary Create an administrator account
// @Tags Admins
// @Accept json
// @Produce json
// @Param request body request.SignupRequest true "Signup request"
// @Success 201 {object} response.Envelope[response.AccountResponse]
// @Failure 400 {object} response.Envelope[any]
// @Router /api/admins/signup [post]
func (c *AdminController) Signup(ctx *gin.Context) {
	var req request.SignupRequest
	if !bindJSON(ctx, &req) {
		return
	}

	session, err := c.accountService.SignupAdmin(ctx.Request.Context(), &req)
	if err != nil {
		renderError(ctx, err)
		return
	}

	c.cookie.Write(ctx, session.Token)
	ctx.JSON(http.StatusCreated, response.OK(session.Account, "Admin account created successfully."))
}

// Login authenticates an administrator
// @Summary Log in as an administrator
// @Tags Admins
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Login request"
// @Success 200 {object} response.Envelope[response.AccountResponse]
// @Failure 400 {object} response.Envelope[any]
// @Failure 429 {object} response.Envelope[any]
// @Router /api/admins/login [post]
func (c *AdminController) Login(ctx *gin.Context) {
	login(ctx, c.accountService, c.cookie, entity.RoleAdmin)
}

// Logout clears the session cookie
// @Summary Log out
// @Tags Admins
// @Produce json
// @Success 200 {object} response.Envelope[any]
// @Router /api/admins/logout [post]
func (c *AdminController) Logout(ctx *gin.Context) {
	logout(ctx, c.cookie)
}

// List returns every administrator
// @Summary List administrators
// @Tags Admins
// @Produce json
// @Success 200 {object} response.Envelope[[]response.AccountResponse]
// @Failure 401 {object} response.Envelope[any]
// @Router /api/admins/ [get]
func (c *AdminController) List(ctx *gin.Context) {
	admins, err := c.accountService.ListAdmins(ctx.Request.Context())
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.WithData(admins))
}

func login(ctx *gin.Context, accounts service.AccountService, cookie *security.SessionCookie, role entity.Role) {
	var req request.LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	session, err := accounts.Login(ctx.Request.Context(), role, &req)
	if err != nil {
		renderError(ctx, err)
		return
	}

	cookie.Write(ctx, session.Token)
	ctx.JSON(http.StatusOK, response.OK(session.Account, msgLoginSuccessful))
}

func logout(ctx *gin.Context, cookie *security.SessionCookie) {
	cookie.Clear(ctx)
	ctx.JSON(http.StatusOK, response.OK[any](nil, msgLoggedOut))
}
