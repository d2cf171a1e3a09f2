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

// UserController handles citizen account endpoints
type UserController struct {
	accountService  service.AccountService
	resetService    service.PasswordResetService
	cookie          *security.SessionCookie
	securityService *security.SecurityService
	authMiddleware  *middleware.AuthMiddleware
	throttle        *middleware.LoginThrottle
}

// NewUserController creates a new UserController instance
func NewUserController(
	accountService service.AccountService,
	resetService service.PasswordResetService,
	cookie *security.SessionCookie,
	securityService *security.SecurityService,
	authMiddleware *middleware.AuthMiddleware,
	throttle *middleware.LoginThrottle,
) *UserController {
	return &UserController{
		accountService:  accountService,
		resetService:    resetService,
		cookie:          cookie,
		securityService: securityService,
		authMiddleware:  authMiddleware,
		throttle:        throttle,
	}
}

// RegisterRoutes registers the user routes
func (c *UserController) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.POST("/signup", c.Signup)
		users.POST("/login", c.throttle.Handler(), c.Login)
		users.POST("/logout", c.Logout)
		users.POST("/forgot-password", c.throttle.Handler(), c.ForgotPassword)
		users.POST("/reset-password/:token", c.ResetPassword)
		users.GET("/", c.authMiddleware.Protect(entity.RoleAdmin), c.List)
		users.GET("/:email", c.authMiddleware.Protect(entity.RoleUser), c.GetByEmail)
		users.PUT("/:userId", c.authMiddleware.Protect(entity.RoleUser), c.UpdateProfile)
	}
}

// Signup creates a citizen account and opens a session
// @Summary Create a user account
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request.SignupRequest true "Signup request"
// @Success 201 {object} response.Envelope[response.AccountResponse]
// @Failure 400 {object} response.Envelope[any]
// @Router /api/users/signup [post]
func (c *UserController) Signup(ctx *gin.Context) {
	var req request.SignupRequest
	if !bindJSON(ctx, &req) {
		return
	}

	session, err := c.accountService.SignupUser(ctx.Request.Context(), &req)
	if err != nil {
		renderError(ctx, err)
		return
	}

	c.cookie.Write(ctx, session.Token)
	ctx.JSON(http.StatusCreated, response.OK(session.Account, "User account created successfully."))
}

// Login authenticates a user
// @Summary Log in as a user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Login request"
// @Success 200 {object} response.Envelope[response.AccountResponse]
// @Failure 400 {object} response.Envelope[any]
// @Failure 429 {object} response.Envelope[any]
// @Router /api/users/login [post]
func (c *UserController) Login(ctx *gin.Context) {
	login(ctx, c.accountService, c.cookie, entity.RoleUser)
}

// Logout clears the session cookie
// @Summary Log out
// @Tags Users
// @Produce json
// @Success 200 {object} response.Envelope[any]
// @Router /api/users/logout [post]
func (c *UserController) Logout(ctx *gin.Context) {
	logout(ctx, c.cookie)
}

// List returns every user
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {object} response.Envelope[[]response.AccountResponse]
// @Router /api/users/ [get]
func (c *UserController) List(ctx *gin.Context) {
	users, err := c.accountService.ListUsers(ctx.Request.Context())
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.WithData(users))
}

// GetByEmail returns a user by exact email
// @Summary Get a user by email
// @Tags Users
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} response.Envelope[response.AccountResponse]
// @Failure 404 {object} response.Envelope[any]
// @Router /api/users/{email} [get]
func (c *UserController) GetByEmail(ctx *gin.Context) {
	user, err := c.accountService.GetUserByEmail(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.WithData(user))
}

// UpdateProfile changes the authenticated user's contact details
// @Summary Update own profile
// @Tags Users
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param request body request.UpdateProfileRequest true "Profile changes"
// @Success 200 {object} response.Envelope[response.AccountResponse]
// @Failure 400 {object} response.Envelope[any]
// @Failure 403 {object} response.Envelope[any]
// @Router /api/users/{userId} [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	identity := c.securityService.GetCurrentIdentity(ctx)
	if identity == nil {
		renderError(ctx, service.ErrUserNotFound)
		return
	}

	id, ok := pathID(ctx, "userId", service.ErrUserNotFound)
	if !ok {
		return
	}

	var req request.UpdateProfileRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := c.accountService.UpdateUserProfile(ctx.Request.Context(), identity.ID, id, &req)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.OK(user, "Profile updated successfully"))
}

// ForgotPassword mails a password reset link
// @Summary Request a password reset link
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request.ForgotPasswordRequest true "Account email"
// @Success 200 {object} response.Envelope[any]
// @Failure 404 {object} response.Envelope[any]
// @Failure 429 {object} response.Envelope[any]
// @Router /api/users/forgot-password [post]
func (c *UserController) ForgotPassword(ctx *gin.Context) {
	var req request.ForgotPasswordRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.resetService.Forgot(ctx.Request.Context(), req.Email); err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.OK[any](nil, "Password reset link sent to your email"))
}

// ResetPassword redeems a reset token
// @Summary Reset a password
// @Tags Users
// @Accept json
// @Produce json
// @Param token path string true "Reset token"
// @Param request body request.ResetPasswordRequest true "New password"
// @Success 200 {object} response.Envelope[any]
// @Failure 400 {object} response.Envelope[any]
// @Router /api/users/reset-password/{token} [post]
func (c *UserController) ResetPassword(ctx *gin.Context) {
	var req request.ResetPasswordRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.resetService.Reset(ctx.Request.Context(), ctx.Param("token"), req.Password); err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.OK[any](nil, "Password reset successful"))
}
