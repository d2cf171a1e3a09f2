package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jrjohn/smart-waste-go/internal/dto/response"
	apperrors "github.com/jrjohn/smart-waste-go/pkg/errors"
)

const (
	msgValidationFailed = "validation failed"
	msgLoginSuccessful  = "Login successful! You are now logged in."
	msgLoggedOut        = "Logged out successfully"
)

// renderError writes err with the status and message of its AppError.
// Anything else is reported as a 500 without detail.
func renderError(ctx *gin.Context, err error) {
	status := apperrors.GetStatus(err)
	if status >= 500 {
		_ = ctx.Error(err)
	}
	ctx.JSON(status, response.Failure[any](apperrors.GetMessage(err)))
}

// bindJSON decodes the request body into req, writing a 400 on failure
func bindJSON(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(400, response.Invalid[any](msgValidationFailed, err.Error()))
		return false
	}
	return true
}

// pathID parses the uint path parameter name, writing a 404 with notFound
// when it is not a valid id
func pathID(ctx *gin.Context, name string, notFound *apperrors.AppError) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		renderError(ctx, notFound)
		return 0, false
	}
	return uint(id), true
}
