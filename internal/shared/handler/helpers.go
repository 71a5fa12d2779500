package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	sharedError "github.com/ktmtfamily/family-tree-api/internal/shared/error"
	"github.com/ktmtfamily/family-tree-api/internal/shared/validator"
)

// MessageResponse is the body of every plain success response.
type MessageResponse struct {
	Message string `json:"message"`
}

// BindJSON parses and validates JSON request body
// Returns true if binding succeeded, false if failed (response already sent)
//
// Usage:
//
//	var req LoginRequest
//	if !handler.BindJSON(c, &req) {
//	    return
//	}
func BindJSON(c *gin.Context, obj any) bool {
	return bind(c, c.ShouldBindJSON(obj))
}

// BindForm parses and validates a form or multipart request body.
// File fields are bound through *multipart.FileHeader struct fields.
func BindForm(c *gin.Context, obj any) bool {
	return bind(c, c.ShouldBind(obj))
}

func bind(c *gin.Context, err error) bool {
	if err == nil {
		return true
	}

	// Add error to context for middleware logging
	c.Error(err)

	if resp, ok := validator.ToErrorResponse(err); ok {
		c.JSON(http.StatusBadRequest, resp)
	} else {
		// Parsing error or other binding errors
		c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
	}
	return false
}

// RespondError sends an error response with logging
//
// Usage:
//
//	if err := service.DoSomething(); err != nil {
//	    handler.RespondError(c, err, sharedError.InternalServerError)
//	    return
//	}
func RespondError(c *gin.Context, err error, errResp sharedError.ErrorResponse) {
	// Add error to context for middleware logging
	c.Error(err)

	c.JSON(errResp.Status, errResp)
}

// RespondDomainError responds with the registered mapping of err, or 500.
func RespondDomainError(c *gin.Context, err error) {
	RespondError(c, err, sharedError.ResolveOrInternal(err))
}

// RespondMessage sends {"message": msg} with the given status.
func RespondMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, MessageResponse{Message: msg})
}
