package admin

import (
	"net/http"

	sharedError "github.com/ktmtfamily/family-tree-api/internal/shared/error"
)

const (
	invalidAdminCredentials = "INVALID_ADMIN_CREDENTIALS" // errInfo
)

var (
	ErrInvalidAdminCredentials = sharedError.NewDomainError(invalidAdminCredentials)
)

func init() {
	sharedError.RegisterDomainErrorResponse(invalidAdminCredentials, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-004",
		Message: "Invalid username or password",
	})
}
