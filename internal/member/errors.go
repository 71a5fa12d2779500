package member

import (
	"net/http"

	sharedError "github.com/ktmtfamily/family-tree-api/internal/shared/error"
)

const (
	phoneAlreadyRegistered = "PHONE_ALREADY_REGISTERED" // errInfo
	memberNotFound         = "MEMBER_NOT_FOUND"         // errInfo
	invalidMemberID        = "INVALID_MEMBER_ID"        // errInfo
	imageUploadFailed      = "IMAGE_UPLOAD_FAILED"      // errInfo
	loginUserNotFound      = "LOGIN_USER_NOT_FOUND"     // errInfo
	loginWrongPassword     = "LOGIN_WRONG_PASSWORD"     // errInfo
	loginNotApproved       = "LOGIN_NOT_APPROVED"       // errInfo
)

var (
	ErrPhoneAlreadyRegistered = sharedError.NewDomainError(phoneAlreadyRegistered)
	ErrMemberNotFound         = sharedError.NewDomainError(memberNotFound)
	ErrInvalidMemberID        = sharedError.NewDomainError(invalidMemberID)
	ErrImageUploadFailed      = sharedError.NewDomainError(imageUploadFailed)

	// Login failures, checked in this order
	ErrLoginUserNotFound  = sharedError.NewDomainError(loginUserNotFound)
	ErrLoginWrongPassword = sharedError.NewDomainError(loginWrongPassword)
	ErrLoginNotApproved   = sharedError.NewDomainError(loginNotApproved)
)

func init() {
	sharedError.RegisterDomainErrorResponse(memberNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "MEMBER-001",
		Message: "User not found",
	})

	sharedError.RegisterDomainErrorResponse(phoneAlreadyRegistered, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "MEMBER-002",
		Message: "Phone already registered",
	})

	sharedError.RegisterDomainErrorResponse(invalidMemberID, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "MEMBER-003",
		Message: "Invalid ID",
	})

	sharedError.RegisterDomainErrorResponse(imageUploadFailed, sharedError.ErrorResponse{
		Status:  http.StatusInternalServerError,
		Code:    "MEMBER-004",
		Message: "Image upload failed",
	})

	sharedError.RegisterDomainErrorResponse(loginUserNotFound, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-001",
		Message: "User not found",
	})

	sharedError.RegisterDomainErrorResponse(loginWrongPassword, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-002",
		Message: "Wrong password",
	})

	sharedError.RegisterDomainErrorResponse(loginNotApproved, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-003",
		Message: "Account not approved yet",
	})
}
