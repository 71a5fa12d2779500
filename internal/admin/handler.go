package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ktmtfamily/family-tree-api/internal/shared/handler"
)

type AdminHandler struct {
	adminService *AdminService
}

func NewAdminHandler(adminService *AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var request LoginRequest

	// Parse and validate JSON request
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.adminService.Login(c.Request.Context(), &request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AdminHandler) ChangePassword(c *gin.Context) {
	var request ChangePasswordRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.adminService.ChangePassword(c.Request.Context(), &request); err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	handler.RespondMessage(c, http.StatusOK, "Password updated successfully")
}
