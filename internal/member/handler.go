package member

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ktmtfamily/family-tree-api/internal/shared/handler"
)

type MemberHandler struct {
	memberService *MemberService
}

func NewMemberHandler(memberService *MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// Register handles the multipart registration form
func (h *MemberHandler) Register(c *gin.Context) {
	var request RegisterRequest
	if !handler.BindForm(c, &request) {
		return
	}

	var photo *Photo
	if fh := request.Photo; fh != nil && fh.Filename != "" && fh.Size > 0 {
		file, err := fh.Open()
		if err != nil {
			handler.RespondDomainError(c, fmt.Errorf("open photo: %v: %w", err, ErrImageUploadFailed))
			return
		}
		defer file.Close()

		photo = &Photo{Filename: fh.Filename, Content: file}
	}

	if err := h.memberService.Register(c.Request.Context(), &request, photo); err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	handler.RespondMessage(c, http.StatusOK, "Registration Request Sent!")
}

func (h *MemberHandler) ListPending(c *gin.Context) {
	response, err := h.memberService.ListPending(c.Request.Context())
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MemberHandler) Approve(c *gin.Context) {
	if err := h.memberService.Approve(c.Request.Context(), c.Param("id")); err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	handler.RespondMessage(c, http.StatusOK, "User Approved")
}

func (h *MemberHandler) Reject(c *gin.Context) {
	if err := h.memberService.Reject(c.Request.Context(), c.Param("id")); err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	handler.RespondMessage(c, http.StatusOK, "User Rejected")
}

func (h *MemberHandler) Login(c *gin.Context) {
	var request LoginRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.memberService.Login(c.Request.Context(), &request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MemberHandler) Tree(c *gin.Context) {
	response, err := h.memberService.Tree(c.Request.Context())
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
