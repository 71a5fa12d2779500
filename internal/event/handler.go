package event

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ktmtfamily/family-tree-api/internal/shared/handler"
)

type EventHandler struct {
	eventService *EventService
}

func NewEventHandler(eventService *EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

func (h *EventHandler) List(c *gin.Context) {
	response, err := h.eventService.List(c.Request.Context())
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *EventHandler) Create(c *gin.Context) {
	var request EventRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if _, err := h.eventService.Create(c.Request.Context(), &request); err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	handler.RespondMessage(c, http.StatusOK, "Event created successfully")
}

func (h *EventHandler) Update(c *gin.Context) {
	var request EventRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.eventService.Update(c.Request.Context(), c.Param("id"), &request); err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	handler.RespondMessage(c, http.StatusOK, "Event updated successfully")
}

func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.eventService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	handler.RespondMessage(c, http.StatusOK, "Event deleted successfully")
}
