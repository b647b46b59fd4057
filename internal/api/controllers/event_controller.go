package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"housebase/internal/models/request_models"
	"housebase/internal/services"
	"housebase/pkg/utils"
)

type EventController struct {
	eventService services.EventServiceInterface
}

func NewEventController(eventService services.EventServiceInterface) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

// ListUpcoming godoc
// @Summary List upcoming house events
// @Tags Events
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /events [get]
func (ec *EventController) ListUpcoming(c *gin.Context) {
	events, err := ec.eventService.ListUpcoming(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, events, "Fetched events successfully")
}

// CreateEvent godoc
// @Summary Create a house event
// @Tags Events
// @Accept json
// @Produce json
// @Param request body request_models.CreateEventRequest true "Event payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /events [post]
func (ec *EventController) CreateEvent(c *gin.Context) {
	var req request_models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	event, err := ec.eventService.CreateEvent(c.Request.Context(), req, c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, event, "Event created successfully")
}

// DeleteEvent godoc
// @Summary Delete a house event
// @Tags Events
// @Produce json
// @Param id path string true "Event id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /events/{id} [delete]
func (ec *EventController) DeleteEvent(c *gin.Context) {
	if err := ec.eventService.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Event deleted successfully")
}
