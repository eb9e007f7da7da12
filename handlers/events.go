package handlers

import (
	"net/http"

	"sociai/models"
	"sociai/services"

	"github.com/gin-gonic/gin"
)

// GetEvents handles GET /events?communityId=.
func (h *Handler) GetEvents(c *gin.Context) {
	events := services.FilterEvents(h.store.Events(), c.Query("communityId"))

	ok(c, http.StatusOK, gin.H{
		"events": events,
		"total":  len(events),
	})
}

// AttendEvent handles POST /events/:id/attend.
func (h *Handler) AttendEvent(c *gin.Context) {
	event, err := h.store.AttendEvent(c.Param("id"))
	if err != nil {
		h.handleError(c, err, "Failed to attend event")
		return
	}
	h.events.Publish(models.EventAttended, gin.H{
		"eventId":     event.ID,
		"communityId": event.CommunityID,
		"attendees":   event.Attendees,
	})

	ok(c, http.StatusOK, gin.H{
		"event":   event,
		"message": "Attending event",
	})
}
