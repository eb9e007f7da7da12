package handlers

import (
	"fmt"
	"net/http"
	"time"

	"sociai/models"

	"github.com/gin-gonic/gin"
)

type engagementRequest struct {
	PostID string `json:"postId"`
	Action string `json:"action"`
}

// RecordEngagement handles POST /engagement.
func (h *Handler) RecordEngagement(c *gin.Context) {
	var req engagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, fmt.Errorf("decode engagement: %w", err), "Failed to process engagement action")
		return
	}

	if req.PostID == "" || req.Action == "" {
		fail(c, http.StatusBadRequest, "Post ID and action are required")
		return
	}
	if !models.IsEngagementAction(req.Action) {
		fail(c, http.StatusBadRequest, "Invalid action")
		return
	}

	if !simulateLatency(c.Request.Context(), h.opts.EngagementDelay) {
		return
	}

	post, err := h.store.ApplyEngagement(req.PostID, req.Action)
	if err != nil {
		h.handleError(c, err, "Failed to process engagement action")
		return
	}
	h.events.Publish(models.EventEngagementUpdated, gin.H{
		"postId":       post.ID,
		"action":       req.Action,
		"engagement":   post.Engagement,
		"isLiked":      post.IsLiked,
		"isBookmarked": post.IsBookmarked,
	})

	resp := gin.H{
		"postId":       post.ID,
		"action":       req.Action,
		"timestamp":    h.opts.Now().UTC().Format(time.RFC3339Nano),
		"message":      req.Action + " action recorded successfully",
		"isLiked":      post.IsLiked,
		"isBookmarked": post.IsBookmarked,
		"engagement":   post.Engagement,
	}
	switch req.Action {
	case models.ActionLike:
		resp["liked"] = post.IsLiked
	case models.ActionBookmark:
		resp["bookmarked"] = post.IsBookmarked
	case models.ActionShare:
		resp["shared"] = true
	case models.ActionComment:
		resp["commented"] = true
	}

	ok(c, http.StatusOK, resp)
}
