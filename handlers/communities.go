package handlers

import (
	"fmt"
	"net/http"

	"sociai/models"
	"sociai/services"

	"github.com/gin-gonic/gin"
)

// GetCommunities handles GET /communities?category=&joined=.
func (h *Handler) GetCommunities(c *gin.Context) {
	communities := services.FilterCommunities(h.store.Communities(), c.Query("category"), c.Query("joined"))

	ok(c, http.StatusOK, gin.H{
		"communities": communities,
		"total":       len(communities),
	})
}

// CreateCommunity handles POST /communities.
func (h *Handler) CreateCommunity(c *gin.Context) {
	var req services.CreateCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, fmt.Errorf("decode community: %w", err), "Failed to create community")
		return
	}

	community, err := services.NewCommunity(req, h.opts.Now())
	if err != nil {
		h.handleError(c, err, "Failed to create community")
		return
	}
	h.store.AddCommunity(community)
	h.events.Publish(models.EventCommunityCreated, community)

	ok(c, http.StatusOK, gin.H{
		"community": community,
		"message":   "Community created successfully",
	})
}

// JoinCommunity handles POST /communities/:id/join.
func (h *Handler) JoinCommunity(c *gin.Context) {
	h.setMembership(c, true)
}

// LeaveCommunity handles POST /communities/:id/leave.
func (h *Handler) LeaveCommunity(c *gin.Context) {
	h.setMembership(c, false)
}

func (h *Handler) setMembership(c *gin.Context, join bool) {
	generic, event, message := "Failed to leave community", models.EventCommunityLeft, "Left community"
	if join {
		generic, event, message = "Failed to join community", models.EventCommunityJoined, "Joined community"
	}

	community, changed, err := h.store.SetMembership(c.Param("id"), join)
	if err != nil {
		h.handleError(c, err, generic)
		return
	}
	if changed {
		h.events.Publish(event, gin.H{
			"communityId": community.ID,
			"memberCount": community.MemberCount,
			"isJoined":    community.IsJoined,
		})
	} else if join {
		message = "Already a member"
	} else {
		message = "Not a member"
	}

	ok(c, http.StatusOK, gin.H{
		"community": community,
		"message":   message,
	})
}
