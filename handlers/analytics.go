package handlers

import (
	"net/http"

	"sociai/services"

	"github.com/gin-gonic/gin"
)

// GetAnalytics handles GET /analytics?range=&type= and the path form
// /analytics/:type used by the dashboard. /analytics/communities returns the
// live community summary instead of the static snapshot.
func (h *Handler) GetAnalytics(c *gin.Context) {
	kind := c.Param("type")
	if kind == "" {
		kind = c.Query("type")
	}

	if kind == "communities" {
		ok(c, http.StatusOK, gin.H{
			"analytics": services.SummarizeCommunities(h.store.Communities(), h.store.CommunityInsights()),
		})
		return
	}

	adjusted := services.AdjustAnalytics(h.store.Analytics(), c.DefaultQuery("range", services.DefaultRange))
	ok(c, http.StatusOK, gin.H(services.ProjectAnalytics(adjusted, kind)))
}
