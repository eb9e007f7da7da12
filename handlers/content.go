package handlers

import (
	"fmt"
	"net/http"

	"sociai/services"

	"github.com/gin-gonic/gin"
)

// GetContentIdeas handles GET /content/ideas?category=&difficulty=. The
// engagement estimates are re-jittered on every call.
func (h *Handler) GetContentIdeas(c *gin.Context) {
	ideas := services.FilterIdeas(h.store.Ideas(), c.Query("category"), c.Query("difficulty"))
	ideas = services.JitterIdeas(ideas, h.opts.Rand)

	ok(c, http.StatusOK, gin.H{
		"ideas": ideas,
		"total": len(ideas),
	})
}

// GenerateContent handles POST /content/generate.
func (h *Handler) GenerateContent(c *gin.Context) {
	var req services.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, fmt.Errorf("decode generate request: %w", err), "Failed to generate content")
		return
	}

	out, err := services.Generate(req, h.opts.Now())
	if err != nil {
		h.handleError(c, err, "Failed to generate content")
		return
	}

	if !simulateLatency(c.Request.Context(), h.opts.GenerateDelay) {
		return
	}

	ok(c, http.StatusOK, gin.H{
		"content":  out.Content,
		"metadata": out.Metadata,
	})
}

// GetContentTemplates handles GET /content/templates?type=.
func (h *Handler) GetContentTemplates(c *gin.Context) {
	templates := services.FilterTemplates(h.store.Templates(), c.Query("type"))

	ok(c, http.StatusOK, gin.H{
		"templates": templates,
		"total":     len(templates),
	})
}

// GetContentAnalytics handles GET /content/analytics.
func (h *Handler) GetContentAnalytics(c *gin.Context) {
	ok(c, http.StatusOK, gin.H{
		"analytics": h.store.ContentAnalytics(),
	})
}
