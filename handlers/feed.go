package handlers

import (
	"fmt"
	"net/http"

	"sociai/models"
	"sociai/services"

	"github.com/gin-gonic/gin"
)

// GetFeed handles GET /feed?filter=all|following|trending|ai.
func (h *Handler) GetFeed(c *gin.Context) {
	filter := c.DefaultQuery("filter", services.FeedAll)
	posts := services.FilterPosts(h.store.Posts(), filter)

	ok(c, http.StatusOK, gin.H{
		"posts": posts,
		"total": len(posts),
	})
}

// CreatePost handles POST /feed.
func (h *Handler) CreatePost(c *gin.Context) {
	var req services.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, fmt.Errorf("decode post: %w", err), "Failed to create post")
		return
	}

	post, err := services.NewPost(req, h.opts.Now())
	if err != nil {
		h.handleError(c, err, "Failed to create post")
		return
	}
	h.store.AddPost(post)
	h.events.Publish(models.EventPostCreated, post)

	ok(c, http.StatusOK, gin.H{
		"post":    post,
		"message": "Post created successfully",
	})
}
