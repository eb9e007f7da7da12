package handlers

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"
	"time"

	"sociai/database"
	"sociai/middleware"
	"sociai/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Publisher receives an event after every successful mutation.
type Publisher interface {
	Publish(eventType string, payload interface{})
}

type nopPublisher struct{}

func (nopPublisher) Publish(string, interface{}) {}

// Options tunes the simulated behaviour of the mock endpoints.
type Options struct {
	GenerateDelay   time.Duration
	EngagementDelay time.Duration

	// Rand and Now default to math/rand and time.Now.
	Rand func() float64
	Now  func() time.Time
}

// Handler serves the social API over a single Store.
type Handler struct {
	store  *database.Store
	events Publisher
	logger *zap.Logger
	opts   Options
}

func New(store *database.Store, events Publisher, logger *zap.Logger, opts Options) *Handler {
	if events == nil {
		events = nopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Rand == nil {
		opts.Rand = rand.Float64
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Handler{store: store, events: events, logger: logger, opts: opts}
}

// ok writes a success envelope.
func ok(c *gin.Context, status int, payload gin.H) {
	payload["success"] = true
	c.JSON(status, payload)
}

// fail writes an error envelope.
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// handleError maps domain errors to status codes. Anything unrecognised is
// logged and reported with the generic message.
func (h *Handler) handleError(c *gin.Context, err error, generic string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": verr.Message, "fields": verr.Fields})
	case errors.Is(err, database.ErrInvalidAction):
		fail(c, http.StatusBadRequest, "Invalid action")
	case errors.Is(err, database.ErrPostNotFound):
		fail(c, http.StatusNotFound, "Post not found")
	case errors.Is(err, database.ErrCommunityNotFound):
		fail(c, http.StatusNotFound, "Community not found")
	case errors.Is(err, database.ErrEventNotFound):
		fail(c, http.StatusNotFound, "Event not found")
	default:
		h.logger.Error(generic,
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
			zap.String("requestId", middleware.GetRequestID(c)),
		)
		_ = c.Error(err)
		fail(c, http.StatusInternalServerError, generic)
	}
}

// simulateLatency waits d or until the request is abandoned. It reports
// whether the handler should carry on.
func simulateLatency(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
