package models

// Event types pushed to /ws subscribers.
const (
	EventConnected         = "connected"
	EventPostCreated       = "post_created"
	EventEngagementUpdated = "engagement_updated"
	EventCommunityCreated  = "community_created"
	EventCommunityJoined   = "community_joined"
	EventCommunityLeft     = "community_left"
	EventAttended          = "event_attended"
)

type Event struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp int64       `json:"timestamp"`
}
