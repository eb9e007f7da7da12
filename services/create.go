package services

import (
	"strings"
	"time"

	"sociai/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultCommunityIcon = "👥"
	placeholderAvatar    = "/api/placeholder/40/40"
)

var defaultCommunityRules = []string{
	"Be respectful and constructive",
	"Stay on topic",
	"No spam or inappropriate content",
}

// CurrentUser authors every post created through the API.
var CurrentUser = models.Author{
	ID:          "current-user",
	Username:    "current_user",
	DisplayName: "Current User",
	Avatar:      placeholderAvatar,
	Verified:    false,
}

// NewID returns a process-unique, time-ordered identifier.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

type CreatePostRequest struct {
	Content     string   `json:"content"`
	Hashtags    []string `json:"hashtags"`
	Mentions    []string `json:"mentions"`
	CommunityID string   `json:"communityId"`
	AIGenerated bool     `json:"aiGenerated"`
}

// NewPost validates req and builds a post by the current user with zeroed
// counters.
func NewPost(req CreatePostRequest, now time.Time) (models.Post, error) {
	if missing := missingFields([2]string{"content", req.Content}); len(missing) > 0 {
		return models.Post{}, &ValidationError{Message: "Content is required", Fields: missing}
	}

	hashtags := req.Hashtags
	if hashtags == nil {
		hashtags = []string{}
	}
	mentions := req.Mentions
	if mentions == nil {
		mentions = []string{}
	}

	return models.Post{
		ID:     NewID(),
		Author: CurrentUser,
		Content: models.PostContent{
			Text:     req.Content,
			Hashtags: hashtags,
			Mentions: mentions,
		},
		Timestamp:   now.UTC(),
		AIGenerated: req.AIGenerated,
		CommunityID: strings.TrimSpace(req.CommunityID),
	}, nil
}

type CreateCommunityRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IsPrivate   bool   `json:"isPrivate"`

	// Icon defaults to 👥 only when absent; an explicit "" is kept.
	Icon *string `json:"icon"`
}

// NewCommunity validates req and builds a community owned and joined by the
// creator.
func NewCommunity(req CreateCommunityRequest, now time.Time) (models.Community, error) {
	missing := missingFields(
		[2]string{"name", req.Name},
		[2]string{"description", req.Description},
		[2]string{"category", req.Category},
	)
	if len(missing) > 0 {
		return models.Community{}, &ValidationError{
			Message: "Name, description, and category are required",
			Fields:  missing,
		}
	}

	icon := defaultCommunityIcon
	if req.Icon != nil {
		icon = *req.Icon
	}

	return models.Community{
		ID:          NewID(),
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		MemberCount: 1,
		Icon:        icon,
		Category:    strings.TrimSpace(req.Category),
		IsPrivate:   req.IsPrivate,
		IsJoined:    true,
		Role:        models.RoleOwner,
		Activity: models.CommunityActivity{
			ActiveMembers: 1,
		},
		Rules:     append([]string{}, defaultCommunityRules...),
		CreatedAt: now.UTC().Format(time.DateOnly),
	}, nil
}
