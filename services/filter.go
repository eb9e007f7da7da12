package services

import (
	"strings"

	"sociai/models"
)

// Feed filters accepted by GET /feed.
const (
	FeedAll       = "all"
	FeedFollowing = "following"
	FeedTrending  = "trending"
	FeedAI        = "ai"
)

const (
	assistantAuthorID = "ai-bot"
	trendingLikes     = 100
)

// matches reports whether value passes an optional filter. An empty filter
// or the "all" sentinel disables it.
func matches(filter, value string) bool {
	if filter == "" || strings.EqualFold(filter, "all") {
		return true
	}
	return strings.EqualFold(filter, value)
}

// FilterPosts returns the posts visible under the named feed filter.
// Unknown filters fall back to the full feed.
func FilterPosts(posts []models.Post, filter string) []models.Post {
	var keep func(models.Post) bool
	switch filter {
	case FeedFollowing:
		keep = func(p models.Post) bool { return p.Author.ID != assistantAuthorID }
	case FeedTrending:
		keep = func(p models.Post) bool { return p.Engagement.Likes > trendingLikes }
	case FeedAI:
		keep = func(p models.Post) bool { return p.AIGenerated }
	default:
		return posts
	}

	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// FilterCommunities applies the category and joined filters. joined only
// takes effect when it is exactly "true".
func FilterCommunities(communities []models.Community, category, joined string) []models.Community {
	out := make([]models.Community, 0, len(communities))
	for _, c := range communities {
		if !matches(category, c.Category) {
			continue
		}
		if joined == "true" && !c.IsJoined {
			continue
		}
		out = append(out, c)
	}
	return out
}

func FilterIdeas(ideas []models.ContentIdea, category, difficulty string) []models.ContentIdea {
	out := make([]models.ContentIdea, 0, len(ideas))
	for _, i := range ideas {
		if matches(category, i.Category) && matches(difficulty, i.Difficulty) {
			out = append(out, i)
		}
	}
	return out
}

// FilterEvents keeps the events of one community. An empty id keeps all.
func FilterEvents(events []models.CommunityEvent, communityID string) []models.CommunityEvent {
	out := make([]models.CommunityEvent, 0, len(events))
	for _, e := range events {
		if communityID == "" || e.CommunityID == communityID {
			out = append(out, e)
		}
	}
	return out
}

func FilterTemplates(templates []models.ContentTemplate, kind string) []models.ContentTemplate {
	out := make([]models.ContentTemplate, 0, len(templates))
	for _, t := range templates {
		if matches(kind, t.Type) {
			out = append(out, t)
		}
	}
	return out
}

// Idea engagement jitter bounds.
const (
	JitterSpread      = 5.0
	MinIdeaEngagement = 60.0
	MaxIdeaEngagement = 95.0
)

// JitterIdeas returns copies of ideas with estimatedEngagement perturbed by
// up to ±JitterSpread and clamped to [60, 95]. rnd must return values in
// [0, 1). The output is intentionally non-deterministic.
func JitterIdeas(ideas []models.ContentIdea, rnd func() float64) []models.ContentIdea {
	out := make([]models.ContentIdea, len(ideas))
	for i, idea := range ideas {
		idea = idea.Clone()
		e := idea.EstimatedEngagement + (rnd()*2*JitterSpread - JitterSpread)
		idea.EstimatedEngagement = max(MinIdeaEngagement, min(MaxIdeaEngagement, e))
		out[i] = idea
	}
	return out
}
