package services

import (
	"testing"

	"sociai/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAnalytics() models.Analytics {
	posts := make([]models.PostAnalytics, 7)
	for i := range posts {
		posts[i].ID = string(rune('a' + i))
	}
	return models.Analytics{
		Metrics: models.Metrics{
			TotalFollowers:  12540,
			TotalPosts:      234,
			TotalEngagement: 45600,
			TotalReach:      120000,
		},
		Posts: posts,
	}
}

func TestAdjustAnalytics(t *testing.T) {
	base := sampleAnalytics()

	t.Run("7d scales totals and caps posts", func(t *testing.T) {
		got := AdjustAnalytics(base, Range7d)
		assert.Equal(t, 58, got.Metrics.TotalPosts)
		assert.Equal(t, 13680, got.Metrics.TotalEngagement)
		assert.Equal(t, 12540, got.Metrics.TotalFollowers)
		assert.Equal(t, 120000, got.Metrics.TotalReach)
		assert.Len(t, got.Posts, 5)
	})

	t.Run("90d scales totals only", func(t *testing.T) {
		got := AdjustAnalytics(base, Range90d)
		assert.Equal(t, 702, got.Metrics.TotalPosts)
		assert.Equal(t, 127679, got.Metrics.TotalEngagement)
		assert.Len(t, got.Posts, 7)
	})

	for _, r := range []string{"30d", "", "1y"} {
		t.Run("unchanged for "+r, func(t *testing.T) {
			got := AdjustAnalytics(base, r)
			assert.Equal(t, base.Metrics, got.Metrics)
			assert.Len(t, got.Posts, 7)
		})
	}

	assert.Equal(t, 234, base.Metrics.TotalPosts, "snapshot must not be modified")
	assert.Len(t, base.Posts, 7)
}

func TestAdjustAnalytics7dKeepsShortLists(t *testing.T) {
	a := sampleAnalytics()
	a.Posts = a.Posts[:3]
	assert.Len(t, AdjustAnalytics(a, Range7d).Posts, 3)
}

func TestProjectAnalytics(t *testing.T) {
	a := AdjustAnalytics(sampleAnalytics(), Range30d)

	for kind, key := range map[string]string{
		"metrics":  "metrics",
		"posts":    "posts",
		"audience": "insights",
		"trends":   "trends",
		"":         "data",
		"unknown":  "data",
	} {
		got := ProjectAnalytics(a, kind)
		require.Len(t, got, 1, kind)
		assert.Contains(t, got, key, kind)
	}
}

func TestSummarizeCommunities(t *testing.T) {
	insights := models.CommunityInsights{
		WeeklyGrowth:    12.5,
		TopContributors: []models.Contributor{{ID: "1", Name: "Alex Rodriguez", Contributions: 45}},
		PopularTopics:   []models.TopicMentions{{Topic: "AI Ethics", Mentions: 89}},
	}
	s := SummarizeCommunities([]models.Community{
		{MemberCount: 10, IsJoined: true, Role: models.RoleMember, Activity: models.CommunityActivity{PostsThisWeek: 4, EngagementRate: 80, ActiveMembers: 5}},
		{MemberCount: 5, IsJoined: true, Role: models.RoleOwner, Activity: models.CommunityActivity{PostsThisWeek: 1, EngagementRate: 75, ActiveMembers: 2}},
		{MemberCount: 1, Role: "", Activity: models.CommunityActivity{EngagementRate: 50}},
	}, insights)

	assert.Equal(t, models.CommunitySummary{
		TotalCommunities:      3,
		TotalMembers:          16,
		JoinedCommunities:     2,
		ManagedCommunities:    1,
		PostsThisWeek:         5,
		ActiveMembers:         7,
		AverageEngagementRate: 68.3,
		EngagementRate:        68.3,
		WeeklyGrowth:          12.5,
		TopContributors:       insights.TopContributors,
		PopularTopics:         insights.PopularTopics,
	}, s)

	empty := SummarizeCommunities(nil, models.CommunityInsights{})
	assert.Zero(t, empty.EngagementRate)
	assert.NotNil(t, empty.TopContributors)
	assert.NotNil(t, empty.PopularTopics)
}
