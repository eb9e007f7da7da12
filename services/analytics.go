package services

import (
	"math"

	"sociai/models"
)

// Analytics time ranges. Anything else behaves like the default.
const (
	Range7d      = "7d"
	Range30d     = "30d"
	Range90d     = "90d"
	DefaultRange = Range30d
)

// rangeScale is the simulated aggregate for a range relative to the 30 day
// snapshot. It only touches totals, never per-post records.
type rangeScale struct {
	posts      float64
	engagement float64
	postLimit  int // 0 means no limit
}

var rangeScales = map[string]rangeScale{
	Range7d:  {posts: 0.25, engagement: 0.3, postLimit: 5},
	Range90d: {posts: 3, engagement: 2.8},
}

// AdjustAnalytics scales the snapshot for the requested range. The input is
// not modified.
func AdjustAnalytics(snapshot models.Analytics, timeRange string) models.Analytics {
	out := snapshot
	out.Posts = append([]models.PostAnalytics{}, snapshot.Posts...)

	scale, ok := rangeScales[timeRange]
	if !ok {
		return out
	}
	out.Metrics.TotalPosts = scaleFloor(snapshot.Metrics.TotalPosts, scale.posts)
	out.Metrics.TotalEngagement = scaleFloor(snapshot.Metrics.TotalEngagement, scale.engagement)
	if scale.postLimit > 0 && len(out.Posts) > scale.postLimit {
		out.Posts = out.Posts[:scale.postLimit]
	}
	return out
}

func scaleFloor(v int, factor float64) int {
	return int(math.Floor(float64(v) * factor))
}

// ProjectAnalytics picks the part of the adjusted snapshot named by kind.
// Unknown or empty kinds return everything under "data".
func ProjectAnalytics(a models.Analytics, kind string) map[string]interface{} {
	switch kind {
	case "metrics":
		return map[string]interface{}{"metrics": a.Metrics}
	case "posts":
		return map[string]interface{}{"posts": a.Posts}
	case "audience":
		return map[string]interface{}{"insights": a.Insights}
	case "trends":
		return map[string]interface{}{"trends": a.Trends}
	}
	return map[string]interface{}{"data": a}
}

// SummarizeCommunities aggregates the community list for the dashboard and
// merges in the static insights.
func SummarizeCommunities(communities []models.Community, insights models.CommunityInsights) models.CommunitySummary {
	s := models.CommunitySummary{
		WeeklyGrowth:    insights.WeeklyGrowth,
		TopContributors: append([]models.Contributor{}, insights.TopContributors...),
		PopularTopics:   append([]models.TopicMentions{}, insights.PopularTopics...),
	}
	var rate float64
	for _, c := range communities {
		s.TotalCommunities++
		s.TotalMembers += c.MemberCount
		s.PostsThisWeek += c.Activity.PostsThisWeek
		s.ActiveMembers += c.Activity.ActiveMembers
		rate += c.Activity.EngagementRate
		if c.IsJoined {
			s.JoinedCommunities++
		}
		if models.RoleRank(c.Role) >= models.RoleRank(models.RoleModerator) {
			s.ManagedCommunities++
		}
	}
	if s.TotalCommunities > 0 {
		s.AverageEngagementRate = math.Round(rate/float64(s.TotalCommunities)*10) / 10
	}
	s.EngagementRate = s.AverageEngagementRate
	return s
}
