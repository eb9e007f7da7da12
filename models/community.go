package models

// Community roles, ordered by privilege.
const (
	RoleMember    = "member"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
	RoleOwner     = "owner"
)

var roleRank = map[string]int{
	RoleMember:    1,
	RoleModerator: 2,
	RoleAdmin:     3,
	RoleOwner:     4,
}

// RoleRank returns the privilege rank of role; 0 for no or unknown role.
func RoleRank(role string) int {
	return roleRank[role]
}

type CommunityActivity struct {
	PostsThisWeek  int     `json:"postsThisWeek" yaml:"postsThisWeek"`
	EngagementRate float64 `json:"engagementRate" yaml:"engagementRate"`
	ActiveMembers  int     `json:"activeMembers" yaml:"activeMembers"`
}

type Community struct {
	ID          string            `json:"id" yaml:"id"`
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description" yaml:"description"`
	MemberCount int               `json:"memberCount" yaml:"memberCount"`
	Icon        string            `json:"icon" yaml:"icon"`
	Category    string            `json:"category" yaml:"category"`
	IsPrivate   bool              `json:"isPrivate" yaml:"isPrivate"`
	IsJoined    bool              `json:"isJoined" yaml:"isJoined"`
	Role        string            `json:"role,omitempty" yaml:"role"`
	Activity    CommunityActivity `json:"activity" yaml:"activity"`
	Rules       []string          `json:"rules" yaml:"rules"`
	CreatedAt   string            `json:"createdAt" yaml:"createdAt"`
}

func (c Community) Clone() Community {
	c.Rules = append([]string{}, c.Rules...)
	return c
}

// CommunityEvent is a scheduled meetup. Type is online, offline or hybrid.
type CommunityEvent struct {
	ID          string `json:"id" yaml:"id"`
	CommunityID string `json:"communityId" yaml:"communityId"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Date        string `json:"date" yaml:"date"`
	Attendees   int    `json:"attendees" yaml:"attendees"`
	Type        string `json:"type" yaml:"type"`
}

type Contributor struct {
	ID            string `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	Contributions int    `json:"contributions" yaml:"contributions"`
}

type TopicMentions struct {
	Topic    string `json:"topic" yaml:"topic"`
	Mentions int    `json:"mentions" yaml:"mentions"`
}

// CommunityInsights holds the community dashboard figures that can't be
// derived from the community list.
type CommunityInsights struct {
	WeeklyGrowth    float64         `json:"weeklyGrowth" yaml:"weeklyGrowth"`
	TopContributors []Contributor   `json:"topContributors" yaml:"topContributors"`
	PopularTopics   []TopicMentions `json:"popularTopics" yaml:"popularTopics"`
}

// CommunitySummary is the aggregate served by /analytics/communities.
// EngagementRate and AverageEngagementRate carry the same value.
type CommunitySummary struct {
	TotalCommunities      int     `json:"totalCommunities"`
	TotalMembers          int     `json:"totalMembers"`
	JoinedCommunities     int     `json:"joinedCommunities"`
	ManagedCommunities    int     `json:"managedCommunities"`
	PostsThisWeek         int     `json:"postsThisWeek"`
	ActiveMembers         int     `json:"activeMembers"`
	AverageEngagementRate float64 `json:"averageEngagementRate"`
	EngagementRate        float64 `json:"engagementRate"`

	WeeklyGrowth    float64         `json:"weeklyGrowth"`
	TopContributors []Contributor   `json:"topContributors"`
	PopularTopics   []TopicMentions `json:"popularTopics"`
}
