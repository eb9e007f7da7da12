package models

type WeeklyGrowth struct {
	Followers  float64 `json:"followers" yaml:"followers"`
	Engagement float64 `json:"engagement" yaml:"engagement"`
	Reach      float64 `json:"reach" yaml:"reach"`
}

type Metrics struct {
	TotalFollowers  int          `json:"totalFollowers" yaml:"totalFollowers"`
	TotalPosts      int          `json:"totalPosts" yaml:"totalPosts"`
	TotalEngagement int          `json:"totalEngagement" yaml:"totalEngagement"`
	TotalReach      int          `json:"totalReach" yaml:"totalReach"`
	WeeklyGrowth    WeeklyGrowth `json:"weeklyGrowth" yaml:"weeklyGrowth"`
}

type PostMetrics struct {
	Likes          int     `json:"likes" yaml:"likes"`
	Comments       int     `json:"comments" yaml:"comments"`
	Shares         int     `json:"shares" yaml:"shares"`
	Views          int     `json:"views" yaml:"views"`
	EngagementRate float64 `json:"engagementRate" yaml:"engagementRate"`
}

type PostAnalytics struct {
	ID          string      `json:"id" yaml:"id"`
	Content     string      `json:"content" yaml:"content"`
	Timestamp   string      `json:"timestamp" yaml:"timestamp"`
	Metrics     PostMetrics `json:"metrics" yaml:"metrics"`
	Performance string      `json:"performance" yaml:"performance"` // high, medium, low
}

type AgeBucket struct {
	Range      string  `json:"range" yaml:"range"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

type LocationBucket struct {
	Country    string  `json:"country" yaml:"country"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

type InterestBucket struct {
	Interest   string  `json:"interest" yaml:"interest"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

type Demographics struct {
	Age       []AgeBucket      `json:"age" yaml:"age"`
	Location  []LocationBucket `json:"location" yaml:"location"`
	Interests []InterestBucket `json:"interests" yaml:"interests"`
}

type PeakHour struct {
	Hour       int     `json:"hour" yaml:"hour"`
	Engagement float64 `json:"engagement" yaml:"engagement"`
}

type AudienceActivity struct {
	BestTimes []string   `json:"bestTimes" yaml:"bestTimes"`
	BestDays  []string   `json:"bestDays" yaml:"bestDays"`
	PeakHours []PeakHour `json:"peakHours" yaml:"peakHours"`
}

type AudienceInsights struct {
	Demographics Demographics     `json:"demographics" yaml:"demographics"`
	Activity     AudienceActivity `json:"activity" yaml:"activity"`
}

type DailyTrend struct {
	Date       string `json:"date" yaml:"date"`
	Engagement int    `json:"engagement" yaml:"engagement"`
	Reach      int    `json:"reach" yaml:"reach"`
}

type HashtagTrend struct {
	Tag         string `json:"tag" yaml:"tag"`
	Performance int    `json:"performance" yaml:"performance"`
	Trend       string `json:"trend" yaml:"trend"` // up, down, stable
}

type ContentTypeTrend struct {
	Type          string `json:"type" yaml:"type"`
	AvgEngagement int    `json:"avgEngagement" yaml:"avgEngagement"`
	Count         int    `json:"count" yaml:"count"`
}

type EngagementTrends struct {
	Daily        []DailyTrend       `json:"daily" yaml:"daily"`
	Hashtags     []HashtagTrend     `json:"hashtags" yaml:"hashtags"`
	ContentTypes []ContentTypeTrend `json:"contentTypes" yaml:"contentTypes"`
}

// Analytics is the read-only dashboard snapshot.
type Analytics struct {
	Metrics  Metrics          `json:"metrics" yaml:"metrics"`
	Posts    []PostAnalytics  `json:"posts" yaml:"posts"`
	Insights AudienceInsights `json:"insights" yaml:"insights"`
	Trends   EngagementTrends `json:"trends" yaml:"trends"`
}
