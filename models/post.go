package models

import "time"

// Author is the public profile attached to a post.
type Author struct {
	ID          string `json:"id" yaml:"id"`
	Username    string `json:"username" yaml:"username"`
	DisplayName string `json:"displayName" yaml:"displayName"`
	Avatar      string `json:"avatar" yaml:"avatar"`
	Verified    bool   `json:"verified" yaml:"verified"`
}

type PostContent struct {
	Text     string   `json:"text" yaml:"text"`
	Hashtags []string `json:"hashtags" yaml:"hashtags"`
	Mentions []string `json:"mentions" yaml:"mentions"`
}

// Engagement holds the per-post counters. All values are non-negative.
type Engagement struct {
	Likes     int `json:"likes" yaml:"likes"`
	Comments  int `json:"comments" yaml:"comments"`
	Shares    int `json:"shares" yaml:"shares"`
	Bookmarks int `json:"bookmarks" yaml:"bookmarks"`
	Views     int `json:"views" yaml:"views"`
}

type Post struct {
	ID           string      `json:"id"`
	Author       Author      `json:"author"`
	Content      PostContent `json:"content"`
	Engagement   Engagement  `json:"engagement"`
	Timestamp    time.Time   `json:"timestamp"`
	IsLiked      bool        `json:"isLiked"`
	IsBookmarked bool        `json:"isBookmarked"`
	AIGenerated  bool        `json:"aiGenerated"`
	CommunityID  string      `json:"communityId,omitempty"` // weak reference, lookup only
}

// Clone returns a deep copy so callers can't alias the store's slices.
func (p Post) Clone() Post {
	p.Content.Hashtags = append([]string{}, p.Content.Hashtags...)
	p.Content.Mentions = append([]string{}, p.Content.Mentions...)
	return p
}

// Engagement actions accepted by POST /engagement.
const (
	ActionLike     = "like"
	ActionBookmark = "bookmark"
	ActionShare    = "share"
	ActionComment  = "comment"
)

func IsEngagementAction(action string) bool {
	switch action {
	case ActionLike, ActionBookmark, ActionShare, ActionComment:
		return true
	}
	return false
}
