// Package fixtures holds the seed data shared by the API and the dashboard.
package fixtures

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"time"

	"sociai/models"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

// Seed is the full initial state of the mock store.
type Seed struct {
	Posts       []models.Post            `json:"posts"`
	Communities []models.Community       `json:"communities"`
	Events      []models.CommunityEvent  `json:"events"`
	Ideas       []models.ContentIdea     `json:"ideas"`
	Templates   []models.ContentTemplate `json:"templates"`
	Analytics   models.Analytics         `json:"analytics"`

	ContentAnalytics  models.ContentAnalytics  `json:"contentAnalytics"`
	CommunityInsights models.CommunityInsights `json:"communityInsights"`
}


// postSeed carries a relative age instead of an absolute timestamp so the
// feed always looks fresh.
type postSeed struct {
	ID           string             `yaml:"id"`
	Author       models.Author      `yaml:"author"`
	Content      models.PostContent `yaml:"content"`
	Engagement   models.Engagement  `yaml:"engagement"`
	PostedAgo    string             `yaml:"postedAgo"`
	IsLiked      bool               `yaml:"isLiked"`
	IsBookmarked bool               `yaml:"isBookmarked"`
	AIGenerated  bool               `yaml:"aiGenerated"`
	CommunityID  string             `yaml:"communityId"`
}

// Load reads the seed from dir, or from the embedded copy when dir is empty.
// Post timestamps are resolved against now.
func Load(dir string, now time.Time) (*Seed, error) {
	var fsys fs.FS = embedded
	root := "data"
	if dir != "" {
		fsys = os.DirFS(dir)
		root = "."
	}

	var posts []postSeed
	if err := decode(fsys, root+"/posts.yaml", &posts); err != nil {
		return nil, err
	}

	seed := &Seed{Posts: make([]models.Post, 0, len(posts))}
	for _, p := range posts {
		age, err := time.ParseDuration(p.PostedAgo)
		if err != nil && p.PostedAgo != "" {
			return nil, fmt.Errorf("post %s: invalid postedAgo %q: %w", p.ID, p.PostedAgo, err)
		}
		seed.Posts = append(seed.Posts, models.Post{
			ID:           p.ID,
			Author:       p.Author,
			Content:      normalizeContent(p.Content),
			Engagement:   p.Engagement,
			Timestamp:    now.Add(-age).UTC(),
			IsLiked:      p.IsLiked,
			IsBookmarked: p.IsBookmarked,
			AIGenerated:  p.AIGenerated,
			CommunityID:  p.CommunityID,
		})
	}

	for _, f := range []struct {
		name string
		out  interface{}
	}{
		{"communities.yaml", &seed.Communities},
		{"events.yaml", &seed.Events},
		{"ideas.yaml", &seed.Ideas},
		{"templates.yaml", &seed.Templates},
		{"analytics.yaml", &seed.Analytics},
		{"content_analytics.yaml", &seed.ContentAnalytics},
		{"community_analytics.yaml", &seed.CommunityInsights},
	} {
		if err := decode(fsys, root+"/"+f.name, f.out); err != nil {
			return nil, err
		}
	}

	for i := range seed.Communities {
		if seed.Communities[i].Rules == nil {
			seed.Communities[i].Rules = []string{}
		}
	}
	for i := range seed.Ideas {
		if seed.Ideas[i].Hashtags == nil {
			seed.Ideas[i].Hashtags = []string{}
		}
	}
	for i := range seed.Templates {
		if seed.Templates[i].Variables == nil {
			seed.Templates[i].Variables = []string{}
		}
	}
	if seed.Events == nil {
		seed.Events = []models.CommunityEvent{}
	}
	if seed.CommunityInsights.TopContributors == nil {
		seed.CommunityInsights.TopContributors = []models.Contributor{}
	}
	if seed.CommunityInsights.PopularTopics == nil {
		seed.CommunityInsights.PopularTopics = []models.TopicMentions{}
	}
	return seed, nil
}

func decode(fsys fs.FS, name string, out interface{}) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse fixture %s: %w", name, err)
	}
	return nil
}

// JSON encodes nil slices as null; the dashboard expects [].
func normalizeContent(c models.PostContent) models.PostContent {
	if c.Hashtags == nil {
		c.Hashtags = []string{}
	}
	if c.Mentions == nil {
		c.Mentions = []string{}
	}
	return c
}
