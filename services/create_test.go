package services

import (
	"errors"
	"testing"
	"time"

	"sociai/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPost(t *testing.T) {
	now := time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)

	p, err := NewPost(CreatePostRequest{Content: "hello world", Hashtags: []string{"go"}}, now)
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, CurrentUser, p.Author)
	assert.Equal(t, "hello world", p.Content.Text)
	assert.Equal(t, []string{"go"}, p.Content.Hashtags)
	assert.NotNil(t, p.Content.Mentions)
	assert.Equal(t, models.Engagement{}, p.Engagement)
	assert.False(t, p.IsLiked)
	assert.False(t, p.IsBookmarked)
	assert.True(t, now.Equal(p.Timestamp))
}

func TestNewPostIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		p, err := NewPost(CreatePostRequest{Content: "x"}, time.Now())
		require.NoError(t, err)
		require.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
}

func TestNewPostRequiresContent(t *testing.T) {
	_, err := NewPost(CreatePostRequest{Content: "  "}, time.Now())

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Content is required", verr.Message)
	assert.Equal(t, []string{"content"}, verr.Fields)
}

func TestNewCommunity(t *testing.T) {
	now := time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC)

	c, err := NewCommunity(CreateCommunityRequest{
		Name:        "  Gophers ",
		Description: "Go people",
		Category:    " Technology",
	}, now)
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Gophers", c.Name)
	assert.Equal(t, "Technology", c.Category)
	assert.Equal(t, 1, c.MemberCount)
	assert.True(t, c.IsJoined)
	assert.Equal(t, models.RoleOwner, c.Role)
	assert.Equal(t, "👥", c.Icon)
	assert.False(t, c.IsPrivate)
	assert.Equal(t, models.CommunityActivity{ActiveMembers: 1}, c.Activity)
	assert.Len(t, c.Rules, 3)
	assert.Equal(t, "2024-05-01", c.CreatedAt)
}

func TestNewCommunityKeepsIconAndPrivacy(t *testing.T) {
	art := "🎨"
	c, err := NewCommunity(CreateCommunityRequest{
		Name: "Art", Description: "d", Category: "Creative", Icon: &art, IsPrivate: true,
	}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "🎨", c.Icon)
	assert.True(t, c.IsPrivate)

	blank := ""
	c, err = NewCommunity(CreateCommunityRequest{
		Name: "Plain", Description: "d", Category: "Creative", Icon: &blank,
	}, time.Now())
	require.NoError(t, err)
	assert.Empty(t, c.Icon)
}

func TestNewCommunityValidation(t *testing.T) {
	tests := []struct {
		name string
		req  CreateCommunityRequest
		want []string
	}{
		{"all missing", CreateCommunityRequest{}, []string{"name", "description", "category"}},
		{"blank name", CreateCommunityRequest{Name: " ", Description: "d", Category: "c"}, []string{"name"}},
		{"blank category", CreateCommunityRequest{Name: "n", Description: "d", Category: "\t"}, []string{"category"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCommunity(tt.req, time.Now())
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, "Name, description, and category are required", verr.Message)
			assert.Equal(t, tt.want, verr.Fields)
		})
	}
}
