// Package database is the in-memory store behind the mock API. State lives
// for the lifetime of the Store; nothing is written to disk.
package database

import (
	"errors"
	"sync"

	"sociai/fixtures"
	"sociai/models"
)

var (
	ErrPostNotFound      = errors.New("post not found")
	ErrCommunityNotFound = errors.New("community not found")
	ErrEventNotFound     = errors.New("event not found")
	ErrInvalidAction     = errors.New("invalid engagement action")
)

// Store holds the mutable collections. Each collection has its own lock so
// a slow feed read never blocks community writes.
type Store struct {
	postsMu sync.RWMutex
	posts   []models.Post

	communitiesMu sync.RWMutex
	communities   []models.Community

	eventsMu sync.RWMutex
	events   []models.CommunityEvent

	ideasMu sync.RWMutex
	ideas   []models.ContentIdea

	// read-only after New
	templates         []models.ContentTemplate
	analytics         models.Analytics
	contentAnalytics  models.ContentAnalytics
	communityInsights models.CommunityInsights
}

// New builds a store from seed. The seed is copied; later changes to it are
// not visible to the store.
func New(seed *fixtures.Seed) *Store {
	s := &Store{
		analytics:         seed.Analytics,
		contentAnalytics:  seed.ContentAnalytics,
		communityInsights: seed.CommunityInsights,
	}
	for _, p := range seed.Posts {
		s.posts = append(s.posts, p.Clone())
	}
	for _, c := range seed.Communities {
		s.communities = append(s.communities, c.Clone())
	}
	s.events = append(s.events, seed.Events...)
	for _, i := range seed.Ideas {
		s.ideas = append(s.ideas, i.Clone())
	}
	for _, t := range seed.Templates {
		s.templates = append(s.templates, t.Clone())
	}
	return s
}

// Posts returns a snapshot of all posts, most recent first.
func (s *Store) Posts() []models.Post {
	s.postsMu.RLock()
	defer s.postsMu.RUnlock()

	out := make([]models.Post, len(s.posts))
	for i, p := range s.posts {
		out[i] = p.Clone()
	}
	return out
}

// AddPost prepends p.
func (s *Store) AddPost(p models.Post) models.Post {
	s.postsMu.Lock()
	defer s.postsMu.Unlock()

	s.posts = append([]models.Post{p.Clone()}, s.posts...)
	return p
}

// ApplyEngagement records action on the post with id and returns the
// updated post. like and bookmark toggle; share and comment only count up.
func (s *Store) ApplyEngagement(id, action string) (models.Post, error) {
	if !models.IsEngagementAction(action) {
		return models.Post{}, ErrInvalidAction
	}

	s.postsMu.Lock()
	defer s.postsMu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != id {
			continue
		}
		p := &s.posts[i]
		switch action {
		case models.ActionLike:
			p.IsLiked = !p.IsLiked
			p.Engagement.Likes = step(p.Engagement.Likes, p.IsLiked)
		case models.ActionBookmark:
			p.IsBookmarked = !p.IsBookmarked
			p.Engagement.Bookmarks = step(p.Engagement.Bookmarks, p.IsBookmarked)
		case models.ActionShare:
			p.Engagement.Shares++
		case models.ActionComment:
			p.Engagement.Comments++
		}
		return p.Clone(), nil
	}
	return models.Post{}, ErrPostNotFound
}

// step moves a counter one up or one down, never below zero.
func step(n int, up bool) int {
	if up {
		return n + 1
	}
	if n > 0 {
		return n - 1
	}
	return 0
}

func (s *Store) Communities() []models.Community {
	s.communitiesMu.RLock()
	defer s.communitiesMu.RUnlock()

	out := make([]models.Community, len(s.communities))
	for i, c := range s.communities {
		out[i] = c.Clone()
	}
	return out
}

func (s *Store) AddCommunity(c models.Community) models.Community {
	s.communitiesMu.Lock()
	defer s.communitiesMu.Unlock()

	s.communities = append([]models.Community{c.Clone()}, s.communities...)
	return c
}

// SetMembership joins or leaves the community with id. memberCount moves by
// exactly one when the membership actually changes. changed reports whether
// it did.
func (s *Store) SetMembership(id string, join bool) (c models.Community, changed bool, err error) {
	s.communitiesMu.Lock()
	defer s.communitiesMu.Unlock()

	for i := range s.communities {
		if s.communities[i].ID != id {
			continue
		}
		cur := &s.communities[i]
		if cur.IsJoined != join {
			cur.IsJoined = join
			cur.MemberCount = step(cur.MemberCount, join)
			changed = true
		}
		return cur.Clone(), changed, nil
	}
	return models.Community{}, false, ErrCommunityNotFound
}

// Events returns a snapshot of the scheduled events.
func (s *Store) Events() []models.CommunityEvent {
	s.eventsMu.RLock()
	defer s.eventsMu.RUnlock()

	return append([]models.CommunityEvent{}, s.events...)
}

// AttendEvent adds one attendee to the event with id. Attendance isn't
// tracked per viewer, so every call counts.
func (s *Store) AttendEvent(id string) (models.CommunityEvent, error) {
	s.eventsMu.Lock()
	defer s.eventsMu.Unlock()

	for i := range s.events {
		if s.events[i].ID == id {
			s.events[i].Attendees++
			return s.events[i], nil
		}
	}
	return models.CommunityEvent{}, ErrEventNotFound
}

func (s *Store) Ideas() []models.ContentIdea {
	s.ideasMu.RLock()
	defer s.ideasMu.RUnlock()

	out := make([]models.ContentIdea, len(s.ideas))
	for i, idea := range s.ideas {
		out[i] = idea.Clone()
	}
	return out
}

func (s *Store) Templates() []models.ContentTemplate {
	out := make([]models.ContentTemplate, len(s.templates))
	for i, t := range s.templates {
		out[i] = t.Clone()
	}
	return out
}

// ContentAnalytics returns the creator analytics snapshot. Callers must
// treat it as read-only.
func (s *Store) ContentAnalytics() models.ContentAnalytics {
	return s.contentAnalytics
}

// CommunityInsights returns the static community dashboard figures.
// Callers must treat it as read-only.
func (s *Store) CommunityInsights() models.CommunityInsights {
	return s.communityInsights
}

// Analytics returns the dashboard snapshot. Callers must treat it as
// read-only.
func (s *Store) Analytics() models.Analytics {
	return s.analytics
}
