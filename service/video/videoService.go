package service

import (
	"io"
	"time"
)

const (
	DefaultFeedLimit = 10
	MaxFeedLimit     = 100
)

// Author is the owning user's public profile, denormalized onto every
// feed item for display.
type Author struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type VideoView struct {
	Id          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Url         string    `json:"url"`
	Author      Author    `json:"user"`
	LikeCount   int64     `json:"like_count"`
	IsLiked     bool      `json:"is_liked"`
	CreatedAt   time.Time `json:"created_at"`
}

// FeedPage is one window of the reverse-chronological feed. An empty
// NextCursor means end of feed.
type FeedPage struct {
	Items      []VideoView `json:"items"`
	NextCursor string      `json:"next_cursor,omitempty"`
}

type VideoService interface {
	LikeService

	// GetFeedPage returns at most limit videos strictly after the
	// cursor position, personalized for the viewer when one is given.
	GetFeedPage(limit int, cursor, viewerId string) (*FeedPage, error)

	// Create records an already-stored clip for the given owner.
	Create(userId, title, url, description string) (*VideoView, error)

	// Publish streams the clip to object storage, then records it.
	Publish(userId, title, filename string, data io.Reader) (*VideoView, error)

	ListUserVideos(targetId, viewerId string) ([]VideoView, error)
	ListUserLikedVideos(targetId, viewerId string) ([]VideoView, error)
}
