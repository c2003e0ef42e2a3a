// Package youtube wraps the YouTube Data API calls the dashboard needs.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

// ErrVideoNotFound is returned when the API answers with an empty item list.
var ErrVideoNotFound = errors.New("video not found")

// VideoStats is the typed projection of a videos.list item that the
// dashboard consumes.
type VideoStats struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Statistics Statistics `json:"statistics"`
}

type Statistics struct {
	ViewCount    uint64 `json:"viewCount"`
	LikeCount    uint64 `json:"likeCount"`
	CommentCount uint64 `json:"commentCount"`
}

type Service struct {
	apiKey string
}

func NewService(apiKey string) *Service {
	return &Service{apiKey: apiKey}
}

// VideoStats fetches view/like/comment counts for a single video. One
// pass-through call per request; no caching or retries.
func (s *Service) VideoStats(ctx context.Context, videoID string) (*VideoStats, error) {
	srv, err := yt.NewService(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("unable to create YouTube service: %v", err)
	}

	resp, err := srv.Videos.List([]string{"statistics", "snippet"}).Id(videoID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve video statistics: %w", err)
	}

	if len(resp.Items) == 0 {
		return nil, ErrVideoNotFound
	}

	item := resp.Items[0]
	stats := &VideoStats{
		ID: item.Id,
	}
	if item.Snippet != nil {
		stats.Title = item.Snippet.Title
	}
	if item.Statistics != nil {
		stats.Statistics = Statistics{
			ViewCount:    item.Statistics.ViewCount,
			LikeCount:    item.Statistics.LikeCount,
			CommentCount: item.Statistics.CommentCount,
		}
	}
	return stats, nil
}

// ParseVideoID extracts a video identifier from a watch URL. Supported forms
// are youtube.com/watch?v=<id> and youtu.be/<id>.
func ParseVideoID(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid video URL: %v", err)
	}

	switch {
	case strings.Contains(u.Hostname(), "youtube.com"):
		if id := u.Query().Get("v"); id != "" {
			return id, nil
		}
	case strings.Contains(u.Hostname(), "youtu.be"):
		if id := strings.TrimPrefix(u.Path, "/"); id != "" {
			return id, nil
		}
	}
	return "", errors.New("not a recognized video URL")
}
