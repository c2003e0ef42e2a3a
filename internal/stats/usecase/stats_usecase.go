package usecase

import (
	"context"
	"errors"
	"strings"

	statsdomain "creatorboard-backend/internal/stats/domain"
)

// ErrInvalidVideoID covers empty or whitespace-only identifiers.
var ErrInvalidVideoID = errors.New("video id is required")

// StatsProvider is the upstream statistics lookup (the YouTube service).
type StatsProvider interface {
	VideoStats(ctx context.Context, videoID string) (*statsdomain.VideoStats, error)
}

// StatsUsecase proxies a single statistics lookup per request.
type StatsUsecase interface {
	GetVideoStats(ctx context.Context, videoID string) (*statsdomain.VideoStats, error)
}

type statsUsecase struct {
	provider StatsProvider
}

func NewStatsUsecase(provider StatsProvider) StatsUsecase {
	return &statsUsecase{provider: provider}
}

func (u *statsUsecase) GetVideoStats(ctx context.Context, videoID string) (*statsdomain.VideoStats, error) {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return nil, ErrInvalidVideoID
	}
	return u.provider.VideoStats(ctx, videoID)
}
