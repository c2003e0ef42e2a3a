package usecase

import (
	"context"
	"testing"

	statsdomain "creatorboard-backend/internal/stats/domain"
	"creatorboard-backend/pkg/youtube"

	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	stats map[string]*statsdomain.VideoStats
}

func (f *fakeProvider) VideoStats(_ context.Context, videoID string) (*statsdomain.VideoStats, error) {
	if s, ok := f.stats[videoID]; ok {
		return s, nil
	}
	return nil, youtube.ErrVideoNotFound
}

func TestGetVideoStats(t *testing.T) {
	t.Parallel()

	uc := NewStatsUsecase(&fakeProvider{stats: map[string]*statsdomain.VideoStats{
		"abc123": {ID: "abc123", Title: "test video", Statistics: statsdomain.Statistics{ViewCount: 10, LikeCount: 2, CommentCount: 1}},
	}})

	stats, err := uc.GetVideoStats(context.Background(), "abc123")
	require.NoError(t, err)
	require.Equal(t, uint64(10), stats.Statistics.ViewCount)

	_, err = uc.GetVideoStats(context.Background(), "missing")
	require.ErrorIs(t, err, youtube.ErrVideoNotFound)

	_, err = uc.GetVideoStats(context.Background(), "   ")
	require.ErrorIs(t, err, ErrInvalidVideoID)
}
