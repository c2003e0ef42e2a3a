package usecase

import (
	"testing"

	"creatorboard-backend/internal/analytics/repository"

	"github.com/stretchr/testify/require"
)

func newTestUsecase() AnalyticsUsecase {
	return NewAnalyticsUsecase(repository.NewMemoryScheduleRepository())
}

func TestAnalyzeChannel_ConstantRegardlessOfInput(t *testing.T) {
	t.Parallel()

	uc := newTestUsecase()

	a, err := uc.AnalyzeChannel("https://youtube.com/@somechannel")
	require.NoError(t, err)
	b, err := uc.AnalyzeChannel("https://youtube.com/@anotherchannel")
	require.NoError(t, err)

	require.Equal(t, a, b)
	require.Equal(t, "EST (40%)", a.TimeZoneDistribution.Primary)
	require.Equal(t, "9:00 AM - 11:00 AM", a.BestTimes.Weekday.Morning)
	require.Equal(t, []string{"18-24", "25-34", "35-44"}, a.AudienceMetrics.Demographics.Age)
}

func TestAnalyzeChannel_EmptyURL(t *testing.T) {
	t.Parallel()

	uc := newTestUsecase()
	_, err := uc.AnalyzeChannel("   ")
	require.ErrorIs(t, err, ErrChannelURLRequired)
}

func TestScheduleBookkeeping(t *testing.T) {
	t.Parallel()

	uc := newTestUsecase()

	v, err := uc.AddScheduledVideo("user-1", "My video", "desc", "2026-09-01", "14:00", "Tech")
	require.NoError(t, err)
	require.NotEmpty(t, v.ID)
	require.Equal(t, "scheduled", string(v.Status))

	// Listing is scoped per user.
	list, err := uc.ListScheduledVideos("user-1")
	require.NoError(t, err)
	require.Len(t, list, 1)

	other, err := uc.ListScheduledVideos("user-2")
	require.NoError(t, err)
	require.Empty(t, other)

	// Update.
	newTitle := "Renamed"
	updated, err := uc.UpdateScheduledVideo("user-1", v.ID, ScheduleUpdateRequest{Title: &newTitle})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Title)
	require.Equal(t, "Tech", updated.Category)

	// Another user cannot touch the entry.
	_, err = uc.UpdateScheduledVideo("user-2", v.ID, ScheduleUpdateRequest{Title: &newTitle})
	require.ErrorIs(t, err, repository.ErrNotFound)
	require.ErrorIs(t, uc.RemoveScheduledVideo("user-2", v.ID), repository.ErrNotFound)

	// Remove.
	require.NoError(t, uc.RemoveScheduledVideo("user-1", v.ID))
	list, err = uc.ListScheduledVideos("user-1")
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestAddScheduledVideo_Validation(t *testing.T) {
	t.Parallel()

	uc := newTestUsecase()
	_, err := uc.AddScheduledVideo("user-1", "", "", "2026-09-01", "14:00", "Tech")
	require.ErrorIs(t, err, ErrScheduleValidation)
}
