package usecase

import (
	"errors"
	"strings"

	"creatorboard-backend/internal/analytics/domain"
	"creatorboard-backend/internal/analytics/repository"
)

var (
	// ErrChannelURLRequired covers an empty analyze request.
	ErrChannelURLRequired = errors.New("channel url is required")
	// ErrScheduleValidation covers a schedule entry missing required fields.
	ErrScheduleValidation = errors.New("title, date, time and category are required")
)

// sampleAnalysis is the fixed object every analysis request returns,
// matching the dashboard's sample dataset.
var sampleAnalysis = domain.ChannelAnalysis{
	BestTimes: domain.BestTimes{
		Weekday: domain.DaySlots{
			Morning:   "9:00 AM - 11:00 AM",
			Afternoon: "2:00 PM - 4:00 PM",
			Evening:   "7:00 PM - 9:00 PM",
		},
		Weekend: domain.DaySlots{
			Morning:   "10:00 AM - 12:00 PM",
			Afternoon: "3:00 PM - 5:00 PM",
			Evening:   "8:00 PM - 10:00 PM",
		},
	},
	AudienceMetrics: domain.AudienceMetrics{
		Demographics: domain.Demographics{
			Age:     []string{"18-24", "25-34", "35-44"},
			Regions: []string{"North America", "Europe", "Asia"},
			Devices: []string{"Mobile", "Desktop", "Tablet"},
		},
		Engagement: domain.Engagement{
			AvgWatchTime:    "8:45",
			RetentionRate:   "64%",
			InteractionRate: "7.2%",
		},
	},
	EngagementPatterns: domain.EngagementPatterns{
		Likes:           "12K",
		Comments:        "3.2K",
		Shares:          "2.5K",
		AvgViewDuration: "6:45",
	},
	TimeZoneDistribution: domain.TimeZoneDistribution{
		Primary:   "EST (40%)",
		Secondary: "PST (25%)",
		Others:    "GMT, IST (35%)",
	},
}

// ScheduleUpdateRequest carries the fields a schedule entry update may change.
type ScheduleUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty"`
	Time        *string `json:"time,omitempty"`
	Category    *string `json:"category,omitempty"`
}

type AnalyticsUsecase interface {
	// AnalyzeChannel returns the sample analysis for any non-empty channel URL.
	AnalyzeChannel(channelURL string) (*domain.ChannelAnalysis, error)

	AddScheduledVideo(userID, title, description, date, timeOfDay, category string) (*domain.ScheduledVideo, error)
	ListScheduledVideos(userID string) ([]*domain.ScheduledVideo, error)
	UpdateScheduledVideo(userID, id string, updates ScheduleUpdateRequest) (*domain.ScheduledVideo, error)
	RemoveScheduledVideo(userID, id string) error
}

type analyticsUsecase struct {
	scheduleRepo repository.ScheduleRepository
}

func NewAnalyticsUsecase(scheduleRepo repository.ScheduleRepository) AnalyticsUsecase {
	return &analyticsUsecase{scheduleRepo: scheduleRepo}
}

func (u *analyticsUsecase) AnalyzeChannel(channelURL string) (*domain.ChannelAnalysis, error) {
	if strings.TrimSpace(channelURL) == "" {
		return nil, ErrChannelURLRequired
	}
	analysis := sampleAnalysis
	return &analysis, nil
}

func (u *analyticsUsecase) AddScheduledVideo(userID, title, description, date, timeOfDay, category string) (*domain.ScheduledVideo, error) {
	title = strings.TrimSpace(title)
	date = strings.TrimSpace(date)
	timeOfDay = strings.TrimSpace(timeOfDay)
	category = strings.TrimSpace(category)

	if title == "" || date == "" || timeOfDay == "" || category == "" {
		return nil, ErrScheduleValidation
	}

	video := &domain.ScheduledVideo{
		UserID:      userID,
		Title:       title,
		Description: strings.TrimSpace(description),
		Date:        date,
		Time:        timeOfDay,
		Category:    category,
	}
	if err := u.scheduleRepo.Create(video); err != nil {
		return nil, err
	}
	return video, nil
}

func (u *analyticsUsecase) ListScheduledVideos(userID string) ([]*domain.ScheduledVideo, error) {
	return u.scheduleRepo.FindByUserID(userID)
}

func (u *analyticsUsecase) UpdateScheduledVideo(userID, id string, updates ScheduleUpdateRequest) (*domain.ScheduledVideo, error) {
	video, err := u.scheduleRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}

	if updates.Title != nil {
		video.Title = strings.TrimSpace(*updates.Title)
	}
	if updates.Description != nil {
		video.Description = strings.TrimSpace(*updates.Description)
	}
	if updates.Date != nil {
		video.Date = strings.TrimSpace(*updates.Date)
	}
	if updates.Time != nil {
		video.Time = strings.TrimSpace(*updates.Time)
	}
	if updates.Category != nil {
		video.Category = strings.TrimSpace(*updates.Category)
	}

	if video.Title == "" || video.Date == "" || video.Time == "" || video.Category == "" {
		return nil, ErrScheduleValidation
	}

	if err := u.scheduleRepo.Update(video); err != nil {
		return nil, err
	}
	return video, nil
}

func (u *analyticsUsecase) RemoveScheduledVideo(userID, id string) error {
	return u.scheduleRepo.Delete(userID, id)
}
