package domain

import "time"

// ChannelAnalysis is the canned analysis object shown on the dashboard. The
// values are fixed sample data; they are not computed from channel input.
type ChannelAnalysis struct {
	BestTimes            BestTimes            `json:"bestTimes"`
	AudienceMetrics      AudienceMetrics      `json:"audienceMetrics"`
	EngagementPatterns   EngagementPatterns   `json:"engagementPatterns"`
	TimeZoneDistribution TimeZoneDistribution `json:"timeZoneDistribution"`
}

type DaySlots struct {
	Morning   string `json:"morning"`
	Afternoon string `json:"afternoon"`
	Evening   string `json:"evening"`
}

type BestTimes struct {
	Weekday DaySlots `json:"weekday"`
	Weekend DaySlots `json:"weekend"`
}

type AudienceMetrics struct {
	Demographics Demographics `json:"demographics"`
	Engagement   Engagement   `json:"engagement"`
}

type Demographics struct {
	Age     []string `json:"age"`
	Regions []string `json:"regions"`
	Devices []string `json:"devices"`
}

type Engagement struct {
	AvgWatchTime    string `json:"avgWatchTime"`
	RetentionRate   string `json:"retentionRate"`
	InteractionRate string `json:"interactionRate"`
}

type EngagementPatterns struct {
	Likes           string `json:"likes"`
	Comments        string `json:"comments"`
	Shares          string `json:"shares"`
	AvgViewDuration string `json:"avgViewDuration"`
}

type TimeZoneDistribution struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Others    string `json:"others"`
}

// ScheduleStatus is the lifecycle state of a scheduled video. Only one state
// exists today.
type ScheduleStatus string

const ScheduleStatusScheduled ScheduleStatus = "scheduled"

// ScheduledVideo is an entry in a user's upload plan. Entries are in-memory
// bookkeeping only; nothing uploads or publishes them.
type ScheduledVideo struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Date        string         `json:"date"`
	Time        string         `json:"time"`
	Category    string         `json:"category"`
	Status      ScheduleStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
}
