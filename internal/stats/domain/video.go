package domain

import "creatorboard-backend/pkg/youtube"

// VideoStats aliases the provider's value type; the stats module adds no
// fields of its own on top of it.
type VideoStats = youtube.VideoStats

type Statistics = youtube.Statistics
