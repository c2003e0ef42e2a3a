package repository

import (
	"errors"
	"sort"
	"sync"
	"time"

	"creatorboard-backend/internal/analytics/domain"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an entry does not exist or belongs to a
// different user.
var ErrNotFound = errors.New("scheduled video not found")

// ScheduleRepository stores a user's scheduled videos.
type ScheduleRepository interface {
	Create(video *domain.ScheduledVideo) error
	FindByUserID(userID string) ([]*domain.ScheduledVideo, error)
	FindByID(userID, id string) (*domain.ScheduledVideo, error)
	Update(video *domain.ScheduledVideo) error
	Delete(userID, id string) error
}

// memoryScheduleRepository keeps entries in process memory. The feature has
// no persistence in the source system, so a restart clears the list.
type memoryScheduleRepository struct {
	mu     sync.RWMutex
	videos map[string]*domain.ScheduledVideo // keyed by ID
}

func NewMemoryScheduleRepository() ScheduleRepository {
	return &memoryScheduleRepository{
		videos: make(map[string]*domain.ScheduledVideo),
	}
}

func (r *memoryScheduleRepository) Create(video *domain.ScheduledVideo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	video.ID = uuid.New().String()
	video.Status = domain.ScheduleStatusScheduled
	video.CreatedAt = time.Now()

	clone := *video
	r.videos[video.ID] = &clone
	return nil
}

func (r *memoryScheduleRepository) FindByUserID(userID string) ([]*domain.ScheduledVideo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.ScheduledVideo
	for _, v := range r.videos {
		if v.UserID == userID {
			clone := *v
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *memoryScheduleRepository) FindByID(userID, id string) (*domain.ScheduledVideo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.videos[id]
	if !ok || v.UserID != userID {
		return nil, ErrNotFound
	}
	clone := *v
	return &clone, nil
}

func (r *memoryScheduleRepository) Update(video *domain.ScheduledVideo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.videos[video.ID]
	if !ok || existing.UserID != video.UserID {
		return ErrNotFound
	}
	video.CreatedAt = existing.CreatedAt
	clone := *video
	r.videos[video.ID] = &clone
	return nil
}

func (r *memoryScheduleRepository) Delete(userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.videos[id]
	if !ok || v.UserID != userID {
		return ErrNotFound
	}
	delete(r.videos, id)
	return nil
}
