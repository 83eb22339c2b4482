package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"mentor-booking/internal/data/entity"

	"github.com/google/uuid"
)

// MentorRepository is the mentor directory. It lives in the in-process store
// for every storage driver.
type MentorRepository interface {
	Create(ctx context.Context, mentor *entity.MentorProfile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MentorProfile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.MentorProfile, error)
	// Find applies the filter and sort. Without a sort key entries keep directory order.
	Find(ctx context.Context, filter entity.MentorFilter) ([]*entity.MentorProfile, error)
	Update(ctx context.Context, id uuid.UUID, mutate func(mentor *entity.MentorProfile) error) (*entity.MentorProfile, error)
	// RefreshRating recomputes rating and review count of the entry owned by
	// the account from the stored reviews. Without an entry it returns nil.
	RefreshRating(ctx context.Context, userID uuid.UUID, at time.Time) (*entity.MentorProfile, error)
}

type mentorRepository struct {
	store *MemoryStore
}

func NewMentorRepository(store *MemoryStore) MentorRepository {
	return &mentorRepository{store: store}
}

func (r *mentorRepository) Create(ctx context.Context, mentor *entity.MentorProfile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if mentor.UserID != nil {
		for _, existing := range r.store.mentors {
			if existing.UserID != nil && *existing.UserID == *mentor.UserID {
				return fmt.Errorf("mentor profile for user %s: %w", mentor.UserID.String(), entity.ErrConflict)
			}
		}
	}

	r.store.mentors[mentor.ID] = cloneMentor(mentor)
	return nil
}

func (r *mentorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MentorProfile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	mentor, ok := r.store.mentors[id]
	if !ok {
		return nil, nil
	}
	return cloneMentor(mentor), nil
}

func (r *mentorRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.MentorProfile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, mentor := range r.store.mentors {
		if mentor.UserID != nil && *mentor.UserID == userID {
			return cloneMentor(mentor), nil
		}
	}
	return nil, nil
}

func (r *mentorRepository) Find(ctx context.Context, filter entity.MentorFilter) ([]*entity.MentorProfile, error) {
	r.store.mu.RLock()
	mentors := []*entity.MentorProfile{}
	for _, mentor := range r.store.mentors {
		if matchMentor(mentor, filter) {
			mentors = append(mentors, cloneMentor(mentor))
		}
	}
	r.store.mu.RUnlock()

	sort.Slice(mentors, func(i, j int) bool {
		if !mentors[i].CreatedAt.Equal(mentors[j].CreatedAt) {
			return mentors[i].CreatedAt.Before(mentors[j].CreatedAt)
		}
		return mentors[i].Name < mentors[j].Name
	})

	var key func(m *entity.MentorProfile) float64
	switch filter.SortBy {
	case entity.MentorSortRating:
		key = func(m *entity.MentorProfile) float64 { return m.Rating }
	case entity.MentorSortExperience:
		key = func(m *entity.MentorProfile) float64 { return float64(m.Experience) }
	case entity.MentorSortReviews:
		key = func(m *entity.MentorProfile) float64 { return float64(m.ReviewCount) }
	}
	if key != nil {
		sort.SliceStable(mentors, func(i, j int) bool { return key(mentors[i]) > key(mentors[j]) })
	}

	return mentors, nil
}

func (r *mentorRepository) Update(ctx context.Context, id uuid.UUID, mutate func(mentor *entity.MentorProfile) error) (*entity.MentorProfile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.mentors[id]
	if !ok {
		return nil, fmt.Errorf("mentor %s: %w", id.String(), entity.ErrNotFound)
	}

	mentor := cloneMentor(stored)
	if err := mutate(mentor); err != nil {
		return nil, err
	}

	r.store.mentors[id] = cloneMentor(mentor)
	return mentor, nil
}

func (r *mentorRepository) RefreshRating(ctx context.Context, userID uuid.UUID, at time.Time) (*entity.MentorProfile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var stored *entity.MentorProfile
	for _, mentor := range r.store.mentors {
		if mentor.UserID != nil && *mentor.UserID == userID {
			stored = mentor
			break
		}
	}
	if stored == nil {
		return nil, nil
	}

	reviews := []*entity.Review{}
	for _, review := range r.store.reviews {
		if review.MentorID == userID {
			reviews = append(reviews, review)
		}
	}

	stored.Rating = entity.AverageRating(reviews)
	stored.ReviewCount = len(reviews)
	stored.UpdatedAt = at
	return cloneMentor(stored), nil
}

func matchMentor(m *entity.MentorProfile, f entity.MentorFilter) bool {
	if f.Search != "" && !mentorContains(m, strings.ToLower(f.Search)) {
		return false
	}
	if f.Industry != "" && m.Industry != f.Industry {
		return false
	}
	if f.Expertise != "" && !containsString(m.Expertise, f.Expertise) {
		return false
	}
	if f.Location != "" && m.Location != f.Location {
		return false
	}
	if f.MinRating != nil && m.Rating < *f.MinRating {
		return false
	}
	return true
}

func mentorContains(m *entity.MentorProfile, needle string) bool {
	for _, field := range []string{m.Name, m.JobTitle, m.Company, m.Bio} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	for _, exp := range m.Expertise {
		if strings.Contains(strings.ToLower(exp), needle) {
			return true
		}
	}
	return false
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
