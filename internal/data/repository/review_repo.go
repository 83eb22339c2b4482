package repository

import (
	"context"
	"fmt"
	"sort"

	"mentor-booking/internal/data/entity"

	"github.com/google/uuid"
)

type ReviewRepository interface {
	// Create fails with entity.ErrConflict when the booking already has a review.
	Create(ctx context.Context, review *entity.Review) error
	// FindByMentorID returns the mentor's reviews newest first.
	FindByMentorID(ctx context.Context, mentorID uuid.UUID) ([]*entity.Review, error)
}

type reviewRepository struct {
	store *MemoryStore
}

func NewReviewRepository(store *MemoryStore) ReviewRepository {
	return &reviewRepository{store: store}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.reviews {
		if existing.BookingID == review.BookingID {
			return fmt.Errorf("booking %s already reviewed: %w", review.BookingID.String(), entity.ErrConflict)
		}
	}

	r.store.reviews[review.ID] = cloneReview(review)
	return nil
}

func (r *reviewRepository) FindByMentorID(ctx context.Context, mentorID uuid.UUID) ([]*entity.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	reviews := []*entity.Review{}
	for _, review := range r.store.reviews {
		if review.MentorID == mentorID {
			reviews = append(reviews, cloneReview(review))
		}
	}

	sort.Slice(reviews, func(i, j int) bool { return reviews[i].CreatedAt.After(reviews[j].CreatedAt) })
	return reviews, nil
}
