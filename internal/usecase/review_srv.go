package usecase

import (
	"context"
	"fmt"

	"mentor-booking/internal/data/entity"
	"mentor-booking/internal/data/repository"
	"mentor-booking/internal/dto/request"
	"mentor-booking/internal/dto/response"

	"go.uber.org/zap"
)

type ReviewService interface {
	// AddReview records the mentee's rating of a completed booking. A booking
	// can be reviewed once.
	AddReview(ctx context.Context, identity entity.Identity, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	MentorReviews(ctx context.Context, mentorID string) (*response.MentorReviewsResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	now  Clock
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, now Clock, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		now:  now,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) AddReview(ctx context.Context, identity entity.Identity, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if err := requireRole(identity, entity.RoleMentee, "review mentors"); err != nil {
		return nil, err
	}
	if err := validate(s.log, "Add review", req); err != nil {
		return nil, err
	}

	bookingID, err := parseID("booking_id", req.BookingID)
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", req.BookingID, entity.ErrNotFound)
	}
	if booking.MenteeID != identity.UserID {
		return nil, fmt.Errorf("booking %s belongs to another mentee: %w", req.BookingID, entity.ErrForbidden)
	}
	if booking.Status != entity.BookingStatusCompleted {
		return nil, fmt.Errorf("booking is %s, only completed sessions can be reviewed: %w", booking.Status, entity.ErrConflict)
	}

	review := &entity.Review{
		BaseSimple: entity.NewBaseSimple(s.now()),
		MentorID:   booking.MentorID,
		MenteeID:   identity.UserID,
		MenteeName: identity.Name,
		BookingID:  booking.ID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	if _, err := s.repo.Mentor.RefreshRating(ctx, booking.MentorID, s.now()); err != nil {
		s.log.Warn("Failed to refresh mentor rating", zap.Error(err), zap.String("mentor_id", booking.MentorID.String()))
	}

	s.log.Info("Review added",
		zap.String("review_id", review.ID.String()),
		zap.String("mentor_id", review.MentorID.String()),
		zap.Int("rating", review.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) MentorReviews(ctx context.Context, mentorID string) (*response.MentorReviewsResponse, error) {
	id, err := parseID("id", mentorID)
	if err != nil {
		return nil, err
	}

	if id, err = mentorAccountID(ctx, s.repo.Mentor, id); err != nil {
		return nil, err
	}

	reviews, err := s.repo.Review.FindByMentorID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	resp := &response.MentorReviewsResponse{
		Reviews:       make([]response.ReviewResponse, 0, len(reviews)),
		AverageRating: entity.AverageRating(reviews),
		TotalReviews:  len(reviews),
	}
	for _, review := range reviews {
		resp.Reviews = append(resp.Reviews, response.ReviewToResponse(review))
	}
	return resp, nil
}
