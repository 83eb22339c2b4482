package usecase

import (
	"context"
	"fmt"
	"time"

	"mentor-booking/internal/data/entity"
	"mentor-booking/internal/data/repository"
	"mentor-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Clock returns the current time. Services take one so tests can pin "today".
type Clock func() time.Time

type Service struct {
	Auth      AuthService
	User      UserService
	Slot      SlotService
	Booking   BookingService
	Mentor    MentorService
	Community CommunityService
	Review    ReviewService
	Note      NoteService
}

type Option func(*options)

type options struct {
	clock Clock
}

// WithClock overrides time.Now for every service.
func WithClock(clock Clock) Option {
	return func(o *options) { o.clock = clock }
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger, opts ...Option) *Service {
	o := options{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return &Service{
		Auth:      NewAuthService(repo, config.JWT, o.clock, log),
		User:      NewUserService(repo, o.clock, log),
		Slot:      NewSlotService(repo, o.clock, log),
		Booking:   NewBookingService(repo, o.clock, log),
		Mentor:    NewMentorService(repo, log),
		Community: NewCommunityService(repo, o.clock, log),
		Review:    NewReviewService(repo, o.clock, log),
		Note:      NewNoteService(repo, o.clock, log),
	}
}

// validate runs the struct tags and turns failures into an entity.ValidationError.
func validate(log *zap.Logger, op string, req any) error {
	errs := utils.ValidateStruct(req)
	if len(errs) == 0 {
		return nil
	}
	log.Warn(op+" validation failed", zap.String("errors", utils.FormatValidationErrors(errs)))
	return &entity.ValidationError{Fields: errs}
}

func parseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, entity.NewValidationError(field, "Must be a valid UUID")
	}
	return id, nil
}

func requireRole(identity entity.Identity, role entity.UserRole, action string) error {
	if identity.Role != role {
		return fmt.Errorf("only %ss can %s: %w", role, action, entity.ErrForbidden)
	}
	return nil
}

// mentorAccountID maps a directory id to the account that owns the entry.
// Slots, FAQs, articles and reviews are keyed by account, so lookups accept
// either id. Unknown ids and entries without an account come back unchanged.
func mentorAccountID(ctx context.Context, mentors repository.MentorRepository, id uuid.UUID) (uuid.UUID, error) {
	profile, err := mentors.FindByID(ctx, id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("find mentor: %w", err)
	}
	if profile != nil && profile.UserID != nil {
		return *profile.UserID, nil
	}
	return id, nil
}
