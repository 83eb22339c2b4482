package usecase

import (
	"context"
	"fmt"
	"time"

	"mentor-booking/internal/data/entity"
	"mentor-booking/internal/data/repository"
	"mentor-booking/internal/dto/request"
	"mentor-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// BookSlot reserves a free slot for the calling mentee. The availability
	// check and the reservation happen as one step.
	BookSlot(ctx context.Context, identity entity.Identity, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	// UpdateStatus moves a booking along its lifecycle. Reaching cancelled or
	// completed frees the slot.
	UpdateStatus(ctx context.Context, identity entity.Identity, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
	// ListMyBookings returns bookings where the caller is mentee or mentor, newest first.
	ListMyBookings(ctx context.Context, identity entity.Identity) ([]response.BookingResponse, error)
	GetBooking(ctx context.Context, identity entity.Identity, bookingID string) (*response.BookingResponse, error)
	// MarkPaid flags a pending payment as settled. Only the booking's mentee may do it.
	MarkPaid(ctx context.Context, identity entity.Identity, bookingID string) (*response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	now  Clock
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, now Clock, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		now:  now,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) BookSlot(ctx context.Context, identity entity.Identity, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if err := requireRole(identity, entity.RoleMentee, "book slots"); err != nil {
		return nil, err
	}
	if err := validate(s.log, "Book slot", req); err != nil {
		return nil, err
	}

	slotID, err := parseID("slot_id", req.SlotID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	booking, err := s.repo.Booking.Reserve(ctx, slotID, func(slot *entity.Slot) *entity.Booking {
		return entity.NewBooking(slot, identity, req.Message, now)
	})
	if err != nil {
		s.log.Warn("Failed to book slot",
			zap.Error(err),
			zap.String("slot_id", req.SlotID),
			zap.String("mentee_id", identity.UserID.String()),
		)
		return nil, fmt.Errorf("book slot: %w", err)
	}

	s.log.Info("Slot booked",
		zap.String("booking_id", booking.ID.String()),
		zap.String("slot_id", booking.SlotID.String()),
		zap.String("mentee_id", booking.MenteeID.String()),
		zap.String("payment_status", string(booking.PaymentStatus)),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, identity entity.Identity, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if err := validate(s.log, "Update booking status", req); err != nil {
		return nil, err
	}

	id, err := parseID("id", bookingID)
	if err != nil {
		return nil, err
	}

	to := entity.BookingStatus(req.Status)
	now := s.now()

	var from entity.BookingStatus
	booking, err := s.repo.Booking.Update(ctx, id, func(b *entity.Booking) error {
		from = b.Status
		return applyTransition(b, identity, to, now)
	})
	if err != nil {
		s.log.Warn("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("to", req.Status),
		)
		return nil, fmt.Errorf("update booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", booking.ID.String()),
		zap.String("from", string(from)),
		zap.String("to", string(booking.Status)),
		zap.String("by", identity.UserID.String()),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// applyTransition checks who may move the booking and whether the move exists.
func applyTransition(b *entity.Booking, identity entity.Identity, to entity.BookingStatus, now time.Time) error {
	actor := b.ActorOf(identity.UserID)
	if actor == 0 {
		return fmt.Errorf("not a participant of booking %s: %w", b.ID.String(), entity.ErrForbidden)
	}
	if (to == entity.BookingStatusConfirmed || to == entity.BookingStatusCancelled) && actor&entity.ActorMentor == 0 {
		return fmt.Errorf("only the booking's mentor can set %s: %w", to, entity.ErrForbidden)
	}

	allowed, ok := entity.AllowedActors(b.Status, to)
	if !ok {
		return fmt.Errorf("%s to %s: %w", b.Status, to, entity.ErrInvalidTransition)
	}
	if allowed&actor == 0 {
		return fmt.Errorf("caller may not move booking from %s to %s: %w", b.Status, to, entity.ErrForbidden)
	}

	b.Status = to
	b.UpdatedAt = now
	return nil
}

func (s *bookingService) ListMyBookings(ctx context.Context, identity entity.Identity) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByParticipant(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) GetBooking(ctx context.Context, identity entity.Identity, bookingID string) (*response.BookingResponse, error) {
	id, err := parseID("id", bookingID)
	if err != nil {
		return nil, err
	}

	booking, err := findParticipantBooking(ctx, s.repo.Booking, identity, id)
	if err != nil {
		return nil, err
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) MarkPaid(ctx context.Context, identity entity.Identity, bookingID string) (*response.BookingResponse, error) {
	id, err := parseID("id", bookingID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	booking, err := s.repo.Booking.Update(ctx, id, func(b *entity.Booking) error {
		if b.ActorOf(identity.UserID)&entity.ActorMentee == 0 {
			return fmt.Errorf("only the booking's mentee can pay: %w", entity.ErrForbidden)
		}
		if b.Status == entity.BookingStatusCancelled {
			return fmt.Errorf("booking is cancelled: %w", entity.ErrConflict)
		}
		if b.PaymentStatus != entity.PaymentStatusPending {
			return fmt.Errorf("payment is %s: %w", b.PaymentStatus, entity.ErrConflict)
		}
		b.PaymentStatus = entity.PaymentStatusPaid
		b.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("mark booking %s paid: %w", bookingID, err)
	}

	s.log.Info("Booking paid",
		zap.String("booking_id", booking.ID.String()),
		zap.Float64("amount", booking.Price),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// findParticipantBooking loads a booking the caller takes part in.
func findParticipantBooking(ctx context.Context, bookings repository.BookingRepository, identity entity.Identity, id uuid.UUID) (*entity.Booking, error) {
	booking, err := bookings.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", id.String(), entity.ErrNotFound)
	}
	if !booking.IsParticipant(identity.UserID) {
		return nil, fmt.Errorf("not a participant of booking %s: %w", id.String(), entity.ErrForbidden)
	}
	return booking, nil
}
