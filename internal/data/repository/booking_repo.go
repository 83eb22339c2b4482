package repository

import (
	"context"
	"errors"
	"fmt"

	"mentor-booking/internal/data/entity"
	"mentor-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BookingRepository is the booking ledger's store. Reserve and Update each run
// as one atomic step together with the slot they touch.
type BookingRepository interface {
	// Reserve checks that the slot exists and is free, stores the booking built
	// by newBooking and marks the slot booked. Unknown slot: entity.ErrNotFound.
	// Slot already booked: entity.ErrConflict.
	Reserve(ctx context.Context, slotID uuid.UUID, newBooking func(slot *entity.Slot) *entity.Booking) (*entity.Booking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	// FindByParticipant returns bookings where userID is mentee or mentor, newest first.
	FindByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
	// Update applies mutate to the stored booking and persists the result. When the
	// booking moves into a released status its slot is freed in the same step.
	Update(ctx context.Context, id uuid.UUID, mutate func(booking *entity.Booking) error) (*entity.Booking, error)
}

const bookingSelect = `
	SELECT id, slot_id, mentee_id, mentee_name, mentor_id, mentor_name, slot_date, start_time,
	       end_time, price, title, message, status, payment_status, created_at, updated_at
	FROM bookings
`

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.SlotID,
		&booking.MenteeID,
		&booking.MenteeName,
		&booking.MentorID,
		&booking.MentorName,
		&booking.Date,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Price,
		&booking.Title,
		&booking.Message,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Reserve(ctx context.Context, slotID uuid.UUID, newBooking func(slot *entity.Slot) *entity.Booking) (*entity.Booking, error) {
	var booking *entity.Booking

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		// the slot row lock serialises concurrent bookers
		slot, err := scanSlot(tx.QueryRow(ctx, slotSelect+` WHERE id = $1 FOR UPDATE`, slotID))
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("slot %s: %w", slotID.String(), entity.ErrNotFound)
		}
		if err != nil {
			r.log.Error("Failed to lock slot", zap.Error(err), zap.String("slot_id", slotID.String()))
			return fmt.Errorf("lock slot %s: %w", slotID.String(), err)
		}
		if slot.IsBooked {
			return fmt.Errorf("slot %s is already booked: %w", slotID.String(), entity.ErrConflict)
		}

		booking = newBooking(slot)

		_, err = tx.Exec(ctx, `
			INSERT INTO bookings (id, slot_id, mentee_id, mentee_name, mentor_id, mentor_name, slot_date,
			                      start_time, end_time, price, title, message, status, payment_status,
			                      created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		`,
			booking.ID,
			booking.SlotID,
			booking.MenteeID,
			booking.MenteeName,
			booking.MentorID,
			booking.MentorName,
			booking.Date,
			booking.StartTime,
			booking.EndTime,
			booking.Price,
			booking.Title,
			booking.Message,
			booking.Status,
			booking.PaymentStatus,
			booking.CreatedAt,
			booking.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create booking",
				zap.Error(err),
				zap.String("slot_id", slotID.String()),
				zap.String("mentee_id", booking.MenteeID.String()),
			)
			return fmt.Errorf("create booking: %w", err)
		}

		_, err = tx.Exec(ctx, `
			UPDATE slots SET is_booked = TRUE, booking_id = $2, updated_at = $3
			WHERE id = $1
		`, slotID, booking.ID, booking.CreatedAt)
		if err != nil {
			r.log.Error("Failed to mark slot booked", zap.Error(err), zap.String("slot_id", slotID.String()))
			return fmt.Errorf("mark slot %s booked: %w", slotID.String(), err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	booking, err := scanBooking(r.db.QueryRow(ctx, bookingSelect+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}
	return booking, nil
}

func (r *bookingRepository) FindByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	rows, err := r.db.Query(ctx, bookingSelect+`
		WHERE mentee_id = $1 OR mentor_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		r.log.Error("Failed to find bookings by participant",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by participant %s: %w", userID.String(), err)
	}
	defer rows.Close()

	bookings := []*entity.Booking{}
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) Update(ctx context.Context, id uuid.UUID, mutate func(booking *entity.Booking) error) (*entity.Booking, error) {
	var booking *entity.Booking

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		booking, err = scanBooking(tx.QueryRow(ctx, bookingSelect+` WHERE id = $1 FOR UPDATE`, id))
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("booking %s: %w", id.String(), entity.ErrNotFound)
		}
		if err != nil {
			r.log.Error("Failed to lock booking", zap.Error(err), zap.String("booking_id", id.String()))
			return fmt.Errorf("lock booking %s: %w", id.String(), err)
		}

		previous := booking.Status
		if err := mutate(booking); err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			UPDATE bookings SET status = $2, payment_status = $3, updated_at = $4
			WHERE id = $1
		`, booking.ID, booking.Status, booking.PaymentStatus, booking.UpdatedAt)
		if err != nil {
			r.log.Error("Failed to update booking",
				zap.Error(err),
				zap.String("booking_id", id.String()),
				zap.String("status", string(booking.Status)),
			)
			return fmt.Errorf("update booking %s: %w", id.String(), err)
		}

		if previous.Released() || !booking.Status.Released() {
			return nil
		}

		_, err = tx.Exec(ctx, `
			UPDATE slots SET is_booked = FALSE, booking_id = NULL, updated_at = $3
			WHERE id = $1 AND booking_id = $2
		`, booking.SlotID, booking.ID, booking.UpdatedAt)
		if err != nil {
			r.log.Error("Failed to release slot",
				zap.Error(err),
				zap.String("slot_id", booking.SlotID.String()),
			)
			return fmt.Errorf("release slot %s: %w", booking.SlotID.String(), err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}
