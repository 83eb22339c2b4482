package repository

import (
	"context"
	"errors"
	"fmt"

	"mentor-booking/internal/data/entity"
	"mentor-booking/pkg/database"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SlotRepository interface {
	// Create stores a new slot. It fails with entity.ErrConflict when the slot
	// overlaps another slot of the same mentor on the same date.
	Create(ctx context.Context, slot *entity.Slot) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Slot, error)
	FindByMentorID(ctx context.Context, mentorID uuid.UUID) ([]*entity.Slot, error)
	FindAvailable(ctx context.Context, filter entity.SlotFilter) ([]*entity.Slot, error)
}

var slotColumns = []any{
	"id", "mentor_id", "mentor_name", "slot_date", "start_time", "end_time",
	"price", "title", "description", "is_booked", "booking_id", "created_at", "updated_at",
}

const slotSelect = `
	SELECT id, mentor_id, mentor_name, slot_date, start_time, end_time,
	       price, title, description, is_booked, booking_id, created_at, updated_at
	FROM slots
`

type slotRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSlotRepository(db database.PgxIface, log *zap.Logger) SlotRepository {
	return &slotRepository{
		db:  db,
		log: log.With(zap.String("repository", "slot")),
	}
}

func scanSlot(row pgx.Row) (*entity.Slot, error) {
	var slot entity.Slot
	err := row.Scan(
		&slot.ID,
		&slot.MentorID,
		&slot.MentorName,
		&slot.Date,
		&slot.StartTime,
		&slot.EndTime,
		&slot.Price,
		&slot.Title,
		&slot.Description,
		&slot.IsBooked,
		&slot.BookingID,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *slotRepository) Create(ctx context.Context, slot *entity.Slot) error {
	return database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		// per-mentor advisory lock keeps the overlap check and insert together
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, slot.MentorID.String()); err != nil {
			return fmt.Errorf("lock mentor %s slots: %w", slot.MentorID.String(), err)
		}

		var overlapping bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM slots
				WHERE mentor_id = $1 AND slot_date = $2 AND start_time < $4 AND $3 < end_time
			)
		`, slot.MentorID, slot.Date, slot.StartTime, slot.EndTime).Scan(&overlapping)
		if err != nil {
			r.log.Error("Failed to check slot overlap",
				zap.Error(err),
				zap.String("mentor_id", slot.MentorID.String()),
			)
			return fmt.Errorf("check slot overlap: %w", err)
		}
		if overlapping {
			return fmt.Errorf("slot %s %s-%s overlaps an existing slot: %w", slot.Date, slot.StartTime, slot.EndTime, entity.ErrConflict)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO slots (id, mentor_id, mentor_name, slot_date, start_time, end_time,
			                   price, title, description, is_booked, booking_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		`,
			slot.ID,
			slot.MentorID,
			slot.MentorName,
			slot.Date,
			slot.StartTime,
			slot.EndTime,
			slot.Price,
			slot.Title,
			slot.Description,
			slot.IsBooked,
			slot.BookingID,
			slot.CreatedAt,
			slot.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create slot",
				zap.Error(err),
				zap.String("mentor_id", slot.MentorID.String()),
				zap.String("date", slot.Date),
			)
			return fmt.Errorf("create slot: %w", err)
		}
		return nil
	})
}

func (r *slotRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Slot, error) {
	slot, err := scanSlot(r.db.QueryRow(ctx, slotSelect+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find slot by ID",
			zap.Error(err),
			zap.String("slot_id", id.String()),
		)
		return nil, fmt.Errorf("find slot by ID %s: %w", id.String(), err)
	}
	return slot, nil
}

func (r *slotRepository) FindByMentorID(ctx context.Context, mentorID uuid.UUID) ([]*entity.Slot, error) {
	rows, err := r.db.Query(ctx, slotSelect+`
		WHERE mentor_id = $1
		ORDER BY slot_date, start_time, created_at
	`, mentorID)
	if err != nil {
		r.log.Error("Failed to find slots by mentor",
			zap.Error(err),
			zap.String("mentor_id", mentorID.String()),
		)
		return nil, fmt.Errorf("find slots by mentor %s: %w", mentorID.String(), err)
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *slotRepository) FindAvailable(ctx context.Context, filter entity.SlotFilter) ([]*entity.Slot, error) {
	query, args, err := availableSlotsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("build available slots query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find available slots", zap.Error(err), zap.String("date", filter.Date))
		return nil, fmt.Errorf("find available slots: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

// availableSlotsQuery builds the listing with goqu since both filters are optional.
func availableSlotsQuery(filter entity.SlotFilter) (string, []any, error) {
	ds := goqu.Dialect("postgres").
		From("slots").
		Prepared(true).
		Select(slotColumns...).
		Where(goqu.C("is_booked").IsFalse())

	if filter.MentorID != nil {
		ds = ds.Where(goqu.C("mentor_id").Eq(filter.MentorID.String()))
	}
	if filter.Date != "" {
		ds = ds.Where(goqu.C("slot_date").Eq(filter.Date))
	}

	return ds.
		Order(goqu.C("slot_date").Asc(), goqu.C("start_time").Asc(), goqu.C("created_at").Asc()).
		ToSQL()
}

func (r *slotRepository) collect(rows pgx.Rows) ([]*entity.Slot, error) {
	slots := []*entity.Slot{}
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			r.log.Error("Failed to scan slot row", zap.Error(err))
			return nil, fmt.Errorf("scan slot row: %w", err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate slot rows: %w", err)
	}
	return slots, nil
}
