package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"mentor-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	slotRowColumns = []string{
		"id", "mentor_id", "mentor_name", "slot_date", "start_time", "end_time",
		"price", "title", "description", "is_booked", "booking_id", "created_at", "updated_at",
	}
	bookingRowColumns = []string{
		"id", "slot_id", "mentee_id", "mentee_name", "mentor_id", "mentor_name", "slot_date", "start_time",
		"end_time", "price", "title", "message", "status", "payment_status", "created_at", "updated_at",
	}

	lockSlotSQL      = `FROM slots\s+WHERE id = \$1 FOR UPDATE`
	lockBookingSQL   = `FROM bookings\s+WHERE id = \$1 FOR UPDATE`
	insertBookingSQL = `INSERT INTO bookings`
	markBookedSQL    = regexp.QuoteMeta(`UPDATE slots SET is_booked = TRUE, booking_id = $2`)
	updateBookingSQL = regexp.QuoteMeta(`UPDATE bookings SET status = $2, payment_status = $3, updated_at = $4`)
	releaseSlotSQL   = `UPDATE slots SET is_booked = FALSE, booking_id = NULL, updated_at = \$3\s+WHERE id = \$1 AND booking_id = \$2`
)

func newMockDB(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func slotRows(mock pgxmock.PgxPoolIface, slots ...*entity.Slot) *pgxmock.Rows {
	rows := mock.NewRows(slotRowColumns)
	for _, s := range slots {
		rows.AddRow(s.ID, s.MentorID, s.MentorName, s.Date, s.StartTime, s.EndTime,
			s.Price, s.Title, s.Description, s.IsBooked, s.BookingID, s.CreatedAt, s.UpdatedAt)
	}
	return rows
}

func bookingRows(mock pgxmock.PgxPoolIface, b *entity.Booking) *pgxmock.Rows {
	return mock.NewRows(bookingRowColumns).AddRow(
		b.ID, b.SlotID, b.MenteeID, b.MenteeName, b.MentorID, b.MentorName, b.Date, b.StartTime,
		b.EndTime, b.Price, b.Title, b.Message, b.Status, b.PaymentStatus, b.CreatedAt, b.UpdatedAt,
	)
}

func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func TestBookingRepository_Reserve(t *testing.T) {
	t.Parallel()

	mentee := entity.Identity{UserID: uuid.New(), Name: "Mihai", Role: entity.RoleMentee}
	bookingID := uuid.New()

	tests := []struct {
		name     string
		slot     *entity.Slot
		expect   func(mock pgxmock.PgxPoolIface, slot *entity.Slot)
		wantErr  error
		wantBook bool
	}{
		{
			name: "unknown slot",
			slot: newSlot(uuid.New(), "2025-05-02", "10:00", "11:00"),
			expect: func(mock pgxmock.PgxPoolIface, slot *entity.Slot) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockSlotSQL).WithArgs(slot.ID).WillReturnRows(slotRows(mock))
				mock.ExpectRollback()
			},
			wantErr: entity.ErrNotFound,
		},
		{
			name: "slot already booked",
			slot: func() *entity.Slot {
				s := newSlot(uuid.New(), "2025-05-02", "10:00", "11:00")
				s.Reserve(uuid.New())
				return s
			}(),
			expect: func(mock pgxmock.PgxPoolIface, slot *entity.Slot) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockSlotSQL).WithArgs(slot.ID).WillReturnRows(slotRows(mock, slot))
				mock.ExpectRollback()
			},
			wantErr: entity.ErrConflict,
		},
		{
			name: "free slot",
			slot: newSlot(uuid.New(), "2025-05-02", "10:00", "11:00"),
			expect: func(mock pgxmock.PgxPoolIface, slot *entity.Slot) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockSlotSQL).WithArgs(slot.ID).WillReturnRows(slotRows(mock, slot))
				mock.ExpectExec(insertBookingSQL).
					WithArgs(append([]any{bookingID, slot.ID}, anyArgs(14)...)...).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec(markBookedSQL).
					WithArgs(slot.ID, bookingID, testNow).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
			wantBook: true,
		},
		{
			name: "insert fails",
			slot: newSlot(uuid.New(), "2025-05-02", "10:00", "11:00"),
			expect: func(mock pgxmock.PgxPoolIface, slot *entity.Slot) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockSlotSQL).WithArgs(slot.ID).WillReturnRows(slotRows(mock, slot))
				mock.ExpectExec(insertBookingSQL).
					WithArgs(anyArgs(16)...).
					WillReturnError(errors.New("connection reset"))
				mock.ExpectRollback()
			},
			wantErr: errors.New("create booking"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := newMockDB(t)
			tt.expect(mock, tt.slot)
			repo := NewBookingRepository(mock, zap.NewNop())

			booking, err := repo.Reserve(context.Background(), tt.slot.ID, func(slot *entity.Slot) *entity.Booking {
				b := entity.NewBooking(slot, mentee, nil, testNow)
				b.ID = bookingID
				return b
			})

			switch {
			case tt.wantBook:
				require.NoError(t, err)
				assert.Equal(t, bookingID, booking.ID)
				assert.Equal(t, tt.slot.ID, booking.SlotID)
				assert.Equal(t, entity.BookingStatusPending, booking.Status)
			case errors.Is(tt.wantErr, entity.ErrNotFound), errors.Is(tt.wantErr, entity.ErrConflict):
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, booking)
			default:
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBookingRepository_Update(t *testing.T) {
	t.Parallel()

	later := testNow.Add(time.Hour)
	mentee := entity.Identity{UserID: uuid.New(), Name: "Mihai", Role: entity.RoleMentee}

	withStatus := func(status entity.BookingStatus, payment entity.PaymentStatus) *entity.Booking {
		slot := newSlot(uuid.New(), "2025-05-02", "10:00", "11:00")
		b := entity.NewBooking(slot, mentee, nil, testNow)
		b.Status = status
		b.PaymentStatus = payment
		return b
	}

	tests := []struct {
		name        string
		booking     *entity.Booking
		mutate      func(b *entity.Booking) error
		wantRelease bool
		wantErr     error
	}{
		{
			name:        "cancel pending releases slot",
			booking:     withStatus(entity.BookingStatusPending, entity.PaymentStatusNotRequired),
			mutate:      func(b *entity.Booking) error { b.Status = entity.BookingStatusCancelled; return nil },
			wantRelease: true,
		},
		{
			name:        "complete confirmed releases slot",
			booking:     withStatus(entity.BookingStatusConfirmed, entity.PaymentStatusNotRequired),
			mutate:      func(b *entity.Booking) error { b.Status = entity.BookingStatusCompleted; return nil },
			wantRelease: true,
		},
		{
			name:    "confirm keeps slot booked",
			booking: withStatus(entity.BookingStatusPending, entity.PaymentStatusNotRequired),
			mutate:  func(b *entity.Booking) error { b.Status = entity.BookingStatusConfirmed; return nil },
		},
		{
			name:    "payment on completed booking leaves slot alone",
			booking: withStatus(entity.BookingStatusCompleted, entity.PaymentStatusPending),
			mutate:  func(b *entity.Booking) error { b.PaymentStatus = entity.PaymentStatusPaid; return nil },
		},
		{
			name:    "rejected transition rolls back",
			booking: withStatus(entity.BookingStatusCancelled, entity.PaymentStatusNotRequired),
			mutate:  func(b *entity.Booking) error { return entity.ErrInvalidTransition },
			wantErr: entity.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := newMockDB(t)
			b := tt.booking
			mock.ExpectBegin()
			mock.ExpectQuery(lockBookingSQL).WithArgs(b.ID).WillReturnRows(bookingRows(mock, b))

			if tt.wantErr != nil {
				mock.ExpectRollback()
			} else {
				want := *b
				_ = tt.mutate(&want)
				mock.ExpectExec(updateBookingSQL).
					WithArgs(b.ID, want.Status, want.PaymentStatus, later).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				if tt.wantRelease {
					mock.ExpectExec(releaseSlotSQL).
						WithArgs(b.SlotID, b.ID, later).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				}
				mock.ExpectCommit()
			}

			repo := NewBookingRepository(mock, zap.NewNop())
			updated, err := repo.Update(context.Background(), b.ID, func(stored *entity.Booking) error {
				if err := tt.mutate(stored); err != nil {
					return err
				}
				stored.UpdatedAt = later
				return nil
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, updated)
			} else {
				require.NoError(t, err)
				assert.Equal(t, later, updated.UpdatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBookingRepository_UpdateUnknown(t *testing.T) {
	t.Parallel()

	mock := newMockDB(t)
	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery(lockBookingSQL).WithArgs(id).WillReturnRows(mock.NewRows(bookingRowColumns))
	mock.ExpectRollback()

	repo := NewBookingRepository(mock, zap.NewNop())
	_, err := repo.Update(context.Background(), id, func(*entity.Booking) error {
		t.Fatal("mutate must not run for an unknown booking")
		return nil
	})
	assert.ErrorIs(t, err, entity.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSlotRepository_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		overlapping bool
		wantErr     error
	}{
		{name: "free window"},
		{name: "overlapping window", overlapping: true, wantErr: entity.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := newMockDB(t)
			slot := newSlot(uuid.New(), "2025-05-02", "10:00", "11:00")

			mock.ExpectBegin()
			mock.ExpectExec(`pg_advisory_xact_lock`).
				WithArgs(slot.MentorID.String()).
				WillReturnResult(pgxmock.NewResult("SELECT", 1))
			mock.ExpectQuery(`SELECT EXISTS`).
				WithArgs(slot.MentorID, slot.Date, slot.StartTime, slot.EndTime).
				WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(tt.overlapping))
			if tt.wantErr == nil {
				mock.ExpectExec(`INSERT INTO slots`).
					WithArgs(append([]any{slot.ID, slot.MentorID}, anyArgs(11)...)...).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectCommit()
			} else {
				mock.ExpectRollback()
			}

			err := NewSlotRepository(mock, zap.NewNop()).Create(context.Background(), slot)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAvailableSlotsQuery(t *testing.T) {
	t.Parallel()

	mentor := uuid.New()

	tests := []struct {
		name      string
		filter    entity.SlotFilter
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "no filters",
			wantWhere: `WHERE ("is_booked" IS FALSE) ORDER BY`,
		},
		{
			name:      "mentor",
			filter:    entity.SlotFilter{MentorID: &mentor},
			wantWhere: `WHERE (("is_booked" IS FALSE) AND ("mentor_id" = $1)) ORDER BY`,
			wantArgs:  []any{mentor.String()},
		},
		{
			name:      "date",
			filter:    entity.SlotFilter{Date: "2025-05-02"},
			wantWhere: `WHERE (("is_booked" IS FALSE) AND ("slot_date" = $1)) ORDER BY`,
			wantArgs:  []any{"2025-05-02"},
		},
		{
			name:      "mentor and date",
			filter:    entity.SlotFilter{MentorID: &mentor, Date: "2025-05-02"},
			wantWhere: `WHERE (("is_booked" IS FALSE) AND ("mentor_id" = $1) AND ("slot_date" = $2)) ORDER BY`,
			wantArgs:  []any{mentor.String(), "2025-05-02"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			query, args, err := availableSlotsQuery(tt.filter)
			require.NoError(t, err)

			assert.Contains(t, query, `SELECT "id", "mentor_id", "mentor_name"`)
			assert.Contains(t, query, `FROM "slots"`)
			assert.Contains(t, query, tt.wantWhere)
			assert.Contains(t, query, `ORDER BY "slot_date" ASC, "start_time" ASC, "created_at" ASC`)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func TestSlotRepository_FindAvailable(t *testing.T) {
	t.Parallel()

	mock := newMockDB(t)
	mentor := uuid.New()
	early := newSlot(mentor, "2025-05-02", "09:00", "10:00")
	late := newSlot(mentor, "2025-05-02", "14:00", "15:00")

	query, _, err := availableSlotsQuery(entity.SlotFilter{Date: "2025-05-02"})
	require.NoError(t, err)
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("2025-05-02").
		WillReturnRows(slotRows(mock, early, late))

	slots, err := NewSlotRepository(mock, zap.NewNop()).FindAvailable(context.Background(), entity.SlotFilter{Date: "2025-05-02"})
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, early.ID, slots[0].ID)
	assert.Equal(t, late.ID, slots[1].ID)
	assert.False(t, slots[0].IsBooked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	t.Parallel()

	mock := newMockDB(t)
	user := &entity.User{Base: entity.NewBase(testNow), Email: "ana@example.com", Name: "Ana", Role: entity.RoleMentor}
	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(anyArgs(7)...).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := NewUserRepository(mock, zap.NewNop()).Create(context.Background(), user)
	assert.ErrorIs(t, err, entity.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}
