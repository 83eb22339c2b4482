package repository

import (
	"context"
	"fmt"
	"sort"

	"mentor-booking/internal/data/entity"

	"github.com/google/uuid"
)

type memoryBookingRepository struct {
	store *MemoryStore
}

func NewMemoryBookingRepository(store *MemoryStore) BookingRepository {
	return &memoryBookingRepository{store: store}
}

func (r *memoryBookingRepository) Reserve(ctx context.Context, slotID uuid.UUID, newBooking func(slot *entity.Slot) *entity.Booking) (*entity.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	slot, ok := r.store.slots[slotID]
	if !ok {
		return nil, fmt.Errorf("slot %s: %w", slotID.String(), entity.ErrNotFound)
	}
	if slot.IsBooked {
		return nil, fmt.Errorf("slot %s is already booked: %w", slotID.String(), entity.ErrConflict)
	}

	booking := newBooking(cloneSlot(slot))
	r.store.bookings[booking.ID] = cloneBooking(booking)

	slot.Reserve(booking.ID)
	slot.UpdatedAt = booking.CreatedAt

	return booking, nil
}

func (r *memoryBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	booking, ok := r.store.bookings[id]
	if !ok {
		return nil, nil
	}
	return cloneBooking(booking), nil
}

func (r *memoryBookingRepository) FindByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	bookings := []*entity.Booking{}
	for _, booking := range r.store.bookings {
		if booking.IsParticipant(userID) {
			bookings = append(bookings, cloneBooking(booking))
		}
	}

	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	return bookings, nil
}

func (r *memoryBookingRepository) Update(ctx context.Context, id uuid.UUID, mutate func(booking *entity.Booking) error) (*entity.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %s: %w", id.String(), entity.ErrNotFound)
	}

	booking := cloneBooking(stored)
	previous := booking.Status
	if err := mutate(booking); err != nil {
		return nil, err
	}

	if !previous.Released() && booking.Status.Released() {
		if slot, ok := r.store.slots[booking.SlotID]; ok && slot.Release(booking.ID) {
			slot.UpdatedAt = booking.UpdatedAt
		}
	}

	r.store.bookings[id] = cloneBooking(booking)
	return booking, nil
}
