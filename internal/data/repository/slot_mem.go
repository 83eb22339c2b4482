package repository

import (
	"context"
	"fmt"
	"sort"

	"mentor-booking/internal/data/entity"

	"github.com/google/uuid"
)

type memorySlotRepository struct {
	store *MemoryStore
}

func NewMemorySlotRepository(store *MemoryStore) SlotRepository {
	return &memorySlotRepository{store: store}
}

func (r *memorySlotRepository) Create(ctx context.Context, slot *entity.Slot) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.slots {
		if existing.Overlaps(slot) {
			return fmt.Errorf("slot %s %s-%s overlaps an existing slot: %w", slot.Date, slot.StartTime, slot.EndTime, entity.ErrConflict)
		}
	}

	r.store.slots[slot.ID] = cloneSlot(slot)
	return nil
}

func (r *memorySlotRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Slot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	slot, ok := r.store.slots[id]
	if !ok {
		return nil, nil
	}
	return cloneSlot(slot), nil
}

func (r *memorySlotRepository) FindByMentorID(ctx context.Context, mentorID uuid.UUID) ([]*entity.Slot, error) {
	return r.find(func(s *entity.Slot) bool { return s.MentorID == mentorID }), nil
}

func (r *memorySlotRepository) FindAvailable(ctx context.Context, filter entity.SlotFilter) ([]*entity.Slot, error) {
	return r.find(filter.Match), nil
}

func (r *memorySlotRepository) find(match func(*entity.Slot) bool) []*entity.Slot {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	slots := []*entity.Slot{}
	for _, slot := range r.store.slots {
		if match(slot) {
			slots = append(slots, cloneSlot(slot))
		}
	}

	sort.Slice(slots, func(i, j int) bool { return entity.SlotBefore(slots[i], slots[j]) })
	return slots
}
