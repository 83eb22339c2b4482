package repository

import (
	"context"
	"sort"

	"mentor-booking/internal/data/entity"

	"github.com/google/uuid"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.MeetingNote) error
	// FindByBookingID returns every note of the booking, oldest first.
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.MeetingNote, error)
}

type noteRepository struct {
	store *MemoryStore
}

func NewNoteRepository(store *MemoryStore) NoteRepository {
	return &noteRepository{store: store}
}

func (r *noteRepository) Create(ctx context.Context, note *entity.MeetingNote) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.notes[note.ID] = cloneNote(note)
	return nil
}

func (r *noteRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.MeetingNote, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	notes := []*entity.MeetingNote{}
	for _, note := range r.store.notes {
		if note.BookingID == bookingID {
			notes = append(notes, cloneNote(note))
		}
	}

	sort.Slice(notes, func(i, j int) bool { return notes[i].CreatedAt.Before(notes[j].CreatedAt) })
	return notes, nil
}
