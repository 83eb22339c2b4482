package repository

import (
	"mentor-booking/pkg/database"

	"go.uber.org/zap"
)

// Repository groups every store the services depend on. Slot, booking, user
// and session data follow the configured driver; the mentor catalog and the
// community content always live in the in-process store.
type Repository struct {
	User    UserRepository
	Session SessionRepository
	Slot    SlotRepository
	Booking BookingRepository
	Mentor  MentorRepository
	FAQ     FAQRepository
	Article ArticleRepository
	Review  ReviewRepository
	Note    NoteRepository
}

func NewMemoryRepository(store *MemoryStore) *Repository {
	return &Repository{
		User:    NewMemoryUserRepository(store),
		Session: NewMemorySessionRepository(store),
		Slot:    NewMemorySlotRepository(store),
		Booking: NewMemoryBookingRepository(store),
		Mentor:  NewMentorRepository(store),
		FAQ:     NewFAQRepository(store),
		Article: NewArticleRepository(store),
		Review:  NewReviewRepository(store),
		Note:    NewNoteRepository(store),
	}
}

func NewPostgresRepository(db database.PgxIface, store *MemoryStore, log *zap.Logger) *Repository {
	repo := NewMemoryRepository(store)
	repo.User = NewUserRepository(db, log)
	repo.Session = NewSessionRepository(db, log)
	repo.Slot = NewSlotRepository(db, log)
	repo.Booking = NewBookingRepository(db, log)
	return repo
}
