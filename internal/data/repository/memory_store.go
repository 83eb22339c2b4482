package repository

import (
	"slices"
	"sync"

	"mentor-booking/internal/data/entity"

	"github.com/google/uuid"
)

// MemoryStore owns every in-process collection behind one lock, so
// multi-collection steps (reserving a slot while storing its booking) are atomic.
type MemoryStore struct {
	mu sync.RWMutex

	users    map[uuid.UUID]*entity.User
	sessions map[uuid.UUID]*entity.Session
	slots    map[uuid.UUID]*entity.Slot
	bookings map[uuid.UUID]*entity.Booking
	mentors  map[uuid.UUID]*entity.MentorProfile
	faqs     map[uuid.UUID]*entity.FAQ
	articles map[uuid.UUID]*entity.Article
	reviews  map[uuid.UUID]*entity.Review
	notes    map[uuid.UUID]*entity.MeetingNote
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[uuid.UUID]*entity.User),
		sessions: make(map[uuid.UUID]*entity.Session),
		slots:    make(map[uuid.UUID]*entity.Slot),
		bookings: make(map[uuid.UUID]*entity.Booking),
		mentors:  make(map[uuid.UUID]*entity.MentorProfile),
		faqs:     make(map[uuid.UUID]*entity.FAQ),
		articles: make(map[uuid.UUID]*entity.Article),
		reviews:  make(map[uuid.UUID]*entity.Review),
		notes:    make(map[uuid.UUID]*entity.MeetingNote),
	}
}

// Copies handed across the store boundary, so callers never alias stored records.

func cloneUser(u *entity.User) *entity.User {
	c := *u
	return &c
}

func cloneSession(s *entity.Session) *entity.Session {
	c := *s
	return &c
}

func cloneSlot(s *entity.Slot) *entity.Slot {
	c := *s
	if s.BookingID != nil {
		id := *s.BookingID
		c.BookingID = &id
	}
	return &c
}

func cloneBooking(b *entity.Booking) *entity.Booking {
	c := *b
	return &c
}

func cloneMentor(m *entity.MentorProfile) *entity.MentorProfile {
	c := *m
	c.Expertise = slices.Clone(m.Expertise)
	c.Languages = slices.Clone(m.Languages)
	c.MeetingTypes = slices.Clone(m.MeetingTypes)
	return &c
}

func cloneFAQ(f *entity.FAQ) *entity.FAQ {
	c := *f
	return &c
}

func cloneArticle(a *entity.Article) *entity.Article {
	c := *a
	c.Tags = slices.Clone(a.Tags)
	return &c
}

func cloneReview(r *entity.Review) *entity.Review {
	c := *r
	return &c
}

func cloneNote(n *entity.MeetingNote) *entity.MeetingNote {
	c := *n
	return &c
}
