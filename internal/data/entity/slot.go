package entity

import (
	"github.com/google/uuid"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Slot is a bookable window published by a mentor. Date and times are kept in
// their canonical text layouts so they order lexicographically.
type Slot struct {
	Base
	MentorID    uuid.UUID  `db:"mentor_id"`
	MentorName  string     `db:"mentor_name"`
	Date        string     `db:"slot_date"`
	StartTime   string     `db:"start_time"`
	EndTime     string     `db:"end_time"`
	Price       float64    `db:"price"`
	Title       string     `db:"title"`
	Description *string    `db:"description"`
	IsBooked    bool       `db:"is_booked"`
	BookingID   *uuid.UUID `db:"booking_id"`
}

type SlotFilter struct {
	MentorID *uuid.UUID
	Date     string
}

func (f SlotFilter) Match(s *Slot) bool {
	if s.IsBooked {
		return false
	}
	if f.MentorID != nil && s.MentorID != *f.MentorID {
		return false
	}
	if f.Date != "" && s.Date != f.Date {
		return false
	}
	return true
}

// Overlaps reports whether two slots of the same mentor share any time on the same date.
func (s *Slot) Overlaps(other *Slot) bool {
	if s.MentorID != other.MentorID || s.Date != other.Date {
		return false
	}
	return s.StartTime < other.EndTime && other.StartTime < s.EndTime
}

func (s *Slot) Reserve(bookingID uuid.UUID) {
	s.IsBooked = true
	s.BookingID = &bookingID
}

// Release frees the slot if it is still held by bookingID.
func (s *Slot) Release(bookingID uuid.UUID) bool {
	if s.BookingID == nil || *s.BookingID != bookingID {
		return false
	}
	s.IsBooked = false
	s.BookingID = nil
	return true
}

// SlotBefore orders slots by date, then start time.
func SlotBefore(a, b *Slot) bool {
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	if a.StartTime != b.StartTime {
		return a.StartTime < b.StartTime
	}
	return a.CreatedAt.Before(b.CreatedAt)
}
