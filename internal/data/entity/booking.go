package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Released statuses are terminal and no longer hold their slot. Only pending
// and confirmed bookings keep a slot booked.
func (s BookingStatus) Released() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

type PaymentStatus string

const (
	PaymentStatusNotRequired PaymentStatus = "not_required"
	PaymentStatusPending     PaymentStatus = "pending"
	PaymentStatusPaid        PaymentStatus = "paid"
)

// BookingActor says who may drive a transition.
type BookingActor int

const (
	ActorMentor BookingActor = 1 << iota
	ActorMentee
)

type transition struct {
	from, to BookingStatus
}

var bookingTransitions = map[transition]BookingActor{
	{BookingStatusPending, BookingStatusConfirmed}:   ActorMentor,
	{BookingStatusPending, BookingStatusCancelled}:   ActorMentor,
	{BookingStatusConfirmed, BookingStatusCancelled}: ActorMentor,
	{BookingStatusConfirmed, BookingStatusCompleted}: ActorMentor | ActorMentee,
}

// AllowedActors returns who may move a booking from one status to another.
// ok is false when the transition does not exist.
func AllowedActors(from, to BookingStatus) (actors BookingActor, ok bool) {
	actors, ok = bookingTransitions[transition{from, to}]
	return actors, ok
}

// Booking snapshots the slot at booking time; the copied fields are never
// re-derived from the slot afterwards.
type Booking struct {
	Base
	SlotID        uuid.UUID     `db:"slot_id"`
	MenteeID      uuid.UUID     `db:"mentee_id"`
	MenteeName    string        `db:"mentee_name"`
	MentorID      uuid.UUID     `db:"mentor_id"`
	MentorName    string        `db:"mentor_name"`
	Date          string        `db:"slot_date"`
	StartTime     string        `db:"start_time"`
	EndTime       string        `db:"end_time"`
	Price         float64       `db:"price"`
	Title         string        `db:"title"`
	Message       *string       `db:"message"`
	Status        BookingStatus `db:"status"`
	PaymentStatus PaymentStatus `db:"payment_status"`
}

func NewBooking(slot *Slot, mentee Identity, message *string, now time.Time) *Booking {
	payment := PaymentStatusNotRequired
	if slot.Price > 0 {
		payment = PaymentStatusPending
	}

	return &Booking{
		Base:          NewBase(now),
		SlotID:        slot.ID,
		MenteeID:      mentee.UserID,
		MenteeName:    mentee.Name,
		MentorID:      slot.MentorID,
		MentorName:    slot.MentorName,
		Date:          slot.Date,
		StartTime:     slot.StartTime,
		EndTime:       slot.EndTime,
		Price:         slot.Price,
		Title:         slot.Title,
		Message:       message,
		Status:        BookingStatusPending,
		PaymentStatus: payment,
	}
}

// ActorOf returns the role userID plays on the booking, zero if none.
func (b *Booking) ActorOf(userID uuid.UUID) BookingActor {
	var actor BookingActor
	if b.MentorID == userID {
		actor |= ActorMentor
	}
	if b.MenteeID == userID {
		actor |= ActorMentee
	}
	return actor
}

func (b *Booking) IsParticipant(userID uuid.UUID) bool {
	return b.ActorOf(userID) != 0
}
