package entity

import (
	"math"

	"github.com/google/uuid"
)

// MentorProfile is a directory entry. UserID is nil for catalog entries
// that are not backed by an account.
type MentorProfile struct {
	Base
	UserID       *uuid.UUID
	Name         string
	JobTitle     string
	Company      string
	Bio          string
	Expertise    []string
	Industry     string
	Experience   int
	Rating       float64
	ReviewCount  int
	Location     string
	Languages    []string
	MeetingTypes []string
	Availability string
	ProfileImage string
	MeetingFee   float64
}

// AccountID is the id content authored by this mentor is stored under: the
// owning account when there is one, the directory id otherwise.
func (m *MentorProfile) AccountID() uuid.UUID {
	if m.UserID != nil {
		return *m.UserID
	}
	return m.ID
}

type MentorSort string

const (
	MentorSortRating     MentorSort = "rating"
	MentorSortExperience MentorSort = "experience"
	MentorSortReviews    MentorSort = "reviews"
)

type MentorFilter struct {
	Search    string
	Industry  string
	Expertise string
	Location  string
	MinRating *float64
	SortBy    MentorSort
}

type FAQ struct {
	BaseSimple
	Question string
	Category string
	IsCommon bool
	MentorID *uuid.UUID
}

type Article struct {
	BaseSimple
	Title      string
	Excerpt    string
	Content    string
	AuthorID   uuid.UUID
	AuthorName string
	Category   string
	Tags       []string
	ReadTime   int // minutes
}

type ArticleFilter struct {
	Category string
	AuthorID *uuid.UUID
	Limit    int
}

type Review struct {
	BaseSimple
	MentorID   uuid.UUID
	MenteeID   uuid.UUID
	MenteeName string
	BookingID  uuid.UUID
	Rating     int // 1-5
	Comment    *string
}

type MeetingNote struct {
	BaseSimple
	BookingID  uuid.UUID
	AuthorID   uuid.UUID
	AuthorName string
	AuthorRole UserRole
	Notes      string
	IsPrivate  bool
}

func (n *MeetingNote) VisibleTo(userID uuid.UUID) bool {
	return !n.IsPrivate || n.AuthorID == userID
}

// AverageRating is the mean rating rounded to one decimal, 0 without reviews.
func AverageRating(reviews []*Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	return math.Round(float64(total)/float64(len(reviews))*10) / 10
}
