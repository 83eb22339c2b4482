package usecase

import (
	"context"
	"fmt"
	"strings"

	"mentor-booking/internal/data/entity"
	"mentor-booking/internal/data/repository"
	"mentor-booking/internal/dto/request"
	"mentor-booking/internal/dto/response"

	"go.uber.org/zap"
)

type NoteService interface {
	AddNote(ctx context.Context, identity entity.Identity, bookingID string, req *request.CreateNoteRequest) (*response.NoteResponse, error)
	// ListNotes returns the booking's public notes and the caller's private ones, oldest first.
	ListNotes(ctx context.Context, identity entity.Identity, bookingID string) ([]response.NoteResponse, error)
}

type noteService struct {
	repo *repository.Repository
	now  Clock
	log  *zap.Logger
}

func NewNoteService(repo *repository.Repository, now Clock, log *zap.Logger) NoteService {
	return &noteService{
		repo: repo,
		now:  now,
		log:  log.With(zap.String("service", "note")),
	}
}

func (s *noteService) AddNote(ctx context.Context, identity entity.Identity, bookingID string, req *request.CreateNoteRequest) (*response.NoteResponse, error) {
	if err := validate(s.log, "Add note", req); err != nil {
		return nil, err
	}

	id, err := parseID("id", bookingID)
	if err != nil {
		return nil, err
	}

	booking, err := findParticipantBooking(ctx, s.repo.Booking, identity, id)
	if err != nil {
		return nil, err
	}

	note := &entity.MeetingNote{
		BaseSimple: entity.NewBaseSimple(s.now()),
		BookingID:  booking.ID,
		AuthorID:   identity.UserID,
		AuthorName: identity.Name,
		AuthorRole: identity.Role,
		Notes:      strings.TrimSpace(req.Notes),
		IsPrivate:  req.IsPrivate,
	}

	if err := s.repo.Note.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	s.log.Info("Meeting note added",
		zap.String("note_id", note.ID.String()),
		zap.String("booking_id", booking.ID.String()),
		zap.Bool("private", note.IsPrivate),
	)

	resp := response.NoteToResponse(note)
	return &resp, nil
}

func (s *noteService) ListNotes(ctx context.Context, identity entity.Identity, bookingID string) ([]response.NoteResponse, error) {
	id, err := parseID("id", bookingID)
	if err != nil {
		return nil, err
	}

	if _, err := findParticipantBooking(ctx, s.repo.Booking, identity, id); err != nil {
		return nil, err
	}

	notes, err := s.repo.Note.FindByBookingID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	visible := make([]*entity.MeetingNote, 0, len(notes))
	for _, note := range notes {
		if note.VisibleTo(identity.UserID) {
			visible = append(visible, note)
		}
	}
	return response.NotesToResponse(visible), nil
}
