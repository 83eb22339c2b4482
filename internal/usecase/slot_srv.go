package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mentor-booking/internal/data/entity"
	"mentor-booking/internal/data/repository"
	"mentor-booking/internal/dto/request"
	"mentor-booking/internal/dto/response"

	"go.uber.org/zap"
)

type SlotService interface {
	CreateSlot(ctx context.Context, identity entity.Identity, req *request.CreateSlotRequest) (*response.SlotResponse, error)
	// ListMentorSlots returns every slot of the calling mentor, booked or not, date ascending.
	ListMentorSlots(ctx context.Context, identity entity.Identity) ([]response.SlotResponse, error)
	// ListAvailableSlots never returns a booked slot.
	ListAvailableSlots(ctx context.Context, query *request.AvailableSlotsQuery) ([]response.SlotResponse, error)
}

type slotService struct {
	repo *repository.Repository
	now  Clock
	log  *zap.Logger
}

func NewSlotService(repo *repository.Repository, now Clock, log *zap.Logger) SlotService {
	return &slotService{
		repo: repo,
		now:  now,
		log:  log.With(zap.String("service", "slot")),
	}
}

func (s *slotService) CreateSlot(ctx context.Context, identity entity.Identity, req *request.CreateSlotRequest) (*response.SlotResponse, error) {
	if err := requireRole(identity, entity.RoleMentor, "create slots"); err != nil {
		return nil, err
	}
	if err := validate(s.log, "Create slot", req); err != nil {
		return nil, err
	}

	date, start, end, err := normalizeWindow(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if date < now.Format(entity.DateLayout) {
		return nil, entity.NewValidationError("Date", "Date cannot be in the past")
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, entity.NewValidationError("Title", "This field is required")
	}

	slot := &entity.Slot{
		Base:        entity.NewBase(now),
		MentorID:    identity.UserID,
		MentorName:  identity.Name,
		Date:        date,
		StartTime:   start,
		EndTime:     end,
		Price:       req.Price,
		Title:       title,
		Description: req.Description,
	}

	if err := s.repo.Slot.Create(ctx, slot); err != nil {
		s.log.Warn("Failed to create slot",
			zap.Error(err),
			zap.String("mentor_id", identity.UserID.String()),
			zap.String("date", date),
		)
		return nil, fmt.Errorf("create slot: %w", err)
	}

	s.log.Info("Slot created",
		zap.String("slot_id", slot.ID.String()),
		zap.String("mentor_id", slot.MentorID.String()),
		zap.String("date", slot.Date),
		zap.String("start", slot.StartTime),
	)

	resp := response.SlotToResponse(slot)
	return &resp, nil
}

func (s *slotService) ListMentorSlots(ctx context.Context, identity entity.Identity) ([]response.SlotResponse, error) {
	if err := requireRole(identity, entity.RoleMentor, "list their slots"); err != nil {
		return nil, err
	}

	slots, err := s.repo.Slot.FindByMentorID(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("list mentor slots: %w", err)
	}
	return response.SlotsToResponse(slots), nil
}

func (s *slotService) ListAvailableSlots(ctx context.Context, query *request.AvailableSlotsQuery) ([]response.SlotResponse, error) {
	if err := validate(s.log, "Available slots", query); err != nil {
		return nil, err
	}

	filter := entity.SlotFilter{Date: query.Date}
	if query.MentorID != "" {
		mentorID, err := parseID("mentor_id", query.MentorID)
		if err != nil {
			return nil, err
		}
		if mentorID, err = mentorAccountID(ctx, s.repo.Mentor, mentorID); err != nil {
			return nil, err
		}
		filter.MentorID = &mentorID
	}

	slots, err := s.repo.Slot.FindAvailable(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list available slots: %w", err)
	}
	return response.SlotsToResponse(slots), nil
}

// normalizeWindow re-formats the date and times into their canonical layouts
// and checks the window is not empty.
func normalizeWindow(date, start, end string) (string, string, string, error) {
	d, err := time.Parse(entity.DateLayout, date)
	if err != nil {
		return "", "", "", entity.NewValidationError("Date", "Must match the format 2006-01-02")
	}
	st, err := time.Parse(entity.TimeLayout, start)
	if err != nil {
		return "", "", "", entity.NewValidationError("StartTime", "Must be a time in HH:MM format")
	}
	et, err := time.Parse(entity.TimeLayout, end)
	if err != nil {
		return "", "", "", entity.NewValidationError("EndTime", "Must be a time in HH:MM format")
	}
	if !et.After(st) {
		return "", "", "", entity.NewValidationError("EndTime", "End time must be after start time")
	}
	return d.Format(entity.DateLayout), st.Format(entity.TimeLayout), et.Format(entity.TimeLayout), nil
}
