package usecase

import (
	"context"
	"testing"
	"time"

	"mentor-booking/internal/data/entity"
	"mentor-booking/internal/data/repository"
	"mentor-booking/internal/dto/request"
	"mentor-booking/internal/dto/response"
	"mentor-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// today is the fixed clock every test service runs on.
var today = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

func testConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1},
	}
}

func newTestService(t *testing.T) (*Service, *repository.Repository) {
	t.Helper()
	repo := repository.NewMemoryRepository(repository.NewMemoryStore())
	svc := NewService(repo, testConfig(), zap.NewNop(), WithClock(func() time.Time { return today }))
	return svc, repo
}

func mentorIdentity(name string) entity.Identity {
	return entity.Identity{UserID: uuid.New(), Name: name, Email: name + "@test.com", Role: entity.RoleMentor}
}

func menteeIdentity(name string) entity.Identity {
	return entity.Identity{UserID: uuid.New(), Name: name, Email: name + "@test.com", Role: entity.RoleMentee}
}

func createSlot(t *testing.T, svc *Service, mentor entity.Identity, date, start, end string, price float64) *response.SlotResponse {
	t.Helper()
	slot, err := svc.Slot.CreateSlot(context.Background(), mentor, &request.CreateSlotRequest{
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Price:     price,
		Title:     "Intro",
	})
	require.NoError(t, err)
	return slot
}

func book(t *testing.T, svc *Service, mentee entity.Identity, slotID string) *response.BookingResponse {
	t.Helper()
	booking, err := svc.Booking.BookSlot(context.Background(), mentee, &request.CreateBookingRequest{SlotID: slotID})
	require.NoError(t, err)
	return booking
}

func setStatus(svc *Service, who entity.Identity, bookingID string, status entity.BookingStatus) (*response.BookingResponse, error) {
	return svc.Booking.UpdateStatus(context.Background(), who, bookingID, &request.UpdateBookingStatusRequest{Status: string(status)})
}
