package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"mentor-booking/internal/data/entity"
	"mentor-booking/internal/data/repository"
	"mentor-booking/internal/dto/request"
	"mentor-booking/internal/dto/response"

	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, identity entity.Identity) (*response.ProfileResponse, error)
	// UpdateProfile lets a mentor edit their account name and directory entry.
	UpdateProfile(ctx context.Context, identity entity.Identity, req *request.UpdateProfileRequest) (*response.ProfileResponse, error)
}

type userService struct {
	repo *repository.Repository
	now  Clock
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, now Clock, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		now:  now,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, identity entity.Identity) (*response.ProfileResponse, error) {
	user, err := s.repo.User.FindByID(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", identity.UserID.String(), entity.ErrNotFound)
	}

	resp := &response.ProfileResponse{UserResponse: response.UserToResponse(user)}

	if user.Role == entity.RoleMentor {
		mentor, err := s.repo.Mentor.FindByUserID(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("find mentor profile: %w", err)
		}
		if mentor != nil {
			m := response.MentorToResponse(mentor)
			resp.Mentor = &m
		}
	}

	return resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, identity entity.Identity, req *request.UpdateProfileRequest) (*response.ProfileResponse, error) {
	if err := requireRole(identity, entity.RoleMentor, "update a mentor profile"); err != nil {
		return nil, err
	}
	if err := validate(s.log, "Update profile", req); err != nil {
		return nil, err
	}

	user, err := s.repo.User.FindByID(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", identity.UserID.String(), entity.ErrNotFound)
	}

	now := s.now()

	if req.Name != nil && strings.TrimSpace(*req.Name) != user.Name {
		user.Name = strings.TrimSpace(*req.Name)
		user.UpdatedAt = now
		if err := s.repo.User.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}
	}

	profile, err := ensureMentorProfile(ctx, s.repo.Mentor, user, now)
	if err != nil {
		return nil, err
	}

	profile, err = s.repo.Mentor.Update(ctx, profile.ID, func(m *entity.MentorProfile) error {
		m.Name = user.Name
		setIfPresent(&m.Bio, req.Bio)
		setIfPresent(&m.JobTitle, req.JobTitle)
		setIfPresent(&m.Company, req.Company)
		setIfPresent(&m.Industry, req.Industry)
		setIfPresent(&m.Location, req.Location)
		if req.Expertise != nil {
			m.Expertise = slices.Clone(req.Expertise)
		}
		if req.MeetingFee != nil {
			m.MeetingFee = *req.MeetingFee
		}
		m.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update mentor profile: %w", err)
	}

	s.log.Info("Mentor profile updated", zap.String("user_id", user.ID.String()))

	m := response.MentorToResponse(profile)
	return &response.ProfileResponse{
		UserResponse: response.UserToResponse(user),
		Mentor:       &m,
	}, nil
}

// ensureMentorProfile returns the directory entry backing a mentor account,
// creating an empty one keyed by the user id when none exists yet.
func ensureMentorProfile(ctx context.Context, mentors repository.MentorRepository, user *entity.User, now time.Time) (*entity.MentorProfile, error) {
	profile, err := mentors.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("find mentor profile: %w", err)
	}
	if profile != nil {
		return profile, nil
	}

	userID := user.ID
	profile = &entity.MentorProfile{
		Base:   entity.Base{ID: user.ID, CreatedAt: now, UpdatedAt: now},
		UserID: &userID,
		Name:   user.Name,
	}

	err = mentors.Create(ctx, profile)
	if errors.Is(err, entity.ErrConflict) {
		// lost a race with a concurrent create
		return mentors.FindByUserID(ctx, user.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("create mentor profile: %w", err)
	}
	return profile, nil
}

func setIfPresent(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}
