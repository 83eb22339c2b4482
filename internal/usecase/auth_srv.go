package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mentor-booking/internal/data/entity"
	"mentor-booking/internal/data/repository"
	"mentor-booking/internal/dto/request"
	"mentor-booking/internal/dto/response"
	"mentor-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	// Authenticate resolves an access token to its caller. Any token problem,
	// including a revoked or expired session, is entity.ErrUnauthorized.
	Authenticate(ctx context.Context, token string) (*entity.Identity, error)
}

type authService struct {
	repo   *repository.Repository
	config utils.JWTConfig
	now    Clock
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config utils.JWTConfig, now Clock, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		now:    now,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if err := validate(s.log, "Register", req); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered: %w", entity.ErrConflict)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	user := &entity.User{
		Base:         entity.NewBase(now),
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: hashed,
		Role:         entity.UserRole(req.Role),
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	if user.Role == entity.RoleMentor {
		if _, err := ensureMentorProfile(ctx, s.repo.Mentor, user, now); err != nil {
			s.log.Warn("Failed to create mentor profile", zap.Error(err), zap.String("user_id", user.ID.String()))
		}
	}

	resp, err := s.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)),
	)
	return resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if err := validate(s.log, "Login", req); err != nil {
		return nil, err
	}

	user, err := s.repo.User.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid login attempt", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid credentials: %w", entity.ErrUnauthorized)
	}

	resp, err := s.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))
	return resp, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := utils.ParseToken(s.config.Secret, token, s.now())
	if err != nil {
		return fmt.Errorf("%w: %v", entity.ErrUnauthorized, err)
	}

	sessionID, err := uuid.Parse(claims.ID)
	if err != nil {
		return fmt.Errorf("malformed session id: %w", entity.ErrUnauthorized)
	}

	if err := s.repo.Session.Revoke(ctx, sessionID, s.now()); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return fmt.Errorf("session already ended: %w", entity.ErrUnauthorized)
		}
		return fmt.Errorf("revoke session: %w", err)
	}

	s.log.Info("User logged out", zap.String("user_id", claims.Subject))
	return nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*entity.Identity, error) {
	now := s.now()

	claims, err := utils.ParseToken(s.config.Secret, token, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrUnauthorized, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("malformed subject: %w", entity.ErrUnauthorized)
	}
	sessionID, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, fmt.Errorf("malformed session id: %w", entity.ErrUnauthorized)
	}

	session, err := s.repo.Session.FindByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	if session == nil || session.UserID != userID || !session.IsActive(now) {
		return nil, fmt.Errorf("session is not active: %w", entity.ErrUnauthorized)
	}

	// claims are frozen at login; name snapshots must follow profile edits
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s no longer exists: %w", claims.Subject, entity.ErrUnauthorized)
	}
	if !user.Role.Valid() {
		return nil, fmt.Errorf("unknown role %q: %w", user.Role, entity.ErrUnauthorized)
	}

	return &entity.Identity{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		SessionID: sessionID,
	}, nil
}

// issueToken opens a session and signs an access token bound to it.
func (s *authService) issueToken(ctx context.Context, user *entity.User) (*response.AuthResponse, error) {
	now := s.now()
	session := &entity.Session{
		BaseSimple: entity.NewBaseSimple(now),
		UserID:     user.ID,
		ExpiresAt:  now.Add(s.config.TokenTTL()),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	token, err := utils.GenerateToken(
		s.config.Secret,
		user.ID.String(),
		session.ID.String(),
		string(user.Role),
		user.Name,
		user.Email,
		now,
		s.config.TokenTTL(),
	)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("sign token: %w", err)
	}

	resp := response.AuthToResponse(user, token, session.ExpiresAt)
	return &resp, nil
}
