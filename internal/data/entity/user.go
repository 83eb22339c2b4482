package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleMentor UserRole = "mentor"
	RoleMentee UserRole = "mentee"
)

func (r UserRole) Valid() bool {
	return r == RoleMentor || r == RoleMentee
}

type User struct {
	Base
	Email        string   `db:"email"`
	Name         string   `db:"name"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
}

// Identity is the authenticated caller as issued by the identity provider.
type Identity struct {
	UserID    uuid.UUID
	Name      string
	Email     string
	Role      UserRole
	SessionID uuid.UUID
}

type Session struct {
	BaseSimple
	UserID    uuid.UUID  `db:"user_id"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

func (s *Session) IsActive(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
