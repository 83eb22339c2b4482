package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"mentor-booking/internal/data/entity"
	"mentor-booking/pkg/utils"

	"go.uber.org/zap"
)

// Authenticator resolves a bearer token to the caller behind it.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entity.Identity, error)
}

// AuthSession validates the bearer token and stores the identity and raw token
// on the request context.
func AuthSession(auth Authenticator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			scheme, token, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}
			token = strings.TrimSpace(token)

			identity, err := auth.Authenticate(r.Context(), token)
			if errors.Is(err, entity.ErrUnauthorized) {
				logger.Warn("Rejected access token", zap.String("path", r.URL.Path), zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			ctx := utils.SetIdentityContext(r.Context(), *identity)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole lets the request through only when the authenticated caller has
// the given role. It must run after AuthSession.
func RequireRole(role entity.UserRole, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if identity.Role != role {
				logger.Warn("Role check failed",
					zap.String("user_id", identity.UserID.String()),
					zap.String("role", string(identity.Role)),
					zap.String("required", string(role)),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseForbidden(w, "Only "+string(role)+"s can access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
