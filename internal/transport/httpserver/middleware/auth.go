package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/config"
	profiledomain "github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/domain/profile"
	"github.com/psn74720-cell/Sree-Janani-Transillers-rms/pkg/clients/supabase"
	"github.com/psn74720-cell/Sree-Janani-Transillers-rms/pkg/logger"
)

// User is the authenticated identity as reported by the identity service.
type User struct {
	ID    string
	Email string
	Name  string
}

// IdentityVerifier resolves a bearer token to an identity.
type IdentityVerifier interface {
	GetUser(ctx context.Context, accessToken string) (*supabase.User, error)
}

// ProfileEnsurer guarantees a profile row exists for an identity.
type ProfileEnsurer interface {
	EnsureProfile(ctx context.Context, id, fullName, role string) (*profiledomain.Profile, error)
}

type Auth struct {
	verifier IdentityVerifier
	profiles ProfileEnsurer
	log      logger.Logger
	skipAuth bool
	mockUser User
	mockRole string
}

func NewAuth(cfg config.SupabaseConfig, verifier IdentityVerifier, profiles ProfileEnsurer, log logger.Logger) *Auth {
	return &Auth{
		verifier: verifier,
		profiles: profiles,
		log:      log,
		skipAuth: cfg.SkipAuth,
		mockUser: User{
			ID:    strings.TrimSpace(cfg.MockUserID),
			Email: strings.TrimSpace(cfg.MockEmail),
			Name:  strings.TrimSpace(cfg.MockName),
		},
		mockRole: strings.TrimSpace(cfg.MockRole),
	}
}

// Middleware authenticates the request and attaches both the identity and its
// profile to the context. The profile is resolved before the request proceeds,
// so downstream handlers never see an authenticated identity without one.
func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.skipAuth {
			if a.mockUser.ID == "" {
				writeError(w, http.StatusInternalServerError, "auth_not_configured", "auth mock user id not configured")
				return
			}
			a.serveAs(next, w, r, a.mockUser, a.mockRole)
			return
		}

		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			unauthorized(w)
			return
		}

		identity, err := a.verifier.GetUser(r.Context(), token)
		if err != nil {
			a.log.BusinessError("auth: token verification failed", err)
			unauthorized(w)
			return
		}

		user := User{
			ID:    identity.ID,
			Email: identity.Email,
			Name:  displayName(identity),
		}
		a.serveAs(next, w, r, user, "")
	})
}

func (a *Auth) serveAs(next http.Handler, w http.ResponseWriter, r *http.Request, user User, role string) {
	prof, err := a.profiles.EnsureProfile(r.Context(), user.ID, user.Name, role)
	if err != nil {
		a.log.InternalError("auth: ensure profile failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	ctx := WithUser(r.Context(), user)
	ctx = WithProfile(ctx, prof)
	next.ServeHTTP(w, r.WithContext(ctx))
}

func displayName(identity *supabase.User) string {
	for _, key := range []string{"full_name", "name"} {
		if value, ok := identity.UserMetadata[key].(string); ok && value != "" {
			return value
		}
	}
	return identity.Email
}

func bearerToken(value string) (string, bool) {
	parts := strings.Fields(value)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

type contextKey int

const (
	userKey contextKey = iota
	profileKey
)

func WithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func UserFromContext(ctx context.Context) (User, bool) {
	user, ok := ctx.Value(userKey).(User)
	if !ok || user.ID == "" {
		return User{}, false
	}
	return user, true
}

func WithProfile(ctx context.Context, p *profiledomain.Profile) context.Context {
	return context.WithValue(ctx, profileKey, p)
}

func ProfileFromContext(ctx context.Context) (*profiledomain.Profile, bool) {
	p, ok := ctx.Value(profileKey).(*profiledomain.Profile)
	if !ok || p == nil {
		return nil, false
	}
	return p, true
}

func unauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
