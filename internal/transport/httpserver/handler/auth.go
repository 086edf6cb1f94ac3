package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	profiledomain "github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/domain/profile"
	"github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/transport/httpserver/middleware"
	"github.com/psn74720-cell/Sree-Janani-Transillers-rms/pkg/clients/supabase"
)

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
}

type profileResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type authResponse struct {
	Session sessionResponse `json:"session"`
	Profile profileResponse `json:"profile"`
}

func (h *Handlers) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if strings.TrimSpace(req.Email) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "email is required")
		return
	}
	if req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "password is required")
		return
	}
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "full name is required")
		return
	}
	role := strings.TrimSpace(req.Role)
	if role != "" && !profiledomain.ValidRole(role) {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid role")
		return
	}

	session, err := h.Identity.SignUp(r.Context(), req.Email, req.Password, map[string]any{"full_name": fullName})
	if err != nil {
		if writeIdentityError(w, err, http.StatusBadRequest) {
			h.log.BusinessError("auth.signup: rejected", err)
			return
		}
		h.log.InternalError("auth.signup: identity service failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	if session.User.ID == "" {
		h.log.InternalError("auth.signup: identity service returned no user", errors.New("empty user id"))
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	// The profile must exist before we report success so the caller never
	// holds a session without one.
	prof, err := h.Profiles.EnsureProfile(r.Context(), session.User.ID, fullName, role)
	if err != nil {
		h.log.InternalError("auth.signup: ensure profile failed", err, "user_id", session.User.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toAuthResponse(session, prof))
}

func (h *Handlers) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "email and password are required")
		return
	}

	session, err := h.Identity.SignInWithPassword(r.Context(), req.Email, req.Password)
	if err != nil {
		if writeIdentityError(w, err, http.StatusUnauthorized) {
			h.log.BusinessError("auth.signin: rejected", err)
			return
		}
		h.log.InternalError("auth.signin: identity service failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	fullName := ""
	if value, ok := session.User.UserMetadata["full_name"].(string); ok {
		fullName = value
	}
	prof, err := h.Profiles.EnsureProfile(r.Context(), session.User.ID, fullName, "")
	if err != nil {
		h.log.InternalError("auth.signin: ensure profile failed", err, "user_id", session.User.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(session, prof))
}

func (h *Handlers) SignOut(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r.Header.Get("Authorization"))
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	if err := h.Identity.SignOut(r.Context(), token); err != nil {
		if writeIdentityError(w, err, http.StatusUnauthorized) {
			h.log.BusinessError("auth.signout: rejected", err)
			return
		}
		h.log.InternalError("auth.signout: identity service failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	prof, ok := middleware.ProfileFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(prof))
}

// writeIdentityError surfaces the identity service's own message verbatim for
// rejections (AuthError taxonomy). Transport-level failures return false and
// are handled as internal errors by the caller.
func writeIdentityError(w http.ResponseWriter, err error, fallbackStatus int) bool {
	var authErr *supabase.AuthError
	if !errors.As(err, &authErr) {
		return false
	}

	status := fallbackStatus
	if authErr.Status >= 400 && authErr.Status < 500 {
		status = authErr.Status
	}
	writeError(w, status, "auth_error", authErr.Message)
	return true
}

func toAuthResponse(session *supabase.Session, prof *profiledomain.Profile) authResponse {
	return authResponse{
		Session: sessionResponse{
			AccessToken:  session.AccessToken,
			TokenType:    session.TokenType,
			ExpiresIn:    session.ExpiresIn,
			RefreshToken: session.RefreshToken,
		},
		Profile: toProfileResponse(prof),
	}
}

func toProfileResponse(prof *profiledomain.Profile) profileResponse {
	return profileResponse{
		ID:        prof.ID,
		FullName:  prof.FullName,
		Role:      prof.Role,
		CreatedAt: prof.CreatedAt,
	}
}

func bearerToken(value string) (string, bool) {
	parts := strings.Fields(value)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
