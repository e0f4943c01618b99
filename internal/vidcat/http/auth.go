package http

import (
	"net/http"

	"github.com/aussiebroadwan/vidcat/internal/vidcat/service"
	"github.com/aussiebroadwan/vidcat/pkg/httpx"
	"github.com/aussiebroadwan/vidcat/pkg/vidsdk"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleSignup godoc
//
//	@Summary		Create Account
//	@Description	Register a new viewer and sign them in. All validation problems are reported together.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		vidsdk.SignupRequest	true	"name, email, password"
//	@Success		201		{object}	httpx.Envelope{data=vidsdk.AuthResponse}
//	@Failure		400		{object}	httpx.Envelope	"validation_failed"
//	@Failure		409		{object}	httpx.Envelope	"email_taken"
//	@Failure		429		{object}	httpx.Envelope	"rate_limit_exceeded"
//	@Router			/api/auth/signup [post].
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req vidsdk.SignupRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		vidsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	sess, err := h.AuthService.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusCreated, "Account created successfully", toAuthResponse(sess))
}

// HandleLogin godoc
//
//	@Summary		Sign In
//	@Description	Exchange email and password for an access and refresh token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		vidsdk.LoginRequest	true	"email, password"
//	@Success		200		{object}	httpx.Envelope{data=vidsdk.AuthResponse}
//	@Failure		400		{object}	httpx.Envelope	"validation_failed"
//	@Failure		401		{object}	httpx.Envelope	"invalid_credentials"
//	@Failure		429		{object}	httpx.Envelope	"rate_limit_exceeded"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req vidsdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		vidsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	sess, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "Login successful", toAuthResponse(sess))
}

// HandleRefresh godoc
//
//	@Summary		Refresh Tokens
//	@Description	Rotate a refresh token. The presented token is revoked and cannot be used again.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		vidsdk.RefreshRequest	true	"refresh_token"
//	@Success		200		{object}	httpx.Envelope{data=vidsdk.AuthResponse}
//	@Failure		401		{object}	httpx.Envelope	"invalid_refresh_token"
//	@Router			/api/auth/refresh [post].
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	var req vidsdk.RefreshRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		vidsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	sess, err := h.AuthService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "Token refreshed", toAuthResponse(sess))
}

// HandleMe godoc
//
//	@Summary		Current User
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	httpx.Envelope{data=vidsdk.ProfileResponse}
//	@Failure		401	{object}	httpx.Envelope	"unauthorized"
//	@Failure		404	{object}	httpx.Envelope	"user_not_found"
//	@Router			/api/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthService.Profile(r.Context(), httpx.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "", vidsdk.ProfileResponse{User: toUser(user)})
}

// HandleLogout godoc
//
//	@Summary		Sign Out
//	@Description	Revoke every refresh token of the caller. Access tokens expire on their own.
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	httpx.Envelope
//	@Failure		401	{object}	httpx.Envelope	"unauthorized"
//	@Router			/api/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.AuthService.Logout(r.Context(), httpx.UserIDFromContext(r.Context())); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "Logged out successfully", nil)
}
