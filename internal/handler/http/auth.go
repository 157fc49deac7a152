package http

import (
	"encoding/json"
	"net/http"

	"github.com/akarpov/go-social-auth/internal/logger"
	"github.com/akarpov/go-social-auth/internal/utils"
	"github.com/akarpov/go-social-auth/models"
)

// authenticate handles POST /api/auth/authenticate: it exchanges a social
// access token for a signed application token.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Authenticate(ctx, request)
	if err != nil {
		log.Err(err).Str("provider", request.Provider).Msg("authentication failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		AppToken: token.SignedString,
		Claims:   token.AuthClaims,
	}, http.StatusOK)
}

// revoke handles DELETE /api/auth/revoke: it deletes the jti record of the
// token that authorized the request, invalidating the token itself.
func (h *Handler) revoke(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	claims, ok := utils.GetClaimsFromContext(ctx)
	if !ok {
		log.Error().Msg("no claims in authenticated request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.AuthService.Revoke(ctx, claims.ID); err != nil {
		log.Err(err).Str("jti", claims.ID).Msg("token revocation failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
