package http

import (
	"net/http"
	"strconv"

	"github.com/akarpov/go-social-auth/internal/logger"
	"github.com/akarpov/go-social-auth/internal/utils"
	"github.com/akarpov/go-social-auth/models"
)

// getUser handles GET /api/user/: it returns the account of the subject the
// presented application token was issued for.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	claims, ok := utils.GetClaimsFromContext(ctx)
	if !ok {
		log.Error().Msg("no claims in authenticated request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, err := h.services.UserService.GetUser(ctx, claims.Provider, claims.UID)
	if err != nil {
		log.Err(err).Str("provider", claims.Provider).Str("uid", claims.UID).Msg("user lookup failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// listUsers handles GET /api/users with optional "provider" and "limit"
// query parameters.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := models.UserFilter{
		Provider: r.URL.Query().Get("provider"),
	}
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil || limit < 0 {
			log.Error().Str("limit", rawLimit).Msg("invalid limit query parameter")
			http.Error(w, "invalid limit query parameter", http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}

	users, err := h.services.UserService.ListUsers(ctx, filter)
	if err != nil {
		log.Err(err).Str("provider", filter.Provider).Msg("user listing failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.UsersResponse{Users: users, Length: len(users)}, http.StatusOK)
}
