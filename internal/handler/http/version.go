package http

import (
	"net/http"

	"github.com/akarpov/go-social-auth/internal/utils"
	"github.com/akarpov/go-social-auth/models"
)

func (h *Handler) getAppVersion(w http.ResponseWriter, r *http.Request) {
	appVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	utils.WriteJSON(w, models.VersionResponse{Version: appVersion}, http.StatusOK)
}
