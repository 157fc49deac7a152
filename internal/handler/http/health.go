package http

import (
	"net/http"

	"github.com/akarpov/go-social-auth/internal/utils"
	"github.com/akarpov/go-social-auth/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		Status:  "success",
		Message: "service running",
	}, http.StatusOK)
}
