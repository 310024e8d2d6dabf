package handlers

import (
	"net/http"
	"strconv"

	"outpass-backend/internal/models"
	"outpass-backend/internal/repositories"
	"outpass-backend/pkg/utils"
)

type NotificationLogHandler struct {
	Repo *repositories.NotificationLogRepository
}

func NewNotificationLogHandler(repo *repositories.NotificationLogRepository) *NotificationLogHandler {
	return &NotificationLogHandler{Repo: repo}
}

// ListNotifications returns recent guardian email attempts, newest first.
// Accepts an optional ?limit= query parameter.
func (h *NotificationLogHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			utils.Error(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	logs, err := h.Repo.List(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	if logs == nil {
		logs = []models.NotificationLog{}
	}

	utils.JSON(w, http.StatusOK, logs)
}
