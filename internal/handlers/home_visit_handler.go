package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"outpass-backend/internal/cache"
	"outpass-backend/internal/models"
	"outpass-backend/internal/services"
	"outpass-backend/pkg/utils"
)

type HomeVisitHandler struct {
	Service *services.OutpassService
	Slips   *services.SlipService
}

func NewHomeVisitHandler(service *services.OutpassService, slips *services.SlipService) *HomeVisitHandler {
	return &HomeVisitHandler{Service: service, Slips: slips}
}

// CreateHomeVisit accepts a home-visit request from the public form.
func (h *HomeVisitHandler) CreateHomeVisit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitHomeVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	hv, err := h.Service.SubmitHomeVisit(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	cache.InvalidateList(r.Context(), cache.HomeVisitListKey)

	utils.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Home visit request submitted successfully!",
		"entry":   hv,
	})
}

// ListHomeVisits returns all home-visit records for the admin dashboard.
// The list is served from Redis when a fresh copy is cached.
func (h *HomeVisitHandler) ListHomeVisits(w http.ResponseWriter, r *http.Request) {
	if data, ok := cache.GetList(r.Context(), cache.HomeVisitListKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
		return
	}

	visits, err := h.Service.ListHomeVisits(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if visits == nil {
		visits = []models.HomeVisit{}
	}

	body, err := json.Marshal(visits)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	cache.SetList(r.Context(), cache.HomeVisitListKey, body)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// MarkEntered flags a home-visit record as returned to the hostel.
func (h *HomeVisitHandler) MarkEntered(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	hv, err := h.Service.MarkHomeVisitEntered(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	cache.InvalidateList(r.Context(), cache.HomeVisitListKey)

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Entry marked successfully!",
		"entry":   hv,
	})
}

// DeleteHomeVisit removes a home-visit record. Outings have no
// corresponding route.
func (h *HomeVisitHandler) DeleteHomeVisit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	if err := h.Service.DeleteHomeVisit(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	cache.InvalidateList(r.Context(), cache.HomeVisitListKey)

	utils.JSON(w, http.StatusOK, map[string]string{
		"message": "Entry deleted successfully!",
	})
}

// DownloadSlip renders a printable gate slip for one home-visit record.
func (h *HomeVisitHandler) DownloadSlip(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	hv, err := h.Service.GetHomeVisit(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	pdf, err := h.Slips.RenderHomeVisitSlip(hv)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate slip")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=home_visit_slip_%d.pdf", id))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
