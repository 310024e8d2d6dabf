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

type OutingHandler struct {
	Service *services.OutpassService
	Slips   *services.SlipService
}

func NewOutingHandler(service *services.OutpassService, slips *services.SlipService) *OutingHandler {
	return &OutingHandler{Service: service, Slips: slips}
}

// CreateOuting accepts an outing request from the public form.
func (h *OutingHandler) CreateOuting(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitOutingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	o, err := h.Service.SubmitOuting(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	cache.InvalidateList(r.Context(), cache.OutingListKey)

	utils.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Outing request submitted successfully!",
		"entry":   o,
	})
}

// ListOutings returns all outing records for the admin dashboard.
func (h *OutingHandler) ListOutings(w http.ResponseWriter, r *http.Request) {
	if data, ok := cache.GetList(r.Context(), cache.OutingListKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
		return
	}

	outings, err := h.Service.ListOutings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if outings == nil {
		outings = []models.Outing{}
	}

	body, err := json.Marshal(outings)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	cache.SetList(r.Context(), cache.OutingListKey, body)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// MarkEntered flags an outing record as returned to the hostel.
func (h *OutingHandler) MarkEntered(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	o, err := h.Service.MarkOutingEntered(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	cache.InvalidateList(r.Context(), cache.OutingListKey)

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Entry marked successfully!",
		"entry":   o,
	})
}

// DownloadSlip renders a printable gate slip for one outing record.
func (h *OutingHandler) DownloadSlip(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	o, err := h.Service.GetOuting(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	pdf, err := h.Slips.RenderOutingSlip(o)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate slip")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=outing_slip_%d.pdf", id))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
