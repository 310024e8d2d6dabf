package handlers

import (
	"encoding/json"
	"net/http"

	"outpass-backend/internal/models"
	"outpass-backend/internal/services"
	"outpass-backend/pkg/utils"
)

type StudentHandler struct {
	Service *services.StudentService
}

func NewStudentHandler(service *services.StudentService) *StudentHandler {
	return &StudentHandler{Service: service}
}

// RegisterStudent adds a student to the directory (admin only).
func (h *StudentHandler) RegisterStudent(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	student, err := h.Service.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Student added successfully!",
		"student": student,
	})
}

// ListStudents returns the directory for the admin details page.
func (h *StudentHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.Service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	// Ensure we return empty array instead of null
	if students == nil {
		students = []models.Student{}
	}

	utils.JSON(w, http.StatusOK, students)
}
