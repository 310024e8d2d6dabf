package handlers

import (
	"errors"
	"net/http"

	"outpass-backend/internal/apperrors"
	"outpass-backend/pkg/utils"
)

// writeError maps service errors onto HTTP responses: validation → 400,
// not-found → 404, duplicate → 409, everything else → 500.
func writeError(w http.ResponseWriter, err error) {
	var ve *apperrors.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "All fields are required",
			"fields": ve.Fields,
		})
	case errors.Is(err, apperrors.ErrNotFound):
		utils.Error(w, http.StatusNotFound, "Entry not found")
	case errors.Is(err, apperrors.ErrDuplicate):
		utils.Error(w, http.StatusConflict, "Duplicate data. Student already exists.")
	default:
		utils.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
