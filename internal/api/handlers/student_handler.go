package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"schoolbook/internal/api/util"
	"schoolbook/internal/record"
)

// StudentHandler serves the student CRUD endpoints.
type StudentHandler struct {
	Records *record.Service
}

// CreateStudent handles POST /students
func (h *StudentHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var in record.CreateStudentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	student, err := h.Records.CreateStudent(ctx, in)
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusCreated, student)
}

// ListStudents handles GET /students
func (h *StudentHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	students, err := h.Records.ListStudents(ctx)
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, students)
}

// DeleteStudent handles DELETE /students/{id}
func (h *StudentHandler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.Records.DeleteStudent(ctx, id); err != nil {
		util.HandleServiceError(w, err)
		return
	}

	util.WriteJSONMessage(w, http.StatusOK, "student deleted successfully")
}
