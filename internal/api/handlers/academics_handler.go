package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"schoolbook/internal/api/util"
	"schoolbook/internal/record"
)

// AcademicsHandler serves the marks, attendance, and homework endpoints.
type AcademicsHandler struct {
	Records *record.Service
}

// EnterMarks handles POST /entermarks
func (h *AcademicsHandler) EnterMarks(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Marks []record.MarkEntry `json:"marks"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Marks == nil {
		util.WriteJSONError(w, http.StatusBadRequest, "invalid marks format")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if err := h.Records.EnterMarks(ctx, body.Marks); err != nil {
		util.HandleServiceError(w, err)
		return
	}

	util.WriteJSONMessage(w, http.StatusOK, "marks updated successfully")
}

// ListMarks handles GET /entermarks, returning all records.
func (h *AcademicsHandler) ListMarks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	students, err := h.Records.ListStudents(ctx)
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, students)
}

// RecordAttendance handles POST /enterattendance
func (h *AcademicsHandler) RecordAttendance(w http.ResponseWriter, r *http.Request) {
	var in record.AttendanceInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	student, err := h.Records.RecordAttendance(ctx, in)
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusCreated, student)
}

// AddHomework handles POST /addhomework
func (h *AcademicsHandler) AddHomework(w http.ResponseWriter, r *http.Request) {
	var in record.HomeworkInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.Records.AddHomework(ctx, in); err != nil {
		util.HandleServiceError(w, err)
		return
	}

	util.WriteJSONMessage(w, http.StatusCreated, "homework added successfully")
}

// AllHomework handles GET /allhomework
func (h *AcademicsHandler) AllHomework(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	homework, err := h.Records.AllHomework(ctx)
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, homework)
}
