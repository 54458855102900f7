package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"schoolbook/internal/api/util"
	"schoolbook/internal/record"
)

// BroadcastHandler serves the exam schedule, teacher roster, and teacher
// salary endpoints, all of which fan one entry out to every record.
type BroadcastHandler struct {
	Records *record.Service
}

// AddExam handles POST /addexam
func (h *BroadcastHandler) AddExam(w http.ResponseWriter, r *http.Request) {
	var in record.ExamInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if err := h.Records.ScheduleExam(ctx, in); err != nil {
		util.HandleServiceError(w, err)
		return
	}

	util.WriteJSONMessage(w, http.StatusCreated, "exam scheduled for all students successfully")
}

// AllExams handles GET /getallexams
func (h *BroadcastHandler) AllExams(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	exams, err := h.Records.AllExams(ctx)
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, exams)
}

// AddTeacher handles POST /addtecher
func (h *BroadcastHandler) AddTeacher(w http.ResponseWriter, r *http.Request) {
	var in record.TeacherInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if err := h.Records.AddTeacher(ctx, in); err != nil {
		util.HandleServiceError(w, err)
		return
	}

	util.WriteJSONMessage(w, http.StatusCreated, "teachers added successfully")
}

// TeacherLists handles GET /getalltecher
func (h *BroadcastHandler) TeacherLists(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	lists, err := h.Records.TeacherLists(ctx)
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, lists)
}

// AddTeacherSalary handles POST /techersalary
func (h *BroadcastHandler) AddTeacherSalary(w http.ResponseWriter, r *http.Request) {
	var in record.SalaryInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if err := h.Records.AddTeacherSalary(ctx, in); err != nil {
		util.HandleServiceError(w, err)
		return
	}

	util.WriteJSONMessage(w, http.StatusCreated, "teachers salary added successfully")
}

// SalaryLists handles GET /getalltechersalary
func (h *BroadcastHandler) SalaryLists(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	lists, err := h.Records.SalaryLists(ctx)
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, lists)
}
