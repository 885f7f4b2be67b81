// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ftc-scout/middleware"
	"github.com/danielhkuo/ftc-scout/models"
	"github.com/danielhkuo/ftc-scout/store"
	"github.com/danielhkuo/ftc-scout/views"
)

type RecordHandler struct {
	questions *store.QuestionStore
	records   *store.RecordStore
}

func NewRecordHandler(questions *store.QuestionStore, records *store.RecordStore) *RecordHandler {
	return &RecordHandler{questions: questions, records: records}
}

// ListRecords handles GET /records (?team= for substring filtering)
func (h *RecordHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	records := store.FilterByTeam(h.questions.List(), h.records.List(), r.URL.Query().Get("team"))
	middleware.JSONResponse(w, http.StatusOK, models.RecordListResponse{Records: records})
}

// SubmitRecord handles POST /records
func (h *RecordHandler) SubmitRecord(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRecordRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	record, err := h.records.Add(req.Answers)
	if err != nil {
		respondError(w, err)
		return
	}

	slog.Info("record submitted", "record_id", record.ID, "answers", len(record.Answers))

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitRecordResponse{
		RecordID: record.ID,
		Message:  "Scouting data saved",
	})
}

// GetRecord handles GET /records/{id}, returning the detail view.
func (h *RecordHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	for _, record := range h.records.List() {
		if record.ID == id {
			middleware.JSONResponse(w, http.StatusOK, views.Detail(record, h.questions.List()))
			return
		}
	}

	middleware.ErrorResponse(w, http.StatusNotFound, "Entry not found")
}

// DeleteRecord handles DELETE /records/{id}. Deleting an id that is
// already gone still reports success.
func (h *RecordHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.records.Remove(id); err != nil {
		respondError(w, err)
		return
	}

	slog.Info("record deleted", "record_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Entry deleted successfully"})
}
