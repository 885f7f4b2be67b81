// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/danielhkuo/ftc-scout/middleware"
	"github.com/danielhkuo/ftc-scout/models"
	"github.com/danielhkuo/ftc-scout/store"
	"github.com/danielhkuo/ftc-scout/views"
)

type ViewHandler struct {
	questions *store.QuestionStore
	records   *store.RecordStore
}

func NewViewHandler(questions *store.QuestionStore, records *store.RecordStore) *ViewHandler {
	return &ViewHandler{questions: questions, records: records}
}

// GetSummary handles GET /summary (?team= narrows the counted records)
func (h *ViewHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	questions := h.questions.List()
	records := store.FilterByTeam(questions, h.records.List(), r.URL.Query().Get("team"))

	middleware.JSONResponse(w, http.StatusOK, views.Summarize(questions, records))
}

// GetTable handles GET /table (?team= narrows the rows)
func (h *ViewHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	questions := h.questions.List()
	records := store.FilterByTeam(questions, h.records.List(), r.URL.Query().Get("team"))

	answered := views.Answered(questions, records)
	middleware.JSONResponse(w, http.StatusOK, models.TableResponse{
		Columns: views.TableColumns(answered),
		Rows:    views.TableRows(records, answered),
	})
}

// GetForm handles GET /form, returning grouped field specs for rendering
// the submission form.
func (h *ViewHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	groups := store.GroupByCategory(h.questions.List())
	middleware.JSONResponse(w, http.StatusOK, models.FormResponse{
		Sections: views.FormSections(groups),
	})
}

// ExportCSV handles GET /export/csv. The export always covers every
// record, unfiltered.
func (h *ViewHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	records := h.records.List()
	if len(records) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "No data to export")
		return
	}

	answered := views.Answered(h.questions.List(), records)
	content := views.CSV(records, answered)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+views.ExportFilename(time.Now())+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(content))
}
