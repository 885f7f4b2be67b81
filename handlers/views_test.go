// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/ftc-scout/models"
	"github.com/danielhkuo/ftc-scout/store"
	"github.com/danielhkuo/ftc-scout/testutil"
)

func setupViewHandler(t *testing.T) (*ViewHandler, *store.QuestionStore, *store.RecordStore) {
	t.Helper()
	_, questions, records := testutil.SetupStores(t)
	return NewViewHandler(questions, records), questions, records
}

func TestGetSummaryEndpoint(t *testing.T) {
	handler, _, records := setupViewHandler(t)

	testutil.SubmitTestRecord(t, records, map[int64]any{1: "254", 2: "A", 3: "Yes"})
	testutil.SubmitTestRecord(t, records, map[int64]any{1: "254", 2: "B", 3: "Yes"})
	testutil.SubmitTestRecord(t, records, map[int64]any{1: "118", 2: "A", 3: "No"})

	w := httptest.NewRecorder()
	handler.GetSummary(w, testutil.MakeRequest("GET", "/summary", nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var summary models.Summary
	testutil.AssertJSON(t, w, &summary)
	if summary.TotalEntries != 3 || summary.TeamsScouted != 2 || summary.MatchesRecorded != 2 {
		t.Errorf("Summary = %+v", summary)
	}
}

func TestGetSummaryFiltered(t *testing.T) {
	handler, _, records := setupViewHandler(t)

	testutil.SubmitTestRecord(t, records, map[int64]any{1: "254", 2: "A", 3: "Yes"})
	testutil.SubmitTestRecord(t, records, map[int64]any{1: "118", 2: "B", 3: "No"})

	w := httptest.NewRecorder()
	handler.GetSummary(w, testutil.MakeRequest("GET", "/summary?team=254", nil))

	var summary models.Summary
	testutil.AssertJSON(t, w, &summary)
	if summary.TotalEntries != 1 || summary.TeamsScouted != 1 {
		t.Errorf("Filtered summary = %+v", summary)
	}
}

func TestGetTableEndpoint(t *testing.T) {
	handler, _, records := setupViewHandler(t)

	testutil.SubmitTestRecord(t, records, testutil.RequiredDefaults())

	w := httptest.NewRecorder()
	handler.GetTable(w, testutil.MakeRequest("GET", "/table", nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var table models.TableResponse
	testutil.AssertJSON(t, w, &table)

	// Timestamp + the three answered defaults; unanswered questions suppressed
	if len(table.Columns) != 4 {
		t.Fatalf("Expected 4 columns, got %d: %+v", len(table.Columns), table.Columns)
	}
	for _, col := range table.Columns {
		if col.Title == "Endgame Performance" {
			t.Error("Unanswered question leaked into columns")
		}
	}
	if len(table.Rows) != 1 || len(table.Rows[0].Cells) != 3 {
		t.Errorf("Rows = %+v", table.Rows)
	}
}

func TestGetFormEndpoint(t *testing.T) {
	handler, _, _ := setupViewHandler(t)

	w := httptest.NewRecorder()
	handler.GetForm(w, testutil.MakeRequest("GET", "/form", nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var form models.FormResponse
	testutil.AssertJSON(t, w, &form)
	if len(form.Sections) != 5 {
		t.Fatalf("Expected 5 sections, got %d", len(form.Sections))
	}
	if form.Sections[0].Category != "basic" || len(form.Sections[0].Fields) != 3 {
		t.Errorf("First section = %+v", form.Sections[0])
	}
}

func TestExportCSVEndpoint(t *testing.T) {
	handler, _, records := setupViewHandler(t)

	testutil.SubmitTestRecord(t, records, map[int64]any{1: "254", 2: "Raiders, The", 3: "Yes"})

	w := httptest.NewRecorder()
	handler.ExportCSV(w, testutil.MakeRequest("GET", "/export/csv", nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	if ct := w.Header().Get("Content-Type"); ct != "text/csv; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	disposition := w.Header().Get("Content-Disposition")
	if !strings.HasPrefix(disposition, `attachment; filename="ftc-scouting-data-`) || !strings.HasSuffix(disposition, `.csv"`) {
		t.Errorf("Content-Disposition = %q", disposition)
	}

	body := w.Body.String()
	if !strings.HasPrefix(body, `"Timestamp","Team Number","Team Name",`) {
		t.Errorf("CSV header = %q", strings.SplitN(body, "\n", 2)[0])
	}
	if !strings.Contains(body, `"Raiders, The"`) {
		t.Error("Comma-containing answer must stay in one quoted cell")
	}
}

func TestExportCSVNoData(t *testing.T) {
	handler, _, _ := setupViewHandler(t)

	w := httptest.NewRecorder()
	handler.ExportCSV(w, testutil.MakeRequest("GET", "/export/csv", nil))

	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "No data to export" {
		t.Errorf("Message = %q", resp.Message)
	}
}
