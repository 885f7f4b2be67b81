// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/ftc-scout/models"
	"github.com/danielhkuo/ftc-scout/store"
	"github.com/danielhkuo/ftc-scout/testutil"
)

func setupQuestionHandler(t *testing.T) (*QuestionHandler, *store.QuestionStore) {
	t.Helper()
	_, questions, _ := testutil.SetupStores(t)
	return NewQuestionHandler(questions, store.NewFormSession(questions)), questions
}

func TestListQuestions(t *testing.T) {
	handler, _ := setupQuestionHandler(t)

	req := testutil.MakeRequest("GET", "/questions", nil)
	w := httptest.NewRecorder()
	handler.ListQuestions(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.QuestionListResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Questions) != 7 {
		t.Errorf("Expected 7 default questions, got %d", len(resp.Questions))
	}
}

func TestListQuestionsGrouped(t *testing.T) {
	handler, _ := setupQuestionHandler(t)

	req := testutil.MakeRequest("GET", "/questions?grouped=1", nil)
	w := httptest.NewRecorder()
	handler.ListQuestions(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.GroupedQuestionsResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Groups) != 5 {
		t.Fatalf("Expected 5 category groups, got %d", len(resp.Groups))
	}
	if resp.Groups[0].Category != "basic" {
		t.Errorf("Expected first-seen category 'basic', got %q", resp.Groups[0].Category)
	}
}

func TestCreateQuestion(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		wantStatus int
	}{
		{
			name:       "valid",
			body:       models.CreateQuestionRequest{Text: "Drive train type", Type: "text", Category: "basic"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing text",
			body:       models.CreateQuestionRequest{Type: "text"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "select without options",
			body:       models.CreateQuestionRequest{Text: "Intake style", Type: "select"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid JSON",
			body:       nil,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := setupQuestionHandler(t)

			req := testutil.MakeRequest("POST", "/questions", tt.body)
			w := httptest.NewRecorder()
			handler.CreateQuestion(w, req)

			testutil.AssertStatus(t, w, tt.wantStatus)

			if tt.wantStatus == http.StatusCreated {
				var resp models.CreateQuestionResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Question.ID != 8 {
					t.Errorf("Expected id 8, got %d", resp.Question.ID)
				}
			}
		})
	}
}

func TestUpdateQuestionEndpoint(t *testing.T) {
	handler, questions := setupQuestionHandler(t)

	body := models.UpdateQuestionRequest{Text: "Strategy notes", Category: "notes", Required: true}
	req := testutil.MakeRequest("PUT", "/questions/7", body)
	req.SetPathValue("id", "7")
	w := httptest.NewRecorder()
	handler.UpdateQuestion(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if questions.List()[6].Text != "Strategy notes" {
		t.Error("Update not applied")
	}
}

func TestUpdateQuestionNotFound(t *testing.T) {
	handler, _ := setupQuestionHandler(t)

	req := testutil.MakeRequest("PUT", "/questions/99", models.UpdateQuestionRequest{Text: "Ghost"})
	req.SetPathValue("id", "99")
	w := httptest.NewRecorder()
	handler.UpdateQuestion(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestUpdateQuestionBadID(t *testing.T) {
	handler, _ := setupQuestionHandler(t)

	req := testutil.MakeRequest("PUT", "/questions/abc", models.UpdateQuestionRequest{Text: "X"})
	req.SetPathValue("id", "abc")
	w := httptest.NewRecorder()
	handler.UpdateQuestion(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestDeleteQuestionEndpoint(t *testing.T) {
	handler, questions := setupQuestionHandler(t)

	req := testutil.MakeRequest("DELETE", "/questions/7", nil)
	req.SetPathValue("id", "7")
	w := httptest.NewRecorder()
	handler.DeleteQuestion(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if got := len(questions.List()); got != 6 {
		t.Errorf("Expected 6 questions, got %d", got)
	}
}

func TestResetQuestionsEndpoint(t *testing.T) {
	handler, questions := setupQuestionHandler(t)

	req := testutil.MakeRequest("DELETE", "/questions/7", nil)
	req.SetPathValue("id", "7")
	handler.DeleteQuestion(httptest.NewRecorder(), req)

	w := httptest.NewRecorder()
	handler.ResetQuestions(w, testutil.MakeRequest("POST", "/questions/reset", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if got := len(questions.List()); got != 7 {
		t.Errorf("Expected 7 questions after reset, got %d", got)
	}
}

func TestEditSessionEndpoints(t *testing.T) {
	handler, questions := setupQuestionHandler(t)

	// Begin
	req := testutil.MakeRequest("POST", "/questions/7/edit", nil)
	req.SetPathValue("id", "7")
	w := httptest.NewRecorder()
	handler.BeginEdit(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var began models.EditSessionResponse
	testutil.AssertJSON(t, w, &began)
	if began.Question.Text != "Additional Notes" {
		t.Errorf("Wrong question under edit: %q", began.Question.Text)
	}

	// Commit
	body := models.UpdateQuestionRequest{Text: "Strategy notes", Category: "notes"}
	w = httptest.NewRecorder()
	handler.CommitEdit(w, testutil.MakeRequest("PUT", "/questions/edit", body))
	testutil.AssertStatus(t, w, http.StatusOK)

	if questions.List()[6].Text != "Strategy notes" {
		t.Error("Commit not applied")
	}

	// Second commit has no session left
	w = httptest.NewRecorder()
	handler.CommitEdit(w, testutil.MakeRequest("PUT", "/questions/edit", body))
	testutil.AssertStatus(t, w, http.StatusConflict)
}

func TestCancelEditEndpoint(t *testing.T) {
	handler, _ := setupQuestionHandler(t)

	req := testutil.MakeRequest("POST", "/questions/1/edit", nil)
	req.SetPathValue("id", "1")
	handler.BeginEdit(httptest.NewRecorder(), req)

	w := httptest.NewRecorder()
	handler.CancelEdit(w, testutil.MakeRequest("DELETE", "/questions/edit", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	// Commit after cancel must conflict
	w = httptest.NewRecorder()
	handler.CommitEdit(w, testutil.MakeRequest("PUT", "/questions/edit", models.UpdateQuestionRequest{Text: "X"}))
	testutil.AssertStatus(t, w, http.StatusConflict)
}
