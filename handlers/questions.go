// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/ftc-scout/middleware"
	"github.com/danielhkuo/ftc-scout/models"
	"github.com/danielhkuo/ftc-scout/store"
)

type QuestionHandler struct {
	questions *store.QuestionStore
	session   *store.FormSession
}

func NewQuestionHandler(questions *store.QuestionStore, session *store.FormSession) *QuestionHandler {
	return &QuestionHandler{questions: questions, session: session}
}

// ListQuestions handles GET /questions (?grouped=1 for category groups)
func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions := h.questions.List()

	if r.URL.Query().Get("grouped") != "" {
		middleware.JSONResponse(w, http.StatusOK, models.GroupedQuestionsResponse{
			Groups: store.GroupByCategory(questions),
		})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionListResponse{Questions: questions})
}

// CreateQuestion handles POST /questions
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	question, err := h.questions.Add(store.QuestionDraft{
		Text:     req.Text,
		Type:     req.Type,
		Category: req.Category,
		Required: req.Required,
		Options:  req.Options,
		Min:      req.Min,
		Max:      req.Max,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	slog.Info("question added", "question_id", question.ID, "type", question.Type)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateQuestionResponse{
		Question: question,
		Message:  "Question added successfully",
	})
}

// UpdateQuestion handles PUT /questions/{id}
func (h *QuestionHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := questionID(w, r)
	if !ok {
		return
	}

	var req models.UpdateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	err := h.questions.Update(id, store.QuestionPatch{
		Text:     req.Text,
		Category: req.Category,
		Required: req.Required,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Question updated successfully"})
}

// DeleteQuestion handles DELETE /questions/{id}
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := questionID(w, r)
	if !ok {
		return
	}

	if err := h.questions.Remove(id); err != nil {
		respondError(w, err)
		return
	}

	slog.Info("question deleted", "question_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Question deleted successfully"})
}

// ResetQuestions handles POST /questions/reset
func (h *QuestionHandler) ResetQuestions(w http.ResponseWriter, r *http.Request) {
	if err := h.questions.ResetToDefault(); err != nil {
		respondError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Questions reset to default"})
}

// BeginEdit handles POST /questions/{id}/edit
func (h *QuestionHandler) BeginEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := questionID(w, r)
	if !ok {
		return
	}

	question, err := h.session.BeginEdit(id)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.EditSessionResponse{Question: question})
}

// CommitEdit handles PUT /questions/edit
func (h *QuestionHandler) CommitEdit(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	err := h.session.CommitEdit(store.QuestionPatch{
		Text:     req.Text,
		Category: req.Category,
		Required: req.Required,
	})
	if err == store.ErrNoActiveEdit {
		middleware.ErrorResponse(w, http.StatusConflict, "No question is being edited")
		return
	}
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Question updated successfully"})
}

// CancelEdit handles DELETE /questions/edit
func (h *QuestionHandler) CancelEdit(w http.ResponseWriter, r *http.Request) {
	h.session.CancelEdit()
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Edit cancelled"})
}

func questionID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid question id")
		return 0, false
	}
	return id, true
}
