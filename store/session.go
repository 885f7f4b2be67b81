// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"strconv"

	"github.com/danielhkuo/ftc-scout/models"
)

// ErrNoActiveEdit is returned by CommitEdit when no question is open for
// editing.
var ErrNoActiveEdit = errors.New("no question is being edited")

// FormSession tracks the single question currently open for editing.
// It is transient: nothing here is persisted.
type FormSession struct {
	questions *QuestionStore
	editing   *models.Question
}

func NewFormSession(questions *QuestionStore) *FormSession {
	return &FormSession{questions: questions}
}

// BeginEdit opens the question with the given id for editing, silently
// replacing any edit already in progress.
func (s *FormSession) BeginEdit(id int64) (models.Question, error) {
	for _, q := range s.questions.List() {
		if q.ID == id {
			captured := q
			s.editing = &captured
			return q, nil
		}
	}
	return models.Question{}, &models.NotFoundError{Kind: "question", ID: strconv.FormatInt(id, 10)}
}

// Editing returns the question under edit, if any.
func (s *FormSession) Editing() (models.Question, bool) {
	if s.editing == nil {
		return models.Question{}, false
	}
	return *s.editing, true
}

// CommitEdit applies the patch to the question under edit. The session
// clears only on success; after a validation failure the user can fix the
// input and resubmit, or cancel.
func (s *FormSession) CommitEdit(patch QuestionPatch) error {
	if s.editing == nil {
		return ErrNoActiveEdit
	}
	if err := s.questions.Update(s.editing.ID, patch); err != nil {
		return err
	}
	s.editing = nil
	return nil
}

// CancelEdit clears the session without touching the store.
func (s *FormSession) CancelEdit() {
	s.editing = nil
}
