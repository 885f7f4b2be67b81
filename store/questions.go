// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"github.com/danielhkuo/ftc-scout/db"
	"github.com/danielhkuo/ftc-scout/models"
	"github.com/danielhkuo/ftc-scout/notify"
)

// QuestionStore owns the ordered question schema. Every operation reads
// the persisted document fresh and writes the full new list back, so the
// observable state always matches what was durably stored.
type QuestionStore struct {
	docs     *db.Store
	notifier notify.Notifier
}

func NewQuestionStore(docs *db.Store, notifier notify.Notifier) *QuestionStore {
	return &QuestionStore{docs: docs, notifier: notifier}
}

// List returns the current schema, falling back to the built-in default
// when the persisted document is absent, unreadable, or empty. The
// default is not persisted here - only an explicit write does that.
func (s *QuestionStore) List() []models.Question {
	raw, ok := s.docs.Load(db.KeyQuestions)
	if !ok {
		return models.DefaultQuestions()
	}

	var questions []models.Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		slog.Warn("stored questions unreadable, using defaults", "error", err)
		return models.DefaultQuestions()
	}
	if len(questions) == 0 {
		return models.DefaultQuestions()
	}
	return questions
}

// QuestionDraft is the input to Add. Type-specific fields are validated
// against the declared type; min/max default to 1/10 when absent.
type QuestionDraft struct {
	Text     string
	Type     string
	Category string
	Required bool
	Options  []string
	Min      *int
	Max      *int
}

// Add validates the draft, assigns a fresh id, appends, and persists.
// On any validation or storage failure the schema is left untouched.
func (s *QuestionStore) Add(draft QuestionDraft) (models.Question, error) {
	text := strings.TrimSpace(draft.Text)
	if text == "" {
		return models.Question{}, &models.ValidationError{Message: "Question text is required"}
	}

	question := models.Question{
		Text:     text,
		Type:     draft.Type,
		Required: draft.Required,
		Category: draft.Category,
	}
	if question.Category == "" {
		question.Category = models.CategoryGeneral
	}

	switch draft.Type {
	case models.TypeText, models.TypeNumber, models.TypeCheckbox:

	case models.TypeSelect:
		options := make([]string, 0, len(draft.Options))
		for _, opt := range draft.Options {
			if opt = strings.TrimSpace(opt); opt != "" {
				options = append(options, opt)
			}
		}
		if len(options) == 0 {
			return models.Question{}, &models.ValidationError{Message: "Options are required for dropdown questions"}
		}
		question.Options = options

	case models.TypeRange:
		min, max := 1, 10
		if draft.Min != nil {
			min = *draft.Min
		}
		if draft.Max != nil {
			max = *draft.Max
		}
		if min >= max {
			return models.Question{}, &models.ValidationError{Message: "Max value must be greater than min value"}
		}
		question.Min, question.Max = min, max

	default:
		return models.Question{}, &models.ValidationError{Message: "Unknown question type: " + draft.Type}
	}

	questions := s.List()
	question.ID = s.nextID(questions)
	questions = append(questions, question)

	if err := s.save(questions); err != nil {
		s.notifier.Notify(notify.Error, "Failed to add question")
		return models.Question{}, err
	}

	s.notifier.Notify(notify.Success, "Question added successfully")
	return question, nil
}

// QuestionPatch holds the only fields an edit may change. Type, options,
// and range bounds are immutable after creation.
type QuestionPatch struct {
	Text     string
	Category string
	Required bool
}

// Update applies the patch to the question with the given id.
func (s *QuestionStore) Update(id int64, patch QuestionPatch) error {
	text := strings.TrimSpace(patch.Text)
	if text == "" {
		return &models.ValidationError{Message: "Question text is required"}
	}

	category := patch.Category
	if category == "" {
		category = models.CategoryGeneral
	}

	questions := s.List()
	for i := range questions {
		if questions[i].ID != id {
			continue
		}
		questions[i].Text = text
		questions[i].Category = category
		questions[i].Required = patch.Required

		if err := s.save(questions); err != nil {
			s.notifier.Notify(notify.Error, "Failed to update question")
			return err
		}
		s.notifier.Notify(notify.Success, "Question updated successfully")
		return nil
	}

	return &models.NotFoundError{Kind: "question", ID: strconv.FormatInt(id, 10)}
}

// Remove deletes the question with the given id. Existing records keep
// their answers for it; projections treat those as orphaned. Removing an
// absent id is a silent no-op.
func (s *QuestionStore) Remove(id int64) error {
	questions := s.List()
	remaining := questions[:0:0]
	for _, q := range questions {
		if q.ID != id {
			remaining = append(remaining, q)
		}
	}
	if len(remaining) == len(questions) {
		return nil
	}

	if err := s.save(remaining); err != nil {
		s.notifier.Notify(notify.Error, "Failed to delete question")
		return err
	}
	s.notifier.Notify(notify.Success, "Question deleted successfully")
	return nil
}

// ResetToDefault overwrites the stored schema with the built-in default
// list. Records are untouched.
func (s *QuestionStore) ResetToDefault() error {
	if err := s.save(models.DefaultQuestions()); err != nil {
		s.notifier.Notify(notify.Error, "Failed to reset questions")
		return err
	}
	s.notifier.Notify(notify.Success, "Questions reset to default")
	return nil
}

func (s *QuestionStore) save(questions []models.Question) error {
	raw, err := json.Marshal(questions)
	if err != nil {
		return &models.StorageError{Op: "encode questions", Err: err}
	}
	return s.docs.Save(db.KeyQuestions, raw)
}

// nextID returns one past the highest id ever referenced. Record answer
// keys count too: a deleted question's id must not be reissued while any
// orphaned answer still points at it.
func (s *QuestionStore) nextID(questions []models.Question) int64 {
	var max int64
	for _, q := range questions {
		if q.ID > max {
			max = q.ID
		}
	}
	if raw, ok := s.docs.Load(db.KeyData); ok {
		var records []models.Record
		if err := json.Unmarshal(raw, &records); err == nil {
			for _, r := range records {
				for id := range r.Answers {
					if id > max {
						max = id
					}
				}
			}
		}
	}
	return max + 1
}

// GroupByCategory splits questions into ordered groups: first-seen
// category order, insertion order within each group. Questions without a
// category fall under "general".
func GroupByCategory(questions []models.Question) []models.CategoryGroup {
	var groups []models.CategoryGroup
	index := make(map[string]int)

	for _, q := range questions {
		category := q.Category
		if category == "" {
			category = models.CategoryGeneral
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, models.CategoryGroup{Category: category})
		}
		groups[i].Questions = append(groups[i].Questions, q)
	}

	return groups
}
