// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/ftc-scout/db"
	"github.com/danielhkuo/ftc-scout/models"
	"github.com/danielhkuo/ftc-scout/notify"
)

// RecordStore owns the ordered list of submitted records. Records are
// immutable after creation and never rewritten when the schema changes.
type RecordStore struct {
	docs      *db.Store
	questions *QuestionStore
	notifier  notify.Notifier
}

func NewRecordStore(docs *db.Store, questions *QuestionStore, notifier notify.Notifier) *RecordStore {
	return &RecordStore{docs: docs, questions: questions, notifier: notifier}
}

// List returns every stored record, oldest first. An absent or unreadable
// document yields an empty list.
func (s *RecordStore) List() []models.Record {
	raw, ok := s.docs.Load(db.KeyData)
	if !ok {
		return []models.Record{}
	}

	var records []models.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		slog.Warn("stored records unreadable, treating as empty", "error", err)
		return []models.Record{}
	}
	return records
}

// Add resolves the submitted answers against the current schema, checks
// that every required question has a non-blank answer, and appends a new
// record. Nothing is written when validation fails.
func (s *RecordStore) Add(answers map[int64]any) (models.Record, error) {
	questions := s.questions.List()

	resolved := make(map[int64]models.Answer, len(answers))
	var missing []string
	for _, q := range questions {
		if raw, present := answers[q.ID]; present {
			answer, ok, err := resolveAnswer(q, raw)
			if err != nil {
				return models.Record{}, err
			}
			if ok {
				resolved[q.ID] = answer
			}
		}
		if q.Required {
			if answer, ok := resolved[q.ID]; !ok || answer.IsBlank() {
				missing = append(missing, q.Text)
			}
		}
	}

	if len(missing) > 0 {
		return models.Record{}, &models.ValidationError{
			Message: "Please fill in required fields: " + strings.Join(missing, ", "),
			Fields:  missing,
		}
	}

	record := models.Record{
		ID:        newRecordID(),
		Timestamp: time.Now().UTC(),
		Answers:   resolved,
	}

	records := append(s.List(), record)
	if err := s.save(records); err != nil {
		s.notifier.Notify(notify.Error, "Failed to save scouting data. Please try again.")
		return models.Record{}, err
	}

	s.notifier.Notify(notify.Success, "Scouting data saved")
	return record, nil
}

// Remove deletes the record with the given id. Removing an absent id is
// a silent no-op, so the operation is idempotent.
func (s *RecordStore) Remove(id string) error {
	records := s.List()
	remaining := records[:0:0]
	for _, r := range records {
		if r.ID != id {
			remaining = append(remaining, r)
		}
	}
	if len(remaining) == len(records) {
		return nil
	}

	if err := s.save(remaining); err != nil {
		s.notifier.Notify(notify.Error, "Failed to delete entry")
		return err
	}
	s.notifier.Notify(notify.Success, "Entry deleted successfully")
	return nil
}

func (s *RecordStore) save(records []models.Record) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return &models.StorageError{Op: "encode records", Err: err}
	}
	return s.docs.Save(db.KeyData, raw)
}

// resolveAnswer coerces a submitted value into the tagged form declared
// by the question's type. Blank inputs report ok=false and are not
// stored - a missing key and an empty answer are indistinguishable to
// every projection anyway.
func resolveAnswer(q models.Question, raw any) (models.Answer, bool, error) {
	switch q.Type {
	case models.TypeCheckbox:
		checked, ok := raw.(bool)
		if !ok {
			return models.Answer{}, false, &models.ValidationError{Message: q.Text + " expects true or false", Fields: []string{q.Text}}
		}
		return models.Answer{Kind: models.AnswerChecked, Checked: checked}, true, nil

	case models.TypeNumber, models.TypeRange:
		switch v := raw.(type) {
		case float64:
			return models.Answer{Kind: models.AnswerNumber, Number: v}, true, nil
		case string:
			trimmed := strings.TrimSpace(v)
			if trimmed == "" {
				return models.Answer{}, false, nil
			}
			n, err := strconv.ParseFloat(trimmed, 64)
			if err != nil {
				return models.Answer{}, false, &models.ValidationError{Message: q.Text + " expects a number", Fields: []string{q.Text}}
			}
			return models.Answer{Kind: models.AnswerNumber, Number: n}, true, nil
		default:
			return models.Answer{}, false, &models.ValidationError{Message: q.Text + " expects a number", Fields: []string{q.Text}}
		}

	default: // text, select
		text, ok := raw.(string)
		if !ok {
			return models.Answer{}, false, &models.ValidationError{Message: q.Text + " expects text", Fields: []string{q.Text}}
		}
		if text == "" {
			return models.Answer{}, false, nil
		}
		return models.Answer{Kind: models.AnswerText, Text: text}, true, nil
	}
}

// newRecordID returns a UUIDv7: ordered by creation time, with random
// bits breaking ties within the same millisecond.
func newRecordID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// FilterByTeam returns the records whose team-number answer contains the
// filter as a case-insensitive substring. An empty filter means no
// filtering. With a filter set, records without a team answer are
// excluded - as is everything, when no question carries the role.
func FilterByTeam(questions []models.Question, records []models.Record, filter string) []models.Record {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		return records
	}

	team, ok := models.QuestionByRole(questions, models.RoleTeamNumber)
	if !ok {
		return []models.Record{}
	}

	matched := []models.Record{}
	for _, r := range records {
		answer, ok := r.Answers[team.ID]
		if !ok || answer.IsBlank() {
			continue
		}
		if strings.Contains(strings.ToLower(answer.Raw()), filter) {
			matched = append(matched, r)
		}
	}
	return matched
}
