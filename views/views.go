// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import "github.com/danielhkuo/ftc-scout/models"

// Answered returns the sub-sequence of questions with at least one
// non-blank answer across the records, in schema order. Table and CSV
// views build their columns from this so display surface grows with
// answered breadth, not schema size.
func Answered(questions []models.Question, records []models.Record) []models.Question {
	answered := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		for _, r := range records {
			if answer, ok := r.Answers[q.ID]; ok && !answer.IsBlank() {
				answered = append(answered, q)
				break
			}
		}
	}
	return answered
}

// Summarize computes the headline counts for a set of records. Teams and
// matches are counted by distinct raw value of the role-tagged questions;
// without a tagged question the respective count is zero.
func Summarize(questions []models.Question, records []models.Record) models.Summary {
	return models.Summary{
		TotalEntries:    len(records),
		TeamsScouted:    distinctByRole(questions, records, models.RoleTeamNumber),
		MatchesRecorded: distinctByRole(questions, records, models.RoleTeamAffiliation),
	}
}

func distinctByRole(questions []models.Question, records []models.Record, role string) int {
	q, ok := models.QuestionByRole(questions, role)
	if !ok {
		return 0
	}

	seen := make(map[string]struct{})
	for _, r := range records {
		if answer, ok := r.Answers[q.ID]; ok && !answer.IsBlank() {
			seen[answer.Raw()] = struct{}{}
		}
	}
	return len(seen)
}
