// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"strconv"
	"time"
)

// Question type constants
const (
	TypeText     = "text"
	TypeNumber   = "number"
	TypeSelect   = "select"
	TypeRange    = "range"
	TypeCheckbox = "checkbox"
)

// Well-known question roles. Team filtering and summary counts resolve
// questions by role, never by position in the schema.
const (
	RoleTeamNumber      = "team_number"
	RoleTeamAffiliation = "team_affiliation"
)

// CategoryGeneral is the grouping label for questions without a category.
const CategoryGeneral = "general"

// Domain types

type Question struct {
	ID       int64    `json:"id"`
	Text     string   `json:"text"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Category string   `json:"category"`
	Role     string   `json:"role,omitempty"`
	Options  []string `json:"options,omitempty"` // select only
	Min      int      `json:"min,omitempty"`     // range only
	Max      int      `json:"max,omitempty"`     // range only
}

// Answer kinds
const (
	AnswerText    = "text"
	AnswerNumber  = "number"
	AnswerChecked = "checked"
)

// Answer is a tagged variant resolved against the question's declared type
// at submission time. Persisting the tag keeps orphaned answers (whose
// question was later deleted) interpretable.
type Answer struct {
	Kind    string  `json:"kind"`
	Text    string  `json:"text,omitempty"`
	Number  float64 `json:"number,omitempty"`
	Checked bool    `json:"checked,omitempty"`
}

// IsBlank reports whether the answer counts as "not answered".
// A checked-kind false and a number-kind zero are real answers.
func (a Answer) IsBlank() bool {
	switch a.Kind {
	case AnswerNumber, AnswerChecked:
		return false
	default:
		return a.Text == ""
	}
}

// Raw returns the answer's raw string form, used for display, export,
// filtering, and distinctness.
func (a Answer) Raw() string {
	switch a.Kind {
	case AnswerNumber:
		return strconv.FormatFloat(a.Number, 'f', -1, 64)
	case AnswerChecked:
		return strconv.FormatBool(a.Checked)
	default:
		return a.Text
	}
}

type Record struct {
	ID        string           `json:"id"`
	Timestamp time.Time        `json:"timestamp"`
	Answers   map[int64]Answer `json:"answers"`
}

type CategoryGroup struct {
	Category  string     `json:"category"`
	Questions []Question `json:"questions"`
}

// QuestionByRole returns the first question tagged with the given role.
func QuestionByRole(questions []Question, role string) (Question, bool) {
	for _, q := range questions {
		if q.Role == role {
			return q, true
		}
	}
	return Question{}, false
}

// DefaultQuestions returns a fresh copy of the built-in schema.
func DefaultQuestions() []Question {
	return []Question{
		{ID: 1, Text: "Team Number", Type: TypeNumber, Required: true, Category: "basic", Role: RoleTeamNumber},
		{ID: 2, Text: "Team Name", Type: TypeText, Required: true, Category: "basic", Role: RoleTeamAffiliation},
		{ID: 3, Text: "Alliance with this team?", Type: TypeSelect, Options: []string{"Yes", "No", "I don't play with/against this team"}, Required: true, Category: "basic"},
		{ID: 4, Text: "How many points can be scored in Auto?", Type: TypeNumber, Required: false, Category: "Auto"},
		{ID: 5, Text: "How many points can be scored in Teleop?", Type: TypeNumber, Required: false, Category: "Teleop"},
		{ID: 6, Text: "Endgame Performance", Type: TypeSelect, Options: []string{"None", "Parked", "Hanging"}, Required: false, Category: "endgame"},
		{ID: 7, Text: "Additional Notes", Type: TypeText, Required: false, Category: "notes"},
	}
}

// Request types

type CreateQuestionRequest struct {
	Text     string   `json:"text"`
	Type     string   `json:"type"`
	Category string   `json:"category"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
	Min      *int     `json:"min,omitempty"`
	Max      *int     `json:"max,omitempty"`
}

type UpdateQuestionRequest struct {
	Text     string `json:"text"`
	Category string `json:"category"`
	Required bool   `json:"required"`
}

type SubmitRecordRequest struct {
	Answers map[int64]any `json:"answers"`
}

// Response types

type QuestionListResponse struct {
	Questions []Question `json:"questions"`
}

type GroupedQuestionsResponse struct {
	Groups []CategoryGroup `json:"groups"`
}

type CreateQuestionResponse struct {
	Question Question `json:"question"`
	Message  string   `json:"message"`
}

type EditSessionResponse struct {
	Question Question `json:"question"`
}

type RecordListResponse struct {
	Records []Record `json:"records"`
}

type SubmitRecordResponse struct {
	RecordID string `json:"record_id"`
	Message  string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// View-model types produced by the views package

type Summary struct {
	TotalEntries    int `json:"total_entries"`
	TeamsScouted    int `json:"teams_scouted"`
	MatchesRecorded int `json:"matches_recorded"`
}

type TableColumn struct {
	QuestionID int64  `json:"question_id,omitempty"`
	Title      string `json:"title"`
	ShortTitle string `json:"short_title"`
}

type TableRow struct {
	RecordID string   `json:"record_id"`
	Date     string   `json:"date"`
	Time     string   `json:"time"`
	Cells    []string `json:"cells"`
}

type TableResponse struct {
	Columns []TableColumn `json:"columns"`
	Rows    []TableRow    `json:"rows"`
}

type DetailField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type RecordDetail struct {
	RecordID  string        `json:"record_id"`
	Timestamp string        `json:"timestamp"`
	Fields    []DetailField `json:"fields"`
}

type FormField struct {
	QuestionID int64    `json:"question_id"`
	Label      string   `json:"label"`
	Kind       string   `json:"kind"`
	Required   bool     `json:"required"`
	Options    []string `json:"options,omitempty"`
	Min        int      `json:"min,omitempty"`
	Max        int      `json:"max,omitempty"`
	Initial    string   `json:"initial,omitempty"`
}

type FormSection struct {
	Category string      `json:"category"`
	Fields   []FormField `json:"fields"`
}

type FormResponse struct {
	Sections []FormSection `json:"sections"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
