// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import "github.com/danielhkuo/ftc-scout/models"

// Display layouts. US-locale shapes, matching what scouts see in the
// exported review sheets.
const (
	dateLayout      = "1/2/2006"
	timeLayout      = "3:04:05 PM"
	timestampLayout = "1/2/2006, 3:04:05 PM"
)

const maxColumnTitle = 15

// TableColumns builds the table header: a timestamp column followed by
// one column per answered question. Long titles get a truncated short
// form for narrow rendering; the full title is always carried alongside.
func TableColumns(answered []models.Question) []models.TableColumn {
	columns := make([]models.TableColumn, 0, len(answered)+1)
	columns = append(columns, models.TableColumn{Title: "Timestamp", ShortTitle: "Timestamp"})
	for _, q := range answered {
		columns = append(columns, models.TableColumn{
			QuestionID: q.ID,
			Title:      q.Text,
			ShortTitle: truncate(q.Text, maxColumnTitle),
		})
	}
	return columns
}

// TableRows projects one row per record: split locale date and time, then
// one formatted cell per answered column. Checkbox answers render as
// Yes/No; blank or missing answers as N/A.
func TableRows(records []models.Record, answered []models.Question) []models.TableRow {
	rows := make([]models.TableRow, 0, len(records))
	for _, r := range records {
		row := models.TableRow{
			RecordID: r.ID,
			Date:     r.Timestamp.Format(dateLayout),
			Time:     r.Timestamp.Format(timeLayout),
			Cells:    make([]string, 0, len(answered)),
		}
		for _, q := range answered {
			answer, ok := r.Answers[q.ID]
			row.Cells = append(row.Cells, displayValue(answer, ok))
		}
		rows = append(rows, row)
	}
	return rows
}

// Detail projects a single record as ordered (label, value) pairs,
// restricted to the questions this record actually answered.
func Detail(record models.Record, questions []models.Question) models.RecordDetail {
	detail := models.RecordDetail{
		RecordID:  record.ID,
		Timestamp: record.Timestamp.Format(timestampLayout),
	}
	for _, q := range questions {
		answer, ok := record.Answers[q.ID]
		if !ok || answer.IsBlank() {
			continue
		}
		detail.Fields = append(detail.Fields, models.DetailField{
			Label: q.Text,
			Value: displayValue(answer, true),
		})
	}
	return detail
}

func displayValue(answer models.Answer, present bool) string {
	if !present || answer.IsBlank() {
		return "N/A"
	}
	if answer.Kind == models.AnswerChecked {
		if answer.Checked {
			return "Yes"
		}
		return "No"
	}
	return answer.Raw()
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
