// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"strings"
	"time"

	"github.com/danielhkuo/ftc-scout/models"
)

// CSV renders records as comma-separated text: a header row of
// "Timestamp" plus the answered question texts, then one row per record.
// Every cell is double-quote wrapped (embedded quotes doubled), rows are
// \n-joined, timestamps are RFC 3339 UTC. Checkbox answers export as
// Yes/No; missing answers as empty cells. Export only - there is no
// import path.
func CSV(records []models.Record, answered []models.Question) string {
	rows := make([]string, 0, len(records)+1)

	header := make([]string, 0, len(answered)+1)
	header = append(header, quote("Timestamp"))
	for _, q := range answered {
		header = append(header, quote(q.Text))
	}
	rows = append(rows, strings.Join(header, ","))

	for _, r := range records {
		cells := make([]string, 0, len(answered)+1)
		cells = append(cells, quote(r.Timestamp.UTC().Format(time.RFC3339)))
		for _, q := range answered {
			answer, ok := r.Answers[q.ID]
			cells = append(cells, quote(exportValue(answer, ok)))
		}
		rows = append(rows, strings.Join(cells, ","))
	}

	return strings.Join(rows, "\n")
}

// ExportFilename returns the download name for a CSV produced now.
func ExportFilename(now time.Time) string {
	return "ftc-scouting-data-" + now.UTC().Format("2006-01-02") + ".csv"
}

func exportValue(answer models.Answer, present bool) string {
	if !present || answer.IsBlank() {
		return ""
	}
	if answer.Kind == models.AnswerChecked {
		if answer.Checked {
			return "Yes"
		}
		return "No"
	}
	return answer.Raw()
}

// quote wraps a cell in double quotes unconditionally, doubling any
// embedded quotes. encoding/csv quotes conditionally and joins with
// \r\n, neither of which matches the export contract.
func quote(cell string) string {
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}
