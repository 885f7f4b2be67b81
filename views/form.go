// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"strconv"

	"github.com/danielhkuo/ftc-scout/models"
)

// FormSections turns category groups into renderable field specs. Range
// fields start at their minimum; everything else starts empty.
func FormSections(groups []models.CategoryGroup) []models.FormSection {
	sections := make([]models.FormSection, 0, len(groups))
	for _, group := range groups {
		section := models.FormSection{
			Category: group.Category,
			Fields:   make([]models.FormField, 0, len(group.Questions)),
		}
		for _, q := range group.Questions {
			field := models.FormField{
				QuestionID: q.ID,
				Label:      q.Text,
				Kind:       q.Type,
				Required:   q.Required,
				Options:    q.Options,
			}
			if q.Type == models.TypeRange {
				field.Min = q.Min
				field.Max = q.Max
				field.Initial = strconv.Itoa(q.Min)
			}
			section.Fields = append(section.Fields, field)
		}
		sections = append(sections, section)
	}
	return sections
}
