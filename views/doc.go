// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package views holds the pure projections over (schema, records) pairs.

Nothing here touches storage; every function maps inputs to view-model
values and can be called with any combination of schema and records,
including mismatched ones - answers for deleted questions are simply
never selected, and questions without answers are suppressed.

# Projections

  - Answered: questions with at least one non-blank answer
  - Summarize: total entries, distinct teams, distinct matches
  - TableColumns / TableRows: review table with Yes/No and N/A formatting
  - Detail: a single record as (label, value) pairs
  - CSV / ExportFilename: the one-way export artifact
  - FormSections: renderable field specs grouped by category

# Formatting Rules

Checkbox answers display as "Yes"/"No". In the table and detail views a
blank or missing answer shows "N/A"; in CSV it becomes an empty cell.
Numbers use their minimal decimal form. Table timestamps split into
locale date and time; the detail view shows both together; CSV keeps
RFC 3339.
*/
package views
