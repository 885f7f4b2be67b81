// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, request, response, and view-model types.

# Domain Types

  - Question: one schema entry describing a field to collect
  - Answer: tagged variant (text | number | checked) resolved against the
    question's declared type at submission time
  - Record: one immutable submitted entry (UUIDv7 id, timestamp, answers)
  - CategoryGroup: an ordered slice of questions sharing a category

# Question Types

	TypeText, TypeNumber, TypeSelect, TypeRange, TypeCheckbox

Select questions carry Options; range questions carry Min/Max (Min < Max).
Both are immutable after creation; edits are restricted to text, category,
and the required flag.

# Roles

The two leading default questions are tagged with roles so that team
filtering and summary counts survive schema customization:

	RoleTeamNumber      (default "Team Number" question)
	RoleTeamAffiliation (default "Team Name" question)

Resolve them with QuestionByRole; a schema without a role degrades the
dependent features instead of breaking them.

# Default Schema

DefaultQuestions returns the built-in 7-question schema (ids 1–7) spanning
categories basic, Auto, Teleop, endgame, and notes. It is the fallback
whenever the persisted schema is absent, empty, or unreadable.

# Error Taxonomy

  - ValidationError: input fails a documented constraint; no mutation
  - StorageError: persistence read/write failure; durable state unchanged
  - NotFoundError: operation targets an absent id

All are locally recoverable. Match with errors.As.

# Request/Response Types

Wire types for the HTTP surface follow the handler they serve:
CreateQuestionRequest, UpdateQuestionRequest, SubmitRecordRequest, and the
corresponding response types. View-model types (Summary, TableColumn,
TableRow, RecordDetail, FormSection) are produced by the views package.
*/
package models
