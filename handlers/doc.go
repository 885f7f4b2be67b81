// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the FTC Scout API.

# Handler Types

Each handler is a struct with store dependencies, created via constructor
functions:

  - QuestionHandler: schema CRUD, reset, and the form-session lifecycle
  - RecordHandler: record submission, listing, detail, deletion
  - ViewHandler: summary, table, form specs, CSV export

The handlers stay thin: parsing and status mapping here, all domain rules
in the store and views packages.

# Question Management

	GET    /questions            → ListQuestions (?grouped=1)
	POST   /questions            → CreateQuestion
	PUT    /questions/{id}       → UpdateQuestion
	DELETE /questions/{id}       → DeleteQuestion
	POST   /questions/reset      → ResetQuestions

The edit session mirrors the UI's single edit modal:

	POST   /questions/{id}/edit  → BeginEdit
	PUT    /questions/edit       → CommitEdit (409 when none active)
	DELETE /questions/edit       → CancelEdit

# Records and Views

	GET    /records         → ListRecords (?team= substring filter)
	POST   /records         → SubmitRecord
	GET    /records/{id}    → GetRecord (detail view)
	DELETE /records/{id}    → DeleteRecord (idempotent)
	GET    /summary         → GetSummary
	GET    /table           → GetTable
	GET    /form            → GetForm
	GET    /export/csv      → ExportCSV (400 when there is nothing to export)

# Error Mapping

respondError translates the domain taxonomy: ValidationError → 400,
NotFoundError → 404, StorageError → 500.
*/
package handlers
