// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store owns the two persisted lists and the transient edit session.

# Question Schema Store

QuestionStore provides the ordered question schema with a default-schema
fallback:

	questions := store.NewQuestionStore(docs, notifier)
	list := questions.List() // 7 built-in questions until first write

Mutations are Add (full type-specific validation, fresh never-reused id),
Update (text/category/required only), Remove (no cascade - record answers
for the deleted question become orphans), and ResetToDefault.

# Response Store

RecordStore provides the ordered record list:

	records := store.NewRecordStore(docs, questions, notifier)
	record, err := records.Add(map[int64]any{1: "254", 2: "Robo Raiders"})

Add resolves each submitted value against the question's declared type
into a tagged Answer, rejects submissions missing required answers with a
ValidationError naming the offending questions, and stamps the record
with a UUIDv7 id and UTC timestamp. Remove is idempotent.

# Consistency

Every operation reads the persisted document fresh, mutates a copy, and
writes the whole list back in one blob. A failed write therefore leaves
both the durable and the observable state at the prior list. There is no
in-memory cache to roll back.

# Filtering and Grouping

FilterByTeam matches records by case-insensitive substring against the
team-number-role answer. GroupByCategory splits a schema into ordered
category groups for form rendering.

# Form Session

FormSession holds at most one question open for editing, with an explicit
BeginEdit / CommitEdit / CancelEdit lifecycle. Beginning a second edit
silently replaces the first without saving it.
*/
package store
