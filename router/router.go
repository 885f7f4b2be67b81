// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/ftc-scout/cliparse"
	"github.com/danielhkuo/ftc-scout/db"
	"github.com/danielhkuo/ftc-scout/handlers"
	"github.com/danielhkuo/ftc-scout/middleware"
	"github.com/danielhkuo/ftc-scout/notify"
	"github.com/danielhkuo/ftc-scout/store"
)

func NewRouter(conn *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Wire stores over the document storage
	docs := db.New(conn)
	notifier := notify.Log{}
	questions := store.NewQuestionStore(docs, notifier)
	records := store.NewRecordStore(docs, questions, notifier)
	session := store.NewFormSession(questions)

	// Initialize handlers
	questionHandler := handlers.NewQuestionHandler(questions, session)
	recordHandler := handlers.NewRecordHandler(questions, records)
	viewHandler := handlers.NewViewHandler(questions, records)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Question schema management
	mux.HandleFunc("GET /questions", middleware.WithLogging(questionHandler.ListQuestions))
	mux.HandleFunc("POST /questions", middleware.WithLogging(questionHandler.CreateQuestion))
	mux.HandleFunc("PUT /questions/{id}", middleware.WithLogging(questionHandler.UpdateQuestion))
	mux.HandleFunc("DELETE /questions/{id}", middleware.WithLogging(questionHandler.DeleteQuestion))
	mux.HandleFunc("POST /questions/reset", middleware.WithLogging(questionHandler.ResetQuestions))

	// Edit session (the literal "edit" segment outranks {id})
	mux.HandleFunc("POST /questions/{id}/edit", middleware.WithLogging(questionHandler.BeginEdit))
	mux.HandleFunc("PUT /questions/edit", middleware.WithLogging(questionHandler.CommitEdit))
	mux.HandleFunc("DELETE /questions/edit", middleware.WithLogging(questionHandler.CancelEdit))

	// Record submission and review
	mux.HandleFunc("GET /records", middleware.WithLogging(recordHandler.ListRecords))
	mux.HandleFunc("POST /records", middleware.WithLogging(recordHandler.SubmitRecord))
	mux.HandleFunc("GET /records/{id}", middleware.WithLogging(recordHandler.GetRecord))
	mux.HandleFunc("DELETE /records/{id}", middleware.WithLogging(recordHandler.DeleteRecord))

	// Derived views
	mux.HandleFunc("GET /summary", middleware.WithLogging(viewHandler.GetSummary))
	mux.HandleFunc("GET /table", middleware.WithLogging(viewHandler.GetTable))
	mux.HandleFunc("GET /form", middleware.WithLogging(viewHandler.GetForm))
	mux.HandleFunc("GET /export/csv", middleware.WithLogging(viewHandler.ExportCSV))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ftc-scout API v1"))
	})

	return mux
}
