// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ftc-scout/middleware"
	"github.com/danielhkuo/ftc-scout/models"
)

// respondError maps the domain error taxonomy onto HTTP statuses:
// ValidationError 400, NotFoundError 404, StorageError and anything
// unexpected 500.
func respondError(w http.ResponseWriter, err error) {
	var validation *models.ValidationError
	var notFound *models.NotFoundError
	var storage *models.StorageError

	switch {
	case errors.As(err, &validation):
		middleware.ErrorResponse(w, http.StatusBadRequest, validation.Message)
	case errors.As(err, &notFound):
		middleware.ErrorResponse(w, http.StatusNotFound, notFound.Error())
	case errors.As(err, &storage):
		slog.Error("storage failure", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save data")
	default:
		slog.Error("unexpected error", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
