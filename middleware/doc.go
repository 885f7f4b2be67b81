// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Request Logging

WithLogging wraps a handler func with slog request/completion lines:

	mux.HandleFunc("GET /summary", middleware.WithLogging(handler.GetSummary))

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, payload)
	middleware.ErrorResponse(w, http.StatusBadRequest, "text is required")
	err := middleware.ParseJSONBody(r, &req)

ErrorResponse wraps the message in models.ErrorResponse with the standard
status text.

# CORS

CORS reflects the request origin and answers preflight requests, so a
browser frontend served from another port can talk to the API.
*/
package middleware
