// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the FTC Scout API server.

FTC Scout is a local-first scouting data service for FTC robotics teams:
a configurable question schema, record submission with required-field
validation, tabular review, summary statistics, and CSV export. All state
lives in two JSON documents in an embedded database.

# Starting the Server

The server runs against a local sqlite file by default:

	go run main.go

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run main.go

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 8126)
  - DATABASE_URL (-d): Database DSN (default: file:ftc-scout.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)

A .env file in the working directory is loaded at startup.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: question schema store, response store, form session
  - views: pure projections (summary, table, detail, CSV, form specs)
  - handlers: HTTP request handlers (questions, records, views)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain and request/response types
  - notify: Transient status message sink
  - db: Document storage and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
