// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires stores and handlers into a ServeMux.

NewRouter builds the full dependency graph from a database connection:
document store, question/record stores, form session, and handlers, then
registers every route using Go 1.22+ pattern routing with method
prefixes. All domain routes are wrapped with request logging.

	mux := router.NewRouter(conn, cfg)
	http.ListenAndServe(addr, mux)

Route precedence note: PUT /questions/edit and PUT /questions/{id}
coexist because the literal segment is more specific than the wildcard.
*/
package router
