// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import "log/slog"

// Kind classifies a transient status message.
type Kind string

const (
	Info    Kind = "info"
	Success Kind = "success"
	Error   Kind = "error"
)

// Notifier receives transient user-facing status messages. The stores
// report outcomes through it without knowing how they are displayed.
type Notifier interface {
	Notify(kind Kind, text string)
}

// Func adapts a plain function to the Notifier interface.
type Func func(kind Kind, text string)

func (f Func) Notify(kind Kind, text string) {
	f(kind, text)
}

// Log is a Notifier backed by slog.
type Log struct{}

func (Log) Notify(kind Kind, text string) {
	switch kind {
	case Error:
		slog.Error(text)
	case Success:
		slog.Info(text, "status", "success")
	default:
		slog.Info(text)
	}
}
