// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package notify carries transient status messages out of the data layer.

Stores announce outcomes ("Scouting data saved", "Failed to delete entry")
through the Notifier interface without performing any rendering. The
default Log implementation writes them to slog; a UI adapter can supply
its own sink, and tests usually pass notify.Func to capture messages.
*/
package notify
