// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey defines typed context keys used across the CLI session.
//
// # Safety
//
// Using a private, unexported type for keys prevents collisions with third-party
// packages that might also use context for storage.
package ctxkey

// key is an unexported type used for context keys to ensure type safety.
type key string

const (
	// KeySessionID is the context key for the interactive session identifier.
	KeySessionID key = "session_id"

	// KeyLogger is the context key for the per-session [*log/slog.Logger].
	KeyLogger key = "logger"
)
