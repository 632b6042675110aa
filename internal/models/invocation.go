// Package models holds the bridge's persisted record types.
package models

import "time"

// Invocation statuses.
const (
	InvocationSucceeded = "success"
	InvocationFailed    = "error"
)

// Invocation is the record of one tool execution.
type Invocation struct {
	ID         string    `json:"id"`
	Tool       string    `json:"tool"`
	Args       string    `json:"args,omitempty"` // caller arguments as JSON
	Status     string    `json:"status"`
	Code       string    `json:"code,omitempty"` // error code when Status is "error"
	ExitCode   int       `json:"exit_code"`
	DurationMs int64     `json:"duration_ms"`
	Stderr     string    `json:"stderr,omitempty"` // tail of captured stderr
	Created    time.Time `json:"created"`
}
