// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldCommand    = "command"
	FieldWorkingDir = "working_dir"

	// Cache fields.
	FieldCache       = "cache"
	FieldApproved    = "approved"
	FieldPruned      = "pruned"
	FieldNewWarnings = "new_warnings"
	FieldConfigHash  = "config_hash"

	// Lint result fields.
	FieldRule     = "rule"
	FieldFile     = "file"
	FieldMessages = "messages"
	FieldResults  = "results"

	// Plugin fields.
	FieldPlugin   = "plugin"
	FieldPlugins  = "plugins"
	FieldFindings = "findings"
	FieldSeverity = "severity"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
