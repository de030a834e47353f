// Package history records render invocations in SQLite so users can audit
// what was exported for a project and when.
//
// The database is an append-mostly log, not a source of truth: preview
// packages and project records live on disk as JSON, and clearing the history
// database loses nothing that cannot be regenerated. Schema changes bump the
// version in schema.go; users clear the database to adopt the new schema.
package history
