// Package postgres provides PostgreSQL-backed implementations of the
// storage interfaces in internal/store: the per-deck learned-word sets and
// the gamification state. It owns query execution and the mapping of
// database errors to store errors.
package postgres
