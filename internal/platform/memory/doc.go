// Package memory provides in-memory implementations of the storage
// interfaces defined in the internal/store package. They back the server
// when no database is configured and keep handler tests hermetic.
package memory
