// Package profile implements the document store for user profile records.
//
// A profile is written exactly once per signup, keyed by the identity
// provider's user id, and read back when the dashboard loads. Three Store
// implementations are provided: in-memory (tests, demo), file-based (single
// JSON file under a data dir) and postgres.
package profile
