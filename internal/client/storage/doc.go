// Package storage is the client's persistent key/value store.
//
// Each top-level collection of the marketplace (current user, users, seeker
// posts, carrier posts, deals) is kept as one JSON document under a fixed key
// in the kv table of a local SQLite database. Documents are written whole on
// every save; there is no incremental update and no schema versioning of the
// document contents.
//
// Key Types
//
//   - type Repository        - key → []byte operations used by higher layers
//   - type SQLiteRepository  - SQLite implementation over dbx.DBTX
//   - func Load, Save        - typed JSON documents on top of a Repository
//   - func Open              - opens the database and applies migrations
package storage
