// Package store provides a SQLite-backed stand-in for the database that
// ltree values travel to and from.
//
// It plays the two external roles the codec layer depends on:
//   - Type catalog: resolves a type name ("ltree", "lquery") to the
//     identifiers its values are sent with (FetchType)
//   - Transport: stores and returns values as UTF-8 text, never
//     interpreting them (SaveText, LoadText)
//
// Save and Load combine both with a codec.Registry, so every value written
// through the store goes through Encode and every value read goes through
// Decode.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//
// Values are ordered by seq INTEGER (insertion order), never by timestamps.
package store
