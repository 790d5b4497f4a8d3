// Package kvstore is the persistent key/value store behind credentials and
// the session slot.
//
// A single SQLite table holds every entry:
//
//	kv(key TEXT PRIMARY KEY, value BLOB NOT NULL)
//
// The SQLite implementation runs over a dbx.DBTX, so the same repository can
// be bound to a *sql.DB or to a *sql.Tx inside dbx.WithTx.
//
// Get reports a missing key as (nil, nil); Delete of a missing key is not an
// error.
package kvstore
