// Package item provides read access to content entries.
//
// Store has three implementations: MemoryStore for tests and local runs,
// PostgresStore over the items table, and MongoStore over a collection.
// All of them return items in a stable order and treat the source tag as an
// opaque string.
package item
