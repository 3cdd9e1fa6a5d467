// Package syncmap offers a lightweight, generic, concurrency-safe map guarded
// by a sync.RWMutex.  It backs the read-mostly descriptor and rule caches of
// the property and parser packages.
package syncmap
