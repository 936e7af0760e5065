// Package kv provides the generic key-value binding the record store
// persists through. Values are opaque JSON blobs keyed by a namespace
// string; the store is the only writer.
package kv

// Binding is a minimal get/set contract over a single logical key-value
// slot. Get reports ok=false when the key has never been written.
type Binding interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
}
