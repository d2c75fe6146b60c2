// Package kv provides the per-device key-value medium the document store
// persists into. The medium is quota-bound, like the browser storage the
// layout originally lived in.
package kv

import "errors"

var (
	// ErrNoKey is returned by Get when the key is absent.
	ErrNoKey = errors.New("key not found")

	// ErrQuotaExceeded is returned by Set when the write would push usage
	// past the configured quota.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

// Store is a flat quota-bound key-value medium.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)
	// Usage returns estimated bytes used and the configured quota.
	Usage() (used, quota int64, err error)
	Close() error
}
