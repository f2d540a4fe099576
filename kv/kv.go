// Package kv persists JSON documents under string keys.
//
// The Adapter never fails its caller: reads fall back to a supplied default
// and write errors are logged and dropped.
package kv

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Keys used by the journal, one per collection.
const (
	KeyEgo      = "ego"
	KeyTrades   = "trades"
	KeyDrills   = "drills"
	KeySettings = "settings"
)

// ErrNotFound is returned by a Backend when a key has never been written.
var ErrNotFound = errors.New("kv: key not found")

// Backend is a byte-string store.
type Backend interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Close() error
}

type Adapter struct {
	backend Backend
	log     *zap.Logger
}

// New wraps backend. A nil backend is treated as storage being unavailable:
// every Load returns its default and every Save is dropped.
func New(backend Backend, log *zap.Logger) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{backend: backend, log: log.Named("kv")}
}

// Available reports whether a backend is attached.
func (a *Adapter) Available() bool {
	return a != nil && a.backend != nil
}

// Load decodes the document stored under key into a T. def is returned
// unchanged when the key is absent, unreadable or fails to decode.
func Load[T any](a *Adapter, key string, def T) T {
	if !a.Available() {
		return def
	}

	data, err := a.backend.Get(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			a.log.Warn("read failed, using default", zap.String("key", key), zap.Error(err))
		}
		return def
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		a.log.Warn("decode failed, using default", zap.String("key", key), zap.Error(err))
		return def
	}
	return v
}

// Save encodes v and writes it under key. Failures are logged only.
func (a *Adapter) Save(key string, v any) {
	if a == nil {
		return
	}
	if err := a.save(key, v); err != nil {
		a.log.Error("save failed", zap.String("key", key), zap.Error(err))
	}
}

func (a *Adapter) save(key string, v any) error {
	if !a.Available() {
		return errors.New("no storage backend")
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := a.backend.Set(key, data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// Close releases the backend.
func (a *Adapter) Close() error {
	if !a.Available() {
		return nil
	}
	return a.backend.Close()
}
