package kv

import (
	"errors"
	"fmt"
)

// Backend kinds accepted by Open.
const (
	KindSQLite = "sqlite"
	KindFile   = "file"
	KindMemory = "memory"
)

// ErrUnknownBackend is returned by Open for an unrecognised kind.
var ErrUnknownBackend = errors.New("kv: unknown backend")

// Open returns the backend named by kind. path is the database file for
// sqlite and the directory for file; memory ignores it.
func Open(kind, path string) (Backend, error) {
	switch kind {
	case KindSQLite:
		return OpenSQLite(path)
	case KindFile:
		return OpenFile(path)
	case KindMemory:
		return NewMemory(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, kind)
}
