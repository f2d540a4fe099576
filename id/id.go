package id

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu   sync.Mutex
	mono io.Reader
)

func init() {
	// ulid.Monotonic keeps ids minted within the same millisecond increasing.
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	mono = ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
}

// New returns a ULID for a record created now.
func New() string {
	return At(time.Now())
}

// At returns a ULID whose time component is t. Records stamp their id with
// the same instant as their timestamp so both sort identically.
func At(t time.Time) string {
	mu.Lock()
	defer mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(t.UTC()), mono)
	if err != nil {
		// Only possible if entropy fails or t is before the epoch.
		id = ulid.Make()
	}
	return id.String()
}

// Time extracts the creation instant encoded in an id. ok is false if s is
// not a valid ULID.
func Time(s string) (t time.Time, ok bool) {
	u, err := ulid.ParseStrict(s)
	if err != nil {
		return time.Time{}, false
	}
	return ulid.Time(u.Time()).UTC(), true
}
