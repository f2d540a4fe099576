package journal

import (
	"testing"
	"time"

	"github.com/rustyeddy/egolog/kv"
)

var testDefaults = Settings{
	StartingCapital: 1000,
	TargetCapital:   10000,
	WeeklyInjection: 100,
	CurrentCapital:  1000,
}

// tickingClock returns a clock that advances one minute per call.
func tickingClock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		t := next
		next = next.Add(time.Minute)
		return t
	}
}

func newTestStore(t *testing.T) (*Store, *kv.Memory) {
	t.Helper()

	mem := kv.NewMemory()
	s := NewStore(kv.New(mem, nil), testDefaults,
		WithClock(tickingClock(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))))
	s.Initialize()
	return s, mem
}
