package journal

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rustyeddy/egolog/classify"
	"github.com/rustyeddy/egolog/id"
	"github.com/rustyeddy/egolog/kv"
)

// Store is the in-memory source of truth for all four collections. Every
// mutation writes the affected collection back through the kv.Adapter, but
// only once Initialize has loaded what was persisted before.
//
// A Store is not safe for concurrent use.
type Store struct {
	kv    *kv.Adapter
	log   *zap.Logger
	now   func() time.Time
	ready bool

	ego      []EgoEntry
	trades   []TradeEntry
	drills   []DrillEntry
	settings Settings
}

type Option func(*Store)

// WithClock overrides the clock used to stamp new records.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Store) { s.log = log }
}

// NewStore returns an unready store. defaults is the settings record used
// when none has been persisted yet.
func NewStore(adapter *kv.Adapter, defaults Settings, opts ...Option) *Store {
	s := &Store{
		kv:       adapter,
		log:      zap.NewNop(),
		now:      time.Now,
		ego:      []EgoEntry{},
		trades:   []TradeEntry{},
		drills:   []DrillEntry{},
		settings: defaults,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.Named("journal")
	return s
}

// Initialize loads every collection from storage. Only the first call has
// any effect.
func (s *Store) Initialize() {
	if s.ready {
		return
	}

	s.ego = nonNil(kv.Load(s.kv, kv.KeyEgo, s.ego))
	s.trades = nonNil(kv.Load(s.kv, kv.KeyTrades, s.trades))
	s.drills = nonNil(kv.Load(s.kv, kv.KeyDrills, s.drills))
	s.settings = kv.Load(s.kv, kv.KeySettings, s.settings)
	s.ready = true

	s.log.Debug("loaded",
		zap.Int("ego", len(s.ego)),
		zap.Int("trades", len(s.trades)),
		zap.Int("drills", len(s.drills)))
}

// Ready reports whether Initialize has run.
func (s *Store) Ready() bool { return s.ready }

// AppendEgo records a self-rating. The score is clamped to [0, 100] and
// labelled with its current classification.
func (s *Store) AppendEgo(in EgoInput) EgoEntry {
	ts := s.stamp()
	score := classify.Clamp(in.Score)
	e := EgoEntry{
		ID:        id.At(ts),
		Timestamp: ts,
		Score:     score,
		Label:     classify.Label(score),
		Notes:     in.Notes,
	}
	s.ego = append(s.ego, e)
	s.persist(kv.KeyEgo, s.ego)
	return e
}

// AppendTrade records a trade and derives its P/L from the prices.
func (s *Store) AppendTrade(in TradeInput) TradeEntry {
	ts := s.stamp()
	t := TradeEntry{
		ID:         id.At(ts),
		Timestamp:  ts,
		Ticker:     strings.ToUpper(strings.TrimSpace(in.Ticker)),
		EntryPrice: in.EntryPrice,
		ExitPrice:  in.ExitPrice,
		Shares:     in.Shares,
		Result:     in.Result,
		PnL:        PnL(in.EntryPrice, in.ExitPrice, in.Shares),
		Notes:      in.Notes,
	}
	s.trades = append(s.trades, t)
	s.persist(kv.KeyTrades, s.trades)
	return t
}

// AppendDrill records a drill. A blank weapon makes this a no-op and ok is
// false. Intensity is clamped to [1, 10].
func (s *Store) AppendDrill(in DrillInput) (d DrillEntry, ok bool) {
	weapon := strings.TrimSpace(in.Weapon)
	if weapon == "" {
		return DrillEntry{}, false
	}

	ts := s.stamp()
	d = DrillEntry{
		ID:        id.At(ts),
		Timestamp: ts,
		Weapon:    weapon,
		Intensity: clampInt(in.Intensity, 1, 10),
		Category:  in.Category,
	}
	s.drills = append(s.drills, d)
	s.persist(kv.KeyDrills, s.drills)
	return d, true
}

// UpdateSettings replaces the settings record.
func (s *Store) UpdateSettings(next Settings) {
	s.settings = next
	s.persist(kv.KeySettings, s.settings)
}

// ResetAll empties the ego, trade and drill collections. Settings survive.
func (s *Store) ResetAll() {
	s.ego = []EgoEntry{}
	s.trades = []TradeEntry{}
	s.drills = []DrillEntry{}
	s.persist(kv.KeyEgo, s.ego)
	s.persist(kv.KeyTrades, s.trades)
	s.persist(kv.KeyDrills, s.drills)
}

// Restore replaces all four collections wholesale, as when importing an
// export file.
func (s *Store) Restore(ego []EgoEntry, trades []TradeEntry, drills []DrillEntry, settings Settings) {
	s.ego = nonNil(append([]EgoEntry(nil), ego...))
	s.trades = nonNil(append([]TradeEntry(nil), trades...))
	s.drills = nonNil(append([]DrillEntry(nil), drills...))
	s.settings = settings
	s.persist(kv.KeyEgo, s.ego)
	s.persist(kv.KeyTrades, s.trades)
	s.persist(kv.KeyDrills, s.drills)
	s.persist(kv.KeySettings, s.settings)
}

// Ego returns a copy of the ego entries in insertion order.
func (s *Store) Ego() []EgoEntry { return append([]EgoEntry{}, s.ego...) }

// Trades returns a copy of the trades in insertion order.
func (s *Store) Trades() []TradeEntry { return append([]TradeEntry{}, s.trades...) }

// Drills returns a copy of the drills in insertion order.
func (s *Store) Drills() []DrillEntry { return append([]DrillEntry{}, s.drills...) }

func (s *Store) Settings() Settings { return s.settings }

// PnL is (exit - entry) * shares, computed in decimal.
func PnL(entry, exit float64, shares int) float64 {
	diff := decimal.NewFromFloat(exit).Sub(decimal.NewFromFloat(entry))
	return diff.Mul(decimal.NewFromInt(int64(shares))).InexactFloat64()
}

func (s *Store) stamp() time.Time {
	return s.now().UTC()
}

// persist writes one collection. Before Initialize the write is skipped so
// empty startup state cannot overwrite what is on disk.
func (s *Store) persist(key string, v any) {
	if !s.ready {
		s.log.Debug("store not ready, skipping write", zap.String("key", key))
		return
	}
	s.kv.Save(key, v)
}

func nonNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
