// Package journal holds the tracked records and the Store that owns them.
package journal

import (
	"fmt"
	"strings"
	"time"
)

// Result is the user-declared outcome of a trade.
type Result string

const (
	Win       Result = "WIN"
	Loss      Result = "LOSS"
	Breakeven Result = "BREAKEVEN"
)

var Results = []Result{Win, Loss, Breakeven}

// ParseResult accepts any casing of a Result name.
func ParseResult(s string) (Result, error) {
	r := Result(strings.ToUpper(strings.TrimSpace(s)))
	for _, v := range Results {
		if r == v {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown result %q (want WIN, LOSS or BREAKEVEN)", s)
}

// Category groups drills.
type Category string

const (
	Trading Category = "TRADING"
	Fitness Category = "FITNESS"
	Skill   Category = "SKILL"
	Mindset Category = "MINDSET"
)

var Categories = []Category{Trading, Fitness, Skill, Mindset}

// ParseCategory accepts any casing of a Category name.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	for _, v := range Categories {
		if c == v {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q (want TRADING, FITNESS, SKILL or MINDSET)", s)
}

// EgoEntry is one self-rating. Label is the classification at creation
// time and is never recomputed.
type EgoEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Score     int       `json:"score"`
	Label     string    `json:"label"`
	Notes     string    `json:"notes"`
}

// TradeEntry is one completed trade. PnL is derived from the prices at
// creation and may disagree with Result.
type TradeEntry struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Ticker     string    `json:"ticker"`
	EntryPrice float64   `json:"entryPrice"`
	ExitPrice  float64   `json:"exitPrice"`
	Shares     int       `json:"shares"`
	Result     Result    `json:"result"`
	PnL        float64   `json:"pnl"`
	Notes      string    `json:"notes"`
}

// DrillEntry is one practice session.
type DrillEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Weapon    string    `json:"weapon"`
	Intensity int       `json:"intensity"`
	Category  Category  `json:"category"`
}

// Settings is the singleton capital goal record.
type Settings struct {
	StartingCapital float64 `json:"startingCapital"`
	TargetCapital   float64 `json:"targetCapital"`
	WeeklyInjection float64 `json:"weeklyInjection"`
	CurrentCapital  float64 `json:"currentCapital"`
}

// EgoInput is what a caller supplies to AppendEgo.
type EgoInput struct {
	Score int
	Notes string
}

// TradeInput is what a caller supplies to AppendTrade.
type TradeInput struct {
	Ticker     string
	EntryPrice float64
	ExitPrice  float64
	Shares     int
	Result     Result
	Notes      string
}

// DrillInput is what a caller supplies to AppendDrill.
type DrillInput struct {
	Weapon    string
	Intensity int
	Category  Category
}
