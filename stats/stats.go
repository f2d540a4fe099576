// Package stats derives dashboard figures from journal collections.
//
// Every function is pure and recomputed on each call; nothing here is
// cached or persisted.
package stats

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/egolog/journal"
)

// StreakThreshold is the minimum drill intensity that extends a streak.
const StreakThreshold = 5

// Latest returns the most recently appended ego entry.
func Latest(ego []journal.EgoEntry) (journal.EgoEntry, bool) {
	if len(ego) == 0 {
		return journal.EgoEntry{}, false
	}
	return ego[len(ego)-1], true
}

// Previous returns the entry appended before the latest one.
func Previous(ego []journal.EgoEntry) (journal.EgoEntry, bool) {
	if len(ego) < 2 {
		return journal.EgoEntry{}, false
	}
	return ego[len(ego)-2], true
}

// Trend is latest.Score - previous.Score, or 0 with fewer than two entries.
func Trend(ego []journal.EgoEntry) int {
	latest, ok := Latest(ego)
	if !ok {
		return 0
	}
	prev, ok := Previous(ego)
	if !ok {
		return 0
	}
	return latest.Score - prev.Score
}

// AverageEgo is the rounded mean score.
func AverageEgo(ego []journal.EgoEntry) int {
	if len(ego) == 0 {
		return 0
	}
	sum := 0
	for _, e := range ego {
		sum += e.Score
	}
	return int(math.Round(float64(sum) / float64(len(ego))))
}

// Outcomes counts trades per declared result.
func Outcomes(trades []journal.TradeEntry) map[journal.Result]int {
	out := make(map[journal.Result]int, len(journal.Results))
	for _, r := range journal.Results {
		out[r] = 0
	}
	for _, t := range trades {
		out[t.Result]++
	}
	return out
}

// WinRate is the rounded percentage of trades marked WIN.
func WinRate(trades []journal.TradeEntry) int {
	if len(trades) == 0 {
		return 0
	}
	wins := 0
	for _, t := range trades {
		if t.Result == journal.Win {
			wins++
		}
	}
	return int(math.Round(100 * float64(wins) / float64(len(trades))))
}

// TotalPnL sums pnl over every trade regardless of result.
func TotalPnL(trades []journal.TradeEntry) float64 {
	return sumPnL(trades, func(journal.TradeEntry) bool { return true }).InexactFloat64()
}

// AverageWin is the mean pnl of WIN trades.
func AverageWin(trades []journal.TradeEntry) float64 {
	return meanPnL(trades, journal.Win)
}

// AverageLoss is the mean absolute pnl of LOSS trades.
func AverageLoss(trades []journal.TradeEntry) float64 {
	return math.Abs(meanPnL(trades, journal.Loss))
}

// BestTrade and WorstTrade return the extreme pnl values, or 0 with no trades.
func BestTrade(trades []journal.TradeEntry) float64 {
	return extremePnL(trades, func(a, b float64) bool { return a > b })
}

func WorstTrade(trades []journal.TradeEntry) float64 {
	return extremePnL(trades, func(a, b float64) bool { return a < b })
}

// DrillStreak counts the trailing run of drills with intensity at or above
// StreakThreshold. It counts entries, not days.
func DrillStreak(drills []journal.DrillEntry) int {
	streak := 0
	for i := len(drills) - 1; i >= 0; i-- {
		if drills[i].Intensity < StreakThreshold {
			break
		}
		streak++
	}
	return streak
}

// CategoryBreakdown counts drills per category. Every category is present.
func CategoryBreakdown(drills []journal.DrillEntry) map[journal.Category]int {
	out := make(map[journal.Category]int, len(journal.Categories))
	for _, c := range journal.Categories {
		out[c] = 0
	}
	for _, d := range drills {
		out[d.Category]++
	}
	return out
}

// AverageIntensity is the mean drill intensity, 0 with no drills.
func AverageIntensity(drills []journal.DrillEntry) float64 {
	if len(drills) == 0 {
		return 0
	}
	sum := 0
	for _, d := range drills {
		sum += d.Intensity
	}
	return float64(sum) / float64(len(drills))
}

// ProgressPercent is how far current capital has moved from start toward
// target, clamped to [0, 100]. When target equals start there is no range
// to measure, so the goal counts as met once current reaches it.
func ProgressPercent(s journal.Settings) float64 {
	span := s.TargetCapital - s.StartingCapital
	if span == 0 {
		if s.CurrentCapital >= s.TargetCapital {
			return 100
		}
		return 0
	}
	return clamp(100*(s.CurrentCapital-s.StartingCapital)/span, 0, 100)
}

// RemainingCapital is what is still needed to reach the target.
func RemainingCapital(s journal.Settings) float64 {
	return math.Max(0, s.TargetCapital-s.CurrentCapital)
}

// WeeksToTarget estimates the weekly injections still required. It is 0
// once the target is met and -1 if the target is unreachable by injection.
func WeeksToTarget(s journal.Settings) int {
	remaining := RemainingCapital(s)
	if remaining == 0 {
		return 0
	}
	if s.WeeklyInjection <= 0 {
		return -1
	}
	return int(math.Ceil(remaining / s.WeeklyInjection))
}

func sumPnL(trades []journal.TradeEntry, keep func(journal.TradeEntry) bool) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range trades {
		if keep(t) {
			sum = sum.Add(decimal.NewFromFloat(t.PnL))
		}
	}
	return sum
}

func meanPnL(trades []journal.TradeEntry, r journal.Result) float64 {
	n := 0
	sum := sumPnL(trades, func(t journal.TradeEntry) bool {
		if t.Result != r {
			return false
		}
		n++
		return true
	})
	if n == 0 {
		return 0
	}
	return sum.Div(decimal.NewFromInt(int64(n))).InexactFloat64()
}

func extremePnL(trades []journal.TradeEntry, better func(a, b float64) bool) float64 {
	if len(trades) == 0 {
		return 0
	}
	best := trades[0].PnL
	for _, t := range trades[1:] {
		if better(t.PnL, best) {
			best = t.PnL
		}
	}
	return best
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
