package stats

import "github.com/rustyeddy/egolog/journal"

// Summary collects every derived figure for one dashboard render.
type Summary struct {
	Latest     *journal.EgoEntry
	Trend      int
	AverageEgo int
	EgoCount   int

	TradeCount  int
	Outcomes    map[journal.Result]int
	WinRate     int
	TotalPnL    float64
	AverageWin  float64
	AverageLoss float64
	BestTrade   float64
	WorstTrade  float64

	DrillCount       int
	DrillStreak      int
	AverageIntensity float64
	Categories       map[journal.Category]int

	Settings         journal.Settings
	Progress         float64
	RemainingCapital float64
	WeeksToTarget    int
}

// Compute derives a Summary from a snapshot of the collections.
func Compute(ego []journal.EgoEntry, trades []journal.TradeEntry, drills []journal.DrillEntry, settings journal.Settings) Summary {
	s := Summary{
		Trend:      Trend(ego),
		AverageEgo: AverageEgo(ego),
		EgoCount:   len(ego),

		TradeCount:  len(trades),
		Outcomes:    Outcomes(trades),
		WinRate:     WinRate(trades),
		TotalPnL:    TotalPnL(trades),
		AverageWin:  AverageWin(trades),
		AverageLoss: AverageLoss(trades),
		BestTrade:   BestTrade(trades),
		WorstTrade:  WorstTrade(trades),

		DrillCount:       len(drills),
		DrillStreak:      DrillStreak(drills),
		AverageIntensity: AverageIntensity(drills),
		Categories:       CategoryBreakdown(drills),

		Settings:         settings,
		Progress:         ProgressPercent(settings),
		RemainingCapital: RemainingCapital(settings),
		WeeksToTarget:    WeeksToTarget(settings),
	}
	if latest, ok := Latest(ego); ok {
		s.Latest = &latest
	}
	return s
}

// Reader is satisfied by *journal.Store.
type Reader interface {
	Ego() []journal.EgoEntry
	Trades() []journal.TradeEntry
	Drills() []journal.DrillEntry
	Settings() journal.Settings
}

// Of computes a Summary from the current contents of r.
func Of(r Reader) Summary {
	return Compute(r.Ego(), r.Trades(), r.Drills(), r.Settings())
}
