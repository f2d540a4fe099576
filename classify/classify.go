// Package classify maps an ego score to one of seven ordered tiers.
//
// Entries store the tier label at creation time, so the thresholds and
// labels here are part of the persisted format and must not change.
package classify

// Tier is an ordered classification bucket. Tier1 is the most negative.
type Tier int

const (
	Tier1 Tier = iota + 1
	Tier2
	Tier3
	Tier4
	Tier5
	Tier6
	Tier7
)

// Tiers lists every tier from most negative to most positive.
var Tiers = []Tier{Tier1, Tier2, Tier3, Tier4, Tier5, Tier6, Tier7}

type band struct {
	max   int
	tier  Tier
	label string
	color string
}

// Inclusive upper bounds, ascending.
var bands = []band{
	{20, Tier1, "Humbled", "#ef4444"},
	{40, Tier2, "Grounded", "#f97316"},
	{55, Tier3, "Balanced", "#eab308"},
	{70, Tier4, "Confident", "#84cc16"},
	{85, Tier5, "Bold", "#22c55e"},
	{95, Tier6, "Inflated", "#a855f7"},
	{100, Tier7, "God Mode", "#ec4899"},
}

// Clamp forces a score into [0, 100].
func Clamp(score int) int {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	}
	return score
}

// Classify returns the tier for score. Scores outside [0, 100] are clamped.
func Classify(score int) Tier {
	score = Clamp(score)
	for _, b := range bands {
		if score <= b.max {
			return b.tier
		}
	}
	return Tier7
}

// Label returns the score's tier label.
func Label(score int) string {
	return Classify(score).Label()
}

func (t Tier) band() (band, bool) {
	if t < Tier1 || t > Tier7 {
		return band{}, false
	}
	return bands[t-1], true
}

// Label is the fixed display name of the tier.
func (t Tier) Label() string {
	b, ok := t.band()
	if !ok {
		return "Unknown"
	}
	return b.label
}

// Color is the tier's severity color as a hex string.
func (t Tier) Color() string {
	b, ok := t.band()
	if !ok {
		return "#9ca3af"
	}
	return b.color
}

// Max is the highest score that still falls into the tier.
func (t Tier) Max() int {
	b, _ := t.band()
	return b.max
}

func (t Tier) String() string { return t.Label() }
