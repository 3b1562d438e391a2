package moment

import "fmt"

// Grain is a calendar unit, ordered from finest to coarsest. Week and
// Quarter are composite grains: they have a canonical period length but no
// single stdlib time.Duration equivalent, so arithmetic on them routes
// through calendar-aware month logic rather than a fixed duration.
type Grain int

const (
	Second Grain = iota
	Minute
	Hour
	Day
	Week
	Month
	Quarter
	Year
)

var grainNames = [...]string{
	Second:  "second",
	Minute:  "minute",
	Hour:    "hour",
	Day:     "day",
	Week:    "week",
	Month:   "month",
	Quarter: "quarter",
	Year:    "year",
}

func (g Grain) String() string {
	if int(g) >= 0 && int(g) < len(grainNames) {
		return grainNames[g]
	}
	return fmt.Sprintf("Grain(%d)", int(g))
}

// Finer reports whether g is strictly finer-grained than other (smaller
// canonical period).
func (g Grain) Finer(other Grain) bool { return g < other }

// Max returns the coarser of the two grains.
func Max(a, b Grain) Grain {
	if a > b {
		return a
	}
	return b
}

// Min returns the finer of the two grains.
func Min(a, b Grain) Grain {
	if a < b {
		return a
	}
	return b
}
