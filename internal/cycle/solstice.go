package cycle

import "time"

// Solstices are calendar-fixed, not astronomically computed: June 21 and
// December 21 regardless of year.

// WinterSolstice returns December 21 of the given year at UTC midnight.
func WinterSolstice(year int) time.Time {
	return time.Date(year, time.December, 21, 0, 0, 0, 0, time.UTC)
}

// SummerSolstice returns June 21 of the given year at UTC midnight.
func SummerSolstice(year int) time.Time {
	return time.Date(year, time.June, 21, 0, 0, 0, 0, time.UTC)
}

// LastNextSolstice returns the latest solstice on or before today and the
// earliest solstice after today. Candidates span today's year plus and
// minus one year, so the set always brackets any input date.
func LastNextSolstice(today time.Time) (last, next time.Time) {
	d := Day(today)
	year := d.Year()

	candidates := []time.Time{
		SummerSolstice(year - 1), WinterSolstice(year - 1),
		SummerSolstice(year), WinterSolstice(year),
		SummerSolstice(year + 1), WinterSolstice(year + 1),
	}

	for _, s := range candidates {
		if !s.After(d) {
			if last.IsZero() || s.After(last) {
				last = s
			}
		} else {
			if next.IsZero() || s.Before(next) {
				next = s
			}
		}
	}

	return last, next
}

// SolsticeName returns the season name for a solstice date.
func SolsticeName(d time.Time) string {
	if d.Month() == time.June {
		return "Summer"
	}
	return "Winter"
}

// SolsticeCounters is the distance from a date to its surrounding solstices.
type SolsticeCounters struct {
	DaysSinceLast int
	LastSeason    string
	DaysUntilNext int
	NextSeason    string
}

// CountSolstices returns how far the given date sits from the last and
// next solstice. On a solstice day DaysSinceLast is zero.
func CountSolstices(today time.Time) SolsticeCounters {
	d := Day(today)
	last, next := LastNextSolstice(d)

	return SolsticeCounters{
		DaysSinceLast: int(d.Sub(last).Hours() / 24),
		LastSeason:    SolsticeName(last),
		DaysUntilNext: int(next.Sub(d).Hours() / 24),
		NextSeason:    SolsticeName(next),
	}
}
