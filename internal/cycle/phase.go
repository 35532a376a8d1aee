// Package cycle implements the biannual training phase cycle: a gapless
// sequence of hard and transit phases anchored to the calendar solstices.
package cycle

import "time"

// Season identifies which half of the cycle a phase belongs to.
type Season string

const (
	SeasonWinter Season = "Winter"
	SeasonSummer Season = "Summer"
)

// Kind distinguishes solstice-anchored hard phases from the transit
// blocks between them.
type Kind string

const (
	KindHard    Kind = "hard"
	KindTransit Kind = "transit"
)

// Position marks whether a winter transit phase falls before or after
// the Winter Hard phase of its cycle. Empty for all other phases.
type Position string

const (
	PositionNone   Position = ""
	PositionAfter  Position = "after"
	PositionBefore Position = "before"
)

// Phase is a contiguous run of calendar days with classification metadata.
// Start and End are inclusive dates at UTC midnight.
type Phase struct {
	Name     string
	Season   Season
	Kind     Kind
	Start    time.Time
	End      time.Time
	Position Position

	// Variable marks a phase whose length absorbs whatever days remain
	// before the next hard phase, rather than being fixed.
	Variable bool
}

// Days returns the phase length in days, counting both endpoints.
func (p Phase) Days() int {
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}

// Contains reports whether the given date falls within the phase.
// The date must be normalized to UTC midnight (see Day).
func (p Phase) Contains(d time.Time) bool {
	return !d.Before(p.Start) && !d.After(p.End)
}

// DayIndex returns the zero-based offset of d within the phase.
func (p Phase) DayIndex(d time.Time) int {
	return int(d.Sub(p.Start).Hours() / 24)
}

// Rules holds the day-count constants that shape a cycle.
type Rules struct {
	// FixedDays is the length of every non-variable transit phase.
	FixedDays int

	// HardDays is the length of every hard phase, centered on its
	// solstice (21 days before through 20 days after).
	HardDays int
}

// DefaultRules returns the standard six-week phase lengths.
func DefaultRules() Rules {
	return Rules{FixedDays: 42, HardDays: 42}
}

// Day normalizes a timestamp to its calendar date at UTC midnight.
// All cycle computations operate on dates in this form.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
