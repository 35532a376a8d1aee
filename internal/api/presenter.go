package api

import (
	"fmt"
	"math"
	"time"

	"github.com/mkezele/traincycle-api/internal/cycle"
	"github.com/mkezele/traincycle-api/internal/solar"
)

// daysPerWeek partitions a hard phase into its named weeks.
const daysPerWeek = 7

// Snapshot is the daily dashboard payload: where the date falls in the
// training cycle plus that day's sun figures.
type Snapshot struct {
	Date        string  `json:"date"`
	Title       string  `json:"title"`
	SunAltitude float64 `json:"sun_altitude"`
	SunUp       string  `json:"sun_up"`
	Sunrise     string  `json:"sunrise"`
	Sunset      string  `json:"sunset"`
	Progress    float64 `json:"progress"`
	Bar         string  `json:"bar"`
	Bg          string  `json:"bg"`
	Solstice    string  `json:"solstice"`
}

// Presenter assembles Snapshots from the cycle and solar calculators.
type Presenter struct {
	rules         cycle.Rules
	solar         *solar.Calculator
	hardWeekNames []string
}

// NewPresenter creates a Presenter with fixed rules, location and week names.
func NewPresenter(rules cycle.Rules, sun *solar.Calculator, hardWeekNames []string) *Presenter {
	return &Presenter{
		rules:         rules,
		solar:         sun,
		hardWeekNames: hardWeekNames,
	}
}

// Snapshot computes the full dashboard payload for one date.
// The only error path is the phase-coverage invariant violation.
func (p *Presenter) Snapshot(today time.Time) (*Snapshot, error) {
	day := cycle.Day(today)

	ph, err := cycle.FindPhase(day, p.rules)
	if err != nil {
		return nil, fmt.Errorf("find phase: %w", err)
	}

	stats := p.solar.Stats(day)

	title, progress := p.titleAndProgress(ph, day)

	counters := cycle.CountSolstices(day)
	solsticeLine := fmt.Sprintf("%d days from %s solstice · %d days to %s solstice",
		counters.DaysSinceLast, counters.LastSeason,
		counters.DaysUntilNext, counters.NextSeason)

	return &Snapshot{
		Date:        day.Format("02 January 2006"),
		Title:       title,
		SunAltitude: stats.Altitude,
		SunUp:       fmt.Sprintf("%d h %02d min", stats.DayLengthHours, stats.DayLengthMinutes),
		Sunrise:     stats.Sunrise,
		Sunset:      stats.Sunset,
		Progress:    round1(progress),
		Bar:         barClass(ph),
		Bg:          bgClass(ph),
		Solstice:    solsticeLine,
	}, nil
}

// titleAndProgress derives the display title and percentage for a date
// within its phase. Hard phases are titled by their current named week
// and report progress through that week; transit phases are titled by
// the phase name and report progress through the whole phase.
func (p *Presenter) titleAndProgress(ph cycle.Phase, day time.Time) (string, float64) {
	dayIndex := ph.DayIndex(day)

	if ph.Kind == cycle.KindHard {
		weekName := p.hardWeekNames[dayIndex/daysPerWeek]
		title := fmt.Sprintf("%s · %s", ph.Season, weekName)
		progress := float64(dayIndex%daysPerWeek+1) / daysPerWeek * 100.0
		return title, progress
	}

	progress := float64(dayIndex+1) / float64(ph.Days()) * 100.0
	return ph.Name, progress
}

// barClass maps a phase to the progress-bar style class the dashboard uses.
func barClass(ph cycle.Phase) string {
	if ph.Kind == cycle.KindHard && ph.Season == cycle.SeasonWinter {
		return "winter"
	}
	if ph.Kind == cycle.KindHard && ph.Season == cycle.SeasonSummer {
		return "summer"
	}
	if ph.Season == cycle.SeasonWinter {
		return "winter-transit"
	}
	return "summer-transit"
}

// bgClass maps a phase to the page background class. Winter transits are
// shaded differently before vs. after the Winter Hard phase.
func bgClass(ph cycle.Phase) string {
	if ph.Kind == cycle.KindHard && ph.Season == cycle.SeasonWinter {
		return "bg-winter-hard"
	}
	if ph.Kind == cycle.KindHard && ph.Season == cycle.SeasonSummer {
		return "bg-summer-hard"
	}
	if ph.Season == cycle.SeasonSummer {
		return "bg-summer-transit"
	}
	if ph.Position == cycle.PositionAfter {
		return "bg-winter-transit-after"
	}
	return "bg-winter-transit-before"
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
