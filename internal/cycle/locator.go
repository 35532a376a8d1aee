package cycle

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoPhase indicates that no phase in any candidate cycle contains the
// requested date. The three overlapping cycles checked by FindPhase cover
// every date by construction, so this error always signals a defect in
// the cycle layout (for example misconfigured day counts), never a normal
// runtime condition.
var ErrNoPhase = errors.New("no phase contains date")

// FindPhase returns the unique phase containing the given date. It builds
// cycles for the winter years surrounding the date's calendar year, since
// a date near a year boundary can belong to a cycle anchored in the
// previous or following year.
func FindPhase(today time.Time, rules Rules) (Phase, error) {
	d := Day(today)

	for _, winterYear := range []int{d.Year() - 1, d.Year(), d.Year() + 1} {
		for _, ph := range BuildCycle(winterYear, rules) {
			if ph.Contains(d) {
				return ph, nil
			}
		}
	}

	return Phase{}, fmt.Errorf("%w: %s", ErrNoPhase, d.Format("2006-01-02"))
}
