package cycle

import (
	"testing"
	"time"
)

// Every date must land in exactly one phase across the three candidate
// cycles. Sweep a full decade including leap years and cycle boundaries.
func TestFindPhase_CoversEveryDate(t *testing.T) {
	rules := DefaultRules()
	start := date(2020, time.January, 1)
	end := date(2030, time.December, 31)

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		ph, err := FindPhase(d, rules)
		if err != nil {
			t.Fatalf("FindPhase(%v) error: %v", d, err)
		}
		if !ph.Contains(d) {
			t.Fatalf("FindPhase(%v) returned %s [%v, %v], which does not contain the date",
				d, ph.Name, ph.Start, ph.End)
		}
	}
}

func TestFindPhase_KnownDates(t *testing.T) {
	tests := []struct {
		name     string
		today    time.Time
		wantName string
		wantKind Kind
	}{
		{
			name:     "winter solstice inside Winter Hard",
			today:    date(2024, time.December, 21),
			wantName: "Winter Hard",
			wantKind: KindHard,
		},
		{
			name:     "first day of Winter Hard",
			today:    date(2024, time.November, 30),
			wantName: "Winter Hard",
			wantKind: KindHard,
		},
		{
			name:     "day after Winter Hard ends",
			today:    date(2025, time.January, 11),
			wantName: "Winter Transit 1",
			wantKind: KindTransit,
		},
		{
			name:     "summer solstice inside Summer Hard",
			today:    date(2025, time.June, 21),
			wantName: "Summer Hard",
			wantKind: KindHard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ph, err := FindPhase(tt.today, DefaultRules())
			if err != nil {
				t.Fatalf("FindPhase(%v) error: %v", tt.today, err)
			}
			if ph.Name != tt.wantName {
				t.Errorf("phase name = %q, want %q", ph.Name, tt.wantName)
			}
			if ph.Kind != tt.wantKind {
				t.Errorf("phase kind = %q, want %q", ph.Kind, tt.wantKind)
			}
		})
	}
}

// A timestamp anywhere in the day resolves to the same phase as the date.
func TestFindPhase_NormalizesTime(t *testing.T) {
	late := time.Date(2024, time.December, 21, 23, 59, 59, 0, time.UTC)

	ph, err := FindPhase(late, DefaultRules())
	if err != nil {
		t.Fatalf("FindPhase error: %v", err)
	}
	if ph.Name != "Winter Hard" {
		t.Errorf("phase name = %q, want %q", ph.Name, "Winter Hard")
	}
}

func TestPhase_DayIndex(t *testing.T) {
	ph, err := FindPhase(date(2024, time.December, 21), DefaultRules())
	if err != nil {
		t.Fatalf("FindPhase error: %v", err)
	}

	// The solstice is 21 days into a hard phase that starts 21 days earlier.
	if idx := ph.DayIndex(date(2024, time.December, 21)); idx != 21 {
		t.Errorf("DayIndex(solstice) = %d, want 21", idx)
	}
	if idx := ph.DayIndex(ph.Start); idx != 0 {
		t.Errorf("DayIndex(start) = %d, want 0", idx)
	}
	if idx := ph.DayIndex(ph.End); idx != 41 {
		t.Errorf("DayIndex(end) = %d, want 41", idx)
	}
}
