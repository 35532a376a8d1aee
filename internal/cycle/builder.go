package cycle

// hardLeadDays is how many days before its solstice a hard phase begins.
// With the default 42-day hard phase this centers the phase on the
// solstice: 21 days before through 20 days after.
const hardLeadDays = 21

// BuildCycle lays out the full phase sequence for one winter year: from
// that winter's hard phase through the day before the next winter's hard
// phase. Phases are contiguous, each starting the day after the previous
// one ends. Hard phases are pinned to their solstices; the two variable
// transit phases absorb whatever slack remains so the next hard phase
// always starts exactly hardLeadDays before its solstice.
//
// A phase whose computed start falls after its end carries no days and is
// omitted. That only happens with pathological rule values, never with
// DefaultRules.
func BuildCycle(winterYear int, rules Rules) []Phase {
	ws := WinterSolstice(winterYear)
	ss := SummerSolstice(winterYear + 1)
	wsNext := WinterSolstice(winterYear + 1)

	winterHardStart := ws.AddDate(0, 0, -hardLeadDays)
	winterHardEnd := winterHardStart.AddDate(0, 0, rules.HardDays-1)

	summerHardStart := ss.AddDate(0, 0, -hardLeadDays)
	summerHardEnd := summerHardStart.AddDate(0, 0, rules.HardDays-1)

	nextWinterHardStart := wsNext.AddDate(0, 0, -hardLeadDays)

	phases := make([]Phase, 0, 10)
	add := func(p Phase) {
		if p.Start.After(p.End) {
			return
		}
		phases = append(phases, p)
	}

	add(Phase{
		Name:   "Winter Hard",
		Season: SeasonWinter,
		Kind:   KindHard,
		Start:  winterHardStart,
		End:    winterHardEnd,
	})

	p := winterHardEnd.AddDate(0, 0, 1)
	add(Phase{
		Name:     "Winter Transit 1",
		Season:   SeasonWinter,
		Kind:     KindTransit,
		Start:    p,
		End:      p.AddDate(0, 0, rules.FixedDays-1),
		Position: PositionAfter,
	})
	p = p.AddDate(0, 0, rules.FixedDays)
	add(Phase{
		Name:     "Winter Transit 2",
		Season:   SeasonWinter,
		Kind:     KindTransit,
		Start:    p,
		End:      p.AddDate(0, 0, rules.FixedDays-1),
		Position: PositionAfter,
	})
	p = p.AddDate(0, 0, rules.FixedDays)

	add(Phase{
		Name:   "Summer Transit 1",
		Season: SeasonSummer,
		Kind:   KindTransit,
		Start:  p,
		End:    p.AddDate(0, 0, rules.FixedDays-1),
	})
	p = p.AddDate(0, 0, rules.FixedDays)
	add(Phase{
		Name:     "Summer Transit 2",
		Season:   SeasonSummer,
		Kind:     KindTransit,
		Start:    p,
		End:      summerHardStart.AddDate(0, 0, -1),
		Variable: true,
	})

	add(Phase{
		Name:   "Summer Hard",
		Season: SeasonSummer,
		Kind:   KindHard,
		Start:  summerHardStart,
		End:    summerHardEnd,
	})

	p = summerHardEnd.AddDate(0, 0, 1)
	add(Phase{
		Name:   "Summer Transit 1",
		Season: SeasonSummer,
		Kind:   KindTransit,
		Start:  p,
		End:    p.AddDate(0, 0, rules.FixedDays-1),
	})
	p = p.AddDate(0, 0, rules.FixedDays)
	add(Phase{
		Name:   "Summer Transit 2",
		Season: SeasonSummer,
		Kind:   KindTransit,
		Start:  p,
		End:    p.AddDate(0, 0, rules.FixedDays-1),
	})
	p = p.AddDate(0, 0, rules.FixedDays)

	add(Phase{
		Name:     "Winter Transit 1",
		Season:   SeasonWinter,
		Kind:     KindTransit,
		Start:    p,
		End:      p.AddDate(0, 0, rules.FixedDays-1),
		Position: PositionBefore,
	})
	p = p.AddDate(0, 0, rules.FixedDays)
	add(Phase{
		Name:     "Winter Transit 2",
		Season:   SeasonWinter,
		Kind:     KindTransit,
		Start:    p,
		End:      nextWinterHardStart.AddDate(0, 0, -1),
		Position: PositionBefore,
		Variable: true,
	})

	return phases
}
