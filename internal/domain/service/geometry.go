package service

import (
	"time"

	"github.com/storeops/shift-scheduler/internal/config"
	"github.com/storeops/shift-scheduler/internal/domain"
)

type shiftKind string

const (
	kindOpener    shiftKind = "opener"
	kindMid       shiftKind = "mid"
	kindCloser    shiftKind = "closer"
	kindShort     shiftKind = "short"
	kindGap       shiftKind = "gap"
	kindAfternoon shiftKind = "afternoon"
)

// shiftWindow is one named schedulable time slot on a specific day.
type shiftWindow struct {
	Name      string
	Kind      shiftKind
	Start     time.Time
	End       time.Time
	PaidHours float64
}

// dayWindows is the full slot menu for one calendar day.
type dayWindows struct {
	Opener    shiftWindow
	Mids      [3]shiftWindow
	Closer    shiftWindow
	Shorts    [2]shiftWindow
	Gaps      [3]shiftWindow
	Afternoon shiftWindow
}

// fullShifts returns the five full-length windows, opener first.
func (d dayWindows) fullShifts() []shiftWindow {
	return []shiftWindow{d.Opener, d.Mids[0], d.Mids[1], d.Mids[2], d.Closer}
}

// buildDayWindows constructs every named window for day in the business
// timezone. Sunday trading hours are shorter: open-anchored windows start
// an hour later and close-anchored windows end an hour earlier, with each
// window keeping its length so paid hours are stable across the week.
func buildDayWindows(day time.Time, policy config.Policy) dayWindows {
	loc := domain.BusinessTime()
	day = day.In(loc)

	openDelta, closeDelta := time.Duration(0), time.Duration(0)
	if day.Weekday() == time.Sunday {
		openDelta = time.Hour
		closeDelta = -time.Hour
	}

	at := func(hour, min int, delta time.Duration) time.Time {
		return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, loc).Add(delta)
	}
	window := func(name string, kind shiftKind, start time.Time, clockHours float64) shiftWindow {
		end := start.Add(time.Duration(clockHours * float64(time.Hour)))
		return shiftWindow{
			Name:      name,
			Kind:      kind,
			Start:     start,
			End:       end,
			PaidHours: paidHoursFor(start, end, policy),
		}
	}

	full := policy.FullShiftClockHours
	return dayWindows{
		Opener: window("opener", kindOpener, at(8, 45, openDelta), full),
		Mids: [3]shiftWindow{
			window("mid-early", kindMid, at(10, 0, openDelta), full),
			window("mid", kindMid, at(11, 0, 0), full),
			window("mid-late", kindMid, at(12, 0, closeDelta), full),
		},
		Closer: window("closer", kindCloser, at(12, 45, closeDelta), full),
		Shorts: [2]shiftWindow{
			window("short-open", kindShort, at(9, 0, openDelta), policy.ShortShiftHours),
			window("short-close", kindShort, at(15, 45, closeDelta), policy.ShortShiftHours),
		},
		Gaps: [3]shiftWindow{
			window("gap-morning", kindGap, at(10, 0, openDelta), policy.GapShiftHours),
			window("gap-midday", kindGap, at(12, 0, 0), policy.GapShiftHours),
			window("gap-evening", kindGap, at(16, 0, closeDelta), policy.GapShiftHours),
		},
		Afternoon: window("production-afternoon", kindAfternoon, at(13, 0, 0), policy.AfternoonShiftHours),
	}
}

// paidHoursFor derives billable hours from a clock interval: shifts of six
// or more clock hours lose the unpaid 30-minute meal break.
func paidHoursFor(start, end time.Time, policy config.Policy) float64 {
	clock := end.Sub(start).Hours()
	if clock <= 0 {
		return 0
	}
	if clock >= policy.MealDeductionMinimum {
		return clock - policy.MealDeductionHours
	}
	return clock
}
