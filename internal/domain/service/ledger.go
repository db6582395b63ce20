package service

import (
	"time"

	"github.com/storeops/shift-scheduler/internal/domain"
	"github.com/storeops/shift-scheduler/internal/domain/entity"
)

// shiftLedger accumulates proposed shifts during a run. Nothing touches
// storage until finalize has filtered the batch.
type shiftLedger struct {
	shifts  []*entity.Shift
	dropped int
}

func (l *shiftLedger) add(shift *entity.Shift) {
	l.shifts = append(l.shifts, shift)
}

// finalize drops malformed entries (zero timestamps or end not after
// start) and returns the accepted batch with the drop count.
func (l *shiftLedger) finalize() ([]*entity.Shift, int) {
	accepted := make([]*entity.Shift, 0, len(l.shifts))
	for _, s := range l.shifts {
		if s.StartTime.IsZero() || s.EndTime.IsZero() || !s.EndTime.After(s.StartTime) {
			l.dropped++
			continue
		}
		accepted = append(accepted, s)
	}
	return accepted, l.dropped
}

// dayBoard tracks what coverage a single day already has, counting both
// pre-existing shifts and shifts added during the run.
type dayBoard struct {
	seniorOpener bool
	seniorCloser bool
	leadOpener   bool
	leadCloser   bool
	apparel      int // morning apparel stations filled
	pricing      int // morning pricing stations filled
	afternoons   int // production afternoon extensions
	openers      map[domain.Role]int
	closers      map[domain.Role]int
	totals       map[domain.Role]int
}

func newDayBoard() *dayBoard {
	return &dayBoard{
		openers: make(map[domain.Role]int),
		closers: make(map[domain.Role]int),
		totals:  make(map[domain.Role]int),
	}
}

func (b *dayBoard) leadershipCount() int {
	return b.totals[domain.RoleStoreManager] + b.totals[domain.RoleAssistantManager] + b.totals[domain.RoleTeamLead]
}

// scheduleShift is the single mutation point for working state: it books
// the window, charges the hours, burns the day and records coverage.
func (g *generator) scheduleShift(emp *entity.Employee, day int, w shiftWindow) {
	st := g.state[emp.ID]
	st.hours += w.PaidHours
	if !st.workedDays[day] {
		st.workedDays[day] = true
		st.daysWorked++
	}

	g.ledger.add(&entity.Shift{
		EmployeeID: emp.ID,
		LocationID: g.location.ID,
		StartTime:  w.Start,
		EndTime:    w.End,
	})
	g.recordCoverage(classifyJobCode(emp.JobCode), day, w.Kind)
}

func (g *generator) recordCoverage(role domain.Role, day int, kind shiftKind) {
	board := g.boards[day]
	board.totals[role]++

	switch kind {
	case kindOpener:
		board.openers[role]++
	case kindCloser:
		board.closers[role]++
	case kindAfternoon:
		board.afternoons++
	}

	switch role {
	case domain.RoleStoreManager, domain.RoleAssistantManager:
		if kind == kindOpener {
			board.seniorOpener = true
		}
		if kind == kindCloser {
			board.seniorCloser = true
		}
	case domain.RoleTeamLead:
		if kind == kindOpener {
			board.leadOpener = true
		}
		if kind == kindCloser {
			board.leadCloser = true
		}
	case domain.RoleApparelProcessor:
		if kind == kindOpener {
			board.apparel++
		}
	case domain.RoleDonationPricer:
		if kind == kindOpener {
			board.pricing++
		}
	}
}

// seedBoards registers pre-existing shifts as coverage so later phases do
// not re-fill slots the persisted schedule already satisfies.
func (g *generator) seedBoards(existing []*entity.Shift) {
	for _, shift := range existing {
		emp, ok := g.byID[shift.EmployeeID]
		if !ok {
			continue
		}
		day := g.dayIndex(shift.StartTime)
		if day < 0 {
			continue
		}
		g.recordCoverage(classifyJobCode(emp.JobCode), day, g.classifyExisting(day, shift))
	}
}

// classifyExisting maps a persisted shift onto the nearest named slot: a
// start at or before the opener window (plus slack) counts as the opener,
// an end at or after the closer window counts as the closer.
func (g *generator) classifyExisting(day int, shift *entity.Shift) shiftKind {
	const slack = 30 * time.Minute
	w := g.windows[day]
	if !shift.StartTime.After(w.Opener.Start.Add(slack)) {
		return kindOpener
	}
	if !shift.EndTime.Before(w.Closer.End.Add(-slack)) {
		return kindCloser
	}
	return kindMid
}

// sundayAllowed enforces the Saturday >= Sunday staffing rule for the
// customer-facing roles. Adding is allowed only while Sunday stays below
// Saturday's current count.
func (g *generator) sundayAllowed(role domain.Role, day int) bool {
	if day != domain.Sunday {
		return true
	}
	if role != domain.RoleDonorGreeter && role != domain.RoleCashier {
		return true
	}
	return g.boards[domain.Sunday].totals[role] < g.boards[domain.Saturday].totals[role]
}
