package service

import (
	"log"

	"github.com/storeops/shift-scheduler/internal/domain"
	"github.com/storeops/shift-scheduler/internal/domain/entity"
)

// leadershipPassOne guarantees each day at least one store or assistant
// manager on either the opener or the closer, unless a pre-existing shift
// already provides one. Days are visited in random order for variety.
func (g *generator) leadershipPassOne() {
	for _, day := range g.shuffledDays() {
		board := g.boards[day]
		if board.seniorOpener || board.seniorCloser {
			continue
		}

		w := g.windows[day].Opener
		if g.rng.Intn(2) == 1 {
			w = g.windows[day].Closer
		}
		if emp := g.pickAvailable(g.seniorCandidates(), day, w.PaidHours); emp != nil {
			g.scheduleShift(emp, day, w)
		}
	}
}

// leadershipPassTwo fills the opposite leadership slot on each day, and
// adds a leadership mid-shift once both ends are covered and the manager
// target allows. Team leads may take a slot only when the other slot of
// the day already has senior coverage.
func (g *generator) leadershipPassTwo() {
	for _, day := range g.shuffledDays() {
		board := g.boards[day]
		if !board.seniorCloser && !board.leadCloser {
			g.fillLeadershipSlot(day, kindCloser, false)
		}
		if !board.seniorOpener && !board.leadOpener {
			g.fillLeadershipSlot(day, kindOpener, false)
		}

		openerCovered := board.seniorOpener || board.leadOpener
		closerCovered := board.seniorCloser || board.leadCloser
		if openerCovered && closerCovered && board.leadershipCount() < g.settings.ManagerCount {
			w := g.windows[day].Mids[g.rng.Intn(len(g.windows[day].Mids))]
			if emp := g.pickAvailable(g.seniorCandidates(), day, w.PaidHours); emp != nil {
				g.scheduleShift(emp, day, w)
			}
		}
	}
}

// leadershipFallback is the last resort for days still missing opener or
// closer leadership: the reserved variety day off may be overridden, but
// hour and day caps still hold. A day with no feasible leadership at all
// becomes a logged coverage warning, never a failure.
func (g *generator) leadershipFallback() {
	for _, day := range g.openDays() {
		board := g.boards[day]
		if !board.seniorOpener && !board.leadOpener {
			if !g.fillLeadershipSlot(day, kindOpener, true) {
				log.Printf("Coverage warning: no leadership opener on %s", g.week[day].Format("Mon 2006-01-02"))
			}
		}
		if !board.seniorCloser && !board.leadCloser {
			if !g.fillLeadershipSlot(day, kindCloser, true) {
				log.Printf("Coverage warning: no leadership closer on %s", g.week[day].Format("Mon 2006-01-02"))
			}
		}
	}
}

// fillLeadershipSlot staffs one opener or closer slot: seniors first, team
// leads only when the opposite slot of that day already has senior
// coverage. Team leads never stand as the sole leadership of either slot.
func (g *generator) fillLeadershipSlot(day int, kind shiftKind, overrideDayOff bool) bool {
	board := g.boards[day]
	w := g.windowForKind(day, kind)

	for _, emp := range g.seniorCandidates() {
		if g.canWorkOverriding(emp, day, w.PaidHours, overrideDayOff) {
			g.scheduleShift(emp, day, w)
			return true
		}
	}

	oppositeSenior := board.seniorCloser
	if kind == kindCloser {
		oppositeSenior = board.seniorOpener
	}
	if !oppositeSenior {
		return false
	}

	for _, emp := range g.shuffled(g.pools.teamLeads) {
		if g.canWorkOverriding(emp, day, w.PaidHours, overrideDayOff) {
			g.scheduleShift(emp, day, w)
			return true
		}
	}
	return false
}

// seniorCandidates keeps the tier ordering strict: store managers before
// assistant managers, shuffled within each tier.
func (g *generator) seniorCandidates() []*entity.Employee {
	return append(g.shuffled(g.pools.storeManagers), g.shuffled(g.pools.assistantManagers)...)
}

// leadershipRole reports whether a role belongs to a leadership tier.
func leadershipRole(role domain.Role) bool {
	switch role {
	case domain.RoleStoreManager, domain.RoleAssistantManager, domain.RoleTeamLead:
		return true
	}
	return false
}
