package service

import (
	"github.com/storeops/shift-scheduler/internal/domain"
	"github.com/storeops/shift-scheduler/internal/domain/entity"
)

// greeterRounds staffs the donor door: one opener per day, then one
// closer per day, then extra mid-shifts up to the pool's capacity-derived
// day target.
func (g *generator) greeterRounds() {
	g.coverageRounds(g.pools.greeters, domain.RoleDonorGreeter, 1, 1)
}

// cashierRounds staffs registers the same way, with the opener and closer
// targets taken from global settings.
func (g *generator) cashierRounds() {
	g.coverageRounds(g.pools.cashiers, domain.RoleCashier, g.settings.OpenerCount, g.settings.CloserCount)
}

// coverageRounds is the shared round-robin: Saturday always first, Sunday
// last and capped so its count never exceeds Saturday's.
func (g *generator) coverageRounds(pool []*entity.Employee, role domain.Role, openTarget, closeTarget int) {
	if len(pool) == 0 {
		return
	}
	days := g.saturdayFirstDays()

	for _, day := range days {
		g.fillRoleSlot(pool, role, day, kindOpener, openTarget)
	}
	for _, day := range days {
		g.fillRoleSlot(pool, role, day, kindCloser, closeTarget)
	}

	target := g.dayTarget(pool)
	for _, day := range days {
		for g.boards[day].totals[role] < target {
			if !g.sundayAllowed(role, day) {
				break
			}
			w := g.windowForKind(day, kindMid)
			emp := g.pickAvailable(g.shuffled(pool), day, w.PaidHours)
			if emp == nil {
				break
			}
			g.scheduleShift(emp, day, w)
		}
	}
}

func (g *generator) fillRoleSlot(pool []*entity.Employee, role domain.Role, day int, kind shiftKind, target int) {
	slots := g.boards[day].openers
	if kind == kindCloser {
		slots = g.boards[day].closers
	}
	for slots[role] < target {
		if !g.sundayAllowed(role, day) {
			return
		}
		w := g.windowForKind(day, kind)
		emp := g.pickAvailable(g.shuffled(pool), day, w.PaidHours)
		if emp == nil {
			return
		}
		g.scheduleShift(emp, day, w)
	}
}

// dayTarget derives a per-day staffing target from the pool's weekly day
// capacity.
func (g *generator) dayTarget(pool []*entity.Employee) int {
	capacity := 0
	for _, emp := range pool {
		capacity += g.preferredDays(emp)
	}
	target := capacity / domain.DaysInWeek
	if target < 1 {
		target = 1
	}
	return target
}
