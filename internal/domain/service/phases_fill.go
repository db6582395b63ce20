package service

import (
	"github.com/storeops/shift-scheduler/internal/domain"
	"github.com/storeops/shift-scheduler/internal/domain/entity"
)

// generalFill tops up each coverage role toward its day target across the
// Saturday-weighted day order: full shifts for full-timers, the
// optimizer's next-needed shift type for part-timers.
func (g *generator) generalFill() {
	groups := []struct {
		pool []*entity.Employee
		role domain.Role
	}{
		{g.pools.apparel, domain.RoleApparelProcessor},
		{g.pools.pricers, domain.RoleDonationPricer},
		{g.pools.greeters, domain.RoleDonorGreeter},
		{g.pools.cashiers, domain.RoleCashier},
	}

	for _, grp := range groups {
		if len(grp.pool) == 0 {
			continue
		}
		target := g.dayTarget(grp.pool)
		for _, day := range g.saturdayFirstDays() {
			if g.boards[day].totals[grp.role] >= target {
				continue
			}
			if !g.sundayAllowed(grp.role, day) {
				continue
			}
			for _, emp := range g.shuffled(grp.pool) {
				kind, ok := g.nextShiftKind(emp)
				if !ok {
					continue
				}
				w := g.windowForKind(day, kind)
				if g.canWork(emp, day, w.PaidHours) {
					g.scheduleShift(emp, day, w)
					break
				}
			}
		}
	}
}

// maximizeHours is the bounded round-robin that keeps assigning one shift
// per employee per pass until nobody can accept another (hours, days or
// availability exhausted).
func (g *generator) maximizeHours() {
	for iter := 0; iter < g.policy.MaxFillIterations; iter++ {
		progress := false
		for _, emp := range g.shuffled(g.pools.everyone()) {
			kind, ok := g.nextShiftKind(emp)
			if !ok {
				continue
			}
			role := classifyJobCode(emp.JobCode)
			for _, day := range g.shuffledDays() {
				if !g.sundayAllowed(role, day) {
					continue
				}
				w := g.windowForKind(day, kind)
				if g.canWork(emp, day, w.PaidHours) {
					g.scheduleShift(emp, day, w)
					progress = true
					break
				}
			}
		}
		if !progress {
			return
		}
	}
}

// remainderFill places one last best-fit short or gap shift for employees
// left with strictly between a gap and a full shift of unused hours.
func (g *generator) remainderFill() {
	for _, emp := range g.shuffled(g.pools.everyone()) {
		remaining := g.remainingHours(emp)
		if remaining <= g.policy.GapShiftHours || remaining >= g.policy.FullShiftHours {
			continue
		}
		if g.remainingDays(emp) <= 0 {
			continue
		}

		kind := kindGap
		if remaining >= g.policy.ShortShiftHours {
			kind = kindShort
		}
		role := classifyJobCode(emp.JobCode)
		for _, day := range g.saturdayFirstDays() {
			if !g.sundayAllowed(role, day) {
				continue
			}
			w := g.windowForKind(day, kind)
			if g.canWork(emp, day, w.PaidHours) {
				g.scheduleShift(emp, day, w)
				break
			}
		}
	}
}
