package service

import (
	"github.com/storeops/shift-scheduler/internal/domain"
	"github.com/storeops/shift-scheduler/internal/domain/entity"
)

// productionMorning staffs the apparel and pricing stations up to the
// location's configured limits on every open day. Stations already filled
// by pre-existing shifts count toward the limit; full-timers go first.
func (g *generator) productionMorning() {
	for _, day := range g.shuffledDays() {
		g.fillStations(day, g.pools.apparel, func() int { return g.boards[day].apparel }, g.location.MaxApparelStations)
		g.fillStations(day, g.pools.pricers, func() int { return g.boards[day].pricing }, g.location.MaxPricingStations)
	}
}

func (g *generator) fillStations(day int, pool []*entity.Employee, filled func() int, limit int) {
	w := g.windows[day].Opener
	for filled() < limit {
		emp := g.pickAvailable(g.fullTimeFirst(pool), day, w.PaidHours)
		if emp == nil {
			return
		}
		// Opener-kind production shifts count against the station limit
		// via coverage recording.
		g.scheduleShift(emp, day, w)
	}
}

// productionPeakBoost adds one extra shift per station pool on the two
// busiest donation days, beyond the normal station cap, when qualifying
// staff remain.
func (g *generator) productionPeakBoost() {
	for _, day := range []int{domain.Saturday, domain.Friday} {
		if g.closed[day] {
			continue
		}
		w := g.windows[day].Opener
		if emp := g.pickAvailable(g.fullTimeFirst(g.pools.apparel), day, w.PaidHours); emp != nil {
			g.scheduleShift(emp, day, w)
		}
		if emp := g.pickAvailable(g.fullTimeFirst(g.pools.pricers), day, w.PaidHours); emp != nil {
			g.scheduleShift(emp, day, w)
		}
	}
}

// productionAfternoon extends coverage past the morning shifts: for every
// staffed morning station, try to add one part-time 4-hour afternoon
// shift from the production pools.
func (g *generator) productionAfternoon() {
	for _, day := range g.openDays() {
		board := g.boards[day]
		morning := board.apparel + board.pricing
		if morning == 0 {
			continue
		}

		w := g.windows[day].Afternoon
		for board.afternoons < morning {
			emp := g.partTimeProduction(day, w.PaidHours)
			if emp == nil {
				break
			}
			g.scheduleShift(emp, day, w)
		}
	}
}

func (g *generator) partTimeProduction(day int, paidHours float64) *entity.Employee {
	for _, emp := range g.shuffled(g.pools.production()) {
		if g.isFullTime(emp) {
			continue
		}
		if g.canWork(emp, day, paidHours) {
			return emp
		}
	}
	return nil
}
