package service

import (
	"time"

	"github.com/storeops/shift-scheduler/internal/domain"
	"github.com/storeops/shift-scheduler/internal/domain/entity"
	"github.com/storeops/shift-scheduler/internal/domain/holiday"
)

// hourEpsilon absorbs float drift when comparing against weekly caps.
const hourEpsilon = 1e-9

// employeeState is the per-run scheduling record for one employee. It is
// the single source of truth every phase reads and scheduleShift mutates.
type employeeState struct {
	hours       float64      // paid hours scheduled, seeded with precounted hours
	daysWorked  int          // distinct days with a shift
	workedDays  map[int]bool // day index -> has a shift
	blocked     map[int]bool // day index -> unavailable (leave, config, existing shift)
	reservedOff int          // leadership variety day off, -1 when none
}

// buildState seeds the working state from leave records, paid holidays and
// shifts already persisted for the week. Pre-existing shifts are immovable:
// their hours count, their days are taken.
func (g *generator) buildState(
	employees []*entity.Employee,
	paid []*entity.PaidLeave,
	unpaid []*entity.UnpaidLeave,
	timeOff []*entity.TimeOffRequest,
	existing []*entity.Shift,
) {
	g.state = make(map[int64]*employeeState, len(employees))
	g.byID = make(map[int64]*entity.Employee, len(employees))

	for _, emp := range employees {
		st := &employeeState{
			workedDays:  make(map[int]bool),
			blocked:     make(map[int]bool),
			reservedOff: -1,
		}
		for _, name := range emp.NonWorkingDays {
			if idx, ok := domain.WeekdayIndex[name]; ok {
				st.blocked[idx] = true
			}
		}
		g.state[emp.ID] = st
		g.byID[emp.ID] = emp
	}

	// Paid holidays pre-credit hours for eligible full-timers but never
	// block the day.
	for day := 0; day < domain.DaysInWeek; day++ {
		h, ok := holiday.Lookup(g.week[day])
		if !ok || h.Closed {
			continue
		}
		for _, emp := range employees {
			if holiday.EligibleForPaidHoliday(emp.HireDate, g.week[day], emp.EmploymentType) {
				g.state[emp.ID].hours += g.policy.PaidHolidayHours
			}
		}
	}

	for _, l := range paid {
		st, ok := g.state[l.EmployeeID]
		if !ok || l.Status != domain.LeaveStatusApproved {
			continue
		}
		if idx := g.dayIndex(l.Date); idx >= 0 {
			st.hours += float64(l.Minutes) / 60
			st.blocked[idx] = true
		}
	}

	for _, l := range unpaid {
		st, ok := g.state[l.EmployeeID]
		if !ok || l.Status != domain.LeaveStatusApproved {
			continue
		}
		if idx := g.dayIndex(l.Date); idx >= 0 {
			st.blocked[idx] = true
		}
	}

	for _, req := range timeOff {
		st, ok := g.state[req.EmployeeID]
		if !ok || req.Status != domain.LeaveStatusApproved {
			continue
		}
		for day := 0; day < domain.DaysInWeek; day++ {
			if !g.week[day].Before(dayFloor(req.StartDate)) && !g.week[day].After(dayFloor(req.EndDate)) {
				st.blocked[day] = true
			}
		}
	}

	for _, shift := range existing {
		st, ok := g.state[shift.EmployeeID]
		if !ok {
			continue
		}
		idx := g.dayIndex(shift.StartTime)
		if idx < 0 {
			continue
		}
		st.hours += paidHoursFor(shift.StartTime, shift.EndTime, g.policy)
		if !st.workedDays[idx] {
			st.workedDays[idx] = true
			st.daysWorked++
		}
	}
}

// reserveLeadershipDaysOff gives each leadership employee one random open
// day off so the same managers do not land on the same days every week.
// Pass 3 may override the reservation when coverage demands it.
func (g *generator) reserveLeadershipDaysOff() {
	for _, emp := range g.pools.leadership() {
		st := g.state[emp.ID]
		if g.preferredDays(emp) >= domain.DaysInWeek {
			continue
		}
		var open []int
		for day := 0; day < domain.DaysInWeek; day++ {
			if !st.blocked[day] && !st.workedDays[day] && !g.closed[day] {
				open = append(open, day)
			}
		}
		if len(open) > 0 {
			st.reservedOff = open[g.rng.Intn(len(open))]
		}
	}
}

// canWork reports whether emp can take a shift of paidHours on day without
// breaking the hour cap, the day-count cap, or availability.
func (g *generator) canWork(emp *entity.Employee, day int, paidHours float64) bool {
	return g.canWorkOverriding(emp, day, paidHours, false)
}

func (g *generator) canWorkOverriding(emp *entity.Employee, day int, paidHours float64, overrideDayOff bool) bool {
	if day < 0 || day >= domain.DaysInWeek || g.closed[day] {
		return false
	}
	st := g.state[emp.ID]
	if st == nil || st.workedDays[day] || st.blocked[day] {
		return false
	}
	if !overrideDayOff && st.reservedOff == day {
		return false
	}
	if st.daysWorked >= g.preferredDays(emp) {
		return false
	}
	return st.hours+paidHours <= emp.MaxWeeklyHours+hourEpsilon
}

func (g *generator) preferredDays(emp *entity.Employee) int {
	if emp.PreferredDays > 0 {
		return emp.PreferredDays
	}
	return g.policy.DefaultPreferredDays
}

func (g *generator) remainingHours(emp *entity.Employee) float64 {
	return emp.MaxWeeklyHours - g.state[emp.ID].hours
}

func (g *generator) remainingDays(emp *entity.Employee) int {
	return g.preferredDays(emp) - g.state[emp.ID].daysWorked
}

func (g *generator) isFullTime(emp *entity.Employee) bool {
	if emp.EmploymentType != "" {
		return emp.EmploymentType == domain.EmploymentFullTime
	}
	return emp.MaxWeeklyHours >= g.policy.FullTimeThreshold
}

// dayIndex maps a timestamp to its index within the scheduling week, or -1
// when it falls outside the week. Day boundaries resolve in the business
// timezone.
func (g *generator) dayIndex(t time.Time) int {
	day := dayFloor(t)
	for i := 0; i < domain.DaysInWeek; i++ {
		if g.week[i].Equal(day) {
			return i
		}
	}
	return -1
}

func dayFloor(t time.Time) time.Time {
	t = t.In(domain.BusinessTime())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
