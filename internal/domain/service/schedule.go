package service

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/storeops/shift-scheduler/internal/config"
	"github.com/storeops/shift-scheduler/internal/domain"
	"github.com/storeops/shift-scheduler/internal/domain/contract"
	"github.com/storeops/shift-scheduler/internal/domain/entity"
	"github.com/storeops/shift-scheduler/internal/domain/holiday"
)

type scheduleService struct {
	dm      contract.DataManager
	policy  config.Policy
	newRand func() *rand.Rand
}

func newSchedule(dm contract.DataManager, policy config.Policy) *scheduleService {
	return &scheduleService{
		dm:     dm,
		policy: policy,
		// Reseeded per run on purpose: two runs over the same inputs
		// should produce different but equally valid schedules.
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// GenerateSchedule builds a full week of shifts for one location and
// persists the accepted batch. Coverage shortfalls are logged, never
// returned as errors; only repository failures propagate.
func (s *scheduleService) GenerateSchedule(ctx context.Context, weekStart time.Time, locationID int64) (*entity.ScheduleRun, error) {
	runID := uuid.NewString()
	weekStart = startOfWeek(weekStart)
	weekEnd := weekStart.AddDate(0, 0, domain.DaysInWeek)

	location, err := s.resolveLocation(locationID)
	if err != nil {
		return nil, err
	}

	employees, err := s.dm.Employee().GetActiveByLocation(location.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	settings, err := s.dm.Settings().Get()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if settings == nil {
		settings = &entity.Settings{OpenerCount: 1, CloserCount: 1, ManagerCount: 2}
	}

	paid, err := s.dm.Leave().GetPaidByRange(weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load paid leave: %w", err)
	}
	unpaid, err := s.dm.Leave().GetUnpaidByRange(weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load unpaid leave: %w", err)
	}
	timeOff, err := s.dm.TimeOff().GetApprovedByRange(weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load time off: %w", err)
	}
	existing, err := s.dm.Shift().GetByRange(location.ID, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing shifts: %w", err)
	}

	gen := newGenerator(s.policy, s.newRand(), location, settings, weekStart)
	gen.prepare(employees, paid, unpaid, timeOff, existing)
	gen.run()

	shifts, dropped := gen.ledger.finalize()
	if len(shifts) > 0 {
		err = s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
			return dm.Shift().CreateBatch(shifts)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to persist schedule: %w", err)
		}
	}

	log.Printf("Run %s: scheduled %d shifts for week of %s (%d dropped)",
		runID, len(shifts), weekStart.Format("2006-01-02"), dropped)

	return &entity.ScheduleRun{
		RunID:      runID,
		WeekStart:  weekStart,
		LocationID: location.ID,
		Shifts:     shifts,
		Dropped:    dropped,
	}, nil
}

// ClearWeek wipes a week's persisted shifts so a fresh run can replace
// them. The generator itself never deletes.
func (s *scheduleService) ClearWeek(ctx context.Context, weekStart time.Time, locationID int64) (int64, error) {
	location, err := s.resolveLocation(locationID)
	if err != nil {
		return 0, err
	}
	weekStart = startOfWeek(weekStart)
	return s.dm.Shift().DeleteRange(location.ID, weekStart, weekStart.AddDate(0, 0, domain.DaysInWeek))
}

func (s *scheduleService) resolveLocation(locationID int64) (*entity.Location, error) {
	if locationID != 0 {
		location, err := s.dm.Location().GetByID(locationID)
		if err != nil {
			return nil, fmt.Errorf("failed to load location: %w", err)
		}
		if location == nil || !location.IsActive {
			return nil, fmt.Errorf("location %d is not active", locationID)
		}
		return location, nil
	}

	locations, err := s.dm.Location().GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to load locations: %w", err)
	}
	if len(locations) == 0 {
		return nil, fmt.Errorf("no active location configured")
	}
	return locations[0], nil
}

// startOfWeek rolls a date back to its Sunday at business-local midnight,
// so day indices line up with time.Weekday.
func startOfWeek(t time.Time) time.Time {
	day := dayFloor(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// generator holds all shared state for one scheduling run. It is built
// fresh per invocation and discarded after commit.
type generator struct {
	policy   config.Policy
	rng      *rand.Rand
	location *entity.Location
	settings *entity.Settings
	week     [domain.DaysInWeek]time.Time
	windows  [domain.DaysInWeek]dayWindows
	closed   [domain.DaysInWeek]bool
	state    map[int64]*employeeState
	byID     map[int64]*entity.Employee
	pools    *rolePools
	boards   [domain.DaysInWeek]*dayBoard
	ledger   *shiftLedger
}

func newGenerator(policy config.Policy, rng *rand.Rand, location *entity.Location, settings *entity.Settings, weekStart time.Time) *generator {
	g := &generator{
		policy:   policy,
		rng:      rng,
		location: location,
		settings: settings,
		week:     domain.WeekDates(weekStart),
		ledger:   &shiftLedger{},
	}
	for day := 0; day < domain.DaysInWeek; day++ {
		g.windows[day] = buildDayWindows(g.week[day], policy)
		g.closed[day] = holiday.IsClosed(g.week[day])
		g.boards[day] = newDayBoard()
	}
	return g
}

// prepare builds the static run state: role pools, seeded hour/day state,
// pre-existing coverage and the leadership variety days off.
func (g *generator) prepare(
	employees []*entity.Employee,
	paid []*entity.PaidLeave,
	unpaid []*entity.UnpaidLeave,
	timeOff []*entity.TimeOffRequest,
	existing []*entity.Shift,
) {
	g.pools = buildRolePools(employees)
	g.buildState(employees, paid, unpaid, timeOff, existing)
	g.seedBoards(existing)
	g.reserveLeadershipDaysOff()
}

// run executes the allocation phases in their fixed order.
func (g *generator) run() {
	g.leadershipPassOne()
	g.leadershipPassTwo()
	g.leadershipFallback()
	g.productionMorning()
	g.productionPeakBoost()
	g.productionAfternoon()
	g.greeterRounds()
	g.cashierRounds()
	g.generalFill()
	g.maximizeHours()
	g.remainderFill()
}

// openDays returns the scheduling days the business operates, in calendar
// order.
func (g *generator) openDays() []int {
	days := make([]int, 0, domain.DaysInWeek)
	for day := 0; day < domain.DaysInWeek; day++ {
		if !g.closed[day] {
			days = append(days, day)
		}
	}
	return days
}

// shuffledDays returns the open days in random order, for shift variety.
func (g *generator) shuffledDays() []int {
	days := g.openDays()
	g.rng.Shuffle(len(days), func(i, j int) { days[i], days[j] = days[j], days[i] })
	return days
}

// saturdayFirstDays orders the open days busiest-first: Saturday, then the
// rest of the trading week, Sunday last.
func (g *generator) saturdayFirstDays() []int {
	order := []int{domain.Saturday, domain.Friday, domain.Monday, domain.Tuesday, domain.Wednesday, domain.Thursday, domain.Sunday}
	days := make([]int, 0, domain.DaysInWeek)
	for _, day := range order {
		if !g.closed[day] {
			days = append(days, day)
		}
	}
	return days
}

// shuffled returns a randomized copy of a pool.
func (g *generator) shuffled(pool []*entity.Employee) []*entity.Employee {
	out := make([]*entity.Employee, len(pool))
	copy(out, pool)
	g.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// fullTimeFirst returns the pool with full-time employees ahead of
// part-time, shuffled within each group.
func (g *generator) fullTimeFirst(pool []*entity.Employee) []*entity.Employee {
	var ft, pt []*entity.Employee
	for _, emp := range pool {
		if g.isFullTime(emp) {
			ft = append(ft, emp)
		} else {
			pt = append(pt, emp)
		}
	}
	return append(g.shuffled(ft), g.shuffled(pt)...)
}

// pickAvailable returns the first candidate who can take paidHours on day.
func (g *generator) pickAvailable(candidates []*entity.Employee, day int, paidHours float64) *entity.Employee {
	for _, emp := range candidates {
		if g.canWork(emp, day, paidHours) {
			return emp
		}
	}
	return nil
}

// kindFull selects "any full-length window"; the concrete slot is chosen
// per day.
const kindFull shiftKind = "full"

// windowForKind resolves an abstract shift choice to a concrete window on
// day, randomizing among interchangeable slots.
func (g *generator) windowForKind(day int, kind shiftKind) shiftWindow {
	w := g.windows[day]
	switch kind {
	case kindFull:
		full := w.fullShifts()
		return full[g.rng.Intn(len(full))]
	case kindOpener:
		return w.Opener
	case kindCloser:
		return w.Closer
	case kindShort:
		return w.Shorts[g.rng.Intn(len(w.Shorts))]
	case kindGap:
		return w.Gaps[g.rng.Intn(len(w.Gaps))]
	case kindAfternoon:
		return w.Afternoon
	default:
		return w.Mids[g.rng.Intn(len(w.Mids))]
	}
}

// nextShiftKind decides what the employee's next shift should be:
// leadership and full-timers take full shifts only, part-timers follow the
// mix optimizer's current plan.
func (g *generator) nextShiftKind(emp *entity.Employee) (shiftKind, bool) {
	if g.remainingDays(emp) <= 0 {
		return "", false
	}
	hours := g.remainingHours(emp)

	if leadershipRole(classifyJobCode(emp.JobCode)) {
		if hours+hourEpsilon >= g.policy.FullShiftHours {
			return kindFull, true
		}
		return "", false
	}

	if g.isFullTime(emp) {
		if hours+hourEpsilon >= g.policy.FullShiftHours {
			return kindFull, true
		}
		return "", false
	}

	plan := optimalPlan(hours, g.remainingDays(emp), g.policy)
	switch {
	case plan.Full > 0:
		return kindFull, true
	case plan.Short > 0:
		return kindShort, true
	case plan.Gap > 0:
		return kindGap, true
	default:
		return "", false
	}
}
