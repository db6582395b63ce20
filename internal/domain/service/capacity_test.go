package service

import (
	"math/rand"
	"testing"
	"time"

	"github.com/storeops/shift-scheduler/internal/domain"
	"github.com/storeops/shift-scheduler/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// weekJune2025 is a Sunday-start week with no holidays in it.
var weekJune2025 = time.Date(2025, time.June, 1, 0, 0, 0, 0, domain.BusinessTime())

func testLocation() *entity.Location {
	return &entity.Location{ID: 1, Name: "Main Street", MaxApparelStations: 2, MaxPricingStations: 2, IsActive: true}
}

func testSettings() *entity.Settings {
	return &entity.Settings{OpenerCount: 1, CloserCount: 1, ManagerCount: 2}
}

func testGenerator(weekStart time.Time, seed int64) *generator {
	return newGenerator(testPolicy(), rand.New(rand.NewSource(seed)), testLocation(), testSettings(), weekStart)
}

func TestBuildState(t *testing.T) {
	hired := time.Date(2024, time.January, 15, 0, 0, 0, 0, domain.BusinessTime())

	t.Run("should seed paid leave hours and block the day", func(t *testing.T) {
		emp := &entity.Employee{ID: 1, JobCode: "CSH", MaxWeeklyHours: 40, IsActive: true, HireDate: hired, EmploymentType: domain.EmploymentFullTime}
		g := testGenerator(weekJune2025, 1)
		g.pools = buildRolePools([]*entity.Employee{emp})
		g.buildState([]*entity.Employee{emp},
			[]*entity.PaidLeave{{EmployeeID: 1, Date: weekJune2025.AddDate(0, 0, 2), Minutes: 240, Status: "approved"}},
			nil, nil, nil)

		st := g.state[1]
		assert.Equal(t, 4.0, st.hours)
		assert.True(t, st.blocked[domain.Tuesday])
	})

	t.Run("should ignore unapproved leave", func(t *testing.T) {
		emp := &entity.Employee{ID: 1, JobCode: "CSH", MaxWeeklyHours: 40, IsActive: true, HireDate: hired}
		g := testGenerator(weekJune2025, 1)
		g.pools = buildRolePools([]*entity.Employee{emp})
		g.buildState([]*entity.Employee{emp},
			[]*entity.PaidLeave{{EmployeeID: 1, Date: weekJune2025, Minutes: 240, Status: "pending"}},
			[]*entity.UnpaidLeave{{EmployeeID: 1, Date: weekJune2025, Status: "denied"}},
			nil, nil)

		st := g.state[1]
		assert.Zero(t, st.hours)
		assert.False(t, st.blocked[domain.Sunday])
	})

	t.Run("should block every day of an approved time off range", func(t *testing.T) {
		emp := &entity.Employee{ID: 1, JobCode: "CSH", MaxWeeklyHours: 40, IsActive: true, HireDate: hired}
		g := testGenerator(weekJune2025, 1)
		g.pools = buildRolePools([]*entity.Employee{emp})
		g.buildState([]*entity.Employee{emp}, nil, nil,
			[]*entity.TimeOffRequest{{
				EmployeeID: 1,
				StartDate:  weekJune2025.AddDate(0, 0, 3),
				EndDate:    weekJune2025.AddDate(0, 0, 5),
				Status:     "approved",
			}}, nil)

		st := g.state[1]
		assert.False(t, st.blocked[domain.Tuesday])
		assert.True(t, st.blocked[domain.Wednesday])
		assert.True(t, st.blocked[domain.Thursday])
		assert.True(t, st.blocked[domain.Friday])
		assert.False(t, st.blocked[domain.Saturday])
	})

	t.Run("should block configured non-working days", func(t *testing.T) {
		emp := &entity.Employee{ID: 1, JobCode: "CSH", MaxWeeklyHours: 40, IsActive: true, HireDate: hired,
			NonWorkingDays: []string{"Monday", "Thursday"}}
		g := testGenerator(weekJune2025, 1)
		g.pools = buildRolePools([]*entity.Employee{emp})
		g.buildState([]*entity.Employee{emp}, nil, nil, nil, nil)

		st := g.state[1]
		assert.True(t, st.blocked[domain.Monday])
		assert.True(t, st.blocked[domain.Thursday])
		assert.False(t, st.blocked[domain.Friday])
	})

	t.Run("should count pre-existing shifts as hours and worked days", func(t *testing.T) {
		emp := &entity.Employee{ID: 1, JobCode: "CSH", MaxWeeklyHours: 40, IsActive: true, HireDate: hired}
		loc := domain.BusinessTime()
		start := time.Date(2025, time.June, 7, 8, 45, 0, 0, loc) // Saturday
		existing := []*entity.Shift{{EmployeeID: 1, StartTime: start, EndTime: start.Add(8*time.Hour + 30*time.Minute)}}

		g := testGenerator(weekJune2025, 1)
		g.pools = buildRolePools([]*entity.Employee{emp})
		g.buildState([]*entity.Employee{emp}, nil, nil, nil, existing)

		st := g.state[1]
		assert.Equal(t, 8.0, st.hours)
		assert.Equal(t, 1, st.daysWorked)
		assert.True(t, st.workedDays[domain.Saturday])
	})

	t.Run("should credit paid holidays to eligible full timers only", func(t *testing.T) {
		// Week containing Independence Day 2025 (Friday July 4th).
		week := time.Date(2025, time.June, 29, 0, 0, 0, 0, domain.BusinessTime())
		fullTimer := &entity.Employee{ID: 1, JobCode: "CSH", MaxWeeklyHours: 40, IsActive: true,
			HireDate: hired, EmploymentType: domain.EmploymentFullTime}
		partTimer := &entity.Employee{ID: 2, JobCode: "CSH", MaxWeeklyHours: 20, IsActive: true,
			HireDate: hired, EmploymentType: domain.EmploymentPartTime}
		newHire := &entity.Employee{ID: 3, JobCode: "CSH", MaxWeeklyHours: 40, IsActive: true,
			HireDate: time.Date(2025, time.June, 20, 0, 0, 0, 0, domain.BusinessTime()), EmploymentType: domain.EmploymentFullTime}

		g := testGenerator(week, 1)
		roster := []*entity.Employee{fullTimer, partTimer, newHire}
		g.pools = buildRolePools(roster)
		g.buildState(roster, nil, nil, nil, nil)

		assert.Equal(t, 8.0, g.state[1].hours)
		assert.Zero(t, g.state[2].hours)
		assert.Zero(t, g.state[3].hours)
		// Paid holidays never block the day.
		require.False(t, g.state[1].blocked[domain.Friday])
	})
}

func TestCanWork(t *testing.T) {
	emp := &entity.Employee{ID: 1, JobCode: "CSH", MaxWeeklyHours: 20, PreferredDays: 3, IsActive: true}
	g := testGenerator(weekJune2025, 1)
	g.pools = buildRolePools([]*entity.Employee{emp})
	g.buildState([]*entity.Employee{emp}, nil, nil, nil, nil)

	assert.True(t, g.canWork(emp, domain.Monday, 8))

	// Hour cap.
	g.state[1].hours = 16
	assert.False(t, g.canWork(emp, domain.Monday, 8))
	assert.True(t, g.canWork(emp, domain.Monday, 4))

	// Day-count cap.
	g.state[1].hours = 0
	g.state[1].daysWorked = 3
	assert.False(t, g.canWork(emp, domain.Monday, 8))

	// Already worked that day.
	g.state[1].daysWorked = 1
	g.state[1].workedDays[domain.Monday] = true
	assert.False(t, g.canWork(emp, domain.Monday, 8))
	assert.True(t, g.canWork(emp, domain.Tuesday, 8))

	// Reserved day off holds unless overridden.
	g.state[1].reservedOff = domain.Tuesday
	assert.False(t, g.canWork(emp, domain.Tuesday, 8))
	assert.True(t, g.canWorkOverriding(emp, domain.Tuesday, 8, true))
}
