package database

import (
	"testing"
	"time"

	"github.com/storeops/shift-scheduler/internal/domain"
	"github.com/storeops/shift-scheduler/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeOffRepo_GetApprovedByRange(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	location := createTestLocation(t, db)
	employee := createTestEmployee(t, db, location.ID)
	timeOffRepo := newTimeOffRepo(db.conn)

	weekStart := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	weekEnd := weekStart.AddDate(0, 0, 7)

	requests := []*entity.TimeOffRequest{
		// Straddles the start of the week: still overlaps.
		{EmployeeID: employee.ID, StartDate: weekStart.AddDate(0, 0, -2), EndDate: weekStart.AddDate(0, 0, 1), Status: domain.LeaveStatusApproved},
		// Fully inside the week.
		{EmployeeID: employee.ID, StartDate: weekStart.AddDate(0, 0, 3), EndDate: weekStart.AddDate(0, 0, 4), Status: domain.LeaveStatusApproved},
		// Overlapping but not approved.
		{EmployeeID: employee.ID, StartDate: weekStart.AddDate(0, 0, 2), EndDate: weekStart.AddDate(0, 0, 2), Status: "pending"},
		// Approved but entirely after the week.
		{EmployeeID: employee.ID, StartDate: weekEnd.AddDate(0, 0, 1), EndDate: weekEnd.AddDate(0, 0, 3), Status: domain.LeaveStatusApproved},
	}
	for _, r := range requests {
		require.NoError(t, timeOffRepo.Create(r))
	}

	got, err := timeOffRepo.GetApprovedByRange(weekStart, weekEnd)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, requests[0].ID, got[0].ID)
	assert.Equal(t, requests[1].ID, got[1].ID)
}
