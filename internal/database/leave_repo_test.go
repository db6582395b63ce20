package database

import (
	"testing"
	"time"

	"github.com/storeops/shift-scheduler/internal/domain"
	"github.com/storeops/shift-scheduler/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaveRepo_PaidLeave(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	location := createTestLocation(t, db)
	employee := createTestEmployee(t, db, location.ID)
	leaveRepo := newLeaveRepo(db.conn)

	weekStart := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	inWeek := &entity.PaidLeave{
		EmployeeID: employee.ID,
		Date:       weekStart.AddDate(0, 0, 2),
		Minutes:    480,
		Status:     domain.LeaveStatusApproved,
	}
	outOfWeek := &entity.PaidLeave{
		EmployeeID: employee.ID,
		Date:       weekStart.AddDate(0, 0, 10),
		Minutes:    240,
		Status:     domain.LeaveStatusApproved,
	}
	require.NoError(t, leaveRepo.CreatePaid(inWeek))
	require.NoError(t, leaveRepo.CreatePaid(outOfWeek))
	assert.NotZero(t, inWeek.ID)

	got, err := leaveRepo.GetPaidByRange(weekStart, weekStart.AddDate(0, 0, 7))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, inWeek.ID, got[0].ID)
	assert.Equal(t, 480, got[0].Minutes)
	assert.Equal(t, domain.LeaveStatusApproved, got[0].Status)
}

func TestLeaveRepo_UnpaidLeave(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	location := createTestLocation(t, db)
	employee := createTestEmployee(t, db, location.ID)
	leaveRepo := newLeaveRepo(db.conn)

	weekStart := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	leave := &entity.UnpaidLeave{
		EmployeeID: employee.ID,
		Date:       weekStart.AddDate(0, 0, 4),
		Status:     "pending",
	}
	require.NoError(t, leaveRepo.CreateUnpaid(leave))

	// The range query does not filter by status; callers do.
	got, err := leaveRepo.GetUnpaidByRange(weekStart, weekStart.AddDate(0, 0, 7))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "pending", got[0].Status)
}
