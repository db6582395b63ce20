package service

import (
	"testing"
	"time"

	"github.com/storeops/shift-scheduler/internal/domain"
	"github.com/storeops/shift-scheduler/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestShiftLedgerFinalize(t *testing.T) {
	loc := domain.BusinessTime()
	start := time.Date(2025, time.June, 4, 9, 0, 0, 0, loc)

	ledger := &shiftLedger{}
	ledger.add(&entity.Shift{EmployeeID: 1, StartTime: start, EndTime: start.Add(8 * time.Hour)})
	ledger.add(&entity.Shift{EmployeeID: 2, StartTime: start, EndTime: start}) // zero length
	ledger.add(&entity.Shift{EmployeeID: 3, StartTime: start, EndTime: start.Add(-time.Hour)}) // inverted
	ledger.add(&entity.Shift{EmployeeID: 4}) // zero timestamps

	accepted, dropped := ledger.finalize()

	assert.Len(t, accepted, 1)
	assert.Equal(t, int64(1), accepted[0].EmployeeID)
	assert.Equal(t, 3, dropped)
}
