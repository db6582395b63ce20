package service

import (
	"testing"

	"github.com/storeops/shift-scheduler/internal/config"

	"github.com/storeops/shift-scheduler/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager  *mocks.MockDataManager
	mockEmployeeRepo *mocks.MockEmployeeRepo
	mockShiftRepo    *mocks.MockShiftRepo
	mockLeaveRepo    *mocks.MockLeaveRepo
	mockTimeOffRepo  *mocks.MockTimeOffRepo
	mockSettingsRepo *mocks.MockSettingsRepo
	mockLocationRepo *mocks.MockLocationRepo
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	employeeRepo := mocks.NewMockEmployeeRepo(ctrl)
	dm.EXPECT().Employee().Return(employeeRepo).AnyTimes()

	shiftRepo := mocks.NewMockShiftRepo(ctrl)
	dm.EXPECT().Shift().Return(shiftRepo).AnyTimes()

	leaveRepo := mocks.NewMockLeaveRepo(ctrl)
	dm.EXPECT().Leave().Return(leaveRepo).AnyTimes()

	timeOffRepo := mocks.NewMockTimeOffRepo(ctrl)
	dm.EXPECT().TimeOff().Return(timeOffRepo).AnyTimes()

	settingsRepo := mocks.NewMockSettingsRepo(ctrl)
	dm.EXPECT().Settings().Return(settingsRepo).AnyTimes()

	locationRepo := mocks.NewMockLocationRepo(ctrl)
	dm.EXPECT().Location().Return(locationRepo).AnyTimes()

	m = allMocks{
		mockDataManager:  dm,
		mockEmployeeRepo: employeeRepo,
		mockShiftRepo:    shiftRepo,
		mockLeaveRepo:    leaveRepo,
		mockTimeOffRepo:  timeOffRepo,
		mockSettingsRepo: settingsRepo,
		mockLocationRepo: locationRepo,
	}

	// validate service creation
	scheduleService := newSchedule(dm, testPolicy())
	require.NotNil(t, scheduleService)

	return
}

func testPolicy() config.Policy {
	return config.DefaultPolicy()
}
