// Package mocks holds gomock mocks for the contract interfaces, generated
// with mockgen and checked in for test use.
package mocks

import (
	context "context"
	reflect "reflect"
	time "time"

	contract "github.com/storeops/shift-scheduler/internal/domain/contract"
	entity "github.com/storeops/shift-scheduler/internal/domain/entity"
	gomock "go.uber.org/mock/gomock"
)

// MockDataManager is a mock of DataManager interface.
type MockDataManager struct {
	ctrl     *gomock.Controller
	recorder *MockDataManagerMockRecorder
}

// MockDataManagerMockRecorder is the mock recorder for MockDataManager.
type MockDataManagerMockRecorder struct {
	mock *MockDataManager
}

// NewMockDataManager creates a new mock instance.
func NewMockDataManager(ctrl *gomock.Controller) *MockDataManager {
	mock := &MockDataManager{ctrl: ctrl}
	mock.recorder = &MockDataManagerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDataManager) EXPECT() *MockDataManagerMockRecorder {
	return m.recorder
}

// WithTransaction mocks base method.
func (m *MockDataManager) WithTransaction(ctx context.Context, fn func(contract.DataManager) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WithTransaction", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// WithTransaction indicates an expected call of WithTransaction.
func (mr *MockDataManagerMockRecorder) WithTransaction(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WithTransaction", reflect.TypeOf((*MockDataManager)(nil).WithTransaction), ctx, fn)
}

// Employee mocks base method.
func (m *MockDataManager) Employee() contract.EmployeeRepo {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Employee")
	ret0, _ := ret[0].(contract.EmployeeRepo)
	return ret0
}

// Employee indicates an expected call of Employee.
func (mr *MockDataManagerMockRecorder) Employee() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Employee", reflect.TypeOf((*MockDataManager)(nil).Employee))
}

// Shift mocks base method.
func (m *MockDataManager) Shift() contract.ShiftRepo {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Shift")
	ret0, _ := ret[0].(contract.ShiftRepo)
	return ret0
}

// Shift indicates an expected call of Shift.
func (mr *MockDataManagerMockRecorder) Shift() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Shift", reflect.TypeOf((*MockDataManager)(nil).Shift))
}

// Leave mocks base method.
func (m *MockDataManager) Leave() contract.LeaveRepo {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Leave")
	ret0, _ := ret[0].(contract.LeaveRepo)
	return ret0
}

// Leave indicates an expected call of Leave.
func (mr *MockDataManagerMockRecorder) Leave() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Leave", reflect.TypeOf((*MockDataManager)(nil).Leave))
}

// TimeOff mocks base method.
func (m *MockDataManager) TimeOff() contract.TimeOffRepo {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TimeOff")
	ret0, _ := ret[0].(contract.TimeOffRepo)
	return ret0
}

// TimeOff indicates an expected call of TimeOff.
func (mr *MockDataManagerMockRecorder) TimeOff() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TimeOff", reflect.TypeOf((*MockDataManager)(nil).TimeOff))
}

// Settings mocks base method.
func (m *MockDataManager) Settings() contract.SettingsRepo {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Settings")
	ret0, _ := ret[0].(contract.SettingsRepo)
	return ret0
}

// Settings indicates an expected call of Settings.
func (mr *MockDataManagerMockRecorder) Settings() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Settings", reflect.TypeOf((*MockDataManager)(nil).Settings))
}

// Location mocks base method.
func (m *MockDataManager) Location() contract.LocationRepo {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Location")
	ret0, _ := ret[0].(contract.LocationRepo)
	return ret0
}

// Location indicates an expected call of Location.
func (mr *MockDataManagerMockRecorder) Location() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Location", reflect.TypeOf((*MockDataManager)(nil).Location))
}

// MockEmployeeRepo is a mock of EmployeeRepo interface.
type MockEmployeeRepo struct {
	ctrl     *gomock.Controller
	recorder *MockEmployeeRepoMockRecorder
}

// MockEmployeeRepoMockRecorder is the mock recorder for MockEmployeeRepo.
type MockEmployeeRepoMockRecorder struct {
	mock *MockEmployeeRepo
}

// NewMockEmployeeRepo creates a new mock instance.
func NewMockEmployeeRepo(ctrl *gomock.Controller) *MockEmployeeRepo {
	mock := &MockEmployeeRepo{ctrl: ctrl}
	mock.recorder = &MockEmployeeRepoMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEmployeeRepo) EXPECT() *MockEmployeeRepoMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockEmployeeRepo) Create(employee *entity.Employee) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", employee)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockEmployeeRepoMockRecorder) Create(employee any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockEmployeeRepo)(nil).Create), employee)
}

// GetByID mocks base method.
func (m *MockEmployeeRepo) GetByID(id int64) (*entity.Employee, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id)
	ret0, _ := ret[0].(*entity.Employee)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockEmployeeRepoMockRecorder) GetByID(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockEmployeeRepo)(nil).GetByID), id)
}

// GetActiveByLocation mocks base method.
func (m *MockEmployeeRepo) GetActiveByLocation(locationID int64) ([]*entity.Employee, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetActiveByLocation", locationID)
	ret0, _ := ret[0].([]*entity.Employee)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetActiveByLocation indicates an expected call of GetActiveByLocation.
func (mr *MockEmployeeRepoMockRecorder) GetActiveByLocation(locationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetActiveByLocation", reflect.TypeOf((*MockEmployeeRepo)(nil).GetActiveByLocation), locationID)
}

// MockShiftRepo is a mock of ShiftRepo interface.
type MockShiftRepo struct {
	ctrl     *gomock.Controller
	recorder *MockShiftRepoMockRecorder
}

// MockShiftRepoMockRecorder is the mock recorder for MockShiftRepo.
type MockShiftRepoMockRecorder struct {
	mock *MockShiftRepo
}

// NewMockShiftRepo creates a new mock instance.
func NewMockShiftRepo(ctrl *gomock.Controller) *MockShiftRepo {
	mock := &MockShiftRepo{ctrl: ctrl}
	mock.recorder = &MockShiftRepoMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockShiftRepo) EXPECT() *MockShiftRepoMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockShiftRepo) Create(shift *entity.Shift) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", shift)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockShiftRepoMockRecorder) Create(shift any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockShiftRepo)(nil).Create), shift)
}

// CreateBatch mocks base method.
func (m *MockShiftRepo) CreateBatch(shifts []*entity.Shift) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateBatch", shifts)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateBatch indicates an expected call of CreateBatch.
func (mr *MockShiftRepoMockRecorder) CreateBatch(shifts any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateBatch", reflect.TypeOf((*MockShiftRepo)(nil).CreateBatch), shifts)
}

// GetByRange mocks base method.
func (m *MockShiftRepo) GetByRange(locationID int64, start, end time.Time) ([]*entity.Shift, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByRange", locationID, start, end)
	ret0, _ := ret[0].([]*entity.Shift)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByRange indicates an expected call of GetByRange.
func (mr *MockShiftRepoMockRecorder) GetByRange(locationID, start, end any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByRange", reflect.TypeOf((*MockShiftRepo)(nil).GetByRange), locationID, start, end)
}

// DeleteRange mocks base method.
func (m *MockShiftRepo) DeleteRange(locationID int64, start, end time.Time) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteRange", locationID, start, end)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteRange indicates an expected call of DeleteRange.
func (mr *MockShiftRepoMockRecorder) DeleteRange(locationID, start, end any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteRange", reflect.TypeOf((*MockShiftRepo)(nil).DeleteRange), locationID, start, end)
}

// MockLeaveRepo is a mock of LeaveRepo interface.
type MockLeaveRepo struct {
	ctrl     *gomock.Controller
	recorder *MockLeaveRepoMockRecorder
}

// MockLeaveRepoMockRecorder is the mock recorder for MockLeaveRepo.
type MockLeaveRepoMockRecorder struct {
	mock *MockLeaveRepo
}

// NewMockLeaveRepo creates a new mock instance.
func NewMockLeaveRepo(ctrl *gomock.Controller) *MockLeaveRepo {
	mock := &MockLeaveRepo{ctrl: ctrl}
	mock.recorder = &MockLeaveRepoMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLeaveRepo) EXPECT() *MockLeaveRepoMockRecorder {
	return m.recorder
}

// CreatePaid mocks base method.
func (m *MockLeaveRepo) CreatePaid(leave *entity.PaidLeave) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreatePaid", leave)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreatePaid indicates an expected call of CreatePaid.
func (mr *MockLeaveRepoMockRecorder) CreatePaid(leave any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreatePaid", reflect.TypeOf((*MockLeaveRepo)(nil).CreatePaid), leave)
}

// CreateUnpaid mocks base method.
func (m *MockLeaveRepo) CreateUnpaid(leave *entity.UnpaidLeave) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateUnpaid", leave)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateUnpaid indicates an expected call of CreateUnpaid.
func (mr *MockLeaveRepoMockRecorder) CreateUnpaid(leave any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateUnpaid", reflect.TypeOf((*MockLeaveRepo)(nil).CreateUnpaid), leave)
}

// GetPaidByRange mocks base method.
func (m *MockLeaveRepo) GetPaidByRange(start, end time.Time) ([]*entity.PaidLeave, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetPaidByRange", start, end)
	ret0, _ := ret[0].([]*entity.PaidLeave)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetPaidByRange indicates an expected call of GetPaidByRange.
func (mr *MockLeaveRepoMockRecorder) GetPaidByRange(start, end any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetPaidByRange", reflect.TypeOf((*MockLeaveRepo)(nil).GetPaidByRange), start, end)
}

// GetUnpaidByRange mocks base method.
func (m *MockLeaveRepo) GetUnpaidByRange(start, end time.Time) ([]*entity.UnpaidLeave, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUnpaidByRange", start, end)
	ret0, _ := ret[0].([]*entity.UnpaidLeave)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUnpaidByRange indicates an expected call of GetUnpaidByRange.
func (mr *MockLeaveRepoMockRecorder) GetUnpaidByRange(start, end any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUnpaidByRange", reflect.TypeOf((*MockLeaveRepo)(nil).GetUnpaidByRange), start, end)
}

// MockTimeOffRepo is a mock of TimeOffRepo interface.
type MockTimeOffRepo struct {
	ctrl     *gomock.Controller
	recorder *MockTimeOffRepoMockRecorder
}

// MockTimeOffRepoMockRecorder is the mock recorder for MockTimeOffRepo.
type MockTimeOffRepoMockRecorder struct {
	mock *MockTimeOffRepo
}

// NewMockTimeOffRepo creates a new mock instance.
func NewMockTimeOffRepo(ctrl *gomock.Controller) *MockTimeOffRepo {
	mock := &MockTimeOffRepo{ctrl: ctrl}
	mock.recorder = &MockTimeOffRepoMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTimeOffRepo) EXPECT() *MockTimeOffRepoMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockTimeOffRepo) Create(request *entity.TimeOffRequest) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", request)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockTimeOffRepoMockRecorder) Create(request any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockTimeOffRepo)(nil).Create), request)
}

// GetApprovedByRange mocks base method.
func (m *MockTimeOffRepo) GetApprovedByRange(start, end time.Time) ([]*entity.TimeOffRequest, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetApprovedByRange", start, end)
	ret0, _ := ret[0].([]*entity.TimeOffRequest)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetApprovedByRange indicates an expected call of GetApprovedByRange.
func (mr *MockTimeOffRepoMockRecorder) GetApprovedByRange(start, end any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetApprovedByRange", reflect.TypeOf((*MockTimeOffRepo)(nil).GetApprovedByRange), start, end)
}

// MockSettingsRepo is a mock of SettingsRepo interface.
type MockSettingsRepo struct {
	ctrl     *gomock.Controller
	recorder *MockSettingsRepoMockRecorder
}

// MockSettingsRepoMockRecorder is the mock recorder for MockSettingsRepo.
type MockSettingsRepoMockRecorder struct {
	mock *MockSettingsRepo
}

// NewMockSettingsRepo creates a new mock instance.
func NewMockSettingsRepo(ctrl *gomock.Controller) *MockSettingsRepo {
	mock := &MockSettingsRepo{ctrl: ctrl}
	mock.recorder = &MockSettingsRepoMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSettingsRepo) EXPECT() *MockSettingsRepoMockRecorder {
	return m.recorder
}

// Get mocks base method.
func (m *MockSettingsRepo) Get() (*entity.Settings, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get")
	ret0, _ := ret[0].(*entity.Settings)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockSettingsRepoMockRecorder) Get() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockSettingsRepo)(nil).Get))
}

// Save mocks base method.
func (m *MockSettingsRepo) Save(settings *entity.Settings) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Save", settings)
	ret0, _ := ret[0].(error)
	return ret0
}

// Save indicates an expected call of Save.
func (mr *MockSettingsRepoMockRecorder) Save(settings any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Save", reflect.TypeOf((*MockSettingsRepo)(nil).Save), settings)
}

// MockLocationRepo is a mock of LocationRepo interface.
type MockLocationRepo struct {
	ctrl     *gomock.Controller
	recorder *MockLocationRepoMockRecorder
}

// MockLocationRepoMockRecorder is the mock recorder for MockLocationRepo.
type MockLocationRepoMockRecorder struct {
	mock *MockLocationRepo
}

// NewMockLocationRepo creates a new mock instance.
func NewMockLocationRepo(ctrl *gomock.Controller) *MockLocationRepo {
	mock := &MockLocationRepo{ctrl: ctrl}
	mock.recorder = &MockLocationRepoMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLocationRepo) EXPECT() *MockLocationRepoMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockLocationRepo) Create(location *entity.Location) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", location)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockLocationRepoMockRecorder) Create(location any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockLocationRepo)(nil).Create), location)
}

// GetByID mocks base method.
func (m *MockLocationRepo) GetByID(id int64) (*entity.Location, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id)
	ret0, _ := ret[0].(*entity.Location)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockLocationRepoMockRecorder) GetByID(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockLocationRepo)(nil).GetByID), id)
}

// GetActive mocks base method.
func (m *MockLocationRepo) GetActive() ([]*entity.Location, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetActive")
	ret0, _ := ret[0].([]*entity.Location)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetActive indicates an expected call of GetActive.
func (mr *MockLocationRepoMockRecorder) GetActive() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetActive", reflect.TypeOf((*MockLocationRepo)(nil).GetActive))
}
