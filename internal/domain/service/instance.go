package service

import (
	"github.com/storeops/shift-scheduler/internal/config"
	"github.com/storeops/shift-scheduler/internal/domain/contract"
)

type Instance struct {
	Schedule contract.ScheduleService
}

func NewInstance(dm contract.DataManager, policy config.Policy) *Instance {
	return &Instance{
		Schedule: newSchedule(dm, policy),
	}
}
