package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Policy holds every numeric scheduling constant in one place so the phases
// cannot drift apart on shift lengths or eligibility windows. Values are
// paid hours unless noted.
type Policy struct {
	FullShiftHours       float64 `yaml:"full_shift_hours"`
	FullShiftClockHours  float64 `yaml:"full_shift_clock_hours"`
	ShortShiftHours      float64 `yaml:"short_shift_hours"`
	GapShiftHours        float64 `yaml:"gap_shift_hours"`
	AfternoonShiftHours  float64 `yaml:"afternoon_shift_hours"`
	MealDeductionMinimum float64 `yaml:"meal_deduction_minimum"` // clock hours
	MealDeductionHours   float64 `yaml:"meal_deduction_hours"`
	FullTimeThreshold    float64 `yaml:"full_time_threshold"` // weekly hours
	PaidHolidayHours     float64 `yaml:"paid_holiday_hours"`
	DefaultPreferredDays int     `yaml:"default_preferred_days"`
	MaxFillIterations    int     `yaml:"max_fill_iterations"`
}

// DefaultPolicy returns the production constants.
func DefaultPolicy() Policy {
	return Policy{
		FullShiftHours:       8,
		FullShiftClockHours:  8.5,
		ShortShiftHours:      5.5,
		GapShiftHours:        5,
		AfternoonShiftHours:  4,
		MealDeductionMinimum: 6,
		MealDeductionHours:   0.5,
		FullTimeThreshold:    32,
		PaidHolidayHours:     8,
		DefaultPreferredDays: 5,
		MaxFillIterations:    10,
	}
}

// LoadPolicy reads overrides from a YAML file on top of the defaults. An
// empty path means defaults only.
func LoadPolicy(path string) (Policy, error) {
	policy := DefaultPolicy()
	if path == "" {
		return policy, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return policy, fmt.Errorf("failed to read policy file: %w", err)
	}
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return policy, fmt.Errorf("failed to parse policy file: %w", err)
	}
	return policy, nil
}
