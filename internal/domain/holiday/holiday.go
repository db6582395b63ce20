// Package holiday computes the business holiday calendar: days the stores
// are closed outright and days that credit paid hours to eligible
// full-time employees. Everything here is a pure function of the date.
package holiday

import (
	"time"

	"github.com/storeops/shift-scheduler/internal/domain"
)

// Holiday is a single calendar date with its classification. Closed
// holidays forbid scheduling; paid holidays only pre-credit hours.
type Holiday struct {
	Date   time.Time
	Name   string
	Closed bool
}

// PaidHolidayTenureDays is the minimum service before a paid holiday pays.
const PaidHolidayTenureDays = 30

// ClosedHolidays returns the dates the stores do not operate: Easter
// Sunday plus the two fixed closures.
func ClosedHolidays(year int) []Holiday {
	loc := domain.BusinessTime()
	return []Holiday{
		{Date: easterSunday(year, loc), Name: "Easter Sunday", Closed: true},
		{Date: time.Date(year, time.December, 25, 0, 0, 0, 0, loc), Name: "Christmas Day", Closed: true},
		{Date: time.Date(year, time.January, 1, 0, 0, 0, 0, loc), Name: "New Year's Day", Closed: true},
	}
}

// PaidHolidays returns the dates that credit 8 hours to eligible
// employees. Paid holidays never block scheduling.
func PaidHolidays(year int) []Holiday {
	loc := domain.BusinessTime()
	return []Holiday{
		{Date: time.Date(year, time.January, 1, 0, 0, 0, 0, loc), Name: "New Year's Day"},
		{Date: lastWeekday(year, time.May, time.Monday, loc), Name: "Memorial Day"},
		{Date: time.Date(year, time.July, 4, 0, 0, 0, 0, loc), Name: "Independence Day"},
		{Date: nthWeekday(year, time.September, time.Monday, 1, loc), Name: "Labor Day"},
		{Date: nthWeekday(year, time.November, time.Thursday, 4, loc), Name: "Thanksgiving Day"},
		{Date: time.Date(year, time.December, 25, 0, 0, 0, 0, loc), Name: "Christmas Day"},
	}
}

// Lookup reports whether date falls on any holiday (closed or paid).
func Lookup(date time.Time) (Holiday, bool) {
	for _, h := range ClosedHolidays(date.Year()) {
		if sameDay(h.Date, date) {
			return h, true
		}
	}
	for _, h := range PaidHolidays(date.Year()) {
		if sameDay(h.Date, date) {
			return h, true
		}
	}
	return Holiday{}, false
}

// IsClosed reports whether the business is shut on date.
func IsClosed(date time.Time) bool {
	for _, h := range ClosedHolidays(date.Year()) {
		if sameDay(h.Date, date) {
			return true
		}
	}
	return false
}

// EligibleForPaidHoliday applies the pay rule: full-time employees with at
// least PaidHolidayTenureDays of service as of the holiday.
func EligibleForPaidHoliday(hireDate, holidayDate time.Time, employmentType string) bool {
	if employmentType != domain.EmploymentFullTime {
		return false
	}
	if hireDate.IsZero() {
		return false
	}
	return !hireDate.AddDate(0, 0, PaidHolidayTenureDays).After(holidayDate)
}

func sameDay(a, b time.Time) bool {
	loc := domain.BusinessTime()
	a, b = a.In(loc), b.In(loc)
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// easterSunday uses the anonymous Gregorian computus.
func easterSunday(year int, loc *time.Location) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
}

// nthWeekday returns the nth given weekday of the month (n starting at 1).
func nthWeekday(year int, month time.Month, weekday time.Weekday, n int, loc *time.Location) time.Time {
	t := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	offset := (int(weekday) - int(t.Weekday()) + 7) % 7
	return t.AddDate(0, 0, offset+(n-1)*7)
}

// lastWeekday returns the final given weekday of the month.
func lastWeekday(year int, month time.Month, weekday time.Weekday, loc *time.Location) time.Time {
	t := time.Date(year, month+1, 1, 0, 0, 0, 0, loc).AddDate(0, 0, -1)
	offset := (int(t.Weekday()) - int(weekday) + 7) % 7
	return t.AddDate(0, 0, -offset)
}
