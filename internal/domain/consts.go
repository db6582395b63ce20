package domain

import "time"

// Day indices used throughout the scheduler (0=Sunday .. 6=Saturday),
// matching time.Weekday.
const (
	Sunday    = 0
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
)

// WeekdayNames maps day indices to their English names.
var WeekdayNames = map[int]string{
	Sunday:    "Sunday",
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
}

// WeekdayIndex maps weekday names (as stored on employee records) to day
// indices. Lookup is case-sensitive; records are normalized on write.
var WeekdayIndex = map[string]int{
	"Sunday":    Sunday,
	"Monday":    Monday,
	"Tuesday":   Tuesday,
	"Wednesday": Wednesday,
	"Thursday":  Thursday,
	"Friday":    Friday,
	"Saturday":  Saturday,
}

// Role is a canonical job role after job-code classification.
type Role string

const (
	RoleStoreManager     Role = "store_manager"
	RoleAssistantManager Role = "assistant_manager"
	RoleTeamLead         Role = "team_lead"
	RoleApparelProcessor Role = "apparel_processor"
	RoleDonationPricer   Role = "donation_pricer"
	RoleDonorGreeter     Role = "donor_greeter"
	RoleCashier          Role = "cashier"
	RoleUnclassified     Role = ""
)

// Employment types as stored on employee records. Full time starts at 32
// scheduled hours per week.
const (
	EmploymentFullTime = "full_time"
	EmploymentPartTime = "part_time"
)

// LeaveStatusApproved is the only status that blocks scheduling.
const LeaveStatusApproved = "approved"

// DaysInWeek is the scheduling horizon: one calendar week.
const DaysInWeek = 7

// DefaultPreferredDays applies when an employee record has no preferred
// working-day count.
const DefaultPreferredDays = 5

// WeekDates returns the seven local calendar days starting at weekStart,
// normalized to midnight in the business timezone.
func WeekDates(weekStart time.Time) [DaysInWeek]time.Time {
	loc := BusinessTime()
	start := time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day(), 0, 0, 0, 0, loc)
	var days [DaysInWeek]time.Time
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}
