package domain

import (
	"log"
	"os"
	"sync"
	"time"
)

// DefaultTimezone is the fixed business timezone. Every shift boundary and
// every day-of-week decision resolves here, never in the server timezone.
const DefaultTimezone = "America/Chicago"

var (
	tzOnce sync.Once
	tzLoc  *time.Location
)

// BusinessTime returns the business-local *time.Location. The zone can be
// overridden with SCHEDULE_TIMEZONE; a bad value falls back to UTC with a
// logged warning rather than failing the run.
func BusinessTime() *time.Location {
	tzOnce.Do(func() {
		name := os.Getenv("SCHEDULE_TIMEZONE")
		if name == "" {
			name = DefaultTimezone
		}
		loc, err := time.LoadLocation(name)
		if err != nil {
			log.Printf("Invalid timezone %q, falling back to UTC: %v", name, err)
			loc = time.UTC
		}
		tzLoc = loc
	})
	return tzLoc
}
