package service

import "github.com/storeops/shift-scheduler/internal/config"

// shiftPlan is a mix of shift counts for one part-time employee's
// remaining week.
type shiftPlan struct {
	Full  int
	Short int
	Gap   int
	Total float64
}

func (p shiftPlan) shifts() int {
	return p.Full + p.Short + p.Gap
}

// optimalPlan searches for the combination of full (8h), short (5.5h) and
// gap (5h) shifts that maximizes paid hours within the remaining hour and
// day allowances. The outer loop walks full counts downward so that on a
// tie the fullest mix wins; for each full/short pair the best feasible gap
// count follows arithmetically.
func optimalPlan(hours float64, days int, policy config.Policy) shiftPlan {
	var best shiftPlan
	if hours <= 0 || days <= 0 {
		return best
	}

	maxFull := int(hours / policy.FullShiftHours)
	if maxFull > days {
		maxFull = days
	}

	for full := maxFull; full >= 0; full-- {
		for short := 0; short <= days-full; short++ {
			base := float64(full)*policy.FullShiftHours + float64(short)*policy.ShortShiftHours
			if base > hours {
				break
			}
			gap := days - full - short
			if maxGap := int((hours - base) / policy.GapShiftHours); gap > maxGap {
				gap = maxGap
			}
			total := base + float64(gap)*policy.GapShiftHours
			if total > best.Total {
				best = shiftPlan{Full: full, Short: short, Gap: gap, Total: total}
			}
		}
	}
	return best
}
