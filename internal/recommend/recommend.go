// Package recommend derives human-readable guidance from aggregated
// summaries using threshold rules. Each rule list is ordered by urgency and
// truncated to a fixed cap, so safety-relevant guidance can never be pushed
// out by generic filler tips appended at the end.
package recommend

import (
	"fmt"
	"sort"

	"github.com/ppiankov/fieldlens/internal/model"
)

// Result caps per recommender
const (
	maxPunchTips    = 5
	maxDailyLogTips = 4
	maxRecovery     = 6
)

// PunchList produces guidance for a generated punch list, most urgent first
func PunchList(items []model.PunchItem, byTrade, byPriority map[string]int) []string {
	var tips []string

	// Critical-priority presence always leads
	if n := byPriority["Critical"]; n > 0 {
		tips = append(tips, fmt.Sprintf("%d critical item(s) found - address these before any other punch work", n))
	}

	// Dominant-trade concentration
	if trade, n := dominant(byTrade); n >= 3 && len(items) > 0 && float64(n)/float64(len(items)) >= 0.4 {
		tips = append(tips, fmt.Sprintf("%s accounts for %d of %d items - schedule a dedicated %s walkthrough", trade, n, len(items), trade))
	}

	// Volume-based suggestions
	if len(items) > 20 {
		tips = append(tips, fmt.Sprintf("%d items is a large list - consider splitting completion across multiple days", len(items)))
	} else if len(items) == 0 {
		tips = append(tips, "No punch items detected - verify the walkthrough notes were complete")
	}

	// Generic best-practice filler, appended last
	tips = append(tips,
		"Photograph each item before and after completion",
		"Confirm back-charges with subcontractors before assigning work",
		"Re-walk completed areas with the owner's representative",
	)

	return truncate(tips, maxPunchTips)
}

// DailyLog produces guidance for a generated daily log
func DailyLog(log *model.DailyLog) []string {
	var tips []string

	if len(log.SafetyNotes) == 0 {
		tips = append(tips, "No safety notes recorded - confirm the toolbox talk happened and log it")
	}
	if len(log.Manpower) == 0 {
		tips = append(tips, "No manpower counts recorded - headcounts support delay claims later")
	}
	if log.Weather == "" {
		tips = append(tips, "No weather noted - weather records matter for schedule relief requests")
	}
	if len(log.Issues) > 0 {
		tips = append(tips, fmt.Sprintf("%d issue(s) logged - follow up in tomorrow's coordination meeting", len(log.Issues)))
	}

	tips = append(tips,
		"Record percent complete per activity to improve progress tracking",
		"Note deliveries with ticket numbers for material reconciliation",
	)

	return truncate(tips, maxDailyLogTips)
}

// Recovery proposes schedule recovery options. The two gates unlock
// independent subsets: average delay unlocks sequencing and resourcing
// options; critical-path impact unlocks acceleration options.
func Recovery(avgDelayDays float64, criticalPathAffected bool, byCause map[string]int) []string {
	var options []string

	if criticalPathAffected {
		options = append(options,
			"Critical path is affected - evaluate overtime or second-shift work on critical activities",
			"Review remaining critical-path logic for resequencing opportunities",
		)
	}

	if avgDelayDays > 0 {
		options = append(options,
			fmt.Sprintf("Average delay is %.1f day(s) - update the look-ahead schedule and notify affected trades", avgDelayDays),
			"Consider requesting time extensions for excusable delay causes",
		)

		if cause, n := dominant(byCause); n >= 2 && cause != "" {
			options = append(options, fmt.Sprintf("Most common delay cause is %q (%d activities) - target mitigation there first", cause, n))
		}
	}

	if criticalPathAffected || avgDelayDays > 0 {
		options = append(options, "Document all delay causes now while records are fresh")
	}

	return truncate(options, maxRecovery)
}

// dominant returns the label with the highest count, ties broken
// alphabetically for determinism
func dominant(counts map[string]int) (string, int) {
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	best, bestN := "", 0
	for _, label := range labels {
		if counts[label] > bestN {
			best, bestN = label, counts[label]
		}
	}
	return best, bestN
}

func truncate(tips []string, max int) []string {
	if len(tips) > max {
		return tips[:max]
	}
	return tips
}
