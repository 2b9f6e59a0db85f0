package aggregate

// Quality penalties. Fixed policy constants: the values are load-bearing for
// downstream consumers and change only by product decision.
const (
	qualityBaseline        = 100
	penaltyNoActivities    = 30
	penaltyNoManpower      = 20
	penaltyNoWeather       = 10
	penaltyNoSafety        = 15
	penaltyLowWorkerCounts = 10
	penaltyLowPercents     = 5

	lowCoverageThreshold = 0.5
)

// QualityInputs summarizes the signal classes present in a generated daily
// log. Coverage fractions are over entries that could have carried the
// figure; they are ignored when no such entries exist.
type QualityInputs struct {
	Activities      int
	ManpowerEntries int
	HasWeather      bool
	HasSafetyNotes  bool
	WorkerCoverage  float64 // Fraction of manpower entries with an explicit headcount
	PercentCoverage float64 // Fraction of activities with a percent-complete figure
}

// QualityScore rates how complete a daily log is. It starts from a fixed
// baseline and subtracts a fixed penalty for each missing signal class,
// floored at zero. Single pass, independent conditions.
func QualityScore(in QualityInputs) int {
	score := qualityBaseline

	if in.Activities == 0 {
		score -= penaltyNoActivities
	}
	if in.ManpowerEntries == 0 {
		score -= penaltyNoManpower
	}
	if !in.HasWeather {
		score -= penaltyNoWeather
	}
	if !in.HasSafetyNotes {
		score -= penaltyNoSafety
	}
	if in.ManpowerEntries > 0 && in.WorkerCoverage < lowCoverageThreshold {
		score -= penaltyLowWorkerCounts
	}
	if in.Activities > 0 && in.PercentCoverage < lowCoverageThreshold {
		score -= penaltyLowPercents
	}

	if score < 0 {
		score = 0
	}
	return score
}
