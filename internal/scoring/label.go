package scoring

// Label bands, evaluated highest-first. The source material carried two
// disagreeing threshold sets (90/75 for colors, 95/85/75 for labels); the
// label thresholds are canonical here and drive every presentation of the
// score.
const (
	thresholdExcellent = 95
	thresholdVeryGood  = 85
	thresholdGood      = 75
)

// Label returns the qualitative band for a score.
func Label(score int) string {
	switch {
	case score >= thresholdExcellent:
		return "Excellent"
	case score >= thresholdVeryGood:
		return "Very Good"
	case score >= thresholdGood:
		return "Good"
	default:
		return "Needs Improvement"
	}
}
