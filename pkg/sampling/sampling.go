// Package sampling maps percentage-style inputs onto numeric
// sampling-parameter ranges such as temperature.
package sampling

// MapToRange maps a 0-100 percentage target onto the closed interval
// [min, max]:
//
//	min + (max-min) * (target/100)
//
// Targets above 100 are clamped to 100. Targets below zero are passed
// through unclamped and extrapolate below min. A degenerate range with
// min == max returns exactly min for every target.
func MapToRange(min, max, target int) float64 {
	capped := target
	if capped > 100 {
		capped = 100
	}

	span := float64(max) - float64(min)
	percentage := float64(capped) / 100.0
	return float64(min) + span*percentage
}
