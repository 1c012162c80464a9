package booking

// Free trial and tier thresholds.
const (
	freeTrialLimit = 3

	tierShortMinutes  = 30
	tierMediumMinutes = 60

	tierShortPrice  = 500.0
	tierMediumPrice = 1000.0
	tierLongPrice   = 1500.0
)

// priceFor decides the price and free-trial flag for a new consultation.
// priorFreeTrials is the client's global free-trial count across all
// lawyers. A nonzero declared price overrides the duration tiers.
func priceFor(priorFreeTrials int64, durationMinutes int, declaredPrice float64) (price float64, isFreeTrial bool) {
	if priorFreeTrials < freeTrialLimit {
		return 0, true
	}
	if declaredPrice != 0 {
		return declaredPrice, false
	}
	switch {
	case durationMinutes <= tierShortMinutes:
		return tierShortPrice, false
	case durationMinutes <= tierMediumMinutes:
		return tierMediumPrice, false
	default:
		return tierLongPrice, false
	}
}
