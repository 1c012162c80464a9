package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceForFreeTrials(t *testing.T) {
	for prior := int64(0); prior < freeTrialLimit; prior++ {
		price, isTrial := priceFor(prior, 90, 2500)
		assert.Zero(t, price, "prior trials %d", prior)
		assert.True(t, isTrial)
	}

	// The fourth booking is charged.
	price, isTrial := priceFor(freeTrialLimit, 30, 0)
	assert.Equal(t, tierShortPrice, price)
	assert.False(t, isTrial)
}

func TestPriceForDurationTiers(t *testing.T) {
	tests := []struct {
		minutes int
		want    float64
	}{
		{15, tierShortPrice},
		{30, tierShortPrice},
		{45, tierMediumPrice},
		{60, tierMediumPrice},
		{90, tierLongPrice},
		{120, tierLongPrice},
	}
	for _, tc := range tests {
		price, isTrial := priceFor(freeTrialLimit, tc.minutes, 0)
		assert.Equal(t, tc.want, price, "%d minutes", tc.minutes)
		assert.False(t, isTrial)
	}
}

func TestPriceForDeclaredOverride(t *testing.T) {
	price, isTrial := priceFor(freeTrialLimit, 30, 750)
	assert.Equal(t, 750.0, price)
	assert.False(t, isTrial)
}
