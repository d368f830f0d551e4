package booking

import "math"

type PriceCalculator interface {
	TotalPriceCents(hourlyRateCents int64, durationHours float64) int64
}

// HourlyPriceCalculator derives the total from duration x rate. Money stays
// in integer cents end to end; rounding to the nearest cent happens here,
// exactly once.
type HourlyPriceCalculator struct{}

func NewHourlyPriceCalculator() *HourlyPriceCalculator {
	return &HourlyPriceCalculator{}
}

func (c *HourlyPriceCalculator) TotalPriceCents(hourlyRateCents int64, durationHours float64) int64 {
	return int64(math.Round(durationHours * float64(hourlyRateCents)))
}
