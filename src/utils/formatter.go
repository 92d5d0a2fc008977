package utils

import (
	"log"
	"math"

	"github.com/shopspring/decimal"
)

type Formatter struct {
}

// RoundToIncrement truncates value down to the nearest exact multiple of
// increment. Rounding up here would exceed the exchange's maximum
// precision and get the order rejected, so truncation is the only safe
// direction. A non-positive increment leaves the value untouched.
func (m *Formatter) RoundToIncrement(value decimal.Decimal, increment decimal.Decimal) decimal.Decimal {
	if increment.Sign() <= 0 {
		return value
	}

	steps, _ := value.QuoRem(increment, 0)

	return steps.Mul(increment)
}

func (m *Formatter) Round(num float64) int {
	return int(num + math.Copysign(0.5, num))
}

func (m *Formatter) ToFixed(num float64, precision int) float64 {
	output := math.Pow(10, float64(precision))
	return float64(m.Round(num*output)) / output
}

func (m *Formatter) GranularityToCandleInterval(granularitySecs int64) string {
	// Advanced Trade candle granularities:
	// ONE_MINUTE FIVE_MINUTE FIFTEEN_MINUTE THIRTY_MINUTE
	// ONE_HOUR TWO_HOUR SIX_HOUR ONE_DAY
	switch granularitySecs {
	case 60:
		return "ONE_MINUTE"
	case 300:
		return "FIVE_MINUTE"
	case 900:
		return "FIFTEEN_MINUTE"
	case 1800:
		return "THIRTY_MINUTE"
	case 3600:
		return "ONE_HOUR"
	case 7200:
		return "TWO_HOUR"
	case 21600:
		return "SIX_HOUR"
	case 86400:
		return "ONE_DAY"
	default:
		log.Panicf("Granularity %d is not supported by GranularityToCandleInterval", granularitySecs)
	}

	return ""
}

func (m *Formatter) IsSupportedGranularity(granularitySecs int64) bool {
	switch granularitySecs {
	case 60, 300, 900, 1800, 3600, 7200, 21600, 86400:
		return true
	}

	return false
}
