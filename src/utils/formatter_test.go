package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundToIncrement(t *testing.T) {
	assertion := assert.New(t)
	formatter := Formatter{}

	// exact multiple stays untouched
	assertion.Equal(
		"10",
		formatter.RoundToIncrement(decimal.RequireFromString("10"), decimal.RequireFromString("0.01")).String(),
	)
	// always truncates down, never up
	assertion.Equal(
		"10",
		formatter.RoundToIncrement(decimal.RequireFromString("10.009"), decimal.RequireFromString("0.01")).String(),
	)
	assertion.Equal(
		"123.45",
		formatter.RoundToIncrement(decimal.RequireFromString("123.456789"), decimal.RequireFromString("0.01")).String(),
	)
	assertion.Equal(
		"0.0001",
		formatter.RoundToIncrement(decimal.RequireFromString("0.00019999"), decimal.RequireFromString("0.0001")).String(),
	)
	// below one increment collapses to zero
	assertion.True(
		formatter.RoundToIncrement(decimal.RequireFromString("0.004"), decimal.RequireFromString("0.01")).IsZero(),
	)
}

func TestRoundToIncrementProperties(t *testing.T) {
	assertion := assert.New(t)
	formatter := Formatter{}

	increment := decimal.RequireFromString("0.01")

	for _, raw := range []string{"10.005", "0.999999", "5000.123", "0.01", "77.7777777"} {
		value := decimal.RequireFromString(raw)
		rounded := formatter.RoundToIncrement(value, increment)

		assertion.True(rounded.LessThanOrEqual(value), raw)
		assertion.True(value.Sub(rounded).LessThan(increment), raw)
		// result is an exact multiple of the increment
		_, remainder := rounded.QuoRem(increment, 0)
		assertion.True(remainder.IsZero(), raw)
	}
}

func TestRoundToIncrementIgnoresNonPositiveIncrement(t *testing.T) {
	assertion := assert.New(t)
	formatter := Formatter{}

	value := decimal.RequireFromString("10.005")

	assertion.True(formatter.RoundToIncrement(value, decimal.Zero).Equal(value))
	assertion.True(formatter.RoundToIncrement(value, decimal.RequireFromString("-0.01")).Equal(value))
}

func TestGranularityToCandleInterval(t *testing.T) {
	assertion := assert.New(t)
	formatter := Formatter{}

	assertion.Equal("ONE_MINUTE", formatter.GranularityToCandleInterval(60))
	assertion.Equal("FIVE_MINUTE", formatter.GranularityToCandleInterval(300))
	assertion.Equal("FIFTEEN_MINUTE", formatter.GranularityToCandleInterval(900))
	assertion.Equal("THIRTY_MINUTE", formatter.GranularityToCandleInterval(1800))
	assertion.Equal("ONE_HOUR", formatter.GranularityToCandleInterval(3600))
	assertion.Equal("TWO_HOUR", formatter.GranularityToCandleInterval(7200))
	assertion.Equal("SIX_HOUR", formatter.GranularityToCandleInterval(21600))
	assertion.Equal("ONE_DAY", formatter.GranularityToCandleInterval(86400))
}

func TestIsSupportedGranularity(t *testing.T) {
	assertion := assert.New(t)
	formatter := Formatter{}

	assertion.True(formatter.IsSupportedGranularity(900))
	assertion.True(formatter.IsSupportedGranularity(86400))
	assertion.False(formatter.IsSupportedGranularity(0))
	assertion.False(formatter.IsSupportedGranularity(120))
	assertion.False(formatter.IsSupportedGranularity(-900))
}
