package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandleIsClosed(t *testing.T) {
	assertion := assert.New(t)

	candle := Candle{OpenTime: TimestampSec(900)}

	assertion.False(candle.IsClosed(900, 1000))
	assertion.False(candle.IsClosed(900, 1799))
	// closed exactly when the next bar opens
	assertion.True(candle.IsClosed(900, 1800))
	assertion.True(candle.IsClosed(900, 2000))
}

func TestCandleDecodesMixedScalarTypes(t *testing.T) {
	assertion := assert.New(t)

	var candle Candle
	err := json.Unmarshal(
		[]byte(`{"start":"99900","low":"1.1","high":2.2,"open":"1.5","close":2.0,"volume":"1000.5"}`),
		&candle,
	)

	assertion.Nil(err)
	assertion.Equal(int64(99900), candle.OpenTime.Value())
	assertion.Equal(1.1, candle.Low.Value())
	assertion.Equal(2.2, candle.High.Value())
	assertion.Equal(2.00, candle.Close.Value())
	assertion.Equal(1000.5, candle.Volume.Value())
}
