package model

type Candle struct {
	OpenTime TimestampSec `json:"start"`
	Low      Price        `json:"low"`
	High     Price        `json:"high"`
	Open     Price        `json:"open"`
	Close    Price        `json:"close"`
	Volume   Volume       `json:"volume"`
}

// IsClosed reports whether the candle's full interval has elapsed at `now`.
func (c *Candle) IsClosed(granularitySecs int64, now int64) bool {
	return c.OpenTime.Value()+granularitySecs <= now
}

func (c *Candle) IsNegative() bool {
	return c.Close.Value() < c.Open.Value()
}

func (c *Candle) IsPositive() bool {
	return c.Close > c.Open
}

type CandleHistoryResponse struct {
	Candles []Candle `json:"candles"`
}
