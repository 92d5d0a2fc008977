package model

import "time"

const IndicatorStrategyName = "indicator_strategy"
const RatioStrategyName = "ratio_strategy"

// STRATEGY env values
const StrategyIndicator = "indicator"
const StrategyRatio = "ratio"

const OperationHold = "HOLD"

// IndicatorSnapshot carries the per-product indicator outputs of one
// cycle. A Has* flag is false when the close history was shorter than
// the indicator's lookback; the evaluator fails closed on it.
type IndicatorSnapshot struct {
	Rsi         float64 `json:"rsi"`
	HasRsi      bool    `json:"hasRsi"`
	SmaShort    float64 `json:"smaShort"`
	HasSmaShort bool    `json:"hasSmaShort"`
	SmaLong     float64 `json:"smaLong"`
	HasSmaLong  bool    `json:"hasSmaLong"`
}

type Decision struct {
	StrategyName string     `json:"strategyName"`
	ProductId    string     `json:"productId"`
	Operation    string     `json:"operation"`
	Timestamp    int64      `json:"timestamp"`
	Params       [3]float64 `json:"params"`
}

func (d *Decision) IsBuy() bool {
	return d.Operation == OperationBuy
}

type ScanCycleResult struct {
	BarBoundary int64         `json:"barBoundary"`
	Products    int           `json:"products"`
	Signals     int           `json:"signals"`
	Buys        int           `json:"buys"`
	Duration    time.Duration `json:"duration"`
}
