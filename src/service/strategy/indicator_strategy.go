package strategy

import (
	"log"
	"time"

	"gitlab.com/open-soft/go-scanner-bot/src/model"
)

type CandleProviderInterface interface {
	GetCandleHistory(productId string, barsNeeded int64) ([]model.Candle, error)
}

// IndicatorStrategy buys oversold products in a short-term downtrend:
// RSI at or below the threshold while the short SMA sits under the long
// one. Any missing indicator input means HOLD.
type IndicatorStrategy struct {
	CandleService CandleProviderInterface

	RsiLength      int
	RsiBuyBelow    float64
	SmaShortLength int
	SmaLongLength  int
	Debug          bool
}

func (s *IndicatorStrategy) GetName() string {
	return model.IndicatorStrategyName
}

func (s *IndicatorStrategy) Decide(product model.Product) model.Decision {
	barsNeeded := s.SmaLongLength
	if s.RsiLength+1 > barsNeeded {
		barsNeeded = s.RsiLength + 1
	}

	candles, err := s.CandleService.GetCandleHistory(product.ProductId, int64(barsNeeded))
	if err != nil {
		return s.hold(product, model.IndicatorSnapshot{})
	}

	closes := make([]float64, 0, len(candles))
	for _, candle := range candles {
		closes = append(closes, candle.Close.Value())
	}

	snapshot := s.BuildSnapshot(closes)

	if s.Debug {
		log.Printf(
			"[%s] rsi=%.2f(%t) smaShort=%.4f(%t) smaLong=%.4f(%t)",
			product.ProductId,
			snapshot.Rsi, snapshot.HasRsi,
			snapshot.SmaShort, snapshot.HasSmaShort,
			snapshot.SmaLong, snapshot.HasSmaLong,
		)
	}

	if s.Evaluate(snapshot) {
		return model.Decision{
			StrategyName: s.GetName(),
			ProductId:    product.ProductId,
			Operation:    model.OperationBuy,
			Timestamp:    time.Now().Unix(),
			Params:       [3]float64{snapshot.Rsi, snapshot.SmaShort, snapshot.SmaLong},
		}
	}

	return s.hold(product, snapshot)
}

func (s *IndicatorStrategy) BuildSnapshot(closes []float64) model.IndicatorSnapshot {
	snapshot := model.IndicatorSnapshot{}

	snapshot.Rsi, snapshot.HasRsi = RsiWilder(closes, s.RsiLength)
	snapshot.SmaShort, snapshot.HasSmaShort = Sma(closes, s.SmaShortLength)
	snapshot.SmaLong, snapshot.HasSmaLong = Sma(closes, s.SmaLongLength)

	return snapshot
}

// Evaluate fails closed: insufficient data never produces a signal.
func (s *IndicatorStrategy) Evaluate(snapshot model.IndicatorSnapshot) bool {
	if !snapshot.HasRsi || !snapshot.HasSmaShort || !snapshot.HasSmaLong {
		return false
	}

	return snapshot.Rsi <= s.RsiBuyBelow && snapshot.SmaShort < snapshot.SmaLong
}

func (s *IndicatorStrategy) hold(product model.Product, snapshot model.IndicatorSnapshot) model.Decision {
	return model.Decision{
		StrategyName: s.GetName(),
		ProductId:    product.ProductId,
		Operation:    model.OperationHold,
		Timestamp:    time.Now().Unix(),
		Params:       [3]float64{snapshot.Rsi, snapshot.SmaShort, snapshot.SmaLong},
	}
}
