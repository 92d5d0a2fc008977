package strategy

import (
	"log"
	"time"

	"gitlab.com/open-soft/go-scanner-bot/src/client"
	"gitlab.com/open-soft/go-scanner-bot/src/model"
)

// RatioStrategy is the trade-flow signal source: the share of recent
// base volume executed on the buy side. It needs a minimum sample of
// sized trades before it trusts the ratio at all.
type RatioStrategy struct {
	TradeService client.TradeHistoryAPIInterface

	TradesLimit int64
	MinTrades   int
	MinBuyRatio float64
	Debug       bool
}

func (s *RatioStrategy) GetName() string {
	return model.RatioStrategyName
}

func (s *RatioStrategy) Decide(product model.Product) model.Decision {
	trades, err := s.TradeService.GetTradeHistory(product.ProductId, s.TradesLimit)
	if err != nil {
		log.Printf("[%s] trade history fetch: %s", product.ProductId, err.Error())

		return s.hold(product, 0.00, 0.00, 0.00)
	}

	ratio, count, buyVolume, sellVolume := s.CalculateBuyRatio(trades)

	if count < s.MinTrades {
		if s.Debug {
			log.Printf("[%s] insufficient trades (n=%d); skip", product.ProductId, count)
		}

		return s.hold(product, 0.00, buyVolume, sellVolume)
	}

	if s.Debug {
		log.Printf(
			"[%s] ratio=%.4f n=%d buyVolume=%f sellVolume=%f",
			product.ProductId, ratio, count, buyVolume, sellVolume,
		)
	}

	if ratio >= s.MinBuyRatio {
		return model.Decision{
			StrategyName: s.GetName(),
			ProductId:    product.ProductId,
			Operation:    model.OperationBuy,
			Timestamp:    time.Now().Unix(),
			Params:       [3]float64{ratio, buyVolume, sellVolume},
		}
	}

	return s.hold(product, ratio, buyVolume, sellVolume)
}

// CalculateBuyRatio returns buyVolume/(buyVolume+sellVolume) over the
// given trades plus the number of trades that carried a positive size.
// The ratio is zero when the volume total is empty.
func (s *RatioStrategy) CalculateBuyRatio(trades []model.MarketTrade) (float64, int, float64, float64) {
	var buyVolume, sellVolume float64
	count := 0

	for _, trade := range trades {
		size := trade.Size.Value()
		if size <= 0 {
			continue
		}

		if trade.IsBuy() {
			buyVolume += size
			count++
		} else if trade.IsSell() {
			sellVolume += size
			count++
		}
	}

	total := buyVolume + sellVolume
	if total <= 0 {
		return 0.00, count, buyVolume, sellVolume
	}

	return buyVolume / total, count, buyVolume, sellVolume
}

func (s *RatioStrategy) hold(product model.Product, ratio float64, buyVolume float64, sellVolume float64) model.Decision {
	return model.Decision{
		StrategyName: s.GetName(),
		ProductId:    product.ProductId,
		Operation:    model.OperationHold,
		Timestamp:    time.Now().Unix(),
		Params:       [3]float64{ratio, buyVolume, sellVolume},
	}
}
