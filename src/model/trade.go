package model

import "strings"

const TradeSideBuy = "buy"
const TradeSideSell = "sell"

// MarketTrade is one public trade from the Exchange market data API,
// newest-first within a page.
type MarketTrade struct {
	TradeId int64  `json:"trade_id"`
	Side    string `json:"side"`
	Size    Volume `json:"size"`
	Price   Price  `json:"price"`
	Time    string `json:"time"`
}

func (t *MarketTrade) IsBuy() bool {
	return strings.ToLower(t.Side) == TradeSideBuy
}

func (t *MarketTrade) IsSell() bool {
	return strings.ToLower(t.Side) == TradeSideSell
}
