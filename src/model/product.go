package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product is the decoded instrument entity of the Advanced Trade listing
// endpoint. All increments come back as decimal strings and are kept as
// decimals end to end so the sizing path never touches float math.
type Product struct {
	ProductId       string          `json:"product_id"`
	BaseCurrency    string          `json:"base_currency_id"`
	QuoteCurrency   string          `json:"quote_currency_id"`
	Status          string          `json:"status"`
	IsDisabled      bool            `json:"is_disabled"`
	TradingDisabled bool            `json:"trading_disabled"`
	PriceIncrement  decimal.Decimal `json:"price_increment"`
	BaseIncrement   decimal.Decimal `json:"base_increment"`
	QuoteIncrement  decimal.Decimal `json:"quote_increment"`
	QuoteMinSize    decimal.Decimal `json:"quote_min_size"`
	Volume24h       decimal.Decimal `json:"volume_24h"`
}

func (p Product) GetSymbol() string {
	return p.ProductId
}

func (p Product) GetBaseAsset() string {
	return strings.ToUpper(p.BaseCurrency)
}

func (p Product) GetQuoteAsset() string {
	return strings.ToUpper(p.QuoteCurrency)
}

func (p Product) IsTradable() bool {
	if p.IsDisabled || p.TradingDisabled {
		return false
	}

	return !strings.Contains(strings.ToLower(p.Status), "offline")
}

func (p Product) HasQuoteMinSize() bool {
	return p.QuoteMinSize.IsPositive()
}

type ProductListResponse struct {
	Products []Product `json:"products"`
	Cursor   string    `json:"cursor"`
}
