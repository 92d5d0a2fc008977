package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

type AccountBalance struct {
	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency"`
}

type Account struct {
	Uuid             string         `json:"uuid"`
	Currency         string         `json:"currency"`
	AvailableBalance AccountBalance `json:"available_balance"`
}

func (a *Account) IsCurrency(currency string) bool {
	return strings.EqualFold(a.Currency, currency)
}

type AccountListResponse struct {
	Accounts []Account `json:"accounts"`
	HasNext  bool      `json:"has_next"`
	Cursor   string    `json:"cursor"`
}

type Portfolio struct {
	Name string `json:"name"`
	Uuid string `json:"uuid"`
}

type PortfolioListResponse struct {
	Portfolios []Portfolio `json:"portfolios"`
}
