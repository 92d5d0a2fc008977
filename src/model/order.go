package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

const OperationBuy = "BUY"

const OrderStatusSubmitted = "SUBMITTED"

type MarketIoc struct {
	QuoteSize string `json:"quote_size"`
}

type OrderConfiguration struct {
	MarketMarketIoc MarketIoc `json:"market_market_ioc"`
}

// OrderRequest is the Advanced Trade order payload. ClientOrderId is the
// idempotency key and must be regenerated for every submission attempt.
type OrderRequest struct {
	ProductId          string             `json:"product_id"`
	Side               string             `json:"side"`
	ClientOrderId      string             `json:"client_order_id"`
	OrderConfiguration OrderConfiguration `json:"order_configuration"`
}

type OrderError struct {
	Error                string `json:"error"`
	Message              string `json:"message"`
	ErrorDetails         string `json:"error_details"`
	PreviewFailureReason string `json:"preview_failure_reason"`
}

func (e *OrderError) GetMessage() string {
	if len(e.Message) > 0 {
		return e.Message
	}

	if len(e.ErrorDetails) > 0 {
		return e.ErrorDetails
	}

	if len(e.Error) > 0 {
		return e.Error
	}

	return e.PreviewFailureReason
}

// IsDuplicateClientOrderId matches the broker's idempotency-key conflict
// signature; the scanner retries exactly once on it with a fresh key.
func (e *OrderError) IsDuplicateClientOrderId() bool {
	signature := strings.ToLower(e.Error + " " + e.Message + " " + e.ErrorDetails + " " + e.PreviewFailureReason)

	return strings.Contains(signature, "client_order_id")
}

type OrderSuccessResponse struct {
	OrderId       string `json:"order_id"`
	ProductId     string `json:"product_id"`
	ClientOrderId string `json:"client_order_id"`
}

type CreateOrderResponse struct {
	Success         bool                  `json:"success"`
	OrderId         string                `json:"order_id"`
	SuccessResponse *OrderSuccessResponse `json:"success_response"`
	ErrorResponse   *OrderError           `json:"error_response"`
}

func (r *CreateOrderResponse) GetOrderId() string {
	if len(r.OrderId) > 0 {
		return r.OrderId
	}

	if r.SuccessResponse != nil {
		return r.SuccessResponse.OrderId
	}

	return ""
}

// Order is the submitted-order audit row.
type Order struct {
	Id            int64           `json:"id"`
	ProductId     string          `json:"productId"`
	Operation     string          `json:"operation"`
	Notional      decimal.Decimal `json:"notional"`
	ClientOrderId string          `json:"clientOrderId"`
	ExternalId    string          `json:"externalId"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"createdAt"`
}
