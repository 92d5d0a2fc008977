package exchange

import (
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gitlab.com/open-soft/go-scanner-bot/src/client"
	"gitlab.com/open-soft/go-scanner-bot/src/model"
	"gitlab.com/open-soft/go-scanner-bot/src/repository"
	"gitlab.com/open-soft/go-scanner-bot/src/utils"
)

type OrderExecutorInterface interface {
	ExecuteBuy(product model.Product, notional decimal.Decimal) (model.Order, error)
}

// OrderExecutor submits one market IOC BUY per call:
// BUILD -> SEND -> {ACCEPTED | CONFLICT -> SEND(fresh key) | FAILED}.
// A duplicate idempotency key is retried exactly once; every other
// failure is final for this product and cycle.
type OrderExecutor struct {
	Coinbase        client.OrderAPIInterface
	OrderRepository repository.OrderStorageInterface
	BalanceService  BalanceServiceInterface
	TimeService     utils.TimeServiceInterface

	QuoteCurrency string
	PortfolioUuid string
}

func (e *OrderExecutor) ExecuteBuy(product model.Product, notional decimal.Decimal) (model.Order, error) {
	request := e.buildRequest(product, notional)

	orderId, err := e.send(request)

	if err != nil && e.isDuplicateKeyConflict(err) {
		log.Printf("[%s] duplicate client_order_id, retrying with a fresh key", product.ProductId)

		request = e.buildRequest(product, notional)
		orderId, err = e.send(request)
	}

	if err != nil {
		return model.Order{}, fmt.Errorf("[%s] %s: %w", product.ProductId, err.Error(), model.ErrOrderFailed)
	}

	log.Printf("[%s] BUY %s %s submitted (order %s)", product.ProductId, notional.String(), e.QuoteCurrency, orderId)

	order := model.Order{
		ProductId:     product.ProductId,
		Operation:     model.OperationBuy,
		Notional:      notional,
		ClientOrderId: request.ClientOrderId,
		ExternalId:    orderId,
		Status:        model.OrderStatusSubmitted,
		CreatedAt:     e.TimeService.GetNowDateTimeString(),
	}

	_, createErr := e.OrderRepository.Create(order)
	if createErr != nil {
		log.Printf("[%s] order audit record failed: %s", product.ProductId, createErr.Error())
	}

	e.BalanceService.InvalidateBalanceCache(e.QuoteCurrency)

	return order, nil
}

func (e *OrderExecutor) buildRequest(product model.Product, notional decimal.Decimal) model.OrderRequest {
	return model.OrderRequest{
		ProductId:     product.ProductId,
		Side:          model.OperationBuy,
		ClientOrderId: uuid.New().String(),
		OrderConfiguration: model.OrderConfiguration{
			MarketMarketIoc: model.MarketIoc{
				QuoteSize: notional.String(),
			},
		},
	}
}

func (e *OrderExecutor) send(request model.OrderRequest) (string, error) {
	response, err := e.Coinbase.CreateOrder(request, e.PortfolioUuid)

	if err != nil {
		return "", err
	}

	if response.ErrorResponse != nil && len(response.ErrorResponse.GetMessage()) > 0 {
		if response.ErrorResponse.IsDuplicateClientOrderId() {
			return "", fmt.Errorf("client_order_id conflict: %s", response.ErrorResponse.GetMessage())
		}

		return "", fmt.Errorf("broker rejected order: %s", response.ErrorResponse.GetMessage())
	}

	orderId := response.GetOrderId()
	if len(orderId) == 0 {
		return "", fmt.Errorf("broker returned no order id")
	}

	return orderId, nil
}

func (e *OrderExecutor) isDuplicateKeyConflict(err error) bool {
	return strings.Contains(err.Error(), "client_order_id")
}
