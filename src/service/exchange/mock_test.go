package exchange

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"gitlab.com/open-soft/go-scanner-bot/src/model"
)

type BalanceServiceMock struct {
	mock.Mock
}

func (m *BalanceServiceMock) GetAvailableBalance(currency string, cache bool) (decimal.Decimal, error) {
	args := m.Called(currency, cache)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *BalanceServiceMock) InvalidateBalanceCache(currency string) {
	m.Called(currency)
}

type OrderAPIMock struct {
	mock.Mock
}

func (m *OrderAPIMock) CreateOrder(request model.OrderRequest, portfolioUuid string) (model.CreateOrderResponse, error) {
	args := m.Called(request, portfolioUuid)
	return args.Get(0).(model.CreateOrderResponse), args.Error(1)
}

type OrderStorageMock struct {
	mock.Mock
}

func (m *OrderStorageMock) Create(order model.Order) (*int64, error) {
	args := m.Called(order)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*int64), args.Error(1)
}

func (m *OrderStorageMock) GetOrders() []model.Order {
	args := m.Called()
	return args.Get(0).([]model.Order)
}

type CandleAPIMock struct {
	mock.Mock
}

func (m *CandleAPIMock) GetCandles(productId string, granularityName string, start int64, end int64) ([]model.Candle, error) {
	args := m.Called(productId, granularityName, start, end)
	return args.Get(0).([]model.Candle), args.Error(1)
}

type AccountAPIMock struct {
	mock.Mock
}

func (m *AccountAPIMock) GetAccounts() ([]model.Account, error) {
	args := m.Called()
	return args.Get(0).([]model.Account), args.Error(1)
}

func (m *AccountAPIMock) GetPortfolios() ([]model.Portfolio, error) {
	args := m.Called()
	return args.Get(0).([]model.Portfolio), args.Error(1)
}

type TimeServiceMock struct {
	mock.Mock
}

func (m *TimeServiceMock) WaitSeconds(seconds int64) {
	m.Called(seconds)
}

func (m *TimeServiceMock) WaitMilliseconds(milliseconds int64) {
	m.Called(milliseconds)
}

func (m *TimeServiceMock) GetNowUnix() int64 {
	args := m.Called()
	return args.Get(0).(int64)
}

func (m *TimeServiceMock) GetNowDateTimeString() string {
	args := m.Called()
	return args.Get(0).(string)
}

type ProductStorageMock struct {
	mock.Mock
}

func (m *ProductStorageMock) SaveUniverse(products []model.Product, ttl time.Duration) {
	m.Called(products, ttl)
}

func (m *ProductStorageMock) GetUniverse() []model.Product {
	args := m.Called()
	return args.Get(0).([]model.Product)
}

type ProductAPIMock struct {
	mock.Mock
}

func (m *ProductAPIMock) GetProducts() ([]model.Product, error) {
	args := m.Called()
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *ProductAPIMock) GetProduct(productId string) (model.Product, error) {
	args := m.Called(productId)
	return args.Get(0).(model.Product), args.Error(1)
}
