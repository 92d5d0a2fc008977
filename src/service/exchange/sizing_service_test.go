package exchange

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gitlab.com/open-soft/go-scanner-bot/src/model"
	"gitlab.com/open-soft/go-scanner-bot/src/utils"
)

func TestCalculateNotionalPercentOfBalance(t *testing.T) {
	assertion := assert.New(t)

	balanceService := new(BalanceServiceMock)
	// the sizing path must bypass the balance cache
	balanceService.On("GetAvailableBalance", "USD", false).Return(decimal.RequireFromString("200"), nil)

	sizingService := SizingService{
		BalanceService: balanceService,
		Formatter:      &utils.Formatter{},
		QuoteCurrency:  "USD",
		BuyPercent:     decimal.RequireFromString("0.05"),
	}

	notional, err := sizingService.CalculateNotional(model.Product{
		ProductId:      "XYZ-USD",
		QuoteIncrement: decimal.RequireFromString("0.01"),
		QuoteMinSize:   decimal.RequireFromString("1"),
	})

	assertion.Nil(err)
	assertion.True(notional.Equal(decimal.RequireFromString("10")))
	balanceService.AssertExpectations(t)
}

func TestCalculateNotionalTruncatesToIncrement(t *testing.T) {
	assertion := assert.New(t)

	balanceService := new(BalanceServiceMock)
	balanceService.On("GetAvailableBalance", "USD", false).Return(decimal.RequireFromString("333.33"), nil)

	sizingService := SizingService{
		BalanceService: balanceService,
		Formatter:      &utils.Formatter{},
		QuoteCurrency:  "USD",
		BuyPercent:     decimal.RequireFromString("0.03"),
	}

	// 333.33 * 0.03 = 9.9999 -> 9.99 on a 0.01 grid
	notional, err := sizingService.CalculateNotional(model.Product{
		ProductId:      "XYZ-USD",
		QuoteIncrement: decimal.RequireFromString("0.01"),
	})

	assertion.Nil(err)
	assertion.True(notional.Equal(decimal.RequireFromString("9.99")))
}

func TestCalculateNotionalFixed(t *testing.T) {
	assertion := assert.New(t)

	balanceService := new(BalanceServiceMock)

	sizingService := SizingService{
		BalanceService: balanceService,
		Formatter:      &utils.Formatter{},
		QuoteCurrency:  "USD",
		FixedNotional:  decimal.RequireFromString("5.005"),
	}

	notional, err := sizingService.CalculateNotional(model.Product{
		ProductId:      "XYZ-USD",
		QuoteIncrement: decimal.RequireFromString("0.01"),
	})

	assertion.Nil(err)
	assertion.True(notional.Equal(decimal.RequireFromString("5")))
	// the fixed policy never reads the balance
	balanceService.AssertNotCalled(t, "GetAvailableBalance")
}

func TestCalculateNotionalRejectsZero(t *testing.T) {
	assertion := assert.New(t)

	sizingService := SizingService{
		BalanceService: new(BalanceServiceMock),
		Formatter:      &utils.Formatter{},
		QuoteCurrency:  "USD",
		FixedNotional:  decimal.RequireFromString("0.004"),
	}

	_, err := sizingService.CalculateNotional(model.Product{
		ProductId:      "XYZ-USD",
		QuoteIncrement: decimal.RequireFromString("0.01"),
	})

	assertion.NotNil(err)
	assertion.True(errors.Is(err, model.ErrSizingRejected))
}

func TestCalculateNotionalRejectsBelowQuoteMinSize(t *testing.T) {
	assertion := assert.New(t)

	balanceService := new(BalanceServiceMock)
	balanceService.On("GetAvailableBalance", "USD", false).Return(decimal.RequireFromString("10"), nil)

	sizingService := SizingService{
		BalanceService: balanceService,
		Formatter:      &utils.Formatter{},
		QuoteCurrency:  "USD",
		BuyPercent:     decimal.RequireFromString("0.05"),
	}

	_, err := sizingService.CalculateNotional(model.Product{
		ProductId:      "XYZ-USD",
		QuoteIncrement: decimal.RequireFromString("0.01"),
		QuoteMinSize:   decimal.RequireFromString("1"),
	})

	assertion.True(errors.Is(err, model.ErrSizingRejected))
}

func TestCalculateNotionalBalanceErrorIsNotRejection(t *testing.T) {
	assertion := assert.New(t)

	balanceService := new(BalanceServiceMock)
	balanceService.
		On("GetAvailableBalance", "USD", false).
		Return(decimal.Zero, errors.New("accounts endpoint unavailable"))

	sizingService := SizingService{
		BalanceService: balanceService,
		Formatter:      &utils.Formatter{},
		QuoteCurrency:  "USD",
		BuyPercent:     decimal.RequireFromString("0.05"),
	}

	_, err := sizingService.CalculateNotional(model.Product{ProductId: "XYZ-USD"})

	assertion.NotNil(err)
	assertion.False(errors.Is(err, model.ErrSizingRejected))
}
