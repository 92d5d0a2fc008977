package exchange

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gitlab.com/open-soft/go-scanner-bot/src/model"
)

func tradableProduct(productId string, base string, quote string, volume string) model.Product {
	return model.Product{
		ProductId:     productId,
		BaseCurrency:  base,
		QuoteCurrency: quote,
		Status:        "online",
		Volume24h:     decimal.RequireFromString(volume),
	}
}

func TestGetTradableProductsFiltersAndSorts(t *testing.T) {
	assertion := assert.New(t)

	listing := []model.Product{
		tradableProduct("BTC-USD", "BTC", "USD", "500"),
		tradableProduct("ETH-USD", "ETH", "USD", "900"),
		tradableProduct("USDT-USD", "USDT", "USD", "9000"),
		tradableProduct("SOL-EUR", "SOL", "EUR", "800"),
		{
			ProductId:       "XRP-USD",
			BaseCurrency:    "XRP",
			QuoteCurrency:   "USD",
			Status:          "online",
			TradingDisabled: true,
		},
		{
			ProductId:     "ADA-USD",
			BaseCurrency:  "ADA",
			QuoteCurrency: "USD",
			Status:        "offline",
		},
	}

	productAPI := new(ProductAPIMock)
	productAPI.On("GetProducts").Return(listing, nil)

	productStorage := new(ProductStorageMock)
	productStorage.On("SaveUniverse", mock.Anything, time.Hour)

	productService := ProductService{
		Coinbase:          productAPI,
		ProductRepository: productStorage,
		QuoteCurrency:     "USD",
		Denylist:          map[string]bool{"USDT": true},
		UniverseTTL:       time.Hour,
	}

	products, err := productService.GetTradableProducts()

	assertion.Nil(err)
	// denied stablecoin, wrong quote, halted and offline products are out,
	// the rest sorted by 24h volume
	assertion.Len(products, 2)
	assertion.Equal("ETH-USD", products[0].ProductId)
	assertion.Equal("BTC-USD", products[1].ProductId)
	productStorage.AssertExpectations(t)
}

func TestGetTradableProductsAllowlistWins(t *testing.T) {
	assertion := assert.New(t)

	productAPI := new(ProductAPIMock)
	productAPI.On("GetProducts").Return([]model.Product{
		tradableProduct("BTC-USD", "BTC", "USD", "500"),
		tradableProduct("ETH-USD", "ETH", "USD", "900"),
	}, nil)

	productStorage := new(ProductStorageMock)
	productStorage.On("SaveUniverse", mock.Anything, mock.Anything)

	productService := ProductService{
		Coinbase:          productAPI,
		ProductRepository: productStorage,
		QuoteCurrency:     "USD",
		Allowlist:         map[string]bool{"BTC": true},
	}

	products, err := productService.GetTradableProducts()

	assertion.Nil(err)
	assertion.Len(products, 1)
	assertion.Equal("BTC-USD", products[0].ProductId)
}

func TestGetTradableProductsCapsUniverse(t *testing.T) {
	assertion := assert.New(t)

	productAPI := new(ProductAPIMock)
	productAPI.On("GetProducts").Return([]model.Product{
		tradableProduct("BTC-USD", "BTC", "USD", "500"),
		tradableProduct("ETH-USD", "ETH", "USD", "900"),
		tradableProduct("SOL-USD", "SOL", "USD", "700"),
	}, nil)

	productStorage := new(ProductStorageMock)
	productStorage.On("SaveUniverse", mock.Anything, mock.Anything)

	productService := ProductService{
		Coinbase:          productAPI,
		ProductRepository: productStorage,
		QuoteCurrency:     "USD",
		MaxProducts:       2,
	}

	products, err := productService.GetTradableProducts()

	assertion.Nil(err)
	assertion.Len(products, 2)
	assertion.Equal("ETH-USD", products[0].ProductId)
	assertion.Equal("SOL-USD", products[1].ProductId)
}

func TestGetTradableProductsListingError(t *testing.T) {
	assertion := assert.New(t)

	productAPI := new(ProductAPIMock)
	productAPI.On("GetProducts").Return(make([]model.Product, 0), errors.New("listing unavailable"))

	productService := ProductService{
		Coinbase:          productAPI,
		ProductRepository: new(ProductStorageMock),
		QuoteCurrency:     "USD",
	}

	products, err := productService.GetTradableProducts()

	assertion.NotNil(err)
	assertion.Empty(products)
}
