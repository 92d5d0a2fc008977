package client

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"gitlab.com/open-soft/go-scanner-bot/src/model"
)

const ExchangeTradesPageLimit = 100
const ProductsPageLimit = 250

type ProductAPIInterface interface {
	GetProducts() ([]model.Product, error)
	GetProduct(productId string) (model.Product, error)
}

type AccountAPIInterface interface {
	GetAccounts() ([]model.Account, error)
	GetPortfolios() ([]model.Portfolio, error)
}

type CandleAPIInterface interface {
	GetCandles(productId string, granularityName string, start int64, end int64) ([]model.Candle, error)
}

type TradeHistoryAPIInterface interface {
	GetTradeHistory(productId string, totalLimit int64) ([]model.MarketTrade, error)
}

type OrderAPIInterface interface {
	CreateOrder(request model.OrderRequest, portfolioUuid string) (model.CreateOrderResponse, error)
}

// Coinbase covers two upstreams: the private Advanced Trade API
// (products, accounts, candles, orders) and the public Exchange market
// data API (recent trades, websocket tickers).
type Coinbase struct {
	ApiKey    string
	ApiSecret string

	AdvancedTradeDSN string
	ExchangeDSN      string

	HttpClient HttpClientInterface
}

func (c *Coinbase) GetProducts() ([]model.Product, error) {
	products := make([]model.Product, 0)
	cursor := ""

	for {
		requestUrl := fmt.Sprintf(
			"%s/api/v3/brokerage/products?limit=%d",
			c.AdvancedTradeDSN,
			ProductsPageLimit,
		)
		if len(cursor) > 0 {
			requestUrl = fmt.Sprintf("%s&cursor=%s", requestUrl, url.QueryEscape(cursor))
		}

		body, err := c.HttpClient.Get(requestUrl, c.authHeaders("GET", "/api/v3/brokerage/products", ""))
		if err != nil {
			return products, err
		}

		var response model.ProductListResponse
		err = json.Unmarshal(body, &response)
		if err != nil {
			return products, err
		}

		products = append(products, response.Products...)
		cursor = response.Cursor

		if len(cursor) == 0 {
			break
		}
	}

	return products, nil
}

func (c *Coinbase) GetProduct(productId string) (model.Product, error) {
	path := fmt.Sprintf("/api/v3/brokerage/products/%s", url.PathEscape(productId))

	body, err := c.HttpClient.Get(c.AdvancedTradeDSN+path, c.authHeaders("GET", path, ""))
	if err != nil {
		return model.Product{}, err
	}

	var product model.Product
	err = json.Unmarshal(body, &product)
	if err != nil {
		return model.Product{}, err
	}

	if len(product.ProductId) == 0 {
		return model.Product{}, errors.New(fmt.Sprintf("Product %s is not found", productId))
	}

	return product, nil
}

func (c *Coinbase) GetCandles(productId string, granularityName string, start int64, end int64) ([]model.Candle, error) {
	path := fmt.Sprintf("/api/v3/brokerage/products/%s/candles", url.PathEscape(productId))
	requestUrl := fmt.Sprintf(
		"%s%s?start=%d&end=%d&granularity=%s",
		c.AdvancedTradeDSN,
		path,
		start,
		end,
		granularityName,
	)

	body, err := c.HttpClient.Get(requestUrl, c.authHeaders("GET", path, ""))
	if err != nil {
		return make([]model.Candle, 0), err
	}

	var response model.CandleHistoryResponse
	err = json.Unmarshal(body, &response)
	if err != nil {
		return make([]model.Candle, 0), err
	}

	return response.Candles, nil
}

// GetTradeHistory pages backward through the public Exchange trades
// endpoint with a `before=<trade_id>` cursor, newest page first, until
// totalLimit trades are collected or a short page ends the history.
func (c *Coinbase) GetTradeHistory(productId string, totalLimit int64) ([]model.MarketTrade, error) {
	trades := make([]model.MarketTrade, 0)

	var before int64 = 0
	remaining := totalLimit
	if remaining < 1 {
		remaining = 1
	}

	for remaining > 0 {
		pageLimit := remaining
		if pageLimit > ExchangeTradesPageLimit {
			pageLimit = ExchangeTradesPageLimit
		}

		requestUrl := fmt.Sprintf(
			"%s/products/%s/trades?limit=%d",
			c.ExchangeDSN,
			url.PathEscape(productId),
			pageLimit,
		)
		if before > 0 {
			requestUrl = fmt.Sprintf("%s&before=%d", requestUrl, before)
		}

		body, err := c.HttpClient.Get(requestUrl, map[string]string{
			"User-Agent": "go-scanner-bot/1.0",
		})
		if err != nil {
			if len(trades) > 0 {
				return trades, nil
			}

			return trades, err
		}

		var page []model.MarketTrade
		err = json.Unmarshal(body, &page)
		if err != nil {
			return trades, err
		}

		if len(page) == 0 {
			break
		}

		trades = append(trades, page...)
		remaining -= int64(len(page))

		// the last item is the oldest of this page
		before = page[len(page)-1].TradeId
		if before == 0 || int64(len(page)) < pageLimit {
			break
		}

		time.Sleep(time.Millisecond * 50)
	}

	return trades, nil
}

func (c *Coinbase) GetAccounts() ([]model.Account, error) {
	accounts := make([]model.Account, 0)
	cursor := ""

	for {
		requestUrl := fmt.Sprintf("%s/api/v3/brokerage/accounts?limit=250", c.AdvancedTradeDSN)
		if len(cursor) > 0 {
			requestUrl = fmt.Sprintf("%s&cursor=%s", requestUrl, url.QueryEscape(cursor))
		}

		body, err := c.HttpClient.Get(requestUrl, c.authHeaders("GET", "/api/v3/brokerage/accounts", ""))
		if err != nil {
			return accounts, err
		}

		var response model.AccountListResponse
		err = json.Unmarshal(body, &response)
		if err != nil {
			return accounts, err
		}

		accounts = append(accounts, response.Accounts...)

		if !response.HasNext || len(response.Cursor) == 0 {
			break
		}

		cursor = response.Cursor
	}

	return accounts, nil
}

func (c *Coinbase) GetPortfolios() ([]model.Portfolio, error) {
	path := "/api/v3/brokerage/portfolios"

	body, err := c.HttpClient.Get(c.AdvancedTradeDSN+path, c.authHeaders("GET", path, ""))
	if err != nil {
		return make([]model.Portfolio, 0), err
	}

	var response model.PortfolioListResponse
	err = json.Unmarshal(body, &response)
	if err != nil {
		return make([]model.Portfolio, 0), err
	}

	return response.Portfolios, nil
}

func (c *Coinbase) CreateOrder(request model.OrderRequest, portfolioUuid string) (model.CreateOrderResponse, error) {
	path := "/api/v3/brokerage/orders"
	requestUrl := c.AdvancedTradeDSN + path
	// portfolio scoping goes into the query string, never the body
	if len(portfolioUuid) > 0 {
		requestUrl = fmt.Sprintf("%s?portfolio_id=%s", requestUrl, url.QueryEscape(portfolioUuid))
	}

	serialized, err := json.Marshal(request)
	if err != nil {
		return model.CreateOrderResponse{}, err
	}

	body, err := c.HttpClient.Post(requestUrl, serialized, c.authHeaders("POST", path, string(serialized)))

	var response model.CreateOrderResponse
	if len(body) > 0 {
		_ = json.Unmarshal(body, &response)
	}

	if err != nil {
		return response, err
	}

	return response, nil
}

func (c *Coinbase) authHeaders(method string, path string, body string) map[string]string {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	return map[string]string{
		"CB-ACCESS-KEY":       c.ApiKey,
		"CB-ACCESS-TIMESTAMP": timestamp,
		"CB-ACCESS-SIGN":      c.sign(timestamp + method + path + body),
	}
}

func (c *Coinbase) sign(payload string) string {
	mac := hmac.New(sha256.New, []byte(c.ApiSecret))
	mac.Write([]byte(payload))

	return fmt.Sprintf("%x", mac.Sum(nil))
}
