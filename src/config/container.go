package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gitlab.com/open-soft/go-scanner-bot/src/client"
	"gitlab.com/open-soft/go-scanner-bot/src/controller"
	"gitlab.com/open-soft/go-scanner-bot/src/model"
	"gitlab.com/open-soft/go-scanner-bot/src/repository"
	"gitlab.com/open-soft/go-scanner-bot/src/service"
	"gitlab.com/open-soft/go-scanner-bot/src/service/exchange"
	"gitlab.com/open-soft/go-scanner-bot/src/service/strategy"
	"gitlab.com/open-soft/go-scanner-bot/src/utils"
)

func InitServiceContainer() Container {
	botConfig, err := LoadBotConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("mysql", botConfig.DatabaseDSN)
	if err != nil {
		log.Fatal(fmt.Sprintf("MySQL can't connect: %s", err.Error()))
	}

	db.SetMaxIdleConns(64)
	db.SetMaxOpenConns(64)
	db.SetConnMaxLifetime(time.Minute)

	var ctx = context.Background()
	rdb := redis.NewClient(&redis.Options{
		Addr:     botConfig.RedisDSN,
		Password: botConfig.RedisPassword,
		DB:       0,
	})

	httpClient := client.HttpClient{
		Timeout: time.Second * 20,
	}
	coinbase := client.Coinbase{
		ApiKey:           botConfig.ApiKey,
		ApiSecret:        botConfig.ApiSecret,
		AdvancedTradeDSN: botConfig.AdvancedTradeDSN,
		ExchangeDSN:      botConfig.ExchangeDSN,
		HttpClient:       &httpClient,
	}

	orderRepository := repository.OrderRepository{
		DB:  db,
		RDB: rdb,
		Ctx: &ctx,
	}
	productRepository := repository.ProductRepository{
		RDB: rdb,
		Ctx: &ctx,
	}

	formatter := utils.Formatter{}
	timeService := utils.TimeHelper{}

	if !formatter.IsSupportedGranularity(botConfig.GranularitySecs) {
		log.Fatal(fmt.Sprintf("config: GRANULARITY_SECS %d has no candle interval", botConfig.GranularitySecs))
	}

	balanceService := exchange.BalanceService{
		RDB:      rdb,
		Ctx:      &ctx,
		Coinbase: &coinbase,
	}

	productService := exchange.ProductService{
		Coinbase:          &coinbase,
		ProductRepository: &productRepository,
		QuoteCurrency:     botConfig.QuoteCurrency,
		Allowlist:         botConfig.Allowlist,
		Denylist:          botConfig.Denylist,
		MaxProducts:       botConfig.MaxProducts,
		UniverseTTL:       time.Second * time.Duration(botConfig.ProductRefreshSecs),
		Debug:             botConfig.Debug,
	}

	candleService := exchange.CandleService{
		Coinbase:        &coinbase,
		RDB:             rdb,
		Ctx:             &ctx,
		TimeService:     &timeService,
		Formatter:       &formatter,
		GranularitySecs: botConfig.GranularitySecs,
		ClosedOnly:      botConfig.StrictClosedOnly,
	}

	var signalStrategy strategy.SignalStrategy
	switch botConfig.StrategyName {
	case model.StrategyRatio:
		signalStrategy = &strategy.RatioStrategy{
			TradeService: &coinbase,
			TradesLimit:  botConfig.TradesLimit,
			MinTrades:    botConfig.MinTrades,
			MinBuyRatio:  botConfig.MinBuyRatio,
			Debug:        botConfig.Debug,
		}
	default:
		signalStrategy = &strategy.IndicatorStrategy{
			CandleService:  &candleService,
			RsiLength:      botConfig.RsiLength,
			RsiBuyBelow:    botConfig.RsiBuyBelow,
			SmaShortLength: botConfig.SmaShortLength,
			SmaLongLength:  botConfig.SmaLongLength,
			Debug:          botConfig.Debug,
		}
	}

	sizingService := exchange.SizingService{
		BalanceService: &balanceService,
		Formatter:      &formatter,
		QuoteCurrency:  botConfig.QuoteCurrency,
		BuyPercent:     botConfig.BuyPercent,
		FixedNotional:  botConfig.FixedNotional,
	}

	orderExecutor := exchange.OrderExecutor{
		Coinbase:        &coinbase,
		OrderRepository: &orderRepository,
		BalanceService:  &balanceService,
		TimeService:     &timeService,
		QuoteCurrency:   botConfig.QuoteCurrency,
		PortfolioUuid:   resolvePortfolioUuid(&coinbase, botConfig),
	}

	scanner := service.Scanner{
		ProductService:     &productService,
		SizingService:      &sizingService,
		OrderExecutor:      &orderExecutor,
		OrderRepository:    &orderRepository,
		ProductRepository:  &productRepository,
		Strategy:           signalStrategy,
		TimeService:        &timeService,
		Metrics:            service.NewScanMetrics(),
		QuoteCurrency:      botConfig.QuoteCurrency,
		GranularitySecs:    botConfig.GranularitySecs,
		BoundaryPadSecs:    botConfig.BoundaryPadSecs,
		ProductRefreshSecs: botConfig.ProductRefreshSecs,
		ProductDelayMs:     botConfig.ProductDelayMs,
		TopTickerOverride:  botConfig.TopTickerOverride,
		Debug:              botConfig.Debug,
	}

	botController := controller.BotController{
		Scanner:           &scanner,
		OrderRepository:   &orderRepository,
		ProductRepository: &productRepository,
	}

	return Container{
		BotConfig:         botConfig,
		Db:                db,
		TimeService:       &timeService,
		Coinbase:          &coinbase,
		OrderRepository:   &orderRepository,
		ProductRepository: &productRepository,
		Scanner:           &scanner,
		BotController:     &botController,
	}
}

// resolvePortfolioUuid prefers the configured uuid, else looks the
// portfolio up by name; an unresolved portfolio leaves orders unscoped.
func resolvePortfolioUuid(coinbase client.AccountAPIInterface, botConfig BotConfig) string {
	if len(botConfig.PortfolioUuid) > 0 {
		return botConfig.PortfolioUuid
	}

	if len(botConfig.PortfolioName) == 0 {
		return ""
	}

	portfolios, err := coinbase.GetPortfolios()
	if err != nil {
		log.Printf("Error listing portfolios: %s", err.Error())

		return ""
	}

	for _, portfolio := range portfolios {
		if strings.EqualFold(strings.TrimSpace(portfolio.Name), botConfig.PortfolioName) {
			log.Printf("Using portfolio '%s' (%s)", botConfig.PortfolioName, portfolio.Uuid)

			return portfolio.Uuid
		}
	}

	log.Printf("Portfolio named '%s' not found; orders will be unscoped", botConfig.PortfolioName)

	return ""
}

type Container struct {
	BotConfig         BotConfig
	Db                *sql.DB
	TimeService       *utils.TimeHelper
	Coinbase          *client.Coinbase
	OrderRepository   *repository.OrderRepository
	ProductRepository *repository.ProductRepository
	Scanner           *service.Scanner
	BotController     *controller.BotController
}

func (c *Container) StartHttpServer() {
	http.HandleFunc("/status", c.BotController.GetStatusAction)
	http.HandleFunc("/order/list", c.BotController.GetOrderListAction)
	http.HandleFunc("/price/", c.BotController.GetPriceAction)
	http.Handle("/metrics", promhttp.Handler())

	go func() {
		_ = http.ListenAndServe(":8080", nil)
	}()
}

// StartTickerStream subscribes the websocket ticker listener to the scan
// universe once the scanner has resolved it. No-op without a WS DSN.
func (c *Container) StartTickerStream() {
	if len(c.BotConfig.WebsocketDSN) == 0 {
		return
	}

	tickerChannel := make(chan []byte)
	tickerListener := service.TickerListener{
		ProductRepository: c.ProductRepository,
		TickerChannel:     tickerChannel,
	}

	go tickerListener.ListenAll()

	go func() {
		for len(c.Scanner.GetProducts()) == 0 {
			c.TimeService.WaitSeconds(1)
		}

		productIds := make([]string, 0)
		for _, product := range c.Scanner.GetProducts() {
			productIds = append(productIds, product.ProductId)
		}

		client.Listen(c.BotConfig.WebsocketDSN, tickerChannel, productIds)
		log.Printf("Ticker stream subscribed to %d products", len(productIds))
	}()
}
