package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gitlab.com/open-soft/go-scanner-bot/src/model"
)

// BotConfig is read from the environment once at startup and then passed
// into the services unchanged; nothing reads os.Getenv after this.
type BotConfig struct {
	ApiKey    string
	ApiSecret string

	AdvancedTradeDSN string
	ExchangeDSN      string
	WebsocketDSN     string
	DatabaseDSN      string
	RedisDSN         string
	RedisPassword    string

	QuoteCurrency string
	BuyPercent    decimal.Decimal
	FixedNotional decimal.Decimal

	MaxProducts        int
	ProductRefreshSecs int64
	Allowlist          map[string]bool
	Denylist           map[string]bool
	TopTickerOverride  string

	StrategyName     string
	GranularitySecs  int64
	BoundaryPadSecs  int64
	StrictClosedOnly bool
	ProductDelayMs   int64

	RsiLength      int
	RsiBuyBelow    float64
	SmaShortLength int
	SmaLongLength  int

	TradesLimit int64
	MinTrades   int
	MinBuyRatio float64

	PortfolioUuid string
	PortfolioName string

	Debug bool
}

func LoadBotConfig() (BotConfig, error) {
	cfg := BotConfig{
		ApiKey:    os.Getenv("COINBASE_API_KEY"),
		ApiSecret: os.Getenv("COINBASE_API_SECRET"),

		AdvancedTradeDSN: envString("COINBASE_API_DSN", "https://api.coinbase.com"),
		ExchangeDSN:      envString("COINBASE_EXCHANGE_DSN", "https://api.exchange.coinbase.com"),
		WebsocketDSN:     os.Getenv("COINBASE_WS_DSN"),
		DatabaseDSN:      os.Getenv("DATABASE_DSN"),
		RedisDSN:         envString("REDIS_DSN", "redis:6379"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),

		QuoteCurrency: strings.ToUpper(envString("QUOTE_CURRENCY", "USD")),
		BuyPercent:    envDecimal("BUY_PCT", "0"),
		FixedNotional: envDecimal("BUY_USD", "5"),

		MaxProducts:        envInt("MAX_PRODUCTS", 60),
		ProductRefreshSecs: envInt64("PRODUCT_REFRESH_SECS", 3600),
		Allowlist:          envAssetSet("ALLOWLIST", ""),
		Denylist:           envAssetSet("DENYLIST", "USDC,USDT,EURT,WBTC"),
		TopTickerOverride:  strings.ToUpper(strings.TrimSpace(os.Getenv("TOP_TICKER_OVERRIDE"))),

		StrategyName:     envString("STRATEGY", "indicator"),
		GranularitySecs:  envInt64("GRANULARITY_SECS", 900),
		BoundaryPadSecs:  envInt64("BOUNDARY_PAD_SECS", 5),
		StrictClosedOnly: envBool("STRICT_CLOSED_ONLY", true),
		ProductDelayMs:   envInt64("PRODUCT_DELAY_MS", 50),

		RsiLength:      envInt("RSI_LENGTH", 14),
		RsiBuyBelow:    envFloat("RSI_BUY_BELOW", 30.00),
		SmaShortLength: envInt("SMA_SHORT", 60),
		SmaLongLength:  envInt("SMA_LONG", 240),

		TradesLimit: envInt64("TRADES_LIMIT", 100),
		MinTrades:   envInt("MIN_TRADES", 30),
		MinBuyRatio: envFloat("MIN_BUY_RATIO", 0.60),

		PortfolioUuid: strings.TrimSpace(os.Getenv("PORTFOLIO_UUID")),
		PortfolioName: strings.TrimSpace(envString("PORTFOLIO_NAME", "bot")),

		Debug: envBool("DEBUG", false),
	}

	return cfg, cfg.Validate()
}

func (c BotConfig) Validate() error {
	if len(c.QuoteCurrency) == 0 {
		return fmt.Errorf("config: QUOTE_CURRENCY must not be empty")
	}

	if c.BuyPercent.IsPositive() {
		if c.BuyPercent.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("config: BUY_PCT must be in (0, 1], got %s", c.BuyPercent.String())
		}
	} else if !c.FixedNotional.IsPositive() {
		return fmt.Errorf("config: BUY_USD must be > 0 when BUY_PCT is not set")
	}

	if c.GranularitySecs <= 0 {
		return fmt.Errorf("config: GRANULARITY_SECS must be > 0")
	}

	if c.StrategyName != model.StrategyIndicator && c.StrategyName != model.StrategyRatio {
		return fmt.Errorf("config: STRATEGY must be %q or %q, got %q", model.StrategyIndicator, model.StrategyRatio, c.StrategyName)
	}

	if c.StrategyName == model.StrategyIndicator {
		if c.RsiLength <= 0 || c.SmaShortLength <= 0 || c.SmaLongLength <= 0 {
			return fmt.Errorf("config: indicator lookbacks must be > 0")
		}

		if c.SmaShortLength >= c.SmaLongLength {
			return fmt.Errorf("config: SMA_SHORT (%d) must be below SMA_LONG (%d)", c.SmaShortLength, c.SmaLongLength)
		}
	}

	if c.StrategyName == model.StrategyRatio {
		if c.MinBuyRatio <= 0 || c.MinBuyRatio > 1 {
			return fmt.Errorf("config: MIN_BUY_RATIO must be in (0, 1]")
		}

		if c.TradesLimit <= 0 {
			return fmt.Errorf("config: TRADES_LIMIT must be > 0")
		}
	}

	if c.ProductRefreshSecs <= 0 {
		return fmt.Errorf("config: PRODUCT_REFRESH_SECS must be > 0")
	}

	return nil
}

func envString(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if len(value) == 0 {
		return fallback
	}

	return value
}

func envInt(key string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}

	return value
}

func envInt64(key string, fallback int64) int64 {
	value, err := strconv.ParseInt(strings.TrimSpace(os.Getenv(key)), 10, 64)
	if err != nil {
		return fallback
	}

	return value
}

func envFloat(key string, fallback float64) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(os.Getenv(key)), 64)
	if err != nil {
		return fallback
	}

	return value
}

func envDecimal(key string, fallback string) decimal.Decimal {
	value, err := decimal.NewFromString(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		value, _ = decimal.NewFromString(fallback)
	}

	return value
}

func envBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if len(value) == 0 {
		return fallback
	}

	switch value {
	case "0", "false", "no", "off":
		return false
	}

	return true
}

func envAssetSet(key string, fallback string) map[string]bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if len(raw) == 0 {
		raw = fallback
	}

	set := make(map[string]bool)
	for _, item := range strings.Split(raw, ",") {
		item = strings.ToUpper(strings.TrimSpace(item))
		if len(item) > 0 {
			set[item] = true
		}
	}

	return set
}
