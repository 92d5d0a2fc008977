package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"gitlab.com/open-soft/go-scanner-bot/src/client"
	"gitlab.com/open-soft/go-scanner-bot/src/model"
	"gitlab.com/open-soft/go-scanner-bot/src/utils"
)

// MinWindowBars keeps the request window from collapsing when a
// strategy only needs a handful of bars.
const MinWindowBars = 50

type CandleServiceInterface interface {
	GetCandleHistory(productId string, barsNeeded int64) ([]model.Candle, error)
}

// CandleService is the time-series client of the scan pipeline. It
// computes the request window, normalizes ordering to oldest-first and,
// in closed-only mode, guarantees no still-forming bar leaks through.
type CandleService struct {
	Coinbase    client.CandleAPIInterface
	RDB         *redis.Client
	Ctx         *context.Context
	TimeService utils.TimeServiceInterface
	Formatter   *utils.Formatter

	GranularitySecs int64
	ClosedOnly      bool
}

func (c *CandleService) GetCandleHistory(productId string, barsNeeded int64) ([]model.Candle, error) {
	now := c.TimeService.GetNowUnix()

	end := now
	boundary := utils.GetClosedBarBoundary(now, c.GranularitySecs)
	if c.ClosedOnly {
		end = boundary
	}

	window := barsNeeded
	if window < MinWindowBars {
		window = MinWindowBars
	}
	start := end - c.GranularitySecs*window

	cacheKey := c.getCandleCacheKey(productId, end)
	if cached, ok := c.getCached(cacheKey); ok {
		return cached, nil
	}

	candles, err := c.Coinbase.GetCandles(
		productId,
		c.Formatter.GranularityToCandleInterval(c.GranularitySecs),
		start,
		end,
	)
	if err != nil {
		log.Printf("[%s] candle history fetch: %s", productId, err.Error())

		return make([]model.Candle, 0), model.ErrDataUnavailable
	}

	// the endpoint returns newest-first
	sort.Slice(candles, func(i, j int) bool {
		return candles[i].OpenTime.Lt(candles[j].OpenTime)
	})

	if c.ClosedOnly {
		closed := make([]model.Candle, 0, len(candles))
		for _, candle := range candles {
			if candle.OpenTime.Gte(model.TimestampSec(boundary)) {
				continue
			}

			closed = append(closed, candle)
		}
		candles = closed
	}

	c.saveCache(cacheKey, candles)

	return candles, nil
}

func (c *CandleService) getCached(cacheKey string) ([]model.Candle, bool) {
	if c.RDB == nil {
		return nil, false
	}

	cached := c.RDB.Get(*c.Ctx, cacheKey).Val()
	if len(cached) == 0 {
		return nil, false
	}

	var candles []model.Candle
	if err := json.Unmarshal([]byte(cached), &candles); err != nil {
		c.RDB.Del(*c.Ctx, cacheKey)

		return nil, false
	}

	return candles, true
}

func (c *CandleService) saveCache(cacheKey string, candles []model.Candle) {
	if c.RDB == nil {
		return
	}

	if encoded, err := json.Marshal(candles); err == nil {
		c.RDB.Set(*c.Ctx, cacheKey, string(encoded), time.Minute)
	}
}

func (c *CandleService) getCandleCacheKey(productId string, end int64) string {
	return fmt.Sprintf("candle-history-%s-%d-%d", productId, c.GranularitySecs, end)
}
