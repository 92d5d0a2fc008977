package service

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"gitlab.com/open-soft/go-scanner-bot/src/model"
	"gitlab.com/open-soft/go-scanner-bot/src/repository"
	"gitlab.com/open-soft/go-scanner-bot/src/service/exchange"
	"gitlab.com/open-soft/go-scanner-bot/src/service/strategy"
	"gitlab.com/open-soft/go-scanner-bot/src/utils"
)

// Scanner drives the perpetual scan-evaluate-act loop: refresh the
// product universe on its TTL, sleep to the next bar boundary, then walk
// the universe sequentially through strategy, sizing and submission.
// Per-product failures are logged and skipped; only an invalid config or
// an empty universe at startup stops the process.
type Scanner struct {
	ProductService    exchange.ProductServiceInterface
	SizingService     exchange.SizingServiceInterface
	OrderExecutor     exchange.OrderExecutorInterface
	OrderRepository   repository.OrderLockInterface
	ProductRepository repository.ProductStorageInterface
	Strategy          strategy.SignalStrategy
	TimeService       utils.TimeServiceInterface
	Metrics           *ScanMetrics

	QuoteCurrency      string
	GranularitySecs    int64
	BoundaryPadSecs    int64
	ProductRefreshSecs int64
	ProductDelayMs     int64
	TopTickerOverride  string
	Debug              bool

	mu          sync.RWMutex
	products    []model.Product
	refreshedAt int64
	lastResult  *model.ScanCycleResult
}

func (s *Scanner) Run() error {
	if err := s.RefreshUniverse(); err != nil {
		log.Printf("universe refresh: %s", err.Error())
	}

	if len(s.GetProducts()) == 0 {
		return errors.New("product universe is empty, nothing to scan")
	}

	log.Printf(
		"Scanner started | strategy=%s | quote=%s | granularity=%ds | products=%d",
		s.Strategy.GetName(),
		s.QuoteCurrency,
		s.GranularitySecs,
		len(s.GetProducts()),
	)

	for {
		boundary := s.WaitForBoundary()

		if s.isUniverseStale() {
			if err := s.RefreshUniverse(); err != nil {
				// keep scanning on the cached universe
				log.Printf("universe refresh failed, keeping %d cached products: %s", len(s.GetProducts()), err.Error())
			}
		}

		result := s.ScanCycle(boundary)

		s.mu.Lock()
		s.lastResult = &result
		s.mu.Unlock()

		if s.Metrics != nil {
			s.Metrics.ObserveCycle(result)
		}

		log.Printf(
			"Cycle done | boundary=%d | products=%d | signals=%d | buys=%d | took=%s",
			result.BarBoundary,
			result.Products,
			result.Signals,
			result.Buys,
			result.Duration,
		)
	}
}

// WaitForBoundary sleeps until the next bar boundary plus a small pad
// that gives the upstream time to finalize the bar, and returns the
// boundary it woke up for.
func (s *Scanner) WaitForBoundary() int64 {
	now := s.TimeService.GetNowUnix()
	boundary := utils.GetNextBarBoundary(now, s.GranularitySecs)

	s.TimeService.WaitSeconds(boundary + s.BoundaryPadSecs - now)

	return boundary
}

func (s *Scanner) ScanCycle(boundary int64) model.ScanCycleResult {
	started := time.Now()
	products := s.GetProducts()

	result := model.ScanCycleResult{
		BarBoundary: boundary,
		Products:    len(products),
	}

	for _, product := range products {
		s.scanProduct(product, &result)
		s.TimeService.WaitMilliseconds(s.ProductDelayMs)
	}

	result.Duration = time.Since(started)

	return result
}

func (s *Scanner) scanProduct(product model.Product, result *model.ScanCycleResult) {
	if s.OrderRepository.HasBuyLock(product.ProductId) {
		if s.Debug {
			log.Printf("[%s] buy lock is active, skipping", product.ProductId)
		}
		s.observeSkip("buy_lock")

		return
	}

	decision := s.Strategy.Decide(product)

	if !decision.IsBuy() {
		return
	}

	result.Signals++
	log.Printf("[%s] BUY signal from %s, params=%v", product.ProductId, decision.StrategyName, decision.Params)

	// re-read increments and minimums right before sizing
	meta, err := s.ProductService.GetProduct(product.ProductId)
	if err != nil {
		log.Printf("[%s] product meta fetch: %s", product.ProductId, err.Error())
		meta = product
	}

	notional, err := s.SizingService.CalculateNotional(meta)
	if err != nil {
		log.Printf("%s", err.Error())

		if errors.Is(err, model.ErrSizingRejected) {
			s.observeSkip("sizing_rejected")
		} else {
			s.observeSkip("balance_unavailable")
		}

		return
	}

	_, err = s.OrderExecutor.ExecuteBuy(meta, notional)
	if err != nil {
		log.Printf("%s", err.Error())
		s.observeSkip("order_failed")

		return
	}

	result.Buys++
	s.OrderRepository.LockBuy(product.ProductId, s.GranularitySecs)
}

func (s *Scanner) RefreshUniverse() error {
	if len(s.TopTickerOverride) > 0 {
		productId := fmt.Sprintf("%s-%s", s.TopTickerOverride, s.QuoteCurrency)

		product, err := s.ProductService.GetProduct(productId)
		if err != nil {
			return err
		}

		log.Printf("Using override product %s", productId)
		s.setProducts([]model.Product{product})

		return nil
	}

	products, err := s.ProductService.GetTradableProducts()
	if err != nil {
		if len(s.GetProducts()) == 0 && s.ProductRepository != nil {
			// cold start: fall back to the universe cached by a previous run
			cached := s.ProductRepository.GetUniverse()
			if len(cached) > 0 {
				log.Printf("Using cached universe of %d products", len(cached))
				s.setProducts(cached)

				return nil
			}
		}

		return err
	}

	s.setProducts(products)

	return nil
}

func (s *Scanner) GetProducts() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.products
}

func (s *Scanner) GetLastResult() *model.ScanCycleResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastResult
}

func (s *Scanner) setProducts(products []model.Product) {
	s.mu.Lock()
	s.products = products
	s.refreshedAt = s.TimeService.GetNowUnix()
	s.mu.Unlock()
}

func (s *Scanner) isUniverseStale() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.TimeService.GetNowUnix()-s.refreshedAt >= s.ProductRefreshSecs
}

func (s *Scanner) observeSkip(reason string) {
	if s.Metrics != nil {
		s.Metrics.ObserveSkip(reason)
	}
}
