package exchange

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"gitlab.com/open-soft/go-scanner-bot/src/model"
	"gitlab.com/open-soft/go-scanner-bot/src/utils"
)

type SizingServiceInterface interface {
	CalculateNotional(product model.Product) (decimal.Decimal, error)
}

// SizingService converts the configured policy into a quantized quote
// notional. BuyPercent positive selects the percent-of-balance policy,
// otherwise FixedNotional is used. Exactly one policy is active for the
// process lifetime.
type SizingService struct {
	BalanceService BalanceServiceInterface
	Formatter      *utils.Formatter

	QuoteCurrency string
	BuyPercent    decimal.Decimal
	FixedNotional decimal.Decimal
}

func (s *SizingService) CalculateNotional(product model.Product) (decimal.Decimal, error) {
	var notional decimal.Decimal

	if s.BuyPercent.IsPositive() {
		// live balance, never the cached value: a stale read here can
		// overspend across products deciding in the same cycle
		balance, err := s.BalanceService.GetAvailableBalance(s.QuoteCurrency, false)
		if err != nil {
			return decimal.Zero, err
		}

		notional = s.Formatter.RoundToIncrement(balance.Mul(s.BuyPercent), product.QuoteIncrement)

		log.Printf(
			"[%s] balance=%s %s | pct=%s -> notional=%s",
			product.ProductId,
			balance.String(),
			s.QuoteCurrency,
			s.BuyPercent.String(),
			notional.String(),
		)
	} else {
		notional = s.Formatter.RoundToIncrement(s.FixedNotional, product.QuoteIncrement)

		log.Printf("[%s] fixed notional=%s", product.ProductId, notional.String())
	}

	if !notional.IsPositive() {
		return decimal.Zero, fmt.Errorf(
			"[%s] notional rounds to zero: %w", product.ProductId, model.ErrSizingRejected,
		)
	}

	if product.HasQuoteMinSize() && notional.LessThan(product.QuoteMinSize) {
		return decimal.Zero, fmt.Errorf(
			"[%s] notional %s < quote min %s: %w",
			product.ProductId,
			notional.String(),
			product.QuoteMinSize.String(),
			model.ErrSizingRejected,
		)
	}

	return notional, nil
}
