package exchange

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gitlab.com/open-soft/go-scanner-bot/src/client"
)

type BalanceServiceInterface interface {
	GetAvailableBalance(currency string, cache bool) (decimal.Decimal, error)
	InvalidateBalanceCache(currency string)
}

type BalanceService struct {
	RDB      *redis.Client
	Ctx      *context.Context
	Coinbase client.AccountAPIInterface
}

func (b *BalanceService) InvalidateBalanceCache(currency string) {
	b.RDB.Del(*b.Ctx, b.getBalanceCacheKey(currency))
}

// GetAvailableBalance returns the available balance of one currency.
// The sizing path always passes cache=false: it must see the balance as
// it is right before the order, not as it was a minute ago.
func (b *BalanceService) GetAvailableBalance(currency string, cache bool) (decimal.Decimal, error) {
	cached := b.RDB.Get(*b.Ctx, b.getBalanceCacheKey(currency)).Val()

	if len(cached) > 0 && cache {
		balanceCached, err := decimal.NewFromString(cached)

		if err == nil {
			return balanceCached, nil
		}
	}

	accounts, err := b.Coinbase.GetAccounts()

	if err != nil {
		return decimal.Zero, err
	}

	for _, account := range accounts {
		if account.IsCurrency(currency) {
			available := account.AvailableBalance.Value
			log.Printf("[%s] Available balance is: %s", currency, available.String())

			b.RDB.Set(*b.Ctx, b.getBalanceCacheKey(currency), available.String(), time.Minute)

			return available, nil
		}
	}

	return decimal.Zero, nil
}

func (b *BalanceService) getBalanceCacheKey(currency string) string {
	return fmt.Sprintf("balance-%s-available", currency)
}
