package exchange

import (
	"log"
	"sort"
	"strings"
	"time"

	"gitlab.com/open-soft/go-scanner-bot/src/client"
	"gitlab.com/open-soft/go-scanner-bot/src/model"
	"gitlab.com/open-soft/go-scanner-bot/src/repository"
)

type ProductServiceInterface interface {
	GetTradableProducts() ([]model.Product, error)
	GetProduct(productId string) (model.Product, error)
}

// ProductService turns the raw Advanced Trade listing into the scan
// universe: quote-currency match, tradability, allow/deny lists, sorted
// by 24h volume with an optional top-N cap.
type ProductService struct {
	Coinbase          client.ProductAPIInterface
	ProductRepository repository.ProductStorageInterface

	QuoteCurrency string
	Allowlist     map[string]bool
	Denylist      map[string]bool
	MaxProducts   int
	UniverseTTL   time.Duration
	Debug         bool
}

func (p *ProductService) GetTradableProducts() ([]model.Product, error) {
	products, err := p.Coinbase.GetProducts()
	if err != nil {
		return make([]model.Product, 0), err
	}

	filtered := make([]model.Product, 0)

	for _, product := range products {
		if len(product.ProductId) == 0 || !product.IsTradable() {
			continue
		}

		if !strings.EqualFold(product.QuoteCurrency, p.QuoteCurrency) {
			continue
		}

		base := product.GetBaseAsset()

		if len(p.Allowlist) > 0 && !p.Allowlist[base] {
			continue
		}

		if p.Denylist[base] {
			continue
		}

		filtered = append(filtered, product)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Volume24h.GreaterThan(filtered[j].Volume24h)
	})

	if p.MaxProducts > 0 && len(filtered) > p.MaxProducts {
		filtered = filtered[0:p.MaxProducts]
	}

	if p.Debug {
		log.Printf("[%s] products considered: %d (top by 24h volume)", p.QuoteCurrency, len(filtered))
	}

	p.ProductRepository.SaveUniverse(filtered, p.UniverseTTL)

	return filtered, nil
}

func (p *ProductService) GetProduct(productId string) (model.Product, error) {
	return p.Coinbase.GetProduct(productId)
}
