package service

import (
	"encoding/json"

	"gitlab.com/open-soft/go-scanner-bot/src/model"
	"gitlab.com/open-soft/go-scanner-bot/src/repository"
)

// TickerListener consumes the Exchange websocket ticker channel and
// keeps each product's last trade price in redis for the HTTP surface.
// It is observability only; the scan pipeline never reads these prices.
type TickerListener struct {
	ProductRepository repository.PriceStorageInterface
	TickerChannel     chan []byte
}

func (t *TickerListener) ListenAll() {
	for {
		message := <-t.TickerChannel

		var event model.TickerEvent
		err := json.Unmarshal(message, &event)
		if err != nil || !event.IsTicker() || len(event.ProductId) == 0 {
			continue
		}

		t.ProductRepository.SaveLastPrice(event.ProductId, event.Price.Value())
	}
}
