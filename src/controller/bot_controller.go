package controller

import (
	"encoding/json"
	"net/http"
	"strings"

	"gitlab.com/open-soft/go-scanner-bot/src/repository"
	"gitlab.com/open-soft/go-scanner-bot/src/service"
)

type BotController struct {
	Scanner           *service.Scanner
	OrderRepository   repository.OrderStorageInterface
	ProductRepository repository.PriceStorageInterface
}

func (b *BotController) GetStatusAction(w http.ResponseWriter, req *http.Request) {
	b.writeHeaders(w)

	status := map[string]interface{}{
		"products":  len(b.Scanner.GetProducts()),
		"lastCycle": b.Scanner.GetLastResult(),
	}

	encoded, _ := json.Marshal(status)
	_, _ = w.Write(encoded)
}

func (b *BotController) GetOrderListAction(w http.ResponseWriter, req *http.Request) {
	b.writeHeaders(w)

	encoded, _ := json.Marshal(b.OrderRepository.GetOrders())
	_, _ = w.Write(encoded)
}

// GetPriceAction serves /price/{productId} from the last streamed ticker.
func (b *BotController) GetPriceAction(w http.ResponseWriter, req *http.Request) {
	b.writeHeaders(w)

	productId := strings.TrimPrefix(req.URL.Path, "/price/")
	if len(productId) == 0 {
		http.Error(w, "Bad Request", http.StatusBadRequest)

		return
	}

	encoded, _ := json.Marshal(map[string]interface{}{
		"productId": productId,
		"price":     b.ProductRepository.GetLastPrice(productId),
	})
	_, _ = w.Write(encoded)
}

func (b *BotController) writeHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")
}
