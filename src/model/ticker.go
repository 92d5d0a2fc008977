package model

// TickerEvent is one message of the Exchange websocket "ticker" channel.
type TickerEvent struct {
	Type      string `json:"type"`
	ProductId string `json:"product_id"`
	Price     Price  `json:"price"`
	Time      string `json:"time"`
}

func (t *TickerEvent) IsTicker() bool {
	return t.Type == "ticker"
}

type TickerSubscribeRequest struct {
	Type       string   `json:"type"`
	ProductIds []string `json:"product_ids"`
	Channels   []string `json:"channels"`
}
