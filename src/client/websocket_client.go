package client

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"
	"gitlab.com/open-soft/go-scanner-bot/src/model"
)

// Listen subscribes to the Exchange websocket ticker channel and pumps
// raw messages into tickerChannel, reconnecting forever on failure.
func Listen(address string, tickerChannel chan<- []byte, productIds []string) *websocket.Conn {
	connection, _, err := websocket.DefaultDialer.Dial(address, nil)
	if err != nil {
		log.Printf("Coinbase WS [%s]: %s, wait and reconnect...", address, err.Error())
		time.Sleep(time.Second * 3)

		return Listen(address, tickerChannel, productIds)
	}

	subscribe := model.TickerSubscribeRequest{
		Type:       "subscribe",
		ProductIds: productIds,
		Channels:   []string{"ticker"},
	}
	serialized, _ := json.Marshal(subscribe)
	_ = connection.WriteMessage(websocket.TextMessage, serialized)

	go func() {
		for {
			_, message, err := connection.ReadMessage()
			if err != nil {
				log.Printf("Coinbase WS, read [%s]: %s", address, err.Error())

				_ = connection.Close()
				log.Printf("Coinbase WS, wait and reconnect...")
				time.Sleep(time.Second * 3)
				Listen(address, tickerChannel, productIds)

				return
			}

			tickerChannel <- message
		}
	}()

	return connection
}
