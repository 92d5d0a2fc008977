package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gitlab.com/open-soft/go-scanner-bot/src/model"
)

type OrderStorageInterface interface {
	Create(order model.Order) (*int64, error)
	GetOrders() []model.Order
}

type OrderLockInterface interface {
	LockBuy(productId string, seconds int64)
	HasBuyLock(productId string) bool
}

type OrderRepository struct {
	DB  *sql.DB
	RDB *redis.Client
	Ctx *context.Context
}

func (repo *OrderRepository) Create(order model.Order) (*int64, error) {
	res, err := repo.DB.Exec(`
		INSERT INTO orders SET
			product_id = ?,
			operation = ?,
			notional = ?,
			client_order_id = ?,
			external_id = ?,
			status = ?,
			created_at = ?
	`,
		order.ProductId,
		order.Operation,
		order.Notional,
		order.ClientOrderId,
		order.ExternalId,
		order.Status,
		order.CreatedAt,
	)

	if err != nil {
		log.Println(err)

		return nil, err
	}

	lastId, err := res.LastInsertId()

	if err != nil {
		log.Println(err)

		return nil, err
	}

	return &lastId, nil
}

func (repo *OrderRepository) GetOrders() []model.Order {
	res, err := repo.DB.Query(`
		SELECT
			o.id as Id,
			o.product_id as ProductId,
			o.operation as Operation,
			o.notional as Notional,
			o.client_order_id as ClientOrderId,
			o.external_id as ExternalId,
			o.status as Status,
			o.created_at as CreatedAt
		FROM orders o
		ORDER BY o.id DESC
		LIMIT 100
	`)
	defer res.Close()

	if err != nil {
		log.Fatal(err)
	}

	list := make([]model.Order, 0)

	for res.Next() {
		var order model.Order
		err := res.Scan(
			&order.Id,
			&order.ProductId,
			&order.Operation,
			&order.Notional,
			&order.ClientOrderId,
			&order.ExternalId,
			&order.Status,
			&order.CreatedAt,
		)

		if err != nil {
			log.Fatal(err)
		}

		list = append(list, order)
	}

	return list
}

// LockBuy marks a product as bought for the rest of the bar so one bar
// boundary can never trigger two orders for the same product.
func (repo *OrderRepository) LockBuy(productId string, seconds int64) {
	repo.RDB.SetNX(
		*repo.Ctx,
		repo.getBuyLockKey(productId),
		"lock",
		time.Second*time.Duration(seconds),
	).Val()
}

func (repo *OrderRepository) HasBuyLock(productId string) bool {
	return len(repo.RDB.Get(*repo.Ctx, repo.getBuyLockKey(productId)).Val()) > 0
}

func (repo *OrderRepository) getBuyLockKey(productId string) string {
	return fmt.Sprintf("buy-lock-%s", productId)
}
