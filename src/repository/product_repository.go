package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"gitlab.com/open-soft/go-scanner-bot/src/model"
)

type ProductStorageInterface interface {
	SaveUniverse(products []model.Product, ttl time.Duration)
	GetUniverse() []model.Product
}

type PriceStorageInterface interface {
	SaveLastPrice(productId string, price float64)
	GetLastPrice(productId string) float64
}

type ProductRepository struct {
	RDB *redis.Client
	Ctx *context.Context
}

func (repo *ProductRepository) SaveUniverse(products []model.Product, ttl time.Duration) {
	encoded, err := json.Marshal(products)

	if err == nil {
		repo.RDB.Set(*repo.Ctx, repo.getUniverseCacheKey(), string(encoded), ttl)
	}
}

func (repo *ProductRepository) GetUniverse() []model.Product {
	products := make([]model.Product, 0)

	res := repo.RDB.Get(*repo.Ctx, repo.getUniverseCacheKey()).Val()
	if len(res) == 0 {
		return products
	}

	err := json.Unmarshal([]byte(res), &products)
	if err != nil {
		repo.RDB.Del(*repo.Ctx, repo.getUniverseCacheKey())

		return make([]model.Product, 0)
	}

	return products
}

func (repo *ProductRepository) SaveLastPrice(productId string, price float64) {
	repo.RDB.Set(*repo.Ctx, repo.getLastPriceCacheKey(productId), price, time.Minute)
}

func (repo *ProductRepository) GetLastPrice(productId string) float64 {
	res := repo.RDB.Get(*repo.Ctx, repo.getLastPriceCacheKey(productId)).Val()
	if len(res) == 0 {
		return 0.00
	}

	price, err := strconv.ParseFloat(res, 64)
	if err != nil {
		return 0.00
	}

	return price
}

func (repo *ProductRepository) getUniverseCacheKey() string {
	return "product-universe"
}

func (repo *ProductRepository) getLastPriceCacheKey(productId string) string {
	return fmt.Sprintf("ticker-price-%s", productId)
}
