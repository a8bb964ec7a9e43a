package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"cafe-commerce/internal/model"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CartService keeps one Redis hash per customer: field = product id,
// value = quantity. Carts are scratch state; orders take their items from
// the request body, so cart contents never enter a DB transaction.
type CartService struct {
	rdb *redis.Client
	db  *gorm.DB
}

func NewCartService(rdb *redis.Client, db *gorm.DB) *CartService {
	return &CartService{rdb: rdb, db: db}
}

type CartItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

func cartKey(customerID int64) string {
	return fmt.Sprintf("cart:%d", customerID)
}

// AddItem upserts a cart line. The product must exist.
func (s *CartService) AddItem(ctx context.Context, customerID, productID int64, quantity int) error {
	if quantity <= 0 {
		return &ValidationError{Msg: "Item quantity must be positive"}
	}

	var product model.Product
	if err := s.db.WithContext(ctx).First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "Product"}
		}
		return err
	}

	field := strconv.FormatInt(productID, 10)
	return s.rdb.HSet(ctx, cartKey(customerID), field, quantity).Err()
}

func (s *CartService) GetCart(ctx context.Context, customerID int64) ([]CartItem, error) {
	val, err := s.rdb.HGetAll(ctx, cartKey(customerID)).Result()
	if err != nil {
		return nil, err
	}

	items := make([]CartItem, 0, len(val))
	for k, v := range val {
		productID, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			continue
		}
		quantity, err := strconv.Atoi(v)
		if err != nil {
			continue
		}
		items = append(items, CartItem{ProductID: productID, Quantity: quantity})
	}

	// Hash iteration order is random; keep the response stable.
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })

	return items, nil
}

func (s *CartService) RemoveItem(ctx context.Context, customerID, productID int64) error {
	field := strconv.FormatInt(productID, 10)
	return s.rdb.HDel(ctx, cartKey(customerID), field).Err()
}

func (s *CartService) ClearCart(ctx context.Context, customerID int64) error {
	return s.rdb.Del(ctx, cartKey(customerID)).Err()
}
