package service

import (
	"context"
	"fmt"
	"testing"

	"cafe-commerce/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProductsFiltersCombineWithAND(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	hot := model.Category{Name: "Hot Drinks"}
	cold := model.Category{Name: "Cold Drinks"}
	require.NoError(t, db.Create(&hot).Error)
	require.NoError(t, db.Create(&cold).Error)

	products := []model.Product{
		{Name: "Mocha Latte", CategoryID: hot.ID, Description: "Rich chocolate coffee blend", Price: decimal.NewFromInt(550), StockQuantity: 10},
		{Name: "Espresso", CategoryID: hot.ID, Description: "Strong and bold coffee shot", Price: decimal.NewFromInt(700), StockQuantity: 10},
		{Name: "Iced Matcha", CategoryID: cold.ID, Description: "Green tea over ice", Price: decimal.NewFromInt(500), StockQuantity: 10},
	}
	require.NoError(t, db.Create(&products).Error)

	min := decimal.NewFromInt(600)
	got, err := svc.ListProducts(context.Background(), ProductFilter{
		CategoryID: &hot.ID,
		Search:     "COFFEE",
		MinPrice:   &min,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Espresso", got[0].Name)
}

func TestListProductsSearchMatchesNameOrDescription(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	createProduct(t, db, "Mocha Latte", 550, 10)
	p := createProduct(t, db, "Espresso", 700, 10)
	require.NoError(t, db.Model(p).Update("description", "A strong mocha-free shot").Error)

	got, err := svc.ListProducts(context.Background(), ProductFilter{Search: "mocha"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestGetProductNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	_, err := svc.GetProduct(context.Background(), 999)
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestListProductsByCategoryUnknownCategory(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	_, _, err := svc.ListProductsByCategory(context.Background(), 42)
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestFeaturedProductsTopEightByStockExcludingZero(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	for i := 1; i <= 10; i++ {
		createProduct(t, db, fmt.Sprintf("Product %d", i), 500, i*10)
	}
	createProduct(t, db, "Sold Out", 500, 0)

	got, err := svc.FeaturedProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 8)

	assert.Equal(t, 100, got[0].StockQuantity)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].StockQuantity, got[i].StockQuantity)
		assert.Greater(t, got[i].StockQuantity, 0)
	}
}
