package service

import (
	"path/filepath"
	"testing"

	"cafe-commerce/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testPassword is the plaintext behind every fixture customer.
const testPassword = "secret123"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.Customer{},
		&model.Category{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.Payment{},
		&model.Review{},
		&model.RewardTransaction{},
		&model.Admin{},
	))

	return db
}

func createCustomer(t *testing.T, db *gorm.DB, email string) *model.Customer {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	customer := model.Customer{
		Name:     "Test Customer",
		Email:    email,
		Password: string(hashed),
	}
	require.NoError(t, db.Create(&customer).Error)
	return &customer
}

func createProduct(t *testing.T, db *gorm.DB, name string, price int64, stock int) *model.Product {
	t.Helper()

	category := model.Category{Name: "Test Category " + name}
	require.NoError(t, db.Create(&category).Error)

	product := model.Product{
		Name:          name,
		CategoryID:    category.ID,
		Description:   name + " description",
		Price:         decimal.NewFromInt(price),
		StockQuantity: stock,
	}
	require.NoError(t, db.Create(&product).Error)
	return &product
}

func reloadProduct(t *testing.T, db *gorm.DB, id int64) *model.Product {
	t.Helper()

	var product model.Product
	require.NoError(t, db.First(&product, id).Error)
	return &product
}

func reloadCustomer(t *testing.T, db *gorm.DB, id int64) *model.Customer {
	t.Helper()

	var customer model.Customer
	require.NoError(t, db.First(&customer, id).Error)
	return &customer
}
