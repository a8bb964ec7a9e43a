package seed

import (
	"log"

	"cafe-commerce/internal/model"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Run inserts the initial catalog and the default admin account. It is a
// no-op when any category already exists.
func Run(db *gorm.DB) error {
	var cnt int64
	if err := db.Model(&model.Category{}).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		log.Println("Database already seeded, skipping")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		categories := []model.Category{
			{Name: "Hot Drinks"},
			{Name: "Cold Drinks"},
			{Name: "Frappes"},
			{Name: "Shakes"},
			{Name: "Bakery"},
			{Name: "Snacks"},
		}
		if err := tx.Create(&categories).Error; err != nil {
			return err
		}

		byName := make(map[string]int64, len(categories))
		for _, c := range categories {
			byName[c.Name] = c.ID
		}

		products := []model.Product{
			{Name: "Mocha Latte", CategoryID: byName["Hot Drinks"], Description: "Rich chocolate coffee blend", Price: decimal.NewFromInt(550), StockQuantity: 100, ImageURL: "/images/mocha.jpg"},
			{Name: "Espresso", CategoryID: byName["Hot Drinks"], Description: "Strong and bold coffee shot", Price: decimal.NewFromInt(700), StockQuantity: 100, ImageURL: "/images/espresso.jpg"},
			{Name: "Cappuccino", CategoryID: byName["Hot Drinks"], Description: "Espresso with steamed milk and foam", Price: decimal.NewFromInt(600), StockQuantity: 100, ImageURL: "/images/cappuccino.jpg"},
			{Name: "Caramel Iced Latte", CategoryID: byName["Cold Drinks"], Description: "Chilled espresso with caramel and milk", Price: decimal.NewFromInt(650), StockQuantity: 100, ImageURL: "/images/caramelicedlatte.jpg"},
			{Name: "Vanilla Frappe", CategoryID: byName["Frappes"], Description: "Blended coffee with vanilla and cream", Price: decimal.NewFromInt(700), StockQuantity: 100, ImageURL: "/images/vanillafrappe.jpg"},
			{Name: "Salted Caramel Frappe", CategoryID: byName["Frappes"], Description: "Blended coffee with salted caramel and cream", Price: decimal.NewFromInt(750), StockQuantity: 100, ImageURL: "/images/saltedcaramelfrappe.jpg"},
			{Name: "Chocolate Shake", CategoryID: byName["Shakes"], Description: "Creamy shake with rich chocolate flavor", Price: decimal.NewFromInt(500), StockQuantity: 100, ImageURL: "/images/chocolateshake.jpg"},
			{Name: "Matcha", CategoryID: byName["Cold Drinks"], Description: "Delicious and soulful Matcha", Price: decimal.NewFromInt(500), StockQuantity: 100, ImageURL: "/images/matcha.jpg"},
		}
		if err := tx.Create(&products).Error; err != nil {
			return err
		}

		hashedPwd, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := model.Admin{
			Username: "admin",
			Password: string(hashedPwd),
			Role:     "Manager",
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}

		log.Println("Database seeded: 6 categories, 8 products, default admin")
		return nil
	})
}
