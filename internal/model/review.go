package model

import "time"

// Review holds one rating per (customer, product) pair, enforced by the
// composite unique index.
type Review struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	CustomerID int64     `gorm:"uniqueIndex:uni_customer_product;not null" json:"customer_id"`
	ProductID  int64     `gorm:"uniqueIndex:uni_customer_product;not null" json:"product_id"`
	Rating     int       `gorm:"type:tinyint(1);not null" json:"rating"`
	Comment    string    `gorm:"type:text" json:"comment"`
	ReviewDate time.Time `gorm:"autoCreateTime" json:"review_date"`
	UpdatedAt  time.Time `json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}
