package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// CanCancel reports whether cancellation is a legal transition.
// Pending -> Cancelled is the only reachable one.
func (s OrderStatus) CanCancel() bool {
	return s == OrderStatusPending
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "Pending"
	PaymentStatusPaid     PaymentStatus = "Paid"
	PaymentStatusRefunded PaymentStatus = "Refunded"
)

// Order is the order header; it owns its items and its single payment.
type Order struct {
	ID          int64           `gorm:"primaryKey" json:"id"`
	OrderNo     string          `gorm:"type:varchar(64);uniqueIndex" json:"order_no"`
	CustomerID  int64           `gorm:"index;not null" json:"customer_id"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status      OrderStatus     `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	Items       []OrderItem     `gorm:"foreignKey:OrderID" json:"items"`
	Payment     *Payment        `gorm:"foreignKey:OrderID" json:"payment,omitempty"`
	OrderDate   time.Time       `gorm:"autoCreateTime" json:"order_date"`
	UpdatedAt   time.Time       `json:"-"`
}

// OrderItem snapshots name, price and subtotal at order time.
type OrderItem struct {
	ID          int64           `gorm:"primaryKey" json:"id"`
	OrderID     int64           `gorm:"index;not null" json:"order_id"`
	ProductID   int64           `gorm:"index;not null" json:"product_id"`
	ProductName string          `gorm:"type:varchar(100)" json:"product_name"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
}

type Payment struct {
	ID        int64           `gorm:"primaryKey" json:"id"`
	OrderID   int64           `gorm:"uniqueIndex;not null" json:"order_id"`
	Method    string          `gorm:"type:varchar(50);not null" json:"method"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Status    PaymentStatus   `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"-"`
}

func (Order) TableName() string {
	return "orders"
}

func (OrderItem) TableName() string {
	return "order_items"
}

func (Payment) TableName() string {
	return "payments"
}
