package model

import "time"

// RewardTransaction is an append-only ledger row; one per order placement
// or cancellation event. Never updated or deleted.
type RewardTransaction struct {
	ID              int64     `gorm:"primaryKey" json:"id"`
	CustomerID      int64     `gorm:"index;not null" json:"customer_id"`
	PointsEarned    int       `gorm:"not null;default:0" json:"points_earned"`
	PointsRedeemed  int       `gorm:"not null;default:0" json:"points_redeemed"`
	Description     string    `gorm:"type:varchar(255)" json:"description"`
	TransactionDate time.Time `gorm:"autoCreateTime" json:"transaction_date"`
}

func (RewardTransaction) TableName() string {
	return "reward_transactions"
}
