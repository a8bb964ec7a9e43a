package service

import (
	"context"
	"errors"

	"cafe-commerce/internal/model"

	"gorm.io/gorm"
)

type RewardsService struct {
	db *gorm.DB
}

func NewRewardsService(db *gorm.DB) *RewardsService {
	return &RewardsService{db: db}
}

// GetLedger returns the customer's current balance and the full
// transaction history, newest first.
func (s *RewardsService) GetLedger(ctx context.Context, customerID int64) (*model.Customer, []model.RewardTransaction, error) {
	var customer model.Customer
	if err := s.db.WithContext(ctx).First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, &NotFoundError{Resource: "Customer"}
		}
		return nil, nil, err
	}

	var transactions []model.RewardTransaction
	if err := s.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("transaction_date DESC").
		Find(&transactions).Error; err != nil {
		return nil, nil, err
	}

	return &customer, transactions, nil
}
