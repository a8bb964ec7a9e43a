package service

import (
	"context"
	"errors"

	"cafe-commerce/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

func validRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

// CreateReview inserts one review per (customer, product) pair; the
// duplicate check and insert share a transaction, and the composite unique
// index backs it up.
func (s *ReviewService) CreateReview(ctx context.Context, customerID, productID int64, rating int, comment string) (*model.Review, error) {
	if !validRating(rating) {
		return nil, &ValidationError{Msg: "Rating must be between 1 and 5"}
	}

	review := model.Review{
		CustomerID: customerID,
		ProductID:  productID,
		Rating:     rating,
		Comment:    comment,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "Product"}
			}
			return err
		}

		var cnt int64
		if err := tx.Model(&model.Review{}).
			Where("customer_id = ? AND product_id = ?", customerID, productID).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrDuplicateReview
		}

		return tx.Create(&review).Error
	})
	if err != nil {
		return nil, err
	}

	return &review, nil
}

// ListProductReviews returns a product's reviews newest-first together with
// the average rating rounded to 2 decimals.
func (s *ReviewService) ListProductReviews(ctx context.Context, productID int64) (*model.Product, []model.Review, decimal.Decimal, error) {
	var product model.Product
	if err := s.db.WithContext(ctx).First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, decimal.Zero, &NotFoundError{Resource: "Product"}
		}
		return nil, nil, decimal.Zero, err
	}

	var reviews []model.Review
	if err := s.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("review_date DESC").
		Find(&reviews).Error; err != nil {
		return nil, nil, decimal.Zero, err
	}

	avg := decimal.Zero
	if len(reviews) > 0 {
		var sum int64
		for _, r := range reviews {
			sum += int64(r.Rating)
		}
		avg = decimal.NewFromInt(sum).
			Div(decimal.NewFromInt(int64(len(reviews)))).
			Round(2)
	}

	return &product, reviews, avg, nil
}

type UpdateReviewInput struct {
	Rating  *int
	Comment *string
}

// UpdateReview lets only the author change rating and/or comment.
func (s *ReviewService) UpdateReview(ctx context.Context, customerID, reviewID int64, in UpdateReviewInput) (*model.Review, error) {
	var review model.Review
	if err := s.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", reviewID, customerID).
		First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Review"}
		}
		return nil, err
	}

	updates := make(map[string]interface{})
	if in.Rating != nil {
		if !validRating(*in.Rating) {
			return nil, &ValidationError{Msg: "Rating must be between 1 and 5"}
		}
		updates["rating"] = *in.Rating
	}
	if in.Comment != nil {
		updates["comment"] = *in.Comment
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&review).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return &review, nil
}

// DeleteReview removes a review; only the author's delete matches any row.
func (s *ReviewService) DeleteReview(ctx context.Context, customerID, reviewID int64) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", reviewID, customerID).
		Delete(&model.Review{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Resource: "Review"}
	}
	return nil
}

func (s *ReviewService) ListAllReviews(ctx context.Context) ([]model.Review, error) {
	var reviews []model.Review
	if err := s.db.WithContext(ctx).Order("review_date DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *ReviewService) ListCustomerReviews(ctx context.Context, customerID int64) ([]model.Review, error) {
	var reviews []model.Review
	if err := s.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("review_date DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
