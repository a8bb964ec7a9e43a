package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cafe-commerce/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// One reward point per 100 currency units spent.
var currencyPerPoint = decimal.NewFromInt(100)

type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

type OrderItemInput struct {
	ProductID int64
	Quantity  int
}

type PlaceOrderInput struct {
	Items         []OrderItemInput
	PaymentMethod string
	DeliveryFee   decimal.Decimal
}

// PlaceOrder runs the whole placement as one transaction: validate items,
// snapshot prices, decrement stock, record the payment and accrue reward
// points. Any failure rolls the entire sequence back.
func (s *OrderService) PlaceOrder(ctx context.Context, customerID int64, in PlaceOrderInput) (*model.Order, int, error) {
	if len(in.Items) == 0 {
		return nil, 0, &ValidationError{Msg: "Order must contain at least one item"}
	}
	if in.PaymentMethod == "" {
		return nil, 0, &ValidationError{Msg: "Payment method is required"}
	}
	if in.DeliveryFee.IsNegative() {
		return nil, 0, &ValidationError{Msg: "Delivery fee cannot be negative"}
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, 0, &ValidationError{Msg: "Item quantity must be positive"}
		}
	}

	var order model.Order
	var pointsEarned int

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		total := decimal.Zero
		items := make([]model.OrderItem, 0, len(in.Items))

		for _, item := range in.Items {
			var product model.Product
			if err := tx.First(&product, item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &NotFoundError{Resource: fmt.Sprintf("Product %d", item.ProductID)}
				}
				return err
			}

			if product.StockQuantity < item.Quantity {
				return &InsufficientStockError{ProductName: product.Name, Available: product.StockQuantity}
			}

			subtotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			total = total.Add(subtotal)

			items = append(items, model.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				UnitPrice:   product.Price,
				Quantity:    item.Quantity,
				Subtotal:    subtotal,
			})
		}

		total = total.Add(in.DeliveryFee)

		order = model.Order{
			OrderNo:     uuid.New().String(),
			CustomerID:  customerID,
			TotalAmount: total,
			Status:      model.OrderStatusPending,
			Items:       items,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Guarded decrement: zero rows affected means another request got
		// there first, so the whole order aborts.
		for _, item := range in.Items {
			res := tx.Model(&model.Product{}).
				Where("id = ? AND stock_quantity >= ?", item.ProductID, item.Quantity).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				var product model.Product
				if err := tx.First(&product, item.ProductID).Error; err != nil {
					return err
				}
				return &InsufficientStockError{ProductName: product.Name, Available: product.StockQuantity}
			}
		}

		payment := model.Payment{
			OrderID: order.ID,
			Method:  in.PaymentMethod,
			Amount:  total,
			Status:  paymentStatusForMethod(in.PaymentMethod),
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		order.Payment = &payment

		pointsEarned = int(total.Div(currencyPerPoint).IntPart())
		if pointsEarned > 0 {
			var customer model.Customer
			if err := tx.First(&customer, customerID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &NotFoundError{Resource: "Customer"}
				}
				return err
			}

			res := tx.Model(&model.Customer{}).
				Where("id = ?", customerID).
				UpdateColumn("reward_points", gorm.Expr("reward_points + ?", pointsEarned))
			if res.Error != nil {
				return res.Error
			}

			reward := model.RewardTransaction{
				CustomerID:   customerID,
				PointsEarned: pointsEarned,
				Description:  fmt.Sprintf("Points earned from Order #%d", order.ID),
			}
			if err := tx.Create(&reward).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return &order, pointsEarned, nil
}

// CancelOrder reverses a pending order: stock back, payment refunded,
// points deducted. The deduction is recomputed from the order total, the
// same way accrual computed it, and the balance never goes below zero.
func (s *OrderService) CancelOrder(ctx context.Context, customerID, orderID int64) (*model.Order, error) {
	var order model.Order

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").Preload("Payment").
			Where("id = ? AND customer_id = ?", orderID, customerID).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "Order"}
			}
			return err
		}

		if !order.Status.CanCancel() {
			return ErrOrderNotCancellable
		}

		// Guarded transition, same shape as the stock decrement in
		// PlaceOrder: if a concurrent cancellation already flipped the
		// status, zero rows match and nothing below runs twice.
		res := tx.Model(&model.Order{}).
			Where("id = ? AND status = ?", order.ID, model.OrderStatusPending).
			Update("status", model.OrderStatusCancelled)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrOrderNotCancellable
		}
		order.Status = model.OrderStatusCancelled

		for _, item := range order.Items {
			res := tx.Model(&model.Product{}).
				Where("id = ?", item.ProductID).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
		}

		if err := tx.Model(&model.Payment{}).
			Where("order_id = ?", order.ID).
			Update("status", model.PaymentStatusRefunded).Error; err != nil {
			return err
		}
		if order.Payment != nil {
			order.Payment.Status = model.PaymentStatusRefunded
		}

		pointsToDeduct := int(order.TotalAmount.Div(currencyPerPoint).IntPart())
		if pointsToDeduct > 0 {
			// Floored in one statement so concurrent deductions for the
			// same customer cannot lose an update.
			if err := tx.Model(&model.Customer{}).
				Where("id = ?", customerID).
				UpdateColumn("reward_points", gorm.Expr(
					"CASE WHEN reward_points > ? THEN reward_points - ? ELSE 0 END",
					pointsToDeduct, pointsToDeduct,
				)).Error; err != nil {
				return err
			}

			reward := model.RewardTransaction{
				CustomerID:     customerID,
				PointsRedeemed: pointsToDeduct,
				Description:    fmt.Sprintf("Points deducted due to Order #%d cancellation", order.ID),
			}
			if err := tx.Create(&reward).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, customerID int64) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Preload("Items").
		Preload("Payment").
		Order("order_date DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder is scoped to the owning customer; anyone else sees not-found.
func (s *OrderService) GetOrder(ctx context.Context, customerID, orderID int64) (*model.Order, error) {
	var order model.Order
	err := s.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", orderID, customerID).
		Preload("Items").
		Preload("Payment").
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Order"}
		}
		return nil, err
	}
	return &order, nil
}

// Cash settles on delivery, so its payment starts Pending; every other
// method is treated as captured up front.
func paymentStatusForMethod(method string) model.PaymentStatus {
	if strings.EqualFold(method, "Cash") {
		return model.PaymentStatusPending
	}
	return model.PaymentStatusPaid
}
