package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLedgerBalanceAndOrdering(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(db)
	svc := NewRewardsService(db)

	customer := createCustomer(t, db, "ledger@example.com")
	product := createProduct(t, db, "Caramel Iced Latte", 550, 20)

	order, points, err := orders.PlaceOrder(context.Background(), customer.ID, PlaceOrderInput{
		Items:         []OrderItemInput{{ProductID: product.ID, Quantity: 2}},
		PaymentMethod: "Card",
	})
	require.NoError(t, err)
	require.Equal(t, 11, points) // 1100 / 100

	time.Sleep(10 * time.Millisecond)

	_, err = orders.CancelOrder(context.Background(), customer.ID, order.ID)
	require.NoError(t, err)

	got, transactions, err := svc.GetLedger(context.Background(), customer.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, got.RewardPoints)
	require.Len(t, transactions, 2)

	// Newest first: the cancellation's redemption precedes the accrual.
	assert.Equal(t, 11, transactions[0].PointsRedeemed)
	assert.Equal(t, 0, transactions[0].PointsEarned)
	assert.Equal(t, 11, transactions[1].PointsEarned)
	assert.Equal(t, 0, transactions[1].PointsRedeemed)
}

func TestGetLedgerUnknownCustomer(t *testing.T) {
	db := newTestDB(t)
	svc := NewRewardsService(db)

	_, _, err := svc.GetLedger(context.Background(), 999)
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestGetLedgerEmptyHistory(t *testing.T) {
	db := newTestDB(t)
	svc := NewRewardsService(db)

	customer := createCustomer(t, db, "fresh@example.com")

	got, transactions, err := svc.GetLedger(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.RewardPoints)
	assert.Empty(t, transactions)
}
