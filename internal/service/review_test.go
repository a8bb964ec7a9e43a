package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReviewOncePerCustomerProduct(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	customer := createCustomer(t, db, "review@example.com")
	product := createProduct(t, db, "Espresso", 700, 10)

	review, err := svc.CreateReview(context.Background(), customer.ID, product.ID, 5, "Great shot")
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)

	_, err = svc.CreateReview(context.Background(), customer.ID, product.ID, 3, "Changed my mind")
	assert.ErrorIs(t, err, ErrDuplicateReview)
}

func TestCreateReviewUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	customer := createCustomer(t, db, "noprod@example.com")

	_, err := svc.CreateReview(context.Background(), customer.ID, 999, 4, "")
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestCreateReviewRatingBounds(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	customer := createCustomer(t, db, "bounds@example.com")
	product := createProduct(t, db, "Espresso", 700, 10)

	var ve *ValidationError
	_, err := svc.CreateReview(context.Background(), customer.ID, product.ID, 0, "")
	assert.ErrorAs(t, err, &ve)
	_, err = svc.CreateReview(context.Background(), customer.ID, product.ID, 6, "")
	assert.ErrorAs(t, err, &ve)
}

func TestListProductReviewsAverage(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	product := createProduct(t, db, "Mocha Latte", 550, 10)
	for i, rating := range []int{4, 5, 3} {
		customer := createCustomer(t, db, string(rune('a'+i))+"@example.com")
		_, err := svc.CreateReview(context.Background(), customer.ID, product.ID, rating, "")
		require.NoError(t, err)
	}

	got, reviews, avg, err := svc.ListProductReviews(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, got.ID)
	assert.Len(t, reviews, 3)
	assert.True(t, avg.Equal(decimal.NewFromInt(4)), "avg = %s", avg)
}

func TestListProductReviewsRoundsAverage(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	product := createProduct(t, db, "Espresso", 700, 10)
	for i, rating := range []int{5, 4, 4} {
		customer := createCustomer(t, db, string(rune('x'+i))+"@example.com")
		_, err := svc.CreateReview(context.Background(), customer.ID, product.ID, rating, "")
		require.NoError(t, err)
	}

	_, _, avg, err := svc.ListProductReviews(context.Background(), product.ID)
	require.NoError(t, err)
	// 13/3 rounded to two decimals.
	assert.True(t, avg.Equal(decimal.RequireFromString("4.33")), "avg = %s", avg)
}

func TestUpdateReviewAuthorOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	author := createCustomer(t, db, "author@example.com")
	stranger := createCustomer(t, db, "stranger@example.com")
	product := createProduct(t, db, "Espresso", 700, 10)

	review, err := svc.CreateReview(context.Background(), author.ID, product.ID, 4, "Fine")
	require.NoError(t, err)

	rating := 2
	_, err = svc.UpdateReview(context.Background(), stranger.ID, review.ID, UpdateReviewInput{Rating: &rating})
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)

	comment := "Even better on a second visit"
	updated, err := svc.UpdateReview(context.Background(), author.ID, review.ID, UpdateReviewInput{Comment: &comment})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Rating)
	assert.Equal(t, comment, updated.Comment)
}

func TestDeleteReviewAuthorOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	author := createCustomer(t, db, "deleter@example.com")
	stranger := createCustomer(t, db, "nosy@example.com")
	product := createProduct(t, db, "Espresso", 700, 10)

	review, err := svc.CreateReview(context.Background(), author.ID, product.ID, 4, "")
	require.NoError(t, err)

	var nf *NotFoundError
	assert.ErrorAs(t, svc.DeleteReview(context.Background(), stranger.ID, review.ID), &nf)
	require.NoError(t, svc.DeleteReview(context.Background(), author.ID, review.ID))
	assert.ErrorAs(t, svc.DeleteReview(context.Background(), author.ID, review.ID), &nf)
}

func TestListCustomerReviews(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	customer := createCustomer(t, db, "mine@example.com")
	other := createCustomer(t, db, "theirs@example.com")
	latte := createProduct(t, db, "Mocha Latte", 550, 10)
	espresso := createProduct(t, db, "Espresso", 700, 10)

	_, err := svc.CreateReview(context.Background(), customer.ID, latte.ID, 5, "")
	require.NoError(t, err)
	_, err = svc.CreateReview(context.Background(), other.ID, espresso.ID, 2, "")
	require.NoError(t, err)

	mine, err := svc.ListCustomerReviews(context.Background(), customer.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, latte.ID, mine[0].ProductID)

	all, err := svc.ListAllReviews(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
