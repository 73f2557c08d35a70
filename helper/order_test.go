package helper_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jos3lo89/ice-pos-server/constants"
	"github.com/jos3lo89/ice-pos-server/helper"
	"github.com/jos3lo89/ice-pos-server/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedItem(t *testing.T, db *gorm.DB, orderID, status, lineTotal string) model.OrderItem {
	t.Helper()
	item := model.OrderItem{
		OrderID:   orderID,
		ProductID: uuid.NewString(),
		Quantity:  1,
		UnitPrice: d(lineTotal),
		LineTotal: d(lineTotal),
		Status:    status,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}
	return item
}

func seedPayment(t *testing.T, db *gorm.DB, orderID, number, status, amount string) model.Payment {
	t.Helper()
	payment := model.Payment{
		PaymentNumber: number,
		OrderID:       orderID,
		CajeroID:      uuid.NewString(),
		CashSessionID: uuid.NewString(),
		Method:        constants.METHOD_CASH,
		Amount:        d(amount),
		Status:        status,
	}
	if err := db.Create(&payment).Error; err != nil {
		t.Fatalf("seed payment %s: %v", number, err)
	}
	return payment
}

func TestRecomputeOrderTotals(t *testing.T) {
	db := testDB(t)
	order := seedOrder(t, db, "ORD-001")

	seedItem(t, db, order.ID, constants.ITEM_ACTIVE, "70.80")
	seedItem(t, db, order.ID, constants.ITEM_ACTIVE, "47.20")
	seedItem(t, db, order.ID, constants.ITEM_CANCELLED, "999.99")
	seedPayment(t, db, order.ID, "PAY-001", constants.PAYMENT_PAID, "50.00")
	seedPayment(t, db, order.ID, "PAY-002", constants.PAYMENT_PENDING, "30.00")

	assert.NoError(t, helper.RecomputeOrderTotals(db, order.ID))

	var got model.Order
	assert.NoError(t, db.First(&got, "id = ?", order.ID).Error)
	assert.True(t, got.Total.Equal(d("118.00")), "total = %s", got.Total)
	assert.True(t, got.Subtotal.Equal(d("100.00")), "subtotal = %s", got.Subtotal)
	assert.True(t, got.Igv.Equal(d("18.00")), "igv = %s", got.Igv)
	assert.True(t, got.AmountPaid.Equal(d("50.00")), "amountPaid = %s", got.AmountPaid)
	assert.True(t, got.Subtotal.Add(got.Igv).Equal(got.Total))
}

func TestRecomputeOrderTotalsIsIdempotent(t *testing.T) {
	db := testDB(t)
	order := seedOrder(t, db, "ORD-001")
	seedItem(t, db, order.ID, constants.ITEM_ACTIVE, "30.00")

	assert.NoError(t, helper.RecomputeOrderTotals(db, order.ID))
	var first model.Order
	assert.NoError(t, db.First(&first, "id = ?", order.ID).Error)

	assert.NoError(t, helper.RecomputeOrderTotals(db, order.ID))
	var second model.Order
	assert.NoError(t, db.First(&second, "id = ?", order.ID).Error)

	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.Igv.Equal(second.Igv))
	assert.True(t, first.Total.Equal(second.Total))
	assert.True(t, first.AmountPaid.Equal(second.AmountPaid))
}

func TestRefreshAndCheckCompletionReleasesTable(t *testing.T) {
	db := testDB(t)
	order := seedOrder(t, db, "ORD-001")

	table := model.Table{
		TableNumber:    "M-01",
		FloorID:        uuid.NewString(),
		Status:         constants.TABLE_OCCUPIED,
		CurrentOrderID: &order.ID,
	}
	assert.NoError(t, db.Create(&table).Error)
	assert.NoError(t, db.Model(&model.Order{}).Where("id = ?", order.ID).
		Update("table_id", table.ID).Error)

	seedItem(t, db, order.ID, constants.ITEM_ACTIVE, "118.00")
	seedPayment(t, db, order.ID, "PAY-001", constants.PAYMENT_PAID, "118.00")

	completed, err := helper.RefreshAndCheckCompletion(db, order.ID)
	assert.NoError(t, err)
	assert.True(t, completed)

	var gotOrder model.Order
	assert.NoError(t, db.First(&gotOrder, "id = ?", order.ID).Error)
	assert.Equal(t, constants.ORDER_COMPLETED, gotOrder.Status)
	assert.NotNil(t, gotOrder.CompletedAt)

	var gotTable model.Table
	assert.NoError(t, db.First(&gotTable, "id = ?", table.ID).Error)
	assert.Equal(t, constants.TABLE_AVAILABLE, gotTable.Status)
	assert.Nil(t, gotTable.CurrentOrderID)
}

func TestRefreshAndCheckCompletionKeepsPartialOpen(t *testing.T) {
	db := testDB(t)
	order := seedOrder(t, db, "ORD-001")
	seedItem(t, db, order.ID, constants.ITEM_ACTIVE, "118.00")
	seedPayment(t, db, order.ID, "PAY-001", constants.PAYMENT_PAID, "60.00")

	completed, err := helper.RefreshAndCheckCompletion(db, order.ID)
	assert.NoError(t, err)
	assert.False(t, completed)

	var got model.Order
	assert.NoError(t, db.First(&got, "id = ?", order.ID).Error)
	assert.Equal(t, constants.ORDER_PENDING, got.Status)
}

func TestRefreshAndCheckCompletionIgnoresEmptyOrder(t *testing.T) {
	// An order with no items has total zero; zero paid on zero total must
	// not count as fully paid.
	db := testDB(t)
	order := seedOrder(t, db, "ORD-001")

	completed, err := helper.RefreshAndCheckCompletion(db, order.ID)
	assert.NoError(t, err)
	assert.False(t, completed)
}
