package helper

import (
	"time"

	"github.com/jos3lo89/ice-pos-server/constants"
	"github.com/jos3lo89/ice-pos-server/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func sumDecimal(query *gorm.DB, expr string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	row := query.Select("COALESCE(SUM(" + expr + "), 0)").Row()
	if err := row.Scan(&sum); err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}

// RecomputeOrderTotals rebuilds an order's aggregates from its rows:
// tax-inclusive total over active items, inverse IGV decomposition, and
// amount paid over settled payments. Idempotent; must run inside the
// transaction that modified the items or payments.
func RecomputeOrderTotals(tx *gorm.DB, orderID string) error {
	totalItems, err := sumDecimal(
		tx.Model(&model.OrderItem{}).
			Where("order_id = ? AND status <> ?", orderID, constants.ITEM_CANCELLED),
		"line_total")
	if err != nil {
		return err
	}

	subtotal, igv := SplitInclusiveTax(totalItems.Round(2), GetIgvRate(tx))

	amountPaid, err := sumDecimal(
		tx.Model(&model.Payment{}).
			Where("order_id = ? AND status = ?", orderID, constants.PAYMENT_PAID),
		"amount")
	if err != nil {
		return err
	}

	return tx.Model(&model.Order{}).Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"subtotal":    subtotal,
			"igv":         igv,
			"total":       totalItems.Round(2),
			"amount_paid": amountPaid.Round(2),
		}).Error
}

// RefreshAndCheckCompletion recomputes totals and, when the order is fully
// paid, marks it completed and releases its table — all within tx, so a
// payment and the completion it triggers commit or roll back together.
func RefreshAndCheckCompletion(tx *gorm.DB, orderID string) (bool, error) {
	if err := RecomputeOrderTotals(tx, orderID); err != nil {
		return false, err
	}

	var order model.Order
	if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
		return false, err
	}

	if !order.AmountPaid.GreaterThanOrEqual(order.Total) || !order.Total.GreaterThan(decimal.Zero) {
		return false, nil
	}

	now := time.Now()
	if err := tx.Model(&model.Order{}).Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"status":       constants.ORDER_COMPLETED,
			"completed_at": now,
		}).Error; err != nil {
		return false, err
	}

	if order.TableID != nil {
		if err := ReleaseTable(tx, *order.TableID); err != nil {
			return false, err
		}
	}

	return true, nil
}

// ReleaseTable frees a table when its order completes or is cancelled.
func ReleaseTable(tx *gorm.DB, tableID string) error {
	return tx.Model(&model.Table{}).Where("id = ?", tableID).
		Updates(map[string]interface{}{
			"status":           constants.TABLE_AVAILABLE,
			"current_order_id": nil,
		}).Error
}
