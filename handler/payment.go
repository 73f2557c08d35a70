package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jos3lo89/ice-pos-server/constants"
	"github.com/jos3lo89/ice-pos-server/database"
	"github.com/jos3lo89/ice-pos-server/helper"
	"github.com/jos3lo89/ice-pos-server/model"
	"github.com/jos3lo89/ice-pos-server/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreatePayment settles a split payment against an order's items. The whole
// operation — session and order checks, number generation, line inserts,
// the pending→pagado flip, total recomputation and the possible order
// completion with table release — runs in one transaction. Nothing partial
// is ever committed: a payment either lands fully "pagado" or not at all.
func CreatePayment(c *fiber.Ctx) error {
	input := c.Locals("createPaymentInput").(model.CreatePaymentInput)

	claim, ok := helper.GetUserFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Sesión no válida", nil)
	}

	var payment model.Payment
	var orderCompleted bool
	var tableID *string

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// 1. The cash session must exist, be open and belong to the cashier.
		var session model.CashSession
		if err := tx.First(&session, "id = ?", input.CashSessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundError("Sesión de caja no encontrada")
			}
			return err
		}
		if session.Status != constants.SESSION_OPEN {
			return utils.ConflictError("La sesión de caja está cerrada o es inválida")
		}
		if session.CajeroID != claim.UserID {
			return utils.ConflictError("La sesión de caja pertenece a otro usuario")
		}

		// 2. The order must exist and still be collectible.
		var order model.Order
		if err := tx.First(&order, "id = ?", input.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundError("Orden no encontrada")
			}
			return err
		}
		if order.Status == constants.ORDER_CANCELLED {
			return utils.ConflictError("No se puede cobrar una orden cancelada")
		}
		if order.Status == constants.ORDER_COMPLETED {
			return utils.ConflictError("La orden ya ha sido pagada en su totalidad")
		}
		tableID = order.TableID

		// 3. Payment number, then the header as a pending placeholder.
		prefix := helper.GetSetting(tx, constants.SETTING_PAYMENT_PREFIX, constants.DEFAULT_PAYMENT_PREFIX)
		paymentNumber, err := helper.NextNumber(tx, "payments", "payment_number", prefix)
		if err != nil {
			return err
		}

		payment = model.Payment{
			PaymentNumber: paymentNumber,
			OrderID:       input.OrderID,
			CajeroID:      claim.UserID,
			CashSessionID: input.CashSessionID,
			Method:        input.Method,
			Amount:        decimal.Zero,
			Status:        constants.PAYMENT_PENDING,
			ExternalID:    input.TransactionID,
			Notes:         input.Notes,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		// 4. Apply each line, refusing any over-payment. Quantities applied
		// earlier in this same request are tracked separately: they are
		// still "pendiente" in the store and invisible to the aggregate.
		totalAmount := decimal.Zero
		pendingQty := make(map[string]int)
		for _, line := range input.Lines {
			var item model.OrderItem
			if err := tx.First(&item, "id = ?", line.OrderItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return utils.BadRequestError(
						fmt.Sprintf("El item %s no pertenece a esta orden", line.OrderItemID))
				}
				return err
			}
			if item.OrderID != input.OrderID {
				return utils.BadRequestError(
					fmt.Sprintf("El item %s no pertenece a esta orden", line.OrderItemID))
			}

			// Quantities already settled by committed payments only: the
			// placeholder above is still "pendiente" and never counts.
			var alreadyPaid int64
			row := tx.Table("payment_lines").
				Joins("JOIN payments ON payments.id = payment_lines.payment_id").
				Where("payment_lines.order_item_id = ? AND payments.status = ?",
					line.OrderItemID, constants.PAYMENT_PAID).
				Select("COALESCE(SUM(payment_lines.paid_quantity), 0)").
				Row()
			if err := row.Scan(&alreadyPaid); err != nil {
				return err
			}

			remaining := item.Quantity - int(alreadyPaid) - pendingQty[line.OrderItemID]
			if line.Quantity > remaining {
				return utils.ConflictError(fmt.Sprintf(
					"Estás intentando pagar %d unidades del item %s, pero solo quedan %d pendientes",
					line.Quantity, item.ID, remaining))
			}
			pendingQty[line.OrderItemID] += line.Quantity

			lineAmount := helper.Money(line.Amount)
			if err := tx.Create(&model.PaymentLine{
				PaymentID:    payment.ID,
				OrderItemID:  line.OrderItemID,
				PaidQuantity: line.Quantity,
				PaidAmount:   lineAmount,
			}).Error; err != nil {
				return err
			}
			totalAmount = totalAmount.Add(lineAmount)
		}

		// 5. Flip the header to pagado with the accumulated amount.
		if err := tx.Model(&model.Payment{}).Where("id = ?", payment.ID).
			Updates(map[string]interface{}{
				"amount": totalAmount,
				"status": constants.PAYMENT_PAID,
			}).Error; err != nil {
			return err
		}
		payment.Amount = totalAmount
		payment.Status = constants.PAYMENT_PAID

		// 6. Recompute the order and close it if fully paid.
		completed, err := helper.RefreshAndCheckCompletion(tx, input.OrderID)
		if err != nil {
			return err
		}
		orderCompleted = completed

		return nil
	})
	if err != nil {
		return utils.RespondError(c, "create payment", err)
	}

	if orderCompleted && tableID != nil {
		helper.PublishBoardForTable(database.DB, *tableID)
	}

	var order model.Order
	database.DB.First(&order, "id = ?", input.OrderID)

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"payment":        payment,
		"orderStatus":    order.Status,
		"orderTotal":     order.Total,
		"amountPaid":     order.AmountPaid,
		"orderCompleted": orderCompleted,
	})
}

// GetPaymentsByOrder lists the committed payments of an order with their lines.
func GetPaymentsByOrder(c *fiber.Ctx) error {
	orderID := c.Locals("inputId").(string)

	var payments []model.Payment
	if err := database.DB.
		Preload("Lines").
		Where("order_id = ? AND status = ?", orderID, constants.PAYMENT_PAID).
		Order("created_at asc").
		Find(&payments).Error; err != nil {
		return utils.RespondError(c, "list payments", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, payments)
}
