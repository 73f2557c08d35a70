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

// CreateOrder opens a tab on a free table. The table check, the order
// number generation and the table occupation happen in one transaction so
// two waiters cannot seat the same table.
func CreateOrder(c *fiber.Ctx) error {
	input := c.Locals("createOrderInput").(model.CreateOrderInput)

	claim, ok := helper.GetUserFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Sesión no válida", nil)
	}

	var order model.Order
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var table model.Table
		if err := tx.First(&table, "id = ?", input.TableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundError("Mesa no encontrada")
			}
			return err
		}

		if table.CurrentOrderID != nil {
			return utils.ConflictError("La mesa acaba de ser ocupada por otro usuario")
		}

		prefix := helper.GetSetting(tx, constants.SETTING_ORDER_PREFIX, constants.DEFAULT_ORDER_PREFIX)
		orderNumber, err := helper.NextNumber(tx, "orders", "order_number", prefix)
		if err != nil {
			return err
		}

		order = model.Order{
			OrderNumber: orderNumber,
			TableID:     &input.TableID,
			MeseroID:    claim.UserID,
			Status:      constants.ORDER_PENDING,
			Notes:       input.Notes,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		return tx.Model(&model.Table{}).Where("id = ?", table.ID).
			Updates(map[string]interface{}{
				"current_order_id": order.ID,
				"status":           constants.TABLE_OCCUPIED,
			}).Error
	})
	if err != nil {
		return utils.RespondError(c, "create order", err)
	}

	helper.PublishBoardForTable(database.DB, input.TableID)

	database.DB.Preload("Table.Floor").Preload("Mesero").First(&order, "id = ?", order.ID)

	return utils.SuccessResponse(c, fiber.StatusCreated, order)
}

// AddOrderItem adds a product line to an open order, snapshotting price,
// variant surcharge and modifiers, then recomputes the order totals.
func AddOrderItem(c *fiber.Ctx) error {
	orderID := c.Locals("inputId").(string)
	input := c.Locals("addOrderItemInput").(model.AddOrderItemInput)

	var newItem model.OrderItem
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var order model.Order
		if err := tx.Select("id", "status").First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundError("Orden no encontrada")
			}
			return err
		}
		if order.Status == constants.ORDER_CANCELLED || order.Status == constants.ORDER_COMPLETED {
			return utils.BadRequestError("No se pueden agregar items a una orden cerrada")
		}

		var product model.Product
		if err := tx.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundError("Producto no encontrado")
			}
			return err
		}
		if !product.IsAvailable {
			return utils.BadRequestError(fmt.Sprintf("El producto %s no está disponible", product.Name))
		}

		// Unit price = base price + variant surcharge, captured now.
		unitPrice := product.Price
		if input.VariantID != nil {
			var variant model.ProductVariant
			if err := tx.First(&variant, "id = ?", *input.VariantID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return utils.NotFoundError("Variante no encontrada")
				}
				return err
			}
			if variant.ProductID != product.ID {
				return utils.BadRequestError("La variante no corresponde al producto")
			}
			unitPrice = unitPrice.Add(variant.AdditionalPrice)
		}

		// Modifiers are snapshotted (name + price) so later catalog edits
		// never touch this order.
		modifiersTotal := decimal.Zero
		var snapshots []model.OrderItemModifier
		if len(input.ModifierIDs) > 0 {
			var modifiers []model.ProductModifier
			if err := tx.Where("id IN ? AND product_id = ?", input.ModifierIDs, product.ID).
				Find(&modifiers).Error; err != nil {
				return err
			}
			if len(modifiers) != len(input.ModifierIDs) {
				return utils.BadRequestError("Uno o más modificadores son inválidos")
			}
			for _, mod := range modifiers {
				modifiersTotal = modifiersTotal.Add(mod.AdditionalPrice)
				snapshots = append(snapshots, model.OrderItemModifier{
					ModifierID:      mod.ID,
					ModifierName:    mod.ModifierName,
					AdditionalPrice: mod.AdditionalPrice,
				})
			}
		}

		quantity := decimal.NewFromInt(int64(input.Quantity))
		lineTotal := unitPrice.Add(modifiersTotal).Mul(quantity).Round(2)

		newItem = model.OrderItem{
			OrderID:        orderID,
			ProductID:      product.ID,
			VariantID:      input.VariantID,
			Quantity:       input.Quantity,
			UnitPrice:      unitPrice,
			ModifiersTotal: modifiersTotal.Mul(quantity).Round(2),
			LineTotal:      lineTotal,
			Status:         constants.ITEM_ACTIVE,
			Notes:          input.Notes,
			Modifiers:      snapshots,
		}
		if err := tx.Create(&newItem).Error; err != nil {
			return err
		}

		return helper.RecomputeOrderTotals(tx, orderID)
	})
	if err != nil {
		return utils.RespondError(c, "add order item", err)
	}

	database.DB.Preload("Modifiers").Preload("Product").First(&newItem, "id = ?", newItem.ID)

	return utils.SuccessResponse(c, fiber.StatusCreated, newItem)
}

// CancelOrder cancels an unpaid order, cascades to its items and frees the
// table. Orders with recorded payments must reverse them first.
func CancelOrder(c *fiber.Ctx) error {
	orderID := c.Locals("inputId").(string)
	input := c.Locals("cancelOrderInput").(model.CancelOrderInput)

	var cancelled model.Order
	var tableID *string
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var order model.Order
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundError("Orden no encontrada")
			}
			return err
		}

		if order.Status == constants.ORDER_COMPLETED {
			return utils.ConflictError("No se puede cancelar una orden que ya fue completada y pagada")
		}
		if order.Status == constants.ORDER_CANCELLED {
			return utils.ConflictError("La orden ya está cancelada")
		}
		if order.AmountPaid.GreaterThan(decimal.Zero) {
			return utils.ConflictError("La orden tiene pagos registrados. Debe anular los pagos primero.")
		}

		if err := tx.Model(&model.Order{}).Where("id = ?", orderID).
			Updates(map[string]interface{}{
				"status":              constants.ORDER_CANCELLED,
				"cancellation_reason": input.Reason,
			}).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.OrderItem{}).Where("order_id = ?", orderID).
			Update("status", constants.ITEM_CANCELLED).Error; err != nil {
			return err
		}

		if order.TableID != nil {
			tableID = order.TableID
			if err := helper.ReleaseTable(tx, *order.TableID); err != nil {
				return err
			}
		}

		cancelled = order
		cancelled.Status = constants.ORDER_CANCELLED
		cancelled.CancellationReason = &input.Reason
		return nil
	})
	if err != nil {
		return utils.RespondError(c, "cancel order", err)
	}

	if tableID != nil {
		helper.PublishBoardForTable(database.DB, *tableID)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, cancelled)
}

func GetOrder(c *fiber.Ctx) error {
	orderID := c.Locals("inputId").(string)

	var order model.Order
	if err := database.DB.
		Preload("Items.Modifiers").
		Preload("Items.Product").
		Preload("Table.Floor").
		Preload("Mesero").
		First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Orden no encontrada", nil)
		}
		return utils.RespondError(c, "get order", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}
