package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jos3lo89/ice-pos-server/config"
	"github.com/jos3lo89/ice-pos-server/constants"
	"github.com/jos3lo89/ice-pos-server/database"
	"github.com/jos3lo89/ice-pos-server/helper"
	"github.com/jos3lo89/ice-pos-server/model"
	"github.com/jos3lo89/ice-pos-server/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OpenCashSession opens the cashier's drawer for the shift. The existing
// open-session check runs inside the same transaction as the insert so two
// concurrent opens cannot both succeed.
func OpenCashSession(c *fiber.Ctx) error {
	input := c.Locals("openSessionInput").(model.OpenSessionInput)

	claim, ok := helper.GetUserFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Sesión no válida", nil)
	}

	var session model.CashSession
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var active model.CashSession
		err := tx.Where("cajero_id = ? AND status = ?", claim.UserID, constants.SESSION_OPEN).
			First(&active).Error
		if err == nil {
			return utils.ConflictError("Ya tienes una sesión de caja abierta. Debes cerrarla antes de abrir una nueva.")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		session = model.CashSession{
			CajeroID:       claim.UserID,
			OpeningBalance: helper.Money(input.OpeningBalance),
			Status:         constants.SESSION_OPEN,
			OpenedAt:       time.Now(),
			Notes:          input.Notes,
		}
		return tx.Create(&session).Error
	})
	if err != nil {
		return utils.RespondError(c, "open cash session", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, session)
}

// CloseCashSession reconciles and closes the drawer:
//
//	expected   = opening + cash sales + signed manual transactions
//	difference = counted - expected
//
// Balances are written once; a closed session never changes again.
func CloseCashSession(c *fiber.Ctx) error {
	sessionID := c.Locals("inputId").(string)
	input := c.Locals("closeSessionInput").(model.CloseSessionInput)

	claim, ok := helper.GetUserFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Sesión no válida", nil)
	}

	var closed model.CashSession
	var breakdown model.SessionBreakdown

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var session model.CashSession
		if err := tx.First(&session, "id = ?", sessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundError("Sesión de caja no encontrada")
			}
			return err
		}

		if session.Status != constants.SESSION_OPEN {
			return utils.BadRequestError("Esta sesión de caja ya está cerrada")
		}
		if session.CajeroID != claim.UserID {
			return utils.ConflictError("No puedes cerrar la caja de otro usuario")
		}

		// Only cash affects the physical drawer count.
		var salesCash decimal.Decimal
		row := tx.Model(&model.Payment{}).
			Where("cash_session_id = ? AND method = ? AND status = ?",
				sessionID, constants.METHOD_CASH, constants.PAYMENT_PAID).
			Select("COALESCE(SUM(amount), 0)").
			Row()
		if err := row.Scan(&salesCash); err != nil {
			return err
		}

		var transactions []model.CashTransaction
		if err := tx.Where("cash_session_id = ?", sessionID).Find(&transactions).Error; err != nil {
			return err
		}

		manualTotal := decimal.Zero
		for _, t := range transactions {
			if t.Type == constants.CASH_IN {
				manualTotal = manualTotal.Add(t.Amount)
			} else {
				manualTotal = manualTotal.Sub(t.Amount)
			}
		}

		expected := session.OpeningBalance.Add(salesCash).Add(manualTotal).Round(2)
		actual := helper.Money(input.ActualBalance)
		difference := actual.Sub(expected)

		// Close notes are appended, never overwritten.
		notes := session.Notes
		if input.Notes != nil {
			existing := ""
			if session.Notes != nil {
				existing = *session.Notes
			}
			combined := existing + " | Cierre: " + *input.Notes
			notes = &combined
		}

		now := time.Now()
		if err := tx.Model(&model.CashSession{}).Where("id = ?", sessionID).
			Updates(map[string]interface{}{
				"expected_balance": expected,
				"actual_balance":   actual,
				"difference":       difference,
				"status":           constants.SESSION_CLOSED,
				"closed_at":        now,
				"notes":            notes,
			}).Error; err != nil {
			return err
		}

		closed = session
		closed.ExpectedBalance = &expected
		closed.ActualBalance = &actual
		closed.Difference = &difference
		closed.Status = constants.SESSION_CLOSED
		closed.ClosedAt = &now
		closed.Notes = notes

		breakdown = model.SessionBreakdown{
			Opening:            session.OpeningBalance,
			SalesCash:          salesCash,
			ManualTransactions: manualTotal,
			Expected:           expected,
			Actual:             actual,
			Difference:         difference,
			IsBalanced:         difference.IsZero(),
		}

		return nil
	})
	if err != nil {
		return utils.RespondError(c, "close cash session", err)
	}

	if to := config.Config("SUPERVISOR_EMAIL"); to != "" {
		utils.SendSessionCloseEmail(to, utils.SessionCloseEmailData{
			Cajero:             claim.Username,
			OpenedAt:           closed.OpenedAt,
			ClosedAt:           *closed.ClosedAt,
			Opening:            breakdown.Opening,
			SalesCash:          breakdown.SalesCash,
			ManualTransactions: breakdown.ManualTransactions,
			Expected:           breakdown.Expected,
			Actual:             breakdown.Actual,
			Difference:         breakdown.Difference,
			IsBalanced:         breakdown.IsBalanced,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"session": closed,
		"details": breakdown,
	})
}

// GetCurrentSession reports whether the cashier has an open drawer. An
// absent session is not an error: the frontend uses it to prompt an open.
func GetCurrentSession(c *fiber.Ctx) error {
	claim, ok := helper.GetUserFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Sesión no válida", nil)
	}

	var session model.CashSession
	err := database.DB.Where("cajero_id = ? AND status = ?", claim.UserID, constants.SESSION_OPEN).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
				"hasActiveSession": false,
				"session":          nil,
			})
		}
		return utils.RespondError(c, "get current session", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"hasActiveSession": true,
		"session":          session,
	})
}

// CreateCashTransaction records a manual drawer adjustment (ingreso or
// egreso) against the cashier's own open session.
func CreateCashTransaction(c *fiber.Ctx) error {
	sessionID := c.Locals("inputId").(string)
	input := c.Locals("createCashTransactionInput").(model.CreateCashTransactionInput)

	claim, ok := helper.GetUserFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Sesión no válida", nil)
	}

	var transaction model.CashTransaction
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var session model.CashSession
		if err := tx.First(&session, "id = ?", sessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundError("Sesión de caja no encontrada")
			}
			return err
		}
		if session.Status != constants.SESSION_OPEN {
			return utils.BadRequestError("No se pueden registrar movimientos en una sesión cerrada")
		}
		if session.CajeroID != claim.UserID {
			return utils.ConflictError("La sesión de caja pertenece a otro usuario")
		}

		transaction = model.CashTransaction{
			CashSessionID: sessionID,
			Type:          input.Type,
			Amount:        helper.Money(input.Amount),
			Description:   input.Description,
			CreatedBy:     claim.UserID,
		}
		return tx.Create(&transaction).Error
	})
	if err != nil {
		return utils.RespondError(c, "create cash transaction", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, transaction)
}

func GetCashTransactions(c *fiber.Ctx) error {
	sessionID := c.Locals("inputId").(string)

	var transactions []model.CashTransaction
	if err := database.DB.Where("cash_session_id = ?", sessionID).
		Order("created_at asc").
		Find(&transactions).Error; err != nil {
		return utils.RespondError(c, "list cash transactions", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, transactions)
}
