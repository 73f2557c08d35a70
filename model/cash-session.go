package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type CashSession struct {
	Base
	CajeroID       string          `gorm:"type:uuid;not null;index" json:"cajeroId"`
	Cajero         *User           `gorm:"foreignKey:CajeroID" json:"cajero,omitempty"`
	OpeningBalance decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"openingBalance"`
	// Balances are written once, at close. A closed session is immutable.
	ExpectedBalance *decimal.Decimal `gorm:"type:decimal(10,2)" json:"expectedBalance,omitempty"`
	ActualBalance   *decimal.Decimal `gorm:"type:decimal(10,2)" json:"actualBalance,omitempty"`
	Difference      *decimal.Decimal `gorm:"type:decimal(10,2)" json:"difference,omitempty"`
	Status          string           `gorm:"size:20;default:abierta" json:"status"`
	OpenedAt        time.Time        `json:"openedAt"`
	ClosedAt        *time.Time       `json:"closedAt,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
}

// CashTransaction is a manual drawer adjustment (ingreso/egreso) inside a
// session; it contributes with its sign to the expected balance at close.
type CashTransaction struct {
	Base
	CashSessionID string          `gorm:"type:uuid;not null;index" json:"cashSessionId"`
	Type          string          `gorm:"size:20;not null" json:"type"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Description   string          `gorm:"size:255" json:"description"`
	CreatedBy     string          `gorm:"type:uuid;not null" json:"createdBy"`
}

type OpenSessionInput struct {
	OpeningBalance float64 `json:"openingBalance" validate:"gte=0"`
	Notes          *string `json:"notes,omitempty"`
}

type CloseSessionInput struct {
	ActualBalance float64 `json:"actualBalance" validate:"gte=0"`
	Notes         *string `json:"notes,omitempty"`
}

type CreateCashTransactionInput struct {
	Type        string  `json:"type" validate:"required,oneof=ingreso egreso"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required,min=3"`
}

// SessionBreakdown is returned with the closed session so the caller can
// show the reconciliation at a glance.
type SessionBreakdown struct {
	Opening            decimal.Decimal `json:"opening"`
	SalesCash          decimal.Decimal `json:"sales_cash"`
	ManualTransactions decimal.Decimal `json:"manual_transactions"`
	Expected           decimal.Decimal `json:"expected"`
	Actual             decimal.Decimal `json:"actual"`
	Difference         decimal.Decimal `json:"difference"`
	IsBalanced         bool            `json:"is_balanced"`
}
