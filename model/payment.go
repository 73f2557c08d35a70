package model

import "github.com/shopspring/decimal"

type Payment struct {
	Base
	PaymentNumber string `gorm:"uniqueIndex;size:20;not null" json:"paymentNumber"`
	OrderID       string `gorm:"type:uuid;not null;index" json:"orderId"`
	CajeroID      string `gorm:"type:uuid;not null" json:"cajeroId"`
	CashSessionID string `gorm:"type:uuid;not null;index" json:"cashSessionId"`
	Method        string `gorm:"size:20;not null" json:"method"`
	// Amount equals the sum of its lines. The only committed status is
	// "pagado": the pending placeholder lives and dies inside the
	// settlement transaction.
	Amount     decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"amount"`
	Status     string          `gorm:"size:20;default:pendiente" json:"status"`
	ExternalID *string         `gorm:"size:100" json:"externalId,omitempty"`
	Notes      *string         `json:"notes,omitempty"`
	Lines      []PaymentLine   `gorm:"foreignKey:PaymentID;constraint:OnDelete:CASCADE" json:"lines,omitempty"`
}

type PaymentLine struct {
	Base
	PaymentID    string          `gorm:"type:uuid;not null;index" json:"paymentId"`
	OrderItemID  string          `gorm:"type:uuid;not null;index" json:"orderItemId"`
	PaidQuantity int             `gorm:"not null" json:"paidQuantity"`
	PaidAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"paidAmount"`
}

type PaymentLineInput struct {
	OrderItemID string  `json:"orderItemId" validate:"required,uuid4"`
	Quantity    int     `json:"quantity" validate:"required,min=1"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
}

type CreatePaymentInput struct {
	OrderID       string             `json:"orderId" validate:"required,uuid4"`
	CashSessionID string             `json:"cashSessionId" validate:"required,uuid4"`
	Method        string             `json:"method" validate:"required,oneof=efectivo tarjeta otro"`
	Lines         []PaymentLineInput `json:"lines" validate:"required,min=1,dive"`
	TransactionID *string            `json:"transactionId,omitempty"`
	Notes         *string            `json:"notes,omitempty"`
}
