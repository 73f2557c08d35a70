package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	Base
	OrderNumber string  `gorm:"uniqueIndex;size:20;not null" json:"orderNumber"`
	TableID     *string `gorm:"type:uuid" json:"tableId"`
	Table       *Table  `gorm:"foreignKey:TableID" json:"table,omitempty"`
	MeseroID    string  `gorm:"type:uuid;not null" json:"meseroId"`
	Mesero      *User   `gorm:"foreignKey:MeseroID" json:"mesero,omitempty"`
	Status      string  `gorm:"size:20;default:pendiente" json:"status"`
	// Invariant: Total == Subtotal + Igv. All three plus AmountPaid are
	// written only by the total recomputation in helper.
	Subtotal           decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"subtotal"`
	Igv                decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"igv"`
	Total              decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"total"`
	AmountPaid         decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"amountPaid"`
	CancellationReason *string         `json:"cancellationReason,omitempty"`
	Notes              *string         `json:"notes,omitempty"`
	CompletedAt        *time.Time      `json:"completedAt,omitempty"`
	Items              []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

type OrderItem struct {
	Base
	OrderID   string   `gorm:"type:uuid;not null;index" json:"orderId"`
	ProductID string   `gorm:"type:uuid;not null" json:"productId"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	VariantID *string  `gorm:"type:uuid" json:"variantId,omitempty"`
	Quantity  int      `gorm:"not null" json:"quantity"`
	// UnitPrice captures base price plus variant surcharge at add time.
	UnitPrice      decimal.Decimal     `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	ModifiersTotal decimal.Decimal     `gorm:"type:decimal(10,2);default:0" json:"modifiersTotal"`
	LineTotal      decimal.Decimal     `gorm:"type:decimal(10,2);not null" json:"lineTotal"`
	Status         string              `gorm:"size:20;default:activo" json:"status"`
	Notes          *string             `json:"notes,omitempty"`
	Modifiers      []OrderItemModifier `gorm:"foreignKey:OrderItemID;constraint:OnDelete:CASCADE" json:"modifiers,omitempty"`
}

// OrderItemModifier is a snapshot of the catalog modifier at order time,
// so later catalog edits never change historical orders.
type OrderItemModifier struct {
	Base
	OrderItemID     string          `gorm:"type:uuid;not null;index" json:"orderItemId"`
	ModifierID      string          `gorm:"type:uuid;not null" json:"modifierId"`
	ModifierName    string          `gorm:"size:100;not null" json:"modifierName"`
	AdditionalPrice decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"additionalPrice"`
}

type CreateOrderInput struct {
	TableID string  `json:"tableId" validate:"required,uuid4"`
	Notes   *string `json:"notes,omitempty"`
}

type AddOrderItemInput struct {
	ProductID   string   `json:"productId" validate:"required,uuid4"`
	Quantity    int      `json:"quantity" validate:"required,min=1"`
	VariantID   *string  `json:"variantId,omitempty" validate:"omitempty,uuid4"`
	ModifierIDs []string `json:"modifierIds,omitempty" validate:"omitempty,dive,uuid4"`
	Notes       *string  `json:"notes,omitempty"`
}

type CancelOrderInput struct {
	Reason string `json:"reason" validate:"required,min=5"`
}
