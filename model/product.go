package model

import "github.com/shopspring/decimal"

type Product struct {
	Base
	CategoryID  string          `gorm:"type:uuid;not null;index" json:"categoryId"`
	Category    *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Name        string          `gorm:"size:150;not null" json:"name"`
	Description *string         `json:"description,omitempty"`
	// Price is the tax-inclusive menu price.
	Price         decimal.Decimal   `gorm:"type:decimal(10,2);not null" json:"price"`
	AreaImpresion string            `gorm:"size:20;default:cocina" json:"areaImpresion"`
	IsAvailable   bool              `gorm:"default:true" json:"isAvailable"`
	Variants      []ProductVariant  `gorm:"foreignKey:ProductID" json:"variants,omitempty"`
	Modifiers     []ProductModifier `gorm:"foreignKey:ProductID" json:"modifiers,omitempty"`
}

type ProductVariant struct {
	Base
	ProductID       string          `gorm:"type:uuid;not null;index" json:"productId"`
	VariantName     string          `gorm:"size:100;not null" json:"variantName"`
	AdditionalPrice decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"additionalPrice"`
}

type ProductModifier struct {
	Base
	ProductID       string          `gorm:"type:uuid;not null;index" json:"productId"`
	ModifierName    string          `gorm:"size:100;not null" json:"modifierName"`
	AdditionalPrice decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"additionalPrice"`
}

type CreateProductInput struct {
	CategoryID    string  `json:"categoryId" validate:"required,uuid4"`
	Name          string  `json:"name" validate:"required,min=2,max=150"`
	Description   *string `json:"description,omitempty"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	AreaImpresion string  `json:"areaImpresion" validate:"required,oneof=cocina barra"`
}

type CreateVariantInput struct {
	ProductID       string  `json:"productId" validate:"required,uuid4"`
	VariantName     string  `json:"variantName" validate:"required"`
	AdditionalPrice float64 `json:"additionalPrice" validate:"gte=0"`
}

type CreateModifierInput struct {
	ProductID       string  `json:"productId" validate:"required,uuid4"`
	ModifierName    string  `json:"modifierName" validate:"required"`
	AdditionalPrice float64 `json:"additionalPrice" validate:"gte=0"`
}
