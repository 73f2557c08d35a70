package model

type Category struct {
	Base
	Name     string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Slug     string    `gorm:"uniqueIndex;size:120;not null" json:"slug"`
	IsActive bool      `gorm:"default:true" json:"isActive"`
	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

type CreateCategoryInput struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type ToggleStatusInput struct {
	IsActive *bool `json:"isActive" validate:"required"`
}
