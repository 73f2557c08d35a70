package model

type User struct {
	Base
	Username string  `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Password string  `gorm:"not null" json:"-"`
	Pin      *string `json:"-"` // optional quick-access PIN for the register
	FullName string  `gorm:"size:100" json:"fullName"`
	Role     string  `gorm:"size:20;default:mesero" json:"role"`
	Phone    *string `gorm:"size:20" json:"phone,omitempty"`
	IsActive bool    `gorm:"default:true" json:"isActive"`
}

type CreateUserInput struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Password string  `json:"password" validate:"required,min=6"`
	Pin      *string `json:"pin,omitempty" validate:"omitempty,len=4,numeric"`
	FullName string  `json:"fullName" validate:"required"`
	Role     string  `json:"role" validate:"required,oneof=admin cajero mesero cocina"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,min=6,max=20"`
}

type ChangeUserStateInput struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
