package model

type Floor struct {
	Base
	Name     string  `gorm:"size:100;not null" json:"name"`
	Level    int     `gorm:"uniqueIndex;not null" json:"level"`
	IsActive bool    `gorm:"default:true" json:"isActive"`
	Tables   []Table `gorm:"foreignKey:FloorID" json:"tables,omitempty"`
}

type CreateFloorInput struct {
	Name  string `json:"name" validate:"required"`
	Level int    `json:"level" validate:"required,gt=0"`
}
