package model

type Table struct {
	Base
	TableNumber string  `gorm:"uniqueIndex;size:20;not null" json:"tableNumber"`
	FloorID     string  `gorm:"type:uuid;not null" json:"floorId"`
	Floor       *Floor  `gorm:"foreignKey:FloorID" json:"floor,omitempty"`
	Status      string  `gorm:"size:20;default:disponible" json:"status"`
	// CurrentOrderID is non-null iff an open (not cancelled/completed)
	// order is seated at this table.
	CurrentOrderID *string `gorm:"type:uuid" json:"currentOrderId"`
	CurrentOrder   *Order  `gorm:"foreignKey:CurrentOrderID" json:"currentOrder,omitempty"`
}

type CreateTableInput struct {
	TableNumber string `json:"tableNumber" validate:"required"`
	FloorID     string `json:"floorId" validate:"required,uuid4"`
}
