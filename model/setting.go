package model

type Setting struct {
	Base
	Key   string `gorm:"uniqueIndex;size:50;not null" json:"key"`
	Value string `gorm:"size:255;not null" json:"value"`
}

type UpdateSettingInput struct {
	Value string `json:"value" validate:"required"`
}
