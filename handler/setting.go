package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jos3lo89/ice-pos-server/database"
	"github.com/jos3lo89/ice-pos-server/model"
	"github.com/jos3lo89/ice-pos-server/utils"
	"gorm.io/gorm"
)

func GetSetting(c *fiber.Ctx) error {
	key := c.Params("key")

	var setting model.Setting
	if err := database.DB.Where("key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Configuración no encontrada", nil)
		}
		return utils.RespondError(c, "get setting", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, setting)
}

func UpdateSetting(c *fiber.Ctx) error {
	key := c.Params("key")
	input := c.Locals("updateSettingInput").(model.UpdateSettingInput)

	var setting model.Setting
	err := database.DB.Where("key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = model.Setting{Key: key, Value: input.Value}
		if err := database.DB.Create(&setting).Error; err != nil {
			return utils.RespondError(c, "update setting", err)
		}
		return utils.SuccessResponse(c, fiber.StatusCreated, setting)
	}
	if err != nil {
		return utils.RespondError(c, "update setting", err)
	}

	if err := database.DB.Model(&setting).Update("value", input.Value).Error; err != nil {
		return utils.RespondError(c, "update setting", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, setting)
}
