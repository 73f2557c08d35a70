package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jos3lo89/ice-pos-server/database"
	"github.com/jos3lo89/ice-pos-server/model"
	"github.com/jos3lo89/ice-pos-server/utils"
	"gorm.io/gorm"
)

func CreateFloor(c *fiber.Ctx) error {
	input := c.Locals("createFloorInput").(model.CreateFloorInput)

	var existing model.Floor
	if err := database.DB.Where("level = ?", input.Level).First(&existing).Error; err == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "El nivel de piso está en uso", nil)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.RespondError(c, "create floor", err)
	}

	floor := model.Floor{Name: input.Name, Level: input.Level, IsActive: true}
	if err := database.DB.Create(&floor).Error; err != nil {
		return utils.RespondError(c, "create floor", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, floor)
}

func GetFloors(c *fiber.Ctx) error {
	page, limit := utils.PageQuery(c)
	search := c.Query("search")

	query := database.DB.Model(&model.Floor{})
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.RespondError(c, "list floors", err)
	}

	var floors []model.Floor
	if err := utils.ApplyPagination(query, page, limit).
		Order("level asc").
		Find(&floors).Error; err != nil {
		return utils.RespondError(c, "list floors", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, utils.Paginate(floors, total, page, limit))
}

func GetAllFloors(c *fiber.Ctx) error {
	var floors []model.Floor
	if err := database.DB.Select("id", "name", "level").Order("level asc").Find(&floors).Error; err != nil {
		return utils.RespondError(c, "list floors", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, floors)
}

// GetFloorsWithTables returns the board payload: every active floor with
// its tables and the order currently seated at each.
func GetFloorsWithTables(c *fiber.Ctx) error {
	var floors []model.Floor
	if err := database.DB.
		Where("is_active = ?", true).
		Preload("Tables.CurrentOrder").
		Order("level asc").
		Find(&floors).Error; err != nil {
		return utils.RespondError(c, "list floors with tables", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, floors)
}
