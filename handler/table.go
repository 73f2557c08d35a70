package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jos3lo89/ice-pos-server/config"
	"github.com/jos3lo89/ice-pos-server/constants"
	"github.com/jos3lo89/ice-pos-server/database"
	"github.com/jos3lo89/ice-pos-server/model"
	"github.com/jos3lo89/ice-pos-server/utils"
	"gorm.io/gorm"
)

func CreateTable(c *fiber.Ctx) error {
	input := c.Locals("createTableInput").(model.CreateTableInput)

	db := database.DB

	var existing model.Table
	if err := db.Where("table_number = ?", input.TableNumber).First(&existing).Error; err == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "El número de mesa ya existe", nil)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.RespondError(c, "create table", err)
	}

	var floor model.Floor
	if err := db.First(&floor, "id = ?", input.FloorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Piso no encontrado", nil)
		}
		return utils.RespondError(c, "create table", err)
	}

	table := model.Table{
		TableNumber: input.TableNumber,
		FloorID:     input.FloorID,
		Status:      constants.TABLE_AVAILABLE,
	}
	if err := db.Create(&table).Error; err != nil {
		return utils.RespondError(c, "create table", err)
	}

	db.Preload("Floor").First(&table, "id = ?", table.ID)

	return utils.SuccessResponse(c, fiber.StatusCreated, table)
}

func GetTables(c *fiber.Ctx) error {
	page, limit := utils.PageQuery(c)
	search := c.Query("search")

	query := database.DB.Model(&model.Table{})
	if search != "" {
		query = query.Where("table_number LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.RespondError(c, "list tables", err)
	}

	var tables []model.Table
	if err := utils.ApplyPagination(query, page, limit).
		Preload("Floor").
		Order("table_number asc").
		Find(&tables).Error; err != nil {
		return utils.RespondError(c, "list tables", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, utils.Paginate(tables, total, page, limit))
}

// GetTableQR serves the printable QR of a table for the digital menu.
func GetTableQR(c *fiber.Ctx) error {
	tableID := c.Locals("inputId").(string)

	var table model.Table
	if err := database.DB.First(&table, "id = ?", tableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Mesa no encontrada", nil)
		}
		return utils.RespondError(c, "table qr", err)
	}

	content := config.ConfigOr("APP_URL", "http://localhost:5000") + "/menu/table/" + table.ID
	qrBytes, err := utils.GenerateQRCode(content, 400)
	if err != nil {
		return utils.RespondError(c, "table qr", err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(qrBytes)
}
