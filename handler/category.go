package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
	"github.com/jos3lo89/ice-pos-server/database"
	"github.com/jos3lo89/ice-pos-server/model"
	"github.com/jos3lo89/ice-pos-server/utils"
	"gorm.io/gorm"
)

func CreateCategory(c *fiber.Ctx) error {
	input := c.Locals("createCategoryInput").(model.CreateCategoryInput)

	var existing model.Category
	if err := database.DB.Where("name = ?", input.Name).First(&existing).Error; err == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "La categoría ya existe", nil)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.RespondError(c, "create category", err)
	}

	category := model.Category{
		Name:     input.Name,
		Slug:     slug.Make(input.Name),
		IsActive: true,
	}
	if err := database.DB.Create(&category).Error; err != nil {
		return utils.RespondError(c, "create category", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, category)
}

func GetCategories(c *fiber.Ctx) error {
	page, limit := utils.PageQuery(c)
	search := c.Query("search")

	query := database.DB.Model(&model.Category{})
	if search != "" {
		query = query.Where("name LIKE ? OR slug LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.RespondError(c, "list categories", err)
	}

	var categories []model.Category
	if err := utils.ApplyPagination(query, page, limit).
		Order("created_at desc").
		Find(&categories).Error; err != nil {
		return utils.RespondError(c, "list categories", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, utils.Paginate(categories, total, page, limit))
}

func GetAllCategories(c *fiber.Ctx) error {
	var categories []model.Category
	if err := database.DB.Where("is_active = ?", true).Order("name asc").Find(&categories).Error; err != nil {
		return utils.RespondError(c, "list categories", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, categories)
}

func GetCategoriesWithProducts(c *fiber.Ctx) error {
	var categories []model.Category
	if err := database.DB.
		Where("is_active = ?", true).
		Preload("Products", "is_available = ?", true).
		Preload("Products.Variants").
		Preload("Products.Modifiers").
		Order("name asc").
		Find(&categories).Error; err != nil {
		return utils.RespondError(c, "list categories with products", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, categories)
}

func ToggleCategoryStatus(c *fiber.Ctx) error {
	categoryID := c.Locals("inputId").(string)
	input := c.Locals("toggleStatusInput").(model.ToggleStatusInput)

	var category model.Category
	if err := database.DB.First(&category, "id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Categoría no encontrada", nil)
		}
		return utils.RespondError(c, "toggle category", err)
	}

	if err := database.DB.Model(&category).Update("is_active", *input.IsActive).Error; err != nil {
		return utils.RespondError(c, "toggle category", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, category)
}
