package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jos3lo89/ice-pos-server/database"
	"github.com/jos3lo89/ice-pos-server/helper"
	"github.com/jos3lo89/ice-pos-server/model"
	"github.com/jos3lo89/ice-pos-server/utils"
	"gorm.io/gorm"
)

func CreateProduct(c *fiber.Ctx) error {
	input := c.Locals("createProductInput").(model.CreateProductInput)

	db := database.DB

	var category model.Category
	if err := db.First(&category, "id = ?", input.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Categoría no encontrada", nil)
		}
		return utils.RespondError(c, "create product", err)
	}

	var existing model.Product
	if err := db.Where("name = ? AND category_id = ?", input.Name, input.CategoryID).
		First(&existing).Error; err == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict,
			"Ya existe un producto con ese nombre en esta categoría", nil)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.RespondError(c, "create product", err)
	}

	product := model.Product{
		CategoryID:    input.CategoryID,
		Name:          input.Name,
		Description:   input.Description,
		Price:         helper.Money(input.Price),
		AreaImpresion: input.AreaImpresion,
		IsAvailable:   true,
	}
	if err := db.Create(&product).Error; err != nil {
		return utils.RespondError(c, "create product", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, product)
}

func GetProducts(c *fiber.Ctx) error {
	page, limit := utils.PageQuery(c)
	search := c.Query("search")
	categorySlug := c.Query("category")

	query := database.DB.Model(&model.Product{})
	if search != "" {
		query = query.Where("products.name LIKE ?", "%"+search+"%")
	}
	if categorySlug != "" {
		query = query.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", categorySlug)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.RespondError(c, "list products", err)
	}

	var products []model.Product
	if err := utils.ApplyPagination(query, page, limit).
		Preload("Category").
		Order("products.name asc").
		Find(&products).Error; err != nil {
		return utils.RespondError(c, "list products", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, utils.Paginate(products, total, page, limit))
}

func ToggleProductStatus(c *fiber.Ctx) error {
	productID := c.Locals("inputId").(string)
	input := c.Locals("toggleStatusInput").(model.ToggleStatusInput)

	var product model.Product
	if err := database.DB.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Producto no encontrado", nil)
		}
		return utils.RespondError(c, "toggle product", err)
	}

	if err := database.DB.Model(&product).Update("is_available", *input.IsActive).Error; err != nil {
		return utils.RespondError(c, "toggle product", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func CreateVariant(c *fiber.Ctx) error {
	input := c.Locals("createVariantInput").(model.CreateVariantInput)

	var product model.Product
	if err := database.DB.First(&product, "id = ?", input.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Producto no encontrado", nil)
		}
		return utils.RespondError(c, "create variant", err)
	}

	variant := model.ProductVariant{
		ProductID:       input.ProductID,
		VariantName:     input.VariantName,
		AdditionalPrice: helper.Money(input.AdditionalPrice),
	}
	if err := database.DB.Create(&variant).Error; err != nil {
		return utils.RespondError(c, "create variant", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, variant)
}

func GetVariants(c *fiber.Ctx) error {
	productID := c.Locals("inputId").(string)

	var variants []model.ProductVariant
	if err := database.DB.Where("product_id = ?", productID).
		Order("variant_name asc").
		Find(&variants).Error; err != nil {
		return utils.RespondError(c, "list variants", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, variants)
}

func CreateModifier(c *fiber.Ctx) error {
	input := c.Locals("createModifierInput").(model.CreateModifierInput)

	var product model.Product
	if err := database.DB.First(&product, "id = ?", input.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Producto no encontrado", nil)
		}
		return utils.RespondError(c, "create modifier", err)
	}

	modifier := model.ProductModifier{
		ProductID:       input.ProductID,
		ModifierName:    input.ModifierName,
		AdditionalPrice: helper.Money(input.AdditionalPrice),
	}
	if err := database.DB.Create(&modifier).Error; err != nil {
		return utils.RespondError(c, "create modifier", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, modifier)
}

func GetModifiers(c *fiber.Ctx) error {
	productID := c.Locals("inputId").(string)

	var modifiers []model.ProductModifier
	if err := database.DB.Where("product_id = ?", productID).
		Order("modifier_name asc").
		Find(&modifiers).Error; err != nil {
		return utils.RespondError(c, "list modifiers", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, modifiers)
}
