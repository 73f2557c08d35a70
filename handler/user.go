package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"github.com/jos3lo89/ice-pos-server/database"
	"github.com/jos3lo89/ice-pos-server/helper"
	"github.com/jos3lo89/ice-pos-server/model"
	"github.com/jos3lo89/ice-pos-server/utils"
	"gorm.io/gorm"
)

func CreateUser(c *fiber.Ctx) error {
	input := c.Locals("createUserInput").(model.CreateUserInput)

	db := database.DB

	var existing model.User
	if err := db.Where("username = ?", input.Username).First(&existing).Error; err == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Nombre de usuario ya existe", nil)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.RespondError(c, "create user", err)
	}

	if input.Phone != nil {
		if err := db.Where("phone = ?", *input.Phone).First(&existing).Error; err == nil {
			return utils.ErrorResponse(c, fiber.StatusConflict, "Teléfono ya existe", nil)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.RespondError(c, "create user", err)
		}
	}

	var user model.User
	if err := copier.Copy(&user, &input); err != nil {
		return utils.RespondError(c, "create user", err)
	}

	hashed, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.RespondError(c, "create user", err)
	}
	user.Password = hashed

	if input.Pin != nil {
		hashedPin, err := helper.HashPassword(*input.Pin)
		if err != nil {
			return utils.RespondError(c, "create user", err)
		}
		user.Pin = &hashedPin
	}

	if err := db.Create(&user).Error; err != nil {
		return utils.RespondError(c, "create user", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, user)
}

func GetProfile(c *fiber.Ctx) error {
	claim, ok := helper.GetUserFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Sesión no válida", nil)
	}

	var user model.User
	if err := database.DB.First(&user, "id = ?", claim.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Usuario no encontrado", nil)
		}
		return utils.RespondError(c, "get profile", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func GetUsers(c *fiber.Ctx) error {
	page, limit := utils.PageQuery(c)
	search := c.Query("search")

	db := database.DB
	query := db.Model(&model.User{})
	if search != "" {
		query = query.Where("username LIKE ? OR full_name LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.RespondError(c, "list users", err)
	}

	var users []model.User
	if err := utils.ApplyPagination(query, page, limit).
		Order("username asc").
		Find(&users).Error; err != nil {
		return utils.RespondError(c, "list users", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, utils.Paginate(users, total, page, limit))
}

func ChangeUserState(c *fiber.Ctx) error {
	userID := c.Locals("inputId").(string)
	input := c.Locals("changeUserStateInput").(model.ChangeUserStateInput)

	var user model.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Usuario no encontrado", nil)
		}
		return utils.RespondError(c, "change user state", err)
	}

	if err := database.DB.Model(&user).Update("is_active", *input.IsActive).Error; err != nil {
		return utils.RespondError(c, "change user state", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}
