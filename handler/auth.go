package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jos3lo89/ice-pos-server/database"
	"github.com/jos3lo89/ice-pos-server/helper"
	"github.com/jos3lo89/ice-pos-server/model"
	"github.com/jos3lo89/ice-pos-server/utils"
	"gorm.io/gorm"
)

func Login(c *fiber.Ctx) error {
	input := c.Locals("loginInput").(model.LoginInput)

	var user model.User
	if err := database.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Usuario no encontrado", nil)
		}
		return utils.RespondError(c, "login", err)
	}

	if !user.IsActive {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Usuario desactivado", nil)
	}

	if !helper.CheckPasswordHash(input.Password, user.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Contraseña inválida", nil)
	}

	token, err := helper.GenerateAccessToken(model.TokenClaim{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		return utils.RespondError(c, "login", err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(8 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"token": token,
		"user":  user,
	})
}

func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Sesión cerrada"})
}
