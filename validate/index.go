package validate

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jos3lo89/ice-pos-server/utils"
)

var validate = validator.New()

// GetById validates a uuid route param and stashes it in Locals
func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		param := c.Params(key)
		if _, err := uuid.Parse(param); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "El identificador no es un uuid válido", errors.New("params invalid"))
		}

		c.Locals("inputId", param)
		return c.Next()
	}
}

// parseBody parses the JSON body into dst and runs struct validation.
func parseBody(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "No se pudo analizar la solicitud", err)
	}
	if err := validate.Struct(dst); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Datos de entrada inválidos", err)
	}
	return nil
}
