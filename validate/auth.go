package validate

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jos3lo89/ice-pos-server/model"
)

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginInput
		if err := parseBody(c, &input); err != nil {
			return err
		}

		c.Locals("loginInput", input)
		return c.Next()
	}
}
