package validate

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jos3lo89/ice-pos-server/model"
)

func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateUserInput
		if err := parseBody(c, &input); err != nil {
			return err
		}

		c.Locals("createUserInput", input)
		return c.Next()
	}
}

func ChangeUserState() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ChangeUserStateInput
		if err := parseBody(c, &input); err != nil {
			return err
		}

		c.Locals("changeUserStateInput", input)
		return c.Next()
	}
}
