package validate

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jos3lo89/ice-pos-server/model"
)

func CreateFloor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateFloorInput
		if err := parseBody(c, &input); err != nil {
			return err
		}

		c.Locals("createFloorInput", input)
		return c.Next()
	}
}

func CreateTable() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTableInput
		if err := parseBody(c, &input); err != nil {
			return err
		}

		c.Locals("createTableInput", input)
		return c.Next()
	}
}
