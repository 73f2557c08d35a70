package validate

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jos3lo89/ice-pos-server/model"
)

func OpenSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.OpenSessionInput
		if err := parseBody(c, &input); err != nil {
			return err
		}

		c.Locals("openSessionInput", input)
		return c.Next()
	}
}

func CloseSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CloseSessionInput
		if err := parseBody(c, &input); err != nil {
			return err
		}

		c.Locals("closeSessionInput", input)
		return c.Next()
	}
}

func CreateCashTransaction() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCashTransactionInput
		if err := parseBody(c, &input); err != nil {
			return err
		}

		c.Locals("createCashTransactionInput", input)
		return c.Next()
	}
}
