package validate

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jos3lo89/ice-pos-server/model"
)

func CreatePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePaymentInput
		if err := parseBody(c, &input); err != nil {
			return err
		}

		c.Locals("createPaymentInput", input)
		return c.Next()
	}
}
