package validate

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jos3lo89/ice-pos-server/model"
)

func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateOrderInput
		if err := parseBody(c, &input); err != nil {
			return err
		}

		c.Locals("createOrderInput", input)
		return c.Next()
	}
}

func AddOrderItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AddOrderItemInput
		if err := parseBody(c, &input); err != nil {
			return err
		}

		c.Locals("addOrderItemInput", input)
		return c.Next()
	}
}

func CancelOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CancelOrderInput
		if err := parseBody(c, &input); err != nil {
			return err
		}

		c.Locals("cancelOrderInput", input)
		return c.Next()
	}
}
