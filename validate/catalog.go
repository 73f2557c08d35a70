package validate

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jos3lo89/ice-pos-server/model"
)

func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCategoryInput
		if err := parseBody(c, &input); err != nil {
			return err
		}

		c.Locals("createCategoryInput", input)
		return c.Next()
	}
}

func ToggleStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ToggleStatusInput
		if err := parseBody(c, &input); err != nil {
			return err
		}

		c.Locals("toggleStatusInput", input)
		return c.Next()
	}
}

func CreateProduct() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateProductInput
		if err := parseBody(c, &input); err != nil {
			return err
		}

		c.Locals("createProductInput", input)
		return c.Next()
	}
}

func CreateVariant() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateVariantInput
		if err := parseBody(c, &input); err != nil {
			return err
		}

		c.Locals("createVariantInput", input)
		return c.Next()
	}
}

func CreateModifier() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateModifierInput
		if err := parseBody(c, &input); err != nil {
			return err
		}

		c.Locals("createModifierInput", input)
		return c.Next()
	}
}
