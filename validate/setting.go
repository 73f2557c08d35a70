package validate

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jos3lo89/ice-pos-server/model"
)

func UpdateSetting() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateSettingInput
		if err := parseBody(c, &input); err != nil {
			return err
		}

		c.Locals("updateSettingInput", input)
		return c.Next()
	}
}
