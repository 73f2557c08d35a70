package utils

import (
	"math"

	"github.com/gofiber/fiber/v2"
	"github.com/jos3lo89/ice-pos-server/model"
	"gorm.io/gorm"
)

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

func ApplyPagination(query *gorm.DB, page, limit int) *gorm.DB {
	if limit > 0 && page >= 1 {
		query = query.Limit(limit).Offset(limit * (page - 1))
	}
	return query
}

// Paginate builds the list envelope used by every paginated endpoint.
func Paginate(data any, total int64, page, limit int) model.PagedResponse {
	if limit < 1 {
		limit = 1
	}
	lastPage := int(math.Ceil(float64(total) / float64(limit)))
	meta := model.PageMeta{
		Total:    total,
		Page:     page,
		LastPage: lastPage,
		HasNext:  page < lastPage,
		HasPrev:  page > 1,
	}
	if meta.HasNext {
		next := page + 1
		meta.NextPage = &next
	}
	if meta.HasPrev {
		prev := page - 1
		meta.PrevPage = &prev
	}
	return model.PagedResponse{Data: data, Meta: meta}
}

// PageQuery reads page/limit query params with the list defaults.
func PageQuery(c *fiber.Ctx) (page, limit int) {
	page = c.QueryInt("page", 1)
	limit = c.QueryInt("limit", 5)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 5
	}
	return page, limit
}

func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func Ptr[T any](v T) *T {
	return &v
}
