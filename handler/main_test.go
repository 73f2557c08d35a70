package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jos3lo89/ice-pos-server/constants"
	"github.com/jos3lo89/ice-pos-server/database"
	"github.com/jos3lo89/ice-pos-server/helper"
	"github.com/jos3lo89/ice-pos-server/model"
	"github.com/jos3lo89/ice-pos-server/router"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupApp wires the real routes against an in-memory database, so each
// test exercises the same middleware chain as production.
func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	database.Migrate(db)
	database.DB = db

	app := fiber.New()
	router.SetupRoutes(app)
	return app, db
}

func seedUser(t *testing.T, db *gorm.DB, role string) model.User {
	t.Helper()
	user := model.User{
		Username: role + "-" + uuid.NewString()[:8],
		Password: "x",
		FullName: "Usuario de prueba",
		Role:     role,
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func tokenFor(t *testing.T, user model.User) string {
	t.Helper()
	token, err := helper.GenerateAccessToken(model.TokenClaim{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

// floors.level carries a unique index, so each seeded floor needs its own level.
var floorLevelSeq atomic.Int64

func seedTable(t *testing.T, db *gorm.DB) model.Table {
	t.Helper()
	floor := model.Floor{Name: "Primer Piso", Level: int(floorLevelSeq.Add(1)), IsActive: true}
	if err := db.Create(&floor).Error; err != nil {
		t.Fatalf("seed floor: %v", err)
	}
	table := model.Table{
		TableNumber: "M-" + uuid.NewString()[:8],
		FloorID:     floor.ID,
		Status:      constants.TABLE_AVAILABLE,
	}
	if err := db.Create(&table).Error; err != nil {
		t.Fatalf("seed table: %v", err)
	}
	return table
}

func seedProduct(t *testing.T, db *gorm.DB, price string) model.Product {
	t.Helper()
	suffix := uuid.NewString()[:8]
	category := model.Category{Name: "Helados " + suffix, Slug: "helados-" + suffix, IsActive: true}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	product := model.Product{
		CategoryID:    category.ID,
		Name:          "Helado de prueba",
		Price:         decimal.RequireFromString(price),
		AreaImpresion: constants.AREA_BARRA,
		IsAvailable:   true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func seedOpenSession(t *testing.T, db *gorm.DB, cajeroID, opening string) model.CashSession {
	t.Helper()
	session := model.CashSession{
		CajeroID:       cajeroID,
		OpeningBalance: decimal.RequireFromString(opening),
		Status:         constants.SESSION_OPEN,
		OpenedAt:       time.Now(),
	}
	if err := db.Create(&session).Error; err != nil {
		t.Fatalf("seed cash session: %v", err)
	}
	return session
}

// seedOrderWithItem builds a pending order seated at a fresh table with one
// active item, totals already recomputed.
func seedOrderWithItem(t *testing.T, db *gorm.DB, meseroID string, quantity int, unitPrice string) (model.Order, model.OrderItem, model.Table) {
	t.Helper()
	table := seedTable(t, db)
	order := model.Order{
		OrderNumber: "ORD-" + uuid.NewString()[:8],
		TableID:     &table.ID,
		MeseroID:    meseroID,
		Status:      constants.ORDER_PENDING,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	if err := db.Model(&model.Table{}).Where("id = ?", table.ID).
		Updates(map[string]interface{}{
			"status":           constants.TABLE_OCCUPIED,
			"current_order_id": order.ID,
		}).Error; err != nil {
		t.Fatalf("occupy table: %v", err)
	}

	price := decimal.RequireFromString(unitPrice)
	item := model.OrderItem{
		OrderID:   order.ID,
		ProductID: uuid.NewString(),
		Quantity:  quantity,
		UnitPrice: price,
		LineTotal: price.Mul(decimal.NewFromInt(int64(quantity))).Round(2),
		Status:    constants.ITEM_ACTIVE,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed order item: %v", err)
	}
	if err := helper.RecomputeOrderTotals(db, order.ID); err != nil {
		t.Fatalf("recompute totals: %v", err)
	}
	if err := db.First(&order, "id = ?", order.ID).Error; err != nil {
		t.Fatalf("reload order: %v", err)
	}
	return order, item, table
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return body
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// asDecimal reads a money field out of a decoded JSON body; amounts arrive
// as quoted strings.
func asDecimal(t *testing.T, v any) decimal.Decimal {
	t.Helper()
	switch value := v.(type) {
	case string:
		return decimal.RequireFromString(value)
	case float64:
		return decimal.NewFromFloat(value)
	default:
		t.Fatalf("unexpected amount type %T", v)
		return decimal.Zero
	}
}
