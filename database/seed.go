package database

import (
	"fmt"
	"log"

	"github.com/gosimple/slug"
	"github.com/jos3lo89/ice-pos-server/constants"
	"github.com/jos3lo89/ice-pos-server/model"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	hashedPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	users := []model.User{
		{Username: "admin", Password: hashedPassword, FullName: "Administrador", Role: constants.ROLE_ADMIN, IsActive: true},
	}
	for _, user := range users {
		if err := db.Where(model.User{Username: user.Username}).FirstOrCreate(&user).Error; err != nil {
			log.Println("failed to seed user:", user.Username, "error:", err)
		}
	}

	settings := []model.Setting{
		{Key: constants.SETTING_IGV_RATE, Value: constants.DEFAULT_IGV_RATE},
		{Key: constants.SETTING_ORDER_PREFIX, Value: constants.DEFAULT_ORDER_PREFIX},
		{Key: constants.SETTING_PAYMENT_PREFIX, Value: constants.DEFAULT_PAYMENT_PREFIX},
	}
	for _, setting := range settings {
		if err := db.Where(model.Setting{Key: setting.Key}).FirstOrCreate(&setting).Error; err != nil {
			log.Println("failed to seed setting:", setting.Key, "error:", err)
		}
	}

	floor := model.Floor{Name: "Primer piso", Level: 1, IsActive: true}
	if err := db.Where(model.Floor{Level: floor.Level}).FirstOrCreate(&floor).Error; err != nil {
		log.Println("failed to seed floor:", err)
		return
	}

	for i := 1; i <= 6; i++ {
		table := model.Table{
			TableNumber: fmt.Sprintf("M-%02d", i),
			FloorID:     floor.ID,
			Status:      constants.TABLE_AVAILABLE,
		}
		if err := db.Where(model.Table{TableNumber: table.TableNumber}).FirstOrCreate(&table).Error; err != nil {
			log.Println("failed to seed table:", table.TableNumber, "error:", err)
		}
	}

	categories := []model.Category{
		{Name: "Platos principales", Slug: slug.Make("Platos principales"), IsActive: true},
		{Name: "Bebidas", Slug: slug.Make("Bebidas"), IsActive: true},
	}
	for i := range categories {
		if err := db.Where(model.Category{Name: categories[i].Name}).FirstOrCreate(&categories[i]).Error; err != nil {
			log.Println("failed to seed category:", categories[i].Name, "error:", err)
		}
	}

	products := []model.Product{
		{CategoryID: categories[0].ID, Name: "Lomo saltado", Price: decimal.NewFromFloat(28.00), AreaImpresion: constants.AREA_COCINA, IsAvailable: true},
		{CategoryID: categories[0].ID, Name: "Ají de gallina", Price: decimal.NewFromFloat(24.00), AreaImpresion: constants.AREA_COCINA, IsAvailable: true},
		{CategoryID: categories[1].ID, Name: "Chicha morada", Price: decimal.NewFromFloat(8.00), AreaImpresion: constants.AREA_BARRA, IsAvailable: true},
	}
	for _, product := range products {
		if err := db.Where(model.Product{Name: product.Name, CategoryID: product.CategoryID}).FirstOrCreate(&product).Error; err != nil {
			log.Println("failed to seed product:", product.Name, "error:", err)
		}
	}
}
