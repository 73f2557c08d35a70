package database

import (
	"fmt"
	"strconv"

	"github.com/jos3lo89/ice-pos-server/config"
	"github.com/jos3lo89/ice-pos-server/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.ConfigOr("DB_PORT", "5432")
	port, err := strconv.ParseUint(p, 10, 32)

	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		config.Config("DB_HOST"), port, config.Config("DB_USER"),
		config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	Migrate(DB)
	fmt.Println("Database Migrated")

	SeedData(DB)
}

// Migrate runs AutoMigrate for every entity; shared with the test setup.
func Migrate(db *gorm.DB) {
	db.AutoMigrate(
		&model.User{},
		&model.Floor{},
		&model.Table{},
		&model.Category{},
		&model.Product{},
		&model.ProductVariant{},
		&model.ProductModifier{},
		&model.Order{},
		&model.OrderItem{},
		&model.OrderItemModifier{},
		&model.Payment{},
		&model.PaymentLine{},
		&model.CashSession{},
		&model.CashTransaction{},
		&model.Setting{},
	)
}
