package helper_test

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jos3lo89/ice-pos-server/database"
	"github.com/jos3lo89/ice-pos-server/helper"
	"github.com/jos3lo89/ice-pos-server/model"
	"github.com/jos3lo89/ice-pos-server/utils"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
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
	return db
}

func seedOrder(t *testing.T, db *gorm.DB, number string) model.Order {
	t.Helper()
	order := model.Order{
		OrderNumber: number,
		MeseroID:    uuid.NewString(),
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order %s: %v", number, err)
	}
	return order
}

func TestNextNumberFirstDocument(t *testing.T) {
	db := testDB(t)

	number, err := helper.NextNumber(db, "orders", "order_number", "ORD-")
	assert.NoError(t, err)
	assert.Equal(t, "ORD-001", number)
}

func TestNextNumberIncrements(t *testing.T) {
	db := testDB(t)
	seedOrder(t, db, "ORD-007")

	number, err := helper.NextNumber(db, "orders", "order_number", "ORD-")
	assert.NoError(t, err)
	assert.Equal(t, "ORD-008", number)
}

func TestNextNumberGrowsPastPadding(t *testing.T) {
	db := testDB(t)
	seedOrder(t, db, "ORD-999")

	number, err := helper.NextNumber(db, "orders", "order_number", "ORD-")
	assert.NoError(t, err)
	assert.Equal(t, "ORD-1000", number)
}

func TestNextNumberRejectsMalformedSuffix(t *testing.T) {
	db := testDB(t)
	seedOrder(t, db, "ORD-ABC")

	_, err := helper.NextNumber(db, "orders", "order_number", "ORD-")
	assert.Error(t, err)

	var appErr *utils.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.KindFormat, appErr.Kind)
}

func TestNextNumberConcurrentCreatesStayDistinct(t *testing.T) {
	db := testDB(t)

	// A single pooled connection keeps sqlite from erroring on concurrent
	// writers; the goroutines still race for the generator, and the unique
	// index on order_number backstops any duplicate that would slip through.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("underlying connection: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	const workers = 10
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		numbers []string
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var number string
			err := db.Transaction(func(tx *gorm.DB) error {
				var err error
				number, err = helper.NextNumber(tx, "orders", "order_number", "ORD-")
				if err != nil {
					return err
				}
				return tx.Create(&model.Order{
					OrderNumber: number,
					MeseroID:    uuid.NewString(),
				}).Error
			})
			if assert.NoError(t, err) {
				mu.Lock()
				numbers = append(numbers, number)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, numbers, workers)
	seen := make(map[string]bool, workers)
	for _, number := range numbers {
		assert.False(t, seen[number], "number %s committed twice", number)
		seen[number] = true
	}

	var count int64
	db.Model(&model.Order{}).Count(&count)
	assert.Equal(t, int64(workers), count)
}

func TestNextNumberIgnoresOtherPrefixes(t *testing.T) {
	db := testDB(t)
	seedOrder(t, db, "PED-042")

	number, err := helper.NextNumber(db, "orders", "order_number", "ORD-")
	assert.NoError(t, err)
	assert.Equal(t, "ORD-001", number)
}
