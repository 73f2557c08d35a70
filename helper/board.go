package helper

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/jos3lo89/ice-pos-server/config"
	"github.com/jos3lo89/ice-pos-server/model"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

func RedisClient() *redis.Client {
	redisOnce.Do(func() {
		redisClient = redis.NewClient(&redis.Options{
			Addr: config.ConfigOr("REDIS_ADDR", "localhost:6379"),
		})
	})
	return redisClient
}

func FloorChannel(floorID string) string {
	return "floor:" + floorID
}

// FetchFloorBoard loads the live table snapshot for a floor, including the
// order currently seated at each table.
func FetchFloorBoard(db *gorm.DB, floorID string) ([]model.Table, error) {
	var tables []model.Table
	err := db.
		Preload("CurrentOrder").
		Where("floor_id = ?", floorID).
		Order("table_number asc").
		Find(&tables).Error
	return tables, err
}

// PublishFloorBoard pushes the floor snapshot to its redis channel so the
// websocket clients watching the board see the change. Called after the
// transaction commits; a publish failure is logged and otherwise ignored —
// the board is a convenience view, never part of the business operation.
func PublishFloorBoard(db *gorm.DB, floorID string) {
	if floorID == "" {
		return
	}

	tables, err := FetchFloorBoard(db, floorID)
	if err != nil {
		log.Printf("[floor board] snapshot failed for floor %s: %v", floorID, err)
		return
	}

	payload, err := json.Marshal(tables)
	if err != nil {
		log.Printf("[floor board] marshal failed for floor %s: %v", floorID, err)
		return
	}

	if err := RedisClient().Publish(context.Background(), FloorChannel(floorID), payload).Err(); err != nil {
		log.Printf("[floor board] publish failed for floor %s: %v", floorID, err)
	}
}

// PublishBoardForTable resolves the table's floor and publishes its board.
func PublishBoardForTable(db *gorm.DB, tableID string) {
	var table model.Table
	if err := db.Select("floor_id").First(&table, "id = ?", tableID).Error; err != nil {
		log.Printf("[floor board] table lookup failed for %s: %v", tableID, err)
		return
	}
	PublishFloorBoard(db, table.FloorID)
}
