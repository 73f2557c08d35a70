package handler

import (
	"context"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/jos3lo89/ice-pos-server/database"
	"github.com/jos3lo89/ice-pos-server/helper"
)

var (
	boardClients = make(map[string]map[*websocket.Conn]bool)
	boardMu      sync.Mutex
)

// FloorBoardSocket streams the live table board of one floor. Each client
// joins the floor's room; updates arrive through the redis channel the
// mutating handlers publish to after commit.
func FloorBoardSocket(c *websocket.Conn) {
	floorID := c.Params("id")

	defer func() {
		boardMu.Lock()
		if boardClients[floorID] != nil {
			delete(boardClients[floorID], c)
		}
		boardMu.Unlock()
		c.Close()
	}()

	boardMu.Lock()
	if boardClients[floorID] == nil {
		boardClients[floorID] = make(map[*websocket.Conn]bool)
	}
	boardClients[floorID][c] = true
	boardMu.Unlock()

	// First frame: the current snapshot.
	tables, err := helper.FetchFloorBoard(database.DB, floorID)
	if err != nil {
		log.Printf("[floor board] initial snapshot failed: %v", err)
	} else {
		c.WriteJSON(tables)
	}

	pubsub := helper.RedisClient().Subscribe(context.Background(), helper.FloorChannel(floorID))
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		payload := []byte(msg.Payload)

		boardMu.Lock()
		for conn := range boardClients[floorID] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(boardClients[floorID], conn)
			}
		}
		boardMu.Unlock()
	}
}
