package controller

import (
	"log"

	"github.com/gofiber/websocket/v2"

	"chefly/utils"
)

// StreamNotifications pushes a user's notifications over a websocket as
// they are published. The token travels in the query string since browsers
// cannot set headers on websocket upgrade requests.
func StreamNotifications(hub *utils.Hub, logger *log.Logger) func(*websocket.Conn) {
	return func(c *websocket.Conn) {
		defer c.Close()

		token := c.Query("token")
		claims, err := utils.ParseJWTToken(token)
		if err != nil {
			_ = c.WriteJSON(map[string]string{"error": "Invalid or expired token"})
			return
		}

		ch, cancel := hub.Subscribe(claims.UserID)
		defer cancel()

		// Reader goroutine: notices the peer going away.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := c.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case n := <-ch:
				if err := c.WriteJSON(n); err != nil {
					logger.Printf("ws write failed for user %d: %v", claims.UserID, err)
					return
				}
			case <-done:
				return
			}
		}
	}
}
