package websocket

import (
	"github.com/gofiber/websocket/v2"
)

// ServeWs attaches conn to channel and blocks until the peer goes away.
func ServeWs(hub *Hub, conn *websocket.Conn, channel string) {
	client := &Client{Hub: hub, Conn: conn, Channel: channel, Send: make(chan []byte, sendBuffer)}
	if !hub.attach(client) {
		conn.Close()
		return
	}

	go client.writePump()
	client.readPump()
}
