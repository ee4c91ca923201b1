package site

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WebSocket upgrader configuration
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// WSConnection maintains the WebSocket connection with an ops dashboard
type WSConnection struct {
	conn   *websocket.Conn
	send   chan []byte
	mu     sync.Mutex
	server *Server
}

// wsRequest is the only message the dashboard sends: a command plus an
// optional metric name.
type wsRequest struct {
	Command string `json:"command"`
	Metric  string `json:"metric,omitempty"`
}

// handleWebSocket streams site metrics to admin dashboards. A snapshot
// goes out every 5 seconds; clients can also request one on demand.
func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	wsConn := &WSConnection{
		conn:   conn,
		send:   make(chan []byte, 256),
		server: s,
	}

	// Start the read and write pumps
	go wsConn.writePump()
	go wsConn.readPump()
	go wsConn.streamMetrics()
}

// readPump pumps messages from the WebSocket connection to the handler
func (c *WSConnection) readPump() {
	defer func() {
		c.conn.Close()
	}()

	c.conn.SetReadLimit(64 * 1024)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		c.handleMessage(message)
	}
}

// writePump pumps messages from the server to the WebSocket connection
func (c *WSConnection) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				// The channel was closed
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// streamMetrics pushes a metrics snapshot on a fixed cadence until the
// send buffer backs up, which means the connection is gone.
func (c *WSConnection) streamMetrics() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if !c.sendSnapshot() {
			return
		}
	}
}

// handleMessage processes incoming dashboard commands
func (c *WSConnection) handleMessage(message []byte) {
	var req wsRequest
	if err := json.Unmarshal(message, &req); err != nil {
		log.Printf("Error unmarshaling message: %v", err)
		return
	}

	switch req.Command {
	case "snapshot":
		c.sendSnapshot()
	case "metric":
		value, ok := c.server.monitor.GetMetric(req.Metric)
		if !ok {
			c.sendError("Unknown metric: " + req.Metric)
			return
		}
		c.sendJSON(map[string]interface{}{req.Metric: value})
	default:
		c.sendError("Unknown command: " + req.Command)
	}
}

// sendSnapshot sends the full metrics map, reporting whether the write
// was accepted.
func (c *WSConnection) sendSnapshot() bool {
	return c.sendJSON(c.server.monitor.GetMetrics())
}

func (c *WSConnection) sendJSON(payload interface{}) bool {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error marshaling metrics: %v", err)
		return true
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case c.send <- data:
		return true
	default:
		log.Println("WebSocket buffer full, dropping message")
		return false
	}
}

// sendError sends an error message to the client
func (c *WSConnection) sendError(message string) {
	response := map[string]string{"error": message}
	data, _ := json.Marshal(response)

	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case c.send <- data:
	default:
		log.Println("WebSocket buffer full, dropping error message")
	}
}
