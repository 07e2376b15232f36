package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"debate_live/internal/debate"
)

// 定義 WebSocket 升級器
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 注意:在生產環境中,應該檢查 origin
	},
}

// envelope 是 WebSocket 上的統一訊息格式
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// outEnvelope 是送出去的訊息,Data 在寫出時才編碼
type outEnvelope struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// WebSocketHandler 處理 WebSocket 連接
type WebSocketHandler struct {
	hub *debate.Hub
}

// NewWebSocketHandler 創建一個新的 WebSocketHandler 實例
func NewWebSocketHandler(hub *debate.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// HandleWebSocket 處理 WebSocket 連接請求
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	// 升級 HTTP 連接為 WebSocket 連接
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "升級WebSocket失敗"})
		return
	}

	client := &wsClient{
		id:   uuid.New().String(),
		conn: conn,
		send: make(chan outEnvelope, 256), // 設置緩衝大小為 256 的訊息通道
		hub:  h.hub,
	}

	go client.writePump()
	client.readPump()
}

// wsClient 代表一個 WebSocket 客戶端連接,實作 debate.Peer
type wsClient struct {
	id   string
	conn *websocket.Conn
	send chan outEnvelope
	hub  *debate.Hub
}

func (c *wsClient) ID() string { return c.id }

// Send 把事件排進發送佇列。佇列滿了就丟掉這條訊息,
// 不能讓一條塞住的連線卡住整個房間。
func (c *wsClient) Send(event string, data any) {
	select {
	case c.send <- outEnvelope{Event: event, Data: data}:
	default:
		log.Printf("client %s send buffer full, dropping %s", c.id, event)
	}
}

// readPump 持續監聽並分派客戶端送來的事件
func (c *wsClient) readPump() {
	// 連線收尾:先把自己從房間移出,再關閉發送端
	defer func() {
		c.hub.Leave(c.id)
		c.conn.Close()
		close(c.send)
	}()

	c.conn.SetReadLimit(1 << 20) // 錄影片段可能較大,上限設 1MB
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket unexpected close error: %v", err)
			}
			break
		}

		var env envelope
		if err := json.Unmarshal(message, &env); err != nil {
			log.Printf("message parse error: %v", err)
			continue
		}

		c.dispatch(env)
	}
}

// dispatch 把一個事件轉成對辯論引擎的呼叫。
// 解析失敗的事件直接略過,一條壞訊息不該影響整個房間。
func (c *wsClient) dispatch(env envelope) {
	switch env.Event {
	case debate.EventJoin:
		var d struct {
			DebateID string `json:"debateId"`
			IsPros   bool   `json:"isPros"`
		}
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return
		}
		c.hub.Join(c, d.DebateID, d.IsPros)

	case debate.EventReady:
		var d struct {
			DebateID string `json:"debateId"`
			IsPros   bool   `json:"isPros"`
			IsReady  bool   `json:"isReady"`
		}
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return
		}
		c.hub.Ready(d.DebateID, d.IsPros, d.IsReady)

	case debate.EventOffer, debate.EventAnswer:
		// 信令原封不動轉給對方,內容不解析
		var d struct {
			Signal json.RawMessage `json:"signal"`
		}
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return
		}
		c.hub.Relay(c.id, env.Event, d.Signal)

	case debate.EventPeerVideo:
		var d struct {
			IsVideoOn bool `json:"isVideoOn"`
		}
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return
		}
		c.hub.Relay(c.id, env.Event, d.IsVideoOn)

	case debate.EventPeerScreen:
		var d struct {
			IsScreenOn bool `json:"isScreenOn"`
		}
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return
		}
		c.hub.Relay(c.id, env.Event, d.IsScreenOn)

	case debate.EventSkip:
		var d struct {
			DebateID string `json:"debateId"`
			IsPros   bool   `json:"isPros"`
		}
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return
		}
		c.hub.Skip(d.DebateID, d.IsPros)

	case debate.EventRecord:
		var d struct {
			DebateID string `json:"debateId"`
			Blob     []byte `json:"blob"`
		}
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return
		}
		c.hub.Record(d.DebateID, d.Blob)

	case debate.EventDebateDone:
		var d struct {
			DebateID string `json:"debateId"`
			Winner   bool   `json:"winner"`
		}
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return
		}
		c.hub.Done(d.DebateID, d.Winner)

	default:
		log.Printf("unknown event %q from client %s", env.Event, c.id)
	}
}

// writePump 處理向客戶端發送訊息的邏輯
func (c *wsClient) writePump() {
	// 設置心跳檢查計時器
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			// 設置寫入超時
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			data, err := json.Marshal(msg)
			if err != nil {
				log.Printf("message encoding error: %v", err)
				continue
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			// 發送心跳包
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
